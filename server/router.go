package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"youtube-clone/domain/repository"
	httpHandler "youtube-clone/interfaces/http"
	"youtube-clone/interfaces/middleware"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	channelHandler httpHandler.IChannelHandler,
	videoHandler httpHandler.IVideoHandler,
	commentHandler httpHandler.ICommentHandler,
	reactionHandler httpHandler.IReactionHandler,
	subscriptionHandler httpHandler.ISubscriptionHandler,
	playlistHandler httpHandler.IPlaylistHandler,
	userRepository repository.IUser,
	secretKey string,
	corsOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/register", userHandler.Register)
	router.POST("/login", userHandler.Login)

	api := router.Group("")
	api.Use(middleware.Auth(userRepository, secretKey))

	api.POST("/user", userHandler.GetUser)

	api.POST("/channel", channelHandler.Create)
	api.GET("/channel/:channel", channelHandler.View)
	api.PUT("/channel/:channelName", channelHandler.Update)
	api.DELETE("/channel/:Channel", channelHandler.Delete)
	api.POST("/channel/:channel/videos", videoHandler.Upload)

	api.GET("/videos", videoHandler.List)
	api.GET("/videos/:id", videoHandler.Get)
	api.PUT("/videos/:videoId", videoHandler.Update)
	// Delete shares the first wildcard with the update route; the handler
	// reads the channel name from it.
	api.PUT("/videos/:videoId/:id", videoHandler.Delete)

	api.POST("/comment", commentHandler.Add)
	api.PUT("/comment", commentHandler.Edit)
	api.DELETE("/comment", commentHandler.Delete)

	api.PUT("/like/:id", reactionHandler.Like)
	api.PUT("/dislike/:id", reactionHandler.Dislike)

	api.PUT("/subscribe", subscriptionHandler.Subscribe)

	api.POST("/playlist", playlistHandler.Create)
	api.POST("/playlist/:playlist", playlistHandler.Delete)
	api.PUT("/playlist/:id", playlistHandler.ToggleVideo)

	return router
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-clone/usecase"
)

type IReactionHandler interface {
	Like(c *gin.Context)
	Dislike(c *gin.Context)
}

type ReactionHandler struct {
	reactionUsecase usecase.IReactionUsecase
}

func NewReactionHandler(reactionUsecase usecase.IReactionUsecase) IReactionHandler {
	return &ReactionHandler{reactionUsecase: reactionUsecase}
}

func (reactionHandler *ReactionHandler) Like(c *gin.Context) {
	username := c.GetString("username")
	result, err := reactionHandler.reactionUsecase.ToggleLike(c.Request.Context(), username, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	message := "Video unliked"
	if result.Liked {
		message = "Video liked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "video": result.Video, "user": result.User})
}

func (reactionHandler *ReactionHandler) Dislike(c *gin.Context) {
	userID := c.GetString("user_id")
	result, err := reactionHandler.reactionUsecase.ToggleDislike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	message := "Dislike removed"
	if result.Disliked {
		message = "Disliked successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "dislikedBy": result.DislikedBy})
}

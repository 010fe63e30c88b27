package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-clone/domain/model"
	"youtube-clone/infrastructure/logger"
	"youtube-clone/usecase"
)

type ISubscriptionHandler interface {
	Subscribe(c *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (subscriptionHandler *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req model.ReqSubscribe
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	userID := c.GetString("user_id")
	result, err := subscriptionHandler.subscriptionUsecase.Toggle(c.Request.Context(), userID, req.ChannelName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":                 result.Message,
		"userSubscriptions":       result.User,
		"channelSubscribersCount": result.Channel,
	})
}

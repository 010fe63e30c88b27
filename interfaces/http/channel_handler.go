package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-clone/domain/model"
	"youtube-clone/infrastructure/logger"
	"youtube-clone/usecase"
)

type IChannelHandler interface {
	Create(c *gin.Context)
	View(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type ChannelHandler struct {
	channelUsecase usecase.IChannelUsecase
}

func NewChannelHandler(channelUsecase usecase.IChannelUsecase) IChannelHandler {
	return &ChannelHandler{channelUsecase: channelUsecase}
}

func (channelHandler *ChannelHandler) Create(c *gin.Context) {
	var req model.ReqCreateChannel
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid channelName or description"})
		return
	}

	check, values := checkRequired(req.ChannelName, req.Description, req.ChannelLogo)
	if check != fieldsOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid channelName or description"})
		return
	}

	owner := c.GetString("username")
	view, err := channelHandler.channelUsecase.Create(c.Request.Context(), owner, values[0], values[1], req.ChannelBanner, values[2])
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Channel created successfully", "user": view})
}

func (channelHandler *ChannelHandler) View(c *gin.Context) {
	channel, err := channelHandler.channelUsecase.View(c.Request.Context(), c.Param("channel"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

func (channelHandler *ChannelHandler) Update(c *gin.Context) {
	channelName := c.Param("channelName")
	if channelName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Current channel name is required to update the channel."})
		return
	}

	var req model.ReqUpdateChannel
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data present to update."})
		return
	}
	if req.ChannelBanner == "" && req.ChannelLogo == "" && req.Description == "" && req.NewChannelName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data present to update."})
		return
	}

	owner := c.GetString("username")
	channel, err := channelHandler.channelUsecase.Update(c.Request.Context(), owner, channelName, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Channel updated successfully.", "channel": channel})
}

func (channelHandler *ChannelHandler) Delete(c *gin.Context) {
	channelName := c.Param("Channel")
	if channelName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Channel name is required & cannot be empty"})
		return
	}

	owner := c.GetString("username")
	if err := channelHandler.channelUsecase.Delete(c.Request.Context(), owner, channelName); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Channel deleted successfully"})
}

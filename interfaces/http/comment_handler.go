package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-clone/domain/model"
	"youtube-clone/infrastructure/logger"
	"youtube-clone/usecase"
)

type ICommentHandler interface {
	Add(c *gin.Context)
	Edit(c *gin.Context)
	Delete(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (commentHandler *CommentHandler) Add(c *gin.Context) {
	var req model.ReqAddComment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	username := c.GetString("username")
	comments, err := commentHandler.commentUsecase.Add(c.Request.Context(), username, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment added successfully", "comments": comments})
}

func (commentHandler *CommentHandler) Edit(c *gin.Context) {
	var req model.ReqEditComment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	username := c.GetString("username")
	video, err := commentHandler.commentUsecase.Edit(c.Request.Context(), username, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully", "video": video})
}

func (commentHandler *CommentHandler) Delete(c *gin.Context) {
	var req model.ReqDeleteComment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	username := c.GetString("username")
	comments, err := commentHandler.commentUsecase.Delete(c.Request.Context(), username, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully", "comments": comments})
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/model"
	"youtube-clone/infrastructure/logger"
	"youtube-clone/usecase"
)

type IPlaylistHandler interface {
	Create(c *gin.Context)
	Delete(c *gin.Context)
	ToggleVideo(c *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (playlistHandler *PlaylistHandler) Create(c *gin.Context) {
	var req model.ReqCreatePlaylist
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Channel name is required & cannot be empty"})
		return
	}

	name, ok := optionalString(req.PlaylistName)
	if !ok || strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Channel name is required & cannot be empty"})
		return
	}

	username := c.GetString("username")
	view, err := playlistHandler.playlistUsecase.Create(c.Request.Context(), username, name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Playlist created successfully", "newUser": view})
}

func (playlistHandler *PlaylistHandler) Delete(c *gin.Context) {
	username := c.GetString("username")
	view, err := playlistHandler.playlistUsecase.Delete(c.Request.Context(), username, c.Param("playlist"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted successfully", "newUser": view})
}

func (playlistHandler *PlaylistHandler) ToggleVideo(c *gin.Context) {
	var req model.ReqPlaylistVideo
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and playlist name are required."})
		return
	}

	// The video id is checked before the body fields.
	if _, err := bson.ObjectIDFromHex(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Given ID is not a valid Video ID"})
		return
	}
	if req.UserName == "" || req.PlaylistName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and playlist name are required."})
		return
	}

	caller := c.GetString("username")
	result, err := playlistHandler.playlistUsecase.ToggleVideo(c.Request.Context(), caller, req.UserName, req.PlaylistName, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": result.Message, "userDetails": result.UserDetails})
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"youtube-clone/domain/model"
	"youtube-clone/infrastructure/logger"
	"youtube-clone/usecase"
)

type IVideoHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Upload(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (videoHandler *VideoHandler) List(c *gin.Context) {
	videos, err := videoHandler.videoUsecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (videoHandler *VideoHandler) Get(c *gin.Context) {
	video, err := videoHandler.videoUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (videoHandler *VideoHandler) Upload(c *gin.Context) {
	var req model.ReqUploadVideo
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, thumbnail, videoLink, description, and categories are required"})
		return
	}

	if isBlankValue(req.Title) || isBlankValue(req.Thumbnail) || isBlankValue(req.VideoLink) ||
		isBlankValue(req.Description) || req.Categories == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, thumbnail, videoLink, description, and categories are required"})
		return
	}

	title, titleOK := req.Title.(string)
	thumbnail, thumbnailOK := req.Thumbnail.(string)
	videoLink, videoLinkOK := req.VideoLink.(string)
	description, descriptionOK := req.Description.(string)
	categoriesStr, categoriesIsString := req.Categories.(string)
	_, categoriesIsArray := req.Categories.([]interface{})
	if !titleOK || !thumbnailOK || !videoLinkOK || !descriptionOK ||
		(!categoriesIsString && !categoriesIsArray) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, thumbnail, and description must be strings. Categories must be a string or an array"})
		return
	}

	// videoLink is type-checked but not whitespace-checked, matching the
	// platform's upload contract.
	if strings.TrimSpace(title) == "" || strings.TrimSpace(thumbnail) == "" ||
		strings.TrimSpace(description) == "" ||
		(categoriesIsString && strings.TrimSpace(categoriesStr) == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, thumbnail, description cannot contain only whitespace, and categories must not be empty"})
		return
	}

	categories := normalizeCategories(req.Categories)
	if len(categories) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Categories cannot be empty"})
		return
	}

	channel, err := videoHandler.videoUsecase.Upload(c.Request.Context(), c.Param("channel"),
		title, thumbnail, videoLink, description, categories)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Video uploaded successfully", "channelWithVideo": channel})
}

func (videoHandler *VideoHandler) Update(c *gin.Context) {
	var req model.ReqUpdateVideo
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data present to update."})
		return
	}
	if req.Title == "" && req.Thumbnail == "" && req.VideoLink == "" && req.Description == "" && len(req.Categories) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data present to update."})
		return
	}

	video, err := videoHandler.videoUsecase.Update(c.Request.Context(), c.Param("videoId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video updated successfully.", "video": video})
}

// Delete is routed as PUT /videos/:videoId/:id to share the wildcard name
// with the update route, so the channel name arrives in the first segment.
func (videoHandler *VideoHandler) Delete(c *gin.Context) {
	channelName := c.Param("videoId")
	channel, err := videoHandler.videoUsecase.Delete(c.Request.Context(), channelName, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted and removed from channel successfully", "updatedChannel": channel})
}

// normalizeCategories formats the categories input: a comma-separated string
// is split and each entry trimmed; an array keeps its entries as sent, with
// the blank ones dropped.
func normalizeCategories(v interface{}) []string {
	categories := []string{}
	switch value := v.(type) {
	case string:
		for _, s := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				categories = append(categories, trimmed)
			}
		}
	case []interface{}:
		for _, item := range value {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				categories = append(categories, s)
			}
		}
	}
	return categories
}

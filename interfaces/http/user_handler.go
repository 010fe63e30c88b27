package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youtube-clone/domain/model"
	"youtube-clone/infrastructure/logger"
	"youtube-clone/usecase"
)

type IUserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GetUser(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (userHandler *UserHandler) Register(c *gin.Context) {
	var req model.ReqRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, password, and name are required"})
		return
	}

	check, values := checkRequired(req.Username, req.Password, req.Name)
	switch check {
	case fieldsMissing:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, password, and name are required"})
		return
	case fieldsNotString:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, password, and name must be strings"})
		return
	case fieldsBlank:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, password, and name cannot contain only whitespace"})
		return
	}
	username, password, name := values[0], values[1], values[2]

	avatar, ok := optionalString(req.Avatar)
	if !ok || (avatar != "" && !model.IsURL(avatar)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar must be a valid URL if provided"})
		return
	}

	if err := userHandler.userUsecase.Register(c.Request.Context(), username, password, name, avatar); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (userHandler *UserHandler) Login(c *gin.Context) {
	var req model.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	check, values := checkRequired(req.Username, req.Password)
	switch check {
	case fieldsMissing:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	case fieldsNotString:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password must be strings"})
		return
	case fieldsBlank:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password cannot contain only whitespace"})
		return
	}
	username := values[0]

	token, err := userHandler.userUsecase.Login(c.Request.Context(), username, values[1])
	if err != nil {
		writeError(c, err)
		return
	}
	// The lookup lowercases internally; the response echoes the username as
	// it was submitted.
	c.JSON(http.StatusOK, gin.H{"username": username, "jwtToken": token})
}

// GetUser returns the caller's denormalized profile.
func (userHandler *UserHandler) GetUser(c *gin.Context) {
	username := c.GetString("username")

	view, err := userHandler.userUsecase.GetUser(c.Request.Context(), username)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

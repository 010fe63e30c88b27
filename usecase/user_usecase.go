package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"youtube-clone/domain/apperror"
	"youtube-clone/domain/dto"
	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
	"youtube-clone/infrastructure/logger"
	"youtube-clone/infrastructure/utils"
)

const tokenTTL = 24 * time.Hour

type IUserUsecase interface {
	Register(ctx context.Context, username, password, name, avatar string) error
	Login(ctx context.Context, username, password string) (string, error)
	GetUser(ctx context.Context, username string) (dto.UserView, error)
}

type UserUsecase struct {
	userRepo  repository.IUser
	userView  repository.IUserView
	secretKey string
}

func NewUserUsecase(userRepo repository.IUser, userView repository.IUserView, secretKey string) IUserUsecase {
	return &UserUsecase{userRepo: userRepo, userView: userView, secretKey: secretKey}
}

func (u *UserUsecase) Register(ctx context.Context, username, password, name, avatar string) error {
	username = strings.ToLower(username)
	if !model.IsValidName(name) {
		return apperror.New(http.StatusBadRequest, "error", "Please provide a valid name (only letters and spaces are allowed)")
	}

	_, err := u.userRepo.GetByUserName(ctx, username)
	if err == nil {
		return apperror.New(http.StatusConflict, "error", "Username already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return apperror.New(http.StatusInternalServerError, "error", "Internal server error").Detailed("details", err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "error", "Internal server error").Detailed("details", err.Error())
	}
	if avatar == "" {
		avatar = model.DefaultAvatar
	}

	user := model.User{
		Username:     username,
		Name:         strings.ToLower(name),
		Password:     string(hashed),
		Avatar:       avatar,
		Channels:     []string{},
		Subscription: []string{},
		Playlists:    model.DefaultPlaylists(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// Duplicate display names surface here through the unique index.
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		return apperror.New(http.StatusInternalServerError, "error", "Internal server error").Detailed("details", err.Error())
	}
	return nil
}

func (u *UserUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.userRepo.GetByUserName(ctx, strings.ToLower(username))
	if errors.Is(err, repository.ErrNotFound) {
		return "", apperror.New(http.StatusNotFound, "error", "User is not registered")
	}
	if err != nil {
		return "", apperror.New(http.StatusInternalServerError, "error", "An unexpected error occurred").Detailed("details", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperror.New(http.StatusForbidden, "error", "Password is incorrect")
	}

	token, err := utils.GenerateToken(map[string]interface{}{
		"_id": user.ID.Hex(),
		"exp": utils.GetCurrentTime().Add(tokenTTL).Unix(),
	}, u.secretKey)
	if err != nil {
		return "", apperror.New(http.StatusInternalServerError, "error", "An unexpected error occurred").Detailed("details", err.Error())
	}
	return token, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, username string) (dto.UserView, error) {
	view, err := u.userView.GetUserDetails(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.UserView{}, apperror.New(http.StatusNotFound, "message", "No user found")
	}
	if err != nil {
		return dto.UserView{}, apperror.New(http.StatusInternalServerError, "message", err.Error())
	}
	return view, nil
}

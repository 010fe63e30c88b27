package usecase_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"youtube-clone/domain/apperror"
	"youtube-clone/domain/dto"
	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
	"youtube-clone/usecase"
)

const testSecret = "test-secret"

func TestUserUsecase_Register(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserView := new(MockUserViewRepository)

	mockUserRepo.On("GetByUserName", mock.Anything, "alice").
		Return(model.User{}, repository.ErrNotFound).
		Once()
	mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(user model.User) bool {
		if user.Username != "alice" || user.Name != "alice smith" {
			return false
		}
		if user.Avatar != model.DefaultAvatar {
			return false
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")) != nil {
			return false
		}
		return len(user.Playlists) == 2 &&
			user.Playlists[0].Kind == model.PlaylistKindLiked &&
			user.Playlists[1].Kind == model.PlaylistKindWatchLater
	})).Return(nil).Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, mockUserView, testSecret)
	err := userUsecase.Register(context.Background(), "Alice", "secret", "Alice Smith", "")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestUserUsecase_Register_InvalidName(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserView := new(MockUserViewRepository)

	userUsecase := usecase.NewUserUsecase(mockUserRepo, mockUserView, testSecret)
	err := userUsecase.Register(context.Background(), "alice", "secret", "alice-42", "")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Please provide a valid name (only letters and spaces are allowed)", appErr.Message)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUsecase_Register_DuplicateUsername(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserView := new(MockUserViewRepository)

	mockUserRepo.On("GetByUserName", mock.Anything, "alice").
		Return(model.User{Username: "alice"}, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, mockUserView, testSecret)
	err := userUsecase.Register(context.Background(), "alice", "secret", "Alice", "")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Username already exists", appErr.Message)
	mockUserRepo.AssertExpectations(t)
}

func TestUserUsecase_Login(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserView := new(MockUserViewRepository)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), 10)
	userID := bson.NewObjectID()
	mockUserRepo.On("GetByUserName", mock.Anything, "alice").
		Return(model.User{ID: userID, Username: "alice", Password: string(hashed)}, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, mockUserView, testSecret)
	token, err := userUsecase.Login(context.Background(), "Alice", "secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	var claims model.UserClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, userID.Hex(), claims.UserID)
	mockUserRepo.AssertExpectations(t)
}

func TestUserUsecase_Login_NotRegistered(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserView := new(MockUserViewRepository)

	mockUserRepo.On("GetByUserName", mock.Anything, "ghost").
		Return(model.User{}, repository.ErrNotFound).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, mockUserView, testSecret)
	_, err := userUsecase.Login(context.Background(), "ghost", "secret")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "User is not registered", appErr.Message)
}

func TestUserUsecase_Login_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserView := new(MockUserViewRepository)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), 10)
	mockUserRepo.On("GetByUserName", mock.Anything, "alice").
		Return(model.User{Username: "alice", Password: string(hashed)}, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, mockUserView, testSecret)
	_, err := userUsecase.Login(context.Background(), "alice", "wrong")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)
	assert.Equal(t, "Password is incorrect", appErr.Message)
}

func TestUserUsecase_GetUser_NotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserView := new(MockUserViewRepository)

	mockUserView.On("GetUserDetails", mock.Anything, "ghost").
		Return(dto.UserView{}, repository.ErrNotFound).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepo, mockUserView, testSecret)
	_, err := userUsecase.GetUser(context.Background(), "ghost")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "No user found", appErr.Message)
	assert.Equal(t, "message", appErr.Key)
}

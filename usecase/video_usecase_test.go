package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/apperror"
	"youtube-clone/domain/dto"
	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
	"youtube-clone/usecase"
)

func TestVideoUsecase_List_Empty(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockChannelRepo := new(MockChannelRepository)
	mockVideoView := new(MockVideoViewRepository)

	mockVideoView.On("GetAllVideos", mock.Anything).Return([]dto.VideoWithChannel{}, nil).Once()

	videoUsecase := usecase.NewVideoUsecase(mockVideoRepo, mockChannelRepo, mockVideoView)
	_, err := videoUsecase.List(context.Background())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "No videos found", appErr.Message)
}

func TestVideoUsecase_Get_InvalidID(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockChannelRepo := new(MockChannelRepository)
	mockVideoView := new(MockVideoViewRepository)

	videoUsecase := usecase.NewVideoUsecase(mockVideoRepo, mockChannelRepo, mockVideoView)
	_, err := videoUsecase.Get(context.Background(), "bogus")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
	assert.Equal(t, "An unexpected error occurred", appErr.Message)
	assert.Equal(t, "details", appErr.DetailKey)
}

func TestVideoUsecase_Get_NotFound(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockChannelRepo := new(MockChannelRepository)
	mockVideoView := new(MockVideoViewRepository)

	videoID := bson.NewObjectID()
	mockVideoView.On("GetVideoByID", mock.Anything, videoID).
		Return(dto.VideoWithChannel{}, repository.ErrNotFound).
		Once()

	videoUsecase := usecase.NewVideoUsecase(mockVideoRepo, mockChannelRepo, mockVideoView)
	_, err := videoUsecase.Get(context.Background(), videoID.Hex())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, fmt.Sprintf("No video with ID %s found", videoID.Hex()), appErr.Message)
}

func TestVideoUsecase_Upload(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockChannelRepo := new(MockChannelRepository)
	mockVideoView := new(MockVideoViewRepository)

	videoID := bson.NewObjectID()
	mockVideoRepo.On("Create", mock.Anything, mock.MatchedBy(func(video model.Video) bool {
		return video.Title == "Intro" &&
			video.ChannelName == "TechTalks" &&
			video.Views == 0 && video.Likes == 0 &&
			len(video.Comments) == 0 && len(video.DislikedBy) == 0 &&
			!video.UploadDate.IsZero()
	})).Return(videoID, nil).Once()
	mockChannelRepo.On("AddVideo", mock.Anything, "TechTalks", videoID).Return(nil).Once()
	mockVideoView.On("GetChannelWithVideos", mock.Anything, "TechTalks").
		Return(dto.ChannelWithVideos{Channel: model.Channel{ChannelName: "TechTalks"}}, nil).
		Once()

	videoUsecase := usecase.NewVideoUsecase(mockVideoRepo, mockChannelRepo, mockVideoView)
	channel, err := videoUsecase.Upload(context.Background(), "TechTalks", "Intro",
		"https://cdn.example.com/thumb.jpg", "https://cdn.example.com/video.mp4", "First video", []string{"tech"})

	assert.NoError(t, err)
	assert.Equal(t, "TechTalks", channel.ChannelName)
	mockVideoRepo.AssertExpectations(t)
	mockChannelRepo.AssertExpectations(t)
	mockVideoView.AssertExpectations(t)
}

func TestVideoUsecase_Upload_ChannelNotFound(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockChannelRepo := new(MockChannelRepository)
	mockVideoView := new(MockVideoViewRepository)

	videoID := bson.NewObjectID()
	mockVideoRepo.On("Create", mock.Anything, mock.Anything).Return(videoID, nil).Once()
	mockChannelRepo.On("AddVideo", mock.Anything, "ghost", videoID).Return(repository.ErrNotFound).Once()

	videoUsecase := usecase.NewVideoUsecase(mockVideoRepo, mockChannelRepo, mockVideoView)
	_, err := videoUsecase.Upload(context.Background(), "ghost", "Intro",
		"https://cdn.example.com/thumb.jpg", "https://cdn.example.com/video.mp4", "First video", []string{"tech"})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Channel not found", appErr.Message)
	assert.Equal(t, "error", appErr.Key)
	// The inserted video document stays behind unreferenced.
	mockVideoRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVideoUsecase_Update_PartialFields(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockChannelRepo := new(MockChannelRepository)
	mockVideoView := new(MockVideoViewRepository)

	videoID := bson.NewObjectID()
	existing := model.Video{
		ID:          videoID,
		Title:       "Old title",
		Thumbnail:   "https://cdn.example.com/old.jpg",
		Description: "Old description",
		Categories:  []string{"tech"},
	}
	mockVideoRepo.On("GetByID", mock.Anything, videoID).Return(existing, nil).Once()
	mockVideoRepo.On("Update", mock.Anything, mock.MatchedBy(func(video model.Video) bool {
		return video.Title == "New title" &&
			video.Thumbnail == "https://cdn.example.com/old.jpg" &&
			video.Description == "Old description"
	})).Return(nil).Once()

	videoUsecase := usecase.NewVideoUsecase(mockVideoRepo, mockChannelRepo, mockVideoView)
	video, err := videoUsecase.Update(context.Background(), videoID.Hex(), model.ReqUpdateVideo{Title: "New title"})

	assert.NoError(t, err)
	assert.Equal(t, "New title", video.Title)
	mockVideoRepo.AssertExpectations(t)
}

func TestVideoUsecase_Delete(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockChannelRepo := new(MockChannelRepository)
	mockVideoView := new(MockVideoViewRepository)

	videoID := bson.NewObjectID()
	mockVideoRepo.On("Delete", mock.Anything, videoID).Return(nil).Once()
	mockChannelRepo.On("RemoveVideo", mock.Anything, "TechTalks", videoID).Return(nil).Once()
	mockVideoView.On("GetChannelWithVideos", mock.Anything, "TechTalks").
		Return(dto.ChannelWithVideos{Channel: model.Channel{ChannelName: "TechTalks"}}, nil).
		Once()

	videoUsecase := usecase.NewVideoUsecase(mockVideoRepo, mockChannelRepo, mockVideoView)
	channel, err := videoUsecase.Delete(context.Background(), "TechTalks", videoID.Hex())

	assert.NoError(t, err)
	assert.Equal(t, "TechTalks", channel.ChannelName)
	mockVideoRepo.AssertExpectations(t)
	mockChannelRepo.AssertExpectations(t)
}

func TestVideoUsecase_Delete_NotLinked(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockChannelRepo := new(MockChannelRepository)
	mockVideoView := new(MockVideoViewRepository)

	videoID := bson.NewObjectID()
	mockVideoRepo.On("Delete", mock.Anything, videoID).Return(nil).Once()
	mockChannelRepo.On("RemoveVideo", mock.Anything, "TechTalks", videoID).Return(repository.ErrNotFound).Once()

	videoUsecase := usecase.NewVideoUsecase(mockVideoRepo, mockChannelRepo, mockVideoView)
	_, err := videoUsecase.Delete(context.Background(), "TechTalks", videoID.Hex())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Channel not found or video not linked to channel", appErr.Message)
}

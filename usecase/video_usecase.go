package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/apperror"
	"youtube-clone/domain/dto"
	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
	"youtube-clone/infrastructure/utils"
)

type IVideoUsecase interface {
	List(ctx context.Context) ([]dto.VideoWithChannel, error)
	Get(ctx context.Context, id string) (dto.VideoWithChannel, error)
	Upload(ctx context.Context, channelName, title, thumbnail, videoLink, description string, categories []string) (dto.ChannelWithVideos, error)
	Update(ctx context.Context, id string, req model.ReqUpdateVideo) (model.Video, error)
	Delete(ctx context.Context, channelName, id string) (dto.ChannelWithVideos, error)
}

type VideoUsecase struct {
	videoRepo   repository.IVideo
	channelRepo repository.IChannel
	videoView   repository.IVideoView
}

func NewVideoUsecase(videoRepo repository.IVideo, channelRepo repository.IChannel, videoView repository.IVideoView) IVideoUsecase {
	return &VideoUsecase{videoRepo: videoRepo, channelRepo: channelRepo, videoView: videoView}
}

func (u *VideoUsecase) List(ctx context.Context) ([]dto.VideoWithChannel, error) {
	videos, err := u.videoView.GetAllVideos(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "message", "An unexpected error occurred").Detailed("details", err.Error())
	}
	if len(videos) == 0 {
		return nil, apperror.New(http.StatusNotFound, "message", "No videos found")
	}
	return videos, nil
}

func (u *VideoUsecase) Get(ctx context.Context, id string) (dto.VideoWithChannel, error) {
	videoID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return dto.VideoWithChannel{}, apperror.New(http.StatusInternalServerError, "message", "An unexpected error occurred").Detailed("details", err.Error())
	}
	video, err := u.videoView.GetVideoByID(ctx, videoID)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.VideoWithChannel{}, apperror.New(http.StatusNotFound, "message", fmt.Sprintf("No video with ID %s found", id))
	}
	if err != nil {
		return dto.VideoWithChannel{}, apperror.New(http.StatusInternalServerError, "message", "An unexpected error occurred").Detailed("details", err.Error())
	}
	return video, nil
}

func (u *VideoUsecase) Upload(ctx context.Context, channelName, title, thumbnail, videoLink, description string, categories []string) (dto.ChannelWithVideos, error) {
	video := model.Video{
		Title:       title,
		Thumbnail:   thumbnail,
		VideoLink:   videoLink,
		Description: description,
		Categories:  categories,
		ChannelName: channelName,
		Views:       0,
		Likes:       0,
		UploadDate:  utils.GetCurrentTime(),
		Comments:    []model.Comment{},
		DislikedBy:  []bson.ObjectID{},
	}
	videoID, err := u.videoRepo.Create(ctx, video)
	if err != nil {
		return dto.ChannelWithVideos{}, apperror.New(http.StatusInternalServerError, "error", "Internal server error").Detailed("details", err.Error())
	}

	// A failed link leaves the video document in place, unreferenced.
	err = u.channelRepo.AddVideo(ctx, channelName, videoID)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.ChannelWithVideos{}, apperror.New(http.StatusNotFound, "error", "Channel not found")
	}
	if err != nil {
		return dto.ChannelWithVideos{}, apperror.New(http.StatusInternalServerError, "error", "Internal server error").Detailed("details", err.Error())
	}

	channel, err := u.videoView.GetChannelWithVideos(ctx, channelName)
	if err != nil {
		return dto.ChannelWithVideos{}, apperror.New(http.StatusInternalServerError, "error", "Internal server error").Detailed("details", err.Error())
	}
	return channel, nil
}

func (u *VideoUsecase) Update(ctx context.Context, id string, req model.ReqUpdateVideo) (model.Video, error) {
	videoID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.Video{}, u.updateInternal(err)
	}
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Video{}, apperror.New(http.StatusNotFound, "message", "Video not found.")
	}
	if err != nil {
		return model.Video{}, u.updateInternal(err)
	}

	if req.Title != "" {
		video.Title = req.Title
	}
	if req.Thumbnail != "" {
		video.Thumbnail = req.Thumbnail
	}
	if req.VideoLink != "" {
		video.VideoLink = req.VideoLink
	}
	if req.Description != "" {
		video.Description = req.Description
	}
	if len(req.Categories) > 0 {
		video.Categories = req.Categories
	}

	if err := u.videoRepo.Update(ctx, video); err != nil {
		return model.Video{}, u.updateInternal(err)
	}
	return video, nil
}

func (u *VideoUsecase) Delete(ctx context.Context, channelName, id string) (dto.ChannelWithVideos, error) {
	videoID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return dto.ChannelWithVideos{}, u.deleteInternal(err)
	}

	err = u.videoRepo.Delete(ctx, videoID)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.ChannelWithVideos{}, apperror.New(http.StatusNotFound, "message", "Video not found")
	}
	if err != nil {
		return dto.ChannelWithVideos{}, u.deleteInternal(err)
	}

	err = u.channelRepo.RemoveVideo(ctx, channelName, videoID)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.ChannelWithVideos{}, apperror.New(http.StatusNotFound, "message", "Channel not found or video not linked to channel")
	}
	if err != nil {
		return dto.ChannelWithVideos{}, u.deleteInternal(err)
	}

	channel, err := u.videoView.GetChannelWithVideos(ctx, channelName)
	if err != nil {
		return dto.ChannelWithVideos{}, u.deleteInternal(err)
	}
	return channel, nil
}

func (u *VideoUsecase) updateInternal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "An error occurred while updating the video.").Detailed("error", err.Error())
}

func (u *VideoUsecase) deleteInternal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "Server error").Detailed("error", err.Error())
}

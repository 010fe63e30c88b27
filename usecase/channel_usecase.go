package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/apperror"
	"youtube-clone/domain/dto"
	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
)

type IChannelUsecase interface {
	Create(ctx context.Context, owner, channelName, description, channelBanner, channelLogo string) (dto.UserView, error)
	View(ctx context.Context, channelName string) (dto.ChannelWithVideos, error)
	Update(ctx context.Context, owner, channelName string, req model.ReqUpdateChannel) (model.Channel, error)
	Delete(ctx context.Context, owner, channelName string) error
}

type ChannelUsecase struct {
	channelRepo repository.IChannel
	userRepo    repository.IUser
	userView    repository.IUserView
	videoView   repository.IVideoView
}

func NewChannelUsecase(channelRepo repository.IChannel, userRepo repository.IUser, userView repository.IUserView, videoView repository.IVideoView) IChannelUsecase {
	return &ChannelUsecase{channelRepo: channelRepo, userRepo: userRepo, userView: userView, videoView: videoView}
}

func (u *ChannelUsecase) Create(ctx context.Context, owner, channelName, description, channelBanner, channelLogo string) (dto.UserView, error) {
	// The existence probe lowercases the requested name while stored names
	// keep their original case; observed behavior, kept as-is.
	_, err := u.channelRepo.GetByName(ctx, strings.ToLower(channelName))
	if err == nil {
		return dto.UserView{}, apperror.New(http.StatusForbidden, "message", "Channel already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return dto.UserView{}, u.internal(err)
	}

	if channelBanner == "" {
		channelBanner = model.DefaultChannelBanner
	}
	if channelLogo == "" {
		channelLogo = model.DefaultChannelLogo
	}
	if !model.IsURL(channelBanner) || !model.IsURL(channelLogo) {
		return dto.UserView{}, apperror.New(http.StatusBadRequest, "error", "Invalid URL format")
	}

	channel := model.Channel{
		ChannelName:   strings.TrimSpace(channelName),
		Owner:         owner,
		Description:   description,
		ChannelBanner: channelBanner,
		ChannelLogo:   channelLogo,
		Subscribers:   0,
		Videos:        []bson.ObjectID{},
	}
	if err := u.channelRepo.Create(ctx, channel); err != nil {
		return dto.UserView{}, u.internal(err)
	}
	// The owner's channels list receives the name exactly as submitted.
	if err := u.userRepo.AddChannel(ctx, owner, channelName); err != nil {
		return dto.UserView{}, u.internal(err)
	}

	view, err := u.userView.GetUserDetails(ctx, owner)
	if err != nil {
		return dto.UserView{}, u.internal(err)
	}
	return view, nil
}

func (u *ChannelUsecase) View(ctx context.Context, channelName string) (dto.ChannelWithVideos, error) {
	channel, err := u.videoView.GetChannelWithVideos(ctx, channelName)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.ChannelWithVideos{}, apperror.New(http.StatusNotFound, "message", "No such channel")
	}
	if err != nil {
		return dto.ChannelWithVideos{}, apperror.New(http.StatusInternalServerError, "message", "An unexpected error occurred").Detailed("error", err.Error())
	}
	return channel, nil
}

func (u *ChannelUsecase) Update(ctx context.Context, owner, channelName string, req model.ReqUpdateChannel) (model.Channel, error) {
	channel, err := u.channelRepo.GetByName(ctx, channelName)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Channel{}, apperror.New(http.StatusNotFound, "message", "Channel not found.")
	}
	if err != nil {
		return model.Channel{}, u.updateInternal(err)
	}

	if req.ChannelBanner != "" {
		channel.ChannelBanner = req.ChannelBanner
	}
	if req.ChannelLogo != "" {
		channel.ChannelLogo = req.ChannelLogo
	}
	if req.Description != "" {
		channel.Description = req.Description
	}
	if req.NewChannelName != "" {
		_, err := u.channelRepo.GetByName(ctx, req.NewChannelName)
		if err == nil {
			return model.Channel{}, apperror.New(http.StatusConflict, "message", "The new channel name is already in use.")
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return model.Channel{}, u.updateInternal(err)
		}
		channel.ChannelName = strings.TrimSpace(req.NewChannelName)
	}

	if err := u.channelRepo.Update(ctx, channel); err != nil {
		return model.Channel{}, u.updateInternal(err)
	}

	if req.NewChannelName != "" {
		if err := u.userRepo.RemoveChannel(ctx, owner, channelName); err != nil {
			return model.Channel{}, u.updateInternal(err)
		}
		if err := u.userRepo.AddChannel(ctx, owner, req.NewChannelName); err != nil {
			return model.Channel{}, u.updateInternal(err)
		}
	}
	return channel, nil
}

func (u *ChannelUsecase) Delete(ctx context.Context, owner, channelName string) error {
	err := u.channelRepo.Delete(ctx, channelName)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.New(http.StatusNotFound, "message", "Channel not found")
	}
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "message", "Server error")
	}
	if err := u.userRepo.RemoveChannel(ctx, owner, channelName); err != nil {
		return apperror.New(http.StatusInternalServerError, "message", "Server error")
	}
	return nil
}

func (u *ChannelUsecase) internal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "Internal server error").Detailed("error", err.Error())
}

func (u *ChannelUsecase) updateInternal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "An error occurred while updating the channel.").Detailed("error", err.Error())
}

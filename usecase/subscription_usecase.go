package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/apperror"
	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
)

// SubscribeResult reports the state after a subscription toggle, with the
// refreshed user and channel documents.
type SubscribeResult struct {
	Subscribed bool
	Message    string
	User       model.User
	Channel    model.Channel
}

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, userID, channelName string) (SubscribeResult, error)
}

type SubscriptionUsecase struct {
	userRepo    repository.IUser
	channelRepo repository.IChannel
}

func NewSubscriptionUsecase(userRepo repository.IUser, channelRepo repository.IChannel) ISubscriptionUsecase {
	return &SubscriptionUsecase{userRepo: userRepo, channelRepo: channelRepo}
}

// Toggle flips the caller's subscription to the channel and moves the
// channel's subscriber counter the same direction.
func (u *SubscriptionUsecase) Toggle(ctx context.Context, userID, channelName string) (SubscribeResult, error) {
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return SubscribeResult{}, apperror.New(http.StatusNotFound, "message", "User not found.")
	}
	user, err := u.userRepo.GetByID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return SubscribeResult{}, apperror.New(http.StatusNotFound, "message", "User not found.")
	}
	if err != nil {
		return SubscribeResult{}, u.internal(err)
	}

	channel, err := u.channelRepo.GetByName(ctx, channelName)
	if errors.Is(err, repository.ErrNotFound) {
		return SubscribeResult{}, apperror.New(http.StatusNotFound, "message", "Channel not found.")
	}
	if err != nil {
		return SubscribeResult{}, u.internal(err)
	}

	subscribed := false
	var message string
	if user.IsSubscribed(channel.ChannelName) {
		if err := u.userRepo.RemoveSubscription(ctx, user.Username, channel.ChannelName); err != nil {
			return SubscribeResult{}, u.internal(err)
		}
		if err := u.channelRepo.IncSubscribers(ctx, channel.ChannelName, -1); err != nil {
			return SubscribeResult{}, u.internal(err)
		}
		message = fmt.Sprintf("Unsubscribed from %s.", channel.ChannelName)
	} else {
		if err := u.userRepo.AddSubscription(ctx, user.Username, channel.ChannelName); err != nil {
			return SubscribeResult{}, u.internal(err)
		}
		if err := u.channelRepo.IncSubscribers(ctx, channel.ChannelName, 1); err != nil {
			return SubscribeResult{}, u.internal(err)
		}
		subscribed = true
		message = fmt.Sprintf("Subscribed to %s.", channel.ChannelName)
	}

	updatedUser, err := u.userRepo.GetByID(ctx, uid)
	if err != nil {
		return SubscribeResult{}, u.internal(err)
	}
	updatedChannel, err := u.channelRepo.GetByName(ctx, channel.ChannelName)
	if err != nil {
		return SubscribeResult{}, u.internal(err)
	}
	return SubscribeResult{Subscribed: subscribed, Message: message, User: updatedUser, Channel: updatedChannel}, nil
}

func (u *SubscriptionUsecase) internal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "Something went wrong.").Detailed("error", err.Error())
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/model"
)

type IChannel interface {
	GetByName(ctx context.Context, channelName string) (model.Channel, error)
	Create(ctx context.Context, channel model.Channel) error
	Update(ctx context.Context, channel model.Channel) error
	Delete(ctx context.Context, channelName string) error

	AddVideo(ctx context.Context, channelName string, videoID bson.ObjectID) error
	RemoveVideo(ctx context.Context, channelName string, videoID bson.ObjectID) error

	// IncSubscribers adjusts the subscriber counter; negative deltas are
	// guarded so the counter never drops below zero.
	IncSubscribers(ctx context.Context, channelName string, delta int64) error
}

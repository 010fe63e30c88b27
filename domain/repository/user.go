package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/model"
)

type IUser interface {
	GetByUserName(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	Create(ctx context.Context, user model.User) error

	AddChannel(ctx context.Context, username, channelName string) error
	RemoveChannel(ctx context.Context, username, channelName string) error

	AddSubscription(ctx context.Context, username, channelName string) error
	RemoveSubscription(ctx context.Context, username, channelName string) error

	AddPlaylist(ctx context.Context, username string, playlist model.Playlist) error
	RemovePlaylist(ctx context.Context, username, playlistName string) error
	AddPlaylistVideoByName(ctx context.Context, username, playlistName string, videoID bson.ObjectID) error
	RemovePlaylistVideoByName(ctx context.Context, username, playlistName string, videoID bson.ObjectID) error
	AddPlaylistVideoByKind(ctx context.Context, username string, kind model.PlaylistKind, videoID bson.ObjectID) error
	RemovePlaylistVideoByKind(ctx context.Context, username string, kind model.PlaylistKind, videoID bson.ObjectID) error
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/dto"
)

// IUserView builds the denormalized user document (channels, subscriptions
// and hydrated playlists joined in).
type IUserView interface {
	GetUserDetails(ctx context.Context, username string) (dto.UserView, error)
}

// IVideoView joins videos with their owning channel and channels with their
// full video documents.
type IVideoView interface {
	GetAllVideos(ctx context.Context) ([]dto.VideoWithChannel, error)
	GetVideoByID(ctx context.Context, id bson.ObjectID) (dto.VideoWithChannel, error)
	GetChannelWithVideos(ctx context.Context, channelName string) (dto.ChannelWithVideos, error)
}

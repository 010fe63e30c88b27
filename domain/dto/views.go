package dto

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/model"
)

// PlaylistView is a playlist with its video ids replaced by full video
// documents, or the unknown-video placeholder when an id no longer resolves.
// The entries are heterogeneous, so they stay as raw documents.
type PlaylistView struct {
	Name   string   `bson:"name" json:"name"`
	Kind   string   `bson:"kind,omitempty" json:"kind,omitempty"`
	Videos []bson.M `bson:"videos" json:"videos"`
}

// UserView is the denormalized user document returned by most mutating
// endpoints: channel and subscription summaries joined in, playlists hydrated.
type UserView struct {
	ID                  bson.ObjectID   `bson:"_id" json:"_id"`
	Username            string          `bson:"username" json:"username"`
	Name                string          `bson:"name" json:"name"`
	Avatar              string          `bson:"avatar" json:"avatar"`
	ChannelDetails      []model.Channel `bson:"channelDetails" json:"channelDetails"`
	SubscriptionDetails []model.Channel `bson:"subscriptionDetails" json:"subscriptionDetails"`
	Playlists           []PlaylistView  `bson:"playlists" json:"playlists"`
}

// VideoWithChannel is a video joined with its owning channel's public fields.
// ChannelDetails is nil when the channel no longer exists.
type VideoWithChannel struct {
	model.Video    `bson:",inline"`
	ChannelDetails *model.Channel `bson:"channelDetails,omitempty" json:"channelDetails,omitempty"`
}

// ChannelWithVideos is a channel joined with the full documents of every
// video id it references; ids that no longer resolve are omitted.
type ChannelWithVideos struct {
	model.Channel `bson:",inline"`
	VideoDetails  []model.Video `bson:"videoDetails" json:"videoDetails"`
}

// Res is the envelope the auth middleware answers with.
type Res struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}

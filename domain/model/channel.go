package model

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	DefaultChannelBanner = "https://ik.imagekit.io/kf28wicizj/Youtube/Untitled%20design.png?updatedAt=1736418477272"
	DefaultChannelLogo   = "https://ik.imagekit.io/kf28wicizj/Youtube/Untitled%20design%20(1).png?updatedAt=1736419152703"
)

type Channel struct {
	ID            bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	ChannelName   string          `bson:"channelName" json:"channelName"`
	Owner         string          `bson:"owner" json:"owner"`
	Description   string          `bson:"description" json:"description"`
	ChannelBanner string          `bson:"channelBanner" json:"channelBanner"`
	ChannelLogo   string          `bson:"channelLogo" json:"channelLogo"`
	Subscribers   int64           `bson:"subscribers" json:"subscribers"`
	Videos        []bson.ObjectID `bson:"videos" json:"videos"`
}

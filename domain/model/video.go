package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `bson:"_id" json:"_id"`
	Username  string        `bson:"username" json:"username"`
	Text      string        `bson:"text" json:"text"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
	Likes     int64         `bson:"likes" json:"likes"`
	Dislikes  int64         `bson:"dislikes" json:"dislikes"`
}

type Video struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string          `bson:"title" json:"title"`
	Thumbnail   string          `bson:"thumbnail" json:"thumbnail"`
	VideoLink   string          `bson:"videoLink" json:"videoLink"`
	Description string          `bson:"description" json:"description"`
	Categories  []string        `bson:"categories" json:"categories"`
	ChannelName string          `bson:"channelName" json:"channelName"`
	Views       int64           `bson:"views" json:"views"`
	Likes       int64           `bson:"likes" json:"likes"`
	UploadDate  time.Time       `bson:"uploadDate" json:"uploadDate"`
	Comments    []Comment       `bson:"comments" json:"comments"`
	DislikedBy  []bson.ObjectID `bson:"dislikedBy" json:"dislikedBy"`
}

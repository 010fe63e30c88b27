package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/model"
)

type IVideo interface {
	GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error)
	Create(ctx context.Context, video model.Video) (bson.ObjectID, error)
	Update(ctx context.Context, video model.Video) error
	Delete(ctx context.Context, id bson.ObjectID) error

	// IncLikes adjusts the like counter; negative deltas are guarded so the
	// counter never drops below zero.
	IncLikes(ctx context.Context, id bson.ObjectID, delta int64) error
	AddDisliker(ctx context.Context, videoID, userID bson.ObjectID) error
	RemoveDisliker(ctx context.Context, videoID, userID bson.ObjectID) error

	AddComment(ctx context.Context, videoID bson.ObjectID, comment model.Comment) error
	SetCommentText(ctx context.Context, videoID, commentID bson.ObjectID, text string) error
	RemoveComment(ctx context.Context, videoID, commentID bson.ObjectID) error
}

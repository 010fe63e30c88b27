package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
)

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{col: db.Collection("videos")}
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	var video model.Video
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Video{}, err
	}
	return video, nil
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, video)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *VideoRepository) Update(ctx context.Context, video model.Video) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: video.Title},
		{Key: "thumbnail", Value: video.Thumbnail},
		{Key: "videoLink", Value: video.VideoLink},
		{Key: "description", Value: video.Description},
		{Key: "categories", Value: video.Categories},
	}}}
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: video.ID}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	err := r.col.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

func (r *VideoRepository) IncLikes(ctx context.Context, id bson.ObjectID, delta int64) error {
	filter := counterFilter(bson.D{{Key: "_id", Value: id}}, "likes", delta)
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "likes", Value: delta}}}}
	_, err := r.col.UpdateOne(ctx, filter, update)
	return err
}

func (r *VideoRepository) AddDisliker(ctx context.Context, videoID, userID bson.ObjectID) error {
	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: "dislikedBy", Value: userID}}}}
	return r.updateByID(ctx, videoID, update)
}

func (r *VideoRepository) RemoveDisliker(ctx context.Context, videoID, userID bson.ObjectID) error {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "dislikedBy", Value: userID}}}}
	return r.updateByID(ctx, videoID, update)
}

func (r *VideoRepository) AddComment(ctx context.Context, videoID bson.ObjectID, comment model.Comment) error {
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "comments", Value: comment}}}}
	return r.updateByID(ctx, videoID, update)
}

func (r *VideoRepository) SetCommentText(ctx context.Context, videoID, commentID bson.ObjectID, text string) error {
	filter := bson.D{{Key: "_id", Value: videoID}, {Key: "comments._id", Value: commentID}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "comments.$.text", Value: text}}}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) RemoveComment(ctx context.Context, videoID, commentID bson.ObjectID) error {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "comments", Value: bson.D{{Key: "_id", Value: commentID}}}}}}
	return r.updateByID(ctx, videoID, update)
}

func (r *VideoRepository) updateByID(ctx context.Context, id bson.ObjectID, update bson.D) error {
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

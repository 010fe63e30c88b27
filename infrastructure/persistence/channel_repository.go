package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
)

type ChannelRepository struct {
	col *mongo.Collection
}

func NewChannelRepository(db *mongo.Database) repository.IChannel {
	return &ChannelRepository{col: db.Collection("channels")}
}

func (r *ChannelRepository) GetByName(ctx context.Context, channelName string) (model.Channel, error) {
	var channel model.Channel
	err := r.col.FindOne(ctx, bson.D{{Key: "channelName", Value: channelName}}).Decode(&channel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Channel{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Channel{}, err
	}
	return channel, nil
}

func (r *ChannelRepository) Create(ctx context.Context, channel model.Channel) error {
	_, err := r.col.InsertOne(ctx, channel)
	return err
}

func (r *ChannelRepository) Update(ctx context.Context, channel model.Channel) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "channelName", Value: channel.ChannelName},
		{Key: "description", Value: channel.Description},
		{Key: "channelBanner", Value: channel.ChannelBanner},
		{Key: "channelLogo", Value: channel.ChannelLogo},
	}}}
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: channel.ID}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ChannelRepository) Delete(ctx context.Context, channelName string) error {
	err := r.col.FindOneAndDelete(ctx, bson.D{{Key: "channelName", Value: channelName}}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

func (r *ChannelRepository) AddVideo(ctx context.Context, channelName string, videoID bson.ObjectID) error {
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "videos", Value: videoID}}}}
	return r.updateByName(ctx, channelName, update)
}

func (r *ChannelRepository) RemoveVideo(ctx context.Context, channelName string, videoID bson.ObjectID) error {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}}}
	return r.updateByName(ctx, channelName, update)
}

func (r *ChannelRepository) IncSubscribers(ctx context.Context, channelName string, delta int64) error {
	filter := counterFilter(bson.D{{Key: "channelName", Value: channelName}}, "subscribers", delta)
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "subscribers", Value: delta}}}}
	_, err := r.col.UpdateOne(ctx, filter, update)
	return err
}

func (r *ChannelRepository) updateByName(ctx context.Context, channelName string, update bson.D) error {
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "channelName", Value: channelName}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

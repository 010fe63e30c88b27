package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"youtube-clone/domain/dto"
	"youtube-clone/domain/repository"
)

// VideoViewRepository joins videos with their owning channel (by id or over
// the whole collection) and channels with the full documents of the videos
// they reference.
type VideoViewRepository struct {
	videos   *mongo.Collection
	channels *mongo.Collection
}

func NewVideoViewRepository(db *mongo.Database) repository.IVideoView {
	return &VideoViewRepository{
		videos:   db.Collection("videos"),
		channels: db.Collection("channels"),
	}
}

func (r *VideoViewRepository) GetAllVideos(ctx context.Context) ([]dto.VideoWithChannel, error) {
	return r.aggregateVideos(ctx, videoWithChannelPipeline(nil))
}

func (r *VideoViewRepository) GetVideoByID(ctx context.Context, id bson.ObjectID) (dto.VideoWithChannel, error) {
	match := bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}}
	videos, err := r.aggregateVideos(ctx, videoWithChannelPipeline(match))
	if err != nil {
		return dto.VideoWithChannel{}, err
	}
	if len(videos) == 0 {
		return dto.VideoWithChannel{}, repository.ErrNotFound
	}
	return videos[0], nil
}

func (r *VideoViewRepository) GetChannelWithVideos(ctx context.Context, channelName string) (dto.ChannelWithVideos, error) {
	cursor, err := r.channels.Aggregate(ctx, channelWithVideosPipeline(channelName))
	if err != nil {
		return dto.ChannelWithVideos{}, err
	}
	defer cursor.Close(ctx)

	var channels []dto.ChannelWithVideos
	if err := cursor.All(ctx, &channels); err != nil {
		return dto.ChannelWithVideos{}, err
	}
	if len(channels) == 0 {
		return dto.ChannelWithVideos{}, repository.ErrNotFound
	}
	return channels[0], nil
}

func (r *VideoViewRepository) aggregateVideos(ctx context.Context, pipeline mongo.Pipeline) ([]dto.VideoWithChannel, error) {
	cursor, err := r.videos.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var videos []dto.VideoWithChannel
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// videoWithChannelPipeline attaches the owning channel's public fields to
// each video. The unwind preserves videos whose channel is gone, so those
// come back without channelDetails rather than being dropped.
func videoWithChannelPipeline(match bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, match)
	}
	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "channels"},
			{Key: "localField", Value: "channelName"},
			{Key: "foreignField", Value: "channelName"},
			{Key: "as", Value: "channelDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$channelDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "title", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "videoLink", Value: 1},
			{Key: "description", Value: 1},
			{Key: "categories", Value: 1},
			{Key: "channelName", Value: 1},
			{Key: "views", Value: 1},
			{Key: "likes", Value: 1},
			{Key: "dislikedBy", Value: 1},
			{Key: "uploadDate", Value: 1},
			{Key: "comments", Value: 1},
			{Key: "channelDetails", Value: bson.D{
				{Key: "_id", Value: 1},
				{Key: "description", Value: 1},
				{Key: "channelBanner", Value: 1},
				{Key: "channelLogo", Value: 1},
				{Key: "subscribers", Value: 1},
				{Key: "videos", Value: 1},
				{Key: "channelName", Value: 1},
				{Key: "owner", Value: 1},
			}},
		}}},
	)
}

// channelWithVideosPipeline expands a channel's video id list into the full
// video documents; ids that no longer resolve are omitted by the join.
func channelWithVideosPipeline(channelName string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "channelName", Value: channelName}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "videos"},
			{Key: "localField", Value: "videos"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoDetails"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "channelName", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "description", Value: 1},
			{Key: "channelBanner", Value: 1},
			{Key: "channelLogo", Value: 1},
			{Key: "subscribers", Value: 1},
			{Key: "videos", Value: 1},
			{Key: "videoDetails", Value: 1},
		}}},
	}
}

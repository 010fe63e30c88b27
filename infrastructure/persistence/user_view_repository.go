package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"youtube-clone/domain/dto"
	"youtube-clone/domain/repository"
)

// UserViewRepository builds the denormalized user view: the user document
// joined with full channel documents for its channels and subscriptions, and
// every playlist's video ids replaced by the matching video documents (or the
// unknown-video placeholder when an id no longer resolves).
type UserViewRepository struct {
	col *mongo.Collection
}

func NewUserViewRepository(db *mongo.Database) repository.IUserView {
	return &UserViewRepository{col: db.Collection("users")}
}

func (r *UserViewRepository) GetUserDetails(ctx context.Context, username string) (dto.UserView, error) {
	cursor, err := r.col.Aggregate(ctx, userDetailsPipeline(username))
	if err != nil {
		return dto.UserView{}, err
	}
	defer cursor.Close(ctx)

	var views []dto.UserView
	if err := cursor.All(ctx, &views); err != nil {
		return dto.UserView{}, err
	}
	if len(views) == 0 {
		return dto.UserView{}, repository.ErrNotFound
	}
	return views[0], nil
}

// unknownVideoDoc stands in for playlist entries whose video document no
// longer exists, so a deleted video never leaves a hole in the view.
var unknownVideoDoc = bson.D{
	{Key: "_id", Value: "$$videoId"},
	{Key: "title", Value: "Unknown Video"},
	{Key: "description", Value: "No details available"},
}

// userDetailsPipeline joins channels twice (owned channels and
// subscriptions), collects the union of every playlist's video ids in a
// single lookup, then maps each playlist's ids back onto the matched
// documents so the output keeps the stored playlist order.
func userDetailsPipeline(username string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "channels"},
			{Key: "localField", Value: "channels"},
			{Key: "foreignField", Value: "channelName"},
			{Key: "as", Value: "channelDetails"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "channels"},
			{Key: "localField", Value: "subscription"},
			{Key: "foreignField", Value: "channelName"},
			{Key: "as", Value: "subscriptionDetails"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "videos"},
			{Key: "localField", Value: "playlists.videos"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoDetails"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "name", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "channelDetails", Value: 1},
			{Key: "subscriptionDetails", Value: 1},
			{Key: "playlists", Value: bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: "$playlists"},
				{Key: "as", Value: "playlist"},
				{Key: "in", Value: bson.D{
					{Key: "name", Value: "$$playlist.name"},
					{Key: "kind", Value: "$$playlist.kind"},
					{Key: "videos", Value: bson.D{{Key: "$map", Value: bson.D{
						{Key: "input", Value: "$$playlist.videos"},
						{Key: "as", Value: "videoId"},
						{Key: "in", Value: bson.D{{Key: "$let", Value: bson.D{
							{Key: "vars", Value: bson.D{
								{Key: "videoDetail", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{
									bson.D{{Key: "$filter", Value: bson.D{
										{Key: "input", Value: "$videoDetails"},
										{Key: "as", Value: "videoDetail"},
										{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$videoDetail._id", "$$videoId"}}}},
									}}},
									0,
								}}}},
							}},
							{Key: "in", Value: bson.D{{Key: "$ifNull", Value: bson.A{
								"$$videoDetail",
								unknownVideoDoc,
							}}}},
						}}}},
					}}}},
				}},
			}}}},
		}}},
	}
}

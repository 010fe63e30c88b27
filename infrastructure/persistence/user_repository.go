package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) GetByUserName(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	_, err := r.col.InsertOne(ctx, user)
	return err
}

func (r *UserRepository) AddChannel(ctx context.Context, username, channelName string) error {
	return r.push(ctx, username, "channels", channelName)
}

func (r *UserRepository) RemoveChannel(ctx context.Context, username, channelName string) error {
	return r.pull(ctx, username, "channels", channelName)
}

func (r *UserRepository) AddSubscription(ctx context.Context, username, channelName string) error {
	return r.push(ctx, username, "subscription", channelName)
}

func (r *UserRepository) RemoveSubscription(ctx context.Context, username, channelName string) error {
	return r.pull(ctx, username, "subscription", channelName)
}

func (r *UserRepository) AddPlaylist(ctx context.Context, username string, playlist model.Playlist) error {
	return r.push(ctx, username, "playlists", playlist)
}

func (r *UserRepository) RemovePlaylist(ctx context.Context, username, playlistName string) error {
	return r.pull(ctx, username, "playlists", bson.D{{Key: "name", Value: playlistName}})
}

func (r *UserRepository) AddPlaylistVideoByName(ctx context.Context, username, playlistName string, videoID bson.ObjectID) error {
	filter := bson.D{{Key: "username", Value: username}, {Key: "playlists.name", Value: playlistName}}
	return r.playlistVideoUpdate(ctx, filter, "$push", videoID)
}

func (r *UserRepository) RemovePlaylistVideoByName(ctx context.Context, username, playlistName string, videoID bson.ObjectID) error {
	filter := bson.D{{Key: "username", Value: username}, {Key: "playlists.name", Value: playlistName}}
	return r.playlistVideoUpdate(ctx, filter, "$pull", videoID)
}

func (r *UserRepository) AddPlaylistVideoByKind(ctx context.Context, username string, kind model.PlaylistKind, videoID bson.ObjectID) error {
	filter := bson.D{{Key: "username", Value: username}, {Key: "playlists.kind", Value: kind}}
	return r.playlistVideoUpdate(ctx, filter, "$push", videoID)
}

func (r *UserRepository) RemovePlaylistVideoByKind(ctx context.Context, username string, kind model.PlaylistKind, videoID bson.ObjectID) error {
	filter := bson.D{{Key: "username", Value: username}, {Key: "playlists.kind", Value: kind}}
	return r.playlistVideoUpdate(ctx, filter, "$pull", videoID)
}

// playlistVideoUpdate targets the first playlist matched by the filter via
// the positional operator.
func (r *UserRepository) playlistVideoUpdate(ctx context.Context, filter bson.D, op string, videoID bson.ObjectID) error {
	update := bson.D{{Key: op, Value: bson.D{{Key: "playlists.$.videos", Value: videoID}}}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) push(ctx context.Context, username, field string, value interface{}) error {
	return r.update(ctx, username, bson.D{{Key: "$push", Value: bson.D{{Key: field, Value: value}}}})
}

func (r *UserRepository) pull(ctx context.Context, username, field string, value interface{}) error {
	return r.update(ctx, username, bson.D{{Key: "$pull", Value: bson.D{{Key: field, Value: value}}}})
}

func (r *UserRepository) update(ctx context.Context, username string, update bson.D) error {
	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "username", Value: username}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

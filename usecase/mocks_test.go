package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/dto"
	"youtube-clone/domain/model"
)

// Mock implementations shared by the usecase tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUserName(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) AddChannel(ctx context.Context, username, channelName string) error {
	args := m.Called(ctx, username, channelName)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveChannel(ctx context.Context, username, channelName string) error {
	args := m.Called(ctx, username, channelName)
	return args.Error(0)
}

func (m *MockUserRepository) AddSubscription(ctx context.Context, username, channelName string) error {
	args := m.Called(ctx, username, channelName)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveSubscription(ctx context.Context, username, channelName string) error {
	args := m.Called(ctx, username, channelName)
	return args.Error(0)
}

func (m *MockUserRepository) AddPlaylist(ctx context.Context, username string, playlist model.Playlist) error {
	args := m.Called(ctx, username, playlist)
	return args.Error(0)
}

func (m *MockUserRepository) RemovePlaylist(ctx context.Context, username, playlistName string) error {
	args := m.Called(ctx, username, playlistName)
	return args.Error(0)
}

func (m *MockUserRepository) AddPlaylistVideoByName(ctx context.Context, username, playlistName string, videoID bson.ObjectID) error {
	args := m.Called(ctx, username, playlistName, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) RemovePlaylistVideoByName(ctx context.Context, username, playlistName string, videoID bson.ObjectID) error {
	args := m.Called(ctx, username, playlistName, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) AddPlaylistVideoByKind(ctx context.Context, username string, kind model.PlaylistKind, videoID bson.ObjectID) error {
	args := m.Called(ctx, username, kind, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) RemovePlaylistVideoByKind(ctx context.Context, username string, kind model.PlaylistKind, videoID bson.ObjectID) error {
	args := m.Called(ctx, username, kind, videoID)
	return args.Error(0)
}

type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) GetByName(ctx context.Context, channelName string) (model.Channel, error) {
	args := m.Called(ctx, channelName)
	return args.Get(0).(model.Channel), args.Error(1)
}

func (m *MockChannelRepository) Create(ctx context.Context, channel model.Channel) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockChannelRepository) Update(ctx context.Context, channel model.Channel) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockChannelRepository) Delete(ctx context.Context, channelName string) error {
	args := m.Called(ctx, channelName)
	return args.Error(0)
}

func (m *MockChannelRepository) AddVideo(ctx context.Context, channelName string, videoID bson.ObjectID) error {
	args := m.Called(ctx, channelName, videoID)
	return args.Error(0)
}

func (m *MockChannelRepository) RemoveVideo(ctx context.Context, channelName string, videoID bson.ObjectID) error {
	args := m.Called(ctx, channelName, videoID)
	return args.Error(0)
}

func (m *MockChannelRepository) IncSubscribers(ctx context.Context, channelName string, delta int64) error {
	args := m.Called(ctx, channelName, delta)
	return args.Error(0)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) Create(ctx context.Context, video model.Video) (bson.ObjectID, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, video model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) IncLikes(ctx context.Context, id bson.ObjectID, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockVideoRepository) AddDisliker(ctx context.Context, videoID, userID bson.ObjectID) error {
	args := m.Called(ctx, videoID, userID)
	return args.Error(0)
}

func (m *MockVideoRepository) RemoveDisliker(ctx context.Context, videoID, userID bson.ObjectID) error {
	args := m.Called(ctx, videoID, userID)
	return args.Error(0)
}

func (m *MockVideoRepository) AddComment(ctx context.Context, videoID bson.ObjectID, comment model.Comment) error {
	args := m.Called(ctx, videoID, comment)
	return args.Error(0)
}

func (m *MockVideoRepository) SetCommentText(ctx context.Context, videoID, commentID bson.ObjectID, text string) error {
	args := m.Called(ctx, videoID, commentID, text)
	return args.Error(0)
}

func (m *MockVideoRepository) RemoveComment(ctx context.Context, videoID, commentID bson.ObjectID) error {
	args := m.Called(ctx, videoID, commentID)
	return args.Error(0)
}

type MockUserViewRepository struct {
	mock.Mock
}

func (m *MockUserViewRepository) GetUserDetails(ctx context.Context, username string) (dto.UserView, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(dto.UserView), args.Error(1)
}

type MockVideoViewRepository struct {
	mock.Mock
}

func (m *MockVideoViewRepository) GetAllVideos(ctx context.Context) ([]dto.VideoWithChannel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoWithChannel), args.Error(1)
}

func (m *MockVideoViewRepository) GetVideoByID(ctx context.Context, id bson.ObjectID) (dto.VideoWithChannel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.VideoWithChannel), args.Error(1)
}

func (m *MockVideoViewRepository) GetChannelWithVideos(ctx context.Context, channelName string) (dto.ChannelWithVideos, error) {
	args := m.Called(ctx, channelName)
	return args.Get(0).(dto.ChannelWithVideos), args.Error(1)
}

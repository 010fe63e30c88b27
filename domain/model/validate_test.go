package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"youtube-clone/domain/model"
)

func TestIsURL(t *testing.T) {
	assert.True(t, model.IsURL("https://cdn.example.com/avatar.png"))
	assert.True(t, model.IsURL("http://localhost:5173/logo"))
	assert.False(t, model.IsURL("ftp://example.com/file"))
	assert.False(t, model.IsURL("not a url"))
	assert.False(t, model.IsURL("https://with space.com"))
	assert.False(t, model.IsURL(""))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, model.IsValidName("Alice Smith"))
	assert.True(t, model.IsValidName("alice"))
	assert.False(t, model.IsValidName("alice42"))
	assert.False(t, model.IsValidName("alice-smith"))
	assert.False(t, model.IsValidName(""))
}

func TestDefaultPlaylists(t *testing.T) {
	playlists := model.DefaultPlaylists()

	assert.Len(t, playlists, 2)
	assert.Equal(t, "Liked Videos", playlists[0].Name)
	assert.Equal(t, model.PlaylistKindLiked, playlists[0].Kind)
	assert.Equal(t, "Watch Later", playlists[1].Name)
	assert.Equal(t, model.PlaylistKindWatchLater, playlists[1].Kind)
}

func TestUser_LikedPlaylist(t *testing.T) {
	user := model.User{Playlists: model.DefaultPlaylists()}
	liked := user.LikedPlaylist()

	assert.NotNil(t, liked)
	assert.Equal(t, "Liked Videos", liked.Name)

	// A renamed liked list still resolves by kind.
	user.Playlists[0].Name = "My Likes"
	assert.Equal(t, "My Likes", user.LikedPlaylist().Name)

	empty := model.User{}
	assert.Nil(t, empty.LikedPlaylist())
}

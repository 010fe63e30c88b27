package model

import "go.mongodb.org/mongo-driver/v2/bson"

// DefaultAvatar is applied when registration omits the avatar URL.
const DefaultAvatar = "https://ik.imagekit.io/kf28wicizj/Youtube/userimage.jpg?updatedAt=1735815283840"

// PlaylistKind tags a playlist with its role so the seeded lists are resolved
// by kind, never by position in the playlists array.
type PlaylistKind string

const (
	PlaylistKindLiked      PlaylistKind = "liked"
	PlaylistKindWatchLater PlaylistKind = "watchLater"
	PlaylistKindCustom     PlaylistKind = "custom"
)

type Playlist struct {
	Name   string          `bson:"name" json:"name"`
	Kind   PlaylistKind    `bson:"kind" json:"kind"`
	Videos []bson.ObjectID `bson:"videos" json:"videos"`
}

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username     string        `bson:"username" json:"username"`
	Name         string        `bson:"name" json:"name"`
	Password     string        `bson:"password" json:"-"`
	Avatar       string        `bson:"avatar" json:"avatar"`
	Channels     []string      `bson:"channels" json:"channels"`
	Subscription []string      `bson:"subscription" json:"subscription"`
	Playlists    []Playlist    `bson:"playlists" json:"playlists"`
}

// DefaultPlaylists seeds the two lists every new account starts with.
func DefaultPlaylists() []Playlist {
	return []Playlist{
		{Name: "Liked Videos", Kind: PlaylistKindLiked, Videos: []bson.ObjectID{}},
		{Name: "Watch Later", Kind: PlaylistKindWatchLater, Videos: []bson.ObjectID{}},
	}
}

// LikedPlaylist resolves the liked-videos list by kind.
func (u *User) LikedPlaylist() *Playlist {
	for i := range u.Playlists {
		if u.Playlists[i].Kind == PlaylistKindLiked {
			return &u.Playlists[i]
		}
	}
	return nil
}

func (u *User) PlaylistByName(name string) *Playlist {
	for i := range u.Playlists {
		if u.Playlists[i].Name == name {
			return &u.Playlists[i]
		}
	}
	return nil
}

func (u *User) IsSubscribed(channelName string) bool {
	for _, name := range u.Subscription {
		if name == channelName {
			return true
		}
	}
	return false
}

func (p *Playlist) Contains(id bson.ObjectID) bool {
	for _, v := range p.Videos {
		if v == id {
			return true
		}
	}
	return false
}

package model

// Request bodies. Fields that the handlers type-check explicitly (to keep the
// distinct "required" / "must be strings" / "whitespace" validation messages)
// are declared as interface{} and asserted in the handler.

type ReqRegister struct {
	Username interface{} `json:"username"`
	Password interface{} `json:"password"`
	Name     interface{} `json:"name"`
	Avatar   interface{} `json:"avatar"`
}

type ReqLogin struct {
	Username interface{} `json:"username"`
	Password interface{} `json:"password"`
}

type ReqCreateChannel struct {
	ChannelName   interface{} `json:"channelName"`
	Description   interface{} `json:"description"`
	ChannelBanner string      `json:"channelBanner"`
	ChannelLogo   interface{} `json:"channelLogo"`
}

type ReqUpdateChannel struct {
	ChannelBanner  string `json:"channelBanner"`
	ChannelLogo    string `json:"channelLogo"`
	Description    string `json:"description"`
	NewChannelName string `json:"newChannelName"`
}

type ReqUploadVideo struct {
	Title       interface{} `json:"title"`
	Thumbnail   interface{} `json:"thumbnail"`
	VideoLink   interface{} `json:"videoLink"`
	Description interface{} `json:"description"`
	Categories  interface{} `json:"categories"`
}

type ReqUpdateVideo struct {
	Title       string   `json:"title"`
	Thumbnail   string   `json:"thumbnail"`
	VideoLink   string   `json:"videoLink"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

type ReqAddComment struct {
	ID       string `json:"id"`
	Comment  string `json:"comment"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}

type ReqEditComment struct {
	VideoID    string `json:"videoid"`
	CommentID  string `json:"commentId"`
	NewComment string `json:"newComment"`
}

type ReqDeleteComment struct {
	ID        string `json:"id"`
	CommentID string `json:"commentId"`
}

type ReqSubscribe struct {
	ChannelName string `json:"channelName"`
}

type ReqCreatePlaylist struct {
	PlaylistName interface{} `json:"playlistName"`
}

type ReqPlaylistVideo struct {
	UserName     string `json:"userName"`
	PlaylistName string `json:"playlistName"`
}

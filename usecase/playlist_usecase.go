package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/apperror"
	"youtube-clone/domain/dto"
	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
)

// PlaylistToggleResult reports the state after a playlist video toggle, with
// the owner's refreshed denormalized view.
type PlaylistToggleResult struct {
	Added       bool
	Message     string
	UserDetails dto.UserView
}

type IPlaylistUsecase interface {
	Create(ctx context.Context, username, playlistName string) (dto.UserView, error)
	Delete(ctx context.Context, username, playlistName string) (dto.UserView, error)
	ToggleVideo(ctx context.Context, caller, userName, playlistName, videoID string) (PlaylistToggleResult, error)
}

type PlaylistUsecase struct {
	userRepo repository.IUser
	userView repository.IUserView
}

func NewPlaylistUsecase(userRepo repository.IUser, userView repository.IUserView) IPlaylistUsecase {
	return &PlaylistUsecase{userRepo: userRepo, userView: userView}
}

func (u *PlaylistUsecase) Create(ctx context.Context, username, playlistName string) (dto.UserView, error) {
	user, err := u.userRepo.GetByUserName(ctx, username)
	if err != nil {
		return dto.UserView{}, u.internal(err)
	}
	name := strings.TrimSpace(playlistName)
	if user.PlaylistByName(name) != nil {
		return dto.UserView{}, apperror.New(http.StatusForbidden, "message", "Playlist already exists")
	}

	playlist := model.Playlist{Name: name, Kind: model.PlaylistKindCustom, Videos: []bson.ObjectID{}}
	if err := u.userRepo.AddPlaylist(ctx, username, playlist); err != nil {
		return dto.UserView{}, u.internal(err)
	}

	view, err := u.userView.GetUserDetails(ctx, username)
	if err != nil {
		return dto.UserView{}, u.internal(err)
	}
	return view, nil
}

func (u *PlaylistUsecase) Delete(ctx context.Context, username, playlistName string) (dto.UserView, error) {
	user, err := u.userRepo.GetByUserName(ctx, username)
	if err != nil {
		return dto.UserView{}, u.internal(err)
	}
	if user.PlaylistByName(playlistName) == nil {
		return dto.UserView{}, apperror.New(http.StatusNotFound, "message", "Playlist does not exist")
	}

	if err := u.userRepo.RemovePlaylist(ctx, username, playlistName); err != nil {
		return dto.UserView{}, u.internal(err)
	}

	view, err := u.userView.GetUserDetails(ctx, username)
	if err != nil {
		return dto.UserView{}, u.internal(err)
	}
	return view, nil
}

// ToggleVideo flips the video's membership in the named playlist. The target
// user in the body must be the authenticated caller.
func (u *PlaylistUsecase) ToggleVideo(ctx context.Context, caller, userName, playlistName, videoID string) (PlaylistToggleResult, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return PlaylistToggleResult{}, apperror.New(http.StatusNotFound, "message", "Given ID is not a valid Video ID")
	}
	if userName != caller {
		return PlaylistToggleResult{}, apperror.New(http.StatusForbidden, "message", "You can modify your own playlists only")
	}

	user, err := u.userRepo.GetByUserName(ctx, userName)
	if errors.Is(err, repository.ErrNotFound) {
		return PlaylistToggleResult{}, apperror.New(http.StatusNotFound, "message", "User not found.")
	}
	if err != nil {
		return PlaylistToggleResult{}, u.toggleInternal(err)
	}

	playlist := user.PlaylistByName(playlistName)
	if playlist == nil {
		return PlaylistToggleResult{}, apperror.New(http.StatusNotFound, "message",
			fmt.Sprintf("Playlist '%s' not found for user '%s'.", playlistName, userName))
	}

	added := false
	var message string
	if playlist.Contains(id) {
		if err := u.userRepo.RemovePlaylistVideoByName(ctx, userName, playlistName, id); err != nil {
			return PlaylistToggleResult{}, u.toggleInternal(err)
		}
		message = fmt.Sprintf("Video removed from playlist '%s'.", playlistName)
	} else {
		if err := u.userRepo.AddPlaylistVideoByName(ctx, userName, playlistName, id); err != nil {
			return PlaylistToggleResult{}, u.toggleInternal(err)
		}
		added = true
		message = fmt.Sprintf("Video added to playlist '%s'.", playlistName)
	}

	view, err := u.userView.GetUserDetails(ctx, userName)
	if err != nil {
		return PlaylistToggleResult{}, u.toggleInternal(err)
	}
	return PlaylistToggleResult{Added: added, Message: message, UserDetails: view}, nil
}

func (u *PlaylistUsecase) internal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "Internal server error")
}

func (u *PlaylistUsecase) toggleInternal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "An error occurred while processing your request.").Detailed("error", err.Error())
}

package usecase

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/apperror"
	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
)

// LikeResult reports the state after a like toggle, with the refreshed video
// and user documents.
type LikeResult struct {
	Liked bool
	Video model.Video
	User  model.User
}

// DislikeResult reports the state after a dislike toggle.
type DislikeResult struct {
	Disliked   bool
	DislikedBy []bson.ObjectID
}

type IReactionUsecase interface {
	ToggleLike(ctx context.Context, username, videoID string) (LikeResult, error)
	ToggleDislike(ctx context.Context, userID, videoID string) (DislikeResult, error)
}

type ReactionUsecase struct {
	videoRepo repository.IVideo
	userRepo  repository.IUser
}

func NewReactionUsecase(videoRepo repository.IVideo, userRepo repository.IUser) IReactionUsecase {
	return &ReactionUsecase{videoRepo: videoRepo, userRepo: userRepo}
}

// ToggleLike flips the caller's membership in their liked-videos list and
// moves the video's like counter the same direction.
func (u *ReactionUsecase) ToggleLike(ctx context.Context, username, videoID string) (LikeResult, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return LikeResult{}, notFoundVideoOrUser()
	}

	user, err := u.userRepo.GetByUserName(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return LikeResult{}, notFoundVideoOrUser()
	}
	if err != nil {
		return LikeResult{}, reactionInternal()
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return LikeResult{}, notFoundVideoOrUser()
		}
		return LikeResult{}, reactionInternal()
	}

	liked := false
	likedList := user.LikedPlaylist()
	if likedList != nil && likedList.Contains(id) {
		if err := u.userRepo.RemovePlaylistVideoByKind(ctx, username, model.PlaylistKindLiked, id); err != nil {
			return LikeResult{}, reactionInternal()
		}
		if err := u.videoRepo.IncLikes(ctx, id, -1); err != nil {
			return LikeResult{}, reactionInternal()
		}
	} else {
		if err := u.userRepo.AddPlaylistVideoByKind(ctx, username, model.PlaylistKindLiked, id); err != nil {
			return LikeResult{}, reactionInternal()
		}
		if err := u.videoRepo.IncLikes(ctx, id, 1); err != nil {
			return LikeResult{}, reactionInternal()
		}
		liked = true
	}

	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return LikeResult{}, reactionInternal()
	}
	updatedUser, err := u.userRepo.GetByUserName(ctx, username)
	if err != nil {
		return LikeResult{}, reactionInternal()
	}
	return LikeResult{Liked: liked, Video: video, User: updatedUser}, nil
}

// ToggleDislike flips the caller's presence in the video's dislikedBy set.
func (u *ReactionUsecase) ToggleDislike(ctx context.Context, userID, videoID string) (DislikeResult, error) {
	vid, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return DislikeResult{}, notFoundVideoOrUser()
	}
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return DislikeResult{}, notFoundVideoOrUser()
	}

	if _, err := u.userRepo.GetByID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return DislikeResult{}, notFoundVideoOrUser()
		}
		return DislikeResult{}, reactionInternal()
	}
	video, err := u.videoRepo.GetByID(ctx, vid)
	if errors.Is(err, repository.ErrNotFound) {
		return DislikeResult{}, notFoundVideoOrUser()
	}
	if err != nil {
		return DislikeResult{}, reactionInternal()
	}

	disliked := false
	if containsID(video.DislikedBy, uid) {
		if err := u.videoRepo.RemoveDisliker(ctx, vid, uid); err != nil {
			return DislikeResult{}, reactionInternal()
		}
	} else {
		if err := u.videoRepo.AddDisliker(ctx, vid, uid); err != nil {
			return DislikeResult{}, reactionInternal()
		}
		disliked = true
	}

	updated, err := u.videoRepo.GetByID(ctx, vid)
	if err != nil {
		return DislikeResult{}, reactionInternal()
	}
	return DislikeResult{Disliked: disliked, DislikedBy: updated.DislikedBy}, nil
}

func containsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func notFoundVideoOrUser() *apperror.AppError {
	return apperror.New(http.StatusNotFound, "message", "Video or User not found")
}

func reactionInternal() *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "Server error")
}

package usecase

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"

	"youtube-clone/domain/apperror"
	"youtube-clone/domain/model"
	"youtube-clone/domain/repository"
	"youtube-clone/infrastructure/utils"
)

type ICommentUsecase interface {
	Add(ctx context.Context, username string, req model.ReqAddComment) ([]model.Comment, error)
	Edit(ctx context.Context, username string, req model.ReqEditComment) (model.Video, error)
	Delete(ctx context.Context, username string, req model.ReqDeleteComment) ([]model.Comment, error)
}

type CommentUsecase struct {
	videoRepo repository.IVideo
}

func NewCommentUsecase(videoRepo repository.IVideo) ICommentUsecase {
	return &CommentUsecase{videoRepo: videoRepo}
}

func (u *CommentUsecase) Add(ctx context.Context, username string, req model.ReqAddComment) ([]model.Comment, error) {
	videoID, err := bson.ObjectIDFromHex(req.ID)
	if err != nil {
		return nil, u.addInternal(err)
	}

	comment := model.Comment{
		ID:        bson.NewObjectID(),
		Username:  username,
		Text:      req.Comment,
		Timestamp: utils.GetCurrentTime(),
		Likes:     req.Likes,
		Dislikes:  req.Dislikes,
	}
	err = u.videoRepo.AddComment(ctx, videoID, comment)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.New(http.StatusNotFound, "message", "Video not found")
	}
	if err != nil {
		return nil, u.addInternal(err)
	}

	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, u.addInternal(err)
	}
	return video.Comments, nil
}

func (u *CommentUsecase) Edit(ctx context.Context, username string, req model.ReqEditComment) (model.Video, error) {
	videoID, err := bson.ObjectIDFromHex(req.VideoID)
	if err != nil {
		return model.Video{}, u.editInternal(err)
	}
	commentID, err := bson.ObjectIDFromHex(req.CommentID)
	if err != nil {
		return model.Video{}, u.editInternal(err)
	}

	video, err := u.videoRepo.GetByID(ctx, videoID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Video{}, apperror.New(http.StatusNotFound, "message", "Video not found")
	}
	if err != nil {
		return model.Video{}, u.editInternal(err)
	}

	comment := findComment(video.Comments, commentID)
	if comment == nil {
		return model.Video{}, apperror.New(http.StatusNotFound, "message", "Comment not found")
	}
	if comment.Username != username {
		return model.Video{}, apperror.New(http.StatusForbidden, "message", "You can edit your own comments only")
	}

	if err := u.videoRepo.SetCommentText(ctx, videoID, commentID, req.NewComment); err != nil {
		return model.Video{}, u.editInternal(err)
	}

	updated, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return model.Video{}, u.editInternal(err)
	}
	return updated, nil
}

func (u *CommentUsecase) Delete(ctx context.Context, username string, req model.ReqDeleteComment) ([]model.Comment, error) {
	videoID, err := bson.ObjectIDFromHex(req.ID)
	if err != nil {
		return nil, u.deleteInternal(err)
	}
	commentID, err := bson.ObjectIDFromHex(req.CommentID)
	if err != nil {
		return nil, u.deleteInternal(err)
	}

	video, err := u.videoRepo.GetByID(ctx, videoID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.New(http.StatusNotFound, "message", "Video not found")
	}
	if err != nil {
		return nil, u.deleteInternal(err)
	}

	comment := findComment(video.Comments, commentID)
	if comment == nil {
		return nil, apperror.New(http.StatusNotFound, "message", "Comment not found")
	}
	if comment.Username != username {
		return nil, apperror.New(http.StatusForbidden, "message", "You can delete your own comments only")
	}

	if err := u.videoRepo.RemoveComment(ctx, videoID, commentID); err != nil {
		return nil, u.deleteInternal(err)
	}

	updated, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, u.deleteInternal(err)
	}
	return updated.Comments, nil
}

func findComment(comments []model.Comment, id bson.ObjectID) *model.Comment {
	for i := range comments {
		if comments[i].ID == id {
			return &comments[i]
		}
	}
	return nil
}

func (u *CommentUsecase) addInternal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "Something went wrong").Detailed("error", err.Error())
}

func (u *CommentUsecase) editInternal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "An error occurred").Detailed("error", err.Error())
}

func (u *CommentUsecase) deleteInternal(err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, "message", "Something went wrong").Detailed("error", err.Error())
}

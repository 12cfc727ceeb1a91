package service

import (
	"context"
	"errors"
	"simpleblog/cmd/internal/contract"
	"simpleblog/cmd/internal/domain/entity"
	"simpleblog/cmd/internal/domain/sqlite/repository"
	"simpleblog/cmd/internal/utils"
	"simpleblog/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CommentRepository interface {
	FindByNoteID(ctx context.Context, noteID int) ([]*entity.Comment, error)
	CreateAndCount(ctx context.Context, comment *entity.Comment) error
}

type DefaultCommentService struct {
	CommentRepo CommentRepository
	Validate    *validator.Validate
}

func NewCommentService(commentRepo CommentRepository, validate *validator.Validate) *DefaultCommentService {
	return &DefaultCommentService{
		CommentRepo: commentRepo,
		Validate:    validate,
	}
}

func (s *DefaultCommentService) GetComments(ctx context.Context, noteID int) ([]*contract.CommentResponse, apierror.ErrorResponse) {
	comments, err := s.CommentRepo.FindByNoteID(ctx, noteID)
	if err != nil {
		log.Errorf("failed to fetch comments of note %d: %v", noteID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CommentResponse, len(comments))
	for i, c := range comments {
		resp[i] = toCommentResponse(c)
	}
	return resp, nil
}

// AddComment stores the comment and bumps its note's comment count. The
// parent note is not checked beforehand: a missing parent surfaces as an
// internal error and nothing is stored.
func (s *DefaultCommentService) AddComment(ctx context.Context, req *contract.AddCommentRequest) apierror.ErrorResponse {
	if valerr := s.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	comment := &entity.Comment{
		BelongTo:    *req.BelongTo,
		Nickname:    req.Nickname,
		Body:        req.Body,
		PublishedAt: utils.NowUTC(),
	}

	err := s.CommentRepo.CreateAndCount(ctx, comment)
	if errors.Is(err, repository.ErrNoteNotFound) {
		log.Warnf("comment posted to missing note %d", comment.BelongTo)
		return apierror.InternalServerError
	}

	if err != nil {
		log.Errorf("failed to add comment to note %d: %v", comment.BelongTo, err)
		return apierror.InternalServerError
	}
	return nil
}

func toCommentResponse(c *entity.Comment) *contract.CommentResponse {
	return &contract.CommentResponse{
		ID:          c.ID,
		BelongTo:    c.BelongTo,
		Nickname:    c.Nickname,
		Body:        c.Body,
		PublishedAt: utils.FormatEpoch(c.PublishedAt),
	}
}

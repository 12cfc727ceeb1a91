package handler

import (
	"context"
	"net/http"
	"simpleblog/cmd/internal/contract"
	"simpleblog/cmd/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
)

const addCommentSuccess = "Comment added!"

type CommentService interface {
	GetComments(ctx context.Context, noteID int) ([]*contract.CommentResponse, apierror.ErrorResponse)
	AddComment(ctx context.Context, req *contract.AddCommentRequest) apierror.ErrorResponse
}

type DefaultCommentRoute struct {
	CommentService CommentService
}

func NewCommentDefault(commentService CommentService) *DefaultCommentRoute {
	return &DefaultCommentRoute{CommentService: commentService}
}

func (r *DefaultCommentRoute) GetComments(c echo.Context) error {
	noteID, err := strconv.Atoi(c.QueryParam("belong_to"))
	if err != nil {
		// Nothing can belong to a malformed id
		return c.JSON(http.StatusOK, []*contract.CommentResponse{})
	}

	comments, apierr := r.CommentService.GetComments(c.Request().Context(), noteID)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return c.JSON(http.StatusOK, comments)
}

func (r *DefaultCommentRoute) AddComment(c echo.Context) error {
	var req contract.AddCommentRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, apierror.MalformedJSONError)
	}

	apierr := r.CommentService.AddComment(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return c.String(http.StatusOK, addCommentSuccess)
}

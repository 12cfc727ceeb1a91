package handler

import (
	"context"
	"net/http"
	"simpleblog/cmd/internal/contract"
	"simpleblog/cmd/internal/http/middleware"
	"simpleblog/cmd/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
)

// NotFoundBody is what clients receive when asking for an unknown note.
const NotFoundBody = "404"

const submitNoteSuccess = "Submitted successfully!"

type NoteService interface {
	GetAllNotes(ctx context.Context) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetNoteByID(ctx context.Context, creds *contract.Credentials, noteID int) (*contract.NoteResponse, apierror.ErrorResponse)
	SubmitNote(ctx context.Context, req *contract.SubmitNoteRequest) apierror.ErrorResponse
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	notes, apierr := n.NoteService.GetAllNotes(c.Request().Context())
	if apierr != nil {
		return respondError(c, apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

// GetNote expects the credentials middleware to have run.
func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("note_id"))
	if err != nil {
		return c.String(http.StatusOK, NotFoundBody)
	}

	creds := middleware.GetCredentialsFromContext(c)
	note, apierr := n.NoteService.GetNoteByID(c.Request().Context(), creds, id)
	if apierr != nil {
		return respondError(c, apierr)
	}

	if note == nil {
		return c.String(http.StatusOK, NotFoundBody)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) SubmitNote(c echo.Context) error {
	var req contract.SubmitNoteRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, apierror.MalformedJSONError)
	}

	apierr := n.NoteService.SubmitNote(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return c.String(http.StatusOK, submitNoteSuccess)
}

// bindJSON decodes the request body as JSON whatever the Content-Type,
// browsers posting from the static pages do not always set it.
func bindJSON(c echo.Context, dst any) error {
	return c.Echo().JSONSerializer.Deserialize(c, dst)
}

func respondError(c echo.Context, apierr apierror.ErrorResponse) error {
	return c.String(apierr.Code(), apierr.Text())
}

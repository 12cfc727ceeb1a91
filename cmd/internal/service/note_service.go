package service

import (
	"context"
	"errors"
	"simpleblog/cmd/internal/contract"
	"simpleblog/cmd/internal/domain/entity"
	"simpleblog/cmd/internal/domain/policy"
	"simpleblog/cmd/internal/domain/sqlite/repository"
	"simpleblog/cmd/internal/utils"
	"simpleblog/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	FindAllNewestFirst(ctx context.Context) ([]*entity.Note, error)
	FindByID(ctx context.Context, id int) (*entity.Note, error)
	Save(ctx context.Context, note *entity.Note) error
	UpdateContent(ctx context.Context, id int, title, body, author string, publishedAt int64) error
	IncrementViews(ctx context.Context, id int) error
}

type Verifier interface {
	Verify(ctx context.Context, username, password string) (*entity.User, error)
}

type DefaultNoteService struct {
	NoteRepo   NoteRepository
	Verifier   Verifier
	NotePolicy *policy.NotePolicy
	Validate   *validator.Validate
}

func NewNoteService(
	noteRepo NoteRepository,
	verifier Verifier,
	notePolicy *policy.NotePolicy,
	validate *validator.Validate,
) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo:   noteRepo,
		Verifier:   verifier,
		NotePolicy: notePolicy,
		Validate:   validate,
	}
}

func (n *DefaultNoteService) GetAllNotes(ctx context.Context) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindAllNewestFirst(ctx)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
		resp[i].Body = n.NotePolicy.PreviewBody(note)
	}
	return resp, nil
}

// GetNoteByID returns the note with its body redacted for the owner of
// creds. A nil response means the note does not exist. Credentials are only
// checked for notes above visitor level. The view counter is bumped only
// when the full body is revealed; the response carries the count read
// before that.
func (n *DefaultNoteService) GetNoteByID(ctx context.Context, creds *contract.Credentials, noteID int) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(ctx, noteID)
	if err != nil {
		log.Errorf("failed to fetch note %d: %v", noteID, err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, nil
	}

	caller := policy.Anonymous
	if n.NotePolicy.RequiresLogin(note) && creds.Provided() {
		user, err := n.Verifier.Verify(ctx, creds.Username, creds.Password)
		if err != nil {
			log.Errorf("failed to verify credentials of %s: %v", creds.Username, err)
			return nil, apierror.InternalServerError
		}
		caller = &policy.Caller{Provided: true, User: user}
	}

	resp := toNoteResponse(note)
	if denied := n.NotePolicy.CanRead(note, caller); denied != nil {
		resp.Body = denied.Text()
		return resp, nil
	}

	if err = n.NoteRepo.IncrementViews(ctx, note.ID); err != nil {
		log.Errorf("failed to count view of note %d: %v", note.ID, err)
		return nil, apierror.InternalServerError
	}
	return resp, nil
}

// SubmitNote creates a note when req.ID is contract.NewNoteID and edits an
// existing one otherwise. Edits rewrite the author to
// entity.EditedAuthorPlaceholder and leave the permission untouched.
func (n *DefaultNoteService) SubmitNote(ctx context.Context, req *contract.SubmitNoteRequest) apierror.ErrorResponse {
	if valerr := n.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	user, err := n.Verifier.Verify(ctx, req.Username, req.Password)
	if err != nil {
		log.Errorf("failed to verify credentials of %s: %v", req.Username, err)
		return apierror.InternalServerError
	}

	if user == nil {
		return apierror.CredentialsMismatchError
	}

	now := utils.NowUTC()
	if *req.ID == contract.NewNoteID {
		note := &entity.Note{
			Title:       req.Title,
			Body:        req.Body,
			Author:      user.Username,
			PublishedAt: now,
			Permission:  entity.Permission(*req.Permission),
		}

		if err = n.NoteRepo.Save(ctx, note); err != nil {
			log.Errorf("failed to create note: %v", err)
			return apierror.InternalServerError
		}
		log.Infof("user %s created note %d", user.Username, note.ID)
		return nil
	}

	err = n.NoteRepo.UpdateContent(ctx, *req.ID, req.Title, req.Body, entity.EditedAuthorPlaceholder, now)
	if errors.Is(err, repository.ErrNoteNotFound) {
		return apierror.NoteNotFoundError
	}

	if err != nil {
		log.Errorf("failed to update note %d: %v", *req.ID, err)
		return apierror.InternalServerError
	}
	log.Infof("user %s edited note %d", user.Username, *req.ID)
	return nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:          note.ID,
		Title:       note.Title,
		Body:        note.Body,
		Author:      note.Author,
		PublishedAt: utils.FormatEpoch(note.PublishedAt),
		ViewNum:     note.ViewNum,
		CommentNum:  note.CommentNum,
		Permission:  int(note.Permission),
	}
}

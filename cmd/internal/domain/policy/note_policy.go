package policy

import (
	"simpleblog/cmd/internal/domain/entity"
	"simpleblog/cmd/internal/utils"
	"simpleblog/cmd/internal/utils/apierror"
)

const (
	// PreviewLength is how many characters of a public note the listing reveals.
	PreviewLength = 20

	LoginRequiredPlaceholder = "Login required to view"
	AdminRequiredPlaceholder = "Admin permission required to view"
)

// Caller describes who is asking for a note.
//
// - Provided == false: no credentials were sent.
//
// - Provided == true, User == nil: credentials were sent but matched nobody.
type Caller struct {
	Provided bool
	User     *entity.User
}

// Anonymous is a caller without credentials.
var Anonymous = &Caller{}

// NotePolicy encapsulates the redaction rules applied to note bodies.
type NotePolicy struct{}

func NewNotePolicy() *NotePolicy {
	return &NotePolicy{}
}

// PreviewBody is the body shown in listings, which never authenticate.
func (p *NotePolicy) PreviewBody(note *entity.Note) string {
	switch {
	case note.Permission >= entity.PermissionAdmin:
		return AdminRequiredPlaceholder
	case note.Permission >= entity.PermissionUser:
		return LoginRequiredPlaceholder
	default:
		return utils.TruncateRunes(note.Body, PreviewLength)
	}
}

// RequiresLogin reports whether reading note needs verified credentials.
func (p *NotePolicy) RequiresLogin(note *entity.Note) bool {
	return note.Permission > entity.PermissionVisitor
}

// CanRead returns nil when caller may see the full body of note. Otherwise
// the returned error text replaces the body.
func (p *NotePolicy) CanRead(note *entity.Note, caller *Caller) apierror.ErrorResponse {
	if !p.RequiresLogin(note) {
		return nil
	}

	if caller == nil || !caller.Provided {
		return apierror.LoginRequiredError
	}

	if caller.User == nil {
		return apierror.CredentialsMismatchError
	}

	if !caller.User.Permission.AtLeast(note.Permission) {
		return apierror.InsufficientPermsError
	}
	return nil
}

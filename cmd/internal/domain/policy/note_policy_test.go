package policy

import (
	"simpleblog/cmd/internal/domain/entity"
	"simpleblog/cmd/internal/utils/apierror"
	"testing"
)

func TestPreviewBody(t *testing.T) {
	p := NewNotePolicy()
	long := "0123456789abcdefghijKLMNOP"

	cases := []struct {
		perm entity.Permission
		want string
	}{
		{entity.PermissionVisitor, "0123456789abcdefghij"},
		{entity.PermissionUser, LoginRequiredPlaceholder},
		{entity.PermissionAdmin, AdminRequiredPlaceholder},
	}

	for _, c := range cases {
		got := p.PreviewBody(&entity.Note{Body: long, Permission: c.perm})
		if got != c.want {
			t.Errorf("permission %s: got %q, want %q", c.perm, got, c.want)
		}
	}
}

func TestCanRead(t *testing.T) {
	p := NewNotePolicy()
	user := &entity.User{Username: "bob", Permission: entity.PermissionUser}
	admin := &entity.User{Username: "admin", Permission: entity.PermissionAdmin}

	cases := []struct {
		name   string
		perm   entity.Permission
		caller *Caller
		want   apierror.ErrorResponse
	}{
		{"public note, anonymous", entity.PermissionVisitor, Anonymous, nil},
		{"public note, nil caller", entity.PermissionVisitor, nil, nil},
		{"public note, bad credentials", entity.PermissionVisitor, &Caller{Provided: true}, nil},
		{"user note, anonymous", entity.PermissionUser, Anonymous, apierror.LoginRequiredError},
		{"user note, bad credentials", entity.PermissionUser, &Caller{Provided: true}, apierror.CredentialsMismatchError},
		{"user note, user", entity.PermissionUser, &Caller{Provided: true, User: user}, nil},
		{"admin note, user", entity.PermissionAdmin, &Caller{Provided: true, User: user}, apierror.InsufficientPermsError},
		{"admin note, admin", entity.PermissionAdmin, &Caller{Provided: true, User: admin}, nil},
	}

	for _, c := range cases {
		got := p.CanRead(&entity.Note{Permission: c.perm}, c.caller)
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRequiresLogin(t *testing.T) {
	p := NewNotePolicy()
	for perm, want := range map[entity.Permission]bool{
		entity.PermissionVisitor: false,
		entity.PermissionUser:    true,
		entity.PermissionAdmin:   true,
	} {
		if got := p.RequiresLogin(&entity.Note{Permission: perm}); got != want {
			t.Errorf("permission %s: got %v, want %v", perm, got, want)
		}
	}
}

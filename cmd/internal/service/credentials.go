package service

import (
	"context"
	"crypto/subtle"
	"simpleblog/cmd/internal/domain/entity"
)

// CredentialVerifier is the only place passwords are compared. Swapping the
// comparison for a salted hash only touches Verify.
type CredentialVerifier struct {
	UserRepo UserRepository
}

func NewCredentialVerifier(userRepo UserRepository) *CredentialVerifier {
	return &CredentialVerifier{UserRepo: userRepo}
}

// Verify returns the user owning exactly this username and password, or nil.
func (v *CredentialVerifier) Verify(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := v.UserRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, nil
	}
	return user, nil
}

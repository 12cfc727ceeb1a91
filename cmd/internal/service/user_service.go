package service

import (
	"context"
	"simpleblog/cmd/internal/contract"
	"simpleblog/cmd/internal/domain/entity"
	"simpleblog/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByPassword(ctx context.Context, password string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

type UserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Validate: validate,
	}
}

// Register creates a regular account. Both the username and the password
// must be unused by every existing account.
func (u *UserService) Register(ctx context.Context, req *contract.RegisterUserRequest) apierror.ErrorResponse {
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	existing, err := u.UserRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		log.Errorf("failed to check if user (%s) exists: %v", req.Username, err)
		return apierror.InternalServerError
	}

	if existing != nil {
		return apierror.NewUsernameTakenError(req.Username)
	}

	holder, err := u.UserRepo.FindByPassword(ctx, req.Password)
	if err != nil {
		log.Errorf("failed to check password uniqueness for %s: %v", req.Username, err)
		return apierror.InternalServerError
	}

	if holder != nil {
		return apierror.PasswordTakenError
	}

	user := &entity.User{
		Username:   req.Username,
		Password:   req.Password,
		Permission: entity.PermissionUser,
	}

	if err = u.UserRepo.Create(ctx, user); err != nil {
		log.Errorf("failed to create user %s: %v", req.Username, err)
		return apierror.InternalServerError
	}
	log.Infof("registered user %s", user.Username)
	return nil
}

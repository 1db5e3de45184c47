package usecase

import (
	"context"
	"fmt"

	"safehaven/internal/domain/entity"
	"safehaven/internal/domain/repository"
	"safehaven/pkg/errors"
)

type IdentityUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewIdentityUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *IdentityUseCase {
	return &IdentityUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Address   string
	Password  string
}

// Register creates the auth credential first and the user document second.
// A crash between the two leaves an orphaned credential; there is no rollback.
func (uc *IdentityUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	taken, err := uc.userRepo.Exists(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.UsernameTaken(input.Username)
	}

	displayName := fmt.Sprintf("%s %s", input.FirstName, input.LastName)
	if _, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, displayName); err != nil {
		if errors.Is(err, "EMAIL_TAKEN") {
			return nil, err
		}
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	user := &entity.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Address:   input.Address,
		Karma:     1,
		Balance:   0,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *IdentityUseCase) ResolveUsernameByEmail(ctx context.Context, email string) (string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	return user.Username, nil
}

// AdjustKarma applies an unclamped increment; karma can go negative.
func (uc *IdentityUseCase) AdjustKarma(ctx context.Context, username string, delta int64) error {
	return uc.userRepo.IncrementKarma(ctx, username, delta)
}

func (uc *IdentityUseCase) GetKarma(ctx context.Context, username string) (int64, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	return user.Karma, nil
}

func (uc *IdentityUseCase) GetBalance(ctx context.Context, username string) (float64, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	return user.Balance, nil
}

func (uc *IdentityUseCase) GetAddress(ctx context.Context, username string) (string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	return user.Address, nil
}

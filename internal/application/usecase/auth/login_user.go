// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// LoginUserUseCase handles user login guarded by the login throttle.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	throttle        adapter.LoginThrottle
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	throttle adapter.LoginThrottle,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		throttle:        throttle,
	}
}

// Execute performs the user login.
//
// A locked identity is rejected before any credential check, with the
// same message whether or not the account exists. Unknown emails and
// wrong passwords both count as failures and share one error shape, so
// responses don't reveal which emails are registered.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if uc.throttle.IsLocked(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAccountLocked,
			"too many failed attempts, try again later",
			domainerror.ErrAccountLocked,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, uc.recordFailure(input.Email)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, uc.recordFailure(input.Email)
	}

	uc.throttle.RecordSuccess(input.Email)

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

func (uc *LoginUserUseCase) recordFailure(email string) error {
	uc.throttle.RecordFailure(email)
	return domainerror.NewInvalidCredentialsError(uc.throttle.RemainingAttempts(email))
}

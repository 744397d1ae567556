package commands

import (
	"context"
	"fmt"

	"dealvista/internal/domain/user"
	"dealvista/internal/infra"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/pkg/jwt"
	"dealvista/internal/pkg/password"
	"dealvista/internal/pkg/referral"
	"dealvista/internal/usecase/queries"
	"dealvista/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxReferralAttempts = 3

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

type AuthOutput struct {
	Token    string
	UserID   uuid.UUID
	FullName string
	Email    string
	Role     string
}

type AuthCommandService struct {
	uow    shared.UnitOfWork
	users  queries.UserReadStore
	tokens *jwt.Service
}

func NewAuthCommandService(uow shared.UnitOfWork, users queries.UserReadStore, tokens *jwt.Service) *AuthCommandService {
	return &AuthCommandService{uow: uow, users: users, tokens: tokens}
}

func (s *AuthCommandService) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	fullName, err := user.NewFullName(input.FullName)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(input.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	// A referral code collision aborts the transaction, so retry the whole
	// transaction with a freshly generated code.
	var u *user.User
	for attempt := 0; ; attempt++ {
		u = user.NewUser(fullName, email, hash, referral.NewCode())

		err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			id, err := tx.Users().Create(ctx, u)
			if err != nil {
				return err
			}
			return tx.ActivityLogs().Append(ctx, &id,
				fmt.Sprintf("New user registered: %s", fullName.Value()))
		})
		if err == nil {
			break
		}
		if infra.IsKind(err, infra.KindReferralCollision) && attempt < maxReferralAttempts-1 {
			continue
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailAlreadyRegistered)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	token, err := s.tokens.GenerateToken(u.ID(), email.Value(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthOutput{
		Token:    token,
		UserID:   u.ID(),
		FullName: fullName.Value(),
		Email:    email.Value(),
		Role:     u.Role().String(),
	}, nil
}

func (s *AuthCommandService) Login(ctx context.Context, email, plainPassword string) (*AuthOutput, error) {
	cred, err := s.users.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(cred.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	role, err := user.NewRole(cred.Role)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt role on user record")
	}

	token, err := s.tokens.GenerateToken(cred.ID, cred.Email, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthOutput{
		Token:    token,
		UserID:   cred.ID,
		FullName: cred.FullName,
		Email:    cred.Email,
		Role:     cred.Role,
	}, nil
}

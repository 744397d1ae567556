//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"dealvista/internal/domain/user"
	"dealvista/internal/infra"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/pkg/jwt"
	"dealvista/internal/pkg/password"
	"dealvista/internal/usecase/commands"
	"dealvista/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredentialStore struct {
	byEmail map[string]*queries.CredentialView
}

func (f *fakeCredentialStore) FindCredentialsByEmail(_ context.Context, email string) (*queries.CredentialView, error) {
	cred, ok := f.byEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return cred, nil
}

func (f *fakeCredentialStore) FindByID(context.Context, uuid.UUID) (*queries.UserView, error) {
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (f *fakeCredentialStore) GetPoints(context.Context, uuid.UUID) (int, error) {
	return 0, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (f *fakeCredentialStore) GetStats(context.Context, uuid.UUID) (*queries.UserStatsView, error) {
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (f *fakeCredentialStore) ListAdmins(context.Context) ([]queries.AdminView, error) {
	return nil, nil
}

func newAuthService(state *fakeState, creds *fakeCredentialStore) *commands.AuthCommandService {
	tokens := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthCommandService(&fakeUoW{state: state}, creds, tokens)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("basic success case", func(t *testing.T) {
		state := newFakeState()
		svc := newAuthService(state, &fakeCredentialStore{})

		out, err := svc.Register(ctx, commands.RegisterInput{
			FullName: "Taro Yamada",
			Email:    "taro@example.com",
			Password: "password123",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, out.Token)
		assert.Equal(t, "Taro Yamada", out.FullName)
		assert.Equal(t, user.RoleUser.String(), out.Role)

		_, ok := state.users[out.UserID]
		assert.True(t, ok)
		require.Len(t, state.logs, 1)
		assert.Equal(t, "New user registered: Taro Yamada", state.logs[0])
	})

	t.Run("duplicate email", func(t *testing.T) {
		state := newFakeState()
		svc := newAuthService(state, &fakeCredentialStore{})

		input := commands.RegisterInput{
			FullName: "Taro Yamada",
			Email:    "taro@example.com",
			Password: "password123",
		}
		_, err := svc.Register(ctx, input)
		require.NoError(t, err)

		_, err = svc.Register(ctx, input)
		assert.ErrorIs(t, err, errs.ErrEmailAlreadyRegistered)
		assert.Len(t, state.users, 1)
	})

	t.Run("referral code collision is retried with a fresh code", func(t *testing.T) {
		state := newFakeState()
		state.referralCollisions = 1
		svc := newAuthService(state, &fakeCredentialStore{})

		out, err := svc.Register(ctx, commands.RegisterInput{
			FullName: "Taro Yamada",
			Email:    "taro@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Len(t, state.users, 1)
		require.Len(t, state.logs, 1)
		_, ok := state.users[out.UserID]
		assert.True(t, ok)
	})

	t.Run("persistent referral collisions eventually fail", func(t *testing.T) {
		state := newFakeState()
		state.referralCollisions = 100
		svc := newAuthService(state, &fakeCredentialStore{})

		_, err := svc.Register(ctx, commands.RegisterInput{
			FullName: "Taro Yamada",
			Email:    "taro@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
		assert.Empty(t, state.users)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*commands.RegisterInput)
			errIs  error
		}{
			{
				name:   "invalid email",
				mutate: func(in *commands.RegisterInput) { in.Email = "not-an-email" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "empty name",
				mutate: func(in *commands.RegisterInput) { in.FullName = "  " },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "short password",
				mutate: func(in *commands.RegisterInput) { in.Password = "short" },
				errIs:  user.ErrPasswordTooWeak,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				state := newFakeState()
				svc := newAuthService(state, &fakeCredentialStore{})

				input := commands.RegisterInput{
					FullName: "Taro Yamada",
					Email:    "taro@example.com",
					Password: "password123",
				}
				tc.mutate(&input)

				_, err := svc.Register(ctx, input)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Empty(t, state.users)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	cred := &queries.CredentialView{
		ID:           uuid.New(),
		FullName:     "Taro Yamada",
		Email:        "taro@example.com",
		Role:         "user",
		PasswordHash: hash,
	}
	creds := &fakeCredentialStore{byEmail: map[string]*queries.CredentialView{cred.Email: cred}}

	t.Run("basic success case", func(t *testing.T) {
		svc := newAuthService(newFakeState(), creds)

		out, err := svc.Login(ctx, "taro@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, cred.ID, out.UserID)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := newAuthService(newFakeState(), creds)

		_, err := svc.Login(ctx, "taro@example.com", "wrong-password")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := newAuthService(newFakeState(), creds)

		_, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

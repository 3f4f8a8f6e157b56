package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/movieshelf/internal/client/auth"
	"github.com/iudanet/movieshelf/internal/client/storage"
	pkgapi "github.com/iudanet/movieshelf/pkg/api"
)

func registerMock() *auth.ServiceMock {
	return &auth.ServiceMock{
		RegisterFunc: func(ctx context.Context, username, password string) (*pkgapi.RegisterResponse, error) {
			return &pkgapi.RegisterResponse{UserID: "user-1", Message: "ok"}, nil
		},
	}
}

func TestCli_Register(t *testing.T) {
	t.Run("interactive", func(t *testing.T) {
		svc := registerMock()
		term := newTestTerm("alice", "password123", "password123")
		c := newTestCli(term, Deps{Auth: svc})

		require.NoError(t, c.Run(context.Background(), "register", nil))

		calls := svc.RegisterCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "alice", calls[0].Username)
		assert.Equal(t, "password123", calls[0].Password)
		assert.Contains(t, term.output(), "user-1")
	})

	t.Run("password from environment", func(t *testing.T) {
		svc := registerMock()
		term := newTestTerm("alice")
		c := newTestCli(term, Deps{Auth: svc})
		c.password = func() string { return "from-env-secret" }

		require.NoError(t, c.Run(context.Background(), "register", nil))
		require.Len(t, svc.RegisterCalls(), 1)
		assert.Equal(t, "from-env-secret", svc.RegisterCalls()[0].Password)
		assert.Empty(t, term.ReadPasswordCalls())
	})

	t.Run("mismatch", func(t *testing.T) {
		svc := registerMock()
		c := newTestCli(newTestTerm("alice", "password123", "password321"), Deps{Auth: svc})

		err := c.Run(context.Background(), "register", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "do not match")
		assert.Empty(t, svc.RegisterCalls())
	})

	t.Run("invalid username", func(t *testing.T) {
		svc := registerMock()
		c := newTestCli(newTestTerm("a b"), Deps{Auth: svc})

		require.Error(t, c.Run(context.Background(), "register", nil))
		assert.Empty(t, svc.RegisterCalls())
	})

	t.Run("short password", func(t *testing.T) {
		svc := registerMock()
		c := newTestCli(newTestTerm("alice", "short"), Deps{Auth: svc})

		require.Error(t, c.Run(context.Background(), "register", nil))
		assert.Empty(t, svc.RegisterCalls())
	})
}

func TestCli_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &auth.ServiceMock{
			LoginFunc: func(ctx context.Context, username, password string) (*storage.AuthData, error) {
				return &storage.AuthData{Username: username, ExpiresAt: time.Now().Add(time.Hour).Unix()}, nil
			},
		}
		term := newTestTerm("alice", "password123")
		c := newTestCli(term, Deps{Auth: svc})

		require.NoError(t, c.Run(context.Background(), "login", nil))
		require.Len(t, svc.LoginCalls(), 1)
		assert.Equal(t, "password123", svc.LoginCalls()[0].Password)
		assert.Contains(t, term.output(), "Login successful")
	})

	t.Run("failure", func(t *testing.T) {
		loginErr := errors.New("login failed: unauthorized")
		svc := &auth.ServiceMock{
			LoginFunc: func(ctx context.Context, username, password string) (*storage.AuthData, error) {
				return nil, loginErr
			},
		}
		c := newTestCli(newTestTerm("alice", "wrong-password"), Deps{Auth: svc})

		require.ErrorIs(t, c.Run(context.Background(), "login", nil), loginErr)
	})

	t.Run("empty password", func(t *testing.T) {
		svc := &auth.ServiceMock{}
		c := newTestCli(newTestTerm("alice", ""), Deps{Auth: svc})

		require.Error(t, c.Run(context.Background(), "login", nil))
		assert.Empty(t, svc.LoginCalls())
	})
}

func TestCli_Logout(t *testing.T) {
	svc := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	term := newTestTerm()
	c := newTestCli(term, Deps{Auth: svc})

	require.NoError(t, c.Run(context.Background(), "logout", nil))
	assert.Len(t, svc.LogoutCalls(), 1)
	assert.Contains(t, term.output(), "Logged out")
}

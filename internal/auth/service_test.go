package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alumnihub/alumnihub/internal/accounts"
	"github.com/alumnihub/alumnihub/internal/common"
	"github.com/alumnihub/alumnihub/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

type fakeAccountsRepo struct {
	createOut *accounts.Account
	createErr error

	getOut *accounts.Account
	getErr error

	lastCreated *accounts.Account
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *accounts.Account) (*accounts.Account, error) {
	f.lastCreated = a
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	a.ID = "acc-1"
	a.CreatedAt = time.Now()
	return a, nil
}

func (f *fakeAccountsRepo) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAccountsRepo) GetByID(ctx context.Context, id string) (*accounts.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAccountsRepo) UpdateProfile(ctx context.Context, id string, upd accounts.ProfileUpdate) (*accounts.Account, error) {
	return nil, common.ErrNotFound
}

func (f *fakeAccountsRepo) List(ctx context.Context) ([]*accounts.Account, error) {
	return nil, nil
}

func newTestService(t *testing.T, repo accounts.Repository) *Service {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hasher := NewHasher(bcrypt.MinCost)
	tokens := NewTokenManager("test-secret", time.Hour)
	return NewService(repo, hasher, tokens, logger)
}

// --- Register ---

func TestService_Register_Success(t *testing.T) {
	repo := &fakeAccountsRepo{}
	s := newTestService(t, repo)

	view, err := s.Register(context.Background(), RegisterParams{
		Email:    "a@x.com",
		Password: "pw123",
		Name:     "A",
	})

	require.NoError(t, err)
	assert.Equal(t, "acc-1", view.ID)
	assert.Equal(t, "a@x.com", view.Email)
	assert.Equal(t, accounts.DefaultRole, view.Role)

	require.NotNil(t, repo.lastCreated)
	assert.NotEqual(t, "pw123", repo.lastCreated.PasswordHash, "secret must never be stored in plaintext")
	assert.NotEmpty(t, repo.lastCreated.PasswordHash)
}

func TestService_Register_Duplicate(t *testing.T) {
	repo := &fakeAccountsRepo{createErr: common.ErrDuplicateAccount}
	s := newTestService(t, repo)

	_, err := s.Register(context.Background(), RegisterParams{
		Email:    "a@x.com",
		Password: "pw123",
		Name:     "A",
	})

	require.ErrorIs(t, err, common.ErrDuplicateAccount)
}

func TestService_Register_MissingRequiredFields(t *testing.T) {
	s := newTestService(t, &fakeAccountsRepo{})

	tests := []struct {
		name   string
		params RegisterParams
	}{
		{name: "empty email", params: RegisterParams{Password: "pw", Name: "A"}},
		{name: "empty password", params: RegisterParams{Email: "a@x.com", Name: "A"}},
		{name: "empty name", params: RegisterParams{Email: "a@x.com", Password: "pw"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tc.params)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

// --- Login ---

func storedAccount(t *testing.T, secret string) *accounts.Account {
	t.Helper()
	hash, err := NewHasher(bcrypt.MinCost).Hash(secret)
	require.NoError(t, err)
	return &accounts.Account{
		ID:           "acc-1",
		Email:        "a@x.com",
		Name:         "A",
		PasswordHash: hash,
		Role:         accounts.DefaultRole,
		Organization: "Acme",
	}
}

func TestService_Login_Success(t *testing.T) {
	repo := &fakeAccountsRepo{getOut: storedAccount(t, "pw123")}
	s := newTestService(t, repo)

	token, view, err := s.Login(context.Background(), "a@x.com", "pw123")

	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "acc-1", view.ID)
	assert.Equal(t, "a@x.com", view.Email)
	assert.Equal(t, "A", view.Name)

	// The issued token must round-trip through the verifier.
	id, err := s.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id.AccountID)
	assert.Equal(t, "a@x.com", id.Email)
}

func TestService_Login_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	unknown := &fakeAccountsRepo{getErr: common.ErrNotFound}
	wrongPw := &fakeAccountsRepo{getOut: storedAccount(t, "pw123")}

	_, _, errUnknown := newTestService(t, unknown).Login(context.Background(), "b@x.com", "pw123")
	_, _, errWrong := newTestService(t, wrongPw).Login(context.Background(), "a@x.com", "nope")

	require.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, common.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error(),
		"unknown email and wrong password must be externally indistinguishable")
}

func TestService_Login_CorruptHashIsNotACredentialsFailure(t *testing.T) {
	account := storedAccount(t, "pw123")
	account.PasswordHash = "not-a-bcrypt-hash"
	repo := &fakeAccountsRepo{getOut: account}
	s := newTestService(t, repo)

	_, _, err := s.Login(context.Background(), "a@x.com", "pw123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
	assert.ErrorIs(t, err, common.ErrCorruptCredential)
}

func TestService_Login_RepositoryFault(t *testing.T) {
	repo := &fakeAccountsRepo{getErr: errors.New("connection refused")}
	s := newTestService(t, repo)

	_, _, err := s.Login(context.Background(), "a@x.com", "pw123")

	require.ErrorIs(t, err, common.ErrInternal)
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/alumnihub/alumnihub/internal/accounts"
	"github.com/alumnihub/alumnihub/internal/common"
	"github.com/alumnihub/alumnihub/internal/logging"
)

// Service orchestrates registration and login. It is the only component
// with business logic: the hasher and the token manager are pure
// transforms, the repository is pure storage.
type Service struct {
	repo   accounts.Repository
	hasher *Hasher
	tokens *TokenManager
	logger logging.Logger
}

func NewService(repo accounts.Repository, hasher *Hasher, tokens *TokenManager, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "auth_service"),
	}
}

// RegisterParams carries the registration input. Only Email, Password and
// Name are required; the profile attributes are optional.
type RegisterParams struct {
	Email          string
	Password       string
	Name           string
	Organization   string
	Title          string
	GraduationYear int
	Phone          string
}

// Register hashes the secret, persists a new account with the default
// role and returns its public view. The duplicate decision belongs to the
// repository's unique constraint; a violation surfaces as
// common.ErrDuplicateAccount.
func (s *Service) Register(ctx context.Context, p RegisterParams) (accounts.PublicView, error) {

	// Presence is the only secret policy enforced here.
	if p.Email == "" || p.Password == "" || p.Name == "" {
		return accounts.PublicView{}, common.ErrValidation
	}

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return accounts.PublicView{}, fmt.Errorf("error hashing credential: %w", err)
	}

	account := &accounts.Account{
		Email:          p.Email,
		Name:           p.Name,
		PasswordHash:   hash,
		Role:           accounts.DefaultRole,
		Organization:   p.Organization,
		Title:          p.Title,
		GraduationYear: p.GraduationYear,
		Phone:          p.Phone,
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return accounts.PublicView{}, common.ErrDuplicateAccount
		}
		return accounts.PublicView{}, fmt.Errorf("error creating account: %w", err)
	}

	s.logger.Info(ctx, "account registered", "account_id", account.ID)

	return account.Public(), nil
}

// Login verifies the secret against the stored hash and issues a bearer
// token bound to the account id and email.
//
// An unknown email and a wrong password both return
// common.ErrInvalidCredentials so the caller cannot tell them apart. A
// corrupt stored hash is logged and surfaced as an internal fault, never
// as a credentials problem.
func (s *Service) Login(ctx context.Context, email, password string) (string, accounts.SessionView, error) {

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", accounts.SessionView{}, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "account lookup failed", "error", err.Error())
		return "", accounts.SessionView{}, common.ErrInternal
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "stored credential hash is corrupt", "account_id", account.ID)
		return "", accounts.SessionView{}, fmt.Errorf("%w: %w", common.ErrInternal, err)
	}
	if !ok {
		return "", accounts.SessionView{}, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		s.logger.Error(ctx, "token issuance failed", "error", err.Error())
		return "", accounts.SessionView{}, common.ErrInternal
	}

	return token, account.Session(), nil
}

package accounts

import (
	"context"
)

// Repository is the durable account store keyed by unique email.
//
// Implementations must enforce email uniqueness atomically at the storage
// layer (a unique constraint, not a check-then-insert sequence) and
// surface a violation as common.ErrDuplicateAccount.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
}

package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alumnihub/alumnihub/internal/common"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const accountColumns = "id, email, name, password_hash, role, organization, title, graduation_year, phone, created_at"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *Account) (*Account, error) {

	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if account.Role == "" {
		account.Role = DefaultRole
	}

	query :=
		`INSERT INTO accounts (id, email, name, password_hash, role, organization, title, graduation_year, phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.Name, account.PasswordHash, account.Role,
		account.Organization, account.Title, account.GraduationYear, account.Phone,
	).Scan(&account.CreatedAt)

	if err != nil {
		// The unique index on lower(email) is the single source of truth
		// for duplicates; two concurrent registrations cannot both pass.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	query :=
		`SELECT ` + accountColumns + ` FROM accounts
		 WHERE lower(email) = lower($1)
		 `

	return r.scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Account, error) {
	query :=
		`SELECT ` + accountColumns + ` FROM accounts
		 WHERE id = $1
		 `

	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*Account, error) {
	query :=
		`UPDATE accounts
		 SET name            = COALESCE($2, name),
		     organization    = COALESCE($3, organization),
		     title           = COALESCE($4, title),
		     graduation_year = COALESCE($5, graduation_year),
		     phone           = COALESCE($6, phone)
		 WHERE id = $1
		 RETURNING ` + accountColumns + `
		 `

	return r.scanAccount(r.db.QueryRowContext(ctx, query,
		id, upd.Name, upd.Organization, upd.Title, upd.GraduationYear, upd.Phone))
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Account, error) {
	query :=
		`SELECT ` + accountColumns + ` FROM accounts
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Account
	for rows.Next() {
		account := &Account{}
		if err := rows.Scan(
			&account.ID, &account.Email, &account.Name, &account.PasswordHash, &account.Role,
			&account.Organization, &account.Title, &account.GraduationYear, &account.Phone, &account.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) scanAccount(row *sql.Row) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID, &account.Email, &account.Name, &account.PasswordHash, &account.Role,
		&account.Organization, &account.Title, &account.GraduationYear, &account.Phone, &account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return account, nil
}

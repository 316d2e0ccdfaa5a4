package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	"github.com/SscSPs/products_accounts/internal/core/domain"
	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
	"github.com/SscSPs/products_accounts/internal/models"
	"github.com/SscSPs/products_accounts/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const productAccountColumns = `product_account_id, name, description, minimum_balance, pay_interest, accepts_checks, state`

type PgxProductAccountRepository struct {
	BaseRepository
}

// NewPgxProductAccountRepository creates a new repository for product account data.
func NewPgxProductAccountRepository(pool DBTX) portsrepo.ProductAccountRepositoryFacade {
	return &PgxProductAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductAccountRepositoryFacade = (*PgxProductAccountRepository)(nil)

func scanProductAccount(row rowScanner) (models.ProductAccount, error) {
	var m models.ProductAccount
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.MinimumBalance, &m.PayInterest, &m.AcceptsChecks, &m.State)
	return m, err
}

func (r *PgxProductAccountRepository) FindByState(ctx context.Context, state domain.State) ([]domain.ProductAccount, error) {
	query := `SELECT ` + productAccountColumns + ` FROM product_accounts WHERE state = $1 ORDER BY name, product_account_id;`

	rows, err := r.Pool.Query(ctx, query, string(state))
	if err != nil {
		return nil, fmt.Errorf("failed to query product accounts by state %s: %w", state, err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ProductAccount, error) {
		return scanProductAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan product accounts: %w", err)
	}

	return mapping.ToDomainProductAccountSlice(modelAccounts), nil
}

func (r *PgxProductAccountRepository) FindByID(ctx context.Context, id string) (*domain.ProductAccount, error) {
	query := `SELECT ` + productAccountColumns + ` FROM product_accounts WHERE product_account_id = $1;`

	m, err := scanProductAccount(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product account by id %s: %w", id, err)
	}

	account := mapping.ToDomainProductAccount(m)
	return &account, nil
}

// Save upserts the product account keyed by its id.
func (r *PgxProductAccountRepository) Save(ctx context.Context, account domain.ProductAccount) (*domain.ProductAccount, error) {
	m := mapping.ToModelProductAccount(account)
	query := `
		INSERT INTO product_accounts (` + productAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (product_account_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			minimum_balance = EXCLUDED.minimum_balance,
			pay_interest = EXCLUDED.pay_interest,
			accepts_checks = EXCLUDED.accepts_checks,
			state = EXCLUDED.state
		RETURNING ` + productAccountColumns + `;`

	stored, err := scanProductAccount(r.Pool.QueryRow(ctx, query,
		m.ID,
		m.Name,
		m.Description,
		m.MinimumBalance,
		m.PayInterest,
		m.AcceptsChecks,
		m.State,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save product account %s: %w", m.ID, err)
	}

	saved := mapping.ToDomainProductAccount(stored)
	return &saved, nil
}

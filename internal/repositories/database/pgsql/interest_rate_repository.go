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

const interestRateColumns = `interest_rate_id, name, interest_rate, state`

type PgxInterestRateRepository struct {
	BaseRepository
}

// NewPgxInterestRateRepository creates a new repository for interest rate data.
func NewPgxInterestRateRepository(pool DBTX) portsrepo.InterestRateRepositoryFacade {
	return &PgxInterestRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InterestRateRepositoryFacade = (*PgxInterestRateRepository)(nil)

func scanInterestRate(row rowScanner) (models.InterestRate, error) {
	var m models.InterestRate
	err := row.Scan(&m.ID, &m.Name, &m.InterestRate, &m.State)
	return m, err
}

// FindByState retrieves all interest rates in the given state, ordered by id.
func (r *PgxInterestRateRepository) FindByState(ctx context.Context, state domain.State) ([]domain.InterestRate, error) {
	query := `SELECT ` + interestRateColumns + ` FROM interest_rates WHERE state = $1 ORDER BY interest_rate_id;`

	rows, err := r.Pool.Query(ctx, query, string(state))
	if err != nil {
		return nil, fmt.Errorf("failed to query interest rates by state %s: %w", state, err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InterestRate, error) {
		return scanInterestRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan interest rates: %w", err)
	}

	return mapping.ToDomainInterestRateSlice(modelRates), nil
}

// FindByID retrieves an interest rate by its id.
func (r *PgxInterestRateRepository) FindByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	query := `SELECT ` + interestRateColumns + ` FROM interest_rates WHERE interest_rate_id = $1;`

	m, err := scanInterestRate(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find interest rate by id %d: %w", id, err)
	}

	rate := mapping.ToDomainInterestRate(m)
	return &rate, nil
}

// Save inserts a new rate (id assigned by the database) or overwrites an existing one.
func (r *PgxInterestRateRepository) Save(ctx context.Context, rate domain.InterestRate) (*domain.InterestRate, error) {
	m := mapping.ToModelInterestRate(rate)

	var row pgx.Row
	if m.ID == 0 {
		query := `
			INSERT INTO interest_rates (name, interest_rate, state)
			VALUES ($1, $2, $3)
			RETURNING ` + interestRateColumns + `;`
		row = r.Pool.QueryRow(ctx, query, m.Name, m.InterestRate, m.State)
	} else {
		query := `
			INSERT INTO interest_rates (interest_rate_id, name, interest_rate, state)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (interest_rate_id) DO UPDATE SET
				name = EXCLUDED.name,
				interest_rate = EXCLUDED.interest_rate,
				state = EXCLUDED.state
			RETURNING ` + interestRateColumns + `;`
		row = r.Pool.QueryRow(ctx, query, m.ID, m.Name, m.InterestRate, m.State)
	}

	stored, err := scanInterestRate(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save interest rate %q: %w", m.Name, err)
	}

	saved := mapping.ToDomainInterestRate(stored)
	return &saved, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	"github.com/SscSPs/products_accounts/internal/core/domain"
	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/products_accounts/internal/core/ports/services"
	"github.com/SscSPs/products_accounts/internal/events"
)

type interestRateService struct {
	BaseService
	repo portsrepo.InterestRateRepositoryFacade
}

// NewInterestRateService creates the interest rate service over the given repository.
func NewInterestRateService(repo portsrepo.InterestRateRepositoryFacade, options ...ServiceOption) portssvc.InterestRateSvcFacade {
	svc := &interestRateService{repo: repo}
	svc.applyOptions(options)
	return svc
}

var _ portssvc.InterestRateSvcFacade = (*interestRateService)(nil)

func (s *interestRateService) ListAllActives(ctx context.Context) ([]domain.InterestRate, error) {
	rates, err := s.repo.FindByState(ctx, domain.StateActive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active interest rates")
		return nil, apperrors.NewCRUDError(http.StatusInternalServerError, "failed to list active interest rates", err)
	}
	if rates == nil {
		return []domain.InterestRate{}, nil
	}

	s.LogDebug(ctx, "Active interest rates listed", slog.Int("count", len(rates)))
	return rates, nil
}

func (s *interestRateService) ObtainByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	rate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewCRUDError(http.StatusNotFound, fmt.Sprintf("interest rate %d not found", id), apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find interest rate", slog.Int("interest_rate_id", id))
		return nil, apperrors.NewCRUDError(http.StatusInternalServerError, fmt.Sprintf("failed to find interest rate %d", id), err)
	}
	return rate, nil
}

func (s *interestRateService) Create(ctx context.Context, rate domain.InterestRate) (*domain.InterestRate, error) {
	saved, err := s.repo.Save(ctx, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to create interest rate", slog.String("name", rate.Name))
		return nil, apperrors.NewCRUDError(saveErrorCode(err), "interest rate cannot be created", err)
	}

	s.LogInfo(ctx, "Interest rate created", slog.Int("interest_rate_id", saved.ID))
	s.PublishEvent(ctx, events.InterestRateEventsStream, events.InterestRateCreated, saved)
	return saved, nil
}

// Update replaces the stored rate with the given payload once the id is known to exist.
// Fields left empty in the payload are written as empty; nothing is merged.
func (s *interestRateService) Update(ctx context.Context, id int, rate domain.InterestRate) (*domain.InterestRate, error) {
	if _, err := s.ObtainByID(ctx, id); err != nil {
		return nil, err
	}

	rate.ID = id
	saved, err := s.repo.Save(ctx, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to update interest rate", slog.Int("interest_rate_id", id))
		return nil, apperrors.NewCRUDError(saveErrorCode(err), fmt.Sprintf("interest rate %d cannot be updated", id), err)
	}

	s.LogInfo(ctx, "Interest rate updated", slog.Int("interest_rate_id", id))
	s.PublishEvent(ctx, events.InterestRateEventsStream, events.InterestRateUpdated, saved)
	return saved, nil
}

func (s *interestRateService) Inactivate(ctx context.Context, id int) (*domain.InterestRate, error) {
	existing, err := s.ObtainByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.State = domain.StateInactive
	saved, err := s.repo.Save(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "Failed to inactivate interest rate", slog.Int("interest_rate_id", id))
		return nil, apperrors.NewCRUDError(saveErrorCode(err), fmt.Sprintf("interest rate %d cannot be inactivated", id), err)
	}

	s.LogInfo(ctx, "Interest rate inactivated", slog.Int("interest_rate_id", id))
	s.PublishEvent(ctx, events.InterestRateEventsStream, events.InterestRateInactivated, saved)
	return saved, nil
}

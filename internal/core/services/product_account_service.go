package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	"github.com/SscSPs/products_accounts/internal/core/domain"
	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/products_accounts/internal/core/ports/services"
	"github.com/SscSPs/products_accounts/internal/events"
)

type productAccountService struct {
	BaseService
	repo portsrepo.ProductAccountRepositoryFacade
}

// NewProductAccountService creates the product account service over the given repository.
func NewProductAccountService(repo portsrepo.ProductAccountRepositoryFacade, options ...ServiceOption) portssvc.ProductAccountSvcFacade {
	svc := &productAccountService{repo: repo}
	svc.applyOptions(options)
	return svc
}

var _ portssvc.ProductAccountSvcFacade = (*productAccountService)(nil)

func (s *productAccountService) ListAllActives(ctx context.Context) ([]domain.ProductAccount, error) {
	accounts, err := s.repo.FindByState(ctx, domain.StateActive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active product accounts")
		return nil, apperrors.NewCRUDError(http.StatusInternalServerError, "failed to list active product accounts", err)
	}
	if accounts == nil {
		return []domain.ProductAccount{}, nil
	}
	return accounts, nil
}

func (s *productAccountService) ObtainByID(ctx context.Context, id string) (*domain.ProductAccount, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewCRUDError(http.StatusNotFound, "product account "+id+" not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find product account", slog.String("product_account_id", id))
		return nil, apperrors.NewCRUDError(http.StatusInternalServerError, "failed to find product account "+id, err)
	}
	return account, nil
}

func (s *productAccountService) Create(ctx context.Context, account domain.ProductAccount) (*domain.ProductAccount, error) {
	saved, err := s.repo.Save(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to create product account", slog.String("product_account_id", account.ID))
		return nil, apperrors.NewCRUDError(saveErrorCode(err), "product account cannot be created", err)
	}

	s.LogInfo(ctx, "Product account created", slog.String("product_account_id", saved.ID))
	s.PublishEvent(ctx, events.ProductAccountEventsStream, events.ProductAccountCreated, saved)
	return saved, nil
}

func (s *productAccountService) Update(ctx context.Context, id string, account domain.ProductAccount) (*domain.ProductAccount, error) {
	if _, err := s.ObtainByID(ctx, id); err != nil {
		return nil, err
	}

	account.ID = id
	saved, err := s.repo.Save(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to update product account", slog.String("product_account_id", id))
		return nil, apperrors.NewCRUDError(saveErrorCode(err), "product account "+id+" cannot be updated", err)
	}

	s.LogInfo(ctx, "Product account updated", slog.String("product_account_id", id))
	s.PublishEvent(ctx, events.ProductAccountEventsStream, events.ProductAccountUpdated, saved)
	return saved, nil
}

func (s *productAccountService) Inactivate(ctx context.Context, id string) (*domain.ProductAccount, error) {
	existing, err := s.ObtainByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.State = domain.StateInactive
	saved, err := s.repo.Save(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "Failed to inactivate product account", slog.String("product_account_id", id))
		return nil, apperrors.NewCRUDError(saveErrorCode(err), "product account "+id+" cannot be inactivated", err)
	}

	s.LogInfo(ctx, "Product account inactivated", slog.String("product_account_id", id))
	s.PublishEvent(ctx, events.ProductAccountEventsStream, events.ProductAccountInactivated, saved)
	return saved, nil
}

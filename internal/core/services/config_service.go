package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
)

// configService implements the ConfigSvcFacade interface.
type configService struct {
	BaseService
	configRepo portsrepo.ConfigRepositoryFacade
}

// NewConfigService creates a new config service.
func NewConfigService(configRepo portsrepo.ConfigRepositoryFacade) portssvc.ConfigSvcFacade {
	return &configService{configRepo: configRepo}
}

var _ portssvc.ConfigSvcFacade = (*configService)(nil)

func (s *configService) ListConfig(ctx context.Context) ([]domain.OperationConfig, error) {
	rows, err := s.configRepo.ListConfig(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list operation config")
		return nil, fmt.Errorf("failed to list operation config: %w", err)
	}
	if rows == nil {
		return []domain.OperationConfig{}, nil
	}
	return rows, nil
}

func (s *configService) UpdateConfig(ctx context.Context, id int64, req dto.UpdateConfigRequest) (*domain.OperationConfig, error) {
	if req.CommissionPercent.IsNegative() || req.SpreadPercent.IsNegative() {
		return nil, fmt.Errorf("%w: commission and spread must not be negative", apperrors.ErrValidation)
	}
	if req.MinAmount.IsNegative() || req.MaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	if req.MaxAmount.IsPositive() && req.MinAmount.GreaterThan(req.MaxAmount) {
		return nil, fmt.Errorf("%w: min amount exceeds max amount", apperrors.ErrValidation)
	}

	updated, err := s.configRepo.UpdateConfig(ctx, domain.OperationConfig{
		ID:                id,
		CommissionPercent: req.CommissionPercent,
		SpreadPercent:     req.SpreadPercent,
		MinAmount:         req.MinAmount,
		MaxAmount:         req.MaxAmount,
		Active:            *req.Active,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update operation config", slog.Int64("config_id", id))
		return nil, fmt.Errorf("failed to update operation config: %w", err)
	}

	s.LogInfo(ctx, "Operation config updated",
		slog.Int64("config_id", updated.ID),
		slog.String("currency", updated.Currency))
	return updated, nil
}

// subscriptionService implements the SubscriptionSvcFacade interface.
type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

func (s *subscriptionService) ListSubscriptions(ctx context.Context) ([]domain.QuoteSubscription, error) {
	subs, err := s.subscriptionRepo.ListSubscriptions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subscriptions")
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if subs == nil {
		return []domain.QuoteSubscription{}, nil
	}
	return subs, nil
}

func (s *subscriptionService) SetSubscriptionActive(ctx context.Context, id int64, active bool) (*domain.QuoteSubscription, error) {
	sub, err := s.subscriptionRepo.SetSubscriptionActive(ctx, id, active, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to toggle subscription", slog.Int64("subscription_id", id))
		return nil, fmt.Errorf("failed to toggle subscription: %w", err)
	}

	s.LogInfo(ctx, "Subscription toggled",
		slog.Int64("subscription_id", id),
		slog.Bool("active", active))
	return sub, nil
}

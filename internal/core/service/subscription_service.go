package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

// SubscriptionService manages the email-subscription ledger.
type SubscriptionService struct {
	repo   ports.SubscriptionRepository
	logger zerolog.Logger
}

func NewSubscriptionService(repo ports.SubscriptionRepository, logger zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{repo: repo, logger: logger}
}

// Subscribe creates an active ledger entry. Any existing record for the
// address, active or not, is a conflict.
func (s *SubscriptionService) Subscribe(ctx context.Context, email string) (*domain.Subscription, error) {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidInput
	}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadySubscribed
	case !errors.Is(err, domain.ErrSubscriptionNotFound):
		return nil, err
	}

	sub := &domain.Subscription{
		Email:        email,
		SubscribedAt: time.Now().UTC(),
		Active:       true,
	}

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("email subscribed")
	return created, nil
}

// Unsubscribe flips the record inactive. An unknown address is a no-op.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domain.ErrInvalidInput
	}
	return s.repo.Deactivate(ctx, email)
}

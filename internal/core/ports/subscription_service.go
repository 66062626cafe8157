package ports

import (
	"context"

	"github.com/remotehub/jobboard-api/internal/core/domain"
)

// SubscriptionService manages the email-subscription ledger.
type SubscriptionService interface {
	Subscribe(ctx context.Context, email string) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, email string) error
}

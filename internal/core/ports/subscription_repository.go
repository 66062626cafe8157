package ports

import (
	"context"

	"github.com/remotehub/jobboard-api/internal/core/domain"
)

// SubscriptionRepository defines persistence for the email-subscription
// ledger.
type SubscriptionRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Subscription, error)
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)

	// Deactivate sets active=false on the matching record. A missing
	// record is a no-op, not an error.
	Deactivate(ctx context.Context, email string) error
}

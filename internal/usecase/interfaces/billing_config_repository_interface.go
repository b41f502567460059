package interfaces

import (
	"context"

	"condo_gestao/internal/domain/entities"
)

//go:generate mockgen -source=billing_config_repository_interface.go -destination=mocks/billing_config_repository_mock.go -package=mocks

// IBillingConfigRepository abstracts persistence of per-condo billing
// settings.

type IBillingConfigRepository interface {
	// Get returns the stored configuration, or entities.DefaultBillingConfig
	// when the condo never saved one. An error always means the store itself
	// was unavailable.
	Get(ctx context.Context, condoID string) (entities.BillingConfig, error)
	// Save upserts the configuration wholesale.
	Save(ctx context.Context, cfg entities.BillingConfig) (entities.BillingConfig, error)
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase/interfaces"
)

var (
	ErrInvalidDueDay        = errors.New("invalid due day")
	ErrInvalidDefaultAmount = errors.New("invalid default amount")
	ErrInvalidPixType       = errors.New("invalid pix key type")
	ErrInvalidTimezone      = errors.New("invalid timezone")
)

type IBillingConfigUseCase interface {
	Get(ctx context.Context, condoID string) (entities.BillingConfig, error)
	Save(ctx context.Context, condoID string, cfg entities.BillingConfig) (entities.BillingConfig, error)
}

type BillingConfigUseCase struct {
	configs interfaces.IBillingConfigRepository
}

var _ IBillingConfigUseCase = (*BillingConfigUseCase)(nil)

func NewBillingConfigUseCase(configs interfaces.IBillingConfigRepository) *BillingConfigUseCase {
	return &BillingConfigUseCase{configs: configs}
}

func (u *BillingConfigUseCase) Get(ctx context.Context, condoID string) (entities.BillingConfig, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return entities.BillingConfig{}, ErrInvalidCondoID
	}
	return u.configs.Get(ctx, condoID)
}

// Save replaces the condo's billing settings wholesale after validation.
func (u *BillingConfigUseCase) Save(ctx context.Context, condoID string, cfg entities.BillingConfig) (entities.BillingConfig, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return entities.BillingConfig{}, ErrInvalidCondoID
	}
	if cfg.DueDay < 1 || cfg.DueDay > 31 {
		return entities.BillingConfig{}, ErrInvalidDueDay
	}
	if cfg.DefaultAmount < 0 {
		return entities.BillingConfig{}, ErrInvalidDefaultAmount
	}
	if cfg.PixKey != "" && !cfg.PixType.Valid() {
		return entities.BillingConfig{}, ErrInvalidPixType
	}
	if cfg.Timezone == "" {
		cfg.Timezone = entities.DefaultTimezone
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return entities.BillingConfig{}, ErrInvalidTimezone
	}

	cfg.CondoID = condoID
	saved, err := u.configs.Save(ctx, cfg)
	if err != nil {
		log.Printf("[config][usecase] save failed condo_id=%s err=%v", condoID, err)
		return entities.BillingConfig{}, err
	}
	log.Printf("[config][usecase] save success condo_id=%s valor_padrao=%.2f dia_vencimento=%d", condoID, saved.DefaultAmount, saved.DueDay)
	return saved, nil
}

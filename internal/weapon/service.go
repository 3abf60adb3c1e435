package weapon

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
	"github.com/osse101/WeaponPaints_Go/internal/logger"
	"github.com/osse101/WeaponPaints_Go/internal/metrics"
	"github.com/osse101/WeaponPaints_Go/internal/repository"
	"github.com/osse101/WeaponPaints_Go/internal/validation"
)

// Input carries the attributes of a save request. Nil fields were omitted by
// the caller and receive their defaults.
type Input struct {
	PaintID       *int
	Wear          *float64
	Seed          *int
	Nametag       *string
	StatTrak      *bool
	StatTrakCount *int
	Stickers      []domain.Sticker
	Keychain      *domain.Keychain
}

// Service defines the weapon configuration service interface
type Service interface {
	// ListWeapons returns every configuration owned by steamID
	ListWeapons(ctx context.Context, steamID string) ([]domain.WeaponConfig, error)

	// SaveWeapon validates the input, applies defaults and creates or replaces
	// the configuration for (steamID, team, defindex)
	SaveWeapon(ctx context.Context, steamID string, team, defindex int, in Input) (*domain.WeaponConfig, error)

	// DeleteWeapon removes one configuration, or returns domain.ErrWeaponNotFound
	DeleteWeapon(ctx context.Context, steamID string, team, defindex int) error
}

type service struct {
	repo repository.Weapon
}

// NewService creates a new weapon service
func NewService(repo repository.Weapon) Service {
	return &service{repo: repo}
}

func (s *service) ListWeapons(ctx context.Context, steamID string) ([]domain.WeaponConfig, error) {
	if err := validation.ValidateOwnerID(steamID); err != nil {
		s.rejected(ctx, metrics.OperationList, err)
		return nil, err
	}

	weapons, err := s.repo.ListWeapons(ctx, steamID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgWeaponStorageFailed, "operation", metrics.OperationList, "error", err)
		return nil, err
	}
	if weapons == nil {
		weapons = []domain.WeaponConfig{}
	}
	return weapons, nil
}

func (s *service) SaveWeapon(ctx context.Context, steamID string, team, defindex int, in Input) (*domain.WeaponConfig, error) {
	cfg, err := Build(steamID, team, defindex, in)
	if err != nil {
		s.rejected(ctx, metrics.OperationSave, err)
		return nil, err
	}
	if err := validation.ValidateWeaponConfig(cfg); err != nil {
		s.rejected(ctx, metrics.OperationSave, err)
		return nil, err
	}

	if err := s.repo.UpsertWeapon(ctx, cfg); err != nil {
		logger.FromContext(ctx).Error(LogMsgWeaponStorageFailed, "operation", metrics.OperationSave, "error", err)
		return nil, err
	}

	metrics.RecordSaved(team)
	logger.FromContext(ctx).Info(LogMsgWeaponSaved,
		"steamid", steamID, "team", team, "defindex", defindex, "paint_id", cfg.PaintID)
	return &cfg, nil
}

func (s *service) DeleteWeapon(ctx context.Context, steamID string, team, defindex int) error {
	if err := validation.ValidateWeaponKey(domain.WeaponKey{SteamID: steamID, Team: team, Defindex: defindex}); err != nil {
		s.rejected(ctx, metrics.OperationDelete, err)
		return err
	}

	n, err := s.repo.DeleteWeapon(ctx, steamID, team, defindex)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgWeaponStorageFailed, "operation", metrics.OperationDelete, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: team %d defindex %d", domain.ErrWeaponNotFound, team, defindex)
	}

	metrics.RecordDeleted(team)
	logger.FromContext(ctx).Info(LogMsgWeaponDeleted, "steamid", steamID, "team", team, "defindex", defindex)
	return nil
}

func (s *service) rejected(ctx context.Context, operation string, err error) {
	metrics.RecordValidationFailure(operation)
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		logger.FromContext(ctx).Debug(LogMsgWeaponRejected, "operation", operation, "field", vErr.Field, "reason", vErr.Message)
	}
}

// Build assembles the configuration that a save stores: omitted fields take
// their defaults, an empty nametag means no nametag, and the StatTrak counter
// is zero whenever StatTrak is off.
func Build(steamID string, team, defindex int, in Input) (domain.WeaponConfig, error) {
	if in.PaintID == nil {
		return domain.WeaponConfig{}, domain.NewValidationError(fieldPaintID, errMsgPaintIDMissing)
	}

	cfg := domain.WeaponConfig{
		SteamID:       steamID,
		Team:          team,
		Defindex:      defindex,
		PaintID:       *in.PaintID,
		Wear:          domain.DefaultWear,
		Seed:          domain.DefaultSeed,
		StatTrak:      domain.DefaultStatTrak,
		StatTrakCount: domain.DefaultStatTrakCount,
		Stickers:      []domain.Sticker{},
		Keychain:      in.Keychain,
	}
	if in.Wear != nil {
		cfg.Wear = *in.Wear
	}
	if in.Seed != nil {
		cfg.Seed = *in.Seed
	}
	if in.Nametag != nil && *in.Nametag != "" {
		tag := *in.Nametag
		cfg.Nametag = &tag
	}
	if in.StatTrak != nil {
		cfg.StatTrak = *in.StatTrak
	}
	if cfg.StatTrak && in.StatTrakCount != nil {
		cfg.StatTrakCount = *in.StatTrakCount
	}
	if in.Stickers != nil {
		cfg.Stickers = in.Stickers
	}
	return cfg, nil
}

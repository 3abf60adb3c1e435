package validation

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

// NametagSymbols are the punctuation characters allowed in a nametag besides
// ASCII letters, digits and the space character
const NametagSymbols = "-_!@#$%^&*()[]{}+=|\\:;\"'<>,.?/~`"

var (
	fieldValidator     *validator.Validate
	fieldValidatorOnce sync.Once
)

// fields returns the shared validator used for single-value range rules
func fields() *validator.Validate {
	fieldValidatorOnce.Do(func() {
		v := validator.New()
		mustRegister(v, "nametag", validateNametagChars)
		mustRegister(v, "finite", validateFinite)
		fieldValidator = v
	})
	return fieldValidator
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// check runs a validator tag against a single value and converts a failure
// into a ValidationError carrying the given message
func check(value interface{}, tag, field, message string) error {
	if err := fields().Var(value, tag); err != nil {
		return domain.NewValidationError(field, message)
	}
	return nil
}

// ValidateTeam accepts only the two playable sides
func ValidateTeam(team int) error {
	return check(team, fmt.Sprintf("oneof=%d %d", domain.TeamTerrorist, domain.TeamCounterTerrorist),
		"team", ErrMsgInvalidTeam)
}

// ValidateWeaponDefindex requires a positive definition index that fits a 32-bit column
func ValidateWeaponDefindex(defindex int) error {
	return check(defindex, fmt.Sprintf("min=%d,max=%d", domain.MinWeaponDefindex, domain.MaxWeaponDefindex),
		"defindex", ErrMsgInvalidDefindex)
}

// ValidatePaintID requires a non-negative paint id that fits a 32-bit column
func ValidatePaintID(paintID int) error {
	return check(paintID, fmt.Sprintf("min=0,max=%d", domain.MaxPaintID), "paintId", ErrMsgInvalidPaintID)
}

// ValidateWear requires a finite float in [0, 1]
func ValidateWear(wear float64) error {
	return check(wear, "finite,gte=0,lte=1", "wear", ErrMsgInvalidWear)
}

// ValidateSeed requires an integer in [0, 1000]
func ValidateSeed(seed int) error {
	return check(seed, fmt.Sprintf("gte=0,lte=%d", domain.MaxSeed), "seed", ErrMsgInvalidSeed)
}

// ValidateNametag accepts nil, otherwise a bounded string from the allowed character set
func ValidateNametag(nametag *string) error {
	if nametag == nil {
		return nil
	}
	if err := check(*nametag, fmt.Sprintf("max=%d", domain.MaxNametagLength), "nametag", ErrMsgNametagTooLong); err != nil {
		return err
	}
	return check(*nametag, "nametag", "nametag", ErrMsgNametagInvalidChars)
}

// ValidateStatTrakCounter requires a non-negative count that fits the storage column.
// Callers only run it when StatTrak is enabled.
func ValidateStatTrakCounter(count int) error {
	return check(count, fmt.Sprintf("gte=0,lte=%d", domain.MaxStatTrakCount), "stattrakCount", ErrMsgInvalidStatTrakCount)
}

// ValidateStickers enforces the five slot limit and each sticker's own ranges
func ValidateStickers(stickers []domain.Sticker) error {
	if len(stickers) > domain.MaxStickers {
		return domain.NewValidationError("stickers", ErrMsgTooManyStickers)
	}
	for i, s := range stickers {
		if err := validateSticker(i, s); err != nil {
			return err
		}
	}
	return nil
}

func validateSticker(slot int, s domain.Sticker) error {
	prefix := fmt.Sprintf("stickers[%d]", slot)
	rules := []struct {
		field string
		value interface{}
		tag   string
		msg   string
	}{
		{"id", s.ID, fmt.Sprintf("min=1,max=%d", domain.MaxAttachmentID), "id must be a positive 32-bit integer"},
		{"schema", s.Schema, fmt.Sprintf("min=0,max=%d", domain.MaxAttachmentID), "schema must be a non-negative 32-bit integer"},
		{"x", s.X, "finite,gte=0,lte=1", "x must be between 0 and 1"},
		{"y", s.Y, "finite,gte=0,lte=1", "y must be between 0 and 1"},
		{"wear", s.Wear, "finite,gte=0,lte=1", "wear must be between 0 and 1"},
		{"scale", s.Scale, fmt.Sprintf("finite,gt=0,lte=%g", domain.MaxStickerScale), fmt.Sprintf("scale must be greater than 0 and at most %g", domain.MaxStickerScale)},
		{"rotation", s.Rotation, fmt.Sprintf("finite,gte=0,lte=%g", domain.MaxStickerRotate), fmt.Sprintf("rotation must be between 0 and %g", domain.MaxStickerRotate)},
	}
	for _, r := range rules {
		field := prefix + "." + r.field
		if err := check(r.value, r.tag, field, fmt.Sprintf("Sticker %d: %s", slot+1, r.msg)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateKeychain accepts nil, otherwise a keychain with a real id, a
// non-negative seed and finite offsets
func ValidateKeychain(k *domain.Keychain) error {
	if k == nil {
		return nil
	}
	if err := check(k.ID, fmt.Sprintf("min=1,max=%d", domain.MaxAttachmentID), "keychain.id", "Keychain id must be a positive 32-bit integer"); err != nil {
		return err
	}
	if err := check(k.Seed, fmt.Sprintf("min=0,max=%d", domain.MaxAttachmentID), "keychain.seed", "Keychain seed must be a non-negative 32-bit integer"); err != nil {
		return err
	}
	for _, c := range []struct {
		name  string
		value float64
	}{{"x", k.X}, {"y", k.Y}, {"z", k.Z}} {
		if err := check(c.value, "finite", "keychain."+c.name, fmt.Sprintf("Keychain %s must be a finite number", c.name)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOwnerID requires a non-empty player identity that fits the storage column
func ValidateOwnerID(steamID string) error {
	return check(steamID, fmt.Sprintf("required,max=%d", domain.MaxSteamIDLength), "steamid", ErrMsgInvalidOwner)
}

// ValidateWeaponKey validates the composite key of a weapon configuration
func ValidateWeaponKey(key domain.WeaponKey) error {
	if err := ValidateOwnerID(key.SteamID); err != nil {
		return err
	}
	if err := ValidateTeam(key.Team); err != nil {
		return err
	}
	return ValidateWeaponDefindex(key.Defindex)
}

// ValidateWeaponConfig runs every field validator, stopping at the first failure
func ValidateWeaponConfig(cfg domain.WeaponConfig) error {
	if err := ValidateWeaponKey(cfg.Key()); err != nil {
		return err
	}
	if err := ValidatePaintID(cfg.PaintID); err != nil {
		return err
	}
	if err := ValidateWear(cfg.Wear); err != nil {
		return err
	}
	if err := ValidateSeed(cfg.Seed); err != nil {
		return err
	}
	if err := ValidateNametag(cfg.Nametag); err != nil {
		return err
	}
	if cfg.StatTrak {
		if err := ValidateStatTrakCounter(cfg.StatTrakCount); err != nil {
			return err
		}
	}
	if err := ValidateStickers(cfg.Stickers); err != nil {
		return err
	}
	return ValidateKeychain(cfg.Keychain)
}

// IsNametagRune reports whether r may appear in a nametag
func IsNametagRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
		return true
	default:
		return strings.ContainsRune(NametagSymbols, r)
	}
}

func validateNametagChars(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !IsNametagRune(r) {
			return false
		}
	}
	return true
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

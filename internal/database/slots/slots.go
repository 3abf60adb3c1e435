// Package slots converts sticker and keychain attachments to and from the
// delimited strings stored in the fixed-width wp_player_skins columns.
//
// A weapon row carries exactly five sticker columns. Slot i holds
// "id;schema;x;y;wear;scale;rotation" for the i-th sticker, or EmptySticker
// when there is no sticker in that position. The keychain column holds
// "id;x;y;z;seed" or NULL.
package slots

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

// Count is the number of sticker columns per weapon row
const Count = domain.MaxStickers

const (
	// EmptySticker marks a sticker column with no sticker in it
	EmptySticker = "0;0;0;0;0;0;0"

	separator      = ";"
	stickerFields  = 7
	keychainFields = 5
)

// EncodeStickers maps 0-5 stickers onto the five storage slots, in order.
// Unused slots receive EmptySticker.
func EncodeStickers(stickers []domain.Sticker) ([Count]string, error) {
	var out [Count]string
	if len(stickers) > Count {
		return out, fmt.Errorf("%d stickers do not fit in %d slots", len(stickers), Count)
	}

	for i := range out {
		if i >= len(stickers) {
			out[i] = EmptySticker
			continue
		}
		s := stickers[i]
		out[i] = strings.Join([]string{
			strconv.Itoa(s.ID),
			strconv.Itoa(s.Schema),
			formatFloat(s.X),
			formatFloat(s.Y),
			formatFloat(s.Wear),
			formatFloat(s.Scale),
			formatFloat(s.Rotation),
		}, separator)
	}
	return out, nil
}

// DecodeStickers rebuilds the sticker list from stored slots.
// Empty slots are skipped, so the result is dense and ordered by slot.
func DecodeStickers(stored []string) ([]domain.Sticker, error) {
	stickers := make([]domain.Sticker, 0, len(stored))
	for i, raw := range stored {
		s, ok, err := decodeSticker(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: sticker slot %d: %v", domain.ErrCorruptedSlot, i, err)
		}
		if ok {
			stickers = append(stickers, s)
		}
	}
	return stickers, nil
}

func decodeSticker(raw string) (domain.Sticker, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == EmptySticker {
		return domain.Sticker{}, false, nil
	}

	parts := strings.Split(raw, separator)
	if len(parts) != stickerFields {
		return domain.Sticker{}, false, fmt.Errorf("expected %d fields, got %d", stickerFields, len(parts))
	}

	p := parser{parts: parts}
	s := domain.Sticker{
		ID:       p.intAt(0),
		Schema:   p.intAt(1),
		X:        p.floatAt(2),
		Y:        p.floatAt(3),
		Wear:     p.floatAt(4),
		Scale:    p.floatAt(5),
		Rotation: p.floatAt(6),
	}
	if p.err != nil {
		return domain.Sticker{}, false, p.err
	}

	// id 0 marks an empty slot whatever the remaining fields hold
	if s.ID == 0 {
		return domain.Sticker{}, false, nil
	}
	return s, true, nil
}

// EncodeKeychain returns the stored form of a keychain, or nil for NULL.
func EncodeKeychain(k *domain.Keychain) *string {
	if k == nil {
		return nil
	}
	v := strings.Join([]string{
		strconv.Itoa(k.ID),
		formatFloat(k.X),
		formatFloat(k.Y),
		formatFloat(k.Z),
		strconv.Itoa(k.Seed),
	}, separator)
	return &v
}

// DecodeKeychain parses a stored keychain. NULL and empty values mean no keychain.
func DecodeKeychain(stored *string) (*domain.Keychain, error) {
	if stored == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*stored)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, separator)
	if len(parts) != keychainFields {
		return nil, fmt.Errorf("%w: keychain: expected %d fields, got %d", domain.ErrCorruptedSlot, keychainFields, len(parts))
	}

	p := parser{parts: parts}
	k := domain.Keychain{
		ID:   p.intAt(0),
		X:    p.floatAt(1),
		Y:    p.floatAt(2),
		Z:    p.floatAt(3),
		Seed: p.intAt(4),
	}
	if p.err != nil {
		return nil, fmt.Errorf("%w: keychain: %v", domain.ErrCorruptedSlot, p.err)
	}
	return &k, nil
}

// formatFloat writes the shortest plain decimal that parses back to the same value
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parser keeps the first conversion error so field lists read top to bottom
type parser struct {
	parts []string
	err   error
}

func (p *parser) intAt(i int) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(p.parts[i]))
	if err != nil {
		p.err = fmt.Errorf("field %d: %w", i, err)
	}
	return v
}

func (p *parser) floatAt(i int) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.parts[i]), 64)
	if err != nil {
		p.err = fmt.Errorf("field %d: %w", i, err)
	}
	return v
}

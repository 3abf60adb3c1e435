package slots

import (
	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

// Row mirrors one wp_player_skins row as stored, with attachments still in
// their delimited column form. The db tags are read by sqlx.
type Row struct {
	SteamID       string  `db:"steamid"`
	Team          int     `db:"weapon_team"`
	Defindex      int     `db:"weapon_defindex"`
	PaintID       int     `db:"weapon_paint_id"`
	Wear          float64 `db:"weapon_wear"`
	Seed          int     `db:"weapon_seed"`
	Nametag       *string `db:"weapon_nametag"`
	StatTrak      bool    `db:"weapon_stattrak"`
	StatTrakCount int     `db:"weapon_stattrak_count"`
	Sticker0      string  `db:"weapon_sticker_0"`
	Sticker1      string  `db:"weapon_sticker_1"`
	Sticker2      string  `db:"weapon_sticker_2"`
	Sticker3      string  `db:"weapon_sticker_3"`
	Sticker4      string  `db:"weapon_sticker_4"`
	Keychain      *string `db:"weapon_keychain"`
}

// Columns lists the wp_player_skins columns in Row field order
const Columns = `steamid, weapon_team, weapon_defindex, weapon_paint_id, weapon_wear, weapon_seed,
	weapon_nametag, weapon_stattrak, weapon_stattrak_count,
	weapon_sticker_0, weapon_sticker_1, weapon_sticker_2, weapon_sticker_3, weapon_sticker_4,
	weapon_keychain`

// NewRow serializes a configuration into its stored form
func NewRow(cfg domain.WeaponConfig) (Row, error) {
	stickers, err := EncodeStickers(cfg.Stickers)
	if err != nil {
		return Row{}, err
	}
	return Row{
		SteamID:       cfg.SteamID,
		Team:          cfg.Team,
		Defindex:      cfg.Defindex,
		PaintID:       cfg.PaintID,
		Wear:          cfg.Wear,
		Seed:          cfg.Seed,
		Nametag:       cfg.Nametag,
		StatTrak:      cfg.StatTrak,
		StatTrakCount: cfg.StatTrakCount,
		Sticker0:      stickers[0],
		Sticker1:      stickers[1],
		Sticker2:      stickers[2],
		Sticker3:      stickers[3],
		Sticker4:      stickers[4],
		Keychain:      EncodeKeychain(cfg.Keychain),
	}, nil
}

// Args returns the row values in Columns order, ready to bind to a statement
func (r Row) Args() []any {
	return []any{
		r.SteamID, r.Team, r.Defindex, r.PaintID, r.Wear, r.Seed,
		r.Nametag, r.StatTrak, r.StatTrakCount,
		r.Sticker0, r.Sticker1, r.Sticker2, r.Sticker3, r.Sticker4,
		r.Keychain,
	}
}

// Dest returns pointers to the row fields in Columns order, for Scan
func (r *Row) Dest() []any {
	return []any{
		&r.SteamID, &r.Team, &r.Defindex, &r.PaintID, &r.Wear, &r.Seed,
		&r.Nametag, &r.StatTrak, &r.StatTrakCount,
		&r.Sticker0, &r.Sticker1, &r.Sticker2, &r.Sticker3, &r.Sticker4,
		&r.Keychain,
	}
}

// WeaponConfig decodes the stored row. A malformed attachment column yields
// an error wrapping domain.ErrCorruptedSlot.
func (r Row) WeaponConfig() (domain.WeaponConfig, error) {
	stickers, err := DecodeStickers([]string{r.Sticker0, r.Sticker1, r.Sticker2, r.Sticker3, r.Sticker4})
	if err != nil {
		return domain.WeaponConfig{}, err
	}
	keychain, err := DecodeKeychain(r.Keychain)
	if err != nil {
		return domain.WeaponConfig{}, err
	}
	return domain.WeaponConfig{
		SteamID:       r.SteamID,
		Team:          r.Team,
		Defindex:      r.Defindex,
		PaintID:       r.PaintID,
		Wear:          r.Wear,
		Seed:          r.Seed,
		Nametag:       r.Nametag,
		StatTrak:      r.StatTrak,
		StatTrakCount: r.StatTrakCount,
		Stickers:      stickers,
		Keychain:      keychain,
	}, nil
}

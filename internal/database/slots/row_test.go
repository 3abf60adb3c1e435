package slots

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

func TestRow_RoundTrip(t *testing.T) {
	want := domain.WeaponConfig{
		SteamID:       "76561198000000001",
		Team:          domain.TeamTerrorist,
		Defindex:      7,
		PaintID:       12,
		Wear:          0.15,
		Seed:          123,
		Nametag:       ptr("My AK"),
		StatTrak:      true,
		StatTrakCount: 42,
		Stickers: []domain.Sticker{
			{ID: 1, Schema: 0, X: 0.5, Y: 0.5, Wear: 0, Scale: 1, Rotation: 0},
			{ID: 2, Schema: 0, X: 0.3, Y: 0.7, Wear: 0.1, Scale: 1.2, Rotation: 45},
		},
		Keychain: &domain.Keychain{ID: 1, Seed: 100},
	}

	row, err := NewRow(want)
	require.NoError(t, err)
	assert.Equal(t, "1;0;0.5;0.5;0;1;0", row.Sticker0)
	assert.Equal(t, "2;0;0.3;0.7;0.1;1.2;45", row.Sticker1)
	assert.Equal(t, EmptySticker, row.Sticker4)
	require.NotNil(t, row.Keychain)
	assert.Equal(t, "1;0;0;0;100", *row.Keychain)

	got, err := row.WeaponConfig()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRow_ArgsAndDestAlign(t *testing.T) {
	row, err := NewRow(domain.WeaponConfig{SteamID: "x", Team: 3, Defindex: 1})
	require.NoError(t, err)

	args := row.Args()
	var scanned Row
	dest := scanned.Dest()
	require.Len(t, dest, len(args))

	assert.Equal(t, "x", args[0])
	assert.Equal(t, 3, args[1])
	assert.Equal(t, EmptySticker, args[9])
	assert.Nil(t, args[14].(*string))
}

func TestRow_CorruptedColumn(t *testing.T) {
	row := Row{SteamID: "x", Team: 2, Defindex: 1, Sticker0: "garbage",
		Sticker1: EmptySticker, Sticker2: EmptySticker, Sticker3: EmptySticker, Sticker4: EmptySticker}

	_, err := row.WeaponConfig()
	assert.ErrorIs(t, err, domain.ErrCorruptedSlot)

	row.Sticker0 = EmptySticker
	row.Keychain = ptr("1;2")
	_, err = row.WeaponConfig()
	assert.ErrorIs(t, err, domain.ErrCorruptedSlot)
}

package slots

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

func ptr(s string) *string { return &s }

func TestEncodeStickers(t *testing.T) {
	tests := []struct {
		name     string
		stickers []domain.Sticker
		want     [Count]string
		wantErr  bool
	}{
		// CASE 1: Best Case
		{
			name: "single sticker fills first slot",
			stickers: []domain.Sticker{
				{ID: 1, Schema: 0, X: 0.5, Y: 0.5, Wear: 0, Scale: 1, Rotation: 0},
			},
			want: [Count]string{"1;0;0.5;0.5;0;1;0", EmptySticker, EmptySticker, EmptySticker, EmptySticker},
		},
		// CASE 2: Boundary - nothing to encode
		{
			name:     "no stickers",
			stickers: nil,
			want:     [Count]string{EmptySticker, EmptySticker, EmptySticker, EmptySticker, EmptySticker},
		},
		// CASE 2: Boundary - all slots used
		{
			name: "five stickers",
			stickers: []domain.Sticker{
				{ID: 1, Scale: 1}, {ID: 2, Scale: 1}, {ID: 3, Scale: 1}, {ID: 4, Scale: 1}, {ID: 5, Scale: 1.25, Rotation: 359.5},
			},
			want: [Count]string{"1;0;0;0;0;1;0", "2;0;0;0;0;1;0", "3;0;0;0;0;1;0", "4;0;0;0;0;1;0", "5;0;0;0;0;1.25;359.5"},
		},
		// CASE 3: Edge - tiny wear is written without exponent
		{
			name:     "small float stays decimal",
			stickers: []domain.Sticker{{ID: 7, Schema: 3, Wear: 0.000001, Scale: 1}},
			want:     [Count]string{"7;3;0;0;0.000001;1;0", EmptySticker, EmptySticker, EmptySticker, EmptySticker},
		},
		// CASE 4: Invalid Case
		{
			name:     "six stickers",
			stickers: make([]domain.Sticker, 6),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeStickers(tt.stickers)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeStickers(t *testing.T) {
	tests := []struct {
		name    string
		stored  []string
		want    []domain.Sticker
		wantErr bool
	}{
		{
			name:   "all empty",
			stored: []string{EmptySticker, EmptySticker, EmptySticker, EmptySticker, EmptySticker},
			want:   []domain.Sticker{},
		},
		{
			name:   "gaps are removed and order kept",
			stored: []string{EmptySticker, "4;1;0.1;0.2;0.3;1.5;90", EmptySticker, "", "9;0;1;1;1;5;360"},
			want: []domain.Sticker{
				{ID: 4, Schema: 1, X: 0.1, Y: 0.2, Wear: 0.3, Scale: 1.5, Rotation: 90},
				{ID: 9, Schema: 0, X: 1, Y: 1, Wear: 1, Scale: 5, Rotation: 360},
			},
		},
		{
			name:   "zero id with leftover fields is empty",
			stored: []string{"0;0;0.5;0.5;0;1;0"},
			want:   []domain.Sticker{},
		},
		{
			name:   "surrounding whitespace tolerated",
			stored: []string{" 2;0;0;0;0;1;0 "},
			want:   []domain.Sticker{{ID: 2, Scale: 1}},
		},
		{
			name:    "wrong field count",
			stored:  []string{"1;0;0.5"},
			wantErr: true,
		},
		{
			name:    "non numeric field",
			stored:  []string{EmptySticker, "1;0;abc;0;0;1;0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeStickers(tt.stored)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrCorruptedSlot))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeStickers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStickers_RoundTrip(t *testing.T) {
	sets := [][]domain.Sticker{
		{},
		{{ID: 1, Schema: 0, X: 0.5, Y: 0.5, Wear: 0, Scale: 1, Rotation: 0}},
		{
			{ID: 1, Schema: 0, X: 0.5, Y: 0.5, Wear: 0, Scale: 1, Rotation: 0},
			{ID: 2, Schema: 0, X: 0.3, Y: 0.7, Wear: 0.1, Scale: 1.2, Rotation: 45},
		},
		{
			{ID: 11, Schema: 2, X: 1.0 / 3.0, Y: math.Nextafter(1, 0), Wear: 0.123456789012345, Scale: 0.01, Rotation: 359.999},
			{ID: 12, Schema: 2, X: 0, Y: 0, Wear: 1, Scale: 5, Rotation: 360},
			{ID: 13, Schema: 0, X: 0.25, Y: 0.75, Wear: 0.5, Scale: 2.5, Rotation: 180},
			{ID: 14, Schema: 1, X: 0.9, Y: 0.1, Wear: 0.05, Scale: 0.5, Rotation: 12.5},
			{ID: 15, Schema: 1, X: 0.6, Y: 0.4, Wear: 0.95, Scale: 4.75, Rotation: 270},
		},
	}

	for _, stickers := range sets {
		encoded, err := EncodeStickers(stickers)
		require.NoError(t, err)

		decoded, err := DecodeStickers(encoded[:])
		require.NoError(t, err)

		if diff := cmp.Diff(stickers, decoded); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestKeychain(t *testing.T) {
	t.Run("nil encodes to NULL", func(t *testing.T) {
		assert.Nil(t, EncodeKeychain(nil))
	})

	t.Run("NULL and empty decode to nil", func(t *testing.T) {
		k, err := DecodeKeychain(nil)
		require.NoError(t, err)
		assert.Nil(t, k)

		k, err = DecodeKeychain(ptr("  "))
		require.NoError(t, err)
		assert.Nil(t, k)
	})

	t.Run("stored format", func(t *testing.T) {
		got := EncodeKeychain(&domain.Keychain{ID: 1, X: 0, Y: 0, Z: 0, Seed: 100})
		require.NotNil(t, got)
		assert.Equal(t, "1;0;0;0;100", *got)
	})

	t.Run("round trip with negative offsets", func(t *testing.T) {
		want := &domain.Keychain{ID: 42, X: -1.5, Y: 2.25, Z: -0.000125, Seed: 99999}
		got, err := DecodeKeychain(EncodeKeychain(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("corrupted value", func(t *testing.T) {
		_, err := DecodeKeychain(ptr("1;0;0"))
		assert.ErrorIs(t, err, domain.ErrCorruptedSlot)

		_, err = DecodeKeychain(ptr("1;0;0;zero;5"))
		assert.ErrorIs(t, err, domain.ErrCorruptedSlot)
	})
}

func BenchmarkEncodeStickers(b *testing.B) {
	stickers := []domain.Sticker{
		{ID: 1, Schema: 0, X: 0.5, Y: 0.5, Wear: 0, Scale: 1, Rotation: 0},
		{ID: 2, Schema: 0, X: 0.3, Y: 0.7, Wear: 0.1, Scale: 1.2, Rotation: 45},
		{ID: 3, Schema: 1, X: 0.1, Y: 0.9, Wear: 0.25, Scale: 0.8, Rotation: 300},
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = EncodeStickers(stickers)
	}
}

func BenchmarkDecodeStickers(b *testing.B) {
	stored := []string{"1;0;0.5;0.5;0;1;0", "2;0;0.3;0.7;0.1;1.2;45", "3;1;0.1;0.9;0.25;0.8;300", EmptySticker, EmptySticker}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeStickers(stored)
	}
}

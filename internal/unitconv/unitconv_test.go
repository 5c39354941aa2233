package unitconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		from    Unit
		to      Unit
		want    float64
		wantErr bool
		errType error
	}{
		{
			name: "grams to kilograms",
			v:    1500.0,
			from: Gram,
			to:   Kilogram,
			want: 1.5,
		},
		{
			name: "kilogram identity",
			v:    2.5,
			from: Kilogram,
			to:   Kilogram,
			want: 2.5,
		},
		{
			name: "kilograms to pounds",
			v:    1.0,
			from: Kilogram,
			to:   Pound,
			want: 2.2046226218,
		},
		{
			name: "kilograms to ounces",
			v:    1.0,
			from: Kilogram,
			to:   Ounce,
			want: 35.27396195,
		},
		{
			name: "pound is exactly sixteen ounces",
			v:    1.0,
			from: Pound,
			to:   Ounce,
			want: 16.0,
		},
		{
			name: "stone is exactly fourteen pounds",
			v:    1.0,
			from: Stone,
			to:   Pound,
			want: 14.0,
		},
		{
			name: "negative values convert linearly",
			v:    -1.0,
			from: Kilogram,
			to:   Gram,
			want: -1000.0,
		},
		{
			name: "zero converts to zero",
			v:    0.0,
			from: Kilogram,
			to:   Ounce,
			want: 0.0,
		},
		{
			name:    "unknown source unit",
			v:       1.0,
			from:    Unit("furlong"),
			to:      Kilogram,
			wantErr: true,
			errType: ErrInvalidUnit,
		},
		{
			name:    "unknown target unit",
			v:       1.0,
			from:    Kilogram,
			to:      Unit(""),
			wantErr: true,
			errType: ErrInvalidUnit,
		},
		{
			name:    "NaN input",
			v:       math.NaN(),
			from:    Kilogram,
			to:      Gram,
			wantErr: true,
			errType: ErrOverflow,
		},
		{
			name:    "infinite input",
			v:       math.Inf(1),
			from:    Kilogram,
			to:      Gram,
			wantErr: true,
			errType: ErrOverflow,
		},
		{
			name:    "finite input overflowing the target unit",
			v:       1e308,
			from:    Kilogram,
			to:      Gram,
			wantErr: true,
			errType: ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.v, tt.from, tt.to)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errType)
				assert.Zero(t, got)
				return
			}

			require.NoError(t, err)
			// 0.01% tolerance for floating point comparison.
			assert.InDelta(t, tt.want, got, math.Abs(tt.want)*0.0001+1e-12)
		})
	}
}

func TestKilogramHelpers(t *testing.T) {
	got, err := ToKilograms(100.0, Pound)
	require.NoError(t, err)
	assert.InDelta(t, 45.359237, got, 1e-9)

	got, err = FromKilograms(1.0, Ounce)
	require.NoError(t, err)
	assert.InDelta(t, 35.27396195, got, 1e-6)
}

func TestFactor(t *testing.T) {
	units := []Unit{Gram, Kilogram, Ounce, Pound, Stone}
	for _, u := range units {
		factor, ok := Factor(u)
		assert.True(t, ok, "unit %q must have a factor", u)
		assert.Positive(t, factor, "unit %q factor must be positive", u)
		assert.True(t, u.Valid())
	}

	_, ok := Factor(Unit("parsec"))
	assert.False(t, ok)
	assert.False(t, Unit("parsec").Valid())
}

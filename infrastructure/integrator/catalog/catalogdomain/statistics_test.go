package catalogdomain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceRangeResponse_Counts(t *testing.T) {
	tests := []struct {
		name     string
		response PriceRangeResponse
		want     map[string]int64
	}{
		{
			name:     "contagens inteiras",
			response: PriceRangeResponse{"0-100": float64(4), "101-200": float64(0)},
			want:     map[string]int64{"0-100": 4, "101-200": 0},
		},
		{
			name:     "fora da faixa de int64 é ignorada",
			response: PriceRangeResponse{"0-100": 1e20, "101-200": float64(math.MaxInt64), "201-300": float64(7)},
			want:     map[string]int64{"201-300": 7},
		},
		{
			name:     "fracionária é ignorada",
			response: PriceRangeResponse{"101-200": 2.7, "201-300": float64(3)},
			want:     map[string]int64{"201-300": 3},
		},
		{
			name:     "negativa, NaN e infinito são ignorados",
			response: PriceRangeResponse{"a": float64(-1), "b": math.NaN(), "c": math.Inf(1)},
			want:     map[string]int64{},
		},
		{
			name:     "tipo não numérico é ignorado",
			response: PriceRangeResponse{"weird": "x", "nil": nil, "0-100": float64(1)},
			want:     map[string]int64{"0-100": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.response.Counts())
		})
	}
}

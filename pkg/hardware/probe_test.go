package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTier(t *testing.T) {
	tests := []struct {
		ramMB uint64
		tier  int
	}{
		{0, 0},
		{4 * 1024, 0},
		{8 * 1024, 1},
		{12 * 1024, 1},
		{16 * 1024, 2},
		{32 * 1024, 3},
		{128 * 1024, 3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.tier, EstimateTier(tc.ramMB), "ram %d MB", tc.ramMB)
	}
}

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDatabase(t *testing.T) {
	db := NewDatabase()
	entries := []CorpusEntry{
		{
			Name: "GeForce RTX 4090",
			Tier: 3,
			Benchmarks: []BenchmarkSample{
				{Width: 1920, Height: 1080, FPS: 150},
				{Width: 2560, Height: 1440, FPS: 134},
			},
		},
		{
			// Duplicate normalized name; must be discarded.
			Name: "geforce rtx 4090",
			Tier: 1,
		},
		{
			// Placeholder name; must be discarded.
			Name: "??? unknown adapter",
			Tier: 2,
		},
		{
			// Too short; must be discarded.
			Name: "gt",
			Tier: 2,
		},
		{
			Name: "Radeon RX 7900 XTX",
			Tier: 3,
		},
		{
			// Explicit memory marker beats the estimation tables.
			Name: "GeForce GTX 1060 6GB",
			Tier: 1,
		},
	}
	BuildDatabase(db, "d-desktop.json", entries)

	require.Equal(t, 3, db.Len())

	rtx, ok := db.Get("geforce rtx 4090")
	require.True(t, ok)
	assert.Equal(t, VendorNVIDIA, rtx.Vendor)
	assert.Equal(t, PlatformDesktop, rtx.Platform)
	assert.Equal(t, uint64(24576), rtx.Memory.VRAMMB)
	assert.Equal(t, "GDDR6X", rtx.Memory.Type)
	assert.Equal(t, "Ada Lovelace", rtx.Architecture)
	assert.Equal(t, 2022, rtx.Year)
	// First occurrence wins: tier 3, mean of 150 and 134 rounded.
	assert.Equal(t, 3, rtx.Performance.Tier)
	assert.Equal(t, 142, rtx.Performance.FPS)

	xtx, ok := db.Get("radeon rx 7900 xtx")
	require.True(t, ok)
	assert.Equal(t, VendorAMD, xtx.Vendor)
	assert.Equal(t, uint64(24576), xtx.Memory.VRAMMB)
	assert.Equal(t, "RDNA 3", xtx.Architecture)
	assert.Equal(t, defaultFPS, xtx.Performance.FPS)

	gtx, ok := db.Get("geforce gtx 1060 6gb")
	require.True(t, ok)
	assert.Equal(t, uint64(6144), gtx.Memory.VRAMMB)
}

func TestBuildDatabaseMobileFilePrefixForcesMobile(t *testing.T) {
	db := NewDatabase()
	BuildDatabase(db, "m-apple.json", []CorpusEntry{
		{Name: "Apple M1", Tier: 2},
	})

	profile, ok := db.Get("apple m1")
	require.True(t, ok)
	assert.Equal(t, PlatformMobile, profile.Platform)
	assert.Equal(t, uint64(8192), profile.Memory.UnifiedMB)
	assert.Equal(t, "Unified", profile.Memory.Type)
	assert.Zero(t, profile.Memory.VRAMMB)
}

func TestBuildDatabaseCoercesUnratedTier(t *testing.T) {
	db := NewDatabase()
	BuildDatabase(db, "d-desktop.json", []CorpusEntry{
		{Name: "GeForce GTX 950", Tier: 0},
	})
	profile, ok := db.Get("geforce gtx 950")
	require.True(t, ok)
	assert.Equal(t, 1, profile.Performance.Tier)
}

func TestNormalizeCorpusName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Mali-G78 MP14", "mali g78 mp14"},
		{"Radeon RX Vega 11 / Ryzen 5", "radeon rx vega 11 ryzen 5"},
		{"GeForce RTX 4090 (AD102)", "geforce rtx 4090 ad102"},
		{"  Apple   M2  ", "apple m2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeCorpusName(tt.input))
	}
}

func TestAverageFPS(t *testing.T) {
	assert.Equal(t, 30, averageFPS(nil))
	assert.Equal(t, 45, averageFPS([]BenchmarkSample{{FPS: 44.6}}))
	assert.Equal(t, 50, averageFPS([]BenchmarkSample{{FPS: 40}, {FPS: 60}}))
}

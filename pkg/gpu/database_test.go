package gpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseAddFirstOccurrenceWins(t *testing.T) {
	db := NewDatabase()
	first := Profile{Vendor: VendorNVIDIA, Platform: PlatformDesktop, Memory: Memory{VRAMMB: 8192}, Performance: Performance{Tier: 2, FPS: 60}}
	second := Profile{Vendor: VendorAMD, Platform: PlatformDesktop, Memory: Memory{VRAMMB: 4096}, Performance: Performance{Tier: 1, FPS: 30}}

	assert.True(t, db.Add("gtx 1080", first))
	assert.False(t, db.Add("gtx 1080", second))

	stored, ok := db.Get("gtx 1080")
	require.True(t, ok)
	assert.Equal(t, first, stored)
	assert.Equal(t, 1, db.Len())
}

func TestLoadPreservesKeyOrder(t *testing.T) {
	doc := `{
		"zeta card": {"vendor": "unknown", "platform": "desktop", "memory": {"vram": 4096}, "performance": {"tier": 1, "fps": 30}},
		"alpha card": {"vendor": "unknown", "platform": "desktop", "memory": {"vram": 8192}, "performance": {"tier": 2, "fps": 60}},
		"mid card": {"vendor": "unknown", "platform": "desktop", "memory": {"vram": 6144}, "performance": {"tier": 1, "fps": 45}}
	}`
	db, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta card", "alpha card", "mid card"}, db.Keys())
}

func TestLoadRejectsNonObjectDocument(t *testing.T) {
	_, err := Load(strings.NewReader(`["not", "an", "object"]`))
	assert.Error(t, err)
}

func TestLoadDuplicateDocumentKeysFirstWins(t *testing.T) {
	doc := `{
		"gtx 1080": {"vendor": "nvidia", "platform": "desktop", "memory": {"vram": 8192}, "performance": {"tier": 2, "fps": 60}},
		"gtx 1080": {"vendor": "amd", "platform": "desktop", "memory": {"vram": 1}, "performance": {"tier": 0, "fps": 1}}
	}`
	db, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, db.Len())
	profile, _ := db.Get("gtx 1080")
	assert.Equal(t, VendorNVIDIA, profile.Vendor)
}

func TestMarshalRoundTrip(t *testing.T) {
	db := NewDatabase()
	db.Add("geforce rtx 3060", Profile{
		Vendor:       VendorNVIDIA,
		Platform:     PlatformDesktop,
		Memory:       Memory{VRAMMB: 12288, Type: "GDDR6"},
		Performance:  Performance{Tier: 2, FPS: 74},
		Architecture: "Ampere",
		Year:         2020,
	})
	db.Add("apple m1", Profile{
		Vendor:      VendorApple,
		Platform:    PlatformMobile,
		Memory:      Memory{UnifiedMB: 8192, Type: "Unified"},
		Performance: Performance{Tier: 2, FPS: 68},
	})

	encoded, err := db.MarshalJSON()
	require.NoError(t, err)

	decoded, err := Load(strings.NewReader(string(encoded)))
	require.NoError(t, err)
	assert.Equal(t, db.Keys(), decoded.Keys())
	for _, key := range db.Keys() {
		want, _ := db.Get(key)
		got, _ := decoded.Get(key)
		assert.Equal(t, want, got)
	}
}

func TestEmbeddedDatabaseInvariants(t *testing.T) {
	db, err := LoadEmbedded()
	require.NoError(t, err)
	require.Greater(t, db.Len(), 0)

	for _, key := range db.Keys() {
		profile, ok := db.Get(key)
		require.True(t, ok)
		hasVRAM := profile.Memory.VRAMMB > 0
		hasUnified := profile.Memory.UnifiedMB > 0
		assert.True(t, hasVRAM != hasUnified, "entry %q must have exactly one memory kind", key)
		assert.GreaterOrEqual(t, profile.Performance.Tier, 0, "entry %q tier", key)
		assert.LessOrEqual(t, profile.Performance.Tier, 3, "entry %q tier", key)
		assert.Equal(t, NormalizeCorpusName(key), key, "entry %q key must be corpus-normalized", key)
	}
}

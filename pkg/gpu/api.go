package gpu

// Vendor identifies a GPU vendor. The zero value is not valid; unrecognized
// hardware maps to VendorUnknown.
type Vendor string

const (
	VendorNVIDIA      Vendor = "nvidia"
	VendorAMD         Vendor = "amd"
	VendorIntel       Vendor = "intel"
	VendorApple       Vendor = "apple"
	VendorQualcomm    Vendor = "qualcomm"
	VendorARM         Vendor = "arm"
	VendorImagination Vendor = "imagination"
	VendorSamsung     Vendor = "samsung"
	VendorUnknown     Vendor = "unknown"
)

// Platform classifies where a GPU lives: a discrete desktop card, a
// phone/tablet SoC GPU, or a CPU-package GPU sharing system memory.
type Platform string

const (
	PlatformDesktop    Platform = "desktop"
	PlatformMobile     Platform = "mobile"
	PlatformIntegrated Platform = "integrated"
)

// Memory describes the memory attached to a GPU. Exactly one of VRAMMB
// (discrete) or UnifiedMB (shared/unified) is populated on any profile that
// has passed through the database builder or the estimation fallback.
type Memory struct {
	// VRAMMB is the dedicated VRAM size in MB for discrete GPUs.
	VRAMMB uint64 `json:"vram,omitempty"`
	// UnifiedMB is the shared/unified memory size in MB for mobile and
	// integrated GPUs.
	UnifiedMB uint64 `json:"unified,omitempty"`
	// Type is a free-text memory technology label, e.g. "GDDR6".
	Type string `json:"type,omitempty"`
}

// BudgetMB returns the memory budget usable for model weights, regardless of
// whether the GPU uses dedicated or unified memory.
func (m Memory) BudgetMB() uint64 {
	if m.VRAMMB > 0 {
		return m.VRAMMB
	}
	return m.UnifiedMB
}

// Performance carries the coarse capability ranking derived from the
// benchmark corpus.
type Performance struct {
	// Tier is a 0-3 ranking, higher meaning more capable.
	Tier int `json:"tier"`
	// FPS is the arithmetic mean of the corpus benchmark samples, rounded to
	// the nearest integer. Entries without samples carry the default of 30.
	FPS int `json:"fps"`
}

// Profile is the resolved capability description of a GPU. Profiles stored in
// the reference database are immutable at runtime.
type Profile struct {
	Vendor      Vendor      `json:"vendor"`
	Platform    Platform    `json:"platform"`
	Memory      Memory      `json:"memory"`
	Performance Performance `json:"performance"`
	// Architecture is an optional free-text architecture label, e.g.
	// "Ada Lovelace".
	Architecture string `json:"architecture,omitempty"`
	// Year is the optional estimated release year.
	Year int `json:"year,omitempty"`
}

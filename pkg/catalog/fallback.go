package catalog

// FallbackCandidates returns the built-in candidate list used when the
// remote catalog is unreachable or returns nothing usable. The entries are
// well-known instruction-tuned models spanning small to mid memory
// footprints so that at least one fits most hardware.
func FallbackCandidates() []Candidate {
	return []Candidate{
		{
			ID:                "Llama-3-8B-Instruct-q4f16_1-MLC",
			Params:            8,
			EstimatedMemoryMB: EstimateMemoryMB(8),
		},
		{
			ID:                "Phi-3-mini-4k-instruct-q4f16_1-MLC",
			Params:            3.8,
			EstimatedMemoryMB: EstimateMemoryMB(3.8),
		},
		{
			ID:                "gemma-2-9b-it-q4f16_1-MLC",
			Params:            9,
			EstimatedMemoryMB: EstimateMemoryMB(9),
		},
	}
}

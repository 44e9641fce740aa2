package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"modelpickd/pkg/gpu"
)

func newResolveCmd() *cobra.Command {
	var tier int
	var databasePath string
	var estimate bool
	c := &cobra.Command{
		Use:   "resolve [name]",
		Short: "Resolve a GPU name to its capability profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadDatabase(databasePath)
			if err != nil {
				return err
			}
			resolver := gpu.NewResolver(cliLogger(), db)

			name := strings.Join(args, " ")
			profile, err := resolver.Resolve(name)
			if err != nil {
				if !estimate || errors.Is(err, gpu.ErrEmptyGPUName) {
					return err
				}
				profile, err = resolver.ResolveOrEstimate(name, tier)
				if err != nil {
					return err
				}
				cmd.Println("Not in reference database; estimated profile:")
			}

			cmd.Printf("Name:         %s\n", gpu.FormatName(name))
			cmd.Printf("Vendor:       %s\n", profile.Vendor)
			cmd.Printf("Platform:     %s\n", profile.Platform)
			if profile.Memory.VRAMMB > 0 {
				cmd.Printf("VRAM:         %s\n", formatMB(float64(profile.Memory.VRAMMB)))
			} else {
				cmd.Printf("Unified:      %s\n", formatMB(float64(profile.Memory.UnifiedMB)))
			}
			if profile.Memory.Type != "" {
				cmd.Printf("Memory type:  %s\n", profile.Memory.Type)
			}
			cmd.Printf("Tier:         %d\n", profile.Performance.Tier)
			if profile.Architecture != "" {
				cmd.Printf("Architecture: %s\n", profile.Architecture)
			}
			if profile.Year != 0 {
				cmd.Printf("Year:         %d\n", profile.Year)
			}
			return nil
		},
	}
	c.Flags().IntVar(&tier, "tier", 1, "performance tier assumed for estimation (0-3)")
	c.Flags().StringVar(&databasePath, "database", "", "path to a GPU database file")
	c.Flags().BoolVar(&estimate, "estimate", true, "estimate a profile when the name is unknown")
	return c
}

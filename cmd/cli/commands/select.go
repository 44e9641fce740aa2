package commands

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"modelpickd/pkg/catalog"
	"modelpickd/pkg/gpu"
	"modelpickd/pkg/hardware"
	"modelpickd/pkg/selection"
)

func newSelectCmd() *cobra.Command {
	var gpuName string
	var tier int
	var mode string
	var databasePath string
	var catalogURL string
	c := &cobra.Command{
		Use:   "select",
		Short: "Select the best model for a GPU",
		Long: "Select the best model for a GPU. Without --gpu, the host's " +
			"graphics hardware is probed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tradeoff, err := catalog.ParseTradeoffMode(mode)
			if err != nil {
				return err
			}
			db, err := loadDatabase(databasePath)
			if err != nil {
				return err
			}

			log := cliLogger()
			if gpuName == "" {
				info, err := hardware.NewProbe(log).Run()
				if err != nil {
					return fmt.Errorf("probing hardware (use --gpu to name the device): %w", err)
				}
				gpuName = info.GPUName
				if !cmd.Flags().Changed("tier") {
					tier = hardware.EstimateTier(info.TotalRAMMB)
				}
			}

			policy := selection.NewPolicy(
				log,
				gpu.NewResolver(log, db),
				catalog.NewRanker(log, catalog.NewClient(log, http.DefaultClient, catalogURL)),
				catalog.NewLeaderboard(log, http.DefaultClient, ""),
				nil,
			)
			result, err := policy.Select(cmd.Context(), selection.Request{
				GPUName: gpuName,
				Tier:    tier,
				Mode:    tradeoff,
			})
			if err != nil {
				return err
			}

			cmd.Printf("GPU:      %s (%s, %s)\n",
				gpu.FormatName(gpuName), result.Profile.Vendor, result.Profile.Platform)
			cmd.Printf("Budget:   %s\n", formatMB(result.BudgetMB))
			cmd.Printf("Selected: %s\n", result.ModelID)
			if len(result.Candidates) > 1 {
				alternates := make([]string, 0, len(result.Candidates)-1)
				for _, candidate := range result.Candidates[1:] {
					alternates = append(alternates, candidate.ID)
				}
				cmd.Printf("Also fit: %s\n", strings.Join(alternates, ", "))
			}
			return nil
		},
	}
	c.Flags().StringVar(&gpuName, "gpu", "", "GPU name (probed from the host when empty)")
	c.Flags().IntVar(&tier, "tier", 1, "performance tier assumed for estimation (0-3)")
	c.Flags().StringVar(&mode, "mode", "balanced", "trade-off mode: speed, balanced, or quality")
	c.Flags().StringVar(&databasePath, "database", "", "path to a GPU database file")
	c.Flags().StringVar(&catalogURL, "catalog", "", "model catalog URL")
	return c
}

package commands

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"modelpickd/pkg/catalog"
)

func newModelsCmd() *cobra.Command {
	var budget float64
	var mode string
	var catalogURL string
	c := &cobra.Command{
		Use:   "models",
		Short: "List catalog models fitting a memory budget, best first",
		RunE: func(cmd *cobra.Command, args []string) error {
			tradeoff, err := catalog.ParseTradeoffMode(mode)
			if err != nil {
				return err
			}

			log := cliLogger()
			client := catalog.NewClient(log, http.DefaultClient, catalogURL)
			ranker := catalog.NewRanker(log, client)
			ranked, err := ranker.Rank(cmd.Context(), budget, tradeoff)
			if err != nil {
				cmd.PrintErrln("Catalog unreachable, showing built-in fallback models")
				ranked = ranker.RankCandidates(catalog.FallbackCandidates(), budget, tradeoff)
			}
			if len(ranked) == 0 {
				cmd.Printf("No model fits within %s\n", formatMB(budget))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "MODEL\tPARAMS\tEST. MEMORY")
			for _, candidate := range ranked {
				_, _ = fmt.Fprintf(w, "%s\t%.1fB\t%s\n",
					candidate.ID, candidate.Params, formatMB(candidate.EstimatedMemoryMB))
			}
			return w.Flush()
		},
	}
	c.Flags().Float64Var(&budget, "budget", 8192, "memory budget in MB")
	c.Flags().StringVar(&mode, "mode", "balanced", "trade-off mode: speed, balanced, or quality")
	c.Flags().StringVar(&catalogURL, "catalog", "", "model catalog URL")
	return c
}

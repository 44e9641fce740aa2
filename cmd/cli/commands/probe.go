package commands

import (
	"github.com/spf13/cobra"

	"modelpickd/pkg/hardware"
)

func newProbeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "probe",
		Short: "Probe the host's graphics and memory hardware",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := hardware.NewProbe(cliLogger()).Run()
			if err != nil {
				return err
			}
			if info.GPUName != "" {
				cmd.Printf("GPU:  %s\n", info.GPUName)
			} else {
				cmd.Println("GPU:  unknown")
			}
			if info.TotalRAMMB > 0 {
				cmd.Printf("RAM:  %s\n", formatMB(float64(info.TotalRAMMB)))
			} else {
				cmd.Println("RAM:  unknown")
			}
			cmd.Printf("Tier: %d (estimated from RAM)\n", hardware.EstimateTier(info.TotalRAMMB))
			return nil
		},
	}
	return c
}

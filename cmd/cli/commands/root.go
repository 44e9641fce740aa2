package commands

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modelpick",
		Short: "GPU capability resolution and model selection",
	}
	rootCmd.AddCommand(
		newVersionCmd(),
		newResolveCmd(),
		newModelsCmd(),
		newSelectCmd(),
		newProbeCmd(),
		newStatusCmd(),
	)
	return rootCmd
}

package commands

import (
	"github.com/spf13/cobra"
)

var Version = "dev"

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show the modelpick version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("modelpick version %s\n", Version)
		},
	}
	return c
}

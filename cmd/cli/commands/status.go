package commands

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var host string
	c := &cobra.Command{
		Use:   "status",
		Short: "Show the daemon's current status",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := host + "/picker/v1/status"
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("reaching daemon at %s: %w", host, err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("daemon returned status %d", resp.StatusCode)
			}

			var status struct {
				Status string   `json:"status"`
				Tail   []string `json:"tail"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
				return fmt.Errorf("decoding status response: %w", err)
			}
			cmd.Printf("Status: %s\n", status.Status)
			if len(status.Tail) > 0 {
				cmd.Println("Recent activity:")
				for _, line := range status.Tail {
					cmd.Printf("  %s\n", line)
				}
			}
			return nil
		},
	}
	c.Flags().StringVar(&host, "host", "http://localhost:13131", "daemon base URL")
	return c
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openmined/skeleton-api/internal/healthprobe"
	"github.com/openmined/skeleton-api/internal/server"
)

func newHealthcheckCmd() *cobra.Command {
	var url string
	var timeout time.Duration
	var retries int

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Probe the health endpoint of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("url") {
				url = defaultHealthURL()
			}

			info, err := healthprobe.New(timeout, retries).Check(cmd.Context(), url)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s version=%s examples=%d\n",
				info.Status, info.Timestamp, info.Version, info.ExampleCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&url, "url", "u", defaultHealthURL(), "Health endpoint URL")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", healthprobe.DefaultTimeout, "Request timeout")
	cmd.Flags().IntVar(&retries, "retries", 0, "Retries on connection errors")
	return cmd
}

// defaultHealthURL targets the local server on $PORT.
func defaultHealthURL() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = fmt.Sprint(server.DefaultPort)
	}
	return fmt.Sprintf("http://localhost:%s%s/health", port, server.APIPrefix)
}

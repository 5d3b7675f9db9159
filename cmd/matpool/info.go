package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matpool/num"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the host and the default pool size",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := num.Host()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "GOOS: %s\n", h.GOOS)
			fmt.Fprintf(w, "GOARCH: %s\n", h.GOARCH)
			fmt.Fprintf(w, "NumCPU: %d\n", h.NumCPU)
			fmt.Fprintf(w, "GOMAXPROCS: %d\n", h.GOMAXPROCS)
			fmt.Fprintf(w, "Default workers: %d\n", h.DefaultWorkers)
			fmt.Fprintf(w, "CPU features: %s\n", h.FeatureString())
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/promptmenu/internal/cli"
	"github.com/aretw0/promptmenu/pkg/domain"
	"github.com/aretw0/promptmenu/pkg/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run <command line...>",
	Short: "Dispatch a single command line",
	Long: `Joins the arguments with spaces and dispatches the resulting line against the menu.
With --metrics the dispatch metrics are written to stderr in the Prometheus text format.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var hooks domain.Hooks
		var reg *prometheus.Registry
		if show, _ := cmd.Flags().GetBool("metrics"); show {
			reg = prometheus.NewRegistry()
			collector, err := metrics.NewCollector(reg)
			if err != nil {
				return err
			}
			hooks = collector.Hooks()
		}

		m, _, err := openMenu(cmd, hooks)
		if err != nil {
			return err
		}
		result, runErr := m.Run(strings.Join(args, " "))

		if reg != nil {
			if err := metrics.WriteText(cmd.ErrOrStderr(), reg); err != nil {
				return err
			}
		}
		if runErr != nil {
			return runErr
		}
		if out := cli.FormatResult(result); out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().SetInterspersed(false)
	runCmd.Flags().Bool("metrics", false, "Write dispatch metrics to stderr after the run")
}

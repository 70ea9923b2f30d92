package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/treeverse/ringview/pkg/bench"
	"github.com/treeverse/ringview/pkg/config"
	"github.com/treeverse/ringview/pkg/logging"
	"golang.org/x/term"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure ring traversal time for every traversal tier",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cfg := getConfig(cmd)
		ctx = logging.AddFields(ctx, logging.Fields{logging.RunIDFieldKey: uuid.New().String()})
		withMetrics, _ := cmd.Flags().GetBool("metrics")

		params := bench.Params{
			Iterations:  cfg.Bench.Iterations,
			PassSize:    cfg.Bench.PassSize,
			Times:       cfg.Bench.Times,
			SampleRatio: cfg.Bench.SampleRatio,
			Tiers:       cfg.Bench.Tiers,
		}
		// show progress only to a human
		if term.IsTerminal(int(os.Stderr.Fd())) {
			params.Progress = os.Stderr
		}
		runner, err := bench.NewRunner(params)
		if err != nil {
			DieErr(err)
		}
		logging.FromContext(ctx).WithFields(logging.Fields{
			logging.IterationsFieldKey: params.Iterations,
			logging.CountFieldKey:      params.Times,
		}).Info("Starting benchmark")

		results, err := runner.Run(ctx)
		if err != nil {
			logging.FromContext(ctx).WithError(err).Error("Benchmark failed")
			DieErr(err)
		}
		rows := make([]table.Row, 0, len(results))
		for _, res := range results {
			m := res.Metrics
			rows = append(rows, table.Row{
				res.Tier, res.Elements, m.Count, m.Time.Avg, m.Time.P50, m.Time.P99, m.Time.Max, fmt.Sprintf("%.1f", m.Rate.Second),
			})
		}
		PrintTable(rows, table.Row{"Tier", "Elements", "Samples", "Avg", "P50", "P99", "Max", "Rate/s"})

		if withMetrics {
			fmt.Println()
			if err := runner.WriteMetrics(os.Stdout); err != nil {
				DieErr(err)
			}
		}
	},
}

//nolint:gochecknoinits
func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Int("iterations", config.DefaultBenchIterations, "number of traversals per tier")
	benchCmd.Flags().Int("pass-size", config.DefaultBenchPassSize, "number of elements in the source")
	benchCmd.Flags().Int("times", config.DefaultBenchTimes, "number of passes over the source")
	benchCmd.Flags().Float64("sample", config.DefaultBenchSampleRatio, "share of traversals kept for latency statistics")
	benchCmd.Flags().String("tiers", config.DefaultBenchTiers, "comma separated tiers to measure")
	benchCmd.Flags().Bool("metrics", false, "print prometheus metrics after the results")

	bindFlags(benchCmd.Flags(), map[string]string{
		"iterations": config.BenchIterationsKey,
		"pass-size":  config.BenchPassSizeKey,
		"times":      config.BenchTimesKey,
		"sample":     config.BenchSampleRatioKey,
		"tiers":      config.BenchTiersKey,
	})
}

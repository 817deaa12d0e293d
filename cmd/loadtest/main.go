package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/tidefall/ladderbook/config"
	"github.com/tidefall/ladderbook/pkg/book"
	"github.com/tidefall/ladderbook/pkg/loadgen"
	"github.com/tidefall/ladderbook/pkg/logging"
)

var baseline = flag.Bool("baseline", false, "Also run the naive re-sorting baseline on the same stream")

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Format == "pretty",
	})

	logger := logging.Component("loadtest")

	workload, err := loadgen.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid workload configuration")
	}

	logger.Info().
		Int("operations", workload.Operations).
		Int("price_levels", workload.PriceLevels).
		Float64("amend_ratio", workload.AmendRatio).
		Float64("cancel_ratio", workload.CancelRatio).
		Float64("best_ratio", workload.BestRatio).
		Int64("seed", workload.Seed).
		Msg("Generating workload")

	ops := loadgen.NewGenerator(*workload).Stream()

	run(logger, "ladder book", book.NewBook(), ops)

	if *baseline {
		if workload.Operations > 200000 {
			logger.Warn().Msg("Baseline is O(n log n) per mutation; this may take a while")
		}
		run(logger, "naive baseline", book.NewNaiveBook(), ops)
	}
}

func run(logger zerolog.Logger, name string, keeper book.Keeper, ops []loadgen.Op) {
	kinds := []loadgen.Kind{loadgen.OpAdd, loadgen.OpAmend, loadgen.OpCancel, loadgen.OpBest}
	hists := make(map[loadgen.Kind]*hdrhistogram.Histogram, len(kinds))
	for _, kind := range kinds {
		// Nanosecond latencies up to 10s
		hists[kind] = hdrhistogram.New(1, 10_000_000_000, 3)
	}

	start := time.Now()
	for _, op := range ops {
		opStart := time.Now()
		if err := loadgen.Apply(keeper, op); err != nil {
			logger.Error().Err(err).Int64("order_id", op.ID).Msg("Operation failed")
			continue
		}
		if err := hists[op.Kind].RecordValue(time.Since(opStart).Nanoseconds()); err != nil {
			logger.Warn().Err(err).Msg("Latency out of histogram range")
		}
	}
	elapsed := time.Since(start)

	logger.Info().
		Str("book", name).
		Dur("elapsed", elapsed).
		Int("resting_orders", keeper.Len()).
		Float64("ops_per_sec", float64(len(ops))/elapsed.Seconds()).
		Msg("Run complete")

	report(name, kinds, hists)
}

func report(name string, kinds []loadgen.Kind, hists map[loadgen.Kind]*hdrhistogram.Histogram) {
	title := color.New(color.FgCyan, color.Bold)
	title.Printf("\n%s latency (ns)\n", name)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "OP\tCOUNT\tP50\tP90\tP99\tMAX")
	for _, kind := range kinds {
		h := hists[kind]
		if h.TotalCount() == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			kind,
			h.TotalCount(),
			h.ValueAtQuantile(50),
			h.ValueAtQuantile(90),
			h.ValueAtQuantile(99),
			h.Max(),
		)
	}
	w.Flush()
}

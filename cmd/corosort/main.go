// Command corosort sorts one or more files of whitespace-separated decimal
// integers, each on its own cooperative coroutine, and writes the merged
// result to a single output file.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/halfvector/corosort"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("corosort failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	start := time.Now()
	if len(args) < 2 {
		return fmt.Errorf("usage: corosort <target_latency_usec> <file...>")
	}

	targetLatency, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parsing target_latency_usec: %w", err)
	}
	files := args[1:]

	cfg := corosort.Config{TargetLatencyUsec: targetLatency, OutputPath: "result.txt"}

	sched, err := corosort.NewScheduler(len(files), cfg)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	defer sched.Cleanup()

	sched.RegisterEntryPoint(corosort.RunWorkerFile)

	pool := sched.CoroPool()
	for i, path := range files {
		pool[i].FilePath = path
	}

	log.Info().Int("workers", len(files)).Float64("target_latency_usec", targetLatency).Msg("starting run")

	if err := sched.Run(context.Background()); err != nil {
		return fmt.Errorf("running scheduler: %w", err)
	}

	for _, c := range pool {
		log.Debug().
			Int("worker", c.Index()).
			Dur("exec_time", c.ExecTime()).
			Uint("times_passed_control", c.TimesPassedControl()).
			Msg("worker finished")
	}

	sorted := corosort.Concatenate(sched)

	if err := writeResult(cfg.OutputPath, sorted); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	elapsed := time.Since(start)

	log.Info().
		Int("total_elements", len(sorted)).
		Dur("total_time", elapsed).
		Str("output", cfg.OutputPath).
		Msg("run complete")

	return nil
}

func writeResult(path string, values []int32) error {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

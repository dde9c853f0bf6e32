// Command parcount generates a random integer sequence and counts the
// elements greater than a threshold with a fixed number of concurrent
// workers, reporting the time spent in the concurrent phase.
//
// Usage:
//
//	parcount -n 5 -t 4 -num 1000000 -threadType std -v 0
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/llxisdsh/parcount"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stdout, stderr)
	var fileErr errConfigFile
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.As(err, &fileErr):
		fmt.Fprintln(stderr, "error:", err)
		return 1
	case err != nil:
		return 2
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	runID := uuid.New()
	level := slog.LevelInfo
	if cfg.Verbosity > 1 {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level})).
		With("run", runID.String())

	out := bufio.NewWriter(stdout)
	fmt.Fprintf(out, "INFO: \nRun: %s\nMax number: %d\nThreads num: %d\nArray length: %d\nThread type: %s\n",
		runID, cfg.Threshold, cfg.Workers, cfg.Length, cfg.Discipline)

	data := generate(cfg)
	if cfg.Verbosity > 0 {
		writeSequence(out, data)
	}
	fmt.Fprintln(out)
	if err := out.Flush(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	res, err := parcount.Count(data, parcount.Options{
		Threshold:  cfg.Threshold,
		Workers:    cfg.Workers,
		Discipline: cfg.Discipline,
		FetchAdd:   cfg.FetchAdd,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	fmt.Fprintf(stdout, "Multi threaded region has finished in %d ms.\n", res.Millis())
	fmt.Fprintf(stdout, "Num of elements greater than %d is %d\n", cfg.Threshold, res.Count)
	return 0
}

// generate fills a sequence of cfg.Length values in [cfg.Min, cfg.Max).
func generate(cfg Config) []int {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(seed, seed))
	data := make([]int, cfg.Length)
	span := cfg.Max - cfg.Min
	for i := range data {
		data[i] = r.IntN(span) + cfg.Min
	}
	return data
}

func writeSequence(w *bufio.Writer, data []int) {
	var buf []byte
	for _, v := range data {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, ' ')
		w.Write(buf)
	}
}

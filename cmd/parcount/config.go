package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/llxisdsh/parcount"
)

// Config is everything one run needs. It can be loaded from a YAML file
// with -config; flags given on the command line override the file.
type Config struct {
	Threshold  int                 `yaml:"threshold"`
	Workers    int                 `yaml:"workers"`
	Length     int                 `yaml:"length"`
	Discipline parcount.Discipline `yaml:"thread_type"`
	Verbosity  int                 `yaml:"verbosity"`
	FetchAdd   bool                `yaml:"fetch_add"`
	Seed       uint64              `yaml:"seed"` // 0 seeds from the clock
	Min        int                 `yaml:"min"`  // inclusive
	Max        int                 `yaml:"max"`  // exclusive
}

func defaultConfig() Config {
	return Config{
		Workers:    1,
		Discipline: parcount.Private,
		Verbosity:  1,
		Min:        1,
		Max:        10,
	}
}

func (c Config) validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("%w: -t %d, want >= 1", parcount.ErrInvalidConfig, c.Workers)
	}
	if c.Length < 0 {
		return fmt.Errorf("%w: -num %d, want >= 0", parcount.ErrInvalidConfig, c.Length)
	}
	if c.Min >= c.Max {
		return fmt.Errorf("%w: value range [%d, %d) is empty", parcount.ErrInvalidConfig, c.Min, c.Max)
	}
	// Max-Min wraps around for ranges wider than the int type.
	if c.Max-c.Min <= 0 {
		return fmt.Errorf("%w: value range [%d, %d) is too wide", parcount.ErrInvalidConfig, c.Min, c.Max)
	}
	return nil
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func newFlagSet(cfg *Config, configPath *string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("parcount", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.Threshold, "n", cfg.Threshold, "count elements greater than this `number`")
	fs.IntVar(&cfg.Workers, "t", cfg.Workers, "number of worker `threads`")
	fs.IntVar(&cfg.Length, "num", cfg.Length, "number of `elements` to generate and process")
	fs.Var(&cfg.Discipline, "threadType", "synchronization `discipline`: winAPI | std | atomic")
	fs.IntVar(&cfg.Verbosity, "v", cfg.Verbosity, "verbosity `level`")
	fs.BoolVar(&cfg.FetchAdd, "fetchAdd", cfg.FetchAdd, "merge with an atomic add under -threadType atomic")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random `seed`, 0 for time-based")
	fs.IntVar(&cfg.Min, "min", cfg.Min, "smallest generated `value`")
	fs.IntVar(&cfg.Max, "max", cfg.Max, "generated values stay below this `value`")
	fs.StringVar(configPath, "config", *configPath, "YAML `file` with defaults")
	return fs
}

// errConfigFile marks failures that happen after flag parsing succeeded.
type errConfigFile struct{ err error }

func (e errConfigFile) Error() string { return e.err.Error() }
func (e errConfigFile) Unwrap() error { return e.err }

// parseArgs parses the command line. When -config is given the file is
// loaded first and every flag set explicitly is re-applied on top of it.
func parseArgs(args []string, stdout, stderr io.Writer) (Config, error) {
	cfg := defaultConfig()
	var path string
	fs := newFlagSet(&cfg, &path, stderr)
	// flag calls Usage on every failure; usage is printed below instead,
	// on stdout for -h and next to the error otherwise.
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout, fs)
		} else {
			printUsage(fs.Output(), fs)
		}
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	base, err := loadConfig(path)
	if err != nil {
		return cfg, errConfigFile{err}
	}
	override := newFlagSet(&base, new(string), io.Discard)
	fs.Visit(func(f *flag.Flag) {
		if err == nil && f.Name != "config" {
			err = override.Set(f.Name, f.Value.String())
		}
	})
	return base, err
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "USAGE: %s\n", fs.Name())
	fmt.Fprint(w, `[-n <number to search for elements greater than>]
[-t <number of threads>]
[-num <number of elements to generate and process>]
[-threadType <winAPI | std | atomic>]
[-v <verbosity level>]:
v == 0 : only input info and the result with time measurement
v == 1 : all above plus the generated array will be shown
v == 2 : all above plus every thread will log its work

FLAGS:
`)
	prev := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(prev)
}

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/randforge/randforge/distribution"
	httpfrontend "github.com/randforge/randforge/frontend/http"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/entropy"
	"github.com/randforge/randforge/pkg/log"
	"github.com/randforge/randforge/pkg/metrics"
	"github.com/randforge/randforge/pkg/stop"

	_ "github.com/randforge/randforge/generator/bbs"
	_ "github.com/randforge/randforge/generator/cmwc"
	_ "github.com/randforge/randforge/generator/lcg"
	_ "github.com/randforge/randforge/generator/mersenne"
	_ "github.com/randforge/randforge/generator/pcg"
	_ "github.com/randforge/randforge/generator/sfc"
	_ "github.com/randforge/randforge/generator/splitmix"
	_ "github.com/randforge/randforge/generator/well"
	_ "github.com/randforge/randforge/generator/xoroshiro"
	_ "github.com/randforge/randforge/generator/xorshift"
)

// Run represents the state of a running instance of randforge.
type Run struct {
	configFilePath string
	sg             stop.Group
}

// NewRun runs an instance of randforge.
func NewRun(configFilePath string) (*Run, error) {
	r := &Run{configFilePath: configFilePath}
	return r, r.Start()
}

// Start begins an instance of randforge.
func (r *Run) Start() error {
	configFile, err := ParseConfigFile(r.configFilePath)
	if err != nil {
		return errors.Wrap(err, "failed to read config")
	}
	cfg := configFile.Config

	if cfg.MetricsAddr != "" {
		log.Info("starting metrics server", log.Fields{"addr": cfg.MetricsAddr})
		r.sg.Add(metrics.NewServer(cfg.MetricsAddr))
	}

	if cfg.HTTPConfig.Addr == "" {
		return errors.New("no http frontend address configured")
	}

	fe := httpfrontend.NewFrontend(cfg.HTTPConfig)
	go func() {
		if err := fe.ListenAndServe(); err != nil {
			log.Fatal("http frontend failed", log.Err(err))
		}
	}()
	r.sg.Add(fe)

	return nil
}

// Stop shuts down an instance of randforge.
func (r *Run) Stop() error {
	log.Debug("stopping frontends and metrics server")
	for _, err := range r.sg.Stop().Wait() {
		if err != nil {
			return err
		}
	}
	return nil
}

// RootRunCmdFunc implements a Cobra command that runs an instance of
// randforge and handles the process's lifetime.
func RootRunCmdFunc(cmd *cobra.Command, args []string) error {
	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	r, err := NewRun(configFilePath)
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return r.Stop()
}

// RootPreRunCmdFunc handles command line flags for the Run command.
func RootPreRunCmdFunc(cmd *cobra.Command, args []string) error {
	noColors, err := cmd.Flags().GetBool("nocolors")
	if err != nil {
		return err
	}
	if noColors {
		log.SetFormatter(&log.TextFormatter{DisableColors: true})
	}

	jsonLog, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if jsonLog {
		log.SetFormatter(&log.JSONFormatter{})
	}

	debugLog, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return err
	}
	if debugLog {
		log.Info("enabling debug logging")
		log.SetDebug(true)
	}

	return nil
}

// newSampler constructs a sampler for the named generator. When seedHex
// is empty the seed comes from the clock-mixed entropy source.
func newSampler(name, seedHex string) (*distribution.Sampler, error) {
	size, err := generator.SeedSize(name)
	if err != nil {
		return nil, err
	}

	var seed []byte
	if seedHex != "" {
		seed, err = hex.DecodeString(seedHex)
		if err != nil {
			return nil, errors.Wrap(err, "invalid seed")
		}
	} else {
		seed = entropy.New().SeedBytes(size)
	}

	g, err := generator.New(name, seed)
	if err != nil {
		return nil, err
	}
	return distribution.New(g), nil
}

// SampleCmdFunc implements a Cobra command that prints draws from a
// named generator to stdout.
func SampleCmdFunc(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("generator")
	if err != nil {
		return err
	}
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	if count < 1 {
		return errors.New("count must be positive")
	}
	seedHex, err := cmd.Flags().GetString("seed")
	if err != nil {
		return err
	}
	bound, err := cmd.Flags().GetUint64("bound")
	if err != nil {
		return err
	}
	asFloat, err := cmd.Flags().GetBool("float")
	if err != nil {
		return err
	}

	s, err := newSampler(name, seedHex)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		switch {
		case asFloat:
			fmt.Fprintln(out, strconv.FormatFloat(s.Float64(), 'g', -1, 64))
		case bound != 0:
			v, err := s.Uint64n(bound)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v)
		default:
			fmt.Fprintln(out, s.Uint64())
		}
	}
	return nil
}

// GeneratorsCmdFunc implements a Cobra command that lists the
// registered generators and their seed sizes.
func GeneratorsCmdFunc(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range generator.Names() {
		size, err := generator.SeedSize(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\tseed %d bytes\n", name, size)
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "randforge",
		Short:   "Pseudo-random number service",
		Long:    "A framework of deterministic pseudo-random generators with an HTTP sampling frontend",
		PreRunE: RootPreRunCmdFunc,
		RunE:    RootRunCmdFunc,
	}

	rootCmd.Flags().String("config", "/etc/randforge.yaml", "location of configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "enable json logging")
	rootCmd.PersistentFlags().Bool("nocolors", false, "disable log coloring")

	sampleCmd := &cobra.Command{
		Use:     "sample",
		Short:   "Print draws from a generator",
		PreRunE: RootPreRunCmdFunc,
		RunE:    SampleCmdFunc,
	}
	sampleCmd.Flags().String("generator", "xoshiro256starstar", "name of the generator to sample")
	sampleCmd.Flags().Int("count", 1, "number of draws to print")
	sampleCmd.Flags().String("seed", "", "hex-encoded seed; random when empty")
	sampleCmd.Flags().Uint64("bound", 0, "sample uniformly below this bound; full width when zero")
	sampleCmd.Flags().Bool("float", false, "print uniform floats in [0, 1)")
	rootCmd.AddCommand(sampleCmd)

	generatorsCmd := &cobra.Command{
		Use:   "generators",
		Short: "List the registered generators",
		RunE:  GeneratorsCmdFunc,
	}
	rootCmd.AddCommand(generatorsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal("failed when executing root cobra command", log.Err(err))
	}
}

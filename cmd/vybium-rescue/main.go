package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vybium/vybium-rescue/internal/vybium-rescue/log"
	"github.com/vybium/vybium-rescue/internal/vybium-rescue/utils"
	vybiumrescue "github.com/vybium/vybium-rescue/pkg/vybium-rescue"
)

type options struct {
	configPath string
	encoding   string
	logLevel   string
	logFormat  string
	workers    int
	seed       string

	adapter *vybiumrescue.Adapter
	config  *utils.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err.Error())
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "vybium-rescue",
		Short:         "Rescue sponge hash over delimited decimals and byte strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.encoding, "encoding", "", "digest text encoding: hex, base64 or raw")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: console or json")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent hashes in batch mode")
	flags.StringVar(&opts.seed, "seed", "", "round constant seed (default: standard constants)")

	rootCmd.AddCommand(
		newV1Cmd(opts),
		newV2Cmd(opts),
		newV3Cmd(opts),
		newBatchCmd(opts),
		newLayoutCmd(),
	)
	return rootCmd
}

// setup loads the config file, applies flag overrides and builds the adapter.
func (o *options) setup(cmd *cobra.Command) error {
	config := utils.DefaultConfig()
	if o.configPath != "" {
		loaded, err := utils.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		config = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("encoding") {
		config.WithEncoding(o.encoding)
	}
	if flags.Changed("log-level") {
		config.WithLogLevel(o.logLevel)
	}
	if flags.Changed("log-format") {
		config.WithLogFormat(o.logFormat)
	}
	if flags.Changed("workers") {
		config.WithWorkers(o.workers)
	}
	if flags.Changed("seed") {
		config.WithConstantSeed(o.seed)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := log.ParseLogLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logType, err := log.ParseLoggerType(config.LogFormat)
	if err != nil {
		return err
	}
	log.Init(log.Options{LogLevel: level, Type: logType, Out: cmd.ErrOrStderr()})
	vybiumrescue.InitPanicHook()

	adapter, err := vybiumrescue.NewAdapter(config)
	if err != nil {
		return err
	}
	o.adapter = adapter
	o.config = config

	log.CLI.Debug().
		Str("command", cmd.Name()).
		Str("encoding", config.Encoding).
		Int("workers", config.Workers).
		Msg("configured")
	return nil
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

package cmd

import (
	"fmt"
	"os"

	clerrors "github.com/jmurray2011/lrucache/internal/errors"
	"github.com/jmurray2011/lrucache/internal/logging"
	"github.com/jmurray2011/lrucache/internal/output"
	"github.com/jmurray2011/lrucache/internal/ui"
	"github.com/jmurray2011/lrucache/pkg/lru"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	capacity     int
	outputFormat string
	cfgFile      string
	verbose      bool
	noColor      bool
	quiet        bool

	// render is the global renderer for all output
	render *ui.Renderer
)

var rootCmd = &cobra.Command{
	Use:   "lrucache",
	Short: "Drive a fixed-capacity LRU cache from the command line",
	Long: `lrucache - replay get/put scripts against a least-recently-used cache
and watch the recency order change.

Scripts hold one operation per line:
  put <key> <value>   insert or update a key (marks it most recently used)
  get <key>           look up a key (a hit marks it most recently used)
  len                 show the number of cached keys
  keys                show keys from least to most recently used

Configuration:
  Create ~/.lrucache.yaml (see 'lrucache init'):

    capacity: 100
    output: text      # text, json, csv

  Every setting can also come from the environment, e.g. LRUCACHE_CAPACITY=3.

Examples:
  # Replay a script with a capacity of 3
  lrucache replay ops.txt -c 3

  # Read operations from stdin and emit JSON
  printf 'put a 1\nget a\n' | lrucache replay - -o json

  # Walk through the built-in eviction scenarios
  lrucache demo`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(initConfig, initLogger, initRenderer)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.lrucache.yaml)")
	rootCmd.PersistentFlags().IntVarP(&capacity, "capacity", "c", 0, fmt.Sprintf("Cache capacity (default %d)", lru.DefaultCapacity))
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: text, json, csv")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress status messages")

	// Bind flags to viper
	_ = viper.BindPFlag("capacity", rootCmd.PersistentFlags().Lookup("capacity"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initRenderer initializes the global renderer with current settings.
func initRenderer() {
	render = ui.NewRendererWithOptions(
		ui.WithNoColor(isNoColor()),
		ui.WithQuiet(quiet),
	)
}

// initLogger raises the default logger to debug level in verbose mode.
func initLogger() {
	if !IsVerbose() {
		return
	}
	logging.Default().SetLevel(logging.LevelDebug)
	if used := viper.ConfigFileUsed(); used != "" {
		logging.Debug("using config file %s", used)
	}
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return verbose || viper.GetBool("verbose")
}

func isNoColor() bool {
	return noColor || os.Getenv("NO_COLOR") != ""
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".lrucache")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("LRUCACHE")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("capacity", lru.DefaultCapacity)
	viper.SetDefault("output", string(output.FormatText))

	// Read config file (ignore if not found, warn on other errors)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file: %v\n", err)
		}
	}
}

// getCapacity returns the cache capacity from flags or config.
func getCapacity() (int, error) {
	c := capacity
	if c == 0 {
		c = viper.GetInt("capacity")
	}
	if c <= 0 {
		return 0, clerrors.InvalidCapacityError(c)
	}
	return c, nil
}

// getOutputFormat returns the validated output format from flags or config.
func getOutputFormat() (output.Format, error) {
	f := outputFormat
	if f == "" {
		f = viper.GetString("output")
	}
	return output.ParseFormat(f)
}

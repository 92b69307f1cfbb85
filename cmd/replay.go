package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jmurray2011/lrucache/internal/logging"
	"github.com/jmurray2011/lrucache/internal/output"
	"github.com/jmurray2011/lrucache/internal/replay"
	"github.com/jmurray2011/lrucache/internal/script"

	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script|->",
	Short: "Replay an operation script against a fresh cache",
	Long: `Run every operation in a script, in order, against a new LRU cache
and report the outcome of each one along with the final recency order.

Script format (one operation per line, '#' starts a comment):
  put <key> <value>   value is the rest of the line
  get <key>
  len
  keys

Use "-" to read the script from stdin.

Examples:
  # Replay a file with capacity 3
  lrucache replay ops.txt -c 3

  # Emit CSV for further processing
  lrucache replay ops.txt -o csv

  # Log every operation and eviction
  lrucache replay ops.txt -v`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	capacity, err := getCapacity()
	if err != nil {
		return err
	}
	format, err := getOutputFormat()
	if err != nil {
		return err
	}

	ops, err := readScript(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	logger := logging.Default().WithField("script", args[0])
	runner, err := replay.NewRunner(capacity, replay.WithLogger(logger))
	if err != nil {
		return err
	}

	render.Status("Replaying %d operations (capacity %d)...", len(ops), capacity)
	results := runner.Run(ops)

	formatter := output.NewFormatter(format, cmd.OutOrStdout(), isNoColor())
	return formatter.FormatResults(results)
}

// readScript parses the script at path, or stdin when path is "-".
func readScript(path string, stdin io.Reader) ([]script.Op, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open script: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	ops, err := script.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ops, nil
}

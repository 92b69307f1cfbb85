package cmd

import (
	"fmt"
	"strconv"

	"github.com/jmurray2011/lrucache/internal/ui"
	"github.com/jmurray2011/lrucache/pkg/lru"

	"github.com/spf13/cobra"
)

const demoCapacity = 3

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the LRU eviction scenarios",
	Long: `Run a fixed set of get/put sequences against a capacity-3 cache and
print the recency order after every step. The --capacity flag is ignored.

Examples:
  lrucache demo
  lrucache demo --no-color`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoStep applies one operation and describes its outcome.
type demoStep func(r *ui.Renderer, c *lru.Cache[int, string]) string

type demoScenario struct {
	title string
	steps []demoStep
}

func demoPut(key int, value string) demoStep {
	return func(r *ui.Renderer, c *lru.Cache[int, string]) string {
		call := fmt.Sprintf("put(%d, %q)", key, value)
		hit := c.Contains(key)
		var evicted string
		if !hit && c.Len() == c.Capacity() {
			oldest, _ := c.Oldest()
			evicted = strconv.Itoa(oldest)
		}
		c.Put(key, value)
		if hit {
			return call + "  update"
		}
		return call + "  " + r.Outcome(false, false, evicted)
	}
}

func demoGet(key int) demoStep {
	return func(r *ui.Renderer, c *lru.Cache[int, string]) string {
		call := fmt.Sprintf("get(%d)", key)
		if v, ok := c.Get(key); ok {
			return fmt.Sprintf("%s  %s %q", call, r.Outcome(true, false, ""), v)
		}
		return call + "  " + r.Outcome(false, true, "")
	}
}

var demoScenarios = []demoScenario{
	{
		title: "Fill to capacity, then evict the oldest key",
		steps: []demoStep{
			demoPut(1, "a"), demoPut(2, "b"), demoPut(3, "c"),
			demoPut(4, "d"),
			demoGet(1),
		},
	},
	{
		title: "A get protects a key from eviction",
		steps: []demoStep{
			demoPut(1, "a"), demoPut(2, "b"), demoPut(3, "c"),
			demoGet(2),
			demoPut(4, "d"),
		},
	},
	{
		title: "Updating a key replaces its value",
		steps: []demoStep{
			demoPut(5, "e"), demoPut(5, "f"),
			demoGet(5),
		},
	},
}

func runDemo(cmd *cobra.Command, args []string) error {
	r := ui.NewRendererWithOptions(
		ui.WithOutput(cmd.OutOrStdout()),
		ui.WithNoColor(isNoColor()),
	)

	for i, sc := range demoScenarios {
		c, err := lru.New[int, string](demoCapacity)
		if err != nil {
			return err
		}

		r.Section(fmt.Sprintf("%d. %s", i+1, sc.title))
		for _, step := range sc.steps {
			r.Info("%s", step(r, c))
			r.RecencyList(intKeys(c.Keys()))
		}
		r.KeyValue("Len", strconv.Itoa(c.Len()))
	}

	r.Section(fmt.Sprintf("%d. Non-positive capacities are rejected", len(demoScenarios)+1))
	for _, n := range []int{0, -1} {
		if _, err := lru.New[int, string](n); err != nil {
			r.Info("new(%d)  %v", n, err)
		}
	}
	return nil
}

func intKeys(keys []int) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = strconv.Itoa(k)
	}
	return out
}

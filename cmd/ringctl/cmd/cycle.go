package cmd

import (
	"bufio"
	"container/list"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"github.com/treeverse/ringview/pkg/config"
	"github.com/treeverse/ringview/pkg/logging"
	"github.com/treeverse/ringview/pkg/ring"
	"github.com/treeverse/ringview/pkg/seq"
)

var ErrNotReversible = errors.New("source can not be reversed")

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

const (
	cycleTextTemplate = `{{ range .Values }}{{ . }}
{{ end }}`
	cycleJSONTemplate = `{{ . | json }}
`
	cycleYAMLTemplate = `{{ . | yaml }}`
)

type cycleOptions struct {
	Count   ring.Count
	Take    int
	Drop    int
	Reverse bool
	Memoize int
	// Match keeps only the values it matches when set.
	Match glob.Glob
}

type cycleResult struct {
	Source     string   `json:"source" yaml:"source"`
	Capability string   `json:"capability" yaml:"capability"`
	Count      string   `json:"count" yaml:"count"`
	Values     []string `json:"values" yaml:"values"`
}

var cycleCmd = &cobra.Command{
	Use:   "cycle [values...]",
	Short: "Repeat values and print the resulting ring",
	Long: `Build a sequence of the configured source kind from the arguments (or from
standard input lines when no arguments are given), repeat it, optionally
drop a prefix and take a bounded number of elements, and print the result.`,
	Example: `ringctl cycle --times 3 a b c
ringctl cycle --source list --take 7 --reverse 1 2 3
ringctl cycle --times 2 --match 'a*' apple banana avocado
seq 5 | ringctl cycle --source iterator --times 2 --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cfg := getConfig(cmd)
		reverse, _ := cmd.Flags().GetBool("reverse")
		output, _ := cmd.Flags().GetString("output")
		pattern, _ := cmd.Flags().GetString("match")

		values := args
		if len(values) == 0 {
			var err error
			values, err = readLines(os.Stdin)
			if err != nil {
				DieErr(err)
			}
		}
		opts := cycleOptions{
			Count:   cfg.RingCount(),
			Take:    cfg.Ring.Take,
			Drop:    cfg.Ring.Drop,
			Reverse: reverse,
			Memoize: cfg.Ring.MemoizeSize,
		}
		if pattern != "" {
			g, err := glob.Compile(pattern)
			if err != nil {
				DieFmt("bad --match pattern %q: %s", pattern, err)
			}
			opts.Match = g
		}
		res, err := cycle(cfg.Ring.Source, values, opts)
		if err != nil {
			DieErr(err)
		}
		logging.FromContext(ctx).WithFields(logging.Fields{
			logging.SourceFieldKey: res.Source,
			logging.TierFieldKey:   res.Capability,
			logging.CountFieldKey:  res.Count,
		}).Debug("Ring traversed")

		switch output {
		case outputText:
			Write(cycleTextTemplate, res)
		case outputJSON:
			Write(cycleJSONTemplate, res)
		case outputYAML:
			Write(cycleYAMLTemplate, res)
		default:
			DieFmt("unknown output format %q", output)
		}
	},
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// cycle builds a source of the given kind over values and traverses the
// ring described by opts.
func cycle(kind config.SourceKind, values []string, opts cycleOptions) (*cycleResult, error) {
	if !opts.Count.IsBounded() && opts.Take <= 0 {
		return nil, config.ErrUnboundedOutput
	}
	var (
		caps seq.Capability
		out  []string
		err  error
	)
	switch kind {
	case config.SourceSlice:
		caps, out, err = cyclePipeline[int](seq.Slice(values), opts)
	case config.SourceQueue:
		caps, out, err = cyclePipeline[int](seq.NewQueue(values...), opts)
	case config.SourceList:
		caps, out, err = cyclePipeline[*list.Element](seq.NewList(values...), opts)
	case config.SourceLinked:
		caps, out, err = cyclePipeline[*seq.Node[string]](seq.NewLinked(values...), opts)
	case config.SourceIterator:
		caps, out, err = cycleInput(seq.NewSliceIterator(values), opts)
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownSource, kind)
	}
	if err != nil {
		return nil, err
	}
	return &cycleResult{
		Source:     string(kind),
		Capability: caps.String(),
		Count:      opts.Count.String(),
		Values:     append([]string{}, out...),
	}, nil
}

func cyclePipeline[P comparable](src seq.Forward[string, P], opts cycleOptions) (seq.Capability, []string, error) {
	if opts.Match != nil {
		src = seq.Filter(src, opts.Match.Match)
	}
	if opts.Reverse {
		if c := seq.Classify(src); c.Tier < seq.TierBidirectional || !c.Common {
			return seq.Capability{}, nil, fmt.Errorf("%w: %s", ErrNotReversible, c)
		}
		src = seq.Reverse(src)
	}
	// every pass revisits the same source positions, so cache below the ring
	if opts.Memoize > 0 {
		src = seq.Memoize(src, opts.Memoize)
	}
	var s seq.Forward[string, ring.Pos[P]] = ring.New(src, opts.Count)
	if opts.Drop > 0 {
		s = seq.Drop(s, opts.Drop)
	}
	if opts.Take > 0 {
		taken := seq.Take(s, opts.Take)
		return taken.Capability(), seq.Collect[string, seq.TakePos[ring.Pos[P]]](taken), nil
	}
	return seq.Classify(s), seq.Collect(s), nil
}

// cycleInput drains a single-pass ring. Its elements are produced at most
// once, so drop and take apply to that single pass.
func cycleInput(it seq.Iterator[string], opts cycleOptions) (seq.Capability, []string, error) {
	if opts.Reverse {
		return seq.Capability{}, nil, fmt.Errorf("%w: %s", ErrNotReversible, seq.TierInput)
	}
	v := ring.NewInput(it, opts.Count)
	defer v.Close()
	var out []string
	skipped := 0
	for (opts.Take <= 0 || len(out) < opts.Take) && v.Next() {
		if opts.Match != nil && !opts.Match.Match(v.Value()) {
			continue
		}
		if skipped < opts.Drop {
			skipped++
			continue
		}
		out = append(out, v.Value())
	}
	return v.Capability(), out, v.Err()
}

//nolint:gochecknoinits
func init() {
	rootCmd.AddCommand(cycleCmd)
	cycleCmd.Flags().Int("times", config.DefaultRingTimes, "number of passes over the values, -1 repeats forever")
	cycleCmd.Flags().Int("take", config.DefaultRingTake, "maximum number of elements to print, 0 prints every element of a bounded ring")
	cycleCmd.Flags().Int("drop", 0, "number of leading elements to skip")
	cycleCmd.Flags().String("source", string(config.DefaultRingSource), "source kind: slice, queue, list, linked or iterator")
	cycleCmd.Flags().Int("memoize", 0, "cache up to this many ring elements, 0 disables caching")
	cycleCmd.Flags().Bool("reverse", false, "traverse the values backwards (bidirectional sources only)")
	cycleCmd.Flags().String("match", "", "keep only values matching this glob pattern")
	cycleCmd.Flags().StringP("output", "o", outputText, "output format: text, json or yaml")

	bindFlags(cycleCmd.Flags(), map[string]string{
		"times":   config.RingTimesKey,
		"take":    config.RingTakeKey,
		"drop":    config.RingDropKey,
		"source":  config.RingSourceKey,
		"memoize": config.RingMemoizeSizeKey,
	})
}

package cmd

import (
	"container/list"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/treeverse/ringview/pkg/config"
	"github.com/treeverse/ringview/pkg/ring"
	"github.com/treeverse/ringview/pkg/seq"
)

// classification describes how one source kind and its rings are graded.
type classification struct {
	Kind      config.SourceKind
	Source    seq.Capability
	Ring      seq.Capability
	Unbounded seq.Capability
	// Len of the bounded ring, -1 when it is not sized.
	Len int
}

var classifyCmd = &cobra.Command{
	Use:     "classify [values...]",
	Short:   "Show the traversal capability of every source kind and of its rings",
	Example: `ringctl classify --times 3 a b c`,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		getConfig(cmd)
		times, _ := cmd.Flags().GetInt("times")
		if times < 0 {
			DieFmt("--times must be non-negative, got %d", times)
		}
		count := ring.Bounded(times)
		rows := make([]table.Row, 0, len(config.SourceKinds))
		for _, c := range classifyAll(args, count) {
			size := "-"
			if c.Len >= 0 {
				size = strconv.Itoa(c.Len)
			}
			rows = append(rows, table.Row{c.Kind, c.Source, c.Ring, c.Unbounded, size})
		}
		PrintTable(rows, table.Row{"Source", "Source Capability", "Ring x" + count.String(), "Unbounded Ring", "Len"})
	},
}

func classifyAll(values []string, count ring.Count) []classification {
	return []classification{
		classifyKind[int](config.SourceSlice, seq.Slice(values), count),
		classifyKind[int](config.SourceQueue, seq.NewQueue(values...), count),
		classifyKind[*list.Element](config.SourceList, seq.NewList(values...), count),
		classifyKind[*seq.Node[string]](config.SourceLinked, seq.NewLinked(values...), count),
		{
			Kind:      config.SourceIterator,
			Source:    seq.ClassifyIterator[string](seq.NewSliceIterator(values)),
			Ring:      ring.NewInput[string](seq.NewSliceIterator(values), count).Capability(),
			Unbounded: ring.NewInput[string](seq.NewSliceIterator(values), ring.Unbounded).Capability(),
			Len:       -1,
		},
	}
}

func classifyKind[P comparable](kind config.SourceKind, src seq.Forward[string, P], count ring.Count) classification {
	bounded := ring.New(src, count)
	c := classification{
		Kind:      kind,
		Source:    seq.Classify(src),
		Ring:      bounded.Capability(),
		Unbounded: ring.New(src, ring.Unbounded).Capability(),
		Len:       -1,
	}
	if c.Ring.Sized {
		c.Len = bounded.(seq.Sized).Len()
	}
	return c
}

//nolint:gochecknoinits
func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().Int("times", 2, "number of passes of the bounded ring")
}

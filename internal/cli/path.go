package cli

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/bfs"
	"github.com/katalvlaran/flowmatch/core"
	"github.com/katalvlaran/flowmatch/protocol"
)

// pathCommand prints the first augmenting path of a max-flow request as
// 0-indexed "(u-v)" steps.
func (c *CLI) pathCommand() *cobra.Command {
	var showEdges bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the first BFS augmenting path of a max-flow instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			data, err := c.readInput()
			if err != nil {
				return err
			}
			p, err := protocol.ReadFlowProblem(bytes.NewReader(data))
			if err != nil {
				return err
			}
			g, err := p.Network(c.graphOptions()...)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if showEdges {
				writeEdges(&buf, g)
			}

			parent, err := bfs.FindPath(g, p.Source-1, p.Sink-1,
				bfs.WithOnEnqueue(func(node, depth int) {
					logger.Debug("enqueued", "node", node, "depth", depth)
				}))
			switch {
			case errors.Is(err, bfs.ErrPathNotFound):
				buf.WriteString("Did not find a path with BFS\n")
			case err != nil:
				return err
			default:
				path, err := parent.Path(p.Source-1, p.Sink-1)
				if err != nil {
					return err
				}
				for _, s := range path {
					fmt.Fprintf(&buf, "(%d-%d)\n", s.From, s.To)
				}
				buf.WriteString("Found a path with BFS (see above)\n")
				logger.Debug("path found", "path", path.String(), "length", len(path))
			}
			return c.writeOutput(&buf)
		},
	}

	cmd.Flags().BoolVar(&showEdges, "edges", false, "list every edge with capacity and flow first")
	return cmd
}

func writeEdges(buf *bytes.Buffer, g *core.ResidualGraph) {
	buf.WriteString("Edges in graph:\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(buf, "(%d-%d), Capacity: %d, Flow: %d\n", e.From, e.To, e.Capacity, e.Flow)
	}
}

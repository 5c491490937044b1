package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/dfs"
	"github.com/katalvlaran/flowmatch/protocol"
)

// decomposeCommand solves a max-flow request and prints the flow split into
// paths, one per line as "flow u1 u2 ... uk" with 1-indexed ids.
func (c *CLI) decomposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose",
		Short: "Split the maximum flow of an instance into source-to-sink paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			data, err := c.readInput()
			if err != nil {
				return err
			}
			p, err := protocol.ReadFlowProblem(bytes.NewReader(data))
			if err != nil {
				return err
			}
			sol, g, err := protocol.SolveFlow(p, c.graphOptions(), c.flowOptions(ctx)...)
			if err != nil {
				return err
			}
			paths, err := dfs.Decompose(g, p.Source-1, p.Sink-1, dfs.WithContext(ctx))
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			fmt.Fprintf(&buf, "%d %d\n", sol.MaxFlow, len(paths))
			for _, fp := range paths {
				fmt.Fprint(&buf, fp.Flow)
				for _, n := range fp.Nodes {
					fmt.Fprintf(&buf, " %d", n+1)
				}
				buf.WriteByte('\n')
			}
			if err := c.writeOutput(&buf); err != nil {
				return err
			}
			prog.done("Decomposed flow", "max_flow", sol.MaxFlow, "paths", len(paths))
			return nil
		},
	}
}

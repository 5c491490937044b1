package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/protocol"
)

func (c *CLI) maxflowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "maxflow",
		Short: "Solve a max-flow instance (V s t E / u v cap)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			data, err := c.readInput()
			if err != nil {
				return err
			}
			p, err := protocol.ReadFlowProblem(bytes.NewReader(data))
			if err != nil {
				return err
			}
			logger.Debug("read max-flow problem", "nodes", p.V, "edges", len(p.Edges))

			sol, _, err := protocol.SolveFlow(p, c.graphOptions(), c.flowOptions(ctx)...)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := protocol.WriteFlowSolution(&buf, sol); err != nil {
				return err
			}
			if err := c.writeOutput(&buf); err != nil {
				return err
			}
			prog.done("Solved max flow", "max_flow", sol.MaxFlow, "flow_edges", len(sol.Edges))
			return nil
		},
	}
}

func (c *CLI) matchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match",
		Short: "Solve a bipartite matching instance (X Y E / a b)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			data, err := c.readInput()
			if err != nil {
				return err
			}
			p, err := protocol.ReadMatchingProblem(bytes.NewReader(data))
			if err != nil {
				return err
			}
			logger.Debug("read matching problem", "left", p.X, "right", p.Y, "edges", len(p.Pairs))

			sol, _, err := protocol.SolveMatching(p, c.matchingOptions(ctx)...)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := protocol.WriteMatchingSolution(&buf, sol); err != nil {
				return err
			}
			if err := c.writeOutput(&buf); err != nil {
				return err
			}
			prog.done("Solved matching", "size", len(sol.Pairs))
			return nil
		},
	}
}

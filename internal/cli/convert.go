package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/protocol"
)

func (c *CLI) toflowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toflow",
		Short: "Convert a matching request into a max-flow request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := c.readInput()
			if err != nil {
				return err
			}
			p, err := protocol.ReadMatchingProblem(bytes.NewReader(data))
			if err != nil {
				return err
			}

			fp := protocol.ToFlowProblem(p)
			var buf bytes.Buffer
			if err := protocol.WriteFlowProblem(&buf, fp); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("converted to flow", "nodes", fp.V, "edges", len(fp.Edges))
			return c.writeOutput(&buf)
		},
	}
}

func (c *CLI) fromflowCommand() *cobra.Command {
	var left, right int

	cmd := &cobra.Command{
		Use:   "fromflow",
		Short: "Convert a max-flow response back into a matching response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := c.readInput()
			if err != nil {
				return err
			}
			fs, err := protocol.ReadFlowSolution(bytes.NewReader(data))
			if err != nil {
				return err
			}
			ms, err := protocol.ToMatchingSolution(left, right, fs)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := protocol.WriteMatchingSolution(&buf, ms); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("converted to matching", "size", len(ms.Pairs))
			return c.writeOutput(&buf)
		},
	}

	cmd.Flags().IntVar(&left, "left", 0, "left side size X")
	cmd.Flags().IntVar(&right, "right", 0, "right side size Y")
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")
	return cmd
}

// Package cli implements the flowmatch command-line interface.
//
// Commands read one request from --input (stdin by default) and write one
// response to --output (stdout by default):
//   - maxflow:  generic max-flow protocol
//   - match:    bipartite matching protocol
//   - toflow:   matching request → max-flow request
//   - fromflow: max-flow response → matching response
//   - path:     first augmenting path of a max-flow request
//   - dot:      Graphviz rendering of a solved network
//   - decompose: maximum flow split into source-to-sink paths
//
// Responses are assembled in memory and written only after the command has
// succeeded, so a failing command never leaves partial output. Logs go to
// stderr; --verbose enables debug records from the flow engine.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/config"
	"github.com/katalvlaran/flowmatch/core"
	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/matching"
)

const appName = "flowmatch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the version reported by --version. Call it before
// RootCommand.
func SetVersion(v string) { version = v }

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Stdin  io.Reader
	Stdout io.Writer

	cfg   config.Config
	flags globalFlags
}

type globalFlags struct {
	verbose    bool
	configPath string
	input      string
	output     string
	parallel   string
	verify     bool
}

// New creates a CLI logging to w at level and using the process stdio.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Edmonds–Karp maximum flow and bipartite matching",
		Long:              `flowmatch solves maximum-flow and maximum bipartite matching instances given in a plain-text protocol, converts between the two formats and renders solved networks with Graphviz.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.flags.configPath, "config", "", "TOML config file")
	pf.StringVarP(&c.flags.input, "input", "i", "-", "input file (- for stdin)")
	pf.StringVarP(&c.flags.output, "output", "o", "-", "output file (- for stdout)")
	pf.StringVar(&c.flags.parallel, "parallel-edges", "", "parallel edge policy: aggregate or reject")
	pf.BoolVar(&c.flags.verify, "verify", false, "run sanity checks on every solved network")

	root.AddCommand(c.maxflowCommand())
	root.AddCommand(c.matchCommand())
	root.AddCommand(c.toflowCommand())
	root.AddCommand(c.fromflowCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.decomposeCommand())

	return root
}

// setup loads the config file, applies flag overrides and attaches the logger
// to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("parallel-edges") {
		cfg.ParallelEdges = c.flags.parallel
	}
	if flags.Changed("verify") {
		cfg.Verify = c.flags.verify
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	level, _ := cfg.Level()
	if c.flags.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// graphOptions returns the network options selected by config and flags.
func (c *CLI) graphOptions() []core.GraphOption {
	p, _ := c.cfg.Parallel()
	return []core.GraphOption{core.WithParallelEdges(p)}
}

// flowOptions wires the command logger into the engine.
func (c *CLI) flowOptions(ctx context.Context) []flow.Option {
	return []flow.Option{
		flow.WithLogger(loggerFromContext(ctx)),
		flow.WithVerify(c.cfg.Verify),
	}
}

func (c *CLI) matchingOptions(ctx context.Context) []matching.Option {
	return []matching.Option{
		matching.WithGraphOptions(c.graphOptions()...),
		matching.WithFlowOptions(c.flowOptions(ctx)...),
	}
}

// readInput returns the whole --input stream.
func (c *CLI) readInput() ([]byte, error) {
	if c.flags.input == "" || c.flags.input == "-" {
		return io.ReadAll(c.Stdin)
	}
	data, err := os.ReadFile(c.flags.input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// writeOutput writes a finished response to --output.
func (c *CLI) writeOutput(buf *bytes.Buffer) error {
	if c.flags.output == "" || c.flags.output == "-" {
		_, err := c.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(c.flags.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

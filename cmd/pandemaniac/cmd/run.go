package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pandemaniac/config"
	"github.com/katalvlaran/pandemaniac/runner"
	"github.com/spf13/cobra"
)

const (
	promptGraph      = "Enter the filename (leave out .json extension) -> "
	promptStrategies = "Enter the strategies to run separated by spaces -> "
)

// runCmd generates seed files for one game graph.
var runCmd = &cobra.Command{
	Use:   "run [graph] [strategies...]",
	Short: "generate seed files for a game graph",
	Long: `Generates one seed file per strategy for the graph <players>.<seeds>.<id>.json.

Strategies: r random, d degree, e eigenvector, b betweenness, c clustering,
k katz, m minimum spanning tree, s dominating set, v vertex cover.
Missing arguments are asked for on stdin.`,
	Example: `  pandemaniac run 2.10.31 d m v
  pandemaniac run graphs/8.35.2.json e k --seed 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		graph, tags := cfg.Graph, cfg.Strategies
		if len(args) > 0 {
			graph, tags = args[0], args[1:]
			if len(tags) == 0 {
				tags = cfg.Strategies
			}
		}

		in := bufio.NewReader(cmd.InOrStdin())
		if graph == "" {
			if graph, err = prompt(in, cmd.OutOrStdout(), promptGraph); err != nil {
				return err
			}
		}
		if len(tags) == 0 {
			line, err := prompt(in, cmd.OutOrStdout(), promptStrategies)
			if err != nil {
				return err
			}
			tags = strings.Fields(line)
		}

		results, err := runner.New(cfg, logger).Run(cmd.Context(), graph, tags)
		if err != nil {
			return err
		}
		return runner.Summary(results)
	},
}

// prompt writes question and returns the next input line, trimmed.
func prompt(in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	RootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.Int("iterations", 0, "rounds per game (default 50)")
	flags.Int64("seed", 0, "random strategy seed, 0 picks one from the clock")
	flags.StringP("output-dir", "o", "", "directory for the seed files (default .)")
	flags.String("mst-method", "", "spanning forest algorithm - kruskal or prim")
	must(v.BindPFlag(config.KeyIterations, flags.Lookup("iterations")))
	must(v.BindPFlag(config.KeySeed, flags.Lookup("seed")))
	must(v.BindPFlag(config.KeyOutputDir, flags.Lookup("output-dir")))
	must(v.BindPFlag(config.KeyMSTMethod, flags.Lookup("mst-method")))
}

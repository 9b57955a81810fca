package main

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		levels, rows, cols int
		algorithm          string
		seed               uint64
		prefill            string
		out                string
		show               bool
		color              bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and write it to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := maze.NewDimension(levels, rows, cols)
			if err != nil {
				return err
			}

			var opts []maze.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, maze.WithSeed(seed))
			}
			switch prefill {
			case "":
			case "random":
				opts = append(opts, maze.WithPrefill(maze.PrefillRandom))
			case "closed":
				opts = append(opts, maze.WithPrefill(maze.PrefillClosed))
			default:
				return fmt.Errorf("unknown prefill %q", prefill)
			}

			gen, err := maze.GeneratorByName(algorithm, opts...)
			if err != nil {
				return err
			}
			measured, err := maze.Measure(gen, dim)
			if err != nil {
				return err
			}

			if err := writeDocument(cmd, out, measured.Maze); err != nil {
				return err
			}
			if out != "" && out != "-" {
				fmt.Fprintln(cmd.OutOrStdout(), measured.String())
				if show {
					fmt.Fprint(cmd.OutOrStdout(), maze.Render(measured.Maze, renderOptions(color)))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&levels, "levels", 1, "Number of levels")
	cmd.Flags().IntVar(&rows, "rows", 10, "Rows per level")
	cmd.Flags().IntVar(&cols, "cols", 10, "Columns per level")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", maze.KruskalName, "Generator: dfs, direct or kruskal")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for deterministic output")
	cmd.Flags().StringVar(&prefill, "prefill", "", "Override the prefill policy: random or closed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, stdout when empty")
	cmd.Flags().BoolVar(&show, "show", false, "Print the maze after writing the file")
	cmd.Flags().BoolVar(&color, "color", false, "Color Start and Goal")
	return cmd
}

package main

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		in    string
		color bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a stored maze level by level",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readDocument(cmd, in)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), maze.Render(m, renderOptions(color)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "Maze file, stdin when empty")
	cmd.Flags().BoolVar(&color, "color", false, "Color Start and Goal")
	return cmd
}

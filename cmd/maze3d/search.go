package main

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/search"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		in        string
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a stored maze from Start to Goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := search.SearcherByName(algorithm)
			if err != nil {
				return err
			}
			m, err := readDocument(cmd, in)
			if err != nil {
				return err
			}

			res, err := search.SolveWith(s, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Name(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "Maze file, stdin when empty")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", search.BreadthFirstName, "Search: bfs, dfs or astar")
	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-maze/infrastruture/encoding"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// document is the file format written by generate and read by search and
// render.
type document struct {
	Snapshot  maze.Snapshot  `json:"snapshot" yaml:"snapshot"`
	Endpoints maze.Endpoints `json:"endpoints" yaml:"endpoints"`
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "maze3d",
		Short:         "maze3d generates and solves 3D grid mazes",
		Long:          `maze3d builds stacked-level mazes with DFS, direct-path or Kruskal carving and runs BFS, DFS or A* over them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("format", encoding.JSONName, "Maze file encoding: json or yaml")

	rootCmd.AddCommand(newGenerateCmd(), newSearchCmd(), newRenderCmd())
	return rootCmd
}

func readDocument(cmd *cobra.Command, path string) (*maze.Maze, error) {
	enc, err := encoderFlag(cmd)
	if err != nil {
		return nil, err
	}

	var data []byte
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading maze: %w", err)
	}

	var doc document
	if err := enc.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding maze: %w", err)
	}
	return maze.Restore(doc.Snapshot, doc.Endpoints)
}

func writeDocument(cmd *cobra.Command, path string, m *maze.Maze) error {
	enc, err := encoderFlag(cmd)
	if err != nil {
		return err
	}
	data, err := enc.Marshal(document{Snapshot: m.Snapshot(), Endpoints: m.Endpoints()})
	if err != nil {
		return fmt.Errorf("encoding maze: %w", err)
	}

	if path == "" || path == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func encoderFlag(cmd *cobra.Command) (i.Encoder, error) {
	name, _ := cmd.Flags().GetString("format")
	return encoding.ByName(name)
}

func renderOptions(color bool) maze.RenderOptions {
	if !color {
		return maze.RenderOptions{}
	}
	return maze.RenderOptions{Color: true, Profile: termenv.EnvColorProfile()}
}

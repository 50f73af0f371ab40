package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/anima-geom/engine/export"
	"github.com/spaghettifunk/anima-geom/engine/scene"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export [scene.toml]",
	Short: "Write every hexahedron of a scene as an STL file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	defer s.Release()
	useSceneLevel(cmd, s.LogLevel())

	paths, err := export.Scene(exportDir, s)
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return err
}

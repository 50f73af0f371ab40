/*
anima-geom evaluates hexahedron scenes described in TOML files: it builds
the shapes, runs intersection, containment and plane queries against them
and can export them as STL meshes.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/anima-geom/engine/core"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "anima-geom",
	Short: "Evaluate hexahedron scenes",
	Long: `anima-geom loads scenes of hexahedra and planes from TOML files and
answers the queries they declare: intersections between hexahedra, point
containment, position with respect to a plane, projections and face planes.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return core.SetLogLevel(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

// useSceneLevel switches the logger to the level a scene asks for, unless
// --log-level was given on the command line.
func useSceneLevel(cmd *cobra.Command, level string) {
	if level == "" || cmd.Flags().Changed("log-level") {
		return
	}
	if err := core.SetLogLevel(level); err != nil {
		core.LogWarn("%s", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

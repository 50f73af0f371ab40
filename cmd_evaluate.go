package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/anima-geom/engine/scene"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [scene.toml]",
	Short: "Run the queries of a scene once",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	defer s.Release()
	useSceneLevel(cmd, s.LogLevel())

	results, err := s.Evaluate()
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r)
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d queries failed", failed, len(results))
	}
	return nil
}

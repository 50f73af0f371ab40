package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/anima-geom/engine/core"
	"github.com/spaghettifunk/anima-geom/engine/scene"
)

var watchCmd = &cobra.Command{
	Use:   "watch [scene.toml]",
	Short: "Evaluate a scene every time the file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := scene.NewWatcher(args[0])
	if err != nil {
		return err
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		<-sigCh
		core.LogInfo("shutting down the scene watcher")
		_ = w.Close()
	}()

	out := cmd.OutOrStdout()
	for report := range w.Reports() {
		useSceneLevel(cmd, report.LogLevel)
		fmt.Fprintf(out, "== %s (%s)\n", report.Path, report.At.Format("15:04:05"))
		if report.Err != nil {
			fmt.Fprintf(out, "error: %s\n", report.Err)
			continue
		}
		for _, r := range report.Results {
			fmt.Fprintln(out, r)
		}
	}
	return nil
}

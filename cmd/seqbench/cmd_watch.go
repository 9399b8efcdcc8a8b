package main

import (
	"time"

	"github.com/npillmayer/treearray/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-run a command whenever files change",
		Long: `Watches a directory tree (default the current directory) and runs a
command, by default 'go test ./...', after files have been written. Paths
matching an ignore pattern are not watched; by default the .git directory
is ignored. With --toolchain the command runs with GOTOOLCHAIN set, e.g. to
test with a release candidate of Go.`,
		Args: cobra.MaximumNArgs(1),
		RunE: watchTree,
	}
	cmd.Flags().String("cmd", "", "command to run (default \"go test ./...\")")
	cmd.Flags().StringSlice("ignore", nil, "glob patterns of paths to ignore")
	cmd.Flags().String("toolchain", "", "Go toolchain for the command (GOTOOLCHAIN)")
	cmd.Flags().Duration("debounce", 200*time.Millisecond, "quiet period before running")
	cmd.Flags().Bool("now", false, "run the command once at start")
	return cmd
}

func watchTree(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	command, err := watch.ParseCommand(s.string(keyCommand))
	if err != nil {
		return err
	}
	command.Toolchain = s.string(keyToolchain)
	command.Stdout, command.Stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
	debounce, _ := cmd.Flags().GetDuration("debounce")
	now, _ := cmd.Flags().GetBool("now")
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	w, err := watch.New(watch.Config{
		Root:       root,
		Ignore:     s.list(keyIgnore),
		Debounce:   debounce,
		Command:    command,
		RunOnStart: now,
	}, watch.ProcessExecutor{})
	if err != nil {
		return err
	}
	return w.Run(cmd.Context())
}

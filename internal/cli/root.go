// Package cli implements the orgsync command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool

	pull     bool
	push     bool
	sync     bool
	orgFile  string
	listName string
}

// NewRootCmd builds the orgsync command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "orgsync",
		Short: "Sync an org-mode outline with a Google Tasks list",
		Long: `orgsync keeps an org-mode outline and a Google Tasks list in step.

  --pull  writes the remote list as an outline (to stdout without --orgfile)
  --push  replaces the remote list with the outline in --orgfile
  --sync  three-way merges --orgfile and the remote list against the last
          synced state; conflicts are written to <orgfile>.conflict`,
		Args:          noArgs,
		RunE:          func(cmd *cobra.Command, args []string) error { return runTransfer(cmd, opts) },
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default: config.yaml in ./config, . or $XDG_CONFIG_HOME/orgsync)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	f := cmd.Flags()
	f.BoolVar(&opts.pull, "pull", false, "fetch the remote list")
	f.BoolVar(&opts.push, "push", false, "replace the remote list with --orgfile")
	f.BoolVar(&opts.sync, "sync", false, "merge --orgfile with the remote list")
	f.StringVarP(&opts.orgFile, "orgfile", "f", "", "outline document")
	f.StringVarP(&opts.listName, "listname", "l", "", "task list title (default: sync.default_list, else the default list)")

	cmd.AddCommand(
		newListsCmd(opts),
		newAuthCmd(opts),
		newServeCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return ExitCode(err)
	}
	return ExitOK
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("unexpected argument %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

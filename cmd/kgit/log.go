package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kgit-project/kgit/ginternals"
	"github.com/kgit-project/kgit/ginternals/object"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLogCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [commit-ish]",
		Short: "walk the commit history starting at HEAD or the given commit",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		start := ginternals.Head
		if len(args) > 0 {
			start = args[0]
		}
		return logCmd(cmd.OutOrStdout(), cfg, start)
	}
	return cmd
}

func logCmd(out io.Writer, cfg *globalFlags, commitish string) error {
	r, err := openRepo(cfg)
	if err != nil {
		return errors.Wrap(err, "could not open repository")
	}
	defer r.Close() //nolint:errcheck

	oid, err := resolveObjectish(r, commitish)
	if err != nil {
		return err
	}

	return r.WalkCommits(oid, func(c *object.Commit) error {
		subject := strings.SplitN(c.Message(), "\n", 2)[0]
		fmt.Fprintf(out, "%s %s\n", c.ID().String(), subject)
		return nil
	})
}

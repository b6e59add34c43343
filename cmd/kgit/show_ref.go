package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newShowRefCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-ref",
		Short: "list every resolved reference under refs/",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return showRefCmd(cmd.OutOrStdout(), cfg)
	}
	return cmd
}

func showRefCmd(out io.Writer, cfg *globalFlags) error {
	r, err := openRepo(cfg)
	if err != nil {
		return errors.Wrap(err, "could not open repository")
	}
	defer r.Close() //nolint:errcheck

	refs, err := r.ListReferences()
	if err != nil {
		return errors.Wrap(err, "could not list references")
	}

	for _, ref := range refs {
		if ref.Unresolved {
			continue
		}
		fmt.Fprintf(out, "%s %s\n", ref.Target.String(), ref.Name)
	}
	return nil
}

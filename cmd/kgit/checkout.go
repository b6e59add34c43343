package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newCheckoutCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout COMMIT-OR-TREE DIRECTORY",
		Short: "materialize a tree or a commit's tree into a directory",
		Args:  cobra.ExactArgs(2),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return checkoutCmd(cmd.OutOrStdout(), cfg, args[0], args[1])
	}
	return cmd
}

func checkoutCmd(_ io.Writer, cfg *globalFlags, treeish, directory string) error {
	r, err := openRepo(cfg)
	if err != nil {
		return errors.Wrap(err, "could not open repository")
	}
	defer r.Close() //nolint:errcheck

	oid, err := resolveObjectish(r, treeish)
	if err != nil {
		return err
	}

	if err := r.Checkout(oid, afero.NewOsFs(), directory); err != nil {
		return errors.Wrapf(err, "could not checkout %s into %s", treeish, directory)
	}
	return nil
}

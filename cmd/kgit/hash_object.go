package main

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/kgit-project/kgit/ginternals/object"
	"github.com/kgit-project/kgit/repository"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newHashObjectCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-object FILE",
		Short: "compute the object ID of a file and optionally persist it as a blob",
		Args:  cobra.ExactArgs(1),
	}

	typ := cmd.Flags().StringP("type", "t", "blob", "object type to create (blob, commit, tree, tag)")
	write := cmd.Flags().BoolP("write", "w", false, "write the object into the object database")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return hashObjectCmd(cmd.OutOrStdout(), cfg, args[0], *typ, *write)
	}

	return cmd
}

func hashObjectCmd(out io.Writer, cfg *globalFlags, filePath, typ string, write bool) error {
	content, err := ioutil.ReadFile(filePath) //nolint:gosec // the path is a deliberate CLI argument
	if err != nil {
		return errors.Wrapf(err, "could not read %s", filePath)
	}

	oType, err := object.NewTypeFromString(typ)
	if err != nil {
		return errors.Wrapf(err, "unsupported object type %s", typ)
	}

	o := object.New(oType, content)
	switch oType {
	case object.TypeCommit:
		if _, err := o.AsCommit(); err != nil {
			return errors.Wrap(err, "invalid commit content")
		}
	case object.TypeTree:
		if _, err := o.AsTree(); err != nil {
			return errors.Wrap(err, "invalid tree content")
		}
	case object.TypeTag:
		if _, err := o.AsTag(); err != nil {
			return errors.Wrap(err, "invalid tag content")
		}
	}

	if write {
		r, err := openRepo(cfg)
		if err != nil {
			return errors.Wrap(err, "could not open repository")
		}
		defer r.Close() //nolint:errcheck

		if _, err := r.WriteObject(o); err != nil {
			return errors.Wrap(err, "could not write object")
		}
	}

	fmt.Fprintln(out, o.ID().String())
	return nil
}

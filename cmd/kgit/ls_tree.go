package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/kgit-project/kgit/ginternals"
	"github.com/kgit-project/kgit/ginternals/object"
	"github.com/kgit-project/kgit/repository"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLsTreeCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls-tree TREE-ISH",
		Short: "list the contents of a tree object",
		Args:  cobra.ExactArgs(1),
	}

	recursive := cmd.Flags().BoolP("recursive", "r", false, "recurse into subtrees")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return lsTreeCmd(cmd.OutOrStdout(), cfg, args[0], *recursive)
	}
	return cmd
}

func lsTreeCmd(out io.Writer, cfg *globalFlags, treeish string, recursive bool) error {
	r, err := openRepo(cfg)
	if err != nil {
		return errors.Wrap(err, "could not open repository")
	}
	defer r.Close() //nolint:errcheck

	oid, err := resolveObjectish(r, treeish)
	if err != nil {
		return err
	}

	o, err := r.Object(oid)
	if err != nil {
		return errors.Wrapf(err, "could not get object %s", treeish)
	}

	treeID := oid
	if o.Type() == object.TypeCommit {
		c, err := o.AsCommit()
		if err != nil {
			return errors.Wrap(err, "could not decode commit")
		}
		treeID = c.TreeID()
	}

	return lsTree(out, r, treeID, "", recursive)
}

func lsTree(out io.Writer, r *repository.Repository, treeID ginternals.Oid, prefix string, recursive bool) error {
	o, err := r.Object(treeID)
	if err != nil {
		return errors.Wrapf(err, "could not get tree %s", treeID.String())
	}
	tree, err := o.AsTree()
	if err != nil {
		return errors.Wrap(err, "could not decode tree")
	}

	for _, e := range tree.Entries() {
		path := filepath.Join(prefix, e.Path)
		if recursive && e.Mode == object.ModeDirectory {
			if err := lsTree(out, r, e.ID, path, recursive); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "%06o %s %s\t%s\n", e.Mode, e.Mode.ObjectType().String(), e.ID.String(), path)
	}
	return nil
}

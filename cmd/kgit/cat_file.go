package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/kgit-project/kgit/ginternals"
	"github.com/kgit-project/kgit/ginternals/object"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errBadObjectType = errors.New("bad file")

func newCatFileCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat-file [TYPE] OBJECT",
		Short: "provide content or type/size information for repository objects",
		Args:  cobra.RangeArgs(1, 2),
	}

	typeOnly := cmd.Flags().BoolP("t", "t", false, "show the object's type")
	sizeOnly := cmd.Flags().BoolP("s", "s", false, "show the object's size")
	prettyPrint := cmd.Flags().BoolP("p", "p", false, "pretty-print the object's content")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		p := catFileParams{
			typeOnly:    *typeOnly,
			sizeOnly:    *sizeOnly,
			prettyPrint: *prettyPrint,
			objectName:  args[0],
		}
		if len(args) == 2 {
			p.typ = args[0]
			p.objectName = args[1]
		}
		return catFileCmd(cmd.OutOrStdout(), cfg, p)
	}
	return cmd
}

type catFileParams struct {
	typeOnly    bool
	sizeOnly    bool
	prettyPrint bool
	objectName  string
	typ         string
}

func catFileCmd(out io.Writer, cfg *globalFlags, p catFileParams) (err error) {
	switch {
	case p.typ != "" && (p.typeOnly || p.sizeOnly || p.prettyPrint):
		return errors.New("type not supported with options -t, -s, -p")
	case p.typ == "" && !p.typeOnly && !p.sizeOnly && !p.prettyPrint:
		return errors.New("type and object required")
	case p.sizeOnly && p.prettyPrint:
		return errors.New("option -p not supported with option -s")
	}

	r, err := openRepo(cfg)
	if err != nil {
		return pkgerrors.Wrap(err, "could not open repository")
	}
	defer r.Close() //nolint:errcheck

	oid, err := resolveObjectish(r, p.objectName)
	if err != nil {
		return err
	}

	o, err := r.Object(oid)
	if err != nil {
		return pkgerrors.Wrapf(err, "could not get object %s", p.objectName)
	}

	if p.typ != "" {
		if _, err := object.NewTypeFromString(p.typ); err != nil {
			return pkgerrors.Wrapf(err, "%s", p.typ)
		}
		if o.Type().String() != p.typ {
			return pkgerrors.Wrapf(errBadObjectType, "%s", p.objectName)
		}
	}

	switch {
	case p.sizeOnly:
		fmt.Fprintln(out, strconv.Itoa(o.Size()))
	case p.typeOnly:
		fmt.Fprintln(out, o.Type().String())
	case p.prettyPrint:
		return prettyPrintObject(out, o)
	default:
		fmt.Fprint(out, string(o.Bytes()))
	}
	return nil
}

// resolveObjectish resolves either a literal Oid or a reference name
// (HEAD, a branch, a tag, ...) down to an Oid
func resolveObjectish(r objectResolver, name string) (ginternals.Oid, error) {
	oid, err := ginternals.NewOidFromStr(name)
	if err == nil {
		return oid, nil
	}

	toTry := []string{
		name,
		ginternals.RefFullName(name),
		ginternals.LocalBranchFullName(name),
		ginternals.LocalTagFullName(name),
	}
	for _, refName := range toTry {
		ref, err := r.Reference(refName)
		if err == nil && !ref.Unresolved() {
			return ref.Target(), nil
		}
		if err != nil && !errors.Is(err, ginternals.ErrRefNotFound) {
			return ginternals.NullOid, pkgerrors.Wrapf(err, "could not resolve %s", refName)
		}
	}

	return ginternals.NullOid, pkgerrors.Errorf("not a valid object name %s", name)
}

type objectResolver interface {
	Reference(name string) (*ginternals.Reference, error)
}

func prettyPrintObject(out io.Writer, o *object.Object) error {
	switch o.Type() {
	case object.TypeCommit:
		c, err := o.AsCommit()
		if err != nil {
			return pkgerrors.Wrap(err, "could not decode commit")
		}
		fmt.Fprintf(out, "tree %s\n", c.TreeID().String())
		for _, id := range c.ParentIDs() {
			fmt.Fprintf(out, "parent %s\n", id.String())
		}
		fmt.Fprintf(out, "author %s\n", c.Author().String())
		fmt.Fprintf(out, "committer %s\n", c.Committer().String())
		if c.GPGSig() != "" {
			fmt.Fprintf(out, "gpgsig %s\n", c.GPGSig())
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, c.Message())
	case object.TypeTag:
		tag, err := o.AsTag()
		if err != nil {
			return pkgerrors.Wrap(err, "could not decode tag")
		}
		fmt.Fprintf(out, "object %s\n", tag.Target().String())
		fmt.Fprintf(out, "type %s\n", tag.Type().String())
		fmt.Fprintf(out, "tag %s\n", tag.Name())
		fmt.Fprintf(out, "tagger %s\n", tag.Tagger().String())
		if tag.GPGSig() != "" {
			fmt.Fprintf(out, "gpgsig %s\n", tag.GPGSig())
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, tag.Message())
	case object.TypeTree:
		tree, err := o.AsTree()
		if err != nil {
			return pkgerrors.Wrap(err, "could not decode tree")
		}
		for _, e := range tree.Entries() {
			fmt.Fprintf(out, "%06o %s %s\t%s\n", e.Mode, e.Mode.ObjectType().String(), e.ID.String(), e.Path)
		}
	case object.TypeBlob:
		fmt.Fprint(out, string(o.Bytes()))
	default:
		return pkgerrors.Errorf("pretty-print not supported for type %s", o.Type().String())
	}
	return nil
}

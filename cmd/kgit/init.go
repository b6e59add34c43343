package main

import (
	"io"

	"github.com/kgit-project/kgit/repository"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type initCmdFlags struct {
	quiet bool
}

func newInitCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "create an empty git repository",
		Args:  cobra.MaximumNArgs(1),
	}

	flags := initCmdFlags{}
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only print error messages.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		directory := cfg.C.String()
		if len(args) > 0 {
			directory = args[0]
		}
		return initCmd(cmd.OutOrStdout(), flags, directory)
	}

	return cmd
}

func initCmd(out io.Writer, flags initCmdFlags, directory string) error {
	// a repo already exists if it already has a HEAD we can read
	existing, err := repository.OpenRepository(directory)
	reinit := err == nil
	if existing != nil {
		if cerr := existing.Close(); cerr != nil {
			return errors.Wrap(cerr, "could not close existing repository")
		}
	}

	r, err := repository.InitRepository(directory)
	if err != nil {
		return errors.Wrap(err, "could not initialize repository")
	}
	defer r.Close() //nolint:errcheck

	if reinit {
		fprintln(flags.quiet, out, "Reinitialized existing Git repository in", r.Path())
	} else {
		fprintln(flags.quiet, out, "Initialized empty Git repository in", r.Path())
	}
	return nil
}

package main

import (
	"fmt"
	"io"

	"github.com/kgit-project/kgit/env"
	"github.com/kgit-project/kgit/internal/pathutil"
	"github.com/kgit-project/kgit/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalFlags holds the flags shared by every subcommand
type globalFlags struct {
	C pflag.Value

	env *env.Env
}

func newRootCmd(cwd string, e *env.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kgit",
		Short:         "a small, read-mostly git implementation",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cfg := &globalFlags{env: e}
	cfg.C = pathutil.NewDirPathFlagWithDefault(cwd)
	cmd.PersistentFlags().VarP(cfg.C, "C", "C", "Run as if kgit was started in the provided path instead of the current working directory.")

	cmd.AddCommand(newInitCmd(cfg))
	cmd.AddCommand(newHashObjectCmd(cfg))
	cmd.AddCommand(newCatFileCmd(cfg))
	cmd.AddCommand(newLsTreeCmd(cfg))
	cmd.AddCommand(newCheckoutCmd(cfg))
	cmd.AddCommand(newShowRefCmd(cfg))
	cmd.AddCommand(newLogCmd(cfg))

	return cmd
}

// openRepo opens the repository rooted at the -C flag's path
func openRepo(cfg *globalFlags) (*repository.Repository, error) {
	return repository.OpenRepository(cfg.C.String())
}

func fprintln(quiet bool, out io.Writer, msg ...interface{}) {
	if quiet {
		return
	}
	fmt.Fprintln(out, msg...)
}

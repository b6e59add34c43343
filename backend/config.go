package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kgit-project/kgit/ginternals"
	"github.com/kgit-project/kgit/ginternals/config"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
	"gopkg.in/ini.v1"
)

// defaultConfig generates a basic default git config using the
// most common options, the same way `git init` does
func defaultConfig() (*ini.File, error) {
	cfg := ini.Empty()

	core, err := cfg.NewSection(CfgCore)
	if err != nil {
		return nil, xerrors.Errorf("could not create core section: %w", err)
	}
	coreCfg := map[string]string{
		CfgCoreFormatVersion:     "0",
		CfgCoreFileMode:          "true",
		CfgCoreBare:              "false",
		CfgCoreLogAllRefUpdate:   "true",
		CfgCoreIgnoreCase:        "true",
		CfgCorePrecomposeUnicode: "true",
	}
	for k, v := range coreCfg {
		if _, err := core.NewKey(k, v); err != nil {
			return nil, xerrors.Errorf("could not set core.%s: %w", k, err)
		}
	}
	return cfg, nil
}

// InitOptions represents all the options that can be used to
// create a repository
type InitOptions struct {
	// CreateSymlink will create a .git FILE that will contains a path
	// to the repo.
	CreateSymlink bool
}

// Init initializes a repository.
// This method cannot be called concurrently with other methods.
// Calling this method on an existing repository is safe. It will not
// overwrite things that are already there, but will add what's missing.
func (b *FS) Init() error {
	return b.InitWithOptions(ginternals.Master, InitOptions{})
}

// InitWithOptions initializes a repository using the provided options
//
// This method cannot be called concurrently with other methods.
// Calling this method on an existing repository is safe. It will not
// overwrite things that are already there, but will add what's missing.
func (b *FS) InitWithOptions(branchName string, opts InitOptions) error {
	_, err := b.fs.Stat(b.config.LocalConfig)
	confFileExist := !errors.Is(err, os.ErrNotExist)

	if opts.CreateSymlink {
		linkSource := filepath.Join(b.config.WorkTreePath, config.DefaultDotGitDirName)
		linkTarget := fmt.Sprintf("gitdir: %s", ginternals.DotGitPath(b.config))
		if werr := afero.WriteFile(b.fs, linkSource, []byte(linkTarget), 0o644); werr != nil {
			return xerrors.Errorf("could not create symlink %s: %w", linkSource, werr)
		}
	}

	// Create the directories if they don't already exist
	dirs := []string{
		b.Path(),
		ginternals.TagsPath(b.config),
		ginternals.LocalBranchesPath(b.config),
		ginternals.ObjectsPath(b.config),
		ginternals.ObjectsInfoPath(b.config),
		ginternals.ObjectsPacksPath(b.config),
	}
	for _, d := range dirs {
		if err := b.fs.MkdirAll(d, 0o750); err != nil {
			return xerrors.Errorf("could not create directory %s: %w", d, err)
		}
	}

	// Create the files with the default content if they don't already exist
	// (taken from a repo created on github)
	files := []struct {
		path    string
		content []byte
	}{
		{
			path:    ginternals.DescriptionFilePath(b.config),
			content: []byte("Unnamed repository; edit this file 'description' to name the repository.\n"),
		},
	}
	for _, f := range files {
		if _, serr := b.fs.Stat(f.path); serr == nil {
			continue
		}
		if werr := afero.WriteFile(b.fs, f.path, f.content, 0o644); werr != nil {
			return xerrors.Errorf("could not create file %s: %w", f.path, werr)
		}
	}

	// We only write the default config if we don't already have one
	if !confFileExist {
		defCfg, derr := defaultConfig()
		if derr != nil {
			return xerrors.Errorf("could not build default config: %w", derr)
		}
		if serr := defCfg.SaveTo(b.config.LocalConfig); serr != nil {
			return xerrors.Errorf("could not save the config: %w", serr)
		}
	}

	// Create HEAD if it doesn't exist yet
	ref := ginternals.NewSymbolicReference(ginternals.Head, ginternals.LocalBranchFullName(branchName))
	err = b.WriteReferenceSafe(ref)
	if err != nil && !errors.Is(err, ginternals.ErrRefExists) {
		return xerrors.Errorf("could not write HEAD: %w", err)
	}

	return nil
}

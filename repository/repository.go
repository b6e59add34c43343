// Package repository exposes a Repository handle that bundles a
// repository's config, its on-disk working tree, and its object
// database backend into the one type consumed by the CLI driver.
package repository

import (
	"errors"

	"github.com/kgit-project/kgit/backend"
	"github.com/kgit-project/kgit/env"
	"github.com/kgit-project/kgit/ginternals"
	"github.com/kgit-project/kgit/ginternals/config"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// ErrRepositoryNotExist is returned when trying to open a repository
// that doesn't have a HEAD reference yet
var ErrRepositoryNotExist = errors.New("repository does not exist")

// Repository represents a git repository: a working tree, its .git
// config, and the object database backend behind it
type Repository struct {
	cfg *config.Config
	db  backend.Backend
	wt  afero.Fs
}

// InitOptions holds the optional parameters used to initialize a
// repository
type InitOptions struct {
	// IsBare states whether the repository has no working tree
	IsBare bool
	// CreateSymlink instructs Init to write a .git FILE pointing at the
	// real git directory, instead of a directory, like git does for
	// linked working trees
	CreateSymlink bool
}

// InitRepository creates the .git layout at the given path and returns
// a handle to it. Running it again on an existing repository succeeds
// without touching what's already there
func InitRepository(repoPath string) (*Repository, error) {
	return InitRepositoryWithOptions(repoPath, InitOptions{})
}

// InitRepositoryWithOptions creates the .git layout at the given path
// using the provided options
func InitRepositoryWithOptions(repoPath string, opts InitOptions) (*Repository, error) {
	cfg, err := config.LoadConfigSkipEnv(config.LoadConfigOptions{
		WorkTreePath:     repoPath,
		GitDirPath:       repoPath,
		IsBare:           opts.IsBare,
		SkipGitDirLookUp: true,
	})
	if err != nil {
		return nil, xerrors.Errorf("could not resolve repository config: %w", err)
	}

	db, err := backend.NewFS(cfg)
	if err != nil {
		return nil, xerrors.Errorf("could not open object database: %w", err)
	}

	if err := db.InitWithOptions(ginternals.Master, backend.InitOptions{
		CreateSymlink: opts.CreateSymlink,
	}); err != nil {
		return nil, xerrors.Errorf("could not initialize repository: %w", err)
	}

	r := &Repository{cfg: cfg, db: db}
	if !opts.IsBare {
		r.wt = cfg.FS
	}
	return r, nil
}

// OpenRepository loads an existing repository from the given path
func OpenRepository(repoPath string) (*Repository, error) {
	return OpenRepositoryWithOptions(repoPath, OpenOptions{})
}

// OpenOptions holds the optional parameters used to open a repository
type OpenOptions struct {
	// IsBare states whether the repository has no working tree
	IsBare bool
}

// OpenRepositoryWithOptions loads an existing repository from the
// given path using the provided options
func OpenRepositoryWithOptions(repoPath string, opts OpenOptions) (*Repository, error) {
	cfg, err := config.LoadConfig(env.NewFromOs(), config.LoadConfigOptions{
		WorkTreePath: repoPath,
		GitDirPath:   repoPath,
		IsBare:       opts.IsBare,
	})
	if err != nil {
		return nil, xerrors.Errorf("could not resolve repository config: %w", err)
	}

	db, err := backend.NewFS(cfg)
	if err != nil {
		return nil, xerrors.Errorf("could not open object database: %w", err)
	}

	// Since we can't reliably check for the directory's existence
	// across every afero.Fs implementation, we check for HEAD instead:
	// every valid repository has one.
	if _, err := db.Reference(ginternals.Head); err != nil {
		return nil, ErrRepositoryNotExist
	}

	r := &Repository{cfg: cfg, db: db}
	if !opts.IsBare {
		r.wt = cfg.FS
	}
	return r, nil
}

// IsBare returns whether the repository has no working tree
func (r *Repository) IsBare() bool {
	return r.wt == nil
}

// Path returns the path to the .git directory
func (r *Repository) Path() string {
	return r.db.Path()
}

// Config returns the repository's resolved configuration
func (r *Repository) Config() *config.Config {
	return r.cfg
}

// Backend returns the object database backend powering this repository
func (r *Repository) Backend() backend.Backend {
	return r.db
}

// Close releases any resource held by the repository
func (r *Repository) Close() error {
	return r.db.Close()
}

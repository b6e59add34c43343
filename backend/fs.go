package backend

import (
	"sync"

	"github.com/kgit-project/kgit/ginternals"
	"github.com/kgit-project/kgit/ginternals/config"
	"github.com/kgit-project/kgit/internal/cache"
	"github.com/kgit-project/kgit/internal/syncutil"
	"github.com/spf13/afero"
)

// we make sure the struct implements the interface
var _ Backend = (*FS)(nil)

// defaultCacheSize is the amount of recently-read objects kept in
// memory by FS.cache
const defaultCacheSize = 1000

// defaultMutexCount is the amount of stripes used by the objectMu lock,
// keyed by the bytes of an Oid
const defaultMutexCount = 64

// FS is a Backend implementation that stores objects and references on
// a filesystem abstracted by afero.Fs
type FS struct {
	config *config.Config
	fs     afero.Fs

	cache    *cache.LRU
	objectMu *syncutil.NamedMutex

	// looseObjects tracks the oids of the loose objects we know about,
	// populated lazily as objects are read or written
	looseObjects sync.Map
	// refs holds the content of every reference we've loaded, keyed by
	// its UNIX-style full name (ex. "refs/heads/master", "HEAD")
	refs sync.Map
}

// NewFS returns a new FS backend using the filesystem described by cfg
func NewFS(cfg *config.Config) (*FS, error) {
	fs := cfg.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	b := &FS{
		config:   cfg,
		fs:       fs,
		cache:    cache.NewLRU(defaultCacheSize),
		objectMu: syncutil.NewNamedMutex(defaultMutexCount),
	}

	if err := b.loadLooseObject(); err != nil {
		return nil, err
	}
	if err := b.loadRefs(); err != nil {
		return nil, err
	}
	return b, nil
}

// Close frees the resources held by the backend
func (b *FS) Close() error {
	return nil
}

// Path returns the path to the .git directory used by the backend
func (b *FS) Path() string {
	return ginternals.DotGitPath(b.config)
}

// ObjectsPath returns the path to the directory containing the objects
func (b *FS) ObjectsPath() string {
	return ginternals.ObjectsPath(b.config)
}

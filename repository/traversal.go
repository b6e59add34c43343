package repository

import (
	"errors"
	"path/filepath"
	"sort"

	"github.com/kgit-project/kgit/ginternals"
	"github.com/kgit-project/kgit/ginternals/object"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Reference returns a stored reference from its name
func (r *Repository) Reference(name string) (*ginternals.Reference, error) {
	return r.db.Reference(name)
}

// WriteReference persists the given reference, overwriting it if it
// already exists
func (r *Repository) WriteReference(ref *ginternals.Reference) error {
	return r.db.WriteReference(ref)
}

// Object returns the object matching the given oid
func (r *Repository) Object(oid ginternals.Oid) (*object.Object, error) {
	return r.db.Object(oid)
}

// WriteObject persists the given object and returns its oid
func (r *Repository) WriteObject(o *object.Object) (ginternals.Oid, error) {
	return r.db.WriteObject(o)
}

// RefInfo represents a single reference, as returned by ListReferences.
// Unresolved is set when the reference's chain ends at a file that
// doesn't exist yet (e.g. HEAD pointing at a branch with no commits);
// Target is the zero Oid in that case.
type RefInfo struct {
	Name       string
	Target     ginternals.Oid
	Unresolved bool
}

// ListReferences walks every known reference and returns them resolved
// to their final Oid, as a flat list sorted by full name. A reference whose chain ends at a missing file
// (an unborn branch) is surfaced with Unresolved set rather than being
// dropped; a reference that is outright broken (a cycle, invalid
// content) is skipped by the underlying backend walk.
func (r *Repository) ListReferences() ([]RefInfo, error) {
	var infos []RefInfo
	err := r.db.WalkReferences(func(ref *ginternals.Reference) error {
		infos = append(infos, RefInfo{
			Name:       ref.Name(),
			Target:     ref.Target(),
			Unresolved: ref.Unresolved(),
		})
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("could not list references: %w", err)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// CommitWalkFunc is invoked once per commit visited by WalkCommits
type CommitWalkFunc func(c *object.Commit) error

// WalkCommitStop can be returned by a CommitWalkFunc to stop the walk
// early without it being treated as an error
var WalkCommitStop = errors.New("stop walking") //nolint:revive

var (
	// ErrNotADirectory is returned by Checkout when its destination
	// already exists and isn't a directory
	ErrNotADirectory = errors.New("checkout destination is not a directory")
	// ErrNotEmpty is returned by Checkout when its destination is an
	// existing, non-empty directory
	ErrNotEmpty = errors.New("checkout destination is not empty")
)

// WalkCommits visits the commit DAG starting at the given Oid,
// following every parent link, visiting each commit exactly once
func (r *Repository) WalkCommits(start ginternals.Oid, f CommitWalkFunc) error {
	visited := map[ginternals.Oid]struct{}{}
	queue := []ginternals.Oid{start}

	for len(queue) > 0 {
		oid := queue[0]
		queue = queue[1:]

		if _, ok := visited[oid]; ok {
			continue
		}
		visited[oid] = struct{}{}

		o, err := r.db.Object(oid)
		if err != nil {
			return xerrors.Errorf("could not get commit %s: %w", oid.String(), err)
		}
		c, err := o.AsCommit()
		if err != nil {
			return xerrors.Errorf("object %s is not a commit: %w", oid.String(), err)
		}

		if err := f(c); err != nil {
			if errors.Is(err, WalkCommitStop) {
				return nil
			}
			return err
		}

		queue = append(queue, c.ParentIDs()...)
	}
	return nil
}

// Checkout materializes the tree pointed at by treeOrCommitID into
// destDir on the given filesystem, writing blob content and
// recursing into subtrees. Tree-record modes are read but never
// applied to the permission of the written files. Gitlink entries are
// skipped since submodules are out of scope. destDir must be either
// non-existent (it is then created) or an existing empty directory;
// otherwise Checkout returns ErrNotADirectory or ErrNotEmpty.
func (r *Repository) Checkout(treeOrCommitID ginternals.Oid, destFS afero.Fs, destDir string) error {
	o, err := r.db.Object(treeOrCommitID)
	if err != nil {
		return xerrors.Errorf("could not get object %s: %w", treeOrCommitID.String(), err)
	}

	treeID := treeOrCommitID
	if o.Type() == object.TypeCommit {
		c, cerr := o.AsCommit()
		if cerr != nil {
			return xerrors.Errorf("object %s is not a commit: %w", treeOrCommitID.String(), cerr)
		}
		treeID = c.TreeID()
	}

	if err := checkCheckoutDest(destFS, destDir); err != nil {
		return err
	}

	return r.checkoutTree(treeID, destFS, destDir)
}

// checkCheckoutDest enforces that destDir is either non-existent or an
// existing empty directory
func checkCheckoutDest(destFS afero.Fs, destDir string) error {
	info, err := destFS.Stat(destDir)
	if err != nil {
		if afero.IsNotExist(err) {
			return nil
		}
		return xerrors.Errorf("could not stat checkout destination %s: %w", destDir, err)
	}
	if !info.IsDir() {
		return xerrors.Errorf("%s: %w", destDir, ErrNotADirectory)
	}

	entries, err := afero.ReadDir(destFS, destDir)
	if err != nil {
		return xerrors.Errorf("could not read checkout destination %s: %w", destDir, err)
	}
	if len(entries) > 0 {
		return xerrors.Errorf("%s: %w", destDir, ErrNotEmpty)
	}
	return nil
}

func (r *Repository) checkoutTree(treeID ginternals.Oid, destFS afero.Fs, destDir string) error {
	o, err := r.db.Object(treeID)
	if err != nil {
		return xerrors.Errorf("could not get tree %s: %w", treeID.String(), err)
	}
	tree, err := o.AsTree()
	if err != nil {
		return xerrors.Errorf("object %s is not a tree: %w", treeID.String(), err)
	}

	if err := destFS.MkdirAll(destDir, 0o755); err != nil {
		return xerrors.Errorf("could not create directory %s: %w", destDir, err)
	}

	for _, entry := range tree.Entries() {
		dest := filepath.Join(destDir, entry.Path)

		switch entry.Mode {
		case object.ModeGitLink:
			// submodules are a non-goal: we skip gitlink entries rather
			// than attempting to resolve them
			continue
		case object.ModeDirectory:
			if err := r.checkoutTree(entry.ID, destFS, dest); err != nil {
				return err
			}
			continue
		}

		eo, err := r.db.Object(entry.ID)
		if err != nil {
			return xerrors.Errorf("could not get blob %s: %w", entry.ID.String(), err)
		}
		if err := afero.WriteFile(destFS, dest, eo.Bytes(), 0o644); err != nil {
			return xerrors.Errorf("could not write %s: %w", dest, err)
		}
	}
	return nil
}

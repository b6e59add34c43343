package object

import (
	"fmt"

	"github.com/kgit-project/kgit/ginternals"
)

// kvlm header keys used by commit objects
const (
	commitKeyTree      = "tree"
	commitKeyParent    = "parent"
	commitKeyAuthor    = "author"
	commitKeyCommitter = "committer"
	commitKeyGPGSig    = "gpgsig"
)

// CommitOptions represents all the optional data available to create a commit
type CommitOptions struct {
	Message string
	GPGSig  string
	// Committer represent the person creating the commit.
	// If not provided, the author will be used as committer
	Committer Signature
	ParentsID []ginternals.Oid
}

// Commit represents a commit object. Its on-disk body is a kvlm: an
// ordered tree/parent*/author/committer/gpgsig? header section
// followed by a blank line and the commit message.
type Commit struct {
	rawObject *Object
	kv        *kvlm

	author    Signature
	committer Signature

	parentIDs []ginternals.Oid
	treeID    ginternals.Oid
}

// NewCommit creates a new Commit object.
// Any provided Oids won't be checked
func NewCommit(treeID ginternals.Oid, author Signature, opts *CommitOptions) *Commit {
	c := &Commit{
		treeID:    treeID,
		author:    author,
		committer: opts.Committer,
		parentIDs: opts.ParentsID,
	}

	if c.committer.IsZero() {
		c.committer = author
	}

	c.kv = newKVLM()
	c.kv.message = opts.Message
	c.kv.set(commitKeyTree, treeID.String())
	for _, p := range c.parentIDs {
		c.kv.add(commitKeyParent, p.String())
	}
	c.kv.set(commitKeyAuthor, c.author.String())
	c.kv.set(commitKeyCommitter, c.committer.String())
	if opts.GPGSig != "" {
		c.kv.set(commitKeyGPGSig, opts.GPGSig)
	}

	c.rawObject = New(TypeCommit, c.kv.serialize())
	return c
}

// NewCommitFromObject creates a commit from a raw object
//
// A commit has following format:
//
// tree {sha}
// parent {sha}
// author {author_name} <{author_email}> {author_date_seconds} {author_date_timezone}
// committer {committer_name} <{committer_email}> {committer_date_seconds} {committer_date_timezone}
// gpgsig -----BEGIN PGP SIGNATURE-----
// {gpg key over multiple lines}
//  -----END PGP SIGNATURE-----
// {a blank line}
// {commit message}
//
// Note:
// - A commit can have 0, 1, or many parent lines.
//   The very first commit of a repo has no parents,
//   a regular commit has 1 parent, a merge commit has 2 or more.
// - Any header not listed above is preserved as-is, and round-trips
//   through ToObject unchanged.
// - The gpgsig is optional
func NewCommitFromObject(o *Object) (*Commit, error) {
	if o.typ != TypeCommit {
		return nil, fmt.Errorf("type %s is not a commit: %w", o.typ, ErrObjectInvalid)
	}

	kv, err := parseKVLM(o.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not parse commit body: %w", ErrCommitInvalid)
	}

	ci := &Commit{
		rawObject: o,
		kv:        kv,
	}

	treeStr, ok := kv.first(commitKeyTree)
	if !ok {
		return nil, fmt.Errorf("commit has no tree: %w", ErrCommitInvalid)
	}
	ci.treeID, err = ginternals.NewOidFromStr(treeStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse tree id %q: %w", treeStr, err)
	}

	for _, p := range kv.all(commitKeyParent) {
		oid, err := ginternals.NewOidFromStr(p)
		if err != nil {
			return nil, fmt.Errorf("could not parse parent id %q: %w", p, err)
		}
		ci.parentIDs = append(ci.parentIDs, oid)
	}

	authorStr, ok := kv.first(commitKeyAuthor)
	if !ok {
		return nil, fmt.Errorf("commit has no author: %w", ErrCommitInvalid)
	}
	ci.author, err = NewSignatureFromBytes([]byte(authorStr))
	if err != nil {
		return nil, fmt.Errorf("could not parse author signature [%s]: %w", authorStr, err)
	}

	if committerStr, ok := kv.first(commitKeyCommitter); ok {
		ci.committer, err = NewSignatureFromBytes([]byte(committerStr))
		if err != nil {
			return nil, fmt.Errorf("could not parse committer signature [%s]: %w", committerStr, err)
		}
	} else {
		ci.committer = ci.author
	}

	return ci, nil
}

// ID returns the SHA of the commit object
func (c *Commit) ID() ginternals.Oid {
	return c.rawObject.ID()
}

// Author returns the Signature of the person that made the changes
func (c *Commit) Author() Signature {
	return c.author
}

// Committer returns the Signature of the person that created the commit
func (c *Commit) Committer() Signature {
	return c.committer
}

// Message returns the commit's message
func (c *Commit) Message() string {
	return c.kv.message
}

// ParentIDs returns the list of SHA of the parent commits (if any)
// - The first commit of an orphan branch has 0 parents
// - A regular commit or the result of a fast-forward merge has 1 parent
// - A true merge (no fast-forward) has 2 or more parents
func (c *Commit) ParentIDs() []ginternals.Oid {
	out := make([]ginternals.Oid, len(c.parentIDs))
	copy(out, c.parentIDs)
	return out
}

// TreeID returns the SHA of the commit's tree
func (c *Commit) TreeID() ginternals.Oid {
	return c.treeID
}

// GPGSig returns the GPG signature of the commit, if any
func (c *Commit) GPGSig() string {
	v, _ := c.kv.first(commitKeyGPGSig)
	return v
}

// Header returns every value set for the given header key, in the
// order they appear in the commit. This exposes any header that
// isn't one of tree/parent/author/committer/gpgsig, which Commit
// doesn't otherwise surface through a typed accessor.
func (c *Commit) Header(key string) []string {
	return c.kv.all(key)
}

// ToObject returns the underlying Object
func (c *Commit) ToObject() *Object {
	if c.rawObject != nil {
		return c.rawObject
	}
	c.rawObject = New(TypeCommit, c.kv.serialize())
	return c.rawObject
}

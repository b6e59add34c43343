package object

import (
	"fmt"

	"github.com/kgit-project/kgit/ginternals"
)

// kvlm header keys used by tag objects
const (
	tagKeyObject = "object"
	tagKeyType   = "type"
	tagKeyTag    = "tag"
	tagKeyTagger = "tagger"
	tagKeyGPGSig = "gpgsig"
)

// TagParams represents all the data needed to create a Tag
type TagParams struct {
	Target  *Object
	Name    string
	Tagger  Signature
	Message string
	GPGSig  string
}

// Tag represents an annotated Tag object. Its on-disk body is a kvlm:
// object/type/tag/tagger/gpgsig? headers followed by a blank line and
// the tag message. A lightweight tag (a ref pointing straight at a
// commit, with no object of its own) is not represented by this type.
type Tag struct {
	rawObject *Object
	kv        *kvlm

	tagger Signature
	target ginternals.Oid
	typ    Type
}

// NewTag creates a new Tag object
func NewTag(p *TagParams) *Tag {
	t := &Tag{
		target: p.Target.ID(),
		typ:    p.Target.Type(),
		tagger: p.Tagger,
	}

	t.kv = newKVLM()
	t.kv.message = p.Message
	t.kv.set(tagKeyObject, t.target.String())
	t.kv.set(tagKeyType, t.typ.String())
	t.kv.set(tagKeyTag, p.Name)
	t.kv.set(tagKeyTagger, t.tagger.String())
	if p.GPGSig != "" {
		t.kv.set(tagKeyGPGSig, p.GPGSig)
	}

	t.rawObject = New(TypeTag, t.kv.serialize())
	return t
}

// NewTagFromObject creates a new Tag from a raw git object
//
// A tag has following format:
//
// object {sha}
// type {target_object_type}
// tag {tag_name}
// tagger {author_name} <{author_email}> {author_date_seconds} {author_date_timezone}
// gpgsig -----BEGIN PGP SIGNATURE-----
// {gpg key over multiple lines}
//  -----END PGP SIGNATURE-----
// {a blank line}
// {tag message}
//
// Note:
// - Any header not listed above is preserved as-is, and round-trips
//   through ToObject unchanged.
// - The gpgsig is optional
func NewTagFromObject(o *Object) (*Tag, error) {
	if o.typ != TypeTag {
		return nil, fmt.Errorf("type %s is not a tag: %w", o.typ, ErrObjectInvalid)
	}

	kv, err := parseKVLM(o.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not parse tag body: %w", ErrTagInvalid)
	}

	tag := &Tag{
		rawObject: o,
		kv:        kv,
	}

	targetStr, ok := kv.first(tagKeyObject)
	if !ok {
		return nil, fmt.Errorf("tag has no target: %w", ErrTagInvalid)
	}
	tag.target, err = ginternals.NewOidFromStr(targetStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse target id %q: %w", targetStr, err)
	}

	typStr, ok := kv.first(tagKeyType)
	if !ok {
		return nil, fmt.Errorf("tag has no type: %w", ErrTagInvalid)
	}
	tag.typ, err = NewTypeFromString(typStr)
	if err != nil {
		return nil, fmt.Errorf("invalid object type %q: %w", typStr, err)
	}

	taggerStr, ok := kv.first(tagKeyTagger)
	if !ok {
		return nil, fmt.Errorf("tag has no tagger: %w", ErrTagInvalid)
	}
	tag.tagger, err = NewSignatureFromBytes([]byte(taggerStr))
	if err != nil {
		return nil, fmt.Errorf("could not parse tagger [%s]: %w", taggerStr, err)
	}

	return tag, nil
}

// ID returns the SHA of the tag object
func (t *Tag) ID() ginternals.Oid {
	return t.rawObject.ID()
}

// Target returns the ID of the object targeted by the tag
func (t *Tag) Target() ginternals.Oid {
	return t.target
}

// Type returns the type of the targeted object
func (t *Tag) Type() Type {
	return t.typ
}

// Name returns the tag's name
func (t *Tag) Name() string {
	v, _ := t.kv.first(tagKeyTag)
	return v
}

// Tagger returns the Signature of the person that created the tag
func (t *Tag) Tagger() Signature {
	return t.tagger
}

// Message returns the tag's message
func (t *Tag) Message() string {
	return t.kv.message
}

// GPGSig returns the GPG signature of the tag, if any
func (t *Tag) GPGSig() string {
	v, _ := t.kv.first(tagKeyGPGSig)
	return v
}

// Header returns every value set for the given header key, in the
// order they appear in the tag.
func (t *Tag) Header(key string) []string {
	return t.kv.all(key)
}

// ToObject returns the underlying Object
func (t *Tag) ToObject() *Object {
	if t.rawObject != nil {
		return t.rawObject
	}
	t.rawObject = New(TypeTag, t.kv.serialize())
	return t.rawObject
}

package object

import (
	"bytes"
	"fmt"
	"strings"
)

// ErrKVLMInvalid is returned when a commit or tag's key-value-list-with-message
// body could not be parsed
var ErrKVLMInvalid = fmt.Errorf("invalid key-value-list-with-message: %w", ErrObjectInvalid)

// kvlmField is a single key and all the values it was seen with, in
// the order they appeared in the object.
type kvlmField struct {
	key    string
	values []string
}

// kvlm (key-value-list-with-message) is the ordered multimap shared by
// the commit and tag object formats: zero or more "key value" lines,
// where a key may repeat (git emits multiple "parent" lines for a
// merge commit), followed by a blank line and a free-form message.
//
// Key order and repeated-key order are preserved across a
// parse/serialize round-trip; unknown keys (e.g. a future header git
// adds) survive untouched instead of being dropped.
type kvlm struct {
	fields  []*kvlmField
	byKey   map[string]*kvlmField
	message string
}

// newKVLM returns an empty kvlm, ready to be filled with set/add calls
func newKVLM() *kvlm {
	return &kvlm{
		byKey: make(map[string]*kvlmField),
	}
}

// field returns the field for key, creating and appending it if it's
// the first time key is seen
func (k *kvlm) field(key string) *kvlmField {
	f, ok := k.byKey[key]
	if !ok {
		f = &kvlmField{key: key}
		k.byKey[key] = f
		k.fields = append(k.fields, f)
	}
	return f
}

// add appends value to key's list of values, preserving any values
// already set for that key
func (k *kvlm) add(key, value string) {
	f := k.field(key)
	f.values = append(f.values, value)
}

// set replaces key's values with a single value
func (k *kvlm) set(key, value string) {
	f := k.field(key)
	f.values = []string{value}
}

// first returns the first value set for key, and whether key was
// present at all
func (k *kvlm) first(key string) (string, bool) {
	f, ok := k.byKey[key]
	if !ok || len(f.values) == 0 {
		return "", false
	}
	return f.values[0], true
}

// all returns every value set for key, in the order they were added
func (k *kvlm) all(key string) []string {
	f, ok := k.byKey[key]
	if !ok {
		return nil
	}
	out := make([]string, len(f.values))
	copy(out, f.values)
	return out
}

// parseKVLM parses a commit or tag object's body into a kvlm.
//
// The grammar is:
//
//	(key SP value LF)*
//	LF
//	message
//
// A value may span multiple lines: every continuation line starts
// with a single space, which is stripped and replaced by the LF it
// follows (so a folded value's embedded newlines come back exactly as
// they were before folding).
func parseKVLM(raw []byte) (*kvlm, error) {
	k := newKVLM()
	start := 0
	for {
		space := bytes.IndexByte(raw[start:], ' ')
		newline := bytes.IndexByte(raw[start:], '\n')

		// A blank line (newline with nothing before it, or no more
		// keys at all) marks the end of the headers: everything past
		// it is the message.
		if space < 0 || (newline >= 0 && newline < space) {
			if newline != 0 {
				return nil, fmt.Errorf("expected blank line at offset %d: %w", start, ErrKVLMInvalid)
			}
			if start+1 <= len(raw) {
				k.message = string(raw[start+1:])
			}
			return k, nil
		}

		key := string(raw[start : start+space])

		// Continuation lines begin with a space, so keep scanning
		// past embedded newlines until we find one NOT followed by a
		// space.
		end := start + space
		for {
			next := bytes.IndexByte(raw[end+1:], '\n')
			if next < 0 {
				return nil, fmt.Errorf("unterminated value for key %q: %w", key, ErrKVLMInvalid)
			}
			end += next + 1
			if end+1 >= len(raw) || raw[end+1] != ' ' {
				break
			}
		}

		value := string(raw[start+space+1 : end])
		value = strings.ReplaceAll(value, "\n ", "\n")
		k.add(key, value)

		start = end + 1
	}
}

// serialize renders the kvlm back to its on-disk form: every field's
// values, each on its own "key value" line with continuation lines
// re-folded, followed by a blank line and the message.
func (k *kvlm) serialize() []byte {
	buf := new(bytes.Buffer)
	for _, f := range k.fields {
		for _, v := range f.values {
			buf.WriteString(f.key)
			buf.WriteByte(' ')
			buf.WriteString(strings.ReplaceAll(v, "\n", "\n "))
			buf.WriteByte('\n')
		}
	}
	buf.WriteByte('\n')
	buf.WriteString(k.message)
	return buf.Bytes()
}


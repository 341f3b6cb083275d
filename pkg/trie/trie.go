package trie

import (
	"errors"
	"fmt"

	"github.com/khalid-nowaf/triemap/pkg/alphabet"
)

// ErrAlphabet is returned when a key contains a symbol the configured
// alphabet has no slot for. It is raised before any mutation happens.
var ErrAlphabet = errors.New("symbol is not a member of the alphabet")

// ErrKeyNotFound is returned by At when the key's path does not end in a
// valued node. Search reports the same situation as a nil result instead.
var ErrKeyNotFound = errors.New("key not found")

// Trie is a map from string keys over a fixed alphabet to values of type V.
// It owns exactly one root node, which is always present.
type Trie[V any] struct {
	alphabet alphabet.Alphabet
	root     *Node[V]
}

// Item is one key/value pair held by the trie.
type Item[V any] struct {
	Key   string
	Value V
}

// New creates an empty trie over the given alphabet.
func New[V any](ab alphabet.Alphabet) *Trie[V] {
	return &Trie[V]{
		alphabet: ab,
		root:     newNode[V](nil, ab),
	}
}

// Alphabet returns the symbol policy the trie was built over.
func (t *Trie[V]) Alphabet() alphabet.Alphabet {
	return t.alphabet
}

// Root returns the root node, for read-only inspection.
func (t *Trie[V]) Root() *Node[V] {
	return t.root
}

// Empty reports whether the trie holds no values at all.
func (t *Trie[V]) Empty() bool {
	return !t.root.HasValue() && !t.root.HasChildren()
}

// checkKey validates every symbol of key against the alphabet, so that no
// operation mutates anything before rejecting a bad key.
func (t *Trie[V]) checkKey(key string) error {
	for _, r := range key {
		if t.alphabet.Ord(r) == alphabet.Invalid {
			return fmt.Errorf("key %q: symbol %q: %w", key, r, ErrAlphabet)
		}
	}
	return nil
}

// Search returns a pointer to the value stored at key, or nil when the key
// holds no value. The pointer stays valid until the key is removed.
func (t *Trie[V]) Search(key string) (*V, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}
	path := t.root.path(key)
	last := path[len(path)-1]
	if last == nil {
		return nil, nil
	}
	return last.value, nil
}

// At returns a pointer to the value stored at key, failing with
// ErrKeyNotFound when the path or the value is absent. Use Search when an
// absent key is a normal case rather than an error.
func (t *Trie[V]) At(key string) (*V, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}
	path := t.root.path(key)
	last := path[len(path)-1]
	if last == nil || !last.HasValue() {
		return nil, fmt.Errorf("key %q: %w", key, ErrKeyNotFound)
	}
	return last.value, nil
}

// Insert stores value at key, creating missing nodes along the path on
// demand. It reports true when a new value was installed and false when the
// key already held one; an existing value is never overwritten. Callers
// wanting replacement semantics Remove first, or mutate through GetOrInsert.
func (t *Trie[V]) Insert(key string, value V) (bool, error) {
	if err := t.checkKey(key); err != nil {
		return false, err
	}
	node := t.root
	for _, r := range key {
		next := node.childAt(r)
		if next == nil {
			next = node.createChild(r)
		}
		node = next
	}
	if node.HasValue() {
		return false, nil
	}
	node.setValue(value)
	return true, nil
}

// Remove clears the value at key and prunes every ancestor left with
// neither a value nor children, walking from the key's node back toward the
// root. The cascade stops at the first node still carrying a value or
// another branch, and never detaches the root. Removing a key that was
// never inserted is a no-op.
func (t *Trie[V]) Remove(key string) error {
	if err := t.checkKey(key); err != nil {
		return err
	}
	path := t.root.path(key)
	if path[len(path)-1] == nil {
		return nil
	}
	path[len(path)-1].clearValue()

	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		if node.HasValue() || node.HasChildren() || !node.hasParent() {
			return nil
		}
		node.parent.removeChild(node)
	}
	return nil
}

// GetOrInsert returns a mutable pointer to the value at key, installing a
// zero value first when the key holds none. This is the subscript operator
// of map types expressed as a method.
func (t *Trie[V]) GetOrInsert(key string) (*V, error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}
	node := t.root
	for _, r := range key {
		next := node.childAt(r)
		if next == nil {
			next = node.createChild(r)
		}
		node = next
	}
	if !node.HasValue() {
		node.setZeroValue()
	}
	return node.value, nil
}

// WalkValues applies f to every key that currently holds a value, in
// depth-first slot order. The pointer passed to f aliases the stored value,
// so f may mutate it in place.
func (t *Trie[V]) WalkValues(f func(key string, value *V)) {
	walkValues(t.root, nil, f)
}

func walkValues[V any](node *Node[V], prefix []rune, f func(key string, value *V)) {
	if node.hasParent() {
		prefix = append(prefix, node.key)
	}
	if node.HasValue() {
		f(string(prefix), node.value)
	}
	node.ForEachChild(func(child *Node[V]) {
		walkValues(child, prefix, f)
	})
}

// Items returns every key/value pair held by the trie. Values are copied
// out; the order is depth-first over slot indexes and should be treated as
// unspecified.
func (t *Trie[V]) Items() []Item[V] {
	items := []Item[V]{}
	t.WalkValues(func(key string, value *V) {
		items = append(items, Item[V]{Key: key, Value: *value})
	})
	return items
}

// Len returns the number of keys currently holding a value.
func (t *Trie[V]) Len() int {
	n := 0
	t.WalkValues(func(string, *V) {
		n++
	})
	return n
}

// Clear removes all children and the root's own value, leaving the trie
// empty.
func (t *Trie[V]) Clear() {
	t.root.removeChildren()
	t.root.clearValue()
}

// Clone returns a structural deep copy: node topology is recreated and
// every value is copied by assignment, so mutating one trie never shows in
// the other.
func (t *Trie[V]) Clone() *Trie[V] {
	clone := New[V](t.alphabet)
	copyInto(clone.root, t.root)
	return clone
}

func copyInto[V any](dst, src *Node[V]) {
	if !dst.HasValue() && src.HasValue() {
		dst.setValue(*src.value)
	}
	src.ForEachChild(func(child *Node[V]) {
		copyInto(dst.createChild(child.key), child)
	})
}

package trie

import (
	"fmt"

	"github.com/khalid-nowaf/triemap/pkg/alphabet"
)

// Node is one position in the symbol sequence. It owns its children and its
// optional value; the parent pointer is non-owning and only used to walk
// upward while pruning.
type Node[V any] struct {
	parent   *Node[V]          // nil at the root
	children []*Node[V]        // fixed fan-out, indexed by alphabet.Ord
	key      rune              // symbol on the edge from parent, undefined at the root
	value    *V                // nil when no key terminates here
	alphabet alphabet.Alphabet // shared policy, set once at construction
}

func newNode[V any](parent *Node[V], ab alphabet.Alphabet) *Node[V] {
	return &Node[V]{
		parent:   parent,
		children: make([]*Node[V], ab.Size()),
		alphabet: ab,
	}
}

// Child returns the child reached over symbol r, or nil if the slot is
// empty. It fails with ErrAlphabet if r is not a member of the alphabet.
func (n *Node[V]) Child(r rune) (*Node[V], error) {
	slot := n.alphabet.Ord(r)
	if slot == alphabet.Invalid {
		return nil, fmt.Errorf("symbol %q: %w", r, ErrAlphabet)
	}
	return n.children[slot], nil
}

// childAt is Child for callers that already validated the symbol.
func (n *Node[V]) childAt(r rune) *Node[V] {
	return n.children[n.alphabet.Ord(r)]
}

// createChild allocates a new child owned by n at the slot of r and returns
// it. The caller must have checked that r is valid and the slot is empty.
func (n *Node[V]) createChild(r rune) *Node[V] {
	child := newNode(n, n.alphabet)
	child.key = r
	n.children[n.alphabet.Ord(r)] = child
	return child
}

// removeChild releases the slot whose child is identical to the given node,
// dropping the whole subtree hanging off it. Reports whether a slot matched.
func (n *Node[V]) removeChild(child *Node[V]) bool {
	for slot, c := range n.children {
		if c == child {
			n.children[slot] = nil
			return true
		}
	}
	return false
}

func (n *Node[V]) setValue(v V) {
	n.value = &v
}

func (n *Node[V]) setZeroValue() {
	n.value = new(V)
}

func (n *Node[V]) clearValue() {
	n.value = nil
}

func (n *Node[V]) removeChildren() {
	for slot := range n.children {
		n.children[slot] = nil
	}
}

// Key returns the symbol labeling the edge from the parent to this node.
// Meaningless at the root.
func (n *Node[V]) Key() rune {
	return n.key
}

// Value returns the value held at this node, or nil.
func (n *Node[V]) Value() *V {
	return n.value
}

// Parent returns the owning parent node, nil at the root.
func (n *Node[V]) Parent() *Node[V] {
	return n.parent
}

// HasValue reports whether a key terminates at this node.
func (n *Node[V]) HasValue() bool {
	return n.value != nil
}

// HasChildren reports whether any child slot is occupied.
func (n *Node[V]) HasChildren() bool {
	for _, c := range n.children {
		if c != nil {
			return true
		}
	}
	return false
}

func (n *Node[V]) hasParent() bool {
	return n.parent != nil
}

// Depth returns the number of symbols between the root and this node.
func (n *Node[V]) Depth() int {
	depth := 0
	for current := n; current.parent != nil; current = current.parent {
		depth++
	}
	return depth
}

// ForEachChild applies f to each present child of the node, in slot order.
// will return the original node n
func (n *Node[V]) ForEachChild(f func(child *Node[V])) *Node[V] {
	for _, c := range n.children {
		if c != nil {
			f(c)
		}
	}
	return n
}

// path walks from n following the symbols of key and returns the visited
// nodes starting with n itself. When a symbol's slot turns out empty the
// walk stops early and appends a single nil marker, so a full path has
// one node per symbol plus the start node and a non-nil tail.
// This is the shared traversal primitive under Search, At, and Remove;
// callers validate the key against the alphabet first.
func (n *Node[V]) path(key string) []*Node[V] {
	path := []*Node[V]{n}
	current := n
	for _, r := range key {
		current = current.childAt(r)
		path = append(path, current)
		if current == nil {
			return path
		}
	}
	return path
}

// ## Overview
// Package trie implements a generic prefix tree mapping string keys over a
// fixed, caller-defined alphabet to values. The alphabet is a policy object
// supplying a constant fan-out and a rune-to-slot mapping; the trie itself
// never interprets symbols. Every node exclusively owns its children and its
// optional value, and keeps a non-owning pointer back to its parent so that
// removals can prune dead branches bottom-up. A node with neither a value
// nor children is never left reachable from the root.
//
// ## Example usage:
//
//	words := trie.New[int](alphabet.Lower())
//
//	words.Insert("go", 1)
//	words.Insert("gopher", 2)
//
//	if v, _ := words.Search("go"); v != nil {
//	    fmt.Println(*v) // Output: 1
//	}
//
//	// get-or-insert-default, the subscript operator of map types
//	count, _ := words.GetOrInsert("gondola")
//	*count++
//
//	words.Remove("gopher") // prunes the unshared "pher" branch
//
//	for _, item := range words.Items() {
//	    fmt.Println(item.Key, item.Value)
//	}
//
// Keys are validated against the alphabet before any mutation; operations
// return ErrAlphabet for a key containing a non-member symbol. A single
// Trie must not be used from multiple goroutines without external locking.
package trie

package trie

import (
	"math/rand"
	"testing"

	"github.com/khalid-nowaf/triemap/pkg/alphabet"
	"github.com/stretchr/testify/assert"
)

// TestNewTrie verifies a new trie is empty and owns a root.
func TestNewTrie(t *testing.T) {
	words := New[int](alphabet.Lower())
	assert.NotNil(t, words.Root(), "the root node always exists")
	assert.True(t, words.Empty(), "a new trie should be empty")
	assert.Equal(t, 0, words.Len(), "a new trie should hold no values")
}

// TestAlphabetAccessor verifies the trie hands back the policy it was
// constructed over.
func TestAlphabetAccessor(t *testing.T) {
	ab := alphabet.Digits()
	numbers := New[int](ab)
	assert.Equal(t, ab, numbers.Alphabet(), "Alphabet should round-trip the constructor argument")
}

// TestInsertAndSearch verifies the round-trip property: whatever goes in
// comes back out under the same key.
func TestInsertAndSearch(t *testing.T) {
	words := New[int](alphabet.Lower())

	added, err := words.Insert("cat", 1)
	assert.NoError(t, err)
	assert.True(t, added, "first insert should install a new value")

	v, err := words.Search("cat")
	assert.NoError(t, err)
	assert.NotNil(t, v, "inserted key should be found")
	assert.Equal(t, 1, *v, "search should yield the inserted value")

	missing, err := words.Search("ca")
	assert.NoError(t, err, "a bare prefix is not an error")
	assert.Nil(t, missing, "a bare prefix holds no value")

	missing, err = words.Search("catalog")
	assert.NoError(t, err)
	assert.Nil(t, missing, "an extension of an inserted key holds no value")
}

// TestInsertNoOverwrite verifies that a second insert under the same key is
// rejected and keeps the first value.
func TestInsertNoOverwrite(t *testing.T) {
	words := New[int](alphabet.Lower())

	added, _ := words.Insert("cat", 1)
	assert.True(t, added, "first insert should report a new value")

	added, err := words.Insert("cat", 2)
	assert.NoError(t, err)
	assert.False(t, added, "second insert should report the value already existed")

	v, _ := words.Search("cat")
	assert.Equal(t, 1, *v, "the original value must survive")
}

// TestAt verifies the throwing accessor variant.
func TestAt(t *testing.T) {
	words := New[int](alphabet.Lower())
	words.Insert("cat", 7)

	v, err := words.At("cat")
	assert.NoError(t, err)
	assert.Equal(t, 7, *v, "At should yield the stored value")

	_, err = words.At("dog")
	assert.ErrorIs(t, err, ErrKeyNotFound, "missing path should fail with ErrKeyNotFound")

	_, err = words.At("ca")
	assert.ErrorIs(t, err, ErrKeyNotFound, "value-less prefix node should fail with ErrKeyNotFound")
}

// TestAlphabetGuard verifies every key-accepting operation rejects keys
// with non-member symbols before mutating anything.
func TestAlphabetGuard(t *testing.T) {
	words := New[int](alphabet.Lower())

	_, err := words.Insert("ca7", 1)
	assert.ErrorIs(t, err, ErrAlphabet, "Insert should reject a non-member symbol")
	assert.True(t, words.Empty(), "a rejected insert must not create nodes")

	_, err = words.Search("ca7")
	assert.ErrorIs(t, err, ErrAlphabet, "Search should reject a non-member symbol")

	_, err = words.At("ca7")
	assert.ErrorIs(t, err, ErrAlphabet, "At should reject a non-member symbol")

	err = words.Remove("ca7")
	assert.ErrorIs(t, err, ErrAlphabet, "Remove should reject a non-member symbol")

	_, err = words.GetOrInsert("ca7")
	assert.ErrorIs(t, err, ErrAlphabet, "GetOrInsert should reject a non-member symbol")
}

// TestRemovePruning verifies the bottom-up cascade: removing a key drops
// every node that served only that key, but keeps shared prefixes alive.
func TestRemovePruning(t *testing.T) {
	words := New[int](alphabet.Lower())
	words.Insert("cat", 1)
	words.Insert("car", 2)

	assert.NoError(t, words.Remove("cat"))

	v, _ := words.Search("car")
	assert.NotNil(t, v, "the sibling key must survive")
	assert.Equal(t, 2, *v)

	// the "ca" chain is shared with "car" and must stay, but the 't' leaf
	// must be gone
	ca := words.Root().childAt('c').childAt('a')
	assert.NotNil(t, ca, "shared prefix nodes must remain")
	assert.Nil(t, ca.childAt('t'), "the dead suffix must be pruned")
	assert.NotNil(t, ca.childAt('r'), "the live suffix must remain")

	assert.NoError(t, words.Remove("car"))
	assert.True(t, words.Empty(), "removing the last key should empty the trie completely")
}

// TestRemoveKeepsValuedAncestors verifies the cascade stops at a node that
// still holds a value.
func TestRemoveKeepsValuedAncestors(t *testing.T) {
	words := New[int](alphabet.Lower())
	words.Insert("go", 1)
	words.Insert("gone", 2)

	assert.NoError(t, words.Remove("gone"))

	v, _ := words.Search("go")
	assert.NotNil(t, v, "the prefix key must survive")
	assert.Nil(t, words.Root().childAt('g').childAt('o').childAt('n'), "the unshared chain must be pruned")
}

// TestRemoveIdempotent verifies removing absent keys is a silent no-op.
func TestRemoveIdempotent(t *testing.T) {
	words := New[int](alphabet.Lower())
	words.Insert("cat", 1)

	assert.NoError(t, words.Remove("dog"), "removing a never-inserted key is not an error")
	assert.NoError(t, words.Remove("cat"))
	assert.NoError(t, words.Remove("cat"), "removing the same key twice is not an error")
	assert.True(t, words.Empty())
}

// TestEmptyKey verifies the empty key stores its value at the root.
func TestEmptyKey(t *testing.T) {
	words := New[int](alphabet.Lower())

	added, err := words.Insert("", 42)
	assert.NoError(t, err)
	assert.True(t, added)
	assert.False(t, words.Empty(), "a valued root makes the trie non-empty")

	v, _ := words.Search("")
	assert.Equal(t, 42, *v, "the empty key resolves to the root value")

	assert.NoError(t, words.Remove(""))
	assert.True(t, words.Empty(), "clearing the root value empties the trie")
}

// TestGetOrInsert verifies the subscript semantics: absent key gets a zero
// value, and the returned pointer mutates the stored value in place.
func TestGetOrInsert(t *testing.T) {
	words := New[int](alphabet.Lower())

	count, err := words.GetOrInsert("cat")
	assert.NoError(t, err)
	assert.Equal(t, 0, *count, "a miss should install the zero value")

	*count++
	v, _ := words.Search("cat")
	assert.Equal(t, 1, *v, "mutations through the pointer must be visible")

	again, _ := words.GetOrInsert("cat")
	assert.Equal(t, 1, *again, "a hit should return the existing value")
}

// TestItems verifies enumeration completeness over a mixed insert/remove
// sequence. The order of Items is unspecified, so the comparison is
// order-insensitive.
func TestItems(t *testing.T) {
	words := New[int](alphabet.Lower())
	words.Insert("go", 1)
	words.Insert("gone", 2)
	words.Insert("goner", 3)

	assert.ElementsMatch(t, []Item[int]{
		{Key: "go", Value: 1},
		{Key: "gone", Value: 2},
		{Key: "goner", Value: 3},
	}, words.Items(), "every held value should be enumerated exactly once")

	words.Remove("gone")

	assert.ElementsMatch(t, []Item[int]{
		{Key: "go", Value: 1},
		{Key: "goner", Value: 3},
	}, words.Items(), "removed keys must disappear from enumeration")
	assert.Equal(t, 2, words.Len())
}

// TestClear verifies the trie is fully empty after Clear, including a root
// value.
func TestClear(t *testing.T) {
	words := New[int](alphabet.Lower())
	words.Insert("", 1)
	words.Insert("cat", 2)
	words.Insert("car", 3)

	words.Clear()
	assert.True(t, words.Empty(), "Clear should drop all values and children")
	assert.Empty(t, words.Items(), "nothing should be enumerable after Clear")
}

// TestCloneIndependence verifies a clone shares no structure with the
// original: mutations on either side stay invisible to the other.
func TestCloneIndependence(t *testing.T) {
	original := New[int](alphabet.Lower())
	original.Insert("cat", 1)
	original.Insert("car", 2)

	clone := original.Clone()
	assert.ElementsMatch(t, original.Items(), clone.Items(), "a clone should start structurally equal")

	clone.Insert("dog", 3)
	clone.Remove("cat")
	assert.ElementsMatch(t, []Item[int]{
		{Key: "cat", Value: 1},
		{Key: "car", Value: 2},
	}, original.Items(), "mutating the clone must not touch the original")

	original.Remove("car")
	assert.ElementsMatch(t, []Item[int]{
		{Key: "car", Value: 2},
		{Key: "dog", Value: 3},
	}, clone.Items(), "mutating the original must not touch the clone")
}

// TestWalkValuesMutation verifies WalkValues hands out aliasing pointers.
func TestWalkValuesMutation(t *testing.T) {
	words := New[int](alphabet.Lower())
	words.Insert("a", 1)
	words.Insert("ab", 2)

	words.WalkValues(func(_ string, value *int) {
		*value *= 10
	})

	v, _ := words.Search("ab")
	assert.Equal(t, 20, *v, "in-place mutation during the walk must stick")
}

func BenchmarkInsertWords(b *testing.B) {
	keys := generateRandomKeys(b.N, 3, 12)
	words := New[int](alphabet.Lower())
	b.ResetTimer()

	for i, key := range keys {
		words.Insert(key, i)
	}
}

func BenchmarkSearchWords(b *testing.B) {
	keys := generateRandomKeys(b.N, 3, 12)
	words := New[int](alphabet.Lower())
	for i, key := range keys {
		words.Insert(key, i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		words.Search(keys[rand.Intn(len(keys))])
	}
}

// generateRandomKeys builds n random lowercase keys with lengths in
// [minLen, maxLen].
func generateRandomKeys(n int, minLen int, maxLen int) []string {
	keys := make([]string, n)
	for i := range keys {
		length := rand.Intn(maxLen-minLen+1) + minLen
		key := make([]rune, length)
		for j := range key {
			key[j] = rune('a' + rand.Intn(26))
		}
		keys[i] = string(key)
	}
	return keys
}

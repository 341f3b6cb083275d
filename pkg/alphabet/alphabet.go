// Package alphabet defines the symbol policy a trie is built over.
// An Alphabet maps every valid symbol to a stable child-slot index in
// [0, Size), and everything else to Invalid. The trie never interprets
// symbols itself, it only asks the alphabet for slot indexes.
package alphabet

import "unicode/utf8"

// Invalid is returned by Ord for a rune that is not a member of the alphabet.
const Invalid = -1

// Alphabet is the policy contract the trie is generic over.
// Ord must be pure, deterministic, and injective over the members:
// two distinct member runes never share a slot.
type Alphabet interface {
	// Size returns the number of distinct symbols, and so the fan-out
	// of every trie node.
	Size() int
	// Ord returns the slot index of r in [0, Size), or Invalid.
	Ord(r rune) int
}

// Runes returns the member symbols of an alphabet in slot order, for tools
// that render symbols rather than index by them. Implementations may
// provide their own `Runes() []rune`; anything else is recovered by
// scanning the rune space for members, which stays cheap because the scan
// stops once every slot is accounted for.
func Runes(a Alphabet) []rune {
	if e, ok := a.(interface{ Runes() []rune }); ok {
		return e.Runes()
	}
	runes := make([]rune, a.Size())
	found := 0
	for r := rune(0); r <= utf8.MaxRune && found < len(runes); r++ {
		if slot := a.Ord(r); slot != Invalid {
			runes[slot] = r
			found++
		}
	}
	return runes
}

// a contiguous inclusive rune range, slot index is the offset from lo
type runeRange struct {
	lo, hi rune
}

func (a runeRange) Size() int {
	return int(a.hi-a.lo) + 1
}

func (a runeRange) Ord(r rune) int {
	if r < a.lo || r > a.hi {
		return Invalid
	}
	return int(r - a.lo)
}

func (a runeRange) Runes() []rune {
	runes := make([]rune, 0, a.Size())
	for r := a.lo; r <= a.hi; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Lower is the ASCII lowercase alphabet 'a'..'z', size 26.
func Lower() Alphabet {
	return runeRange{'a', 'z'}
}

// Digits is the decimal digit alphabet '0'..'9', size 10.
func Digits() Alphabet {
	return runeRange{'0', '9'}
}

// Binary is the two symbol alphabet '0' and '1'.
func Binary() Alphabet {
	return runeRange{'0', '1'}
}

// an arbitrary rune set, slots assigned in first-occurrence order
type runeSet struct {
	slots map[rune]int
}

// New builds an alphabet from an arbitrary set of symbols. Slot indexes
// follow the first occurrence order in the string; duplicate runes collapse
// into their first slot.
//
//	hex := alphabet.New("0123456789abcdef")
func New(symbols string) Alphabet {
	slots := map[rune]int{}
	for _, r := range symbols {
		if _, ok := slots[r]; !ok {
			slots[r] = len(slots)
		}
	}
	return &runeSet{slots: slots}
}

func (a *runeSet) Size() int {
	return len(a.slots)
}

func (a *runeSet) Ord(r rune) int {
	if slot, ok := a.slots[r]; ok {
		return slot
	}
	return Invalid
}

func (a *runeSet) Runes() []rune {
	runes := make([]rune, len(a.slots))
	for r, slot := range a.slots {
		runes[slot] = r
	}
	return runes
}

// Package flexstr layers an either-inline-or-owned choice over the
// length-prefixed inline encoding. A Flex holds its content in an
// inline buffer while it fits and promotes to an owned Go string when
// a mutation would overflow; shrinking operations demote back to the
// inline form. It is meant for strings that only occasionally exceed
// the fixed capacity.
//
// Unlike the inline types, a promoted Flex carries a reference to
// heap memory, so it is not a pure value: copies made while promoted
// share nothing mutable (Go strings are immutable) but the type
// should still be passed by pointer when mutated.
package flexstr

import (
	"unicode/utf8"

	"github.com/rawbytedev/inlinestr"
	"github.com/rawbytedev/inlinestr/internal/common"
)

// Flex is a tagged variant over an inline Tiny and an owned string.
// Invariant: the owned form is in use exactly when the content does
// not fit the inline capacity.
type Flex struct {
	fixed inlinestr.Tiny
	owned string
	heap  bool
}

// Make builds a Flex over an inline buffer of the given size (usable
// capacity size-1). Content longer than the inline capacity is held
// in an owned string; nothing is ever truncated. Malformed input is
// cut at the first invalid byte.
func Make(size int, s string) Flex {
	f := Flex{fixed: inlinestr.NewTiny(size, "")}
	s = s[:common.FitPrefix(s, len(s), false)]
	if len(s) <= f.fixed.Cap() {
		f.fixed = inlinestr.NewTiny(size, s)
	} else {
		f.owned = s
		f.heap = true
	}
	return f
}

// FromTiny wraps an existing inline value.
func FromTiny(t inlinestr.Tiny) Flex { return Flex{fixed: t} }

// IsFixed reports whether the content is held inline.
func (f *Flex) IsFixed() bool { return !f.heap }

// IsOwned reports whether the content is held in an owned string.
func (f *Flex) IsOwned() bool { return f.heap }

// GetTiny returns a copy of the inline value when the content is held
// inline.
func (f *Flex) GetTiny() (inlinestr.Tiny, bool) {
	if f.heap {
		return inlinestr.Tiny{}, false
	}
	return f.fixed, true
}

// TakeString takes ownership of the heap string when promoted,
// leaving an empty inline value behind.
func (f *Flex) TakeString() (string, bool) {
	if !f.heap {
		return "", false
	}
	s := f.owned
	f.owned = ""
	f.heap = false
	f.fixed.Clear()
	return s, true
}

// Len returns the content length in bytes.
func (f *Flex) Len() int {
	if f.heap {
		return len(f.owned)
	}
	return f.fixed.Len()
}

// Cap returns the inline capacity in bytes; content beyond it lives
// on the heap.
func (f *Flex) Cap() int { return f.fixed.Cap() }

// CharLen returns the number of characters in the content.
func (f *Flex) CharLen() int {
	if f.heap {
		return utf8.RuneCountInString(f.owned)
	}
	return f.fixed.CharLen()
}

// String returns the content. Zero-copy when promoted.
func (f *Flex) String() string {
	if f.heap {
		return f.owned
	}
	return f.fixed.String()
}

func (f *Flex) view() string {
	if f.heap {
		return f.owned
	}
	return f.fixed.UnsafeString()
}

// Nth returns the character at character index n.
func (f *Flex) Nth(n int) (rune, bool) {
	r, _, _, ok := common.NthChar(f.view(), n)
	return r, ok
}

// Set replaces the character at character index i with c when c
// encodes to the same number of bytes. Works in both representations.
func (f *Flex) Set(i int, c rune) bool {
	if !f.heap {
		return f.fixed.Set(i, c)
	}
	cl := common.CharClass(c)
	if cl == 0 {
		return false
	}
	_, off, size, ok := common.NthChar(f.owned, i)
	if !ok || size != cl {
		return false
	}
	b := []byte(f.owned)
	utf8.EncodeRune(b[off:off+cl], c)
	f.owned = string(b)
	return true
}

// Push appends s, promoting to the owned form when the inline buffer
// would overflow. The remainder is the malformed tail of s, if any;
// valid input is always consumed in full.
func (f *Flex) Push(s string) string {
	valid := common.FitPrefix(s, len(s), false)
	rest := s[valid:]
	s = s[:valid]
	if f.heap {
		f.owned += s
		return rest
	}
	if rem := f.fixed.Push(s); rem != "" {
		f.owned = f.fixed.String() + rem
		f.heap = true
		f.fixed.Clear()
	}
	return rest
}

// PushRune appends a single character, promoting on overflow.
func (f *Flex) PushRune(c rune) bool {
	if common.CharClass(c) == 0 {
		return false
	}
	if !f.heap && f.fixed.PushRune(c) {
		return true
	}
	f.Push(string(c))
	return true
}

// PopRune removes and returns the last character, demoting to the
// inline form when the content fits again.
func (f *Flex) PopRune() (rune, bool) {
	if !f.heap {
		return f.fixed.PopRune()
	}
	if len(f.owned) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(f.owned)
	f.owned = f.owned[:len(f.owned)-size]
	f.demote()
	return r, true
}

// Truncate shortens the content to the first n characters, demoting
// when the result fits inline. A no-op when n is at or past the
// character count.
func (f *Flex) Truncate(n int) {
	if !f.heap {
		f.fixed.Truncate(n)
		return
	}
	if off, ok := common.CharOffset(f.owned, n); ok {
		f.owned = f.owned[:off]
		f.demote()
	}
}

// Clear resets the content to the empty string in the inline form.
func (f *Flex) Clear() {
	f.owned = ""
	f.heap = false
	f.fixed.Clear()
}

// SplitOff truncates the content to what fits inline, on a character
// boundary, and returns the excess. After the call the value is
// always in the inline form.
func (f *Flex) SplitOff() string {
	if !f.heap {
		return ""
	}
	s := f.owned
	size := f.fixed.Cap() + 1
	f.fixed = inlinestr.NewTiny(size, s)
	f.owned = ""
	f.heap = false
	return s[f.fixed.Len():]
}

// demote switches back to the inline form when the content fits.
func (f *Flex) demote() {
	if len(f.owned) <= f.fixed.Cap() {
		f.fixed = inlinestr.NewTiny(f.fixed.Cap()+1, f.owned)
		f.owned = ""
		f.heap = false
	}
}

var _ inlinestr.Mut = (*Flex)(nil)

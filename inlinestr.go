// Package inlinestr provides value-type strings with a fixed maximum
// byte capacity held entirely in inline storage. No operation
// allocates on the heap and every operation leaves the buffer holding
// valid, fully-decodable UTF-8.
//
// Three interchangeable encodings implement the same operation set:
//
//   - Fixed: a byte array plus a separate length field. O(1) length.
//   - Zero: a zero-terminated byte array with no length field. The
//     length is the position of the first zero byte, or the full
//     capacity when no sentinel is present. O(cap) length.
//   - Tiny: a byte array whose first byte stores the length. O(1)
//     length, capacity limited to 255 payload bytes.
//
// Capacity is fixed when a value is constructed and never changes;
// Resize and Reallocate produce copies at a new capacity. Values are
// freely copyable and two values of the same type and capacity may be
// compared with ==, since unused buffer bytes are kept zeroed.
package inlinestr

import (
	"errors"
	"fmt"
)

// MaxCap is the largest supported buffer size in bytes.
const MaxCap = 256

// Tiers is the ladder of supported buffer sizes used to pick result
// capacities for growth operations such as Concat.
var Tiers = [...]int{4, 8, 16, 32, 64, 128, 256}

// TierFor returns the smallest tier of at least n bytes, or MaxCap
// when n exceeds the largest tier.
func TierFor(n int) int {
	for _, t := range Tiers {
		if t >= n {
			return t
		}
	}
	return MaxCap
}

var (
	// ErrOverflow reports source text longer than the destination
	// capacity on a non-truncating operation.
	ErrOverflow = errors.New("capacity exceeded")
	// ErrInvalidUTF8 reports malformed input to a validating
	// constructor.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrEmbeddedNUL reports input containing a zero byte, which the
	// zero-terminated encoding cannot represent.
	ErrEmbeddedNUL = errors.New("embedded NUL byte")
)

// OverflowError carries the rejected input of a non-truncating
// constructor so the caller can recover it. It matches ErrOverflow
// under errors.Is.
type OverflowError struct {
	Cap   int    // destination capacity in bytes
	Input string // the rejected source text, untouched
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d bytes into capacity %d", len(e.Input), e.Cap)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// Str is the read-only contract shared by the three encodings.
type Str interface {
	// Len returns the current content length in bytes.
	Len() int
	// Cap returns the usable capacity in bytes, fixed at construction.
	Cap() int
	// CharLen returns the number of characters; always O(Len).
	CharLen() int
	// String returns a copy of the content.
	String() string
	// Nth returns the character at character index n.
	Nth(n int) (rune, bool)
}

// Mut is the mutating contract shared by the three encodings. All
// methods keep the content valid UTF-8 and never exceed capacity.
type Mut interface {
	Str
	// Set replaces the character at character index i with c, only
	// when c encodes to the same number of bytes. Reports whether the
	// substitution happened.
	Set(i int, c rune) bool
	// Push appends as many whole characters of s as fit and returns
	// the unconsumed remainder.
	Push(s string) string
	// PushRune appends a single character, reporting success.
	PushRune(c rune) bool
	// PopRune removes and returns the last character, if any.
	PopRune() (rune, bool)
	// Truncate shortens the content to the first n characters.
	Truncate(n int)
	// Clear resets the content to the empty string.
	Clear()
}

var (
	_ Mut = (*Fixed)(nil)
	_ Mut = (*Zero)(nil)
	_ Mut = (*Tiny)(nil)
)

func checkCap(c int) {
	if c < 0 || c > MaxCap {
		panic(fmt.Sprintf("inlinestr: capacity %d out of range [0,%d]", c, MaxCap))
	}
}

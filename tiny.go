package inlinestr

import (
	"bytes"
	"log/slog"
	"unicode/utf8"
	"unsafe"

	"github.com/rawbytedev/inlinestr/internal/common"
)

// Tiny is the length-prefixed encoding: an inline byte array whose
// first byte stores the content length, with the payload following.
// Length lookup is O(1) and the memory footprint matches Zero, at the
// cost of one byte of capacity and a hard ceiling: a buffer of b
// bytes holds at most b-1 content bytes, and b can never exceed 256
// since the length must fit one byte. Constructors panic on larger
// capacities — the encoding is meaningless there.
//
// The zero value is an empty string with zero capacity.
type Tiny struct {
	cap int
	buf [MaxCap]byte
}

// MakeTiny builds a Tiny over a buffer of the given size from s,
// copying as many whole characters as fit and logging a warning when
// s was cut. The usable capacity is size-1.
func MakeTiny(size int, s string) Tiny {
	t := NewTiny(size, s)
	if t.Len() < len(s) {
		slog.Warn("inlinestr: string truncated", "cap", t.Cap(), "len", len(s))
	}
	return t
}

// NewTiny is MakeTiny without the diagnostic.
func NewTiny(size int, s string) Tiny {
	checkTinySize(size)
	t := Tiny{cap: size}
	n := common.FitPrefix(s, size-1, false)
	copy(t.buf[1:], s[:n])
	t.buf[0] = byte(n)
	return t
}

// TryTiny is the non-truncating constructor: it fails with an
// *OverflowError holding s when s exceeds size-1 bytes, and with
// ErrInvalidUTF8 on malformed input.
func TryTiny(size int, s string) (Tiny, error) {
	checkTinySize(size)
	if !utf8.ValidString(s) {
		return Tiny{}, ErrInvalidUTF8
	}
	if len(s) > size-1 {
		return Tiny{}, &OverflowError{Cap: size - 1, Input: s}
	}
	return NewTiny(size, s), nil
}

// Len returns the content length in bytes. O(1).
func (t *Tiny) Len() int { return int(t.buf[0]) }

// Cap returns the usable capacity in bytes: one less than the buffer
// size, since the first byte holds the length.
func (t *Tiny) Cap() int {
	if t.cap == 0 {
		return 0
	}
	return t.cap - 1
}

// IsEmpty reports whether the content is the empty string.
func (t *Tiny) IsEmpty() bool { return t.buf[0] == 0 }

// CharLen returns the number of characters in the content.
func (t *Tiny) CharLen() int { return utf8.RuneCountInString(t.UnsafeString()) }

// String returns a copy of the content.
func (t *Tiny) String() string { return string(t.buf[1 : 1+t.Len()]) }

// UnsafeString returns the content as a string without copying. The
// result aliases the buffer: it is invalidated by any later mutation
// of t and must not outlive it.
func (t *Tiny) UnsafeString() string {
	n := t.Len()
	if n == 0 {
		return ""
	}
	return unsafe.String(&t.buf[1], n)
}

// Bytes returns the content bytes, excluding the length byte. The
// slice aliases the buffer and must not be modified.
func (t *Tiny) Bytes() []byte { return t.buf[1 : 1+t.Len()] }

// Nth returns the character at character index n.
func (t *Tiny) Nth(n int) (rune, bool) {
	r, _, _, ok := common.NthChar(t.UnsafeString(), n)
	return r, ok
}

// NthByte returns content byte n without bounds checking against the
// length; the caller must pre-validate n.
func (t *Tiny) NthByte(n int) byte { return t.buf[n+1] }

// Set replaces the character at character index i with c when c
// encodes to the same number of bytes, so that no bytes shift.
func (t *Tiny) Set(i int, c rune) bool {
	cl := common.CharClass(c)
	if cl == 0 {
		return false
	}
	_, off, size, ok := common.NthChar(t.UnsafeString(), i)
	if !ok || size != cl {
		return false
	}
	utf8.EncodeRune(t.buf[1+off:1+off+cl], c)
	return true
}

// Push appends as many whole characters of s as fit and returns the
// unconsumed remainder.
func (t *Tiny) Push(s string) string {
	n := t.Len()
	fit := common.FitPrefix(s, t.Cap()-n, false)
	copy(t.buf[1+n:], s[:fit])
	t.buf[0] = byte(n + fit)
	return s[fit:]
}

// PushRune appends a single character, reporting success.
func (t *Tiny) PushRune(c rune) bool {
	cl := common.CharClass(c)
	if cl == 0 {
		return false
	}
	n := t.Len()
	if n+cl > t.Cap() {
		return false
	}
	utf8.EncodeRune(t.buf[1+n:1+n+cl], c)
	t.buf[0] = byte(n + cl)
	return true
}

// PopRune removes and returns the last character, if any.
func (t *Tiny) PopRune() (rune, bool) {
	s := t.UnsafeString()
	if len(s) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(s)
	t.setLen(len(s) - size)
	return r, true
}

// Truncate shortens the content to the first n characters. A no-op
// when n is at or past the character count.
func (t *Tiny) Truncate(n int) {
	if off, ok := common.CharOffset(t.UnsafeString(), n); ok {
		t.setLen(off)
	}
}

// TruncateBytes shortens the content to n bytes. Panics when n does
// not fall on a character boundary.
func (t *Tiny) TruncateBytes(n int) {
	s := t.UnsafeString()
	if n >= len(s) {
		return
	}
	if !common.IsBoundary(s, n) {
		panic("inlinestr: truncation off character boundary")
	}
	t.setLen(n)
}

// TrimRightASCII removes trailing ASCII whitespace in place.
func (t *Tiny) TrimRightASCII() {
	n := t.Len()
	for n > 0 && isASCIISpace(t.buf[n]) {
		n--
	}
	t.setLen(n)
}

// Clear resets the content to the empty string.
func (t *Tiny) Clear() { t.setLen(0) }

// Substr returns a new value of the same capacity holding the
// characters in character index range [start, end), with the same
// clamping rules as Fixed.Substr.
func (t *Tiny) Substr(start, end int) Tiny {
	out := Tiny{cap: t.cap}
	s := t.UnsafeString()
	si, ok := common.CharOffset(s, start)
	if !ok || end <= start {
		return out
	}
	ei, _ := common.CharOffset(s, end)
	out.buf[0] = byte(copy(out.buf[1:], s[si:ei]))
	return out
}

// Resize produces a copy over a buffer of newSize bytes, keeping as
// many whole characters as fit in newSize-1, logging a warning when
// content was cut.
func (t *Tiny) Resize(newSize int) Tiny {
	return MakeTiny(newSize, t.UnsafeString())
}

// Reallocate produces a copy over a buffer of newSize bytes, failing
// with an *OverflowError when the content does not fit.
func (t *Tiny) Reallocate(newSize int) (Tiny, error) {
	checkTinySize(newSize)
	if t.Len() > newSize-1 {
		return Tiny{}, &OverflowError{Cap: newSize - 1, Input: t.String()}
	}
	return t.Resize(newSize), nil
}

// Concat returns a new Tiny holding the content followed by s, sized
// to the smallest capacity tier whose usable capacity holds the
// combined length. Two 8-byte values holding 9 bytes together yield a
// 16-byte value of capacity 15.
func (t *Tiny) Concat(s string) Tiny {
	n := t.Len()
	out := NewTiny(TierFor(n+len(s)+1), t.UnsafeString())
	out.Push(s)
	return out
}

// LowerASCII lowercases ASCII letters in place, leaving non-ASCII
// bytes unchanged.
func (t *Tiny) LowerASCII() { lowerASCII(t.buf[1 : 1+t.Len()]) }

// UpperASCII uppercases ASCII letters in place, leaving non-ASCII
// bytes unchanged.
func (t *Tiny) UpperASCII() { upperASCII(t.buf[1 : 1+t.Len()]) }

// ToLowerASCII returns a lowercased copy.
func (t *Tiny) ToLowerASCII() Tiny {
	out := *t
	out.LowerASCII()
	return out
}

// ToUpperASCII returns an uppercased copy.
func (t *Tiny) ToUpperASCII() Tiny {
	out := *t
	out.UpperASCII()
	return out
}

// EqualFoldASCII reports equality with s under ASCII-only case
// folding.
func (t *Tiny) EqualFoldASCII(s string) bool {
	return common.FoldEqASCII(t.Bytes(), []byte(s))
}

// Compare orders by content bytes, like bytes.Compare.
func (t *Tiny) Compare(o *Tiny) int { return bytes.Compare(t.Bytes(), o.Bytes()) }

// Equal reports content equality regardless of capacity.
func (t *Tiny) Equal(o *Tiny) bool { return bytes.Equal(t.Bytes(), o.Bytes()) }

// setLen shrinks to n bytes, zeroing the tail so that values of equal
// capacity stay comparable with ==.
func (t *Tiny) setLen(n int) {
	clear(t.buf[1+n : 1+t.Len()])
	t.buf[0] = byte(n)
}

func checkTinySize(size int) {
	if size < 1 || size > MaxCap {
		panic("inlinestr: tiny buffer size must be in [1,256]")
	}
}

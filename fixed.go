package inlinestr

import (
	"bytes"
	"log/slog"
	"unicode/utf8"
	"unsafe"

	"github.com/rawbytedev/inlinestr/internal/common"
)

// Fixed is the length-suffixed encoding: an inline byte array plus a
// separate length field. Length lookup is O(1) at the cost of one
// extra word compared to Zero and Tiny.
//
// The zero value is an empty string with zero capacity; use MakeFixed,
// NewFixed or TryFixed to obtain a usable value.
type Fixed struct {
	n   int
	cap int
	buf [MaxCap]byte
}

// MakeFixed builds a Fixed of the given capacity from s. When s does
// not fit, only as many whole characters as fit are copied and a
// warning is logged; construction itself never fails.
func MakeFixed(cap int, s string) Fixed {
	f := NewFixed(cap, s)
	if f.n < len(s) {
		slog.Warn("inlinestr: string truncated", "cap", cap, "len", len(s))
	}
	return f
}

// NewFixed is MakeFixed without the diagnostic.
func NewFixed(cap int, s string) Fixed {
	checkCap(cap)
	f := Fixed{cap: cap}
	f.n = common.FitPrefix(s, cap, false)
	copy(f.buf[:], s[:f.n])
	return f
}

// TryFixed is the non-truncating constructor: if s exceeds the
// capacity the error is an *OverflowError holding s untouched, and no
// value is produced. Malformed input yields ErrInvalidUTF8.
func TryFixed(cap int, s string) (Fixed, error) {
	checkCap(cap)
	if !utf8.ValidString(s) {
		return Fixed{}, ErrInvalidUTF8
	}
	if len(s) > cap {
		return Fixed{}, &OverflowError{Cap: cap, Input: s}
	}
	return NewFixed(cap, s), nil
}

// Len returns the content length in bytes. O(1).
func (f *Fixed) Len() int { return f.n }

// Cap returns the usable capacity in bytes.
func (f *Fixed) Cap() int { return f.cap }

// IsEmpty reports whether the content is the empty string.
func (f *Fixed) IsEmpty() bool { return f.n == 0 }

// CharLen returns the number of characters in the content.
func (f *Fixed) CharLen() int { return utf8.RuneCountInString(f.UnsafeString()) }

// String returns a copy of the content.
func (f *Fixed) String() string {
	return string(f.buf[:f.n])
}

// UnsafeString returns the content as a string without copying. The
// result aliases the buffer: it is invalidated by any later mutation
// of f and must not outlive it. Safe because the buffer always holds
// valid UTF-8.
func (f *Fixed) UnsafeString() string {
	if f.n == 0 {
		return ""
	}
	return unsafe.String(&f.buf[0], f.n)
}

// Bytes returns the content bytes. The slice aliases the buffer and
// must not be modified.
func (f *Fixed) Bytes() []byte { return f.buf[:f.n] }

// Nth returns the character at character index n.
func (f *Fixed) Nth(n int) (rune, bool) {
	r, _, _, ok := common.NthChar(f.UnsafeString(), n)
	return r, ok
}

// NthByte returns byte n of the content without bounds checking
// against the length; the caller must pre-validate n. Intended for
// ASCII content where byte index equals character index.
func (f *Fixed) NthByte(n int) byte { return f.buf[n] }

// Set replaces the character at character index i with c, but only if
// c encodes to the same number of bytes as the character being
// replaced, so that no bytes shift. Reports whether the substitution
// happened.
func (f *Fixed) Set(i int, c rune) bool {
	cl := common.CharClass(c)
	if cl == 0 {
		return false
	}
	_, off, size, ok := common.NthChar(f.UnsafeString(), i)
	if !ok || size != cl {
		return false
	}
	utf8.EncodeRune(f.buf[off:off+cl], c)
	return true
}

// Push appends as many whole characters of s as fit within the
// remaining capacity and returns the unconsumed remainder. A
// character that would overflow is excluded entirely. An empty
// remainder means the whole input was appended.
func (f *Fixed) Push(s string) string {
	fit := common.FitPrefix(s, f.cap-f.n, false)
	copy(f.buf[f.n:], s[:fit])
	f.n += fit
	return s[fit:]
}

// PushRune appends a single character, reporting success. Fails when
// c does not fit or cannot be encoded.
func (f *Fixed) PushRune(c rune) bool {
	cl := common.CharClass(c)
	if cl == 0 || f.n+cl > f.cap {
		return false
	}
	utf8.EncodeRune(f.buf[f.n:f.n+cl], c)
	f.n += cl
	return true
}

// PopRune removes and returns the last character, if any.
func (f *Fixed) PopRune() (rune, bool) {
	if f.n == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(f.UnsafeString())
	f.setLen(f.n - size)
	return r, true
}

// Truncate shortens the content to the first n characters. A no-op
// when n is at or past the character count.
func (f *Fixed) Truncate(n int) {
	if off, ok := common.CharOffset(f.UnsafeString(), n); ok {
		f.setLen(off)
	}
}

// TruncateBytes shortens the content to n bytes. Panics when n does
// not fall on a character boundary; callers wanting a checked variant
// should use Truncate.
func (f *Fixed) TruncateBytes(n int) {
	if n >= f.n {
		return
	}
	if !common.IsBoundary(f.UnsafeString(), n) {
		panic("inlinestr: truncation off character boundary")
	}
	f.setLen(n)
}

// TrimRightASCII removes trailing ASCII whitespace in place. Bytes of
// multi-byte characters are never ASCII whitespace, so the result
// always ends on a character boundary.
func (f *Fixed) TrimRightASCII() {
	n := f.n
	for n > 0 && isASCIISpace(f.buf[n-1]) {
		n--
	}
	f.setLen(n)
}

// Clear resets the content to the empty string.
func (f *Fixed) Clear() { f.setLen(0) }

// Substr returns a new value of the same capacity holding the
// characters in character index range [start, end). Out-of-range
// indices degrade: a start at or past the character count, or
// end <= start, yields an empty value, and end clamps to the actual
// character count.
func (f *Fixed) Substr(start, end int) Fixed {
	out := Fixed{cap: f.cap}
	s := f.UnsafeString()
	si, ok := common.CharOffset(s, start)
	if !ok || end <= start {
		return out
	}
	ei, _ := common.CharOffset(s, end)
	out.n = copy(out.buf[:], s[si:ei])
	return out
}

// Resize produces a copy at capacity newCap, keeping as many whole
// characters as fit and logging a warning when content was cut.
func (f *Fixed) Resize(newCap int) Fixed {
	return MakeFixed(newCap, f.UnsafeString())
}

// Reallocate produces a copy at capacity newCap, failing with an
// *OverflowError when the content does not fit.
func (f *Fixed) Reallocate(newCap int) (Fixed, error) {
	checkCap(newCap)
	if f.n > newCap {
		return Fixed{}, &OverflowError{Cap: newCap, Input: f.String()}
	}
	return f.Resize(newCap), nil
}

// Concat returns a new Fixed holding the content followed by s, sized
// to the smallest capacity tier that holds the combined length. Past
// the largest tier the result truncates on a character boundary.
func (f *Fixed) Concat(s string) Fixed {
	out := NewFixed(TierFor(f.n+len(s)), f.UnsafeString())
	out.Push(s)
	return out
}

// LowerASCII lowercases ASCII letters in place. Bytes outside the
// ASCII range belong to multi-byte characters and are left unchanged.
func (f *Fixed) LowerASCII() { lowerASCII(f.buf[:f.n]) }

// UpperASCII uppercases ASCII letters in place, leaving non-ASCII
// bytes unchanged.
func (f *Fixed) UpperASCII() { upperASCII(f.buf[:f.n]) }

// ToLowerASCII returns a lowercased copy.
func (f *Fixed) ToLowerASCII() Fixed {
	out := *f
	out.LowerASCII()
	return out
}

// ToUpperASCII returns an uppercased copy.
func (f *Fixed) ToUpperASCII() Fixed {
	out := *f
	out.UpperASCII()
	return out
}

// EqualFoldASCII reports equality with s under ASCII-only case
// folding.
func (f *Fixed) EqualFoldASCII(s string) bool {
	return common.FoldEqASCII(f.Bytes(), []byte(s))
}

// Compare orders by content bytes, like bytes.Compare.
func (f *Fixed) Compare(o *Fixed) int { return bytes.Compare(f.Bytes(), o.Bytes()) }

// Equal reports content equality regardless of capacity.
func (f *Fixed) Equal(o *Fixed) bool { return bytes.Equal(f.Bytes(), o.Bytes()) }

// setLen shrinks to n bytes, zeroing the tail so that values of equal
// capacity stay comparable with ==.
func (f *Fixed) setLen(n int) {
	clear(f.buf[n:f.n])
	f.n = n
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func lowerASCII(b []byte) {
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] |= 32
		}
	}
}

func upperASCII(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] -= 32
		}
	}
}

package inlinestr

import (
	"bytes"
	"log/slog"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/rawbytedev/inlinestr/internal/common"
)

// Zero is the zero-terminated encoding: an inline byte array with no
// length field. The content ends at the first zero byte, or fills the
// whole capacity when no sentinel is present, so length lookup is
// O(cap) — the one encoding without O(1) length. An exactly-full
// buffer is indistinguishable from one that was truncated at
// capacity; this is a documented property of the encoding.
//
// Content can never contain a NUL byte. All bytes after the first
// zero are kept zero, so values of equal capacity compare with ==.
//
// The zero value is an empty string with zero capacity.
type Zero struct {
	cap int
	buf [MaxCap]byte
}

// MakeZero builds a Zero of the given capacity from s, copying as
// many whole characters as fit and logging a warning when s was cut.
// Consumption stops at an embedded NUL byte.
func MakeZero(cap int, s string) Zero {
	z := NewZero(cap, s)
	if z.Len() < len(s) {
		slog.Warn("inlinestr: string truncated", "cap", cap, "len", len(s))
	}
	return z
}

// NewZero is MakeZero without the diagnostic.
func NewZero(cap int, s string) Zero {
	checkCap(cap)
	z := Zero{cap: cap}
	n := common.FitPrefix(s, cap, true)
	copy(z.buf[:], s[:n])
	return z
}

// TryZero is the non-truncating constructor. It fails with an
// *OverflowError holding s when s exceeds the capacity, with
// ErrEmbeddedNUL when s contains a zero byte, and with ErrInvalidUTF8
// on malformed input.
func TryZero(cap int, s string) (Zero, error) {
	checkCap(cap)
	if !utf8.ValidString(s) {
		return Zero{}, ErrInvalidUTF8
	}
	if strings.IndexByte(s, 0) >= 0 {
		return Zero{}, ErrEmbeddedNUL
	}
	if len(s) > cap {
		return Zero{}, &OverflowError{Cap: cap, Input: s}
	}
	return NewZero(cap, s), nil
}

// ZeroFromRaw builds a Zero of the given capacity from raw bytes,
// for advanced use. The content is b up to its first zero byte; it
// must fit the capacity and decode as whole, valid UTF-8, otherwise
// no value is constructed. Bytes after the first zero are discarded.
func ZeroFromRaw(cap int, b []byte) (Zero, error) {
	checkCap(cap)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if len(b) > cap {
		return Zero{}, &OverflowError{Cap: cap, Input: string(b)}
	}
	if !utf8.Valid(b) {
		return Zero{}, ErrInvalidUTF8
	}
	z := Zero{cap: cap}
	copy(z.buf[:], b)
	return z, nil
}

// Len returns the content length in bytes by scanning for the
// sentinel; O(cap).
func (z *Zero) Len() int {
	if i := bytes.IndexByte(z.buf[:z.cap], 0); i >= 0 {
		return i
	}
	return z.cap
}

// Cap returns the usable capacity in bytes.
func (z *Zero) Cap() int { return z.cap }

// IsEmpty reports whether the content is the empty string.
func (z *Zero) IsEmpty() bool { return z.cap == 0 || z.buf[0] == 0 }

// CharLen returns the number of characters in the content.
func (z *Zero) CharLen() int { return utf8.RuneCountInString(z.UnsafeString()) }

// String returns a copy of the content.
func (z *Zero) String() string { return string(z.buf[:z.Len()]) }

// UnsafeString returns the content as a string without copying. The
// result aliases the buffer: it is invalidated by any later mutation
// of z and must not outlive it.
func (z *Zero) UnsafeString() string {
	n := z.Len()
	if n == 0 {
		return ""
	}
	return unsafe.String(&z.buf[0], n)
}

// Bytes returns the content bytes. The slice aliases the buffer and
// must not be modified.
func (z *Zero) Bytes() []byte { return z.buf[:z.Len()] }

// Nth returns the character at character index n.
func (z *Zero) Nth(n int) (rune, bool) {
	r, _, _, ok := common.NthChar(z.UnsafeString(), n)
	return r, ok
}

// NthByte returns byte n of the buffer without bounds checking
// against the length; the caller must pre-validate n.
func (z *Zero) NthByte(n int) byte { return z.buf[n] }

// Set replaces the character at character index i with c when c
// encodes to the same number of bytes. NUL is rejected since the
// content cannot contain it.
func (z *Zero) Set(i int, c rune) bool {
	cl := common.CharClass(c)
	if cl == 0 || c == 0 {
		return false
	}
	_, off, size, ok := common.NthChar(z.UnsafeString(), i)
	if !ok || size != cl {
		return false
	}
	utf8.EncodeRune(z.buf[off:off+cl], c)
	return true
}

// Push appends as many whole characters of s as fit and returns the
// unconsumed remainder. Consumption stops at an embedded NUL, which
// is returned as part of the remainder. The buffer may end up
// unterminated when filled to exactly its capacity.
func (z *Zero) Push(s string) string {
	n := z.Len()
	fit := common.FitPrefix(s, z.cap-n, true)
	copy(z.buf[n:], s[:fit])
	if n+fit < z.cap {
		z.buf[n+fit] = 0
	}
	return s[fit:]
}

// PushRune appends a single character, reporting success. NUL and
// unencodable runes are rejected.
func (z *Zero) PushRune(c rune) bool {
	cl := common.CharClass(c)
	if cl == 0 || c == 0 {
		return false
	}
	n := z.Len()
	if n+cl > z.cap {
		return false
	}
	utf8.EncodeRune(z.buf[n:n+cl], c)
	if n+cl < z.cap {
		z.buf[n+cl] = 0
	}
	return true
}

// PopRune removes and returns the last character, if any.
func (z *Zero) PopRune() (rune, bool) {
	s := z.UnsafeString()
	if len(s) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(s)
	z.setLen(len(s)-size, len(s))
	return r, true
}

// Truncate shortens the content to the first n characters. A no-op
// when n is at or past the character count.
func (z *Zero) Truncate(n int) {
	s := z.UnsafeString()
	if off, ok := common.CharOffset(s, n); ok {
		z.setLen(off, len(s))
	}
}

// TruncateBytes shortens the content to n bytes. Panics when n does
// not fall on a character boundary.
func (z *Zero) TruncateBytes(n int) {
	s := z.UnsafeString()
	if n >= len(s) {
		return
	}
	if !common.IsBoundary(s, n) {
		panic("inlinestr: truncation off character boundary")
	}
	z.setLen(n, len(s))
}

// TrimRightASCII removes trailing ASCII whitespace in place.
func (z *Zero) TrimRightASCII() {
	end := z.Len()
	n := end
	for n > 0 && isASCIISpace(z.buf[n-1]) {
		n--
	}
	z.setLen(n, end)
}

// Clear resets the content to the empty string.
func (z *Zero) Clear() { z.setLen(0, z.Len()) }

// Substr returns a new value of the same capacity holding the
// characters in character index range [start, end), with the same
// clamping rules as Fixed.Substr.
func (z *Zero) Substr(start, end int) Zero {
	out := Zero{cap: z.cap}
	s := z.UnsafeString()
	si, ok := common.CharOffset(s, start)
	if !ok || end <= start {
		return out
	}
	ei, _ := common.CharOffset(s, end)
	copy(out.buf[:], s[si:ei])
	return out
}

// Resize produces a copy at capacity newCap, keeping as many whole
// characters as fit and logging a warning when content was cut.
func (z *Zero) Resize(newCap int) Zero {
	return MakeZero(newCap, z.UnsafeString())
}

// Reallocate produces a copy at capacity newCap, failing with an
// *OverflowError when the content does not fit.
func (z *Zero) Reallocate(newCap int) (Zero, error) {
	checkCap(newCap)
	if z.Len() > newCap {
		return Zero{}, &OverflowError{Cap: newCap, Input: z.String()}
	}
	return z.Resize(newCap), nil
}

// Concat returns a new Zero holding the content followed by s, sized
// to the smallest capacity tier that holds the combined length.
func (z *Zero) Concat(s string) Zero {
	n := z.Len()
	out := NewZero(TierFor(n+len(s)), z.UnsafeString())
	out.Push(s)
	return out
}

// LowerASCII lowercases ASCII letters in place, leaving non-ASCII
// bytes unchanged.
func (z *Zero) LowerASCII() { lowerASCII(z.buf[:z.Len()]) }

// UpperASCII uppercases ASCII letters in place, leaving non-ASCII
// bytes unchanged.
func (z *Zero) UpperASCII() { upperASCII(z.buf[:z.Len()]) }

// ToLowerASCII returns a lowercased copy.
func (z *Zero) ToLowerASCII() Zero {
	out := *z
	out.LowerASCII()
	return out
}

// ToUpperASCII returns an uppercased copy.
func (z *Zero) ToUpperASCII() Zero {
	out := *z
	out.UpperASCII()
	return out
}

// EqualFoldASCII reports equality with s under ASCII-only case
// folding.
func (z *Zero) EqualFoldASCII(s string) bool {
	return common.FoldEqASCII(z.Bytes(), []byte(s))
}

// Compare orders by content bytes, like bytes.Compare.
func (z *Zero) Compare(o *Zero) int { return bytes.Compare(z.Bytes(), o.Bytes()) }

// Equal reports content equality regardless of capacity.
func (z *Zero) Equal(o *Zero) bool { return bytes.Equal(z.Bytes(), o.Bytes()) }

// setLen shrinks the content from old bytes to n bytes, zero-filling
// the removed region to keep the no-bytes-after-sentinel invariant.
func (z *Zero) setLen(n, old int) {
	clear(z.buf[n:old])
}

// Package ringstr provides a fixed-capacity string backed by a
// circular byte queue. Pushing and popping at the front costs the
// same as at the back, which suits scrolling buffers such as log
// tails and input lines. Content is always valid UTF-8 in logical
// order; the physical layout may wrap around the end of the buffer.
package ringstr

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/rawbytedev/inlinestr"
	"github.com/rawbytedev/inlinestr/internal/common"
)

// Ring is a string over a circular buffer. The zero value is an empty
// string with zero capacity.
type Ring struct {
	cap   int
	front int
	n     int
	buf   [inlinestr.MaxCap]byte
}

// Make builds a Ring of the given capacity from s, copying as many
// whole characters as fit and logging a warning when s was cut.
func Make(cap int, s string) Ring {
	r := New(cap, s)
	if r.n < len(s) {
		slog.Warn("ringstr: string truncated", "cap", cap, "len", len(s))
	}
	return r
}

// New is Make without the diagnostic.
func New(cap int, s string) Ring {
	checkCap(cap)
	r := Ring{cap: cap}
	r.n = common.FitPrefix(s, cap, false)
	copy(r.buf[:], s[:r.n])
	return r
}

// TryMake is the non-truncating constructor: it fails with an
// *OverflowError when s exceeds the capacity, and with ErrInvalidUTF8
// on malformed input.
func TryMake(cap int, s string) (Ring, error) {
	checkCap(cap)
	if !utf8.ValidString(s) {
		return Ring{}, inlinestr.ErrInvalidUTF8
	}
	if len(s) > cap {
		return Ring{}, &inlinestr.OverflowError{Cap: cap, Input: s}
	}
	return New(cap, s), nil
}

// MakeRemainder builds a Ring from as many whole characters of s as
// fit and returns it along with the unconsumed remainder.
func MakeRemainder(cap int, s string) (Ring, string) {
	r := New(cap, s)
	return r, s[r.n:]
}

// FromPair builds a Ring whose physical layout places left at the end
// of the buffer and right at the start, wrapped, so that the logical
// content is left followed by right. Fails with an *OverflowError
// when the combined length exceeds the capacity.
func FromPair(cap int, left, right string) (Ring, error) {
	checkCap(cap)
	if len(left)+len(right) > cap {
		return Ring{}, &inlinestr.OverflowError{Cap: cap, Input: left + right}
	}
	if !utf8.ValidString(left + right) {
		return Ring{}, inlinestr.ErrInvalidUTF8
	}
	r := Ring{cap: cap, n: len(left) + len(right)}
	r.front = (cap - len(left)) % cap
	for i := 0; i < len(left); i++ {
		r.buf[r.index(i)] = left[i]
	}
	for i := 0; i < len(right); i++ {
		r.buf[r.index(len(left)+i)] = right[i]
	}
	return r, nil
}

// Len returns the content length in bytes.
func (r *Ring) Len() int { return r.n }

// Cap returns the capacity in bytes.
func (r *Ring) Cap() int { return r.cap }

// IsEmpty reports whether the content is the empty string.
func (r *Ring) IsEmpty() bool { return r.n == 0 }

// CharLen returns the number of characters in the content.
func (r *Ring) CharLen() int { return utf8.RuneCountInString(r.String()) }

// IsContiguous reports whether the content occupies a single physical
// span, without wraparound.
func (r *Ring) IsContiguous() bool { return r.front+r.n <= r.cap }

// Reset rewrites the buffer so the content starts at physical index
// zero. Costs a full copy through a scratch buffer when wrapped.
func (r *Ring) Reset() {
	if r.front == 0 {
		return
	}
	var scratch [inlinestr.MaxCap]byte
	for i := 0; i < r.n; i++ {
		scratch[i] = r.buf[r.index(i)]
	}
	r.buf = scratch
	r.front = 0
}

// String returns a copy of the content in logical order.
func (r *Ring) String() string {
	if r.IsContiguous() {
		return string(r.buf[r.front : r.front+r.n])
	}
	b := make([]byte, r.n)
	left := copy(b, r.buf[r.front:r.cap])
	copy(b[left:], r.buf[:r.n-left])
	return string(b)
}

// Strs returns the two physical spans whose concatenation is the
// content; the second is empty when contiguous. A multi-byte
// character pushed across the wrap point is split between the spans,
// so each span on its own is not guaranteed to be valid UTF-8.
func (r *Ring) Strs() (string, string) {
	if r.n == 0 {
		return "", ""
	}
	if r.IsContiguous() {
		return string(r.buf[r.front : r.front+r.n]), ""
	}
	return string(r.buf[r.front:r.cap]), string(r.buf[:r.front+r.n-r.cap])
}

// Push appends as many whole characters of s as fit at the back and
// returns the unconsumed remainder.
func (r *Ring) Push(s string) string {
	fit := common.FitPrefix(s, r.cap-r.n, false)
	for i := 0; i < fit; i++ {
		r.buf[r.index(r.n+i)] = s[i]
	}
	r.n += fit
	return s[fit:]
}

// PushFront prepends as many whole characters from the tail of s as
// fit and returns the unconsumed prefix. Same cost as Push thanks to
// the circular backing.
func (r *Ring) PushFront(s string) string {
	free := r.cap - r.n
	// walk back whole characters from the end of s until the suffix fits
	cut := len(s)
	for cut > 0 && len(s)-cut < free {
		_, size := utf8.DecodeLastRuneInString(s[:cut])
		if size == 0 || len(s)-(cut-size) > free {
			break
		}
		cut -= size
	}
	tail := s[cut:]
	if !utf8.ValidString(tail) {
		return s
	}
	for i := len(tail) - 1; i >= 0; i-- {
		r.front = (r.front + r.cap - 1) % r.cap
		r.buf[r.front] = tail[i]
	}
	r.n += len(tail)
	return s[:cut]
}

// PushRune appends a single character at the back, reporting success.
func (r *Ring) PushRune(c rune) bool {
	cl := common.CharClass(c)
	if cl == 0 || r.n+cl > r.cap {
		return false
	}
	r.Push(string(c))
	return true
}

// PushRuneFront prepends a single character, reporting success.
func (r *Ring) PushRuneFront(c rune) bool {
	cl := common.CharClass(c)
	if cl == 0 || r.n+cl > r.cap {
		return false
	}
	r.PushFront(string(c))
	return true
}

// PopRune removes and returns the last character, if any.
func (r *Ring) PopRune() (rune, bool) {
	if r.n == 0 {
		return 0, false
	}
	// last character is at most 4 bytes; gather them into a scratch
	// in case it wraps
	k := r.n
	if k > utf8.UTFMax {
		k = utf8.UTFMax
	}
	var tail [utf8.UTFMax]byte
	for i := 0; i < k; i++ {
		tail[i] = r.buf[r.index(r.n-k+i)]
	}
	c, size := utf8.DecodeLastRune(tail[:k])
	r.n -= size
	return c, true
}

// PopRuneFront removes and returns the first character, if any.
func (r *Ring) PopRuneFront() (rune, bool) {
	if r.n == 0 {
		return 0, false
	}
	k := r.n
	if k > utf8.UTFMax {
		k = utf8.UTFMax
	}
	var head [utf8.UTFMax]byte
	for i := 0; i < k; i++ {
		head[i] = r.buf[r.index(i)]
	}
	c, size := utf8.DecodeRune(head[:k])
	r.front = (r.front + size) % r.cap
	r.n -= size
	return c, true
}

// Truncate shortens the content to the first n characters. A no-op
// when n is at or past the character count.
func (r *Ring) Truncate(n int) {
	s := r.String()
	if off, ok := common.CharOffset(s, n); ok {
		r.n = off
	}
}

// TruncateFront removes the first n characters. A no-op when n is at
// or past the character count.
func (r *Ring) TruncateFront(n int) {
	s := r.String()
	if off, ok := common.CharOffset(s, n); ok {
		r.front = (r.front + off) % r.cap
		r.n -= off
	}
}

// Clear resets the content to the empty string.
func (r *Ring) Clear() {
	r.front = 0
	r.n = 0
}

// Find returns the byte offset of the first occurrence of sub in the
// content, in logical order, or -1 when absent.
func (r *Ring) Find(sub string) int {
	return strings.Index(r.String(), sub)
}

// RFind returns the byte offset of the last occurrence of sub, or -1.
func (r *Ring) RFind(sub string) int {
	return strings.LastIndex(r.String(), sub)
}

// TrimRightASCII removes trailing ASCII whitespace in place.
func (r *Ring) TrimRightASCII() {
	for r.n > 0 {
		switch r.buf[r.index(r.n-1)] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			r.n--
		default:
			return
		}
	}
}

// TrimLeftASCII removes leading ASCII whitespace in place.
func (r *Ring) TrimLeftASCII() {
	for r.n > 0 {
		switch r.buf[r.front] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			r.front = (r.front + 1) % r.cap
			r.n--
		default:
			return
		}
	}
}

func (r *Ring) index(i int) int { return (r.front + i) % r.cap }

func checkCap(c int) {
	if c < 1 || c > inlinestr.MaxCap {
		panic("ringstr: capacity must be in [1,256]")
	}
}

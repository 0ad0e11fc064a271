package common

import (
    "unicode/utf8"
)

// CharClass returns the encoded width in bytes of r (1-4), or 0 if r
// cannot be encoded as UTF-8 (surrogates, out of range).
func CharClass(r rune) int {
    n := utf8.RuneLen(r)
    if n < 0 {
        return 0
    }
    return n
}

// FitPrefix returns the byte length of the longest prefix of s that
// consists of whole characters and fits in max bytes. Consumption also
// stops at the first malformed sequence and, when stopNUL is set, at
// the first NUL byte.
func FitPrefix(s string, max int, stopNUL bool) int {
    i := 0
    for i < len(s) {
        r, size := utf8.DecodeRuneInString(s[i:])
        if r == utf8.RuneError && size <= 1 {
            break // malformed bytes are never copied
        }
        if stopNUL && r == 0 {
            break
        }
        if i+size > max {
            break
        }
        i += size
    }
    return i
}

// CharOffset returns the byte offset of the nth character of s.
// ok is false when n is at or past the character count, in which case
// the offset is len(s).
func CharOffset(s string, n int) (int, bool) {
    i := 0
    for off := 0; off < len(s); {
        if i == n {
            return off, true
        }
        _, size := utf8.DecodeRuneInString(s[off:])
        off += size
        i++
    }
    return len(s), false
}

// NthChar decodes the nth character of s, returning the rune, its byte
// offset and encoded size. ok is false when n is out of range.
func NthChar(s string, n int) (r rune, off, size int, ok bool) {
    i := 0
    for off = 0; off < len(s); off += size {
        r, size = utf8.DecodeRuneInString(s[off:])
        if i == n {
            return r, off, size, true
        }
        i++
    }
    return 0, 0, 0, false
}

// IsBoundary reports whether byte offset n of s falls on a character
// boundary. Offsets 0 and len(s) are always boundaries.
func IsBoundary(s string, n int) bool {
    if n == 0 || n == len(s) {
        return true
    }
    if n < 0 || n > len(s) {
        return false
    }
    return utf8.RuneStart(s[n])
}

// FoldEqASCII compares a and b byte-wise, folding only ASCII letters.
// Bytes outside the ASCII letter range must match exactly.
func FoldEqASCII(a, b []byte) bool {
    if len(a) != len(b) {
        return false
    }
    for i := 0; i < len(a); i++ {
        c, d := a[i], b[i]
        if c >= 'A' && c <= 'Z' {
            c |= 32
        }
        if d >= 'A' && d <= 'Z' {
            d |= 32
        }
        if c != d {
            return false
        }
    }
    return true
}

package inlinestr

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedConstruct(t *testing.T) {
	f := NewFixed(7, "aλb")
	require.Equal(t, 4, f.Len())
	require.Equal(t, 3, f.CharLen())
	require.Equal(t, 7, f.Cap())
	require.Equal(t, "aλb", f.String())
	require.False(t, f.IsEmpty())

	empty := NewFixed(7, "")
	require.True(t, empty.IsEmpty())
	require.Equal(t, "", empty.String())
}

func TestFixedTruncatingConstruct(t *testing.T) {
	// 'λ' is 2 bytes; the second one does not fit in 4
	f := NewFixed(4, "aλbλ")
	require.Equal(t, "aλb", f.String())
	require.Equal(t, 4, f.Len())

	// never split a character
	g := NewFixed(4, "abλλ")
	require.Equal(t, "abλ", g.String())
	require.Equal(t, 4, g.Len())
}

func TestFixedMalformedInput(t *testing.T) {
	f := NewFixed(8, "ab\xffcd")
	require.Equal(t, "ab", f.String())
}

func TestTryFixed(t *testing.T) {
	f, err := TryFixed(8, "hello")
	require.NoError(t, err)
	require.Equal(t, "hello", f.String())

	_, err = TryFixed(4, "hello")
	require.ErrorIs(t, err, ErrOverflow)
	var oe *OverflowError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, 4, oe.Cap)
	assert.Equal(t, "hello", oe.Input)

	_, err = TryFixed(8, "ab\xff")
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestFixedNthAndSet(t *testing.T) {
	f := NewFixed(7, "aλb")
	r, ok := f.Nth(1)
	require.True(t, ok)
	require.Equal(t, 'λ', r)
	_, ok = f.Nth(3)
	require.False(t, ok)

	// same class substitution succeeds, class change fails
	require.True(t, f.Set(1, 'μ'))
	require.Equal(t, "aμb", f.String())
	require.False(t, f.Set(1, 'c'))
	require.Equal(t, "aμb", f.String())
	require.Equal(t, 3, f.CharLen())
	require.False(t, f.Set(5, 'x'))
}

func TestFixedPushRemainder(t *testing.T) {
	f := NewFixed(15, "abcdefghi")
	rem := f.Push("ghijklmnopq")
	require.Equal(t, "mnopq", rem)
	require.Equal(t, 15, f.Len())
	require.Equal(t, "abcdefghi"+"ghijkl", f.String())

	// a character that would overflow is excluded entirely
	g := NewFixed(5, "abcd")
	rem = g.Push("λ")
	require.Equal(t, "λ", rem)
	require.Equal(t, 4, g.Len())

	// empty remainder when everything fits
	h := NewFixed(8, "ab")
	require.Equal(t, "", h.Push("cd"))
	require.Equal(t, "abcd", h.String())
}

func TestFixedPushPopRune(t *testing.T) {
	f := NewFixed(4, "")
	require.True(t, f.PushRune('a'))
	require.True(t, f.PushRune('λ'))
	require.True(t, f.PushRune('b'))
	require.False(t, f.PushRune('x'))
	require.Equal(t, "aλb", f.String())

	r, ok := f.PopRune()
	require.True(t, ok)
	require.Equal(t, 'b', r)
	r, ok = f.PopRune()
	require.True(t, ok)
	require.Equal(t, 'λ', r)
	f.PopRune()
	_, ok = f.PopRune()
	require.False(t, ok)
}

func TestFixedTruncate(t *testing.T) {
	f := NewFixed(8, "aλbc")
	f.Truncate(10) // past the character count, no-op
	require.Equal(t, "aλbc", f.String())
	f.Truncate(2)
	require.Equal(t, "aλ", f.String())
	f.Truncate(0)
	require.True(t, f.IsEmpty())
}

func TestFixedTruncateBytes(t *testing.T) {
	f := NewFixed(8, "aλb")
	require.Panics(t, func() { f.TruncateBytes(2) })
	f.TruncateBytes(3)
	require.Equal(t, "aλ", f.String())
	f.TruncateBytes(10) // past the length, no-op
	require.Equal(t, "aλ", f.String())
}

func TestFixedEqualAfterShrink(t *testing.T) {
	a := NewFixed(8, "abc")
	b := NewFixed(8, "abcdef")
	b.Truncate(3)
	require.Equal(t, a, b)
	require.True(t, a == b)
}

func TestFixedSubstr(t *testing.T) {
	f := NewFixed(8, "aλbcd")
	s1 := f.Substr(1, 4)
	require.Equal(t, "λbc", s1.String())
	s2 := f.Substr(2, 100)
	require.Equal(t, "bcd", s2.String())
	s3 := f.Substr(3, 2)
	require.Equal(t, "", s3.String())
	s4 := f.Substr(9, 12)
	require.Equal(t, "", s4.String())
	require.Equal(t, 8, s1.Cap())
}

func TestFixedResizeReallocate(t *testing.T) {
	f := NewFixed(16, "aλbcd")
	small := f.Resize(4)
	require.Equal(t, "aλb", small.String())
	require.Equal(t, 4, small.Cap())

	_, err := f.Reallocate(4)
	require.ErrorIs(t, err, ErrOverflow)
	big, err := f.Reallocate(32)
	require.NoError(t, err)
	require.Equal(t, f.String(), big.String())
	require.Equal(t, 32, big.Cap())
}

func TestFixedConcatTier(t *testing.T) {
	a := NewFixed(7, "abcd")
	b := NewFixed(7, "efghi")
	c := a.Concat(b.String())
	require.Equal(t, "abcdefghi", c.String())
	require.Equal(t, 16, c.Cap())
}

func TestFixedCase(t *testing.T) {
	f := NewFixed(16, "HeLLo λ WORLD")
	lower := f.ToLowerASCII()
	require.Equal(t, "hello λ world", lower.String())
	upper := f.ToUpperASCII()
	require.Equal(t, "HELLO λ WORLD", upper.String())
	require.Equal(t, "HeLLo λ WORLD", f.String())
	require.True(t, f.EqualFoldASCII("hello λ world"))
	require.False(t, f.EqualFoldASCII("hello λ worlD!"))
}

func TestFixedTrimRightASCII(t *testing.T) {
	f := NewFixed(16, "abλ \t\r\n")
	f.TrimRightASCII()
	require.Equal(t, "abλ", f.String())
}

func TestFixedCompare(t *testing.T) {
	a := NewFixed(8, "abc")
	b := NewFixed(32, "abc")
	c := NewFixed(8, "abd")
	require.True(t, a.Equal(&b))
	require.Equal(t, 0, a.Compare(&b))
	require.Negative(t, a.Compare(&c))
	require.Positive(t, c.Compare(&a))
}

func TestFixedCapRange(t *testing.T) {
	require.Panics(t, func() { NewFixed(257, "x") })
	require.Panics(t, func() { NewFixed(-1, "x") })
	f := NewFixed(0, "x")
	require.True(t, f.IsEmpty())
}

func TestFixedRoundTripQuick(t *testing.T) {
	condition := func(s string) bool {
		f := NewFixed(MaxCap, s)
		if len(s) <= MaxCap {
			return f.String() == s
		}
		return strings.HasPrefix(s, f.String()) && utf8.ValidString(f.String())
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func FuzzFixedOps(f *testing.F) {
	f.Add("aλb", "xyz", uint8(2))
	f.Add("", "\xff\xfe", uint8(0))
	f.Add("абвгд", "日本語", uint8(7))
	f.Fuzz(func(t *testing.T, base, extra string, n uint8) {
		v := NewFixed(32, base)
		require.True(t, utf8.ValidString(v.String()))
		rem := v.Push(extra)
		require.True(t, utf8.ValidString(v.String()))
		require.LessOrEqual(t, v.Len(), v.Cap())
		require.True(t, len(rem) <= len(extra))
		v.Truncate(int(n))
		require.True(t, utf8.ValidString(v.String()))
		v.PopRune()
		require.True(t, utf8.ValidString(v.String()))
	})
}

func BenchmarkFixedPush(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := NewFixed(64, "")
		f.Push("hello world")
		f.Push("λλλλ")
	}
}

func BenchmarkFixedUnsafeString(b *testing.B) {
	f := NewFixed(64, "hello world hello world")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(f.UnsafeString()) == 0 {
			b.Fatal("empty")
		}
	}
}

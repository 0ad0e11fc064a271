package inlinestr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterTruncates(t *testing.T) {
	f := NewFixed(8, "")
	w := Writer{Dst: &f}
	n, err := fmt.Fprintf(&w, "%s %s", "hello", "world")
	require.NoError(t, err)
	require.Equal(t, 11, n)
	require.True(t, w.Truncated)
	require.Equal(t, "hello wo", f.String())
}

func TestFormat(t *testing.T) {
	f := FormatFixed(16, "%d-%s", 42, "ok")
	require.Equal(t, "42-ok", f.String())

	z := FormatZero(16, "id=%04d", 7)
	require.Equal(t, "id=0007", z.String())

	ty := FormatTiny(16, "%x", 255)
	require.Equal(t, "ff", ty.String())
}

func TestTryFormat(t *testing.T) {
	_, err := TryFormatFixed(4, "%s", "too long here")
	require.ErrorIs(t, err, ErrOverflow)
	f, err := TryFormatFixed(16, "%s", "fits")
	require.NoError(t, err)
	require.Equal(t, "fits", f.String())

	_, err = TryFormatZero(4, "%s", "too long here")
	require.ErrorIs(t, err, ErrOverflow)

	_, err = TryFormatTiny(4, "%s", "abcd")
	require.ErrorIs(t, err, ErrOverflow)
	ty, err := TryFormatTiny(8, "%s", "abcd")
	require.NoError(t, err)
	require.Equal(t, "abcd", ty.String())
}

func BenchmarkFormatFixed(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := FormatFixed(32, "req-%04d", i)
		if f.IsEmpty() {
			b.Fatal("empty")
		}
	}
}

package flexstr

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestMakeInlineOrOwned(t *testing.T) {
	f := Make(8, "hello")
	require.True(t, f.IsFixed())
	require.Equal(t, "hello", f.String())
	require.Equal(t, 7, f.Cap())

	g := Make(8, "abcdefgh")
	require.True(t, g.IsOwned())
	require.Equal(t, "abcdefgh", g.String())
	require.Equal(t, 8, g.Len())
}

func TestPushPromotes(t *testing.T) {
	f := Make(8, "abcdef")
	require.True(t, f.IsFixed())
	require.Equal(t, "", f.Push("gh"))
	require.True(t, f.IsOwned())
	require.Equal(t, "abcdefgh", f.String())

	// further pushes stay owned
	f.Push("ij")
	require.Equal(t, "abcdefghij", f.String())
}

func TestPushMalformedRemainder(t *testing.T) {
	f := Make(8, "ab")
	rem := f.Push("cd\xffef")
	require.Equal(t, "\xffef", rem)
	require.Equal(t, "abcd", f.String())
}

func TestTruncateDemotes(t *testing.T) {
	f := Make(8, "abcdefghij")
	require.True(t, f.IsOwned())
	f.Truncate(7)
	require.True(t, f.IsFixed())
	require.Equal(t, "abcdefg", f.String())
}

func TestPopRuneDemotes(t *testing.T) {
	f := Make(4, "aλb") // 4 bytes > cap 3, owned
	require.True(t, f.IsOwned())
	r, ok := f.PopRune()
	require.True(t, ok)
	require.Equal(t, 'b', r)
	require.True(t, f.IsFixed())
	require.Equal(t, "aλ", f.String())
}

func TestSetBothForms(t *testing.T) {
	f := Make(8, "aλb")
	require.True(t, f.Set(1, 'μ'))
	require.Equal(t, "aμb", f.String())

	g := Make(4, "aλbcd")
	require.True(t, g.IsOwned())
	require.True(t, g.Set(1, 'μ'))
	require.False(t, g.Set(1, 'c'))
	require.Equal(t, "aμbcd", g.String())
}

func TestSplitOff(t *testing.T) {
	f := Make(8, "abcdefghij")
	rest := f.SplitOff()
	require.Equal(t, "hij", rest)
	require.True(t, f.IsFixed())
	require.Equal(t, "abcdefg", f.String())
	require.Equal(t, "", f.SplitOff())
}

func TestTakeString(t *testing.T) {
	f := Make(8, "abcdefghij")
	s, ok := f.TakeString()
	require.True(t, ok)
	require.Equal(t, "abcdefghij", s)
	require.True(t, f.IsFixed())
	require.Equal(t, 0, f.Len())

	_, ok = f.TakeString()
	require.False(t, ok)
}

func TestOwnedIffOverflow(t *testing.T) {
	condition := func(s string, grow string) bool {
		f := Make(16, s)
		f.Push(grow)
		f.PopRune()
		return f.IsOwned() == (f.Len() > f.Cap())
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func BenchmarkFlexPushInline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := Make(32, "")
		f.Push("short")
	}
}

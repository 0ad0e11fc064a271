package inlinestr

import (
	"fmt"
)

// Writer adapts a Mut into an io.Writer and io.StringWriter that
// truncates instead of overflowing: each write appends as many whole
// characters as fit in the remaining capacity and silently drops the
// rest, recording that truncation happened. Write never returns an
// error, so it can sit under fmt.Fprintf.
type Writer struct {
	Dst       Mut
	Truncated bool
}

func (w *Writer) Write(p []byte) (int, error) {
	_, err := w.WriteString(string(p))
	return len(p), err
}

func (w *Writer) WriteString(s string) (int, error) {
	if rem := w.Dst.Push(s); rem != "" {
		w.Truncated = true
	}
	return len(s), nil
}

// FormatFixed formats into a new Fixed of the given capacity,
// truncating on a character boundary when the output does not fit.
func FormatFixed(cap int, format string, a ...any) Fixed {
	f := NewFixed(cap, "")
	w := Writer{Dst: &f}
	fmt.Fprintf(&w, format, a...)
	return f
}

// TryFormatFixed is FormatFixed that fails with ErrOverflow instead
// of truncating.
func TryFormatFixed(cap int, format string, a ...any) (Fixed, error) {
	f := NewFixed(cap, "")
	w := Writer{Dst: &f}
	fmt.Fprintf(&w, format, a...)
	if w.Truncated {
		return Fixed{}, ErrOverflow
	}
	return f, nil
}

// FormatZero formats into a new Zero of the given capacity,
// truncating on a character boundary when the output does not fit.
func FormatZero(cap int, format string, a ...any) Zero {
	z := NewZero(cap, "")
	w := Writer{Dst: &z}
	fmt.Fprintf(&w, format, a...)
	return z
}

// TryFormatZero is FormatZero that fails with ErrOverflow instead of
// truncating.
func TryFormatZero(cap int, format string, a ...any) (Zero, error) {
	z := NewZero(cap, "")
	w := Writer{Dst: &z}
	fmt.Fprintf(&w, format, a...)
	if w.Truncated {
		return Zero{}, ErrOverflow
	}
	return z, nil
}

// FormatTiny formats into a new Tiny over a buffer of the given size,
// truncating on a character boundary when the output does not fit.
func FormatTiny(size int, format string, a ...any) Tiny {
	t := NewTiny(size, "")
	w := Writer{Dst: &t}
	fmt.Fprintf(&w, format, a...)
	return t
}

// TryFormatTiny is FormatTiny that fails with ErrOverflow instead of
// truncating.
func TryFormatTiny(size int, format string, a ...any) (Tiny, error) {
	t := NewTiny(size, "")
	w := Writer{Dst: &t}
	fmt.Fprintf(&w, format, a...)
	if w.Truncated {
		return Tiny{}, ErrOverflow
	}
	return t, nil
}

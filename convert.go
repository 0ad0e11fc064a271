package inlinestr

// view returns the content of s without copying when the concrete
// type exposes a zero-copy view, falling back to a copy otherwise.
func view(s Str) string {
	if u, ok := s.(interface{ UnsafeString() string }); ok {
		return u.UnsafeString()
	}
	return s.String()
}

// ToFixed copies the content of any encoding into a Fixed of the
// given capacity, truncating on whole characters when it does not
// fit.
func ToFixed(s Str, cap int) Fixed { return NewFixed(cap, view(s)) }

// ToZero copies the content of any encoding into a Zero of the given
// capacity, truncating on whole characters when it does not fit.
func ToZero(s Str, cap int) Zero { return NewZero(cap, view(s)) }

// ToTiny copies the content of any encoding into a Tiny over a buffer
// of the given size, truncating on whole characters when it does not
// fit.
func ToTiny(s Str, size int) Tiny { return NewTiny(size, view(s)) }

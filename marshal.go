package inlinestr

// Text marshaling for all three encodings, so the types drop into
// encoding/json, yaml and anything else that honors the encoding
// interfaces. Marshaling emits the plain content; unmarshaling is
// non-truncating and fails on overflow rather than silently dropping
// text. A zero-capacity destination adopts the smallest capacity tier
// that holds the incoming content.

func (f *Fixed) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fixed) UnmarshalText(b []byte) error {
	cap := f.cap
	if cap == 0 {
		cap = TierFor(len(b))
	}
	v, err := TryFixed(cap, string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (z *Zero) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *Zero) UnmarshalText(b []byte) error {
	cap := z.cap
	if cap == 0 {
		cap = TierFor(len(b))
	}
	v, err := TryZero(cap, string(b))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

func (t *Tiny) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tiny) UnmarshalText(b []byte) error {
	size := t.cap
	if size == 0 {
		size = TierFor(len(b) + 1)
	}
	v, err := TryTiny(size, string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

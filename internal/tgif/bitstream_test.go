package tgif

import "testing"

func TestBitStreamRoundTrip(t *testing.T) {
	codes := []struct {
		code  int
		width uint
	}{
		{0, 2}, {3, 2}, {1, 2},
		{42, 7}, {127, 7},
		{1023, 10}, {0, 10},
		{5, 3},
	}

	var out []byte
	w := newBitWriter(&out)
	for _, c := range codes {
		w.put(c.code, c.width)
	}
	w.flush()

	// byte 0 is reserved for the CodeCount preamble by bitReader's
	// convention, so prepend a placeholder.
	data := append([]byte{0}, out...)
	r := newBitReader(data, len(data))
	for _, c := range codes {
		got, err := r.get(c.width)
		if err != nil {
			t.Fatalf("get(%d): %v", c.width, err)
		}
		if got != c.code {
			t.Errorf("got %d, want %d (width %d)", got, c.code, c.width)
		}
	}
}

func TestBitStreamLSBFirst(t *testing.T) {
	// Two 4-bit codes packed LSB-first should land in a single byte with
	// the first code in the low nibble.
	var out []byte
	w := newBitWriter(&out)
	w.put(0x3, 4)
	w.put(0xA, 4)
	w.flush()

	if len(out) != 1 || out[0] != 0xA3 {
		t.Fatalf("got %#v, want [0xA3]", out)
	}
}

func TestBitStreamTruncated(t *testing.T) {
	data := []byte{0, 0x01}
	r := newBitReader(data, len(data))
	if _, err := r.get(4); err != nil {
		t.Fatalf("first read should succeed: %v", err)
	}
	if _, err := r.get(10); err == nil {
		t.Fatal("expected an error reading past the end of a truncated stream")
	} else if CodeOf(err) != ErrMaxSz {
		t.Fatalf("expected ErrMaxSz, got code %d", CodeOf(err))
	}
}

func TestBitStreamMaxWidth(t *testing.T) {
	var out []byte
	w := newBitWriter(&out)
	for i := 0; i < 20; i++ {
		w.put(i&1023, 10)
	}
	w.flush()

	data := append([]byte{0}, out...)
	r := newBitReader(data, len(data))
	for i := 0; i < 20; i++ {
		got, err := r.get(10)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != i&1023 {
			t.Errorf("code %d: got %d, want %d", i, got, i&1023)
		}
	}
}

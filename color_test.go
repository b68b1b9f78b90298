package cubescan

import (
	"errors"
	"testing"
)

func TestParseColorRoundTrip(t *testing.T) {
	for c := Color(0); c < NumColors; c++ {
		got, err := ParseColor(c.String()[0])
		if err != nil {
			t.Fatalf("ParseColor(%v): %v", c, err)
		}
		if got != c {
			t.Errorf("ParseColor(%v) = %v", c, got)
		}
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, ch := range []byte{'X', 'u', ' ', 0} {
		if _, err := ParseColor(ch); !errors.Is(err, ErrInvalidFacecube) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidFacecube", ch, err)
		}
	}
}

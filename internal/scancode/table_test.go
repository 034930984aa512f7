// internal/scancode/table_test.go
package scancode

import "testing"

func TestLookup_LetterModifierColumns(t *testing.T) {
	// scan 0x1C is the A key
	cases := []struct {
		shift byte
		want  byte
	}{
		{0, 'a'},
		{1, 'A'},
		{2, 0x01}, // control-A
		{3, 0x01}, // control wins over shift
	}
	for _, c := range cases {
		if got := Lookup(0x1C, c.shift); got != c.want {
			t.Fatalf("Lookup(0x1C, %d) = 0x%02X, want 0x%02X", c.shift, got, c.want)
		}
	}
}

func TestLookup_LiteralPassthrough(t *testing.T) {
	cases := []struct {
		scan byte
		want byte
	}{
		{0x0D, 0x09}, // TAB
		{0x5A, 0x0D}, // ENTER
		{0x66, 0x08}, // BACKSPACE
		{0x76, 0x1B}, // ESC
	}
	for _, c := range cases {
		for shift := byte(0); shift < 4; shift++ {
			if got := Lookup(c.scan, shift); got != c.want {
				t.Fatalf("Lookup(0x%02X, %d) = 0x%02X, want 0x%02X",
					c.scan, shift, got, c.want)
			}
		}
	}
}

func TestLookup_Bounds(t *testing.T) {
	if got := Lookup(0x80, 0); got != 0 {
		t.Fatalf("scan out of range returned 0x%02X", got)
	}
	if got := Lookup(0xFF, 0); got != 0 {
		t.Fatalf("scan out of range returned 0x%02X", got)
	}
	if got := Lookup(0x1C, 4); got != 0 {
		t.Fatalf("shift out of range returned 0x%02X", got)
	}
}

func TestLookup_DigitControlColumnBlank(t *testing.T) {
	// digits have no control meaning except the RS/US special cases
	if got := Lookup(0x16, 2); got != 0 { // control-1
		t.Fatalf("control-1 = 0x%02X, want 0", got)
	}
	if got := Lookup(0x36, 3); got != 0x1E { // control-shift-6 is RS
		t.Fatalf("control-shift-6 = 0x%02X, want 0x1E", got)
	}
}

// internal/ps2/frame_test.go
package ps2

import "testing"

func TestOddParity(t *testing.T) {
	cases := []struct {
		b    byte
		want bool
	}{
		{0x00, true},  // zero ones, parity bit completes to one
		{0x01, false}, // one one, already odd
		{0xFF, true},
		{0xAA, true},
		{0x1C, false},
		{0x80, false},
	}
	for _, c := range cases {
		if got := OddParity(c.b); got != c.want {
			t.Fatalf("OddParity(0x%02X) = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestFrame_Layout(t *testing.T) {
	f := Frame(0xA5) // 1010 0101

	if f[0] {
		t.Fatal("start bit must be low")
	}
	if !f[10] {
		t.Fatal("stop bit must be high")
	}

	// Data bits go out LSB first.
	wantData := [8]bool{true, false, true, false, false, true, false, true}
	for i, want := range wantData {
		if f[1+i] != want {
			t.Fatalf("data bit %d = %v, want %v", i, f[1+i], want)
		}
	}

	if f[9] != OddParity(0xA5) {
		t.Fatal("parity bit does not match computed odd parity")
	}
}

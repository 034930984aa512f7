// internal/ps2/buffer_test.go
package ps2

import "testing"

func TestKeyBuffer_RejectsBadCapacity(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5, 6, 7, 9, 15, 17} {
		if _, err := newKeyBuffer(n); err == nil {
			t.Fatalf("capacity %d accepted", n)
		}
	}
	for _, n := range []int{4, 8, 16, 64} {
		if _, err := newKeyBuffer(n); err != nil {
			t.Fatalf("capacity %d rejected: %v", n, err)
		}
	}
}

func TestKeyBuffer_EmptySentinel(t *testing.T) {
	buf, err := newKeyBuffer(8)
	if err != nil {
		t.Fatalf("newKeyBuffer: %v", err)
	}
	if _, ok := buf.getByte(); ok {
		t.Fatal("fresh buffer reported a byte")
	}
}

func TestKeyBuffer_FullDropsNewKeepsOld(t *testing.T) {
	buf, err := newKeyBuffer(8)
	if err != nil {
		t.Fatalf("newKeyBuffer: %v", err)
	}

	// One slot is reserved, so capacity 8 holds 7.
	for i := byte(1); i <= 7; i++ {
		if !buf.putByte(i) {
			t.Fatalf("put %d rejected before full", i)
		}
	}
	if buf.putByte(0x99) {
		t.Fatal("put accepted against a full buffer")
	}

	for i := byte(1); i <= 7; i++ {
		v, ok := buf.getByte()
		if !ok {
			t.Fatalf("entry %d missing after overflow", i)
		}
		if v != i {
			t.Fatalf("entry %d corrupted: got 0x%02X", i, v)
		}
	}
	if _, ok := buf.getByte(); ok {
		t.Fatal("dropped byte surfaced after drain")
	}
}

func TestKeyBuffer_Wraparound(t *testing.T) {
	buf, err := newKeyBuffer(4)
	if err != nil {
		t.Fatalf("newKeyBuffer: %v", err)
	}

	// Push the cursors around the ring several times.
	for round := 0; round < 10; round++ {
		for i := 0; i < 3; i++ {
			v := byte(round*3 + i)
			if !buf.putByte(v) {
				t.Fatalf("round %d put %d rejected", round, i)
			}
		}
		for i := 0; i < 3; i++ {
			want := byte(round*3 + i)
			v, ok := buf.getByte()
			if !ok || v != want {
				t.Fatalf("round %d got (0x%02X,%v), want 0x%02X", round, v, ok, want)
			}
		}
	}
}

func TestKeyBuffer_Reset(t *testing.T) {
	buf, err := newKeyBuffer(8)
	if err != nil {
		t.Fatalf("newKeyBuffer: %v", err)
	}
	buf.putByte(1)
	buf.putByte(2)
	buf.reset()
	if _, ok := buf.getByte(); ok {
		t.Fatal("reset buffer still holds bytes")
	}
}

package proto

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestPositionRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		p := Position{
			X: int32(rng.Intn(1<<26) - 1<<25),
			Z: int32(rng.Intn(1<<26) - 1<<25),
			Y: int32(rng.Intn(1<<12) - 1<<11),
		}
		var buf bytes.Buffer
		if err := WritePosition(&buf, p); err != nil {
			t.Fatalf("encode %+v: %v", p, err)
		}
		got, err := ReadPosition(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if got != p {
			t.Fatalf("round trip: got %+v want %+v", got, p)
		}
	}
}

func TestPositionOutOfRange(t *testing.T) {
	cases := []Position{
		{X: 1 << 25, Z: 0, Y: 0},
		{X: 0, Z: 1 << 25, Y: 0},
		{X: 0, Z: 0, Y: 1 << 11},
		{X: -(1 << 25) - 1, Z: 0, Y: 0},
	}
	for _, p := range cases {
		var buf bytes.Buffer
		if err := WritePosition(&buf, p); err != ErrPositionRange {
			t.Fatalf("%+v: got %v, want ErrPositionRange", p, err)
		}
	}
}

func TestPositionKnownValue(t *testing.T) {
	// 18357644, 831, -20882735 from the wiki's wire-format example.
	p := Position{X: 18357644, Z: -20882735, Y: 831}
	var buf bytes.Buffer
	if err := WritePosition(&buf, p); err != nil {
		t.Fatal(err)
	}
	got, err := ReadPosition(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Fatalf("got %+v want %+v", got, p)
	}
}

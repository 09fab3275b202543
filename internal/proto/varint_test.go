package proto

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"
)

func TestVarIntVectors(t *testing.T) {
	cases := []struct {
		n   VarInt
		hex string
	}{
		{0, "00"},
		{1, "01"},
		{2, "02"},
		{127, "7f"},
		{128, "8001"},
		{255, "ff01"},
		{2147483647, "ffffffff07"},
		{-1, "ffffffff0f"},
		{-2147483648, "8080808008"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := WriteVarInt(&buf, c.n); err != nil {
			t.Fatalf("encode %d: %v", c.n, err)
		}
		want, err := hex.DecodeString(c.hex)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(buf.Bytes(), want) {
			t.Fatalf("encode %d: got %x want %s", c.n, buf.Bytes(), c.hex)
		}
		got, err := ReadVarInt(bytes.NewReader(want))
		if err != nil {
			t.Fatalf("decode %s: %v", c.hex, err)
		}
		if got != c.n {
			t.Fatalf("decode %s: got %d want %d", c.hex, got, c.n)
		}
	}
}

func TestVarLongVectors(t *testing.T) {
	cases := []struct {
		n   VarLong
		hex string
	}{
		{0, "00"},
		{127, "7f"},
		{128, "8001"},
		{2147483647, "ffffffff07"},
		{9223372036854775807, "ffffffffffffffff7f"},
		{-1, "ffffffffffffffffff01"},
		{-9223372036854775808, "80808080808080808001"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := WriteVarLong(&buf, c.n); err != nil {
			t.Fatalf("encode %d: %v", c.n, err)
		}
		want, err := hex.DecodeString(c.hex)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(buf.Bytes(), want) {
			t.Fatalf("encode %d: got %x want %s", c.n, buf.Bytes(), c.hex)
		}
		got, err := ReadVarLong(bytes.NewReader(want))
		if err != nil {
			t.Fatalf("decode %s: %v", c.hex, err)
		}
		if got != c.n {
			t.Fatalf("decode %s: got %d want %d", c.hex, got, c.n)
		}
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		n := VarInt(rng.Int31())
		if rng.Intn(2) == 0 {
			n = -n
		}
		var buf bytes.Buffer
		if err := WriteVarInt(&buf, n); err != nil {
			t.Fatal(err)
		}
		if buf.Len() < 1 || buf.Len() > 5 {
			t.Fatalf("VarInt(%d) encoded to %d bytes", n, buf.Len())
		}
		got, err := ReadVarInt(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Fatalf("round trip: got %d want %d", got, n)
		}
	}
}

func TestVarLongRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		n := VarLong(rng.Int63())
		if rng.Intn(2) == 0 {
			n = -n
		}
		var buf bytes.Buffer
		if err := WriteVarLong(&buf, n); err != nil {
			t.Fatal(err)
		}
		if buf.Len() < 1 || buf.Len() > 10 {
			t.Fatalf("VarLong(%d) encoded to %d bytes", n, buf.Len())
		}
		got, err := ReadVarLong(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Fatalf("round trip: got %d want %d", got, n)
		}
	}
}

func TestVarIntTooLong(t *testing.T) {
	buf := bytes.Repeat([]byte{0x80}, 6)
	if _, err := ReadVarInt(bytes.NewReader(buf)); err != ErrVarIntTooLong {
		t.Fatalf("got %v, want ErrVarIntTooLong", err)
	}
}

func TestVarLongTooLong(t *testing.T) {
	buf := bytes.Repeat([]byte{0x80}, 11)
	if _, err := ReadVarLong(bytes.NewReader(buf)); err != ErrVarLongTooLong {
		t.Fatalf("got %v, want ErrVarLongTooLong", err)
	}
}

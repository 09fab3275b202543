package proto

import (
	"bytes"
	"strings"
	"testing"

	uuid "github.com/satori/go.uuid"
)

func TestBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		var buf bytes.Buffer
		if err := WriteBool(&buf, v); err != nil {
			t.Fatal(err)
		}
		got, err := ReadBool(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Fatalf("got %v want %v", got, v)
		}
	}
}

func TestBoolInvalid(t *testing.T) {
	if _, err := ReadBool(bytes.NewReader([]byte{0x02})); err != ErrInvalidBool {
		t.Fatalf("got %v, want ErrInvalidBool", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo wörld", strings.Repeat("x", 5000)} {
		var buf bytes.Buffer
		if err := WriteString(&buf, s); err != nil {
			t.Fatal(err)
		}
		got, err := ReadString(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Fatalf("got %q want %q", got, s)
		}
	}
}

func TestChatTooLong(t *testing.T) {
	s := Chat(strings.Repeat("x", maxProtocolStringBytes+1))
	var buf bytes.Buffer
	if err := WriteChat(&buf, s); err != ErrStringTooLong {
		t.Fatalf("got %v, want ErrStringTooLong", err)
	}
}

func TestFixedWidthRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteInt32(&buf, -12345); err != nil {
		t.Fatal(err)
	}
	if err := WriteUint64(&buf, 0xdeadbeefcafebabe); err != nil {
		t.Fatal(err)
	}
	if err := WriteFloat32(&buf, 3.25); err != nil {
		t.Fatal(err)
	}
	if err := WriteFloat64(&buf, -1.5); err != nil {
		t.Fatal(err)
	}

	i32, err := ReadInt32(&buf)
	if err != nil || i32 != -12345 {
		t.Fatalf("int32: %v %v", i32, err)
	}
	u64, err := ReadUint64(&buf)
	if err != nil || u64 != 0xdeadbeefcafebabe {
		t.Fatalf("uint64: %v %v", u64, err)
	}
	f32, err := ReadFloat32(&buf)
	if err != nil || f32 != 3.25 {
		t.Fatalf("float32: %v %v", f32, err)
	}
	f64, err := ReadFloat64(&buf)
	if err != nil || f64 != -1.5 {
		t.Fatalf("float64: %v %v", f64, err)
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	u, err := uuid.FromString("f7f1e9c4-1234-5678-9abc-def012345678")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteUUID(&buf, u); err != nil {
		t.Fatal(err)
	}
	got, err := ReadUUID(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != u {
		t.Fatalf("got %v want %v", got, u)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	items := []int32{1, -2, 3, 400000}
	var buf bytes.Buffer
	if err := WriteVector[int32](&buf, VarIntLen, items, WriteInt32); err != nil {
		t.Fatal(err)
	}
	got, err := ReadVector[int32](&buf, VarIntLen, ReadInt32)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(items) {
		t.Fatalf("got %d items want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Fatalf("item %d: got %d want %d", i, got[i], items[i])
		}
	}
}

package transport

import (
	"bytes"
	"testing"

	"mcproto.dev/client/internal/proto"
)

func TestWriteReadPacketUncompressedUnencrypted(t *testing.T) {
	var wireBuf bytes.Buffer
	w := NewSession(nil, &wireBuf)
	body := []byte{0x00, 'h', 'i'}
	if err := w.WritePacket(body); err != nil {
		t.Fatal(err)
	}

	r := NewSession(&wireBuf, nil)
	got, err := r.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("got %v want %v", got, body)
	}
}

func TestCompressionThresholdCrossing(t *testing.T) {
	var wireBuf bytes.Buffer
	w := NewSession(nil, &wireBuf)
	w.SetCompressionThreshold(256)

	small := make([]byte, 100)
	for i := range small {
		small[i] = byte(i)
	}
	large := make([]byte, 4096)
	for i := range large {
		large[i] = byte(i * 7)
	}

	if err := w.WritePacket(small); err != nil {
		t.Fatal(err)
	}
	if err := w.WritePacket(large); err != nil {
		t.Fatal(err)
	}

	r := NewSession(&wireBuf, nil)
	r.SetCompressionThreshold(256)

	gotSmall, err := r.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(gotSmall, small) {
		t.Fatal("small packet round trip mismatch")
	}

	gotLarge, err := r.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(gotLarge, large) {
		t.Fatal("large packet round trip mismatch")
	}
}

func TestEncryptionRoundTrip(t *testing.T) {
	sharedSecret := make([]byte, 16)
	for i := range sharedSecret {
		sharedSecret[i] = byte(i * 3)
	}

	var wireBuf bytes.Buffer
	w := NewSession(nil, &wireBuf)
	if err := w.EnableEncryption(sharedSecret); err != nil {
		t.Fatal(err)
	}

	body := []byte{0x02, 'h', 'e', 'l', 'l', 'o'}
	if err := w.WritePacket(body); err != nil {
		t.Fatal(err)
	}

	// Without the matching cipher, the wire bytes must not be the plaintext
	// frame: the outer length byte for this 6-byte body is a single byte
	// (0x06) when unencrypted, so a raw compare catches a no-op cipher.
	if wireBuf.Bytes()[0] == 0x06 {
		t.Fatal("wire bytes look like plaintext; encryption did not run")
	}

	r := NewSession(&wireBuf, nil)
	if err := r.EnableEncryption(sharedSecret); err != nil {
		t.Fatal(err)
	}
	got, err := r.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("got %v want %v", got, body)
	}
}

func TestEnableEncryptionTwiceFails(t *testing.T) {
	s := NewSession(nil, &bytes.Buffer{})
	secret := make([]byte, 16)
	if err := s.EnableEncryption(secret); err != nil {
		t.Fatal(err)
	}
	if err := s.EnableEncryption(secret); err != ErrEncryptionAlreadyEnabled {
		t.Fatalf("got %v want ErrEncryptionAlreadyEnabled", err)
	}
}

func TestSetCompressionThresholdNegativeDisables(t *testing.T) {
	var wireBuf bytes.Buffer
	w := NewSession(nil, &wireBuf)
	w.SetCompressionThreshold(256)
	w.SetCompressionThreshold(-1)

	body := []byte{0x00}
	if err := w.WritePacket(body); err != nil {
		t.Fatal(err)
	}

	r := NewSession(&wireBuf, nil)
	got, err := r.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, body) {
		t.Fatal("expected uncompressed frame after disabling compression")
	}
}

func TestReadPacketNegativeLength(t *testing.T) {
	var buf bytes.Buffer
	proto.WriteVarInt(&buf, -1)
	r := NewSession(&buf, nil)
	if _, err := r.ReadPacket(); err != proto.ErrNegativeLength {
		t.Fatalf("got %v want ErrNegativeLength", err)
	}
}

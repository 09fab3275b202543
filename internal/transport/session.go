// Package transport implements the framed byte-stream layer beneath the
// packet catalogue: length-prefixed frames, optional zlib compression above
// a threshold, and optional AES-128/CFB8 encryption applied outermost.
package transport

import (
	"bytes"
	"compress/zlib"
	"crypto/aes"
	"fmt"
	"io"
	"io/ioutil"

	"mcproto.dev/client/internal/proto"
)

// ErrEncryptionAlreadyEnabled is returned by EnableEncryption when called a
// second time on the same Session.
var ErrEncryptionAlreadyEnabled = fmt.Errorf("transport: encryption already enabled")

// ErrTrailingBytes is returned by Receive and TryReceive when bytes remain
// in a frame after the catalogue has finished parsing it.
var ErrTrailingBytes = fmt.Errorf("transport: trailing bytes in frame")

// Session owns one read half and one write half of a duplex byte stream,
// plus mutable cipher state and a compression threshold. Per spec.md
// section 9's shared-resource policy there is no internal locking: callers
// serialize access themselves (the session driver is single-threaded).
type Session struct {
	r io.Reader
	w io.Writer

	encReader *cfb8
	encWriter *cfb8

	compressionThreshold int
	compressionEnabled   bool
}

// NewSession wraps a duplex byte stream with no encryption and no
// compression; both can be turned on later.
func NewSession(r io.Reader, w io.Writer) *Session {
	return &Session{r: r, w: w}
}

// EnableEncryption installs AES-128/CFB8 cipher state on both halves using
// sharedSecret as both key and initialization vector, per spec.md section
// 4.4. It fails without mutating state if encryption is already enabled.
func (s *Session) EnableEncryption(sharedSecret []byte) error {
	if s.encReader != nil || s.encWriter != nil {
		return ErrEncryptionAlreadyEnabled
	}
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return err
	}
	s.encReader = newCFB8(block, sharedSecret, false)
	s.encWriter = newCFB8(block, sharedSecret, true)
	return nil
}

// SetCompressionThreshold sets the compression threshold. A negative
// threshold disables compression, matching spec.md section 4.5's
// SetCompression{threshold<0} semantics.
func (s *Session) SetCompressionThreshold(threshold int) {
	if threshold < 0 {
		s.compressionEnabled = false
		s.compressionThreshold = 0
		return
	}
	s.compressionEnabled = true
	s.compressionThreshold = threshold
}

// WritePacket takes an already serialized id+body payload, applies the
// compression rule if enabled, prepends the outer VarInt length, encrypts
// if enabled, and writes the result to the stream.
func (s *Session) WritePacket(idBody []byte) error {
	var frame bytes.Buffer
	if s.compressionEnabled {
		if err := s.writeCompressedFrame(&frame, idBody); err != nil {
			return err
		}
	} else {
		frame.Write(idBody)
	}

	var outer bytes.Buffer
	if err := proto.WriteVarInt(&outer, proto.VarInt(frame.Len())); err != nil {
		return err
	}
	outer.Write(frame.Bytes())

	out := outer.Bytes()
	if s.encWriter != nil {
		ciphertext := make([]byte, len(out))
		s.encWriter.XORKeyStream(ciphertext, out)
		out = ciphertext
	}
	_, err := s.w.Write(out)
	return err
}

func (s *Session) writeCompressedFrame(frame *bytes.Buffer, idBody []byte) error {
	if len(idBody) < s.compressionThreshold {
		if err := proto.WriteVarInt(frame, 0); err != nil {
			return err
		}
		frame.Write(idBody)
		return nil
	}
	if err := proto.WriteVarInt(frame, proto.VarInt(len(idBody))); err != nil {
		return err
	}
	zw := zlib.NewWriter(frame)
	if _, err := zw.Write(idBody); err != nil {
		return err
	}
	return zw.Close()
}

// ReadPacket reads one frame from the stream (decrypting on the fly if
// enabled), undoes the compression rule if enabled, and returns the raw
// id+body payload ready for packet.Decode.
func (s *Session) ReadPacket() ([]byte, error) {
	length, err := s.readVarIntMaybeDecrypted()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, proto.ErrNegativeLength
	}
	raw := make([]byte, length)
	if err := s.readFullDecrypted(raw); err != nil {
		return nil, err
	}
	if !s.compressionEnabled {
		return raw, nil
	}
	return s.decodeCompressedFrame(raw)
}

func (s *Session) decodeCompressedFrame(raw []byte) ([]byte, error) {
	br := bytes.NewReader(raw)
	dataLength, err := proto.ReadVarInt(br)
	if err != nil {
		return nil, err
	}
	rest := raw[len(raw)-br.Len():]
	if dataLength == 0 {
		return rest, nil
	}
	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	out, err := ioutil.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	if int32(len(out)) != int32(dataLength) {
		return nil, fmt.Errorf("transport: decompressed length %d does not match declared %d", len(out), dataLength)
	}
	return out, nil
}

// readVarIntMaybeDecrypted reads the outer length VarInt one byte at a
// time, decrypting each byte as it arrives when encryption is enabled —
// the VarInt's own length isn't known up front.
func (s *Session) readVarIntMaybeDecrypted() (proto.VarInt, error) {
	var result uint32
	var b [1]byte
	for i := 0; i < 5; i++ {
		if err := s.readFullDecrypted(b[:]); err != nil {
			return 0, err
		}
		result |= uint32(b[0]&0x7f) << (7 * uint(i))
		if b[0]&0x80 == 0 {
			return proto.VarInt(int32(result)), nil
		}
	}
	return 0, proto.ErrVarIntTooLong
}

// Peeker is satisfied by readers (e.g. *bufio.Reader) that can report
// whether some bytes are available without blocking for more.
type Peeker interface {
	Peek(n int) ([]byte, error)
}

// TryReadPacket behaves like ReadPacket but returns ok=false instead of
// blocking when the outer length prefix isn't fully buffered yet, per
// spec.md section 4.4's try_read_packet. It requires the underlying
// reader to implement Peeker (e.g. bufio.Reader); against a plain
// io.Reader it falls back to the blocking behavior of ReadPacket.
// Peeking an encrypted stream only tells you bytes have arrived, not
// their decrypted meaning, so this is primarily useful before encryption
// is enabled (e.g. polling for a Status response).
func (s *Session) TryReadPacket() (payload []byte, ok bool, err error) {
	peeker, supported := s.r.(Peeker)
	if !supported {
		payload, err = s.ReadPacket()
		return payload, true, err
	}
	buf, peekErr := peeker.Peek(5)
	if len(buf) == 0 {
		if peekErr != nil {
			return nil, false, nil
		}
		return nil, false, nil
	}
	terminated := false
	for _, b := range buf {
		if b&0x80 == 0 {
			terminated = true
			break
		}
	}
	if !terminated {
		return nil, false, nil
	}
	payload, err = s.ReadPacket()
	return payload, true, err
}

func (s *Session) readFullDecrypted(buf []byte) error {
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return err
	}
	if s.encReader != nil {
		s.encReader.XORKeyStream(buf, buf)
	}
	return nil
}

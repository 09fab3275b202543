package proto

import (
	"encoding/binary"
	"io"
	"io/ioutil"
	"math"
	"unicode/utf8"

	uuid "github.com/satori/go.uuid"
)

// WriteBool writes a single-byte boolean: 0x00 for false, 0x01 for true.
func WriteBool(w io.Writer, v bool) error {
	b := byte(0x00)
	if v {
		b = 0x01
	}
	_, err := w.Write([]byte{b})
	return err
}

// ReadBool reads a single-byte boolean, failing with ErrInvalidBool for any
// value other than 0x00/0x01.
func ReadBool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// WriteUint8 / ReadUint8 write and read a single unsigned byte.
func WriteUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func ReadUint8(r io.Reader) (uint8, error) {
	var b [1]byte
	_, err := io.ReadFull(r, b[:])
	return b[0], err
}

func WriteInt8(w io.Writer, v int8) error  { return WriteUint8(w, uint8(v)) }
func ReadInt8(r io.Reader) (int8, error)   { v, err := ReadUint8(r); return int8(v), err }

// WriteUint16 / ReadUint16 write and read a big-endian u16.
func WriteUint16(w io.Writer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func ReadUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func WriteInt16(w io.Writer, v int16) error { return WriteUint16(w, uint16(v)) }
func ReadInt16(r io.Reader) (int16, error)  { v, err := ReadUint16(r); return int16(v), err }

// WriteUint32 / ReadUint32 write and read a big-endian u32.
func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func ReadUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func WriteInt32(w io.Writer, v int32) error { return WriteUint32(w, uint32(v)) }
func ReadInt32(r io.Reader) (int32, error)  { v, err := ReadUint32(r); return int32(v), err }

// WriteUint64 / ReadUint64 write and read a big-endian u64.
func WriteUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func ReadUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func WriteInt64(w io.Writer, v int64) error { return WriteUint64(w, uint64(v)) }
func ReadInt64(r io.Reader) (int64, error)  { v, err := ReadUint64(r); return int64(v), err }

// WriteFloat32 / ReadFloat32 write and read a big-endian IEEE-754 f32.
func WriteFloat32(w io.Writer, v float32) error {
	return WriteUint32(w, math.Float32bits(v))
}

func ReadFloat32(r io.Reader) (float32, error) {
	u, err := ReadUint32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// WriteFloat64 / ReadFloat64 write and read a big-endian IEEE-754 f64.
func WriteFloat64(w io.Writer, v float64) error {
	return WriteUint64(w, math.Float64bits(v))
}

func ReadFloat64(r io.Reader) (float64, error) {
	u, err := ReadUint64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// String writes/reads a VarInt byte-length-prefixed UTF-8 string.
func WriteString(w io.Writer, s string) error {
	if err := WriteVarInt(w, VarInt(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func ReadString(r io.Reader) (string, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", ErrNegativeLength
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

// Chat and Identifier are newtype wrappers over String that additionally
// enforce the 32767-byte wire limit used for chat components and resource
// identifiers.
type Chat string
type Identifier string

const maxProtocolStringBytes = 32767

func WriteChat(w io.Writer, c Chat) error {
	if len(c) > maxProtocolStringBytes {
		return ErrStringTooLong
	}
	return WriteString(w, string(c))
}

func ReadChat(r io.Reader) (Chat, error) {
	s, err := readBoundedString(r, maxProtocolStringBytes)
	return Chat(s), err
}

func WriteIdentifier(w io.Writer, id Identifier) error {
	if len(id) > maxProtocolStringBytes {
		return ErrStringTooLong
	}
	return WriteString(w, string(id))
}

func ReadIdentifier(r io.Reader) (Identifier, error) {
	s, err := readBoundedString(r, maxProtocolStringBytes)
	return Identifier(s), err
}

func readBoundedString(r io.Reader, max int) (string, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", ErrNegativeLength
	}
	if int(n) > max {
		return "", ErrStringTooLong
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

// Angle is a single unsigned byte where one step is 1/256 of a full turn.
type Angle uint8

func WriteAngle(w io.Writer, a Angle) error { return WriteUint8(w, uint8(a)) }
func ReadAngle(r io.Reader) (Angle, error)  { v, err := ReadUint8(r); return Angle(v), err }

// UUID is a 16-byte big-endian universally unique identifier.
type UUID = uuid.UUID

func WriteUUID(w io.Writer, u UUID) error {
	_, err := w.Write(u.Bytes())
	return err
}

func ReadUUID(r io.Reader) (UUID, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return UUID{}, err
	}
	return uuid.FromBytes(b[:])
}

// ReadGreedy reads every remaining byte available from r (the rest of the
// current frame), with no length prefix.
func ReadGreedy(r io.Reader) ([]byte, error) {
	return ioutil.ReadAll(r)
}

// WriteGreedy writes raw bytes with no length prefix.
func WriteGreedy(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

// WriteVarIntBytes writes a VarInt byte-count followed by the raw bytes —
// the byte-array specialization of the length-prefixed vector used for
// DER blobs, shared secrets and verify tokens.
func WriteVarIntBytes(w io.Writer, b []byte) error {
	if err := WriteVarInt(w, VarInt(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func ReadVarIntBytes(r io.Reader) ([]byte, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

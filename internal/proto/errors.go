// Package proto implements the primitive wire encodings of the Minecraft
// Java Edition protocol: fixed-width integers, VarInt/VarLong, length
// prefixed strings, bit-packed positions, angles, UUIDs and the
// length-prefixed-vector and greedy-blob helpers built on top of them.
package proto

import "fmt"

// ErrVarIntTooLong is returned when a VarInt's 5th byte still has its continuation bit set.
var ErrVarIntTooLong = fmt.Errorf("proto: VarInt is too long")

// ErrVarLongTooLong is returned when a VarLong's 10th byte still has its continuation bit set.
var ErrVarLongTooLong = fmt.Errorf("proto: VarLong is too long")

// ErrInvalidBool is returned when a boolean byte is neither 0x00 nor 0x01.
var ErrInvalidBool = fmt.Errorf("proto: unexpected boolean")

// ErrPositionRange is returned when a Position component is out of its bit range.
var ErrPositionRange = fmt.Errorf("proto: position component out of range")

// ErrStringTooLong is returned when a Chat or Identifier string exceeds 32767 bytes.
var ErrStringTooLong = fmt.Errorf("proto: string exceeds 32767 bytes")

// ErrNegativeLength is returned when a length-prefixed vector's length prefix
// decodes to a negative host size.
var ErrNegativeLength = fmt.Errorf("proto: negative length prefix")

// ErrInvalidUTF8 is returned when a decoded string's bytes are not valid UTF-8.
var ErrInvalidUTF8 = fmt.Errorf("proto: invalid UTF-8")

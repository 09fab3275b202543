// Package packet implements the Minecraft 1.16.2 (protocol 751) packet
// catalogue: one Go type per wire variant, grouped by phase and direction,
// each carrying its own Encode/Decode pair built from internal/proto and
// internal/nbt primitives.
package packet

import (
	"fmt"
	"io"

	"mcproto.dev/client/internal/proto"
)

// Phase is one of the four protocol phases; it governs which packet
// catalogue is in effect for a connection.
type Phase int

const (
	PhaseHandshake Phase = iota
	PhaseStatus
	PhaseLogin
	PhasePlay
)

func (p Phase) String() string {
	switch p {
	case PhaseHandshake:
		return "handshake"
	case PhaseStatus:
		return "status"
	case PhaseLogin:
		return "login"
	case PhasePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Direction is which end of the connection originates a packet.
type Direction int

const (
	Serverbound Direction = iota
	Clientbound
)

// Packet is any wire variant in the catalogue: it knows its own
// discriminant and can serialize its fields.
type Packet interface {
	PacketID() proto.VarInt
	Encode(w io.Writer) error
}

// Decoder parses a packet body (the discriminant has already been
// consumed) into a concrete Packet value.
type Decoder func(r io.Reader) (Packet, error)

type catalogueKey struct {
	phase Phase
	dir   Direction
	id    proto.VarInt
}

var catalogue = map[catalogueKey]Decoder{}

// Register adds a decoder for (phase, dir, id) to the catalogue. Called
// from each phase's file at package init time.
func Register(phase Phase, dir Direction, id proto.VarInt, dec Decoder) {
	key := catalogueKey{phase, dir, id}
	if _, exists := catalogue[key]; exists {
		panic(fmt.Sprintf("packet: duplicate registration for %s/%d/%#x", phase, dir, id))
	}
	catalogue[key] = dec
}

// ErrUnknownPacketID is returned by Decode when no variant is registered
// for the given (phase, direction, id) triple.
var ErrUnknownPacketID = fmt.Errorf("packet: unknown packet id")

// Encode writes p's discriminant followed by its fields to w.
func Encode(w io.Writer, p Packet) error {
	if err := proto.WriteVarInt(w, p.PacketID()); err != nil {
		return err
	}
	return p.Encode(w)
}

// Decode reads a VarInt discriminant from r, then dispatches to the
// registered decoder for (phase, dir, id).
func Decode(r io.Reader, phase Phase, dir Direction) (Packet, error) {
	id, err := proto.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	dec, ok := catalogue[catalogueKey{phase, dir, id}]
	if !ok {
		return nil, fmt.Errorf("%w: phase=%s dir=%d id=%#x", ErrUnknownPacketID, phase, dir, id)
	}
	return dec(r)
}

package packet

import (
	"io"

	"mcproto.dev/client/internal/proto"
)

// NextState selects what follows the Handshake packet.
type NextState proto.VarInt

const (
	NextStateStatus NextState = 1
	NextStateLogin  NextState = 2
)

// Handshake is Handshake Serverbound 0x00, the only packet ever sent in the
// Handshake phase.
type Handshake struct {
	ProtocolVersion proto.VarInt
	ServerAddress   string
	ServerPort      uint16
	NextState       NextState
}

func (Handshake) PacketID() proto.VarInt { return 0x00 }

func (h Handshake) Encode(w io.Writer) error {
	if err := proto.WriteVarInt(w, h.ProtocolVersion); err != nil {
		return err
	}
	if err := proto.WriteString(w, h.ServerAddress); err != nil {
		return err
	}
	if err := proto.WriteUint16(w, h.ServerPort); err != nil {
		return err
	}
	return proto.WriteVarInt(w, proto.VarInt(h.NextState))
}

func decodeHandshake(r io.Reader) (Packet, error) {
	var h Handshake
	var err error
	if h.ProtocolVersion, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if h.ServerAddress, err = proto.ReadString(r); err != nil {
		return nil, err
	}
	if h.ServerPort, err = proto.ReadUint16(r); err != nil {
		return nil, err
	}
	next, err := proto.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	h.NextState = NextState(next)
	return h, nil
}

func init() {
	Register(PhaseHandshake, Serverbound, 0x00, decodeHandshake)
}

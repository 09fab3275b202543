package packet

import (
	"io"

	"mcproto.dev/client/internal/proto"
)

// StatusRequest is Status Serverbound 0x00: an empty request for the
// server's status JSON.
type StatusRequest struct{}

func (StatusRequest) PacketID() proto.VarInt { return 0x00 }
func (StatusRequest) Encode(io.Writer) error { return nil }
func decodeStatusRequest(io.Reader) (Packet, error) { return StatusRequest{}, nil }

// StatusPing is Status Serverbound 0x01: an echo payload, conventionally
// the current unix-ms timestamp.
type StatusPing struct {
	Payload int64
}

func (StatusPing) PacketID() proto.VarInt { return 0x01 }

func (p StatusPing) Encode(w io.Writer) error { return proto.WriteInt64(w, p.Payload) }

func decodeStatusPing(r io.Reader) (Packet, error) {
	v, err := proto.ReadInt64(r)
	return StatusPing{Payload: v}, err
}

// StatusResponse is Status Clientbound 0x00: the server's status as a raw
// JSON string (server version, player sample, MOTD, favicon, ...).
type StatusResponse struct {
	JSON string
}

func (StatusResponse) PacketID() proto.VarInt { return 0x00 }

func (p StatusResponse) Encode(w io.Writer) error { return proto.WriteString(w, p.JSON) }

func decodeStatusResponse(r io.Reader) (Packet, error) {
	s, err := proto.ReadString(r)
	return StatusResponse{JSON: s}, err
}

// StatusPong is Status Clientbound 0x01: echoes StatusPing's payload back.
type StatusPong struct {
	Payload int64
}

func (StatusPong) PacketID() proto.VarInt { return 0x01 }

func (p StatusPong) Encode(w io.Writer) error { return proto.WriteInt64(w, p.Payload) }

func decodeStatusPong(r io.Reader) (Packet, error) {
	v, err := proto.ReadInt64(r)
	return StatusPong{Payload: v}, err
}

func init() {
	Register(PhaseStatus, Serverbound, 0x00, decodeStatusRequest)
	Register(PhaseStatus, Serverbound, 0x01, decodeStatusPing)
	Register(PhaseStatus, Clientbound, 0x00, decodeStatusResponse)
	Register(PhaseStatus, Clientbound, 0x01, decodeStatusPong)
}

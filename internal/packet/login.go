package packet

import (
	"io"

	"mcproto.dev/client/internal/proto"
)

// LoginDisconnect is Login Clientbound 0x00: the server refuses the login
// attempt and supplies a human-readable reason.
type LoginDisconnect struct {
	Reason proto.Chat
}

func (LoginDisconnect) PacketID() proto.VarInt { return 0x00 }

func (p LoginDisconnect) Encode(w io.Writer) error { return proto.WriteChat(w, p.Reason) }

func decodeLoginDisconnect(r io.Reader) (Packet, error) {
	reason, err := proto.ReadChat(r)
	return LoginDisconnect{Reason: reason}, err
}

// EncryptionRequest is Login Clientbound 0x01: triggers the encryption and
// session-verification exchange described in spec.md section 4.5.
type EncryptionRequest struct {
	ServerID     string
	PublicKeyDER []byte
	VerifyToken  []byte
}

func (EncryptionRequest) PacketID() proto.VarInt { return 0x01 }

func (p EncryptionRequest) Encode(w io.Writer) error {
	if err := proto.WriteString(w, p.ServerID); err != nil {
		return err
	}
	if err := proto.WriteVarIntBytes(w, p.PublicKeyDER); err != nil {
		return err
	}
	return proto.WriteVarIntBytes(w, p.VerifyToken)
}

func decodeEncryptionRequest(r io.Reader) (Packet, error) {
	var p EncryptionRequest
	var err error
	if p.ServerID, err = proto.ReadString(r); err != nil {
		return nil, err
	}
	if p.PublicKeyDER, err = proto.ReadVarIntBytes(r); err != nil {
		return nil, err
	}
	if p.VerifyToken, err = proto.ReadVarIntBytes(r); err != nil {
		return nil, err
	}
	return p, nil
}

// LoginSuccess is Login Clientbound 0x02: the player's identity is
// confirmed and the connection is about to enter Play.
type LoginSuccess struct {
	UUID     proto.UUID
	Username string
}

func (LoginSuccess) PacketID() proto.VarInt { return 0x02 }

func (p LoginSuccess) Encode(w io.Writer) error {
	if err := proto.WriteUUID(w, p.UUID); err != nil {
		return err
	}
	return proto.WriteString(w, p.Username)
}

func decodeLoginSuccess(r io.Reader) (Packet, error) {
	var p LoginSuccess
	var err error
	if p.UUID, err = proto.ReadUUID(r); err != nil {
		return nil, err
	}
	if p.Username, err = proto.ReadString(r); err != nil {
		return nil, err
	}
	return p, nil
}

// SetCompression is Login Clientbound 0x03: negative thresholds disable
// compression, non-negative thresholds enable it.
type SetCompression struct {
	Threshold proto.VarInt
}

func (SetCompression) PacketID() proto.VarInt { return 0x03 }

func (p SetCompression) Encode(w io.Writer) error { return proto.WriteVarInt(w, p.Threshold) }

func decodeSetCompression(r io.Reader) (Packet, error) {
	n, err := proto.ReadVarInt(r)
	return SetCompression{Threshold: n}, err
}

// LoginPluginRequest is Login Clientbound 0x04: a server mod asking the
// client about an unrecognized channel; per spec.md section 4.5 this
// client always answers with success=false.
type LoginPluginRequest struct {
	MessageID proto.VarInt
	Channel   proto.Identifier
	Data      []byte
}

func (LoginPluginRequest) PacketID() proto.VarInt { return 0x04 }

func (p LoginPluginRequest) Encode(w io.Writer) error {
	if err := proto.WriteVarInt(w, p.MessageID); err != nil {
		return err
	}
	if err := proto.WriteIdentifier(w, p.Channel); err != nil {
		return err
	}
	return proto.WriteGreedy(w, p.Data)
}

func decodeLoginPluginRequest(r io.Reader) (Packet, error) {
	var p LoginPluginRequest
	var err error
	if p.MessageID, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.Channel, err = proto.ReadIdentifier(r); err != nil {
		return nil, err
	}
	if p.Data, err = proto.ReadGreedy(r); err != nil {
		return nil, err
	}
	return p, nil
}

// LoginStart is Login Serverbound 0x00: the first packet sent after
// Handshake{next_state=Login}.
type LoginStart struct {
	Name string
}

func (LoginStart) PacketID() proto.VarInt { return 0x00 }

func (p LoginStart) Encode(w io.Writer) error { return proto.WriteString(w, p.Name) }

func decodeLoginStart(r io.Reader) (Packet, error) {
	s, err := proto.ReadString(r)
	return LoginStart{Name: s}, err
}

// EncryptionResponse is Login Serverbound 0x01: the client's answer to
// EncryptionRequest, both fields encrypted with the server's RSA public key.
type EncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (EncryptionResponse) PacketID() proto.VarInt { return 0x01 }

func (p EncryptionResponse) Encode(w io.Writer) error {
	if err := proto.WriteVarIntBytes(w, p.SharedSecret); err != nil {
		return err
	}
	return proto.WriteVarIntBytes(w, p.VerifyToken)
}

func decodeEncryptionResponse(r io.Reader) (Packet, error) {
	var p EncryptionResponse
	var err error
	if p.SharedSecret, err = proto.ReadVarIntBytes(r); err != nil {
		return nil, err
	}
	if p.VerifyToken, err = proto.ReadVarIntBytes(r); err != nil {
		return nil, err
	}
	return p, nil
}

// LoginPluginResponse is Login Serverbound 0x02: this client always
// responds success=false, data=empty per spec.md section 4.5.
type LoginPluginResponse struct {
	MessageID proto.VarInt
	Success   bool
	Data      []byte
}

func (LoginPluginResponse) PacketID() proto.VarInt { return 0x02 }

func (p LoginPluginResponse) Encode(w io.Writer) error {
	if err := proto.WriteVarInt(w, p.MessageID); err != nil {
		return err
	}
	if err := proto.WriteBool(w, p.Success); err != nil {
		return err
	}
	return proto.WriteGreedy(w, p.Data)
}

func decodeLoginPluginResponse(r io.Reader) (Packet, error) {
	var p LoginPluginResponse
	var err error
	if p.MessageID, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.Success, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	if p.Data, err = proto.ReadGreedy(r); err != nil {
		return nil, err
	}
	return p, nil
}

func init() {
	Register(PhaseLogin, Clientbound, 0x00, decodeLoginDisconnect)
	Register(PhaseLogin, Clientbound, 0x01, decodeEncryptionRequest)
	Register(PhaseLogin, Clientbound, 0x02, decodeLoginSuccess)
	Register(PhaseLogin, Clientbound, 0x03, decodeSetCompression)
	Register(PhaseLogin, Clientbound, 0x04, decodeLoginPluginRequest)
	Register(PhaseLogin, Serverbound, 0x00, decodeLoginStart)
	Register(PhaseLogin, Serverbound, 0x01, decodeEncryptionResponse)
	Register(PhaseLogin, Serverbound, 0x02, decodeLoginPluginResponse)
}

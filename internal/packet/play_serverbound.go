package packet

import (
	"io"

	"mcproto.dev/client/internal/proto"
)

// TeleportConfirm is Play Serverbound 0x00: acknowledges a
// PlayerPositionAndLookClientbound by echoing its TeleportID.
type TeleportConfirm struct {
	TeleportID proto.VarInt
}

func (TeleportConfirm) PacketID() proto.VarInt { return 0x00 }

func (p TeleportConfirm) Encode(w io.Writer) error { return proto.WriteVarInt(w, p.TeleportID) }

func decodeTeleportConfirm(r io.Reader) (Packet, error) {
	v, err := proto.ReadVarInt(r)
	return TeleportConfirm{TeleportID: v}, err
}

// KeepAliveServerbound is Play Serverbound 0x10: must echo the id from the
// most recent KeepAliveClientbound.
type KeepAliveServerbound struct {
	KeepAliveID int64
}

func (KeepAliveServerbound) PacketID() proto.VarInt { return 0x10 }

func (p KeepAliveServerbound) Encode(w io.Writer) error { return proto.WriteInt64(w, p.KeepAliveID) }

func decodeKeepAliveServerbound(r io.Reader) (Packet, error) {
	v, err := proto.ReadInt64(r)
	return KeepAliveServerbound{KeepAliveID: v}, err
}

// ClientSettings is Play Serverbound 0x05: sent once immediately after
// JoinGame and again whenever the player changes their options.
type ClientSettings struct {
	Locale             string
	ViewDistance       int8
	ChatMode           proto.VarInt
	ChatColors         bool
	DisplayedSkinParts uint8
	MainHand           proto.VarInt
}

func (ClientSettings) PacketID() proto.VarInt { return 0x05 }

func (p ClientSettings) Encode(w io.Writer) error {
	if err := proto.WriteString(w, p.Locale); err != nil {
		return err
	}
	if err := proto.WriteInt8(w, p.ViewDistance); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.ChatMode); err != nil {
		return err
	}
	if err := proto.WriteBool(w, p.ChatColors); err != nil {
		return err
	}
	if err := proto.WriteUint8(w, p.DisplayedSkinParts); err != nil {
		return err
	}
	return proto.WriteVarInt(w, p.MainHand)
}

func decodeClientSettings(r io.Reader) (Packet, error) {
	var p ClientSettings
	var err error
	if p.Locale, err = proto.ReadString(r); err != nil {
		return nil, err
	}
	if p.ViewDistance, err = proto.ReadInt8(r); err != nil {
		return nil, err
	}
	if p.ChatMode, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.ChatColors, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	if p.DisplayedSkinParts, err = proto.ReadUint8(r); err != nil {
		return nil, err
	}
	if p.MainHand, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	return p, nil
}

// PlayerPositionAndRotationServerbound is Play Serverbound 0x13: the
// client's periodic absolute position+rotation report.
type PlayerPositionAndRotationServerbound struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

func (PlayerPositionAndRotationServerbound) PacketID() proto.VarInt { return 0x13 }

func (p PlayerPositionAndRotationServerbound) Encode(w io.Writer) error {
	if err := proto.WriteFloat64(w, p.X); err != nil {
		return err
	}
	if err := proto.WriteFloat64(w, p.Y); err != nil {
		return err
	}
	if err := proto.WriteFloat64(w, p.Z); err != nil {
		return err
	}
	if err := proto.WriteFloat32(w, p.Yaw); err != nil {
		return err
	}
	if err := proto.WriteFloat32(w, p.Pitch); err != nil {
		return err
	}
	return proto.WriteBool(w, p.OnGround)
}

func decodePlayerPositionAndRotationServerbound(r io.Reader) (Packet, error) {
	var p PlayerPositionAndRotationServerbound
	var err error
	if p.X, err = proto.ReadFloat64(r); err != nil {
		return nil, err
	}
	if p.Y, err = proto.ReadFloat64(r); err != nil {
		return nil, err
	}
	if p.Z, err = proto.ReadFloat64(r); err != nil {
		return nil, err
	}
	if p.Yaw, err = proto.ReadFloat32(r); err != nil {
		return nil, err
	}
	if p.Pitch, err = proto.ReadFloat32(r); err != nil {
		return nil, err
	}
	if p.OnGround, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	return p, nil
}

// PlayerPositionServerbound is Play Serverbound 0x12: position-only report
// (yaw/pitch unchanged).
type PlayerPositionServerbound struct {
	X, Y, Z  float64
	OnGround bool
}

func (PlayerPositionServerbound) PacketID() proto.VarInt { return 0x12 }

func (p PlayerPositionServerbound) Encode(w io.Writer) error {
	if err := proto.WriteFloat64(w, p.X); err != nil {
		return err
	}
	if err := proto.WriteFloat64(w, p.Y); err != nil {
		return err
	}
	if err := proto.WriteFloat64(w, p.Z); err != nil {
		return err
	}
	return proto.WriteBool(w, p.OnGround)
}

func decodePlayerPositionServerbound(r io.Reader) (Packet, error) {
	var p PlayerPositionServerbound
	var err error
	if p.X, err = proto.ReadFloat64(r); err != nil {
		return nil, err
	}
	if p.Y, err = proto.ReadFloat64(r); err != nil {
		return nil, err
	}
	if p.Z, err = proto.ReadFloat64(r); err != nil {
		return nil, err
	}
	if p.OnGround, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	return p, nil
}

// ChatMessageServerbound is Play Serverbound 0x03: raw chat input, max 256
// characters.
type ChatMessageServerbound struct {
	Message string
}

func (ChatMessageServerbound) PacketID() proto.VarInt { return 0x03 }

func (p ChatMessageServerbound) Encode(w io.Writer) error { return proto.WriteString(w, p.Message) }

func decodeChatMessageServerbound(r io.Reader) (Packet, error) {
	s, err := proto.ReadString(r)
	return ChatMessageServerbound{Message: s}, err
}

// InteractEntity is Play Serverbound 0x0E: a nested InteractEntityAction
// union targeting a specific entity id.
type InteractEntity struct {
	EntityID proto.VarInt
	Action   InteractEntityAction
	Sneaking bool
}

func (InteractEntity) PacketID() proto.VarInt { return 0x0E }

func (p InteractEntity) Encode(w io.Writer) error {
	if err := proto.WriteVarInt(w, p.EntityID); err != nil {
		return err
	}
	if err := writeInteractEntityAction(w, p.Action); err != nil {
		return err
	}
	return proto.WriteBool(w, p.Sneaking)
}

func decodeInteractEntity(r io.Reader) (Packet, error) {
	var p InteractEntity
	var err error
	if p.EntityID, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.Action, err = readInteractEntityAction(r); err != nil {
		return nil, err
	}
	if p.Sneaking, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	return p, nil
}

// ClickWindow is Play Serverbound 0x09: a slot click in an open window.
type ClickWindow struct {
	WindowID    uint8
	Slot        int16
	Button      int8
	ActionID    int16
	Mode        proto.VarInt
	ClickedItem Slot
}

func (ClickWindow) PacketID() proto.VarInt { return 0x09 }

func (p ClickWindow) Encode(w io.Writer) error {
	if err := proto.WriteUint8(w, p.WindowID); err != nil {
		return err
	}
	if err := proto.WriteInt16(w, p.Slot); err != nil {
		return err
	}
	if err := proto.WriteInt8(w, p.Button); err != nil {
		return err
	}
	if err := proto.WriteInt16(w, p.ActionID); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.Mode); err != nil {
		return err
	}
	return WriteSlot(w, p.ClickedItem)
}

func decodeClickWindow(r io.Reader) (Packet, error) {
	var p ClickWindow
	var err error
	if p.WindowID, err = proto.ReadUint8(r); err != nil {
		return nil, err
	}
	if p.Slot, err = proto.ReadInt16(r); err != nil {
		return nil, err
	}
	if p.Button, err = proto.ReadInt8(r); err != nil {
		return nil, err
	}
	if p.ActionID, err = proto.ReadInt16(r); err != nil {
		return nil, err
	}
	if p.Mode, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.ClickedItem, err = ReadSlot(r); err != nil {
		return nil, err
	}
	return p, nil
}

// HeldItemChangeServerbound is Play Serverbound 0x25: selects a hotbar
// slot, mirroring HeldItemChangeClientbound's shape.
type HeldItemChangeServerbound struct {
	Slot int16
}

func (HeldItemChangeServerbound) PacketID() proto.VarInt { return 0x25 }

func (p HeldItemChangeServerbound) Encode(w io.Writer) error { return proto.WriteInt16(w, p.Slot) }

func decodeHeldItemChangeServerbound(r io.Reader) (Packet, error) {
	v, err := proto.ReadInt16(r)
	return HeldItemChangeServerbound{Slot: v}, err
}

func init() {
	Register(PhasePlay, Serverbound, 0x00, decodeTeleportConfirm)
	Register(PhasePlay, Serverbound, 0x03, decodeChatMessageServerbound)
	Register(PhasePlay, Serverbound, 0x05, decodeClientSettings)
	Register(PhasePlay, Serverbound, 0x09, decodeClickWindow)
	Register(PhasePlay, Serverbound, 0x0E, decodeInteractEntity)
	Register(PhasePlay, Serverbound, 0x10, decodeKeepAliveServerbound)
	Register(PhasePlay, Serverbound, 0x12, decodePlayerPositionServerbound)
	Register(PhasePlay, Serverbound, 0x13, decodePlayerPositionAndRotationServerbound)
	Register(PhasePlay, Serverbound, 0x25, decodeHeldItemChangeServerbound)
}

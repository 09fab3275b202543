package packet

import (
	"io"

	"mcproto.dev/client/internal/nbt"
	"mcproto.dev/client/internal/proto"
)

// JoinGame is Play Clientbound 0x24: the first packet of the Play phase,
// carrying the entity id, dimension codec and world state the session
// driver records before replying with ClientSettings.
type JoinGame struct {
	EntityID            int32
	IsHardcore          bool
	Gamemode            uint8
	PreviousGamemode    int8
	WorldNames          []proto.Identifier
	DimensionCodec      nbt.Named
	Dimension           nbt.Named
	WorldName           proto.Identifier
	HashedSeed          int64
	MaxPlayers          proto.VarInt
	ViewDistance        proto.VarInt
	ReducedDebugInfo    bool
	EnableRespawnScreen bool
	IsDebug             bool
	IsFlat              bool
}

func (JoinGame) PacketID() proto.VarInt { return 0x24 }

func (p JoinGame) Encode(w io.Writer) error {
	if err := proto.WriteInt32(w, p.EntityID); err != nil {
		return err
	}
	if err := proto.WriteBool(w, p.IsHardcore); err != nil {
		return err
	}
	if err := proto.WriteUint8(w, p.Gamemode); err != nil {
		return err
	}
	if err := proto.WriteInt8(w, p.PreviousGamemode); err != nil {
		return err
	}
	if err := proto.WriteVector(w, proto.VarIntLen, p.WorldNames, proto.WriteIdentifier); err != nil {
		return err
	}
	if err := nbt.WriteNamed(w, p.DimensionCodec); err != nil {
		return err
	}
	if err := nbt.WriteNamed(w, p.Dimension); err != nil {
		return err
	}
	if err := proto.WriteIdentifier(w, p.WorldName); err != nil {
		return err
	}
	if err := proto.WriteInt64(w, p.HashedSeed); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.MaxPlayers); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.ViewDistance); err != nil {
		return err
	}
	if err := proto.WriteBool(w, p.ReducedDebugInfo); err != nil {
		return err
	}
	if err := proto.WriteBool(w, p.EnableRespawnScreen); err != nil {
		return err
	}
	if err := proto.WriteBool(w, p.IsDebug); err != nil {
		return err
	}
	return proto.WriteBool(w, p.IsFlat)
}

func decodeJoinGame(r io.Reader) (Packet, error) {
	var p JoinGame
	var err error
	if p.EntityID, err = proto.ReadInt32(r); err != nil {
		return nil, err
	}
	if p.IsHardcore, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	if p.Gamemode, err = proto.ReadUint8(r); err != nil {
		return nil, err
	}
	if p.PreviousGamemode, err = proto.ReadInt8(r); err != nil {
		return nil, err
	}
	if p.WorldNames, err = proto.ReadVector(r, proto.VarIntLen, proto.ReadIdentifier); err != nil {
		return nil, err
	}
	if p.DimensionCodec, err = nbt.ReadNamed(r); err != nil {
		return nil, err
	}
	if p.Dimension, err = nbt.ReadNamed(r); err != nil {
		return nil, err
	}
	if p.WorldName, err = proto.ReadIdentifier(r); err != nil {
		return nil, err
	}
	if p.HashedSeed, err = proto.ReadInt64(r); err != nil {
		return nil, err
	}
	if p.MaxPlayers, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.ViewDistance, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.ReducedDebugInfo, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	if p.EnableRespawnScreen, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	if p.IsDebug, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	if p.IsFlat, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	return p, nil
}

// KeepAlive is Play Clientbound 0x1F: the session driver must echo the id
// back via a serverbound KeepAlive within the configured timeout.
type KeepAliveClientbound struct {
	KeepAliveID int64
}

func (KeepAliveClientbound) PacketID() proto.VarInt { return 0x1F }

func (p KeepAliveClientbound) Encode(w io.Writer) error { return proto.WriteInt64(w, p.KeepAliveID) }

func decodeKeepAliveClientbound(r io.Reader) (Packet, error) {
	v, err := proto.ReadInt64(r)
	return KeepAliveClientbound{KeepAliveID: v}, err
}

// PlayerPositionAndLookClientbound is Play Clientbound 0x34: an absolute or
// relative teleport, selected per-component by Flags; the session driver
// must answer with TeleportConfirm carrying TeleportID.
type PlayerPositionAndLookClientbound struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      uint8
	TeleportID proto.VarInt
}

const (
	PosLookFlagX     uint8 = 0x01
	PosLookFlagY     uint8 = 0x02
	PosLookFlagZ     uint8 = 0x04
	PosLookFlagYaw   uint8 = 0x08
	PosLookFlagPitch uint8 = 0x10
)

func (PlayerPositionAndLookClientbound) PacketID() proto.VarInt { return 0x34 }

func (p PlayerPositionAndLookClientbound) Encode(w io.Writer) error {
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
	if err := proto.WriteUint8(w, p.Flags); err != nil {
		return err
	}
	return proto.WriteVarInt(w, p.TeleportID)
}

func decodePlayerPositionAndLookClientbound(r io.Reader) (Packet, error) {
	var p PlayerPositionAndLookClientbound
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
	if p.Flags, err = proto.ReadUint8(r); err != nil {
		return nil, err
	}
	if p.TeleportID, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	return p, nil
}

// HeldItemChangeClientbound is Play Clientbound 0x3F: sets which hotbar
// slot is active.
type HeldItemChangeClientbound struct {
	Slot int8
}

func (HeldItemChangeClientbound) PacketID() proto.VarInt { return 0x3F }

func (p HeldItemChangeClientbound) Encode(w io.Writer) error { return proto.WriteInt8(w, p.Slot) }

func decodeHeldItemChangeClientbound(r io.Reader) (Packet, error) {
	v, err := proto.ReadInt8(r)
	return HeldItemChangeClientbound{Slot: v}, err
}

// PlayDisconnect is Play Clientbound 0x19: the server is terminating the
// Play session with a human-readable reason.
type PlayDisconnect struct {
	Reason proto.Chat
}

func (PlayDisconnect) PacketID() proto.VarInt { return 0x19 }

func (p PlayDisconnect) Encode(w io.Writer) error { return proto.WriteChat(w, p.Reason) }

func decodePlayDisconnect(r io.Reader) (Packet, error) {
	reason, err := proto.ReadChat(r)
	return PlayDisconnect{Reason: reason}, err
}

// ChatMessageClientbound is Play Clientbound 0x0E: a chat or system message
// with a position indicating where the client should render it.
type ChatMessageClientbound struct {
	Message  proto.Chat
	Position int8
	Sender   proto.UUID
}

func (ChatMessageClientbound) PacketID() proto.VarInt { return 0x0E }

func (p ChatMessageClientbound) Encode(w io.Writer) error {
	if err := proto.WriteChat(w, p.Message); err != nil {
		return err
	}
	if err := proto.WriteInt8(w, p.Position); err != nil {
		return err
	}
	return proto.WriteUUID(w, p.Sender)
}

func decodeChatMessageClientbound(r io.Reader) (Packet, error) {
	var p ChatMessageClientbound
	var err error
	if p.Message, err = proto.ReadChat(r); err != nil {
		return nil, err
	}
	if p.Position, err = proto.ReadInt8(r); err != nil {
		return nil, err
	}
	if p.Sender, err = proto.ReadUUID(r); err != nil {
		return nil, err
	}
	return p, nil
}

// PlayerAbilitiesClientbound is Play Clientbound 0x30: describes the
// player's flight/invulnerability state and movement speeds.
type PlayerAbilitiesClientbound struct {
	Flags               uint8
	FlyingSpeed         float32
	FieldOfViewModifier float32
}

func (PlayerAbilitiesClientbound) PacketID() proto.VarInt { return 0x30 }

func (p PlayerAbilitiesClientbound) Encode(w io.Writer) error {
	if err := proto.WriteUint8(w, p.Flags); err != nil {
		return err
	}
	if err := proto.WriteFloat32(w, p.FlyingSpeed); err != nil {
		return err
	}
	return proto.WriteFloat32(w, p.FieldOfViewModifier)
}

func decodePlayerAbilitiesClientbound(r io.Reader) (Packet, error) {
	var p PlayerAbilitiesClientbound
	var err error
	if p.Flags, err = proto.ReadUint8(r); err != nil {
		return nil, err
	}
	if p.FlyingSpeed, err = proto.ReadFloat32(r); err != nil {
		return nil, err
	}
	if p.FieldOfViewModifier, err = proto.ReadFloat32(r); err != nil {
		return nil, err
	}
	return p, nil
}

// CombatEventClientbound is Play Clientbound 0x31: see CombatEvent for the
// nested VarInt-discriminated union.
type CombatEventClientbound struct {
	Event CombatEvent
}

func (CombatEventClientbound) PacketID() proto.VarInt { return 0x31 }

func (p CombatEventClientbound) Encode(w io.Writer) error { return WriteCombatEvent(w, p.Event) }

func decodeCombatEventClientbound(r io.Reader) (Packet, error) {
	e, err := ReadCombatEvent(r)
	return CombatEventClientbound{Event: e}, err
}

// BossBarClientbound is Play Clientbound 0x0C: a UUID plus a nested
// BossBarAction union.
type BossBarClientbound struct {
	UUID   proto.UUID
	Action BossBarAction
}

func (BossBarClientbound) PacketID() proto.VarInt { return 0x0C }

func (p BossBarClientbound) Encode(w io.Writer) error {
	if err := proto.WriteUUID(w, p.UUID); err != nil {
		return err
	}
	return WriteBossBarAction(w, p.Action)
}

func decodeBossBarClientbound(r io.Reader) (Packet, error) {
	var p BossBarClientbound
	var err error
	if p.UUID, err = proto.ReadUUID(r); err != nil {
		return nil, err
	}
	if p.Action, err = ReadBossBarAction(r); err != nil {
		return nil, err
	}
	return p, nil
}

// WorldBorderClientbound is Play Clientbound 0x3D: a nested
// WorldBorderAction union.
type WorldBorderClientbound struct {
	Action WorldBorderAction
}

func (WorldBorderClientbound) PacketID() proto.VarInt { return 0x3D }

func (p WorldBorderClientbound) Encode(w io.Writer) error { return WriteWorldBorderAction(w, p.Action) }

func decodeWorldBorderClientbound(r io.Reader) (Packet, error) {
	a, err := ReadWorldBorderAction(r)
	return WorldBorderClientbound{Action: a}, err
}

// TitleClientbound is Play Clientbound 0x4F: a nested TitleAction union.
type TitleClientbound struct {
	Action TitleAction
}

func (TitleClientbound) PacketID() proto.VarInt { return 0x4F }

func (p TitleClientbound) Encode(w io.Writer) error { return WriteTitleAction(w, p.Action) }

func decodeTitleClientbound(r io.Reader) (Packet, error) {
	a, err := ReadTitleAction(r)
	return TitleClientbound{Action: a}, err
}

// PlayerInfoClientbound is Play Clientbound 0x32: a VarInt action kind
// followed by a vector of per-player PlayerInfoAction entries sharing that
// kind.
type PlayerInfoClientbound struct {
	Kind    PlayerInfoActionKind
	Players []PlayerInfoAction
}

func (PlayerInfoClientbound) PacketID() proto.VarInt { return 0x32 }

func (p PlayerInfoClientbound) Encode(w io.Writer) error {
	if err := proto.WriteVarInt(w, proto.VarInt(p.Kind)); err != nil {
		return err
	}
	return proto.WriteVector(w, proto.VarIntLen, p.Players, writePlayerInfoAction)
}

func decodePlayerInfoClientbound(r io.Reader) (Packet, error) {
	kind, err := proto.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	players, err := proto.ReadVector(r, proto.VarIntLen, func(r io.Reader) (PlayerInfoAction, error) {
		return readPlayerInfoAction(r, PlayerInfoActionKind(kind))
	})
	if err != nil {
		return nil, err
	}
	return PlayerInfoClientbound{Kind: PlayerInfoActionKind(kind), Players: players}, nil
}

// SetSlotClientbound is Play Clientbound 0x15: writes one Slot into a
// window's slot array (window id -1, slot -1 is the cursor item).
type SetSlotClientbound struct {
	WindowID int8
	Slot     int16
	SlotData Slot
}

func (SetSlotClientbound) PacketID() proto.VarInt { return 0x15 }

func (p SetSlotClientbound) Encode(w io.Writer) error {
	if err := proto.WriteInt8(w, p.WindowID); err != nil {
		return err
	}
	if err := proto.WriteInt16(w, p.Slot); err != nil {
		return err
	}
	return WriteSlot(w, p.SlotData)
}

func decodeSetSlotClientbound(r io.Reader) (Packet, error) {
	var p SetSlotClientbound
	var err error
	if p.WindowID, err = proto.ReadInt8(r); err != nil {
		return nil, err
	}
	if p.Slot, err = proto.ReadInt16(r); err != nil {
		return nil, err
	}
	if p.SlotData, err = ReadSlot(r); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateLight is Play Clientbound 0x23. TrustEdges reflects the 1.16.2
// (protocol 751) wire shape named in spec.md section 9's open questions:
// the field is present and must be round-tripped even though this client
// has no lighting engine to act on it.
type UpdateLight struct {
	ChunkX, ChunkZ      proto.VarInt
	TrustEdges          bool
	SkyLightMask        proto.VarInt
	BlockLightMask      proto.VarInt
	EmptySkyLightMask   proto.VarInt
	EmptyBlockLightMask proto.VarInt
	SkyLightArrays      [][]byte
	BlockLightArrays    [][]byte
}

func (UpdateLight) PacketID() proto.VarInt { return 0x23 }

func writeLengthPrefixedBytes(w io.Writer, b []byte) error {
	return proto.WriteVector(w, proto.VarIntLen, b, func(w io.Writer, by byte) error {
		return proto.WriteUint8(w, by)
	})
}

func readLengthPrefixedBytes(r io.Reader) ([]byte, error) {
	bytes, err := proto.ReadVector(r, proto.VarIntLen, proto.ReadUint8)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

func (p UpdateLight) Encode(w io.Writer) error {
	if err := proto.WriteVarInt(w, p.ChunkX); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.ChunkZ); err != nil {
		return err
	}
	if err := proto.WriteBool(w, p.TrustEdges); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.SkyLightMask); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.BlockLightMask); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.EmptySkyLightMask); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.EmptyBlockLightMask); err != nil {
		return err
	}
	if err := proto.WriteVector(w, proto.VarIntLen, p.SkyLightArrays, writeLengthPrefixedBytes); err != nil {
		return err
	}
	return proto.WriteVector(w, proto.VarIntLen, p.BlockLightArrays, writeLengthPrefixedBytes)
}

func decodeUpdateLight(r io.Reader) (Packet, error) {
	var p UpdateLight
	var err error
	if p.ChunkX, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.ChunkZ, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.TrustEdges, err = proto.ReadBool(r); err != nil {
		return nil, err
	}
	if p.SkyLightMask, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.BlockLightMask, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.EmptySkyLightMask, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.EmptyBlockLightMask, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.SkyLightArrays, err = proto.ReadVector(r, proto.VarIntLen, readLengthPrefixedBytes); err != nil {
		return nil, err
	}
	if p.BlockLightArrays, err = proto.ReadVector(r, proto.VarIntLen, readLengthPrefixedBytes); err != nil {
		return nil, err
	}
	return p, nil
}

// TabCompleteClientbound is Play Clientbound 0x0F: autocomplete results for
// a serverbound request, each match optionally carrying a tooltip.
type TabCompleteMatch struct {
	Match      string
	HasTooltip bool
	Tooltip    proto.Chat
}

type TabCompleteClientbound struct {
	TransactionID proto.VarInt
	Start, Length proto.VarInt
	Matches       []TabCompleteMatch
}

func (TabCompleteClientbound) PacketID() proto.VarInt { return 0x0F }

func writeTabCompleteMatch(w io.Writer, m TabCompleteMatch) error {
	if err := proto.WriteString(w, m.Match); err != nil {
		return err
	}
	if err := proto.WriteBool(w, m.HasTooltip); err != nil {
		return err
	}
	if m.HasTooltip {
		return proto.WriteChat(w, m.Tooltip)
	}
	return nil
}

func readTabCompleteMatch(r io.Reader) (TabCompleteMatch, error) {
	var m TabCompleteMatch
	var err error
	if m.Match, err = proto.ReadString(r); err != nil {
		return m, err
	}
	if m.HasTooltip, err = proto.ReadBool(r); err != nil {
		return m, err
	}
	if m.HasTooltip {
		if m.Tooltip, err = proto.ReadChat(r); err != nil {
			return m, err
		}
	}
	return m, nil
}

func (p TabCompleteClientbound) Encode(w io.Writer) error {
	if err := proto.WriteVarInt(w, p.TransactionID); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.Start); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, p.Length); err != nil {
		return err
	}
	return proto.WriteVector(w, proto.VarIntLen, p.Matches, writeTabCompleteMatch)
}

func decodeTabCompleteClientbound(r io.Reader) (Packet, error) {
	var p TabCompleteClientbound
	var err error
	if p.TransactionID, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.Start, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.Length, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	if p.Matches, err = proto.ReadVector(r, proto.VarIntLen, readTabCompleteMatch); err != nil {
		return nil, err
	}
	return p, nil
}

func init() {
	Register(PhasePlay, Clientbound, 0x0C, decodeBossBarClientbound)
	Register(PhasePlay, Clientbound, 0x0E, decodeChatMessageClientbound)
	Register(PhasePlay, Clientbound, 0x0F, decodeTabCompleteClientbound)
	Register(PhasePlay, Clientbound, 0x15, decodeSetSlotClientbound)
	Register(PhasePlay, Clientbound, 0x19, decodePlayDisconnect)
	Register(PhasePlay, Clientbound, 0x1F, decodeKeepAliveClientbound)
	Register(PhasePlay, Clientbound, 0x23, decodeUpdateLight)
	Register(PhasePlay, Clientbound, 0x24, decodeJoinGame)
	Register(PhasePlay, Clientbound, 0x30, decodePlayerAbilitiesClientbound)
	Register(PhasePlay, Clientbound, 0x31, decodeCombatEventClientbound)
	Register(PhasePlay, Clientbound, 0x32, decodePlayerInfoClientbound)
	Register(PhasePlay, Clientbound, 0x34, decodePlayerPositionAndLookClientbound)
	Register(PhasePlay, Clientbound, 0x3D, decodeWorldBorderClientbound)
	Register(PhasePlay, Clientbound, 0x3F, decodeHeldItemChangeClientbound)
	Register(PhasePlay, Clientbound, 0x4F, decodeTitleClientbound)
}

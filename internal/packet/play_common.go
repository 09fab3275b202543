package packet

import (
	"fmt"
	"io"

	"mcproto.dev/client/internal/nbt"
	"mcproto.dev/client/internal/proto"
)

// Slot is a tagged union with a boolean discriminant: Present carries an
// item id, count and optional NBT metadata; NotPresent carries nothing.
type Slot struct {
	Present  bool
	ItemID   proto.VarInt
	Count    int8
	NBT      *nbt.Named
}

func WriteSlot(w io.Writer, s Slot) error {
	if err := proto.WriteBool(w, s.Present); err != nil {
		return err
	}
	if !s.Present {
		return nil
	}
	if err := proto.WriteVarInt(w, s.ItemID); err != nil {
		return err
	}
	if err := proto.WriteInt8(w, s.Count); err != nil {
		return err
	}
	if s.NBT == nil {
		return proto.WriteUint8(w, byte(nbt.TagEnd))
	}
	return nbt.WriteNamed(w, *s.NBT)
}

func ReadSlot(r io.Reader) (Slot, error) {
	present, err := proto.ReadBool(r)
	if err != nil || !present {
		return Slot{Present: false}, err
	}
	var s Slot
	s.Present = true
	if s.ItemID, err = proto.ReadVarInt(r); err != nil {
		return Slot{}, err
	}
	if s.Count, err = proto.ReadInt8(r); err != nil {
		return Slot{}, err
	}
	// Peek the tag byte: TagEnd means "no NBT metadata present".
	tagByte, err := proto.ReadUint8(r)
	if err != nil {
		return Slot{}, err
	}
	if nbt.Tag(tagByte) == nbt.TagEnd {
		return s, nil
	}
	mr := &prependByteReader{first: tagByte, r: r}
	n, err := nbt.ReadNamed(mr)
	if err != nil {
		return Slot{}, err
	}
	s.NBT = &n
	return s, nil
}

// prependByteReader re-plays a single already-consumed byte in front of the
// rest of an io.Reader, used to "un-read" the NBT tag byte peeked by ReadSlot.
type prependByteReader struct {
	first byte
	used  bool
	r     io.Reader
}

func (p *prependByteReader) Read(b []byte) (int, error) {
	if !p.used && len(b) > 0 {
		p.used = true
		b[0] = p.first
		n, err := p.r.Read(b[1:])
		return n + 1, err
	}
	return p.r.Read(b)
}

// CombatEvent is a VarInt-discriminated nested tagged union. The 1.16.2
// (751) wire table resolves the EndCombat/EntityDead id collision flagged
// as an open question in spec.md section 9: EndCombat is id 1, EntityDead
// is id 2 — see DESIGN.md.
type CombatEvent struct {
	Kind CombatEventKind

	// EndCombat / EntityDead
	Duration proto.VarInt
	EntityID int32

	// EntityDead only
	PlayerID proto.VarInt
	Message  proto.Chat
}

type CombatEventKind proto.VarInt

const (
	CombatEnterCombat CombatEventKind = 0
	CombatEndCombat   CombatEventKind = 1
	CombatEntityDead  CombatEventKind = 2
)

func WriteCombatEvent(w io.Writer, c CombatEvent) error {
	if err := proto.WriteVarInt(w, proto.VarInt(c.Kind)); err != nil {
		return err
	}
	switch c.Kind {
	case CombatEnterCombat:
		return nil
	case CombatEndCombat:
		if err := proto.WriteVarInt(w, c.Duration); err != nil {
			return err
		}
		return proto.WriteInt32(w, c.EntityID)
	case CombatEntityDead:
		if err := proto.WriteVarInt(w, c.PlayerID); err != nil {
			return err
		}
		if err := proto.WriteInt32(w, c.EntityID); err != nil {
			return err
		}
		return proto.WriteChat(w, c.Message)
	default:
		return fmt.Errorf("packet: unknown CombatEvent kind %d", c.Kind)
	}
}

func ReadCombatEvent(r io.Reader) (CombatEvent, error) {
	kind, err := proto.ReadVarInt(r)
	if err != nil {
		return CombatEvent{}, err
	}
	c := CombatEvent{Kind: CombatEventKind(kind)}
	switch c.Kind {
	case CombatEnterCombat:
		return c, nil
	case CombatEndCombat:
		if c.Duration, err = proto.ReadVarInt(r); err != nil {
			return CombatEvent{}, err
		}
		if c.EntityID, err = proto.ReadInt32(r); err != nil {
			return CombatEvent{}, err
		}
		return c, nil
	case CombatEntityDead:
		if c.PlayerID, err = proto.ReadVarInt(r); err != nil {
			return CombatEvent{}, err
		}
		if c.EntityID, err = proto.ReadInt32(r); err != nil {
			return CombatEvent{}, err
		}
		if c.Message, err = proto.ReadChat(r); err != nil {
			return CombatEvent{}, err
		}
		return c, nil
	default:
		return CombatEvent{}, fmt.Errorf("packet: unknown CombatEvent kind %d", kind)
	}
}

// BossBarAction is BossBar's nested VarInt-discriminated union.
type BossBarAction struct {
	Kind BossBarActionKind

	Title      proto.Chat
	Health     float32
	Color      proto.VarInt
	Division   proto.VarInt
	Flags      uint8
}

type BossBarActionKind proto.VarInt

const (
	BossBarAdd          BossBarActionKind = 0
	BossBarRemove       BossBarActionKind = 1
	BossBarUpdateHealth BossBarActionKind = 2
	BossBarUpdateTitle  BossBarActionKind = 3
	BossBarUpdateStyle  BossBarActionKind = 4
	BossBarUpdateFlags  BossBarActionKind = 5
)

func WriteBossBarAction(w io.Writer, a BossBarAction) error {
	if err := proto.WriteVarInt(w, proto.VarInt(a.Kind)); err != nil {
		return err
	}
	switch a.Kind {
	case BossBarAdd:
		if err := proto.WriteChat(w, a.Title); err != nil {
			return err
		}
		if err := proto.WriteFloat32(w, a.Health); err != nil {
			return err
		}
		if err := proto.WriteVarInt(w, a.Color); err != nil {
			return err
		}
		if err := proto.WriteVarInt(w, a.Division); err != nil {
			return err
		}
		return proto.WriteUint8(w, a.Flags)
	case BossBarRemove:
		return nil
	case BossBarUpdateHealth:
		return proto.WriteFloat32(w, a.Health)
	case BossBarUpdateTitle:
		return proto.WriteChat(w, a.Title)
	case BossBarUpdateStyle:
		if err := proto.WriteVarInt(w, a.Color); err != nil {
			return err
		}
		return proto.WriteVarInt(w, a.Division)
	case BossBarUpdateFlags:
		return proto.WriteUint8(w, a.Flags)
	default:
		return fmt.Errorf("packet: unknown BossBarAction kind %d", a.Kind)
	}
}

func ReadBossBarAction(r io.Reader) (BossBarAction, error) {
	kind, err := proto.ReadVarInt(r)
	if err != nil {
		return BossBarAction{}, err
	}
	a := BossBarAction{Kind: BossBarActionKind(kind)}
	switch a.Kind {
	case BossBarAdd:
		if a.Title, err = proto.ReadChat(r); err != nil {
			return BossBarAction{}, err
		}
		if a.Health, err = proto.ReadFloat32(r); err != nil {
			return BossBarAction{}, err
		}
		if a.Color, err = proto.ReadVarInt(r); err != nil {
			return BossBarAction{}, err
		}
		if a.Division, err = proto.ReadVarInt(r); err != nil {
			return BossBarAction{}, err
		}
		if a.Flags, err = proto.ReadUint8(r); err != nil {
			return BossBarAction{}, err
		}
		return a, nil
	case BossBarRemove:
		return a, nil
	case BossBarUpdateHealth:
		a.Health, err = proto.ReadFloat32(r)
		return a, err
	case BossBarUpdateTitle:
		a.Title, err = proto.ReadChat(r)
		return a, err
	case BossBarUpdateStyle:
		if a.Color, err = proto.ReadVarInt(r); err != nil {
			return BossBarAction{}, err
		}
		a.Division, err = proto.ReadVarInt(r)
		return a, err
	case BossBarUpdateFlags:
		a.Flags, err = proto.ReadUint8(r)
		return a, err
	default:
		return BossBarAction{}, fmt.Errorf("packet: unknown BossBarAction kind %d", kind)
	}
}

// WorldBorderAction is WorldBorder's nested VarInt-discriminated union.
type WorldBorderAction struct {
	Kind WorldBorderActionKind

	Diameter       float64
	OldDiameter    float64
	Speed          proto.VarLong
	X, Z           float64
	PortalBoundary proto.VarInt
	WarningTime    proto.VarInt
	WarningBlocks  proto.VarInt
}

type WorldBorderActionKind proto.VarInt

const (
	WorldBorderSetSize         WorldBorderActionKind = 0
	WorldBorderLerpSize        WorldBorderActionKind = 1
	WorldBorderSetCenter       WorldBorderActionKind = 2
	WorldBorderInitialize      WorldBorderActionKind = 3
	WorldBorderSetWarningTime  WorldBorderActionKind = 4
	WorldBorderSetWarningBlock WorldBorderActionKind = 5
)

func WriteWorldBorderAction(w io.Writer, a WorldBorderAction) error {
	if err := proto.WriteVarInt(w, proto.VarInt(a.Kind)); err != nil {
		return err
	}
	switch a.Kind {
	case WorldBorderSetSize:
		return proto.WriteFloat64(w, a.Diameter)
	case WorldBorderLerpSize:
		if err := proto.WriteFloat64(w, a.OldDiameter); err != nil {
			return err
		}
		if err := proto.WriteFloat64(w, a.Diameter); err != nil {
			return err
		}
		return proto.WriteVarLong(w, a.Speed)
	case WorldBorderSetCenter:
		if err := proto.WriteFloat64(w, a.X); err != nil {
			return err
		}
		return proto.WriteFloat64(w, a.Z)
	case WorldBorderInitialize:
		if err := proto.WriteFloat64(w, a.X); err != nil {
			return err
		}
		if err := proto.WriteFloat64(w, a.Z); err != nil {
			return err
		}
		if err := proto.WriteFloat64(w, a.OldDiameter); err != nil {
			return err
		}
		if err := proto.WriteFloat64(w, a.Diameter); err != nil {
			return err
		}
		if err := proto.WriteVarLong(w, a.Speed); err != nil {
			return err
		}
		if err := proto.WriteVarInt(w, a.PortalBoundary); err != nil {
			return err
		}
		if err := proto.WriteVarInt(w, a.WarningTime); err != nil {
			return err
		}
		return proto.WriteVarInt(w, a.WarningBlocks)
	case WorldBorderSetWarningTime:
		return proto.WriteVarInt(w, a.WarningTime)
	case WorldBorderSetWarningBlock:
		return proto.WriteVarInt(w, a.WarningBlocks)
	default:
		return fmt.Errorf("packet: unknown WorldBorderAction kind %d", a.Kind)
	}
}

func ReadWorldBorderAction(r io.Reader) (WorldBorderAction, error) {
	kind, err := proto.ReadVarInt(r)
	if err != nil {
		return WorldBorderAction{}, err
	}
	a := WorldBorderAction{Kind: WorldBorderActionKind(kind)}
	switch a.Kind {
	case WorldBorderSetSize:
		a.Diameter, err = proto.ReadFloat64(r)
		return a, err
	case WorldBorderLerpSize:
		if a.OldDiameter, err = proto.ReadFloat64(r); err != nil {
			return WorldBorderAction{}, err
		}
		if a.Diameter, err = proto.ReadFloat64(r); err != nil {
			return WorldBorderAction{}, err
		}
		a.Speed, err = proto.ReadVarLong(r)
		return a, err
	case WorldBorderSetCenter:
		if a.X, err = proto.ReadFloat64(r); err != nil {
			return WorldBorderAction{}, err
		}
		a.Z, err = proto.ReadFloat64(r)
		return a, err
	case WorldBorderInitialize:
		if a.X, err = proto.ReadFloat64(r); err != nil {
			return WorldBorderAction{}, err
		}
		if a.Z, err = proto.ReadFloat64(r); err != nil {
			return WorldBorderAction{}, err
		}
		if a.OldDiameter, err = proto.ReadFloat64(r); err != nil {
			return WorldBorderAction{}, err
		}
		if a.Diameter, err = proto.ReadFloat64(r); err != nil {
			return WorldBorderAction{}, err
		}
		if a.Speed, err = proto.ReadVarLong(r); err != nil {
			return WorldBorderAction{}, err
		}
		if a.PortalBoundary, err = proto.ReadVarInt(r); err != nil {
			return WorldBorderAction{}, err
		}
		if a.WarningTime, err = proto.ReadVarInt(r); err != nil {
			return WorldBorderAction{}, err
		}
		a.WarningBlocks, err = proto.ReadVarInt(r)
		return a, err
	case WorldBorderSetWarningTime:
		a.WarningTime, err = proto.ReadVarInt(r)
		return a, err
	case WorldBorderSetWarningBlock:
		a.WarningBlocks, err = proto.ReadVarInt(r)
		return a, err
	default:
		return WorldBorderAction{}, fmt.Errorf("packet: unknown WorldBorderAction kind %d", kind)
	}
}

// TitleAction is Title's nested VarInt-discriminated union.
type TitleAction struct {
	Kind TitleActionKind

	Text                  proto.Chat
	FadeIn, Stay, FadeOut int32
}

type TitleActionKind proto.VarInt

const (
	TitleSetTitle           TitleActionKind = 0
	TitleSetSubtitle        TitleActionKind = 1
	TitleSetActionBar       TitleActionKind = 2
	TitleSetTimesAndDisplay TitleActionKind = 3
	TitleHide               TitleActionKind = 4
	TitleReset              TitleActionKind = 5
)

func WriteTitleAction(w io.Writer, a TitleAction) error {
	if err := proto.WriteVarInt(w, proto.VarInt(a.Kind)); err != nil {
		return err
	}
	switch a.Kind {
	case TitleSetTitle, TitleSetSubtitle, TitleSetActionBar:
		return proto.WriteChat(w, a.Text)
	case TitleSetTimesAndDisplay:
		if err := proto.WriteInt32(w, a.FadeIn); err != nil {
			return err
		}
		if err := proto.WriteInt32(w, a.Stay); err != nil {
			return err
		}
		return proto.WriteInt32(w, a.FadeOut)
	case TitleHide, TitleReset:
		return nil
	default:
		return fmt.Errorf("packet: unknown TitleAction kind %d", a.Kind)
	}
}

func ReadTitleAction(r io.Reader) (TitleAction, error) {
	kind, err := proto.ReadVarInt(r)
	if err != nil {
		return TitleAction{}, err
	}
	a := TitleAction{Kind: TitleActionKind(kind)}
	switch a.Kind {
	case TitleSetTitle, TitleSetSubtitle, TitleSetActionBar:
		a.Text, err = proto.ReadChat(r)
		return a, err
	case TitleSetTimesAndDisplay:
		if a.FadeIn, err = proto.ReadInt32(r); err != nil {
			return TitleAction{}, err
		}
		if a.Stay, err = proto.ReadInt32(r); err != nil {
			return TitleAction{}, err
		}
		a.FadeOut, err = proto.ReadInt32(r)
		return a, err
	case TitleHide, TitleReset:
		return a, nil
	default:
		return TitleAction{}, fmt.Errorf("packet: unknown TitleAction kind %d", kind)
	}
}

// PlayerInfoAction is PlayerInfo's nested VarInt-discriminated union, one
// instance per affected player.
type PlayerInfoAction struct {
	Kind PlayerInfoActionKind

	UUID proto.UUID

	// AddPlayer
	Name       string
	Properties []PlayerProperty
	GameMode   proto.VarInt
	Ping       proto.VarInt
	HasDisplayName bool
	DisplayName    proto.Chat

	// UpdateGameMode
	// (reuses GameMode)

	// UpdateLatency
	// (reuses Ping)

	// UpdateDisplayName
	// (reuses HasDisplayName / DisplayName)
}

type PlayerInfoActionKind proto.VarInt

const (
	PlayerInfoAddPlayer         PlayerInfoActionKind = 0
	PlayerInfoUpdateGameMode    PlayerInfoActionKind = 1
	PlayerInfoUpdateLatency     PlayerInfoActionKind = 2
	PlayerInfoUpdateDisplayName PlayerInfoActionKind = 3
	PlayerInfoRemovePlayer      PlayerInfoActionKind = 4
)

type PlayerProperty struct {
	Name      string
	Value     string
	Signature *string
}

func writePlayerProperty(w io.Writer, p PlayerProperty) error {
	if err := proto.WriteString(w, p.Name); err != nil {
		return err
	}
	if err := proto.WriteString(w, p.Value); err != nil {
		return err
	}
	if err := proto.WriteBool(w, p.Signature != nil); err != nil {
		return err
	}
	if p.Signature != nil {
		return proto.WriteString(w, *p.Signature)
	}
	return nil
}

func readPlayerProperty(r io.Reader) (PlayerProperty, error) {
	var p PlayerProperty
	var err error
	if p.Name, err = proto.ReadString(r); err != nil {
		return p, err
	}
	if p.Value, err = proto.ReadString(r); err != nil {
		return p, err
	}
	hasSig, err := proto.ReadBool(r)
	if err != nil {
		return p, err
	}
	if hasSig {
		sig, err := proto.ReadString(r)
		if err != nil {
			return p, err
		}
		p.Signature = &sig
	}
	return p, nil
}

func writePlayerInfoAction(w io.Writer, a PlayerInfoAction) error {
	if err := proto.WriteUUID(w, a.UUID); err != nil {
		return err
	}
	switch a.Kind {
	case PlayerInfoAddPlayer:
		if err := proto.WriteString(w, a.Name); err != nil {
			return err
		}
		if err := proto.WriteVector(w, proto.VarIntLen, a.Properties, writePlayerProperty); err != nil {
			return err
		}
		if err := proto.WriteVarInt(w, a.GameMode); err != nil {
			return err
		}
		if err := proto.WriteVarInt(w, a.Ping); err != nil {
			return err
		}
		if err := proto.WriteBool(w, a.HasDisplayName); err != nil {
			return err
		}
		if a.HasDisplayName {
			return proto.WriteChat(w, a.DisplayName)
		}
		return nil
	case PlayerInfoUpdateGameMode:
		return proto.WriteVarInt(w, a.GameMode)
	case PlayerInfoUpdateLatency:
		return proto.WriteVarInt(w, a.Ping)
	case PlayerInfoUpdateDisplayName:
		if err := proto.WriteBool(w, a.HasDisplayName); err != nil {
			return err
		}
		if a.HasDisplayName {
			return proto.WriteChat(w, a.DisplayName)
		}
		return nil
	case PlayerInfoRemovePlayer:
		return nil
	default:
		return fmt.Errorf("packet: unknown PlayerInfoAction kind %d", a.Kind)
	}
}

func readPlayerInfoAction(r io.Reader, kind PlayerInfoActionKind) (PlayerInfoAction, error) {
	a := PlayerInfoAction{Kind: kind}
	var err error
	if a.UUID, err = proto.ReadUUID(r); err != nil {
		return PlayerInfoAction{}, err
	}
	switch kind {
	case PlayerInfoAddPlayer:
		if a.Name, err = proto.ReadString(r); err != nil {
			return PlayerInfoAction{}, err
		}
		if a.Properties, err = proto.ReadVector(r, proto.VarIntLen, readPlayerProperty); err != nil {
			return PlayerInfoAction{}, err
		}
		if a.GameMode, err = proto.ReadVarInt(r); err != nil {
			return PlayerInfoAction{}, err
		}
		if a.Ping, err = proto.ReadVarInt(r); err != nil {
			return PlayerInfoAction{}, err
		}
		if a.HasDisplayName, err = proto.ReadBool(r); err != nil {
			return PlayerInfoAction{}, err
		}
		if a.HasDisplayName {
			if a.DisplayName, err = proto.ReadChat(r); err != nil {
				return PlayerInfoAction{}, err
			}
		}
		return a, nil
	case PlayerInfoUpdateGameMode:
		a.GameMode, err = proto.ReadVarInt(r)
		return a, err
	case PlayerInfoUpdateLatency:
		a.Ping, err = proto.ReadVarInt(r)
		return a, err
	case PlayerInfoUpdateDisplayName:
		if a.HasDisplayName, err = proto.ReadBool(r); err != nil {
			return PlayerInfoAction{}, err
		}
		if a.HasDisplayName {
			if a.DisplayName, err = proto.ReadChat(r); err != nil {
				return PlayerInfoAction{}, err
			}
		}
		return a, nil
	case PlayerInfoRemovePlayer:
		return a, nil
	default:
		return PlayerInfoAction{}, fmt.Errorf("packet: unknown PlayerInfoAction kind %d", kind)
	}
}

// InteractEntityAction is InteractEntity's nested VarInt-discriminated
// union (serverbound).
type InteractEntityAction struct {
	Kind InteractEntityActionKind

	// InteractAt
	TargetX, TargetY, TargetZ float32
	Hand                      proto.VarInt
	Sneaking                  bool
}

type InteractEntityActionKind proto.VarInt

const (
	InteractEntityInteract   InteractEntityActionKind = 0
	InteractEntityAttack     InteractEntityActionKind = 1
	InteractEntityInteractAt InteractEntityActionKind = 2
)

func writeInteractEntityAction(w io.Writer, a InteractEntityAction) error {
	if err := proto.WriteVarInt(w, proto.VarInt(a.Kind)); err != nil {
		return err
	}
	switch a.Kind {
	case InteractEntityInteract:
		return proto.WriteVarInt(w, a.Hand)
	case InteractEntityAttack:
		return nil
	case InteractEntityInteractAt:
		if err := proto.WriteFloat32(w, a.TargetX); err != nil {
			return err
		}
		if err := proto.WriteFloat32(w, a.TargetY); err != nil {
			return err
		}
		if err := proto.WriteFloat32(w, a.TargetZ); err != nil {
			return err
		}
		return proto.WriteVarInt(w, a.Hand)
	default:
		return fmt.Errorf("packet: unknown InteractEntityAction kind %d", a.Kind)
	}
}

func readInteractEntityAction(r io.Reader) (InteractEntityAction, error) {
	kind, err := proto.ReadVarInt(r)
	if err != nil {
		return InteractEntityAction{}, err
	}
	a := InteractEntityAction{Kind: InteractEntityActionKind(kind)}
	switch a.Kind {
	case InteractEntityInteract:
		a.Hand, err = proto.ReadVarInt(r)
		return a, err
	case InteractEntityAttack:
		return a, nil
	case InteractEntityInteractAt:
		if a.TargetX, err = proto.ReadFloat32(r); err != nil {
			return InteractEntityAction{}, err
		}
		if a.TargetY, err = proto.ReadFloat32(r); err != nil {
			return InteractEntityAction{}, err
		}
		if a.TargetZ, err = proto.ReadFloat32(r); err != nil {
			return InteractEntityAction{}, err
		}
		a.Hand, err = proto.ReadVarInt(r)
		return a, err
	default:
		return InteractEntityAction{}, fmt.Errorf("packet: unknown InteractEntityAction kind %d", kind)
	}
}

// TeamsAction is Teams' nested union, discriminated by a *signed byte*
// rather than a VarInt (see spec.md section 4.3).
type TeamsAction struct {
	Kind TeamsActionKind

	TeamName          string
	DisplayName       proto.Chat
	FriendlyFlags     int8
	NameTagVisibility string
	CollisionRule     string
	TeamColor         proto.VarInt
	Prefix, Suffix    proto.Chat
	Entities          []string
}

type TeamsActionKind int8

const (
	TeamsCreate       TeamsActionKind = 0
	TeamsRemove       TeamsActionKind = 1
	TeamsUpdateInfo   TeamsActionKind = 2
	TeamsAddEntities  TeamsActionKind = 3
	TeamsRemoveEntities TeamsActionKind = 4
)

func WriteTeamsAction(w io.Writer, a TeamsAction) error {
	if err := proto.WriteString(w, a.TeamName); err != nil {
		return err
	}
	if err := proto.WriteInt8(w, int8(a.Kind)); err != nil {
		return err
	}
	switch a.Kind {
	case TeamsCreate:
		if err := writeTeamsInfo(w, a); err != nil {
			return err
		}
		return proto.WriteVector(w, proto.VarIntLen, a.Entities, proto.WriteString)
	case TeamsRemove:
		return nil
	case TeamsUpdateInfo:
		return writeTeamsInfo(w, a)
	case TeamsAddEntities, TeamsRemoveEntities:
		return proto.WriteVector(w, proto.VarIntLen, a.Entities, proto.WriteString)
	default:
		return fmt.Errorf("packet: unknown TeamsAction kind %d", a.Kind)
	}
}

func writeTeamsInfo(w io.Writer, a TeamsAction) error {
	if err := proto.WriteChat(w, a.DisplayName); err != nil {
		return err
	}
	if err := proto.WriteInt8(w, a.FriendlyFlags); err != nil {
		return err
	}
	if err := proto.WriteString(w, a.NameTagVisibility); err != nil {
		return err
	}
	if err := proto.WriteString(w, a.CollisionRule); err != nil {
		return err
	}
	if err := proto.WriteVarInt(w, a.TeamColor); err != nil {
		return err
	}
	if err := proto.WriteChat(w, a.Prefix); err != nil {
		return err
	}
	return proto.WriteChat(w, a.Suffix)
}

func ReadTeamsAction(r io.Reader) (TeamsAction, error) {
	name, err := proto.ReadString(r)
	if err != nil {
		return TeamsAction{}, err
	}
	kindByte, err := proto.ReadInt8(r)
	if err != nil {
		return TeamsAction{}, err
	}
	a := TeamsAction{TeamName: name, Kind: TeamsActionKind(kindByte)}
	switch a.Kind {
	case TeamsCreate:
		if err := readTeamsInfo(r, &a); err != nil {
			return TeamsAction{}, err
		}
		a.Entities, err = proto.ReadVector(r, proto.VarIntLen, proto.ReadString)
		return a, err
	case TeamsRemove:
		return a, nil
	case TeamsUpdateInfo:
		err = readTeamsInfo(r, &a)
		return a, err
	case TeamsAddEntities, TeamsRemoveEntities:
		a.Entities, err = proto.ReadVector(r, proto.VarIntLen, proto.ReadString)
		return a, err
	default:
		return TeamsAction{}, fmt.Errorf("packet: unknown TeamsAction kind %d", kindByte)
	}
}

func readTeamsInfo(r io.Reader, a *TeamsAction) error {
	var err error
	if a.DisplayName, err = proto.ReadChat(r); err != nil {
		return err
	}
	if a.FriendlyFlags, err = proto.ReadInt8(r); err != nil {
		return err
	}
	if a.NameTagVisibility, err = proto.ReadString(r); err != nil {
		return err
	}
	if a.CollisionRule, err = proto.ReadString(r); err != nil {
		return err
	}
	if a.TeamColor, err = proto.ReadVarInt(r); err != nil {
		return err
	}
	if a.Prefix, err = proto.ReadChat(r); err != nil {
		return err
	}
	a.Suffix, err = proto.ReadChat(r)
	return err
}

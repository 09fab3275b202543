package state

import (
	"errors"

	"mcproto.dev/client/internal/packet"
	"mcproto.dev/client/internal/proto"
	"mcproto.dev/client/internal/transport"
)

// Event is Play's event sum type. Per spec.md section 4.5, no event
// variants are currently defined; Poll/TryPoll still drive the session's
// internal bookkeeping (KeepAlive echo, position tracking, ...) on every
// packet, they just never have anything distinguishable to report back.
type Event struct{}

// Play is the state reached once Login succeeds. It holds the session's
// per-connection mutable state: identifiers, world/game-mode bookkeeping,
// held item, position and rotation.
type Play struct {
	sess *transport.Session

	UUID     proto.UUID
	Username string

	EntityID     int32
	IsHardcore   bool
	Gamemode     uint8
	ViewDistance int32

	HeldItemSlot int8

	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

func newPlay(sess *transport.Session, success packet.LoginSuccess) *Play {
	return &Play{
		sess:     sess,
		UUID:     success.UUID,
		Username: success.Username,
		OnGround: true,
	}
}

// Run polls forever until the server disconnects or the connection fails.
func (p *Play) Run() error {
	for {
		if _, err := p.Poll(); err != nil {
			return err
		}
	}
}

// Poll blocks for exactly one Clientbound Play packet, applies its effect
// to the session's mutable state (per spec.md section 4.5's bullet list),
// and returns the resulting Event.
func (p *Play) Poll() (Event, error) {
	pkt, err := p.sess.Receive(packet.PhasePlay, packet.Clientbound)
	if errors.Is(err, packet.ErrUnknownPacketID) {
		// The whole frame was already read; packets outside the catalogue
		// are ignored like any other unhandled packet.
		return Event{}, nil
	}
	if err != nil {
		return Event{}, err
	}
	return Event{}, p.handle(pkt)
}

// TryPoll is the non-blocking counterpart to Poll: it returns ok=false
// rather than blocking when no full packet is yet available, per
// spec.md section 4.4's try_read_packet.
func (p *Play) TryPoll() (ev Event, ok bool, err error) {
	pkt, ok, err := p.sess.TryReceive(packet.PhasePlay, packet.Clientbound)
	if errors.Is(err, packet.ErrUnknownPacketID) {
		return Event{}, true, nil
	}
	if err != nil || !ok {
		return Event{}, ok, err
	}
	return Event{}, true, p.handle(pkt)
}

func (p *Play) handle(pkt packet.Packet) error {
	switch v := pkt.(type) {
	case packet.KeepAliveClientbound:
		return p.sess.Send(packet.KeepAliveServerbound{KeepAliveID: v.KeepAliveID})

	case packet.JoinGame:
		p.EntityID = v.EntityID
		p.IsHardcore = v.IsHardcore
		p.Gamemode = v.Gamemode
		p.ViewDistance = int32(v.ViewDistance)
		return p.sess.Send(packet.ClientSettings{
			Locale:             "en_US",
			ViewDistance:       16,
			ChatMode:           0,
			ChatColors:         true,
			DisplayedSkinParts: 0x7f,
			MainHand:           0,
		})

	case packet.HeldItemChangeClientbound:
		p.HeldItemSlot = v.Slot
		return nil

	case packet.PlayerPositionAndLookClientbound:
		return p.handleTeleport(v)

	case packet.PlayDisconnect:
		return ErrDisconnected{Reason: v.Reason}

	default:
		return nil
	}
}

func (p *Play) handleTeleport(v packet.PlayerPositionAndLookClientbound) error {
	if v.Flags&packet.PosLookFlagX != 0 {
		p.X += v.X
	} else {
		p.X = v.X
	}
	if v.Flags&packet.PosLookFlagY != 0 {
		p.Y += v.Y
	} else {
		p.Y = v.Y
	}
	if v.Flags&packet.PosLookFlagZ != 0 {
		p.Z += v.Z
	} else {
		p.Z = v.Z
	}
	if v.Flags&packet.PosLookFlagYaw != 0 {
		p.Yaw += v.Yaw
	} else {
		p.Yaw = v.Yaw
	}
	if v.Flags&packet.PosLookFlagPitch != 0 {
		p.Pitch += v.Pitch
	} else {
		p.Pitch = v.Pitch
	}

	if err := p.sess.Send(packet.TeleportConfirm{TeleportID: v.TeleportID}); err != nil {
		return err
	}
	return p.sess.Send(packet.PlayerPositionAndRotationServerbound{
		X: p.X, Y: p.Y, Z: p.Z,
		Yaw: p.Yaw, Pitch: p.Pitch,
		OnGround: p.OnGround,
	})
}

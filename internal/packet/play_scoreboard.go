package packet

import (
	"io"

	"mcproto.dev/client/internal/proto"
)

// Teams is Play Clientbound 0x4C: a nested TeamsAction union, the one
// nested union in the catalogue discriminated by a signed byte rather than
// a VarInt (see TeamsAction).
type Teams struct {
	Action TeamsAction
}

func (Teams) PacketID() proto.VarInt { return 0x4C }

func (p Teams) Encode(w io.Writer) error { return WriteTeamsAction(w, p.Action) }

func decodeTeams(r io.Reader) (Packet, error) {
	a, err := ReadTeamsAction(r)
	return Teams{Action: a}, err
}

// ScoreboardObjective is Play Clientbound 0x4A. ObjectiveValue and Type are
// only present when Mode is 0 (create) or 2 (update display text); Mode 1
// (remove) carries neither, per the skip_if="*mode == 1" conditional field.
type ScoreboardObjective struct {
	ObjectiveName  string
	Mode           int8
	ObjectiveValue proto.Chat
	Type           proto.VarInt
}

const (
	ScoreboardObjectiveCreate = int8(0)
	ScoreboardObjectiveRemove = int8(1)
	ScoreboardObjectiveUpdate = int8(2)
)

func (ScoreboardObjective) PacketID() proto.VarInt { return 0x4A }

func (p ScoreboardObjective) Encode(w io.Writer) error {
	if err := proto.WriteString(w, p.ObjectiveName); err != nil {
		return err
	}
	if err := proto.WriteInt8(w, p.Mode); err != nil {
		return err
	}
	if p.Mode == ScoreboardObjectiveRemove {
		return nil
	}
	if err := proto.WriteChat(w, p.ObjectiveValue); err != nil {
		return err
	}
	return proto.WriteVarInt(w, p.Type)
}

func decodeScoreboardObjective(r io.Reader) (Packet, error) {
	var p ScoreboardObjective
	var err error
	if p.ObjectiveName, err = proto.ReadString(r); err != nil {
		return nil, err
	}
	if p.Mode, err = proto.ReadInt8(r); err != nil {
		return nil, err
	}
	if p.Mode == ScoreboardObjectiveRemove {
		return p, nil
	}
	if p.ObjectiveValue, err = proto.ReadChat(r); err != nil {
		return nil, err
	}
	if p.Type, err = proto.ReadVarInt(r); err != nil {
		return nil, err
	}
	return p, nil
}

func init() {
	Register(PhasePlay, Clientbound, 0x4A, decodeScoreboardObjective)
	Register(PhasePlay, Clientbound, 0x4C, decodeTeams)
}

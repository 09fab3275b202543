// Package state implements the typestate session pipeline: Handshake ->
// {Status | Login -> Play}. Each state-changing operation returns the next
// state as a distinct type, so there is no way to call a Status operation
// on a Login value or to skip a required transition. The previous value is
// not invalidated: calling an operation on it again sends its packets again.
package state

import (
	"mcproto.dev/client/internal/packet"
	"mcproto.dev/client/internal/proto"
	"mcproto.dev/client/internal/transport"
)

// Handshake is the initial state: a freshly dialed, unauthenticated
// connection that has not yet sent anything.
type Handshake struct {
	sess            *transport.Session
	serverAddress   string
	serverPort      uint16
	protocolVersion int32
}

// NewHandshake wraps a duplex byte stream (already connected, e.g. a TCP
// socket split into read/write halves) as a fresh Handshake state.
func NewHandshake(sess *transport.Session, serverAddress string, serverPort uint16, protocolVersion int32) *Handshake {
	return &Handshake{
		sess:            sess,
		serverAddress:   serverAddress,
		serverPort:      serverPort,
		protocolVersion: protocolVersion,
	}
}

// Status sends Handshake{next_state=Status} and returns the Status state.
func (h *Handshake) Status() (*Status, error) {
	hs := packet.Handshake{
		ProtocolVersion: proto.VarInt(h.protocolVersion),
		ServerAddress:   h.serverAddress,
		ServerPort:      h.serverPort,
		NextState:       packet.NextStateStatus,
	}
	if err := h.sess.Send(hs); err != nil {
		return nil, err
	}
	return &Status{sess: h.sess}, nil
}

// Login sends Handshake{next_state=Login} and returns the Login state.
func (h *Handshake) Login() (*Login, error) {
	hs := packet.Handshake{
		ProtocolVersion: proto.VarInt(h.protocolVersion),
		ServerAddress:   h.serverAddress,
		ServerPort:      h.serverPort,
		NextState:       packet.NextStateLogin,
	}
	if err := h.sess.Send(hs); err != nil {
		return nil, err
	}
	return &Login{sess: h.sess, serverAddress: h.serverAddress}, nil
}

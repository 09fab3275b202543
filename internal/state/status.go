package state

import (
	"encoding/json"
	"fmt"
	"time"

	"mcproto.dev/client/internal/packet"
	"mcproto.dev/client/internal/transport"
)

// Status is the state reached after Handshake.Status(); its only operation
// is Query.
type Status struct {
	sess *transport.Session
}

// ErrPingMismatch is returned by Query when the server's Pong payload does
// not equal the Ping payload this client sent.
var ErrPingMismatch = fmt.Errorf("state: ping payload mismatch")

// StatusData is the server's status JSON, both parsed for convenience and
// kept verbatim for callers that want the raw document.
type StatusData struct {
	Raw string

	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int `json:"max"`
		Online int `json:"online"`
		Sample []struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		} `json:"sample"`
	} `json:"players"`
	Description json.RawMessage `json:"description"`
}

// Query sends Request + Ping(now), reads Response then Pong, verifies the
// Pong payload, and returns the parsed status plus the measured round-trip
// duration (from just before Request to just after Pong), per spec.md
// section 4.5.
func (s *Status) Query() (StatusData, time.Duration, error) {
	start := time.Now()

	if err := s.sess.Send(packet.StatusRequest{}); err != nil {
		return StatusData{}, 0, err
	}
	payload := start.UnixNano() / int64(time.Millisecond)
	if err := s.sess.Send(packet.StatusPing{Payload: payload}); err != nil {
		return StatusData{}, 0, err
	}

	respPkt, err := s.sess.Receive(packet.PhaseStatus, packet.Clientbound)
	if err != nil {
		return StatusData{}, 0, err
	}
	resp, ok := respPkt.(packet.StatusResponse)
	if !ok {
		return StatusData{}, 0, fmt.Errorf("state: expected StatusResponse, got %T", respPkt)
	}

	pongPkt, err := s.sess.Receive(packet.PhaseStatus, packet.Clientbound)
	if err != nil {
		return StatusData{}, 0, err
	}
	pong, ok := pongPkt.(packet.StatusPong)
	if !ok {
		return StatusData{}, 0, fmt.Errorf("state: expected StatusPong, got %T", pongPkt)
	}
	elapsed := time.Since(start)
	if pong.Payload != payload {
		return StatusData{}, elapsed, ErrPingMismatch
	}

	var data StatusData
	if err := json.Unmarshal([]byte(resp.JSON), &data); err != nil {
		return StatusData{}, elapsed, err
	}
	data.Raw = resp.JSON
	return data, elapsed, nil
}

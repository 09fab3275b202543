package transport

import (
	"bytes"

	"mcproto.dev/client/internal/packet"
)

// Send serializes p (discriminant + fields) and writes it as one frame.
func (s *Session) Send(p packet.Packet) error {
	var buf bytes.Buffer
	if err := packet.Encode(&buf, p); err != nil {
		return err
	}
	return s.WritePacket(buf.Bytes())
}

// Receive reads one frame and decodes it against the catalogue for
// (phase, dir). Trailing bytes left over after a successful decode are a
// protocol violation per spec.md section 4.4.
func (s *Session) Receive(phase packet.Phase, dir packet.Direction) (packet.Packet, error) {
	payload, err := s.ReadPacket()
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(payload)
	p, err := packet.Decode(r, phase, dir)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return p, ErrTrailingBytes
	}
	return p, nil
}

// TryReceive is the non-blocking counterpart to Receive, per
// TryReadPacket's semantics.
func (s *Session) TryReceive(phase packet.Phase, dir packet.Direction) (p packet.Packet, ok bool, err error) {
	payload, ok, err := s.TryReadPacket()
	if err != nil || !ok {
		return nil, ok, err
	}
	r := bytes.NewReader(payload)
	p, err = packet.Decode(r, phase, dir)
	if err != nil {
		return nil, true, err
	}
	if r.Len() != 0 {
		return p, true, ErrTrailingBytes
	}
	return p, true, nil
}

package state

import (
	"io"
	"testing"

	"mcproto.dev/client/internal/auth"
	"mcproto.dev/client/internal/packet"
	"mcproto.dev/client/internal/transport"

	uuid "github.com/satori/go.uuid"
)

func testUUID() uuid.UUID {
	var b [16]byte
	for i := range b {
		b[i] = byte(i)
	}
	id, _ := uuid.FromBytes(b[:])
	return id
}

// wiredSessions returns two Sessions, client and server, connected back to
// back over in-memory pipes, so packets sent by one arrive at the other.
func wiredSessions() (client, server *transport.Session) {
	c2sR, c2sW := io.Pipe()
	s2cR, s2cW := io.Pipe()
	client = transport.NewSession(s2cR, c2sW)
	server = transport.NewSession(c2sR, s2cW)
	return
}

func TestLoginSuccessUnencryptedUncompressed(t *testing.T) {
	client, server := wiredSessions()

	serverErr := make(chan error, 1)
	go func() {
		if _, err := server.Receive(packet.PhaseHandshake, packet.Serverbound); err != nil {
			serverErr <- err
			return
		}
		p, err := server.Receive(packet.PhaseLogin, packet.Serverbound)
		if err != nil {
			serverErr <- err
			return
		}
		if _, ok := p.(packet.LoginStart); !ok {
			serverErr <- io.ErrUnexpectedEOF
			return
		}
		serverErr <- server.Send(packet.LoginSuccess{
			UUID:     testUUID(),
			Username: "Steve",
		})
	}()

	h := NewHandshake(client, "localhost", 25565, 751)
	login, err := h.Login()
	if err != nil {
		t.Fatal(err)
	}

	play, err := login.Login(auth.Authentication{DisplayName: "Steve"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if play.Username != "Steve" {
		t.Fatalf("got username %q", play.Username)
	}
	if err := <-serverErr; err != nil {
		t.Fatal(err)
	}
}

func TestLoginDisconnect(t *testing.T) {
	client, server := wiredSessions()

	go func() {
		server.Receive(packet.PhaseHandshake, packet.Serverbound)
		server.Receive(packet.PhaseLogin, packet.Serverbound)
		server.Send(packet.LoginDisconnect{Reason: "server full"})
	}()

	h := NewHandshake(client, "localhost", 25565, 751)
	login, err := h.Login()
	if err != nil {
		t.Fatal(err)
	}

	_, err = login.Login(auth.Authentication{DisplayName: "Steve"}, nil)
	disconnected, ok := err.(ErrDisconnected)
	if !ok {
		t.Fatalf("got %v (%T), want ErrDisconnected", err, err)
	}
	if disconnected.Reason != "server full" {
		t.Fatalf("got reason %q", disconnected.Reason)
	}
}

func TestStatusQueryPingMismatch(t *testing.T) {
	client, server := wiredSessions()

	go func() {
		server.Receive(packet.PhaseHandshake, packet.Serverbound)
		server.Receive(packet.PhaseStatus, packet.Serverbound) // Request
		server.Receive(packet.PhaseStatus, packet.Serverbound) // Ping
		server.Send(packet.StatusResponse{JSON: `{"version":{"name":"1.16.2","protocol":751},"players":{"max":20,"online":0},"description":"hi"}`})
		server.Send(packet.StatusPong{Payload: 0})
	}()

	h := NewHandshake(client, "localhost", 25565, 751)
	status, err := h.Status()
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = status.Query()
	if err != ErrPingMismatch {
		t.Fatalf("got %v want ErrPingMismatch", err)
	}
}

func TestKeepAliveEcho(t *testing.T) {
	client, server := wiredSessions()

	loginSuccess := packet.LoginSuccess{UUID: testUUID(), Username: "Alex"}
	p := newPlay(client, loginSuccess)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Send(packet.KeepAliveClientbound{KeepAliveID: 42}); err != nil {
			serverErr <- err
			return
		}
		got, err := server.Receive(packet.PhasePlay, packet.Serverbound)
		if err != nil {
			serverErr <- err
			return
		}
		ka, ok := got.(packet.KeepAliveServerbound)
		if !ok || ka.KeepAliveID != 42 {
			serverErr <- io.ErrUnexpectedEOF
			return
		}
		serverErr <- nil
	}()

	if _, err := p.Poll(); err != nil {
		t.Fatal(err)
	}
	if err := <-serverErr; err != nil {
		t.Fatal(err)
	}
}

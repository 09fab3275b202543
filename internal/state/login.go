package state

import (
	"fmt"

	"mcproto.dev/client/internal/auth"
	"mcproto.dev/client/internal/packet"
	"mcproto.dev/client/internal/proto"
	"mcproto.dev/client/internal/transport"
)

// Login is the state reached after Handshake.Login(); its Login operation
// orchestrates encryption negotiation and session verification before
// transitioning to Play.
type Login struct {
	sess          *transport.Session
	serverAddress string
}

// ErrDisconnected carries the Chat reason a server gave for refusing the
// connection, satisfying the Disconnect error kind in spec.md section 7.
type ErrDisconnected struct {
	Reason proto.Chat
}

func (e ErrDisconnected) Error() string { return fmt.Sprintf("state: disconnected: %s", e.Reason) }

// Login sends LoginStart{name} and drives the Login packet loop described
// in spec.md section 4.5, returning the Play state once LoginSuccess
// arrives.
func (l *Login) Login(authn auth.Authentication, verifier auth.SessionVerifier) (*Play, error) {
	if err := l.sess.Send(packet.LoginStart{Name: authn.DisplayName}); err != nil {
		return nil, err
	}

	for {
		p, err := l.sess.Receive(packet.PhaseLogin, packet.Clientbound)
		if err != nil {
			return nil, err
		}
		switch pkt := p.(type) {
		case packet.LoginDisconnect:
			return nil, ErrDisconnected{Reason: pkt.Reason}

		case packet.EncryptionRequest:
			if err := l.handleEncryptionRequest(pkt, authn, verifier); err != nil {
				return nil, err
			}

		case packet.SetCompression:
			l.sess.SetCompressionThreshold(int(pkt.Threshold))

		case packet.LoginPluginRequest:
			resp := packet.LoginPluginResponse{MessageID: pkt.MessageID, Success: false, Data: nil}
			if err := l.sess.Send(resp); err != nil {
				return nil, err
			}

		case packet.LoginSuccess:
			return newPlay(l.sess, pkt), nil

		default:
			return nil, fmt.Errorf("state: unexpected login packet %T", p)
		}
	}
}

func (l *Login) handleEncryptionRequest(req packet.EncryptionRequest, authn auth.Authentication, verifier auth.SessionVerifier) error {
	pub, err := auth.ParseRSAPublicKeyDER(req.PublicKeyDER)
	if err != nil {
		return err
	}
	sharedSecret, err := auth.GenerateSharedSecret()
	if err != nil {
		return err
	}

	encryptedSecret, err := auth.EncryptPKCS1v15(pub, sharedSecret)
	if err != nil {
		return err
	}
	encryptedVerifyToken, err := auth.EncryptPKCS1v15(pub, req.VerifyToken)
	if err != nil {
		return err
	}

	serverHash := auth.ServerHash(req.ServerID, sharedSecret, req.PublicKeyDER)
	if err := verifier.Join(authn.AccessToken, authn.UUID, serverHash); err != nil {
		return err
	}

	resp := packet.EncryptionResponse{SharedSecret: encryptedSecret, VerifyToken: encryptedVerifyToken}
	if err := l.sess.Send(resp); err != nil {
		return err
	}
	return l.sess.EnableEncryption(sharedSecret)
}

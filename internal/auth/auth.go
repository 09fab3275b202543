// Package auth implements the credential and session-verification
// collaborators the Login state depends on: an opaque account
// Authentication value, the Mojang authserver/sessionserver HTTP JSON
// clients, RSA encryption of the shared secret and verify token, and the
// "notchian" signed-hex SHA-1 digest the session server expects.
package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	uuid "github.com/satori/go.uuid"
)

// Authentication is the opaque credential produced by the account-auth
// collaborator (out of scope per spec, §1) and consumed, never mutated, by
// the Login state.
type Authentication struct {
	UUID        uuid.UUID
	DisplayName string
	AccessToken string
}

const authServerURL = "https://authserver.mojang.com/authenticate"

type authenticateRequest struct {
	Agent    authAgent `json:"agent"`
	Username string    `json:"username"`
	Password string    `json:"password"`
}

type authAgent struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
}

type authenticateResponse struct {
	AccessToken     string `json:"accessToken"`
	SelectedProfile struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"selectedProfile"`
}

// Authenticate exchanges an account id and password for an Authentication
// via the Mojang account server. httpClient may be nil to use a default
// client with a 10-second timeout.
func Authenticate(httpClient *http.Client, accountID, password string) (auth Authentication, err error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	body, err := json.Marshal(authenticateRequest{
		Agent:    authAgent{Name: "Minecraft", Version: 1},
		Username: accountID,
		Password: password,
	})
	if err != nil {
		return
	}
	resp, err := httpClient.Post(authServerURL, "application/json", bytesReader(body))
	if err != nil {
		return
	}
	defer resp.Body.Close()
	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err = fmt.Errorf("auth: authenticate failed with status %d: %s", resp.StatusCode, respBody)
		return
	}
	var parsed authenticateResponse
	if err = json.Unmarshal(respBody, &parsed); err != nil {
		return
	}
	id, err := uuid.FromString(insertUUIDHyphens(parsed.SelectedProfile.ID))
	if err != nil {
		return
	}
	auth = Authentication{
		UUID:        id,
		DisplayName: parsed.SelectedProfile.Name,
		AccessToken: parsed.AccessToken,
	}
	return
}

// SessionVerifier is the capability the Login state accepts instead of
// calling the session-verification URL directly, per spec.md section 9's
// "external services as injected collaborators" design note — it lets
// tests substitute an in-memory fake.
type SessionVerifier interface {
	Join(accessToken string, profileUUID uuid.UUID, serverHash string) error
}

const sessionServerJoinURL = "https://sessionserver.mojang.com/session/minecraft/join"

// MojangSessionVerifier is the real SessionVerifier backed by
// sessionserver.mojang.com.
type MojangSessionVerifier struct {
	HTTPClient *http.Client
}

type joinRequest struct {
	AccessToken     string `json:"accessToken"`
	SelectedProfile string `json:"selectedProfile"`
	ServerID        string `json:"serverId"`
}

func (v MojangSessionVerifier) Join(accessToken string, profileUUID uuid.UUID, serverHash string) error {
	client := v.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	body, err := json.Marshal(joinRequest{
		AccessToken:     accessToken,
		SelectedProfile: stripHyphens(profileUUID.String()),
		ServerID:        serverHash,
	})
	if err != nil {
		return err
	}
	resp, err := client.Post(sessionServerJoinURL, "application/json", bytesReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := ioutil.ReadAll(resp.Body)
		return fmt.Errorf("auth: session join failed with status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}

// ParseRSAPublicKeyDER parses an X.509 SubjectPublicKeyInfo DER blob (as
// sent in EncryptionRequest.public_key_der) into an RSA public key.
func ParseRSAPublicKeyDER(der []byte) (*rsa.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, err
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("auth: server public key is not RSA")
	}
	return rsaPub, nil
}

// GenerateSharedSecret draws the 16 random bytes used as both the AES-128
// key and the CFB8 initialization vector.
func GenerateSharedSecret() ([]byte, error) {
	secret := make([]byte, 16)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// EncryptPKCS1v15 encrypts data with the server's RSA public key using
// PKCS#1 v1.5 padding, the scheme EncryptionResponse's fields require.
func EncryptPKCS1v15(pub *rsa.PublicKey, data []byte) ([]byte, error) {
	return rsa.EncryptPKCS1v15(rand.Reader, pub, data)
}

// ServerHash computes the "notchian" signed-hex SHA-1 digest described in
// spec.md section 8: SHA1(serverID || sharedSecret || publicKeyDER)
// interpreted as a big-endian two's-complement integer and rendered as
// lower-case hex with leading '0' hex digits stripped and a leading '-' if
// negative.
func ServerHash(serverID string, sharedSecret, publicKeyDER []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKeyDER)
	digest := h.Sum(nil)

	negative := digest[0]&0x80 != 0
	if negative {
		digest = twosComplementNegate(digest)
	}

	hex := fmt.Sprintf("%x", digest)
	hex = stripLeadingZeros(hex)
	if hex == "" {
		hex = "0"
	}
	if negative {
		hex = "-" + hex
	}
	return hex
}

func twosComplementNegate(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = ^v
	}
	carry := 1
	for i := len(out) - 1; i >= 0 && carry != 0; i-- {
		sum := int(out[i]) + carry
		out[i] = byte(sum & 0xff)
		carry = sum >> 8
	}
	return out
}

func stripLeadingZeros(hex string) string {
	i := 0
	for i < len(hex)-1 && hex[i] == '0' {
		i++
	}
	if hex == "" {
		return hex
	}
	// A fully-zero input is returned as ""; ServerHash renders that as "0".
	allZero := true
	for _, c := range hex {
		if c != '0' {
			allZero = false
			break
		}
	}
	if allZero {
		return ""
	}
	return hex[i:]
}

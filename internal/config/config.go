// Package config resolves connection parameters from environment
// variables, following the same os.Getenv-driven override pattern the
// teacher uses for its log-level switch (KR_LOG_LEVEL / MCPROTO_LOG_LEVEL).
package config

import (
	"os"
	"strconv"
	"time"

	"mcproto.dev/client/internal/version"
)

// Connection holds the parameters a session needs to dial and handshake.
type Connection struct {
	Host            string
	Port            uint16
	ProtocolVersion int32
	DialTimeout     time.Duration
}

// DefaultDialTimeout is used when MCPROTO_DIAL_TIMEOUT_MS is unset or
// unparseable.
const DefaultDialTimeout = 10 * time.Second

// Resolve builds a Connection for host:port, applying
// MCPROTO_PROTOCOL_VERSION and MCPROTO_DIAL_TIMEOUT_MS overrides from the
// environment when present.
func Resolve(host string, port uint16) Connection {
	c := Connection{
		Host:            host,
		Port:            port,
		ProtocolVersion: version.ProtocolVersion,
		DialTimeout:     DefaultDialTimeout,
	}
	if v := os.Getenv("MCPROTO_PROTOCOL_VERSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ProtocolVersion = int32(n)
		}
	}
	if v := os.Getenv("MCPROTO_DIAL_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.DialTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	return c
}

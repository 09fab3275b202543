// Package version holds this client's own semantic version and the wire
// protocol version it targets.
package version

import "github.com/blang/semver"

// ClientVersion is this client's own semantic version, bumped on release.
var ClientVersion = semver.MustParse("0.1.0")

// ProtocolVersion is the VarInt sent in Handshake.protocol_version: 751
// selects the 1.16.2 wire format, the only shape this client targets.
const ProtocolVersion = 751

package auth

import (
	"bytes"
	"io"
	"strings"
)

func bytesReader(b []byte) io.Reader { return bytes.NewReader(b) }

func stripHyphens(s string) string { return strings.ReplaceAll(s, "-", "") }

// insertUUIDHyphens converts a 32-character hex UUID (as returned by
// selectedProfile.id, without hyphens) into the canonical
// 8-4-4-4-12 hyphenated form satori/go.uuid expects.
func insertUUIDHyphens(s string) string {
	if len(s) != 32 {
		return s
	}
	return s[0:8] + "-" + s[8:12] + "-" + s[12:16] + "-" + s[16:20] + "-" + s[20:32]
}

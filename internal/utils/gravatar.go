package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL derives the default avatar for an email address. The URL is
// protocol-relative, matching what gravatar itself hands out.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:])
}

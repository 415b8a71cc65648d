package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const shareTokenBytes = 24

var codeCharset = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")

// GenerateShareToken returns an unguessable opaque token used in share links.
func GenerateShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateCode returns a short human-shareable code like GRP-20240101-X7K2QF.
// The charset omits easily confused characters (0/O, 1/I).
func GenerateCode(prefix string, now time.Time) (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	var b strings.Builder
	for _, v := range buf {
		b.WriteRune(codeCharset[int(v)%len(codeCharset)])
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), b.String()), nil
}

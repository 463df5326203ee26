package service

import (
	"encoding/hex"
	"fmt"
	"net"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// LikerIdentifier turns a client address into the identifier stored in the like ledger
type LikerIdentifier struct {
	salt []byte
}

// NewLikerIdentifier creates a new LikerIdentifier.
// With an empty salt the normalized address is stored as-is; otherwise it is
// replaced by a keyed BLAKE2b-256 digest.
func NewLikerIdentifier(salt string) (*LikerIdentifier, error) {
	if len(salt) > blake2b.Size {
		return nil, fmt.Errorf("LIKER_SALT must be at most %d bytes, got %d", blake2b.Size, len(salt))
	}
	return &LikerIdentifier{salt: []byte(salt)}, nil
}

// Identify returns the liker id for addr, or "" when addr is empty
func (l *LikerIdentifier) Identify(addr string) string {
	addr = normalizeAddr(addr)
	if addr == "" {
		return ""
	}
	if len(l.salt) == 0 {
		return addr
	}

	// New256 only fails for keys longer than 64 bytes, rejected in the constructor
	h, _ := blake2b.New256(l.salt)
	h.Write([]byte(addr))
	return hex.EncodeToString(h.Sum(nil))
}

// normalizeAddr strips ports and zones so the same client maps to the same id
func normalizeAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	addr = strings.Trim(addr, "[]")
	if i := strings.IndexByte(addr, '%'); i >= 0 {
		addr = addr[:i]
	}
	if ip := net.ParseIP(addr); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
		return ip.String()
	}
	return addr
}

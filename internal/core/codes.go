package core

import (
	"crypto/rand"

	"relaybot/internal/domain"
)

// DefaultCodeLength gives ~2.8e12 possible codes, plenty for one process.
const DefaultCodeLength = 8

const codeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newCodeLocked draws a fresh join code and re-rolls until it does not
// collide with any live room. Caller holds r.mu.
func (r *Registry) newCodeLocked() domain.JoinCode {
	buf := make([]byte, r.codeLen)
	for {
		// crypto/rand.Read never returns an error.
		_, _ = rand.Read(buf)
		for i, b := range buf {
			buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
		}
		code := domain.JoinCode(buf)
		if _, taken := r.byCode[code]; !taken {
			return code
		}
	}
}

// Package id generates transaction identifiers.
package id

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const (
	prefix   = "tx_"
	tokenLen = 12
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewTransactionID returns an id like "tx_1714651200000_k3j9x0q2m1p7":
// creation time in Unix milliseconds plus a random base-36 token. The
// token makes collisions effectively impossible, even for transactions
// created in the same millisecond.
func NewTransactionID(now time.Time) string {
	return fmt.Sprintf("%s%d_%s", prefix, now.UnixMilli(), token(tokenLen))
}

// IsTransactionID reports whether s looks like a generated transaction id.
func IsTransactionID(s string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	rest := strings.TrimPrefix(s, prefix)
	millis, tok, found := strings.Cut(rest, "_")
	return found && millis != "" && tok != ""
}

func token(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf) // never fails per crypto/rand docs
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}

package id

import (
	"crypto/rand"
	"encoding/hex"
)

// New returns a random hex identifier correlating the log lines and trace
// spans of a single conversion run.
func New() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "run-fallback-id"
	}
	return hex.EncodeToString(b[:])
}

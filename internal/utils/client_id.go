package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const clientIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	clientIDMu     sync.Mutex
	lastClientIDMs int64
)

// NewClientID produces the join key shared by every row a submission
// writes: "CLI-<millis>-<6 random uppercase base36 chars>". The timestamp
// component never decreases within a process, and the suffix makes
// same-millisecond collisions practically impossible. Not a security
// token.
func NewClientID() string {
	clientIDMu.Lock()
	ms := time.Now().UnixMilli()
	if ms < lastClientIDMs {
		ms = lastClientIDMs
	}
	lastClientIDMs = ms
	clientIDMu.Unlock()

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = clientIDAlphabet[rand.Intn(len(clientIDAlphabet))]
	}

	return fmt.Sprintf("CLI-%d-%s", ms, suffix)
}

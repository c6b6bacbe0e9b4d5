package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a cache key of the form "<stage>:<sha256(parts)>". The
// stage prefix keeps library, layout, and artifact entries distinguishable
// when inspecting a shared store; the full 256-bit digest rules out
// collisions between option sets.
func hashKey(stage string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", stage, hex.EncodeToString(sum[:]))
}

// Hash returns the SHA-256 digest of data as a 64-character hex string.
// Library and layout content hashes use this directly.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

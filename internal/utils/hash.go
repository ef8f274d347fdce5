package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// ETag computes a strong entity tag for a response body. The value is
// quoted as required by the ETag header.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Returns it to the pool
func ETag(body []byte) string {
	h := hasherPool.Get().(hash.Hash)
	defer hasherPool.Put(h)

	h.Reset()
	h.Write(body)

	return `"` + hex.EncodeToString(h.Sum(nil)) + `"`
}

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// payloadHasherPool keeps reusable SHA-256 instances for request payload
// hashing. Every request signed by the AWS client hashes its body once.
var payloadHasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// EmptyPayloadHash is the hex SHA-256 digest of an empty body.
const EmptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// HashPayload computes the hex-encoded SHA-256 digest of data using a hasher
// pulled from the package pool.
//
// Example usage:
//
//	payloadHash := utils.HashPayload(body)
func HashPayload(data []byte) string {
	if len(data) == 0 {
		return EmptyPayloadHash
	}

	h := payloadHasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	payloadHasherPool.Put(h)

	return hex.EncodeToString(sum)
}

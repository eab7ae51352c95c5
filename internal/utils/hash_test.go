package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashPayload_MatchesSHA256(t *testing.T) {
	data := []byte(`{"amount":42}`)

	sum := sha256.Sum256(data)
	expected := hex.EncodeToString(sum[:])

	if got := HashPayload(data); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestHashPayload_Empty(t *testing.T) {
	sum := sha256.Sum256(nil)
	if EmptyPayloadHash != hex.EncodeToString(sum[:]) {
		t.Fatal("EmptyPayloadHash does not match sha256 of empty input")
	}

	if got := HashPayload(nil); got != EmptyPayloadHash {
		t.Errorf("expected empty payload hash, got %s", got)
	}
	if got := HashPayload([]byte{}); got != EmptyPayloadHash {
		t.Errorf("expected empty payload hash, got %s", got)
	}
}

func TestHashPayload_PoolReuseIsStable(t *testing.T) {
	first := HashPayload([]byte("a"))
	_ = HashPayload([]byte("something else entirely"))
	second := HashPayload([]byte("a"))

	if first != second {
		t.Errorf("expected stable digest, got %s and %s", first, second)
	}
}

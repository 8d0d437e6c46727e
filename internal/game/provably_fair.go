package game

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// DrawPocket maps HMAC-SHA256(serverSeed, clientSeed:nonce) onto a pocket
// in [0, 36]. The same seeds and nonce always yield the same pocket, so a
// player holding the revealed server seed can re-derive the result.
func DrawPocket(serverSeed, clientSeed string, nonce int) int {
	data := fmt.Sprintf("%s:%d", clientSeed, nonce)
	h := hmac.New(sha256.New, []byte(serverSeed))
	h.Write([]byte(data))
	hashBytes := h.Sum(nil)
	hashHex := hex.EncodeToString(hashBytes)

	// Take first 16 hex characters (64 bits)
	hexValue := hashHex[:16]
	i := new(big.Int)
	i.SetString(hexValue, 16)

	// Convert to float between 0 and 1, then scale across the 37 pockets
	const MAX_VALUE_F64 = 18446744073709551616.0
	rFloat := float64(i.Uint64()) / MAX_VALUE_F64

	pocket := int(rFloat * float64(NumPockets))
	if pocket > 36 {
		pocket = 36
	}
	return pocket
}

// GenerateSeed creates a cryptographically secure random seed
func GenerateSeed() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// HashCommitment creates a SHA256 hash of the seed for commitment
func HashCommitment(seed string) string {
	h := sha256.New()
	h.Write([]byte(seed))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySpin allows players to verify the fairness of a settled round.
func VerifySpin(serverSeed, clientSeed string, nonce, claimedPocket int) bool {
	return DrawPocket(serverSeed, clientSeed, nonce) == claimedPocket
}

// Package ds generates DS signature tokens for signed endpoint families.
//
// The token format is a remote contract shared by all official clients:
//
//	"<t>,<r>,<md5hex(salt=<salt>&t=<t>&r=<r>)>"
//
// where t is the current unix timestamp in seconds and r is a six
// character lowercase alphanumeric nonce. The generator is a pure
// function of the salt, the clock and the nonce source; both sources
// are injectable so tokens can be verified against fixed vectors.
package ds

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"
)

const nonceAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// nonceLength is fixed by the remote contract.
const nonceLength = 6

// Generator produces DS tokens for a single salt.
type Generator struct {
	salt string

	// Now returns the current time. Overridable for tests.
	Now func() time.Time

	// Nonce returns a fresh nonce string. Overridable for tests.
	Nonce func() string
}

// NewGenerator creates a Generator for the given salt using the wall
// clock and a pseudo-random nonce source.
func NewGenerator(salt string) *Generator {
	return &Generator{
		salt:  salt,
		Now:   time.Now,
		Nonce: RandomNonce,
	}
}

// Generate returns a DS token for the generator's salt.
func (g *Generator) Generate() string {
	return Token(g.salt, g.Now().Unix(), g.Nonce())
}

// Token computes the DS token for an explicit timestamp and nonce.
// It is deterministic and has no hidden state.
func Token(salt string, t int64, nonce string) string {
	payload := fmt.Sprintf("salt=%s&t=%d&r=%s", salt, t, nonce)
	sum := md5.Sum([]byte(payload))
	return fmt.Sprintf("%d,%s,%s", t, nonce, hex.EncodeToString(sum[:]))
}

// Generate returns a DS token for the given salt using the wall clock
// and a random nonce.
func Generate(salt string) string {
	return Token(salt, time.Now().Unix(), RandomNonce())
}

// RandomNonce returns a six character lowercase alphanumeric nonce.
func RandomNonce() string {
	b := make([]byte, nonceLength)
	for i := range b {
		b[i] = nonceAlphabet[rand.Intn(len(nonceAlphabet))]
	}
	return string(b)
}

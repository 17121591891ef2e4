// Package randid generates short random identifiers.
package randid

import "crypto/rand"

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// limit is the largest multiple of len(alphabet) that fits in a byte.
// Bytes at or above it are rejected; folding them in with a plain modulo
// would skew ids toward the start of the alphabet.
const limit = byte(256 - 256%len(alphabet))

// Generate returns a random lowercase alphanumeric string of the given
// length, drawn uniformly over the alphabet.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		// crypto/rand.Read is documented to never return an error on
		// supported platforms; it panics on catastrophic failure instead.
		_, _ = rand.Read(buf)

		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}

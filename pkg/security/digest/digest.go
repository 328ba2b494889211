/*
Package digest provides digest encoding utilities.
*/
package digest

import (
	"crypto"
	_ "crypto/sha256" // registers crypto.SHA256
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrAlgorithmUnavailable = errors.New("digest algorithm unavailable")

// SHA256Hex returns the lowercase hex-encoded sha256 digest of the
// bytes of `s` (UTF-8 for Go string literals). The result is always
// 64 characters on success.
func SHA256Hex(s string) (string, error) {
	return hexDigest(crypto.SHA256, s)
}

// hexDigest hashes `s` with `alg`. `alg` must be linked into the binary.
func hexDigest(alg crypto.Hash, s string) (string, error) {
	if !alg.Available() {
		return "", fmt.Errorf("%w: %v", ErrAlgorithmUnavailable, alg)
	}
	hasher := alg.New()
	hasher.Write([]byte(s)) // nolint:errcheck
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

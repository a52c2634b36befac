package service

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// encodeSecret renders a raw private key for encrypted storage.
func encodeSecret(secret []byte) string {
	return base58.Encode(secret)
}

// decodeSecret reverses encodeSecret.
func decodeSecret(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decoding secret key: %w", err)
	}
	return b, nil
}

// zeroBytes overwrites key material in place. Called on every exit
// path that handled a plaintext secret.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

package crypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// KeyPairFromPEM parses a PEM-encoded Ed25519 private/public key pair as
// supplied by the configuration layer.
//
// Parsing is delegated to golang-jwt's PEM helpers; keys of any other
// algorithm are rejected with [ErrInvalidKeyMaterial].
func KeyPairFromPEM(privatePEM, publicPEM []byte) (KeyPair, error) {
	priv, err := jwt.ParseEdPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: parsing private key: %w", ErrInvalidKeyMaterial, err)
	}

	pub, err := jwt.ParseEdPublicKeyFromPEM(publicPEM)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: parsing public key: %w", ErrInvalidKeyMaterial, err)
	}

	privateKey, ok := priv.(ed25519.PrivateKey)
	if !ok {
		return KeyPair{}, fmt.Errorf("%w: private key is not Ed25519", ErrInvalidKeyMaterial)
	}

	publicKey, ok := pub.(ed25519.PublicKey)
	if !ok {
		return KeyPair{}, fmt.Errorf("%w: public key is not Ed25519", ErrInvalidKeyMaterial)
	}

	return KeyPair{Private: privateKey, Public: publicKey}, nil
}

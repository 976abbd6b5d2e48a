// Package keyfactory rebuilds key handles
// from PKIX and PKCS8 encoded bytes.
package keyfactory

import (
	"crypto"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
)

// DecodeDefaultPublicKey - DecodePublicKey for RSA.
func DecodeDefaultPublicKey(data []byte) (crypto.PublicKey, error) {
	return DecodePublicKey(data, keymodels.DefaultAlgorithm)
}

// DecodeDefaultPrivateKey - DecodePrivateKey for RSA.
func DecodeDefaultPrivateKey(data []byte) (crypto.PrivateKey, error) {
	return DecodePrivateKey(data, keymodels.DefaultAlgorithm)
}

// DecodePublicKey - parses a SubjectPublicKeyInfo
// structure holding a key of the given algorithm.
func DecodePublicKey(
	data []byte,
	algorithm string,
) (crypto.PublicKey, error) {
	algo, err := keymodels.CanonicalAlgorithm(algorithm)
	if err != nil {
		return nil, fmt.Errorf("DecodePublicKey->%q: %w",
			algorithm, err)
	}

	pub, err := x509.ParsePKIXPublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("DecodePublicKey->ParsePKIXPublicKey: %w: %w",
			keymodels.ErrMalformedKeyEncoding, err)
	}

	if !publicMatches(pub, algo) {
		return nil, fmt.Errorf("DecodePublicKey->%T is not %s: %w",
			pub, algo, keymodels.ErrMalformedKeyEncoding)
	}

	return pub, nil
}

// DecodePrivateKey - parses a PKCS8 structure
// holding a key of the given algorithm.
func DecodePrivateKey(
	data []byte,
	algorithm string,
) (crypto.PrivateKey, error) {
	algo, err := keymodels.CanonicalAlgorithm(algorithm)
	if err != nil {
		return nil, fmt.Errorf("DecodePrivateKey->%q: %w",
			algorithm, err)
	}

	priv, err := x509.ParsePKCS8PrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("DecodePrivateKey->ParsePKCS8PrivateKey: %w: %w",
			keymodels.ErrMalformedKeyEncoding, err)
	}

	if !privateMatches(priv, algo) {
		return nil, fmt.Errorf("DecodePrivateKey->%T is not %s: %w",
			priv, algo, keymodels.ErrMalformedKeyEncoding)
	}

	return priv, nil
}

func publicMatches(pub any, algo string) bool {
	switch key := pub.(type) {
	case *rsa.PublicKey:
		return algo == keymodels.AlgorithmRSA
	case *ecdsa.PublicKey:
		return algo == keymodels.AlgorithmEC
	case ed25519.PublicKey:
		return algo == keymodels.AlgorithmEd25519
	case *ecdh.PublicKey:
		return algo == keymodels.AlgorithmX25519 &&
			key.Curve() == ecdh.X25519()
	default:
		return false
	}
}

func privateMatches(priv any, algo string) bool {
	switch key := priv.(type) {
	case *rsa.PrivateKey:
		return algo == keymodels.AlgorithmRSA
	case *ecdsa.PrivateKey:
		return algo == keymodels.AlgorithmEC
	case ed25519.PrivateKey:
		return algo == keymodels.AlgorithmEd25519
	case *ecdh.PrivateKey:
		return algo == keymodels.AlgorithmX25519 &&
			key.Curve() == ecdh.X25519()
	default:
		return false
	}
}

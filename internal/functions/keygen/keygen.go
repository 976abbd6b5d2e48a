// Package keygen provides functions
// generating asymmetric key pairs.
package keygen

import (
	"crypto"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"io"

	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
)

// curve25519Size - the only key size accepted for Ed25519 and X25519.
const curve25519Size int = 255

type generator func(rnd io.Reader, size int) (any, crypto.PublicKey, error)

var generators = map[string]generator{
	keymodels.AlgorithmRSA:     generateRSA,
	keymodels.AlgorithmEC:      generateEC,
	keymodels.AlgorithmEd25519: generateEd25519,
	keymodels.AlgorithmX25519:  generateX25519,
}

// GenerateDefaultKeys - generates an RSA 3072 key pair.
func GenerateDefaultKeys() (*keymodels.KeyMaterial, error) {
	return GenerateKeys(keymodels.DefaultAlgorithm,
		keymodels.DefaultKeySize)
}

// GenerateKeys - generates a key pair of the given
// algorithm and size and returns its encoded bytes.
func GenerateKeys(
	algorithm string,
	keySize int,
) (*keymodels.KeyMaterial, error) {
	return generateKeys(rand.Reader, algorithm, keySize)
}

func generateKeys(
	rnd io.Reader,
	algorithm string,
	keySize int,
) (*keymodels.KeyMaterial, error) {
	algo, err := keymodels.CanonicalAlgorithm(algorithm)
	if err != nil {
		return nil, fmt.Errorf("GenerateKeys->%q: %w",
			algorithm, err)
	}

	if keySize <= 0 {
		return nil, fmt.Errorf("GenerateKeys->size %d: %w",
			keySize, keymodels.ErrGenerationFailure)
	}

	priv, pub, err := generators[algo](rnd, keySize)
	if err != nil {
		return nil, fmt.Errorf("GenerateKeys->%s: %w: %w",
			algo, keymodels.ErrGenerationFailure, err)
	}

	pubBytes, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("GenerateKeys->MarshalPKIXPublicKey: %w: %w",
			keymodels.ErrGenerationFailure, err)
	}

	privBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("GenerateKeys->MarshalPKCS8PrivateKey: %w: %w",
			keymodels.ErrGenerationFailure, err)
	}

	return &keymodels.KeyMaterial{
		PublicKey:  pubBytes,
		PrivateKey: privBytes,
	}, nil
}

func generateRSA(
	rnd io.Reader, size int,
) (any, crypto.PublicKey, error) {
	key, err := rsa.GenerateKey(rnd, size)
	if err != nil {
		return nil, nil, fmt.Errorf("generateRSA->GenerateKey: %w", err)
	}

	return key, &key.PublicKey, nil
}

func generateEC(
	rnd io.Reader, size int,
) (any, crypto.PublicKey, error) {
	curve, err := namedCurve(size)
	if err != nil {
		return nil, nil, err
	}

	key, err := ecdsa.GenerateKey(curve, rnd)
	if err != nil {
		return nil, nil, fmt.Errorf("generateEC->GenerateKey: %w", err)
	}

	return key, &key.PublicKey, nil
}

func generateEd25519(
	rnd io.Reader, size int,
) (any, crypto.PublicKey, error) {
	if size != curve25519Size {
		return nil, nil, fmt.Errorf(
			"generateEd25519: key size must be %d, got %d",
			curve25519Size, size)
	}

	pub, priv, err := ed25519.GenerateKey(rnd)
	if err != nil {
		return nil, nil, fmt.Errorf("generateEd25519->GenerateKey: %w", err)
	}

	return priv, pub, nil
}

func generateX25519(
	rnd io.Reader, size int,
) (any, crypto.PublicKey, error) {
	if size != curve25519Size {
		return nil, nil, fmt.Errorf(
			"generateX25519: key size must be %d, got %d",
			curve25519Size, size)
	}

	key, err := ecdh.X25519().GenerateKey(rnd)
	if err != nil {
		return nil, nil, fmt.Errorf("generateX25519->GenerateKey: %w", err)
	}

	return key, key.PublicKey(), nil
}

// namedCurve maps a key size to a NIST curve (RFC 5480 2.1.1.1).
func namedCurve(size int) (elliptic.Curve, error) {
	switch size {
	case 224:
		return elliptic.P224(), nil
	case 256:
		return elliptic.P256(), nil
	case 384:
		return elliptic.P384(), nil
	case 521:
		return elliptic.P521(), nil
	default:
		return nil, fmt.Errorf("namedCurve: unknown elliptic curve size %d", size)
	}
}

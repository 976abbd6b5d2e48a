// Package asymcrypto signs and verifies messages
// with reconstructed key handles.
package asymcrypto

import (
	"bytes"
	"crypto"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
)

var (
	ErrKeyType   = errors.New("key type does not support this operation")
	ErrSignature = errors.New("signature verification failed")
	ErrAgreement = errors.New("key agreement mismatch")
)

// Sign - signs msg. RSA uses PKCS #1 v1.5 and ECDSA
// an ASN.1 signature, both over SHA-256. Ed25519 signs msg itself.
func Sign(key crypto.PrivateKey, msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)

	switch priv := key.(type) {
	case *rsa.PrivateKey:
		sig, err := rsa.SignPKCS1v15(rand.Reader, priv,
			crypto.SHA256, digest[:])
		if err != nil {
			return nil, fmt.Errorf("Sign->SignPKCS1v15: %w", err)
		}

		return sig, nil
	case *ecdsa.PrivateKey:
		sig, err := ecdsa.SignASN1(rand.Reader, priv, digest[:])
		if err != nil {
			return nil, fmt.Errorf("Sign->SignASN1: %w", err)
		}

		return sig, nil
	case ed25519.PrivateKey:
		return ed25519.Sign(priv, msg), nil
	default:
		return nil, fmt.Errorf("Sign->%T: %w", key, ErrKeyType)
	}
}

// Verify - checks sig made by Sign.
func Verify(key crypto.PublicKey, msg []byte, sig []byte) error {
	digest := sha256.Sum256(msg)

	switch pub := key.(type) {
	case *rsa.PublicKey:
		err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig)
		if err != nil {
			return fmt.Errorf("Verify->VerifyPKCS1v15: %w: %w",
				ErrSignature, err)
		}

		return nil
	case *ecdsa.PublicKey:
		if !ecdsa.VerifyASN1(pub, digest[:], sig) {
			return fmt.Errorf("Verify->VerifyASN1: %w", ErrSignature)
		}

		return nil
	case ed25519.PublicKey:
		if !ed25519.Verify(pub, msg, sig) {
			return fmt.Errorf("Verify->ed25519: %w", ErrSignature)
		}

		return nil
	default:
		return fmt.Errorf("Verify->%T: %w", key, ErrKeyType)
	}
}

// Agree - checks that priv and pub form a pair by running
// ECDH against a fresh ephemeral key from both sides.
func Agree(pub *ecdh.PublicKey, priv *ecdh.PrivateKey) error {
	eph, err := pub.Curve().GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("Agree->GenerateKey: %w", err)
	}

	ours, err := priv.ECDH(eph.PublicKey())
	if err != nil {
		return fmt.Errorf("Agree->ECDH->priv: %w", err)
	}

	theirs, err := eph.ECDH(pub)
	if err != nil {
		return fmt.Errorf("Agree->ECDH->eph: %w", err)
	}

	if !bytes.Equal(ours, theirs) {
		return ErrAgreement
	}

	return nil
}

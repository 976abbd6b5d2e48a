// Package fingerprint provides functions
// computing public key fingerprints.
package fingerprint

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/dmitrovia/keypair-tool/internal/functions/keyfactory"
	"golang.org/x/crypto/ssh"
)

const prefix = "SHA256:"

// SPKI - SHA-256 of the encoded SubjectPublicKeyInfo
// in the unpadded base64 form OpenSSH prints.
func SPKI(spki []byte) string {
	sum := sha256.Sum256(spki)

	return prefix + base64.RawStdEncoding.EncodeToString(sum[:])
}

// Public - OpenSSH fingerprint of the public key in spki.
// Keys OpenSSH cannot represent (P-224, X25519)
// fall back to the SPKI fingerprint.
func Public(spki []byte, algorithm string) (string, error) {
	pub, err := keyfactory.DecodePublicKey(spki, algorithm)
	if err != nil {
		return "", fmt.Errorf("Public->DecodePublicKey: %w", err)
	}

	sshKey, err := ssh.NewPublicKey(pub)
	if err != nil {
		return SPKI(spki), nil //nolint:nilerr
	}

	return ssh.FingerprintSHA256(sshKey), nil
}

// Package keypairtool generates key pairs and
// persists them as hex or base64 text files.
package keypairtool

import (
	"crypto"
	"crypto/ecdh"
	"fmt"

	"github.com/dmitrovia/keypair-tool/internal/functions/asymcrypto"
	"github.com/dmitrovia/keypair-tool/internal/functions/fingerprint"
	"github.com/dmitrovia/keypair-tool/internal/functions/keyencoder"
	"github.com/dmitrovia/keypair-tool/internal/functions/keyfactory"
	"github.com/dmitrovia/keypair-tool/internal/functions/keyfiles"
	"github.com/dmitrovia/keypair-tool/internal/functions/keygen"
	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// VerifyMessage - message signed by Verify.
const VerifyMessage = "test"

// Tool keeps no state between calls
// and is safe for concurrent use.
type Tool struct {
	writer *keyfiles.Writer
	zlog   *zap.Logger
}

// NewTool - tool over fs (the OS file system when nil),
// logging to zlog (discarded when nil).
func NewTool(fs afero.Fs, zlog *zap.Logger) *Tool {
	if zlog == nil {
		zlog = zap.NewNop()
	}

	return &Tool{
		writer: keyfiles.NewWriter(fs),
		zlog:   zlog,
	}
}

// GenerateDefaultKeyFiles - RSA 3072, base64.
func (kpt *Tool) GenerateDefaultKeyFiles(
	publicPath, privatePath string,
) error {
	return kpt.GenerateKeyFilesWithMethod(publicPath, privatePath,
		keymodels.DefaultSaveMethod)
}

// GenerateKeyFilesWithMethod - RSA 3072.
func (kpt *Tool) GenerateKeyFilesWithMethod(
	publicPath, privatePath string,
	method keymodels.KeySaveMethod,
) error {
	return kpt.GenerateKeyFiles(publicPath, privatePath,
		keymodels.DefaultAlgorithm, keymodels.DefaultKeySize, method)
}

// GenerateKeyFiles - generates a key pair, encodes both keys
// with method and writes them to publicPath and privatePath.
// The public file is written first and is not removed
// when writing the private file fails.
func (kpt *Tool) GenerateKeyFiles(
	publicPath, privatePath string,
	algorithm string,
	keySize int,
	method keymodels.KeySaveMethod,
) error {
	if !method.Valid() {
		return fmt.Errorf("GenerateKeyFiles->%d: %w",
			method, keymodels.ErrUnknownSaveMethod)
	}

	mat, err := keygen.GenerateKeys(algorithm, keySize)
	if err != nil {
		return fmt.Errorf("GenerateKeyFiles->GenerateKeys: %w", err)
	}

	pubText, err := keyencoder.Encode(mat.PublicKey, method)
	if err != nil {
		return fmt.Errorf("GenerateKeyFiles->Encode->pub: %w", err)
	}

	privText, err := keyencoder.Encode(mat.PrivateKey, method)
	if err != nil {
		return fmt.Errorf("GenerateKeyFiles->Encode->priv: %w", err)
	}

	kpt.logGenerated(mat, algorithm, keySize)

	err = kpt.writer.WriteKey(publicPath, pubText)
	if err != nil {
		return fmt.Errorf("GenerateKeyFiles->WriteKey->pub: %w", err)
	}

	err = kpt.writer.WriteKey(privatePath, privText)
	if err != nil {
		return fmt.Errorf("GenerateKeyFiles->WriteKey->priv: %w", err)
	}

	kpt.zlog.Info("key files written",
		zap.String("public", publicPath),
		zap.String("private", privatePath),
		zap.Stringer("method", method))

	return nil
}

// LoadKeyFiles - reads key files written by
// GenerateKeyFiles and rebuilds both handles.
func (kpt *Tool) LoadKeyFiles(
	publicPath, privatePath string,
	algorithm string,
	method keymodels.KeySaveMethod,
) (crypto.PublicKey, crypto.PrivateKey, error) {
	pubData, err := kpt.readKey(publicPath, method)
	if err != nil {
		return nil, nil, fmt.Errorf("LoadKeyFiles->pub: %w", err)
	}

	privData, err := kpt.readKey(privatePath, method)
	if err != nil {
		return nil, nil, fmt.Errorf("LoadKeyFiles->priv: %w", err)
	}

	pub, err := keyfactory.DecodePublicKey(pubData, algorithm)
	if err != nil {
		return nil, nil, fmt.Errorf("LoadKeyFiles->DecodePublicKey: %w",
			err)
	}

	priv, err := keyfactory.DecodePrivateKey(privData, algorithm)
	if err != nil {
		return nil, nil, fmt.Errorf("LoadKeyFiles->DecodePrivateKey: %w",
			err)
	}

	return pub, priv, nil
}

// Verify - checks that pub and priv belong together:
// signs VerifyMessage with priv and verifies it with pub.
// X25519 keys cannot sign and are checked with ECDH.
func (kpt *Tool) Verify(
	pub crypto.PublicKey,
	priv crypto.PrivateKey,
) error {
	ecdhPriv, ok := priv.(*ecdh.PrivateKey)
	if ok {
		ecdhPub, isok := pub.(*ecdh.PublicKey)
		if !isok {
			return fmt.Errorf("Verify->%T: %w", pub, asymcrypto.ErrKeyType)
		}

		err := asymcrypto.Agree(ecdhPub, ecdhPriv)
		if err != nil {
			return fmt.Errorf("Verify->Agree: %w", err)
		}

		kpt.zlog.Debug("key pair verified")

		return nil
	}

	sig, err := asymcrypto.Sign(priv, []byte(VerifyMessage))
	if err != nil {
		return fmt.Errorf("Verify->Sign: %w", err)
	}

	err = asymcrypto.Verify(pub, []byte(VerifyMessage), sig)
	if err != nil {
		return fmt.Errorf("Verify->Verify: %w", err)
	}

	kpt.zlog.Debug("key pair verified")

	return nil
}

func (kpt *Tool) readKey(
	pth string,
	method keymodels.KeySaveMethod,
) ([]byte, error) {
	text, err := kpt.writer.ReadKey(pth)
	if err != nil {
		return nil, fmt.Errorf("readKey->ReadKey: %w", err)
	}

	data, err := keyencoder.Decode(text, method)
	if err != nil {
		return nil, fmt.Errorf("readKey->Decode: %w", err)
	}

	return data, nil
}

func (kpt *Tool) logGenerated(
	mat *keymodels.KeyMaterial,
	algorithm string,
	keySize int,
) {
	if ce := kpt.zlog.Check(zap.InfoLevel, "key pair generated"); ce != nil {
		fpr, err := fingerprint.Public(mat.PublicKey, algorithm)
		if err != nil {
			fpr = fingerprint.SPKI(mat.PublicKey)
		}

		ce.Write(
			zap.String("algorithm", algorithm),
			zap.Int("size", keySize),
			zap.String("fingerprint", fpr))
	}
}

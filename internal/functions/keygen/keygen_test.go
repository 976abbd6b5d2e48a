package keygen

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testData struct {
	tn     string
	algo   string
	size   int
	experr error
}

func getTestData() *[]testData {
	return &[]testData{
		{tn: "1", algo: "RSA", size: 2048},
		{tn: "2", algo: "rsa", size: 2048},
		{tn: "3", algo: "EC", size: 256},
		{tn: "4", algo: "ec", size: 384},
		{tn: "5", algo: "EC", size: 521},
		{tn: "6", algo: "EC", size: 224},
		{tn: "7", algo: "Ed25519", size: 255},
		{tn: "8", algo: "X25519", size: 255},
		{
			tn: "9", algo: "NOT-AN-ALGORITHM", size: 2048,
			experr: keymodels.ErrUnsupportedAlgorithm,
		},
		{
			tn: "10", algo: "EC", size: 300,
			experr: keymodels.ErrGenerationFailure,
		},
		{
			tn: "11", algo: "Ed25519", size: 256,
			experr: keymodels.ErrGenerationFailure,
		},
		{
			tn: "12", algo: "RSA", size: 0,
			experr: keymodels.ErrGenerationFailure,
		},
		{
			tn: "13", algo: "RSA", size: -2048,
			experr: keymodels.ErrGenerationFailure,
		},
		{
			tn: "14", algo: "", size: 2048,
			experr: keymodels.ErrUnsupportedAlgorithm,
		},
	}
}

func TestGenerateKeys(t *testing.T) {
	t.Parallel()

	for _, test := range *getTestData() {
		t.Run(test.tn, func(t *testing.T) {
			t.Parallel()

			mat, err := GenerateKeys(test.algo, test.size)
			if test.experr != nil {
				assert.ErrorIs(t, err, test.experr,
					test.tn+": error didn't match expected")
				assert.Nil(t, mat)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, mat.PublicKey)
			assert.NotEmpty(t, mat.PrivateKey)
			assert.False(t, bytes.Equal(mat.PublicKey, mat.PrivateKey),
				test.tn+": public and private bytes are equal")
		})
	}
}

func TestGenerateKeysDistinct(t *testing.T) {
	t.Parallel()

	first, err := GenerateKeys(keymodels.AlgorithmEC, 256)
	require.NoError(t, err)

	second, err := GenerateKeys(keymodels.AlgorithmEC, 256)
	require.NoError(t, err)

	assert.NotEqual(t, first.PublicKey, second.PublicKey)
	assert.NotEqual(t, first.PrivateKey, second.PrivateKey)
}

func TestGenerateDefaultKeys(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("rsa 3072 generation is slow")
	}

	mat, err := GenerateDefaultKeys()
	require.NoError(t, err)
	assert.NotEmpty(t, mat.PublicKey)
	assert.NotEmpty(t, mat.PrivateKey)
}

type failingReader struct{}

var errEntropy = errors.New("entropy source closed")

func (failingReader) Read([]byte) (int, error) {
	return 0, errEntropy
}

func TestGenerateKeysProviderError(t *testing.T) {
	t.Parallel()

	_, err := generateKeys(failingReader{},
		keymodels.AlgorithmEd25519, curve25519Size)
	require.Error(t, err)
	assert.ErrorIs(t, err, keymodels.ErrGenerationFailure)
	assert.ErrorIs(t, err, errEntropy)

	_, err = generateKeys(rand.Reader,
		keymodels.AlgorithmEd25519, curve25519Size)
	assert.NoError(t, err)
}

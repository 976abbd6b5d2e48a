package keymodels_test

import (
	"testing"

	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
	"github.com/stretchr/testify/assert"
)

func TestParseKeySaveMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tn     string
		name   string
		exp    keymodels.KeySaveMethod
		experr error
	}{
		{tn: "1", name: "hex", exp: keymodels.HEX},
		{tn: "2", name: "BASE64", exp: keymodels.BASE64},
		{tn: "3", name: " Hex ", exp: keymodels.HEX},
		{tn: "4", name: "pem", experr: keymodels.ErrUnknownSaveMethod},
	}

	for _, test := range tests {
		t.Run(test.tn, func(t *testing.T) {
			t.Parallel()

			res, err := keymodels.ParseKeySaveMethod(test.name)
			if test.experr != nil {
				assert.ErrorIs(t, err, test.experr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.exp, res)
			assert.Equal(t, res, mustParse(t, res.String()))
		})
	}
}

func mustParse(t *testing.T, name string) keymodels.KeySaveMethod {
	t.Helper()

	res, err := keymodels.ParseKeySaveMethod(name)
	assert.NoError(t, err)

	return res
}

func TestCanonicalAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tn     string
		name   string
		exp    string
		experr error
	}{
		{tn: "1", name: "rsa", exp: keymodels.AlgorithmRSA},
		{tn: "2", name: "Ec", exp: keymodels.AlgorithmEC},
		{tn: "3", name: "ED25519", exp: keymodels.AlgorithmEd25519},
		{tn: "4", name: "x25519", exp: keymodels.AlgorithmX25519},
		{
			tn: "5", name: "NOT-AN-ALGORITHM",
			experr: keymodels.ErrUnsupportedAlgorithm,
		},
		{tn: "6", name: "", experr: keymodels.ErrUnsupportedAlgorithm},
	}

	for _, test := range tests {
		t.Run(test.tn, func(t *testing.T) {
			t.Parallel()

			res, err := keymodels.CanonicalAlgorithm(test.name)
			assert.ErrorIs(t, err, test.experr)
			assert.Equal(t, test.exp, res)
		})
	}
}

func TestKeySaveMethodString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", keymodels.KeySaveMethod(5).String())
	assert.Equal(t, keymodels.BASE64, keymodels.DefaultSaveMethod)

	assert.True(t, keymodels.HEX.Valid())
	assert.True(t, keymodels.BASE64.Valid())
	assert.False(t, keymodels.KeySaveMethod(5).Valid())
	assert.False(t, keymodels.KeySaveMethod(-1).Valid())
}

// Package keyencoder provides functions
// converting raw key bytes to text and back.
package keyencoder

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
)

// Encode - returns data as lowercase hex without
// separators or standard padded base64 without line wrapping.
func Encode(
	data []byte,
	method keymodels.KeySaveMethod,
) (string, error) {
	switch method {
	case keymodels.HEX:
		return hex.EncodeToString(data), nil
	case keymodels.BASE64:
		return base64.StdEncoding.EncodeToString(data), nil
	default:
		return "", fmt.Errorf("Encode->%d: %w",
			method, keymodels.ErrUnknownSaveMethod)
	}
}

// Decode - inverse of Encode. Malformed text
// is reported as ErrMalformedKeyEncoding.
func Decode(
	text string,
	method keymodels.KeySaveMethod,
) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch method {
	case keymodels.HEX:
		data, err = hex.DecodeString(text)
	case keymodels.BASE64:
		data, err = base64.StdEncoding.DecodeString(text)
	default:
		return nil, fmt.Errorf("Decode->%d: %w",
			method, keymodels.ErrUnknownSaveMethod)
	}

	if err != nil {
		return nil, fmt.Errorf("Decode->%s: %w: %w",
			method, keymodels.ErrMalformedKeyEncoding, err)
	}

	return data, nil
}

// Package keymodels describes key material,
// save methods and tool parameters.
package keymodels

import (
	"errors"
	"strings"
)

const (
	AlgorithmRSA     string = "RSA"
	AlgorithmEC      string = "EC"
	AlgorithmEd25519 string = "Ed25519"
	AlgorithmX25519  string = "X25519"
)

const (
	KeySize2048 int = 2048
	KeySize3072 int = 3072
)

// DefaultAlgorithm and DefaultKeySize are used
// by the short forms of generation and reconstruction.
const (
	DefaultAlgorithm = AlgorithmRSA
	DefaultKeySize   = KeySize3072
)

// MethodPattern - accepted textual save method names.
const MethodPattern = "^(?i)(hex|base64)$"

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrGenerationFailure    = errors.New("key generation failed")
	ErrMalformedKeyEncoding = errors.New("malformed key encoding")
	ErrIOFailure            = errors.New("key file io failed")
	ErrUnknownSaveMethod    = errors.New("unknown key save method")
)

var algorithms = []string{
	AlgorithmRSA,
	AlgorithmEC,
	AlgorithmEd25519,
	AlgorithmX25519,
}

// CanonicalAlgorithm - returns the canonical spelling
// of a case-insensitive algorithm name.
func CanonicalAlgorithm(name string) (string, error) {
	for _, algo := range algorithms {
		if strings.EqualFold(algo, name) {
			return algo, nil
		}
	}

	return "", ErrUnsupportedAlgorithm
}

// KeyMaterial - encoded bytes of a generated key pair.
// PublicKey is PKIX SubjectPublicKeyInfo, PrivateKey is PKCS8.
type KeyMaterial struct {
	PublicKey  []byte
	PrivateKey []byte
}

// KeySaveMethod - text encoding of raw key bytes.
type KeySaveMethod int

const (
	HEX KeySaveMethod = iota
	BASE64
)

// DefaultSaveMethod is used when no method is given.
const DefaultSaveMethod = BASE64

func (m KeySaveMethod) String() string {
	switch m {
	case HEX:
		return "hex"
	case BASE64:
		return "base64"
	default:
		return "unknown"
	}
}

// Valid - reports whether m is HEX or BASE64.
func (m KeySaveMethod) Valid() bool {
	return m == HEX || m == BASE64
}

// ParseKeySaveMethod - returns the method
// for its case-insensitive name.
func ParseKeySaveMethod(name string) (KeySaveMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex":
		return HEX, nil
	case "base64":
		return BASE64, nil
	default:
		return 0, ErrUnknownSaveMethod
	}
}

// CfgKeygen - structure of the json config file.
type CfgKeygen struct {
	PublicKeyPath  string `json:"public_key_path"`
	PrivateKeyPath string `json:"private_key_path"`
	Algorithm      string `json:"algorithm"`
	Method         string `json:"method"`
	LogLevel       string `json:"log_level"`
	KeySize        int    `json:"key_size"`
	Verify         bool   `json:"verify"`
}

// InitParamsKeygen - resolved parameters of the keygen binary.
type InitParamsKeygen struct {
	ConfigPath     string
	EnvPath        string
	PublicKeyPath  string
	PrivateKeyPath string
	Algorithm      string
	MethodName     string
	LogLevel       string
	KeySize        int
	Method         KeySaveMethod
	Verify         bool
}

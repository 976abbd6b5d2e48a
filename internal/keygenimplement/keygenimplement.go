// Package for implementing keygen methods.
package keygenimplement

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrovia/keypair-tool/internal/functions/config"
	"github.com/dmitrovia/keypair-tool/internal/functions/validate"
	"github.com/dmitrovia/keypair-tool/internal/keypairtool"
	"github.com/dmitrovia/keypair-tool/internal/logger"
	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const defPublicKeyPath string = "public.key"

const defPrivateKeyPath string = "private.key"

const defEnvPath string = ".env"

const defLogLevel string = "info"

var errParseFlags = errors.New("method is not valid")

var errGetENV = errors.New(
	"KEYGEN_KEY_SIZE failed converting to int")

var errGetENV1 = errors.New(
	"KEYGEN_VERIFY failed converting to bool")

// Initialization - resolves parameters from flags,
// the json config, the .env file and the environment,
// in that order of increasing priority, and builds the logger.
func Initialization(
	params *keymodels.InitParamsKeygen,
	args []string,
) (*zap.Logger, error) {
	set, err := parseFlags(params, args)
	if err != nil {
		return nil, err
	}

	err = loadEnvFile(params.EnvPath)
	if err != nil {
		return nil, err
	}

	if cfgPath := os.Getenv("KEYGEN_CONFIG"); cfgPath != "" {
		params.ConfigPath = cfgPath
	}

	err = getParamsFromCFG(params, set)
	if err != nil {
		return nil, err
	}

	err = getENV(params)
	if err != nil {
		return nil, err
	}

	setDefaults(params)

	err = setMethod(params)
	if err != nil {
		return nil, err
	}

	zlog, err := logger.Initialize(params.LogLevel)
	if err != nil {
		return nil, fmt.Errorf(
			"Initialization->logger.Initialize %w",
			err)
	}

	return zlog, nil
}

// Run - generates the key files and, when requested,
// reads them back and verifies the pair.
func Run(
	params *keymodels.InitParamsKeygen,
	fs afero.Fs,
	zlog *zap.Logger,
) error {
	tool := keypairtool.NewTool(fs, zlog)

	err := tool.GenerateKeyFiles(
		params.PublicKeyPath,
		params.PrivateKeyPath,
		params.Algorithm,
		params.KeySize,
		params.Method)
	if err != nil {
		return fmt.Errorf("Run->GenerateKeyFiles: %w", err)
	}

	if !params.Verify {
		return nil
	}

	pub, priv, err := tool.LoadKeyFiles(
		params.PublicKeyPath,
		params.PrivateKeyPath,
		params.Algorithm,
		params.Method)
	if err != nil {
		return fmt.Errorf("Run->LoadKeyFiles: %w", err)
	}

	err = tool.Verify(pub, priv)
	if err != nil {
		return fmt.Errorf("Run->Verify: %w", err)
	}

	zlog.Info("key pair verified",
		zap.String("algorithm", params.Algorithm))

	return nil
}

// parseFlags - parses passed flags into params
// and returns the names of flags given explicitly.
func parseFlags(
	params *keymodels.InitParamsKeygen,
	args []string,
) (map[string]bool, error) {
	fset := flag.NewFlagSet("keygen", flag.ContinueOnError)

	fset.StringVar(&params.PublicKeyPath,
		"pub", "", "public key output file.")
	fset.StringVar(&params.PrivateKeyPath,
		"priv", "", "private key output file.")
	fset.StringVar(&params.Algorithm,
		"alg", "", "key algorithm: RSA, EC, Ed25519, X25519.")
	fset.IntVar(&params.KeySize,
		"size", 0, "key size in bits.")
	fset.StringVar(&params.MethodName,
		"method", "", "text encoding of key files: hex or base64.")
	fset.StringVar(&params.ConfigPath,
		"config", "", "json config path.")
	fset.StringVar(&params.EnvPath,
		"env", defEnvPath, "dotenv file, ignored when missing.")
	fset.StringVar(&params.LogLevel,
		"log", "", "log level.")
	fset.BoolVar(&params.Verify,
		"verify", false, "read the files back and verify the pair.")

	err := fset.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("parseFlags->Parse: %w", err)
	}

	set := make(map[string]bool)

	fset.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	return set, nil
}

// loadEnvFile - loads pth into the environment
// without overriding variables already set.
func loadEnvFile(pth string) error {
	if pth == "" {
		return nil
	}

	_, err := os.Stat(pth)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	err = godotenv.Load(pth)
	if err != nil {
		return fmt.Errorf("loadEnvFile->Load: %w", err)
	}

	return nil
}

// getParamsFromCFG - fills params not given on the
// command line from the json config.
func getParamsFromCFG(
	par *keymodels.InitParamsKeygen,
	set map[string]bool,
) error {
	if par.ConfigPath == "" {
		return nil
	}

	cfg, err := config.LoadConfigKeygen(par.ConfigPath)
	if err != nil {
		return fmt.Errorf(
			"getParamsFromCFG->LoadConfigKeygen: %w",
			err)
	}

	if par.PublicKeyPath == "" {
		par.PublicKeyPath = cfg.PublicKeyPath
	}

	if par.PrivateKeyPath == "" {
		par.PrivateKeyPath = cfg.PrivateKeyPath
	}

	if par.Algorithm == "" {
		par.Algorithm = cfg.Algorithm
	}

	if par.KeySize == 0 {
		par.KeySize = cfg.KeySize
	}

	if par.MethodName == "" {
		par.MethodName = cfg.Method
	}

	if par.LogLevel == "" {
		par.LogLevel = cfg.LogLevel
	}

	if !set["verify"] {
		par.Verify = cfg.Verify
	}

	return nil
}

// getENV - gets environment variables.
//
//nolint:cyclop
func getENV(params *keymodels.InitParamsKeygen) error {
	pubPath := os.Getenv("KEYGEN_PUBLIC_PATH")
	privPath := os.Getenv("KEYGEN_PRIVATE_PATH")
	algorithm := os.Getenv("KEYGEN_ALGORITHM")
	keySize := os.Getenv("KEYGEN_KEY_SIZE")
	method := os.Getenv("KEYGEN_METHOD")
	logLevel := os.Getenv("KEYGEN_LOG_LEVEL")
	verify := os.Getenv("KEYGEN_VERIFY")

	if pubPath != "" {
		params.PublicKeyPath = pubPath
	}

	if privPath != "" {
		params.PrivateKeyPath = privPath
	}

	if algorithm != "" {
		params.Algorithm = algorithm
	}

	if keySize != "" {
		value, err := strconv.Atoi(keySize)
		if err != nil {
			return errGetENV
		}

		params.KeySize = value
	}

	if method != "" {
		params.MethodName = method
	}

	if logLevel != "" {
		params.LogLevel = logLevel
	}

	if verify != "" {
		value, err := strconv.ParseBool(verify)
		if err != nil {
			return errGetENV1
		}

		params.Verify = value
	}

	return nil
}

func setDefaults(params *keymodels.InitParamsKeygen) {
	if params.PublicKeyPath == "" {
		params.PublicKeyPath = defPublicKeyPath
	}

	if params.PrivateKeyPath == "" {
		params.PrivateKeyPath = defPrivateKeyPath
	}

	if params.Algorithm == "" {
		params.Algorithm = keymodels.DefaultAlgorithm
	}

	if params.KeySize == 0 {
		params.KeySize = keymodels.DefaultKeySize
	}

	if params.MethodName == "" {
		params.MethodName = keymodels.DefaultSaveMethod.String()
	}

	if params.LogLevel == "" {
		params.LogLevel = defLogLevel
	}
}

func setMethod(params *keymodels.InitParamsKeygen) error {
	res, err := validate.IsMatchesTemplate(params.MethodName,
		keymodels.MethodPattern)
	if err != nil {
		return fmt.Errorf("setMethod: %w", err)
	}

	if !res {
		return errParseFlags
	}

	params.Method, err = keymodels.ParseKeySaveMethod(params.MethodName)
	if err != nil {
		return fmt.Errorf("setMethod->ParseKeySaveMethod: %w", err)
	}

	return nil
}

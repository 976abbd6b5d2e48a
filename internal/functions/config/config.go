// Package config loads the keygen json config file.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
)

const fmd os.FileMode = 0o666

// LoadConfigKeygen - reads the json config at pth.
func LoadConfigKeygen(
	pth string,
) (*keymodels.CfgKeygen, error) {
	file, err := os.OpenFile(pth, os.O_RDONLY, fmd)
	if err != nil {
		return nil, fmt.Errorf("LoadConfigKeygen->OF: %w", err)
	}

	defer file.Close()

	byteValue, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("LoadConfigKeygen->ReadAll: %w", err)
	}

	params := &keymodels.CfgKeygen{}

	err = json.Unmarshal(byteValue, params)
	if err != nil {
		return nil, fmt.Errorf("LoadConfigKeygen->Unma: %w", err)
	}

	return params, nil
}

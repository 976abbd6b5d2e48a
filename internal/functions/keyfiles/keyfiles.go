// Package keyfiles writes and reads
// encoded key text on a file system.
package keyfiles

import (
	"fmt"
	"os"

	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
	"github.com/spf13/afero"
)

const fmd os.FileMode = 0o600

// Writer persists key text, each write
// replacing any existing file content.
type Writer struct {
	fs afero.Fs
}

// NewWriter - writer over fs, the operating
// system file system when fs is nil.
func NewWriter(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Writer{fs: fs}
}

// WriteKey - writes text to pth. A missing parent
// directory is an error, it is not created.
func (w *Writer) WriteKey(pth string, text string) error {
	err := afero.WriteFile(w.fs, pth, []byte(text), fmd)
	if err != nil {
		return fmt.Errorf("WriteKey->WriteFile %s: %w: %w",
			pth, keymodels.ErrIOFailure, err)
	}

	return nil
}

// ReadKey - reads the whole text of pth.
func (w *Writer) ReadKey(pth string) (string, error) {
	data, err := afero.ReadFile(w.fs, pth)
	if err != nil {
		return "", fmt.Errorf("ReadKey->ReadFile %s: %w: %w",
			pth, keymodels.ErrIOFailure, err)
	}

	return string(data), nil
}

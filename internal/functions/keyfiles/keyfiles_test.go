package keyfiles_test

import (
	"path/filepath"
	"testing"

	"github.com/dmitrovia/keypair-tool/internal/functions/keyfiles"
	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadKey(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writer := keyfiles.NewWriter(fs)

	require.NoError(t, writer.WriteKey("/keys/public.txt", "first"))
	require.NoError(t, writer.WriteKey("/keys/public.txt", "second"))

	text, err := writer.ReadKey("/keys/public.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", text)

	_, err = writer.ReadKey("/keys/missing.txt")
	assert.ErrorIs(t, err, keymodels.ErrIOFailure)
}

func TestWriteKeyOsFs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := keyfiles.NewWriter(nil)

	pth := filepath.Join(dir, "private.txt")
	require.NoError(t, writer.WriteKey(pth, "MIIE"))

	text, err := writer.ReadKey(pth)
	require.NoError(t, err)
	assert.Equal(t, "MIIE", text)

	err = writer.WriteKey(filepath.Join(dir, "no", "such", "dir.txt"), "x")
	assert.ErrorIs(t, err, keymodels.ErrIOFailure)
}

func TestWriteKeyReadOnly(t *testing.T) {
	t.Parallel()

	writer := keyfiles.NewWriter(
		afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := writer.WriteKey("/public.txt", "x")
	assert.ErrorIs(t, err, keymodels.ErrIOFailure)
}

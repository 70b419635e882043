package filestorage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relocation/internal/adapters/out/filestorage"
	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.FileStorage = (*filestorage.LocalStorage)(nil)

func TestLocalStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	storage, err := filestorage.NewLocalStorage(root)
	require.NoError(t, err)

	n, err := storage.Save(ctx, "documents/acc/contract.pdf", strings.NewReader("signed"))
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
	assert.FileExists(t, filepath.Join(root, "documents", "acc", "contract.pdf"))

	rc, err := storage.Open(ctx, "documents/acc/contract.pdf")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "signed", string(body))

	require.NoError(t, storage.Delete(ctx, "documents/acc/contract.pdf"))
	_, err = storage.Open(ctx, "documents/acc/contract.pdf")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.NoError(t, storage.Delete(ctx, "documents/acc/contract.pdf"), "deleting twice is fine")
}

func TestLocalStorage_SaveLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	storage, err := filestorage.NewLocalStorage(root)
	require.NoError(t, err)

	_, err = storage.Save(context.Background(), "a/b.txt", strings.NewReader("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "a"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b.txt", entries[0].Name())
}

func TestLocalStorage_RejectsKeysOutsideRoot(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".", "..", "../escape.txt", "a/../../escape.txt"} {
		_, err = storage.Save(context.Background(), key, strings.NewReader("x"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, key)
	}
}

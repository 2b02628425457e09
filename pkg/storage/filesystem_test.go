package storage

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := ls.Save("estudiantes.csv", []byte("a,b\n"))
	require.NoError(t, err)
	require.Equal(t, "estudiantes.csv", name)

	file, err := ls.Open("estudiantes.csv")
	require.NoError(t, err)
	defer file.Close()

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	require.Equal(t, "a,b\n", string(content))
}

func TestLocalStorageOpenMissing(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = ls.Open("nope.csv")
	require.Error(t, err)
}

func TestLocalStorageDelete(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = ls.Save("tmp.csv", []byte("x"))
	require.NoError(t, err)
	require.NoError(t, ls.Delete("tmp.csv"))
	require.NoError(t, ls.Delete("tmp.csv"))

	_, err = ls.Open("tmp.csv")
	require.Error(t, err)
}

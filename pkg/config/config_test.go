package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	data := `
LogLevel: debug
Pairs:
  - key: foo
    value: value1
  - key: foobar
    value: value2
`
	path := filepath.Join(t.TempDir(), "pairs.yml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []KeyValue{
		{Key: "foo", Value: "value1"},
		{Key: "foobar", Value: "value2"},
	}, cfg.Pairs)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("Pairs: {"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)

	path = filepath.Join(t.TempDir(), "empty-key.yml")
	require.NoError(t, os.WriteFile(path, []byte("Pairs:\n  - value: v\n"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
}

package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestdataFS holds the embedded fixture notes.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded fixture.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Fixture returns an embedded fixture as a string, failing tb when it is
// missing.
func Fixture(tb testing.TB, name string) string {
	tb.Helper()
	data, err := ReadTestData(name)
	require.NoError(tb, err)
	return string(data)
}

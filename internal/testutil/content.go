package testutil

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
)

// ContentDir returns the absolute path of a directory under the repository's
// content/ tree, e.g. ContentDir(t, "classes").
func ContentDir(t testing.TB, sub string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "locating testutil source")
	return filepath.Join(filepath.Dir(file), "..", "..", "content", sub)
}

// Registry loads the shipped class and race content.
//
// Postcondition: Returns a valid Registry or fails the test.
func Registry(t testing.TB) *ruleset.Registry {
	t.Helper()
	reg, err := ruleset.LoadRegistry(ContentDir(t, "classes"), ContentDir(t, "races"))
	require.NoError(t, err)
	return reg
}

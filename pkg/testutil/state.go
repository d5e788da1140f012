package testutil

import (
	"testing"

	"github.com/adrg/xdg"
)

// IsolateState points XDG_STATE_HOME to a temporary directory for the
// duration of the test and returns it
func IsolateState(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	return dir
}

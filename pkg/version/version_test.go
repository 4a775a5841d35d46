package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Cleanup(func() {
		version, commit, buildDate = "dev", "unknown", "unknown"
	})

	assert.Equal(t, Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"}, Get())

	Set("1.4.0", "", "2026-02-01")
	assert.Equal(t, Info{Version: "1.4.0", Commit: "unknown", BuildDate: "2026-02-01"}, Get())
	assert.Equal(t, "1.4.0", Version())
}

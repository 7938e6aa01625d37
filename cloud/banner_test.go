// =======================
// cloud/banner_test.go
// =======================

package cloud

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFiles_HaveBanner(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		want := "// =======================\n// cloud/" + f + "\n// =======================\n"
		assert.True(t, strings.HasPrefix(string(data), want), "%s is missing its banner", f)
	}
}

package float

import (
	goformat "go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocFormat(t *testing.T) {
	paths, err := filepath.Glob("*/doc.go")
	require.NoError(t, err)

	paths = append(paths, "doc.go")

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)

			out, err := goformat.Source(src)
			require.NoError(t, err)
			require.Equal(t, string(src), string(out))
		})
	}
}

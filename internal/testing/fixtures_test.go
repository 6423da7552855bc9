package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaDir(t *testing.T) {
	dir := SchemaDir(t, map[string]string{
		"a.xsd":        "<a/>",
		"nested/b.xsd": "<b/>",
	})
	data, err := os.ReadFile(filepath.Join(dir, "nested", "b.xsd"))
	require.NoError(t, err)
	assert.Equal(t, "<b/>", string(data))
	assert.FileExists(t, filepath.Join(dir, "a.xsd"))
}

func TestCaptureLogger(t *testing.T) {
	logger, buf := CaptureLogger()
	logger.Debug("scanned", "files", 3)
	assert.Contains(t, buf.String(), "msg=scanned files=3")
}

package configpaths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	cases := []struct {
		user string
		pick func(j, y, t []string) []string
	}{
		{"my.json", func(j, _, _ []string) []string { return j }},
		{"my.yaml", func(_, y, _ []string) []string { return y }},
		{"my.yml", func(_, y, _ []string) []string { return y }},
		{"my.toml", func(_, _, t []string) []string { return t }},
		{"my.conf", func(j, _, _ []string) []string { return j }},
	}
	for _, c := range cases {
		t.Run(c.user, func(t *testing.T) {
			j, y, tm := ConfigCandidatePaths(c.user)
			list := c.pick(j, y, tm)
			require.NotEmpty(t, list)
			assert.Equal(t, c.user, list[0])
		})
	}
}

func TestConfigCandidatePathsWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	j, y, tm := ConfigCandidatePaths("")
	assert.Contains(t, j, filepath.Join(wd, "xsdgen.json"))
	assert.Contains(t, y, filepath.Join(wd, "config.yml"))
	assert.Contains(t, tm, filepath.Join(wd, "xsdgen.toml"))
	if runtime.GOOS != "windows" {
		assert.Contains(t, y, "/etc/xsdgen/xsdgen.yaml")
	}
}

func TestDefaultConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG is not used on windows")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/xsdgen", dir)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "yaml", Extension("yml"))
	assert.Equal(t, "yaml", Extension("yaml"))
	assert.Equal(t, "toml", Extension("toml"))
	assert.Equal(t, "json", Extension("json"))
	assert.Equal(t, "json", Extension(""))
}

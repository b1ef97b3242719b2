package scan

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSidecarAbsent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "/addons/Foo", map[string]string{
		"Foo.lua": "local x = 1",
	})

	result, err := ScanSidecar(fsys, "/addons/Foo")
	require.NoError(t, err, "a missing sidecar is not an error")
	assert.Nil(t, result)
}

func TestScanSidecarParsesMetadata(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "/addons/Foo", map[string]string{
		SidecarFileName: `{
			"name": "pfQuest",
			"version": "6.7.1",
			"provider": "github",
			"external_id": "shagu/pfQuest",
			"channel": "stable",
			"git_url": "https://github.com/shagu/pfQuest",
			"installed_at": "2026-01-10T12:00:00Z"
		}`,
	})

	result, err := ScanSidecar(fsys, "/addons/Foo")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "/addons/Foo", result.Path)
	assert.Equal(t, "pfQuest", result.Meta.Name)
	assert.Equal(t, "6.7.1", result.Meta.Version)
	assert.Equal(t, "github", result.Meta.Provider)
	assert.Equal(t, "shagu/pfQuest", result.Meta.ExternalID)
	assert.Equal(t, "stable", result.Meta.Channel)
	assert.Equal(t, "https://github.com/shagu/pfQuest", result.Meta.GitURL)
	assert.Equal(t, time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC), result.Meta.InstalledAt)
}

func TestScanSidecarMalformed(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "/addons/Foo", map[string]string{
		SidecarFileName: `{"name": "pfQuest",`,
	})

	result, err := ScanSidecar(fsys, "/addons/Foo")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Nil(t, result)
}

func TestScanSidecarMissingName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "/addons/Foo", map[string]string{
		SidecarFileName: `{"version": "1.0"}`,
	})

	_, err := ScanSidecar(fsys, "/addons/Foo")
	assert.ErrorIs(t, err, ErrParse)
}

func TestScanSidecarMissingFolder(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := ScanSidecar(fsys, "/addons/Nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

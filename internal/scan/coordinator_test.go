package scan

import (
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAllCatalogOneOutcomePerFolder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "/addons/Alpha", map[string]string{"Alpha.lua": "local a = 1"})
	writeFiles(t, fsys, "/addons/Beta", map[string]string{"Beta.lua": "local b = 2"})
	writeFiles(t, fsys, "/addons/Gamma", map[string]string{"Gamma.lua": "local c = 3"})

	paths := []string{"/addons/Alpha", "/addons/Missing", "/addons/Beta", "/addons/Gamma"}
	outcomes := ScanAllCatalog(fsys, paths, 2, nil, nil)

	require.Len(t, outcomes, len(paths))
	for i, outcome := range outcomes {
		assert.Equal(t, paths[i], outcome.Path, "outcomes must keep input order")
	}

	assert.NoError(t, outcomes[0].Err)
	assert.ErrorIs(t, outcomes[1].Err, ErrNotFound)
	assert.NoError(t, outcomes[2].Err)
	assert.NoError(t, outcomes[3].Err)
}

func TestScanAllCatalogFailureIsolation(t *testing.T) {
	base := afero.NewMemMapFs()
	writeFiles(t, base, "/addons/Good", map[string]string{"Good.lua": "local g = 1"})
	writeFiles(t, base, "/addons/Broken", map[string]string{"bad.lua": "unreachable"})
	writeFiles(t, base, "/addons/AlsoGood", map[string]string{"Also.lua": "local a = 2"})
	fsys := &failingFs{Fs: base, failSuffix: "bad.lua"}

	reference, err := ScanFolder(base, "/addons/Good")
	require.NoError(t, err)

	outcomes := ScanAllCatalog(fsys, []string{"/addons/Good", "/addons/Broken", "/addons/AlsoGood"}, 2, nil, nil)

	require.Len(t, outcomes, 3)
	require.Error(t, outcomes[1].Err)

	// The broken sibling must not disturb the other results.
	require.NoError(t, outcomes[0].Err)
	require.NoError(t, outcomes[2].Err)
	assert.Equal(t, reference.Fingerprint, outcomes[0].Scan.Fingerprint)
}

func TestScanAllCatalogProgressCallback(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "/addons/Alpha", map[string]string{"Alpha.lua": "local a = 1"})
	writeFiles(t, fsys, "/addons/Beta", map[string]string{"Beta.lua": "local b = 2"})

	var mu sync.Mutex
	seen := map[int]string{}

	paths := []string{"/addons/Alpha", "/addons/Missing", "/addons/Beta"}
	ScanAllCatalog(fsys, paths, 2, nil, func(i int, path string, err error) {
		mu.Lock()
		defer mu.Unlock()
		seen[i] = path
	})

	require.Len(t, seen, len(paths))
	for i, path := range paths {
		assert.Equal(t, path, seen[i])
	}
}

func TestScanAllCatalogStartPrecedesDone(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "/addons/Alpha", map[string]string{"Alpha.lua": "local a = 1"})
	writeFiles(t, fsys, "/addons/Beta", map[string]string{"Beta.lua": "local b = 2"})

	var mu sync.Mutex
	started := map[int]string{}
	orderOK := true

	paths := []string{"/addons/Alpha", "/addons/Missing", "/addons/Beta"}
	ScanAllCatalog(fsys, paths, 2,
		func(i int, path string) {
			mu.Lock()
			defer mu.Unlock()
			started[i] = path
		},
		func(i int, path string, err error) {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := started[i]; !ok {
				orderOK = false
			}
		})

	require.Len(t, started, len(paths))
	for i, path := range paths {
		assert.Equal(t, path, started[i])
	}
	assert.True(t, orderOK, "every folder must report start before done")
}

func TestScanAllCatalogDefaultConcurrency(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "/addons/Alpha", map[string]string{"Alpha.lua": "local a = 1"})

	// A non-positive limit falls back to the default rather than failing.
	outcomes := ScanAllCatalog(fsys, []string{"/addons/Alpha"}, 0, nil, nil)

	require.Len(t, outcomes, 1)
	assert.NoError(t, outcomes[0].Err)
}

func TestScanAllSidecarMixedOutcomes(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, "/addons/Tagged", map[string]string{
		SidecarFileName: `{"name": "Tagged", "provider": "github"}`,
	})
	writeFiles(t, fsys, "/addons/Plain", map[string]string{
		"Plain.lua": "local p = 1",
	})
	writeFiles(t, fsys, "/addons/Corrupt", map[string]string{
		SidecarFileName: `not json`,
	})

	paths := []string{"/addons/Tagged", "/addons/Plain", "/addons/Corrupt"}
	outcomes := ScanAllSidecar(fsys, paths, 2, nil, nil)

	require.Len(t, outcomes, 3)

	require.NoError(t, outcomes[0].Err)
	require.NotNil(t, outcomes[0].Scan)
	assert.Equal(t, "Tagged", outcomes[0].Scan.Meta.Name)

	// No sidecar: empty slot, not an error.
	assert.NoError(t, outcomes[1].Err)
	assert.Nil(t, outcomes[1].Scan)

	assert.ErrorIs(t, outcomes[2].Err, ErrParse)
}

package scan

import (
	"github.com/gammazero/workerpool"
	"github.com/spf13/afero"
)

// DefaultConcurrency bounds how many folders are walked at once. Folder
// scans are I/O heavy recursive walks; a small fixed ceiling keeps a large
// AddOns directory from hammering the filesystem.
const DefaultConcurrency = 2

// CatalogOutcome is one folder's slot in a batch fingerprint scan.
type CatalogOutcome struct {
	Path string      `json:"path"`
	Scan *FolderScan `json:"scan,omitempty"`
	Err  error       `json:"-"`
}

// SidecarOutcome is one folder's slot in a batch sidecar scan. Scan and
// Err both nil means the folder simply has no sidecar.
type SidecarOutcome struct {
	Path string       `json:"path"`
	Scan *SidecarScan `json:"scan,omitempty"`
	Err  error        `json:"-"`
}

// StartFunc is invoked as a worker picks a folder up, before its scan
// begins. Calls arrive from worker goroutines and may interleave.
type StartFunc func(index int, path string)

// ProgressFunc is invoked once per folder as its scan completes. Calls
// arrive from worker goroutines and may interleave.
type ProgressFunc func(index int, path string, err error)

// ScanAllCatalog fingerprints every requested folder under a bounded
// worker pool. Exactly one outcome is returned per input path, in input
// order; a failing folder occupies its own slot and never disturbs its
// siblings.
func ScanAllCatalog(fsys afero.Fs, paths []string, concurrency int, onStart StartFunc, onDone ProgressFunc) []CatalogOutcome {
	outcomes := make([]CatalogOutcome, len(paths))
	runBounded(len(paths), concurrency, func(i int) {
		if onStart != nil {
			onStart(i, paths[i])
		}
		s, err := ScanFolder(fsys, paths[i])
		outcomes[i] = CatalogOutcome{Path: paths[i], Scan: s, Err: err}
		if onDone != nil {
			onDone(i, paths[i], err)
		}
	})
	return outcomes
}

// ScanAllSidecar reads every requested folder's sidecar under the same
// bounded pool and slot-per-input contract as ScanAllCatalog.
func ScanAllSidecar(fsys afero.Fs, paths []string, concurrency int, onStart StartFunc, onDone ProgressFunc) []SidecarOutcome {
	outcomes := make([]SidecarOutcome, len(paths))
	runBounded(len(paths), concurrency, func(i int) {
		if onStart != nil {
			onStart(i, paths[i])
		}
		s, err := ScanSidecar(fsys, paths[i])
		outcomes[i] = SidecarOutcome{Path: paths[i], Scan: s, Err: err}
		if onDone != nil {
			onDone(i, paths[i], err)
		}
	})
	return outcomes
}

// runBounded executes task(0..n-1) on a worker pool of the given size.
// Tasks are independent; each writes only to its own result slot, so no
// locking is needed beyond the pool's own queue.
func runBounded(n, concurrency int, task func(i int)) {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	wp := workerpool.New(concurrency)
	for i := 0; i < n; i++ {
		wp.Submit(func() { task(i) })
	}
	wp.StopWait()
}

package scan

import (
	"github.com/go-git/go-git/v5"
)

// Provenance records where a scanned folder came from when it is a git
// checkout. It supplements scan results and never affects fingerprints.
type Provenance struct {
	GitURL string `json:"git_url,omitempty"` // origin remote, when configured
	Commit string `json:"commit,omitempty"`  // short HEAD hash
}

// DetectProvenance inspects a folder on the real filesystem and returns
// its git provenance, or nil when the folder is not a git repository.
func DetectProvenance(path string) *Provenance {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil
	}

	p := &Provenance{}

	if remote, err := repo.Remote("origin"); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			p.GitURL = urls[0]
		}
	}

	if head, err := repo.Head(); err == nil {
		p.Commit = head.Hash().String()[:8]
	}

	return p
}

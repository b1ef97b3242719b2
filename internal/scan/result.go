package scan

import "time"

// FileFingerprint is the identity hash of one content file within a folder.
type FileFingerprint struct {
	Path string `json:"path"` // relative to the folder root, slash-separated
	Hash uint32 `json:"hash"`
}

// Fingerprint variant names. The primary variant covers every content
// file; alternates reproduce the catalog's historical inclusion quirks.
const (
	VariantAll            = "all"
	VariantNoLocalization = "no-localization"
)

// FolderFingerprint is one aggregate fingerprint of a folder under a named
// inclusion variant.
type FolderFingerprint struct {
	Variant string `json:"variant"`
	Hash    uint32 `json:"hash"`
}

// FolderScan is the result of fingerprinting one addon folder.
type FolderScan struct {
	Path        string              `json:"path"`
	Fingerprint uint32              `json:"fingerprint"` // primary (VariantAll)
	Alternates  []FolderFingerprint `json:"alternates,omitempty"`
	Files       []FileFingerprint   `json:"files"`
	Toc         *TocDescriptor      `json:"toc,omitempty"` // nil when the folder has no descriptor
}

// SidecarMetadata is the closed schema of the tool-authored sidecar file.
// Unknown fields are ignored; a sidecar without a name is malformed.
type SidecarMetadata struct {
	Name        string    `json:"name"`
	Version     string    `json:"version,omitempty"`
	Provider    string    `json:"provider,omitempty"`
	ExternalID  string    `json:"external_id,omitempty"`
	Channel     string    `json:"channel,omitempty"`
	GitURL      string    `json:"git_url,omitempty"`
	InstalledAt time.Time `json:"installed_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// SidecarScan is the result of reading one folder's sidecar file.
type SidecarScan struct {
	Path string          `json:"path"`
	Meta SidecarMetadata `json:"meta"`
}

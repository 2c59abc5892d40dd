package model

// TypeRelease is the document type discriminator for releases.
const TypeRelease = "release"

// Release is the slice of the release document the compliance core needs for
// cross-reference checks: a license referenced by any release must not be
// deleted.
type Release struct {
	ID       string `json:"_id,omitempty"`
	Revision string `json:"_rev,omitempty"`
	Type     string `json:"type"`

	Name           string   `json:"name"`
	Version        string   `json:"version,omitempty"`
	MainLicenseIDs []string `json:"mainLicenseIds,omitempty"`
}

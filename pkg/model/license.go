package model

//go:generate go run github.com/dmarkham/enumer -type Ternary -trimprefix Ternary -transform snake-upper -json -text -output ternary.gen.go
//go:generate go run github.com/dmarkham/enumer -type ObligationElementStatus -trimprefix ObligationElementStatus -transform snake-upper -json -text -output obligationelementstatus.gen.go

// Ternary is a three-valued flag; the zero value is UNDEFINED.
type Ternary int

const (
	TernaryUndefined Ternary = iota
	TernaryNo
	TernaryYes
)

// ObligationElementStatus tells whether an obligation element was recognized
// when parsing a catalogue checklist.
type ObligationElementStatus int

const (
	ObligationElementStatusUndefined ObligationElementStatus = iota
	ObligationElementStatusDefined
)

// Document type discriminators for the license collection.
const (
	TypeLicense           = "license"
	TypeLicenseType       = "licenseType"
	TypeObligation        = "obligation"
	TypeObligationNode    = "obligationNode"
	TypeObligationElement = "obligationElement"
)

// License is a license record. The ID of a license is its shortname, assigned
// at first create and immutable afterwards.
//
// Scalar fields are pointers so a License can double as the sparse
// additions/deletions payload of a moderation request.
type License struct {
	ID       string `json:"_id,omitempty"`
	Revision string `json:"_rev,omitempty"`
	Type     string `json:"type"`

	Shortname             *string  `json:"shortname,omitempty"`
	Fullname              *string  `json:"fullname,omitempty"`
	Text                  *string  `json:"text,omitempty"`
	ExternalLicenseLink   *string  `json:"externalLicenseLink,omitempty"`
	LicenseTypeDatabaseID *string  `json:"licenseTypeDatabaseId,omitempty"`
	GPLv2Compat           *Ternary `json:"GPLv2Compat,omitempty"`
	GPLv3Compat           *Ternary `json:"GPLv3Compat,omitempty"`
	Checked               *bool    `json:"checked,omitempty"`

	ObligationDatabaseIDs []string          `json:"obligationDatabaseIds,omitempty"`
	ExternalIDs           map[string]string `json:"externalIds,omitempty"`

	// Denormalized on read, never persisted with the license itself.
	LicenseType *LicenseType `json:"licenseType,omitempty"`
	Obligations []Obligation `json:"obligations,omitempty"`

	Permissions   map[RequestedAction]bool `json:"permissions,omitempty"`
	DocumentState *DocumentState           `json:"documentState,omitempty"`
}

// NewLicense returns a license document with the type discriminator set.
func NewLicense(shortname string) *License {
	return &License{Type: TypeLicense, Shortname: String(shortname)}
}

// IsChecked reports the checked/approved state, false when unset.
func (l *License) IsChecked() bool {
	return l.Checked != nil && *l.Checked
}

// GetShortname returns the shortname or the empty string when unset.
func (l *License) GetShortname() string {
	if l.Shortname == nil {
		return ""
	}
	return *l.Shortname
}

// GetText returns the license text or the empty string when unset.
func (l *License) GetText() string {
	if l.Text == nil {
		return ""
	}
	return *l.Text
}

// GetFullname returns the full name or the empty string when unset.
func (l *License) GetFullname() string {
	if l.Fullname == nil {
		return ""
	}
	return *l.Fullname
}

// LicenseType categorizes licenses.
type LicenseType struct {
	ID       string `json:"_id,omitempty"`
	Revision string `json:"_rev,omitempty"`
	Type     string `json:"type"`

	LicenseTypeName string `json:"licenseType"`
}

// Obligation is a licensing duty, optionally whitelisted per business unit
// and organized into a node tree.
type Obligation struct {
	ID       string `json:"_id,omitempty"`
	Revision string `json:"_rev,omitempty"`
	Type     string `json:"type"`

	Title        string            `json:"title,omitempty"`
	Text         string            `json:"text"`
	Whitelist    []string          `json:"whitelist,omitempty"`
	Development  bool              `json:"development"`
	Distribution bool              `json:"distribution"`
	ExternalIDs  map[string]string `json:"externalIds,omitempty"`

	// Node holds the serialized root of the obligation node tree built by the
	// catalogue importer.
	Node string `json:"node,omitempty"`
}

// ObligationNode is one node of an obligation tree. Nodes of type
// "Obligation" point at an ObligationElement; other nodes carry free text.
type ObligationNode struct {
	ID       string `json:"_id,omitempty"`
	Revision string `json:"_rev,omitempty"`
	Type     string `json:"type"`

	NodeType     string `json:"nodeType"`
	NodeText     string `json:"nodeText,omitempty"`
	OblElementID string `json:"oblElementId,omitempty"`
}

// ObligationElement is the subject-action-object triple of an obligation
// checklist line.
type ObligationElement struct {
	ID       string `json:"_id,omitempty"`
	Revision string `json:"_rev,omitempty"`
	Type     string `json:"type"`

	LangElement string                  `json:"langElement"`
	Action      string                  `json:"action"`
	Object      string                  `json:"object"`
	Status      ObligationElementStatus `json:"status"`
}

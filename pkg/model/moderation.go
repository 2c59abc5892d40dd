package model

//go:generate go run github.com/dmarkham/enumer -type ModerationState -trimprefix ModerationState -transform snake-upper -json -text -output moderationstate.gen.go

// ModerationState is the lifecycle state of a moderation request.
//
// PENDING is the initial state. ACCEPTED and REJECTED are terminal.
// IN_PROGRESS marks a request a moderator is actively editing; re-saves stay
// IN_PROGRESS or move to a terminal state.
type ModerationState int

const (
	ModerationStatePending ModerationState = iota
	ModerationStateAccepted
	ModerationStateRejected
	ModerationStateInProgress
)

// TypeModerationRequest is the document type discriminator for moderation
// requests.
const TypeModerationRequest = "moderation"

// ModerationRequest is a proposed change to exactly one target document,
// held until a moderator accepts or rejects it. Additions hold only
// changed/added field values, deletions only removed ones; both are sparse.
//
// Exactly one additions/deletions pair is populated, matching DocumentType.
type ModerationRequest struct {
	ID       string `json:"_id,omitempty"`
	Revision string `json:"_rev,omitempty"`
	Type     string `json:"type"`

	DocumentID   string `json:"documentId"`
	DocumentType string `json:"documentType"`
	DocumentName string `json:"documentName,omitempty"`

	RequestingUser           string   `json:"requestingUser"`
	RequestingUserDepartment string   `json:"requestingUserDepartment,omitempty"`
	Moderators               []string `json:"moderators,omitempty"`
	Timestamp                int64    `json:"timestamp"`

	ModerationState ModerationState `json:"moderationState"`
	CommentRequest  string          `json:"commentRequestModeration,omitempty"`
	CommentDecision string          `json:"commentDecisionModeration,omitempty"`

	LicenseAdditions *License `json:"licenseAdditions,omitempty"`
	LicenseDeletions *License `json:"licenseDeletions,omitempty"`

	PackageInfoAdditions *PackageInformation `json:"packageInfoAdditions,omitempty"`
	PackageInfoDeletions *PackageInformation `json:"packageInfoDeletions,omitempty"`
}

// IsOpen reports whether the request still awaits a moderator decision.
func (m *ModerationRequest) IsOpen() bool {
	return m.ModerationState == ModerationStatePending || m.ModerationState == ModerationStateInProgress
}

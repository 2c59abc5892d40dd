package model

//go:generate go run github.com/dmarkham/enumer -type RequestedAction -trimprefix RequestedAction -transform snake-upper -json -text -output requestedaction.gen.go
//go:generate go run github.com/dmarkham/enumer -type RequestStatus -trimprefix RequestStatus -transform snake-upper -json -text -output requeststatus.gen.go

// RequestedAction is a fine-grained capability evaluated per (document, user)
// pair.
type RequestedAction int

const (
	RequestedActionRead RequestedAction = iota
	RequestedActionWrite
	RequestedActionWriteECC
	RequestedActionAttachments
	RequestedActionDelete
	RequestedActionUsers
	RequestedActionClearing
)

// RequestStatus is the outcome of a write operation on the service boundary.
type RequestStatus int

const (
	RequestStatusSuccess RequestStatus = iota
	RequestStatusFailure
	RequestStatusSentToModerator
	RequestStatusInUse
	RequestStatusAccessDenied
	RequestStatusProcessing
)

// RequestSummary reports the outcome of a bulk operation such as a catalogue
// import.
type RequestSummary struct {
	Status                RequestStatus `json:"requestStatus"`
	TotalElements         int           `json:"totalElements"`
	TotalAffectedElements int           `json:"totalAffectedElements"`
	Message               string        `json:"message,omitempty"`
}

// DocumentState describes whether a returned document is the stored original
// or a preview with the caller's pending moderation request applied.
type DocumentState struct {
	IsOriginalDocument bool            `json:"isOriginalDocument"`
	ModerationState    ModerationState `json:"moderationState"`
}

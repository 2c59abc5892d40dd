package audit

import "fmt"

// DocumentUpdateEvent records a direct write to a document.
type DocumentUpdateEvent struct {
	UserEmail    string
	DocumentID   string
	DocumentType string
	Operation    string // "add", "update", "delete"
	Success      bool
	ErrorMessage string
}

func (e DocumentUpdateEvent) MessageID() string {
	return "document"
}

func (e DocumentUpdateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s %sd %s %s", e.UserEmail, e.Operation, e.DocumentType, e.DocumentID)
	}
	msg := fmt.Sprintf("%s tried to %s %s %s", e.UserEmail, e.Operation, e.DocumentType, e.DocumentID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e DocumentUpdateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e DocumentUpdateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e DocumentUpdateEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDActor: {
			"user": e.UserEmail,
		},
		SDIDSubject: {
			"document": e.DocumentID,
			"type":     e.DocumentType,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
}

// ModerationRequestEvent records the creation of a moderation request.
type ModerationRequestEvent struct {
	RequestID      string
	RequestingUser string
	DocumentID     string
	DocumentType   string
	Success        bool
	ErrorMessage   string
}

func (e ModerationRequestEvent) MessageID() string {
	return "moderation-request"
}

func (e ModerationRequestEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s requested moderation of %s %s", e.RequestingUser, e.DocumentType, e.DocumentID)
	}
	msg := fmt.Sprintf("%s failed to request moderation of %s %s", e.RequestingUser, e.DocumentType, e.DocumentID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ModerationRequestEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ModerationRequestEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ModerationRequestEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDActor: {
			"user": e.RequestingUser,
		},
		SDIDSubject: {
			"document": e.DocumentID,
			"type":     e.DocumentType,
		},
		SDIDAction: {
			"operation": "moderation-request",
			"result":    result,
		},
	}
	if e.RequestID != "" {
		sd[SDIDSubject]["request"] = e.RequestID
	}
	return sd
}

// ModerationDecisionEvent records a moderator accepting or rejecting a
// pending request.
type ModerationDecisionEvent struct {
	RequestID    string
	Moderator    string
	DocumentID   string
	Decision     string // "accepted", "rejected"
	Success      bool
	ErrorMessage string
}

func (e ModerationDecisionEvent) MessageID() string {
	return "moderation-decision"
}

func (e ModerationDecisionEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s %s moderation request %s for %s", e.Moderator, e.Decision, e.RequestID, e.DocumentID)
	}
	msg := fmt.Sprintf("%s failed to record decision on moderation request %s", e.Moderator, e.RequestID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ModerationDecisionEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ModerationDecisionEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ModerationDecisionEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDActor: {
			"user": e.Moderator,
		},
		SDIDSubject: {
			"document": e.DocumentID,
			"request":  e.RequestID,
		},
		SDIDAction: {
			"operation": e.Decision,
			"result":    result,
		},
	}
}

// DeleteNotificationEvent records the best-effort notification sent to
// moderators when a document they moderate is deleted directly.
type DeleteNotificationEvent struct {
	DocumentID   string
	Moderators   []string
	Success      bool
	ErrorMessage string
}

func (e DeleteNotificationEvent) MessageID() string {
	return "delete-notification"
}

func (e DeleteNotificationEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("notified %d moderator(s) about deletion of %s", len(e.Moderators), e.DocumentID)
	}
	msg := fmt.Sprintf("failed to notify moderators about deletion of %s", e.DocumentID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e DeleteNotificationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e DeleteNotificationEvent) Facility() int {
	return FacilityAuthPriv
}

func (e DeleteNotificationEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDSubject: {
			"document": e.DocumentID,
		},
		SDIDAction: {
			"operation": "delete-notification",
			"result":    result,
		},
	}
}

// ImportEvent records a catalogue import run.
type ImportEvent struct {
	UserEmail    string
	Catalogue    string // "spdx", "osadl"
	Imported     int
	Skipped      int
	Success      bool
	ErrorMessage string
}

func (e ImportEvent) MessageID() string {
	return "import"
}

func (e ImportEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s imported %d %s record(s), %d skipped", e.UserEmail, e.Imported, e.Catalogue, e.Skipped)
	}
	msg := fmt.Sprintf("%s failed %s import", e.UserEmail, e.Catalogue)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ImportEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ImportEvent) Facility() int {
	return FacilityLocal0
}

func (e ImportEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDActor: {
			"user": e.UserEmail,
		},
		SDIDImport: {
			"catalogue": e.Catalogue,
			"imported":  fmt.Sprintf("%d", e.Imported),
			"skipped":   fmt.Sprintf("%d", e.Skipped),
		},
		SDIDAction: {
			"operation": "import",
			"result":    result,
		},
	}
}

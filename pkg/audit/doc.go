// Package audit provides audit logging for sw360 compliance operations.
//
// This package implements structured audit logging for security-relevant
// operations such as document writes, moderation request creation and
// decisions, delete notifications and catalogue imports.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Document update events (add/update/delete)
//   - Moderation request events
//   - Moderation decision events
//   - Delete notification events
//   - Catalogue import events
//
// # Usage
//
//	audit.Log(audit.DocumentUpdateEvent{
//	    UserEmail:    user.Email,
//	    DocumentID:   license.ID,
//	    DocumentType: license.Type,
//	    Operation:    "update",
//	    Success:      true,
//	})
//
// Audit events are logged in RFC5424 syslog format suitable for security
// monitoring and compliance requirements, and optionally persisted to a
// database when AUDIT_DATABASE_URL is set.
package audit

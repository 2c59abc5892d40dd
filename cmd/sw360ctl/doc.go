// Package main implements sw360ctl, the control CLI of the SW360
// compliance-core service.
//
// The core is organized into several packages:
//
//   - pkg/model: sparse document models (licenses, obligations, packages, users)
//   - pkg/permissions: per-document-type permission policies
//   - pkg/merge: field-level merge and diff over document schemas
//   - pkg/moderation: moderation requests and the write/moderate decision
//   - pkg/datahandler: document handlers on top of the store
//   - pkg/importer: SPDX and OSADL catalogue imports
//   - pkg/store: document collections (gorm-backed and in-memory)
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//   - pkg/db: database connection utilities
//
// # Quick Start
//
//	# Run database migrations
//	sw360ctl db migrate
//
//	# Import the SPDX license catalogue
//	sw360ctl import spdx --user admin@example.org
//
//	# Import OSADL obligation checklists
//	sw360ctl import osadl --user admin@example.org
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - SW360_CONFIG_PATH: Config directory (default: /etc/sw360/config)
//   - SW360_AUDIT_ENABLED: Enable audit logging (true/false)
//   - AUDIT_DATABASE_URL: PostgreSQL sink for audit messages
//   - SW360_SPDX_LICENSE_LIST_URL: SPDX license-list endpoint
//   - SW360_OSADL_CHECKLIST_URL: OSADL checklist endpoint
//   - SW360_LOG_LEVEL: Log level (debug enables SQL logging)
package main

// Package config provides configuration management for the sw360
// compliance core.
//
// Configuration is read from an optional YAML file (sw360.yml) and
// overridden by environment variables. Each attribute remembers whether its
// value came from the defaults, the file or the environment.
//
// # Configuration Sources
//
//   - Environment variables (highest precedence)
//   - sw360.yml under SW360_CONFIG_PATH or /etc/sw360/config
//   - Built-in defaults
//
// # Key Configuration Options
//
//   - DATABASE_URL: document store connection
//   - SW360_AUDIT_ENABLED / AUDIT_DATABASE_URL: audit logging
//   - SW360_SPDX_LICENSE_LIST_URL / SW360_OSADL_CHECKLIST_URL: catalogue
//     import endpoints
//   - SW360_IMPORT_DEPARTMENT: business unit whitelisted on imports
package config

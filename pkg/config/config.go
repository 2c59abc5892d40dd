package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/sw360/config"
	ConfigFileName    = "sw360.yml"
)

// SW360Config holds all sw360 compliance-core configuration settings
type SW360Config struct {
	// DatabaseURL is the postgres connection URL of the document store
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// AuditEnabled enables the audit logger
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// AuditDatabaseURL is the optional postgres sink for audit messages
	AuditDatabaseURL string `yaml:"audit_database_url" json:"audit_database_url"`

	// SpdxLicenseListURL is the SPDX license-list catalogue endpoint
	SpdxLicenseListURL string `yaml:"spdx_license_list_url" json:"spdx_license_list_url"`

	// OsadlChecklistURL is the OSADL obligation checklist endpoint
	OsadlChecklistURL string `yaml:"osadl_checklist_url" json:"osadl_checklist_url"`

	// ImportDepartment is the business unit whitelisted on imported obligations
	ImportDepartment string `yaml:"import_department" json:"import_department"`

	// DepartmentModerators maps a department to the moderator emails
	// responsible for its moderation requests
	DepartmentModerators map[string][]string `yaml:"department_moderators" json:"department_moderators"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *SW360Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *SW360Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *SW360Config {
	return &SW360Config{
		AuditEnabled:         false,
		SpdxLicenseListURL:   "https://spdx.org/licenses/licenses.json",
		OsadlChecklistURL:    "https://www.osadl.org/fileadmin/checklists/unreflicenses",
		ImportDepartment:     "OSADL",
		DepartmentModerators: map[string][]string{},
		sources:              make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*SW360Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("SW360_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig SW360Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"database_url", "audit_enabled", "audit_database_url",
		"spdx_license_list_url", "osadl_checklist_url",
		"import_department", "department_moderators",
	}
}

func (c *SW360Config) applyFileConfig(file *SW360Config) {
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.AuditEnabled {
		c.AuditEnabled = true
		c.sources["audit_enabled"] = "file"
	}
	if file.AuditDatabaseURL != "" {
		c.AuditDatabaseURL = file.AuditDatabaseURL
		c.sources["audit_database_url"] = "file"
	}
	if file.SpdxLicenseListURL != "" {
		c.SpdxLicenseListURL = file.SpdxLicenseListURL
		c.sources["spdx_license_list_url"] = "file"
	}
	if file.OsadlChecklistURL != "" {
		c.OsadlChecklistURL = file.OsadlChecklistURL
		c.sources["osadl_checklist_url"] = "file"
	}
	if file.ImportDepartment != "" {
		c.ImportDepartment = file.ImportDepartment
		c.sources["import_department"] = "file"
	}
	if len(file.DepartmentModerators) > 0 {
		c.DepartmentModerators = file.DepartmentModerators
		c.sources["department_moderators"] = "file"
	}
}

func (c *SW360Config) applyEnvConfig() {
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("SW360_AUDIT_ENABLED"); val != "" {
		c.AuditEnabled = val == "true" || val == "1"
		c.sources["audit_enabled"] = "environment"
	}
	if val := os.Getenv("AUDIT_DATABASE_URL"); val != "" {
		c.AuditDatabaseURL = val
		c.sources["audit_database_url"] = "environment"
	}
	if val := os.Getenv("SW360_SPDX_LICENSE_LIST_URL"); val != "" {
		c.SpdxLicenseListURL = val
		c.sources["spdx_license_list_url"] = "environment"
	}
	if val := os.Getenv("SW360_OSADL_CHECKLIST_URL"); val != "" {
		c.OsadlChecklistURL = val
		c.sources["osadl_checklist_url"] = "environment"
	}
	if val := os.Getenv("SW360_IMPORT_DEPARTMENT"); val != "" {
		c.ImportDepartment = val
		c.sources["import_department"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *SW360Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *SW360Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// ModeratorsOf returns the configured moderator emails for a department.
func (c *SW360Config) ModeratorsOf(department string) []string {
	return c.DepartmentModerators[department]
}

// Validate validates the configuration
func (c *SW360Config) Validate() error {
	for name, value := range map[string]string{
		"spdx_license_list_url": c.SpdxLicenseListURL,
		"osadl_checklist_url":   c.OsadlChecklistURL,
	} {
		if value == "" {
			continue
		}
		if _, err := url.ParseRequestURI(value); err != nil {
			return fmt.Errorf("invalid %s value: %s", name, value)
		}
	}
	if c.AuditDatabaseURL != "" && !strings.HasPrefix(c.AuditDatabaseURL, "postgres") {
		return fmt.Errorf("audit_database_url must be a postgres URL")
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *SW360Config) Attributes() []Attribute {
	var moderated []string
	for department := range c.DepartmentModerators {
		moderated = append(moderated, department)
	}
	return []Attribute{
		{Name: "database_url", Value: redactURL(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
		{Name: "audit_database_url", Value: redactURL(c.AuditDatabaseURL), Source: c.Source("audit_database_url")},
		{Name: "spdx_license_list_url", Value: c.SpdxLicenseListURL, Source: c.Source("spdx_license_list_url")},
		{Name: "osadl_checklist_url", Value: c.OsadlChecklistURL, Source: c.Source("osadl_checklist_url")},
		{Name: "import_department", Value: c.ImportDepartment, Source: c.Source("import_department")},
		{Name: "department_moderators", Value: strings.Join(moderated, ","), Source: c.Source("department_moderators")},
	}
}

// FormatText returns a text representation of the configuration
func (c *SW360Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-50s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-50s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-50s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *SW360Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// redactURL hides credentials embedded in a connection URL.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.User != nil {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

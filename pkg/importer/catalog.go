package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/toshiba/sw360/pkg/model"
)

// ErrNotInCatalogue is returned when a catalogue has no entry for the
// requested license id.
var ErrNotInCatalogue = errors.New("importer: not in catalogue")

// SpdxCatalog is the external SPDX license-list source.
type SpdxCatalog interface {
	// AllLicenseIDs lists every canonical license id in the catalogue.
	AllLicenseIDs() ([]string, error)

	// License fetches one catalogue entry as a license document.
	// ErrNotInCatalogue when the id is unknown.
	License(id string) (*model.License, error)
}

// OsadlCatalog is the external OSADL checklist source.
type OsadlCatalog interface {
	// Checklist fetches the obligation checklist of a license as a markdown
	// nested list. ErrNotInCatalogue when OSADL has no checklist for the id.
	Checklist(licenseID string) (string, error)
}

// spdxLicenseList is the shape of the SPDX licenses.json index.
type spdxLicenseList struct {
	Licenses []struct {
		LicenseID string `json:"licenseId"`
	} `json:"licenses"`
}

// spdxLicenseDetail is the shape of a per-license SPDX JSON document.
type spdxLicenseDetail struct {
	LicenseID   string   `json:"licenseId"`
	Name        string   `json:"name"`
	LicenseText string   `json:"licenseText"`
	SeeAlso     []string `json:"seeAlso"`
}

// HTTPSpdxCatalog fetches the SPDX license list over HTTP. BaseURL points at
// the licenses.json index; per-license documents live next to it.
type HTTPSpdxCatalog struct {
	BaseURL string
	Client  *http.Client
}

func (c *HTTPSpdxCatalog) AllLicenseIDs() ([]string, error) {
	body, err := c.fetch(c.BaseURL)
	if err != nil {
		return nil, err
	}

	var list spdxLicenseList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("importer: parse spdx license list: %w", err)
	}

	ids := make([]string, 0, len(list.Licenses))
	for _, entry := range list.Licenses {
		ids = append(ids, entry.LicenseID)
	}
	return ids, nil
}

func (c *HTTPSpdxCatalog) License(id string) (*model.License, error) {
	body, err := c.fetch(strings.TrimSuffix(c.BaseURL, "licenses.json") + id + ".json")
	if err != nil {
		return nil, err
	}
	return ParseSpdxLicense(body)
}

func (c *HTTPSpdxCatalog) fetch(url string) ([]byte, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("importer: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotInCatalogue
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("importer: fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// ParseSpdxLicense converts a per-license SPDX JSON document into a license
// record keyed by the canonical SPDX id.
func ParseSpdxLicense(body []byte) (*model.License, error) {
	var detail spdxLicenseDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("importer: parse spdx license: %w", err)
	}
	if detail.LicenseID == "" {
		return nil, fmt.Errorf("importer: spdx license without licenseId")
	}

	lic := model.NewLicense(detail.LicenseID)
	lic.ID = detail.LicenseID
	if detail.Name != "" {
		lic.Fullname = model.String(detail.Name)
	}
	if detail.LicenseText != "" {
		lic.Text = model.String(detail.LicenseText)
	}
	if len(detail.SeeAlso) > 0 {
		lic.ExternalLicenseLink = model.String(detail.SeeAlso[0])
	}
	return lic, nil
}

// HTTPOsadlCatalog fetches OSADL checklists over HTTP. BaseURL is the
// directory holding one markdown checklist per license id.
type HTTPOsadlCatalog struct {
	BaseURL string
	Client  *http.Client
}

func (c *HTTPOsadlCatalog) Checklist(licenseID string) (string, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	url := strings.TrimSuffix(c.BaseURL, "/") + "/" + licenseID + ".txt"
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("importer: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotInCatalogue
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("importer: fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

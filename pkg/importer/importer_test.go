package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toshiba/sw360/pkg/audit"
	"github.com/toshiba/sw360/pkg/datahandler"
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/moderation"
	"github.com/toshiba/sw360/pkg/store/memory"
)

func TestMain(m *testing.M) {
	audit.SetEnabled(false)
	os.Exit(m.Run())
}

type importFixture struct {
	licenses    *memory.Collection[model.License]
	obligations *memory.Collection[model.Obligation]
	nodes       *memory.Collection[model.ObligationNode]
	elements    *memory.Collection[model.ObligationElement]
	importer    *Importer
}

func newImportFixture(t *testing.T) *importFixture {
	t.Helper()
	f := &importFixture{
		licenses:    memory.NewLicenses(),
		obligations: memory.NewObligations(),
		nodes:       memory.NewObligationNodes(),
		elements:    memory.NewObligationElements(),
	}
	handler := datahandler.NewLicenseHandler(
		f.licenses, memory.NewLicenseTypes(), f.obligations, f.nodes, f.elements,
		memory.NewReleases(), moderation.NewRequests(memory.NewModerationRequests()), nil,
	)
	f.importer = NewImporter(f.licenses, f.obligations, handler)
	return f
}

func importUser() *model.User {
	u := model.NewUser("importer@example.org", "COMPLIANCE")
	u.UserGroup = model.UserGroupClearingAdmin
	return u
}

// fakeSpdxCatalog serves licenses from a map.
type fakeSpdxCatalog struct {
	entries map[string]*model.License
}

func (c *fakeSpdxCatalog) AllLicenseIDs() ([]string, error) {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *fakeSpdxCatalog) License(id string) (*model.License, error) {
	entry, ok := c.entries[id]
	if !ok {
		return nil, ErrNotInCatalogue
	}
	copied := *entry
	return &copied, nil
}

func spdxEntry(id, text string) *model.License {
	lic := model.NewLicense(id)
	lic.ID = id
	lic.Fullname = model.String(id + " full name")
	lic.Text = model.String(text)
	return lic
}

// fakeOsadlCatalog serves checklists from a map.
type fakeOsadlCatalog struct {
	checklists map[string]string
}

func (c *fakeOsadlCatalog) Checklist(licenseID string) (string, error) {
	checklist, ok := c.checklists[licenseID]
	if !ok {
		return "", ErrNotInCatalogue
	}
	return checklist, nil
}

func TestImportAllSpdxLicenses(t *testing.T) {
	f := newImportFixture(t)
	catalog := &fakeSpdxCatalog{entries: map[string]*model.License{
		"MIT":        spdxEntry("MIT", "mit text"),
		"Apache-2.0": spdxEntry("Apache-2.0", "apache text"),
	}}

	summary := f.importer.ImportAllSpdxLicenses(catalog, importUser())

	assert.Equal(t, model.RequestStatusSuccess, summary.Status)
	assert.Equal(t, 2, summary.TotalElements)
	assert.Equal(t, 2, summary.TotalAffectedElements)

	stored, err := f.licenses.Get("MIT")
	require.NoError(t, err)
	assert.Equal(t, "mit text", stored.GetText())
	assert.Equal(t, "MIT", stored.GetShortname())
}

func TestImportAllSpdxLicensesIsIdempotent(t *testing.T) {
	f := newImportFixture(t)
	catalog := &fakeSpdxCatalog{entries: map[string]*model.License{
		"MIT": spdxEntry("MIT", "mit text"),
	}}

	first := f.importer.ImportAllSpdxLicenses(catalog, importUser())
	second := f.importer.ImportAllSpdxLicenses(catalog, importUser())

	assert.Equal(t, 1, first.TotalAffectedElements)
	assert.Equal(t, 0, second.TotalAffectedElements)

	all, err := f.licenses.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestImportAllSpdxLicensesFlagsMismatchedText(t *testing.T) {
	f := newImportFixture(t)

	local := spdxEntry("MIT", "locally edited text")
	require.NoError(t, f.licenses.Add(local))

	catalog := &fakeSpdxCatalog{entries: map[string]*model.License{
		"MIT": spdxEntry("MIT", "canonical text"),
	}}

	summary := f.importer.ImportAllSpdxLicenses(catalog, importUser())

	assert.Equal(t, model.RequestStatusSuccess, summary.Status)
	assert.Equal(t, 0, summary.TotalAffectedElements)
	assert.Contains(t, summary.Message, "MIT")

	// The stored text was not overwritten.
	stored, err := f.licenses.Get("MIT")
	require.NoError(t, err)
	assert.Equal(t, "locally edited text", stored.GetText())
}

const gplChecklist = `- USE CASE Source-code delivery
  - YOU MUST Provide License-text
  - YOU MUST NOT Modify License-text
- COPYLEFT CLAUSE
`

func TestImportAllOsadlObligations(t *testing.T) {
	f := newImportFixture(t)
	require.NoError(t, f.licenses.Add(spdxEntry("GPL-2.0-only", "gpl text")))

	catalog := &fakeOsadlCatalog{checklists: map[string]string{
		"GPL-2.0-only": gplChecklist,
	}}

	summary := f.importer.ImportAllOsadlObligations(catalog, importUser())

	require.Equal(t, model.RequestStatusSuccess, summary.Status)
	assert.Equal(t, 1, summary.TotalAffectedElements)
	assert.Contains(t, summary.Message, "licensesSuccess")

	obligations, err := f.obligations.GetAll()
	require.NoError(t, err)
	require.Len(t, obligations, 1)
	ob := obligations[0]

	assert.Equal(t, "GPL-2.0-only", ob.ExternalIDs[ExternalIDOsadl])
	assert.Contains(t, ob.Whitelist, "COMPLIANCE")
	assert.Contains(t, ob.Node, `"id"`)

	// Text is rebuilt from the tree, nested lines tab-indented.
	assert.Contains(t, ob.Text, "USE CASE Source-code delivery")
	assert.Contains(t, ob.Text, "\tYOU MUST Provide License-text")
	assert.Contains(t, ob.Text, "\tYOU MUST NOT Modify License-text")
	assert.Contains(t, ob.Text, "COPYLEFT CLAUSE")

	// The license links the obligation.
	lic, err := f.licenses.Get("GPL-2.0-only")
	require.NoError(t, err)
	assert.Equal(t, []string{ob.ID}, lic.ObligationDatabaseIDs)
}

func TestImportAllOsadlObligationsRefreshesExisting(t *testing.T) {
	f := newImportFixture(t)
	require.NoError(t, f.licenses.Add(spdxEntry("GPL-2.0-only", "gpl text")))

	catalog := &fakeOsadlCatalog{checklists: map[string]string{
		"GPL-2.0-only": gplChecklist,
	}}

	first := f.importer.ImportAllOsadlObligations(catalog, importUser())
	require.Equal(t, model.RequestStatusSuccess, first.Status)

	// A second run updates the linked obligation instead of adding another.
	second := f.importer.ImportAllOsadlObligations(catalog, importUser())
	require.Equal(t, model.RequestStatusSuccess, second.Status)

	obligations, err := f.obligations.GetAll()
	require.NoError(t, err)
	assert.Len(t, obligations, 1)

	lic, err := f.licenses.Get("GPL-2.0-only")
	require.NoError(t, err)
	assert.Len(t, lic.ObligationDatabaseIDs, 1)
}

func TestImportAllOsadlObligationsReportsMissing(t *testing.T) {
	f := newImportFixture(t)
	require.NoError(t, f.licenses.Add(spdxEntry("Proprietary-1.0", "text")))

	summary := f.importer.ImportAllOsadlObligations(&fakeOsadlCatalog{}, importUser())

	assert.Equal(t, model.RequestStatusSuccess, summary.Status)
	assert.Equal(t, 0, summary.TotalAffectedElements)
	assert.Contains(t, summary.Message, "Proprietary-1.0")
}

func TestOsadlImportDedupsNodesAndElements(t *testing.T) {
	f := newImportFixture(t)
	require.NoError(t, f.licenses.Add(spdxEntry("GPL-2.0-only", "a")))
	require.NoError(t, f.licenses.Add(spdxEntry("LGPL-2.1-only", "b")))

	// Both checklists share the same obligation line.
	catalog := &fakeOsadlCatalog{checklists: map[string]string{
		"GPL-2.0-only":  "- YOU MUST Provide License-text\n",
		"LGPL-2.1-only": "- YOU MUST Provide License-text\n",
	}}

	summary := f.importer.ImportAllOsadlObligations(catalog, importUser())
	require.Equal(t, model.RequestStatusSuccess, summary.Status)

	elements, err := f.elements.GetAll()
	require.NoError(t, err)
	assert.Len(t, elements, 1)

	// One ROOT node and one shared obligation node.
	nodes, err := f.nodes.GetAll()
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestImportSpdxLicenseJSON(t *testing.T) {
	f := newImportFixture(t)

	data := []byte(`{"licenseId":"BSD-3-Clause","name":"BSD 3-Clause","licenseText":"bsd text"}`)

	status := f.importer.ImportSpdxLicenseJSON(data, importUser())
	assert.Equal(t, model.RequestStatusSuccess, status)

	stored, err := f.licenses.Get("BSD-3-Clause")
	require.NoError(t, err)
	assert.Equal(t, "BSD 3-Clause", stored.GetFullname())

	// Dropping the same file again changes nothing.
	status = f.importer.ImportSpdxLicenseJSON(data, importUser())
	assert.Equal(t, model.RequestStatusSuccess, status)

	all, err := f.licenses.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestImportSpdxLicenseJSONRejectsMalformed(t *testing.T) {
	f := newImportFixture(t)

	assert.Equal(t, model.RequestStatusFailure,
		f.importer.ImportSpdxLicenseJSON([]byte("{"), importUser()))
	assert.Equal(t, model.RequestStatusFailure,
		f.importer.ImportSpdxLicenseJSON([]byte(`{"name":"no id"}`), importUser()))
}

func TestGateSingleFlight(t *testing.T) {
	var gate Gate

	require.True(t, gate.TryAcquire())
	assert.False(t, gate.TryAcquire())

	gate.Release()
	assert.True(t, gate.TryAcquire())
}

func TestParseChecklistNesting(t *testing.T) {
	root := parseChecklist([]byte(gplChecklist))

	require.Len(t, root.Children, 2)
	assert.Equal(t, "USE CASE Source-code delivery", root.Children[0].Line)
	require.Len(t, root.Children[0].Children, 2)
	assert.Equal(t, "YOU MUST Provide License-text", root.Children[0].Children[0].Line)
	assert.Equal(t, "COPYLEFT CLAUSE", root.Children[1].Line)
	assert.Empty(t, root.Children[1].Children)
}

func TestClassifyLine(t *testing.T) {
	element, node := classifyLine("YOU MUST NOT Modify License-text")
	require.NotNil(t, element)
	assert.Nil(t, node)
	assert.Equal(t, "YOU MUST NOT", element.LangElement)
	assert.Equal(t, "Modify", element.Action)
	assert.Equal(t, "License-text", element.Object)

	element, node = classifyLine("USE CASE Source-code delivery")
	assert.Nil(t, element)
	require.NotNil(t, node)
	assert.Equal(t, "USE CASE", node.NodeType)
	assert.Equal(t, "Source-code delivery", node.NodeText)

	element, node = classifyLine("COMPATIBILITY GPL-3.0-only")
	assert.Nil(t, element)
	require.NotNil(t, node)
	assert.Equal(t, "COMPATIBILITY", node.NodeType)
	assert.Equal(t, "GPL-3.0-only", node.NodeText)
}

func TestRenderedTextRoundTrips(t *testing.T) {
	f := newImportFixture(t)
	require.NoError(t, f.licenses.Add(spdxEntry("GPL-2.0-only", "gpl text")))

	catalog := &fakeOsadlCatalog{checklists: map[string]string{
		"GPL-2.0-only": gplChecklist,
	}}
	require.Equal(t, model.RequestStatusSuccess,
		f.importer.ImportAllOsadlObligations(catalog, importUser()).Status)

	obligations, err := f.obligations.GetAll()
	require.NoError(t, err)
	require.Len(t, obligations, 1)

	lines := strings.Split(obligations[0].Text, "\n")
	require.Len(t, lines, 4)
	assert.False(t, strings.HasPrefix(lines[0], "\t"))
	assert.True(t, strings.HasPrefix(lines[1], "\t"))
}

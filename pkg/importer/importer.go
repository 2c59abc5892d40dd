package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/toshiba/sw360/pkg/audit"
	"github.com/toshiba/sw360/pkg/datahandler"
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/store"
)

// ExternalIDOsadl is the external-id key linking an obligation to its OSADL
// checklist license id.
const ExternalIDOsadl = "osadl.org"

// Importer pulls catalogue entries into the document store. Licenses are
// written through the collection; obligation nodes and elements go through
// the license handler so its dedup lookups apply.
type Importer struct {
	licenses    store.Collection[model.License]
	obligations store.Collection[model.Obligation]
	handler     *datahandler.LicenseHandler
	gate        Gate
}

// NewImporter wires an importer.
func NewImporter(
	licenses store.Collection[model.License],
	obligations store.Collection[model.Obligation],
	handler *datahandler.LicenseHandler,
) *Importer {
	return &Importer{licenses: licenses, obligations: obligations, handler: handler}
}

// ImportAllSpdxLicenses imports every license of the SPDX catalogue that is
// not yet in the store. An existing license whose text disagrees with the
// catalogue is reported in the summary message and left untouched.
func (i *Importer) ImportAllSpdxLicenses(catalog SpdxCatalog, user *model.User) model.RequestSummary {
	ids, err := catalog.AllLicenseIDs()
	if err != nil {
		audit.Log(audit.ImportEvent{UserEmail: user.Email, Catalogue: "spdx", ErrorMessage: err.Error()})
		return model.RequestSummary{
			Status:  model.RequestStatusFailure,
			Message: fmt.Sprintf("failed to list SPDX licenses: %v", err),
		}
	}

	existing, err := i.licenses.GetAll()
	if err != nil {
		return model.RequestSummary{Status: model.RequestStatusFailure, Message: err.Error()}
	}
	byID := make(map[string]*model.License, len(existing))
	for idx := range existing {
		byID[existing[idx].ID] = &existing[idx]
	}

	imported := 0
	skipped := 0
	var mismatched []string
	for _, id := range ids {
		entry, err := catalog.License(id)
		if err != nil {
			// A listed id without a catalogue document; skip it.
			skipped++
			continue
		}

		stored, ok := byID[id]
		if !ok {
			if err := i.licenses.Add(entry); err != nil {
				skipped++
				continue
			}
			imported++
			continue
		}

		if stored.GetText() == entry.GetText() {
			skipped++
		} else {
			mismatched = append(mismatched, id)
		}
	}

	summary := model.RequestSummary{
		Status:                model.RequestStatusSuccess,
		TotalElements:         len(ids),
		TotalAffectedElements: imported,
	}
	if len(mismatched) > 0 {
		summary.Message = "The following licenses did not match their SPDX equivalent: " +
			strings.Join(mismatched, ", ")
	}
	audit.Log(audit.ImportEvent{
		UserEmail: user.Email, Catalogue: "spdx",
		Imported: imported, Skipped: skipped + len(mismatched), Success: true,
	})
	return summary
}

// ImportAllOsadlObligations refreshes every stored license from the OSADL
// checklist catalogue: the checklist is rebuilt into an obligation node tree,
// the obligation text is rendered from the tree, and the importing user's
// department is whitelisted. An obligation already linked by OSADL external
// id is refreshed in place. Runs single-flight; a concurrent caller gets
// PROCESSING.
func (i *Importer) ImportAllOsadlObligations(catalog OsadlCatalog, user *model.User) model.RequestSummary {
	if !i.gate.TryAcquire() {
		return model.RequestSummary{Status: model.RequestStatusProcessing}
	}
	defer i.gate.Release()

	licenses, err := i.licenses.GetAll()
	if err != nil {
		return model.RequestSummary{Status: model.RequestStatusFailure, Message: err.Error()}
	}
	obligations, err := i.obligations.GetAll()
	if err != nil {
		return model.RequestSummary{Status: model.RequestStatusFailure, Message: err.Error()}
	}

	success := map[string]string{}
	missing := map[string]string{}
	for idx := range licenses {
		lic := &licenses[idx]
		checklist, err := catalog.Checklist(lic.ID)
		if errors.Is(err, ErrNotInCatalogue) {
			missing[lic.ID] = lic.GetFullname()
			continue
		}
		if err != nil {
			audit.Log(audit.ImportEvent{UserEmail: user.Email, Catalogue: "osadl", ErrorMessage: err.Error()})
			return model.RequestSummary{
				Status:  model.RequestStatusFailure,
				Message: "Failed to import all OSADL license obligations",
			}
		}

		if err := i.importChecklist(lic, checklist, obligations, user); err != nil {
			audit.Log(audit.ImportEvent{UserEmail: user.Email, Catalogue: "osadl", ErrorMessage: err.Error()})
			return model.RequestSummary{
				Status:  model.RequestStatusFailure,
				Message: "Failed to import all OSADL license obligations",
			}
		}
		success[lic.ID] = lic.GetFullname()
	}

	message, _ := json.Marshal(map[string]map[string]string{
		"licensesSuccess": success,
		"licensesMissing": missing,
	})
	audit.Log(audit.ImportEvent{
		UserEmail: user.Email, Catalogue: "osadl",
		Imported: len(success), Skipped: len(missing), Success: true,
	})
	return model.RequestSummary{
		Status:                model.RequestStatusSuccess,
		TotalElements:         len(licenses),
		TotalAffectedElements: len(success),
		Message:               string(message),
	}
}

// ImportSpdxLicenseJSON imports a single SPDX license JSON document, as
// dropped into a watched directory. Idempotent: an already-stored license id
// is left alone.
func (i *Importer) ImportSpdxLicenseJSON(data []byte, user *model.User) model.RequestStatus {
	lic, err := ParseSpdxLicense(data)
	if err != nil {
		return model.RequestStatusFailure
	}

	if _, err := i.licenses.Get(lic.ID); err == nil {
		return model.RequestStatusSuccess
	} else if !errors.Is(err, store.ErrNotFound) {
		return model.RequestStatusFailure
	}

	if err := i.licenses.Add(lic); err != nil {
		return model.RequestStatusFailure
	}
	audit.Log(audit.ImportEvent{
		UserEmail: user.Email, Catalogue: "spdx", Imported: 1, Success: true,
	})
	return model.RequestStatusSuccess
}

// importChecklist rebuilds one license's obligation from its checklist.
func (i *Importer) importChecklist(lic *model.License, checklist string, known []model.Obligation, user *model.User) error {
	record, err := i.storeChecklist(parseChecklist([]byte(checklist)))
	if err != nil {
		return err
	}
	nodeJSON, err := json.Marshal(record)
	if err != nil {
		return err
	}
	text, err := i.renderObligationText(record)
	if err != nil {
		return err
	}

	for idx := range known {
		ob := &known[idx]
		if ob.ExternalIDs[ExternalIDOsadl] != lic.ID {
			continue
		}
		stored, err := i.obligations.Get(ob.ID)
		if err != nil {
			return err
		}
		stored.Text = text
		stored.Node = string(nodeJSON)
		if !containsString(stored.Whitelist, user.Department) {
			stored.Whitelist = append(stored.Whitelist, user.Department)
		}
		if err := i.obligations.Update(stored); err != nil {
			return err
		}
		return i.linkObligation(lic, stored.ID)
	}

	ob := &model.Obligation{
		Type:        model.TypeObligation,
		Title:       "OSADL checklist " + lic.ID,
		Text:        text,
		Node:        string(nodeJSON),
		Whitelist:   []string{user.Department},
		ExternalIDs: map[string]string{ExternalIDOsadl: lic.ID},
	}
	if err := i.obligations.Add(ob); err != nil {
		return err
	}
	return i.linkObligation(lic, ob.ID)
}

func (i *Importer) linkObligation(lic *model.License, obligationID string) error {
	if containsString(lic.ObligationDatabaseIDs, obligationID) {
		return nil
	}
	lic.ObligationDatabaseIDs = append(lic.ObligationDatabaseIDs, obligationID)
	return i.licenses.Update(lic)
}

// storeChecklist persists the line tree as obligation nodes and elements,
// returning the id-wired tree. The root is a ROOT marker node.
func (i *Importer) storeChecklist(root *checklistNode) (nodeRecord, error) {
	rootID, err := i.handler.AddObligationNode(&model.ObligationNode{NodeType: "ROOT"})
	if err != nil {
		return nodeRecord{}, err
	}
	record := nodeRecord{ID: rootID}
	for _, child := range root.Children {
		childRecord, err := i.storeLine(child)
		if err != nil {
			return nodeRecord{}, err
		}
		record.Children = append(record.Children, childRecord)
	}
	return record, nil
}

func (i *Importer) storeLine(node *checklistNode) (nodeRecord, error) {
	element, plain := classifyLine(node.Line)

	var nodeID string
	var err error
	if element != nil {
		elementID, err := i.handler.AddObligationElement(element)
		if err != nil {
			return nodeRecord{}, err
		}
		nodeID, err = i.handler.AddObligationNode(&model.ObligationNode{
			NodeType:     "Obligation",
			OblElementID: elementID,
		})
		if err != nil {
			return nodeRecord{}, err
		}
	} else {
		nodeID, err = i.handler.AddObligationNode(plain)
		if err != nil {
			return nodeRecord{}, err
		}
	}

	record := nodeRecord{ID: nodeID}
	for _, child := range node.Children {
		childRecord, err := i.storeLine(child)
		if err != nil {
			return nodeRecord{}, err
		}
		record.Children = append(record.Children, childRecord)
	}
	return record, nil
}

// renderObligationText renders the stored node tree back into the indented
// checklist text persisted on the obligation.
func (i *Importer) renderObligationText(record nodeRecord) (string, error) {
	var lines []string
	if err := i.renderNode(record, 0, &lines); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func (i *Importer) renderNode(record nodeRecord, level int, lines *[]string) error {
	node, err := i.handler.GetObligationNode(record.ID)
	if err != nil {
		return err
	}

	if node.NodeType != "ROOT" {
		prefix := strings.Repeat("\t", max(level-1, 0))
		var line string
		if node.NodeType == "Obligation" {
			element, err := i.handler.GetObligationElement(node.OblElementID)
			if err != nil {
				return err
			}
			line = prefix + strings.TrimSpace(element.LangElement+" "+element.Action+" "+element.Object)
		} else {
			line = prefix + strings.TrimSpace(node.NodeType+" "+node.NodeText)
		}
		*lines = append(*lines, line)
	}

	for _, child := range record.Children {
		if err := i.renderNode(child, level+1, lines); err != nil {
			return err
		}
	}
	return nil
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

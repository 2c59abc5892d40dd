package gorm

import (
	"strings"

	"gorm.io/gorm"

	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/store"
)

// NewLicenses builds the license collection.
func NewLicenses(db *gorm.DB) *Collection[model.License] {
	return NewCollection(db, model.TypeLicense,
		func(l *model.License) *string { return &l.ID },
		func(l *model.License) *string { return &l.Revision },
		func(l *model.License) *string { return &l.Type },
		nil)
}

// NewLicenseTypes builds the license-type collection.
func NewLicenseTypes(db *gorm.DB) *Collection[model.LicenseType] {
	return NewCollection(db, model.TypeLicenseType,
		func(t *model.LicenseType) *string { return &t.ID },
		func(t *model.LicenseType) *string { return &t.Revision },
		func(t *model.LicenseType) *string { return &t.Type },
		nil)
}

// NewObligations builds the obligation collection.
func NewObligations(db *gorm.DB) *Collection[model.Obligation] {
	return NewCollection(db, model.TypeObligation,
		func(o *model.Obligation) *string { return &o.ID },
		func(o *model.Obligation) *string { return &o.Revision },
		func(o *model.Obligation) *string { return &o.Type },
		nil)
}

// NewObligationNodes builds the obligation-node collection. Nodes are indexed
// by their type, text and element reference so the importer can dedupe.
func NewObligationNodes(db *gorm.DB) *Collection[model.ObligationNode] {
	return NewCollection(db, model.TypeObligationNode,
		func(n *model.ObligationNode) *string { return &n.ID },
		func(n *model.ObligationNode) *string { return &n.Revision },
		func(n *model.ObligationNode) *string { return &n.Type },
		func(n *model.ObligationNode) map[string][]string {
			return map[string][]string{
				store.IndexByNodeType:     {n.NodeType},
				store.IndexByNodeText:     {n.NodeText},
				store.IndexByOblElementID: {n.OblElementID},
			}
		})
}

// NewObligationElements builds the obligation-element collection, indexed on
// each leg of the subject-action-object triple.
func NewObligationElements(db *gorm.DB) *Collection[model.ObligationElement] {
	return NewCollection(db, model.TypeObligationElement,
		func(e *model.ObligationElement) *string { return &e.ID },
		func(e *model.ObligationElement) *string { return &e.Revision },
		func(e *model.ObligationElement) *string { return &e.Type },
		func(e *model.ObligationElement) map[string][]string {
			return map[string][]string{
				store.IndexByLangElement: {e.LangElement},
				store.IndexByAction:      {e.Action},
				store.IndexByObject:      {e.Object},
			}
		})
}

// NewUsers builds the user collection. Users resolve by current and former
// email addresses, by external id (case-insensitive) and by API token value.
func NewUsers(db *gorm.DB) *Collection[model.User] {
	return NewCollection(db, model.TypeUser,
		func(u *model.User) *string { return &u.ID },
		func(u *model.User) *string { return &u.Revision },
		func(u *model.User) *string { return &u.Type },
		func(u *model.User) map[string][]string {
			emails := append([]string{u.Email}, u.FormerEmailAddresses...)
			tokens := make([]string, 0, len(u.RestAPITokens))
			for _, t := range u.RestAPITokens {
				tokens = append(tokens, t.Token)
			}
			return map[string][]string{
				store.IndexByEmail:      emails,
				store.IndexByExternalID: {strings.ToLower(u.ExternalID)},
				store.IndexByAPIToken:   tokens,
			}
		})
}

// NewPackageInfos builds the SPDX package-information collection.
func NewPackageInfos(db *gorm.DB) *Collection[model.PackageInformation] {
	return NewCollection(db, model.TypePackageInformation,
		func(p *model.PackageInformation) *string { return &p.ID },
		func(p *model.PackageInformation) *string { return &p.Revision },
		func(p *model.PackageInformation) *string { return &p.Type },
		nil)
}

// NewModerationRequests builds the moderation-request collection, indexed by
// the id of the document each request targets.
func NewModerationRequests(db *gorm.DB) *Collection[model.ModerationRequest] {
	return NewCollection(db, model.TypeModerationRequest,
		func(m *model.ModerationRequest) *string { return &m.ID },
		func(m *model.ModerationRequest) *string { return &m.Revision },
		func(m *model.ModerationRequest) *string { return &m.Type },
		func(m *model.ModerationRequest) map[string][]string {
			return map[string][]string{
				store.IndexByDocumentID: {m.DocumentID},
			}
		})
}

// NewReleases builds the release collection, indexed by referenced main
// license so license deletion can detect documents still using it.
func NewReleases(db *gorm.DB) *Collection[model.Release] {
	return NewCollection(db, model.TypeRelease,
		func(r *model.Release) *string { return &r.ID },
		func(r *model.Release) *string { return &r.Revision },
		func(r *model.Release) *string { return &r.Type },
		func(r *model.Release) map[string][]string {
			return map[string][]string{
				store.IndexByLicenseID: r.MainLicenseIDs,
			}
		})
}

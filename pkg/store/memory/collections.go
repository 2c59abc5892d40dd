package memory

import (
	"strings"

	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/store"
)

// NewLicenses builds the in-memory license collection.
func NewLicenses() *Collection[model.License] {
	return NewCollection(model.TypeLicense,
		func(l *model.License) *string { return &l.ID },
		func(l *model.License) *string { return &l.Revision },
		func(l *model.License) *string { return &l.Type },
		nil)
}

// NewLicenseTypes builds the in-memory license-type collection.
func NewLicenseTypes() *Collection[model.LicenseType] {
	return NewCollection(model.TypeLicenseType,
		func(t *model.LicenseType) *string { return &t.ID },
		func(t *model.LicenseType) *string { return &t.Revision },
		func(t *model.LicenseType) *string { return &t.Type },
		nil)
}

// NewObligations builds the in-memory obligation collection.
func NewObligations() *Collection[model.Obligation] {
	return NewCollection(model.TypeObligation,
		func(o *model.Obligation) *string { return &o.ID },
		func(o *model.Obligation) *string { return &o.Revision },
		func(o *model.Obligation) *string { return &o.Type },
		nil)
}

// NewObligationNodes builds the in-memory obligation-node collection.
func NewObligationNodes() *Collection[model.ObligationNode] {
	return NewCollection(model.TypeObligationNode,
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

// NewObligationElements builds the in-memory obligation-element collection.
func NewObligationElements() *Collection[model.ObligationElement] {
	return NewCollection(model.TypeObligationElement,
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

// NewUsers builds the in-memory user collection.
func NewUsers() *Collection[model.User] {
	return NewCollection(model.TypeUser,
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

// NewPackageInfos builds the in-memory SPDX package-information collection.
func NewPackageInfos() *Collection[model.PackageInformation] {
	return NewCollection(model.TypePackageInformation,
		func(p *model.PackageInformation) *string { return &p.ID },
		func(p *model.PackageInformation) *string { return &p.Revision },
		func(p *model.PackageInformation) *string { return &p.Type },
		nil)
}

// NewModerationRequests builds the in-memory moderation-request collection.
func NewModerationRequests() *Collection[model.ModerationRequest] {
	return NewCollection(model.TypeModerationRequest,
		func(m *model.ModerationRequest) *string { return &m.ID },
		func(m *model.ModerationRequest) *string { return &m.Revision },
		func(m *model.ModerationRequest) *string { return &m.Type },
		func(m *model.ModerationRequest) map[string][]string {
			return map[string][]string{
				store.IndexByDocumentID: {m.DocumentID},
			}
		})
}

// NewReleases builds the in-memory release collection.
func NewReleases() *Collection[model.Release] {
	return NewCollection(model.TypeRelease,
		func(r *model.Release) *string { return &r.ID },
		func(r *model.Release) *string { return &r.Revision },
		func(r *model.Release) *string { return &r.Type },
		func(r *model.Release) map[string][]string {
			return map[string][]string{
				store.IndexByLicenseID: r.MainLicenseIDs,
			}
		})
}

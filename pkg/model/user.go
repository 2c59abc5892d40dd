package model

//go:generate go run github.com/dmarkham/enumer -type UserGroup -trimprefix UserGroup -transform snake-upper -json -text -output usergroup.gen.go

// UserGroup is the coarse role of a user. The numeric values form a total
// order of privilege: USER < CLEARING_ADMIN < CLEARING_EXPERT < ADMIN <
// SW360_ADMIN.
type UserGroup int

const (
	UserGroupUser UserGroup = iota
	UserGroupClearingAdmin
	UserGroupClearingExpert
	UserGroupAdmin
	UserGroupSW360Admin
)

// RestAPIToken is an opaque API token issued to a user.
type RestAPIToken struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// User is an acting principal. Email is the identity; Department is the
// primary group. SecondaryDepartmentsAndRoles lists roles the user holds in
// departments other than their own.
type User struct {
	ID       string `json:"_id,omitempty"`
	Revision string `json:"_rev,omitempty"`
	Type     string `json:"type"`

	Email                string    `json:"email"`
	Department           string    `json:"department"`
	Fullname             string    `json:"fullname,omitempty"`
	ExternalID           string    `json:"externalid,omitempty"`
	UserGroup            UserGroup `json:"userGroup"`
	FormerEmailAddresses []string  `json:"formerEmailAddresses,omitempty"`

	SecondaryDepartmentsAndRoles map[string][]UserGroup `json:"secondaryDepartmentsAndRoles,omitempty"`

	RestAPITokens []RestAPIToken `json:"restApiTokens,omitempty"`
}

// TypeUser is the document type discriminator for users.
const TypeUser = "user"

// NewUser returns a user document with the type discriminator set.
func NewUser(email, department string) *User {
	return &User{Type: TypeUser, Email: email, Department: department}
}

// HasSecondaryRole reports whether the user holds one of the desired roles in
// the given department.
func (u *User) HasSecondaryRole(department string, desired []UserGroup) bool {
	roles, ok := u.SecondaryDepartmentsAndRoles[department]
	if !ok {
		return false
	}
	for _, role := range roles {
		for _, want := range desired {
			if role == want {
				return true
			}
		}
	}
	return false
}

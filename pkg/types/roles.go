package types

import "fmt"

// Role is the fixed set of actor roles, ordered by seniority. Every
// "minimum role" check in the service goes through AtLeast so the
// hierarchy lives in exactly one place.
type Role int

const (
	RoleParent Role = iota + 1
	RoleTeacher
	RoleFirstResponder
	RoleOperator
	RoleSiteAdmin
	RoleSuperAdmin
)

var roleNames = map[Role]string{
	RoleParent:         "PARENT",
	RoleTeacher:        "TEACHER",
	RoleFirstResponder: "FIRST_RESPONDER",
	RoleOperator:       "OPERATOR",
	RoleSiteAdmin:      "SITE_ADMIN",
	RoleSuperAdmin:     "SUPER_ADMIN",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(r))
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// AtLeast reports whether r meets the given minimum seniority.
// SUPER_ADMIN passes unconditionally.
func (r Role) AtLeast(min Role) bool {
	if r == RoleSuperAdmin {
		return true
	}
	return r >= min
}

func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}

// Actor identifies the authenticated caller of a mutating operation.
// SiteIDs is the caller's site scope from the token claims, SourceIP is
// recorded in the audit log.
type Actor struct {
	ID       string
	Role     Role
	SiteIDs  []string
	SourceIP string
}

// SiteScope returns the site filter to apply to reads on behalf of the
// actor. SUPER_ADMIN is unscoped (nil); everyone else is limited to the
// sites the token grants, where an empty grant matches nothing.
func (a Actor) SiteScope() []string {
	if a.Role == RoleSuperAdmin {
		return nil
	}
	if a.SiteIDs == nil {
		return []string{}
	}
	return a.SiteIDs
}

func (a Actor) HasSite(siteID string) bool {
	if a.Role == RoleSuperAdmin {
		return true
	}
	for _, s := range a.SiteIDs {
		if s == siteID {
			return true
		}
	}
	return false
}

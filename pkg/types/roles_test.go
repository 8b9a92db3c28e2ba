package types

import (
	"testing"

	"github.com/matryer/is"
)

func TestRoleHierarchy(t *testing.T) {
	is := is.New(t)

	is.True(RoleOperator.AtLeast(RoleTeacher))
	is.True(RoleOperator.AtLeast(RoleOperator))
	is.True(!RoleTeacher.AtLeast(RoleOperator))
	is.True(!RoleParent.AtLeast(RoleTeacher))
	is.True(RoleSiteAdmin.AtLeast(RoleFirstResponder))
}

func TestSuperAdminBypassesEveryMinimum(t *testing.T) {
	is := is.New(t)

	for _, min := range []Role{RoleParent, RoleTeacher, RoleFirstResponder, RoleOperator, RoleSiteAdmin, RoleSuperAdmin} {
		is.True(RoleSuperAdmin.AtLeast(min))
	}
}

func TestParseRoleRoundTrip(t *testing.T) {
	is := is.New(t)

	for _, name := range []string{"PARENT", "TEACHER", "FIRST_RESPONDER", "OPERATOR", "SITE_ADMIN", "SUPER_ADMIN"} {
		role, err := ParseRole(name)
		is.NoErr(err)
		is.Equal(name, role.String())
	}

	_, err := ParseRole("JANITOR")
	is.True(err != nil)
}

func TestActorSiteScope(t *testing.T) {
	is := is.New(t)

	actor := Actor{ID: "u-1", Role: RoleOperator, SiteIDs: []string{"site-1", "site-2"}}
	is.True(actor.HasSite("site-1"))
	is.True(!actor.HasSite("site-3"))

	admin := Actor{ID: "u-2", Role: RoleSuperAdmin}
	is.True(admin.HasSite("site-3"))
}

func TestSiteScopeIsNilOnlyForSuperAdmin(t *testing.T) {
	is := is.New(t)

	admin := Actor{ID: "u-1", Role: RoleSuperAdmin, SiteIDs: []string{}}
	is.Equal(admin.SiteScope(), []string(nil))

	operator := Actor{ID: "u-2", Role: RoleOperator, SiteIDs: []string{"site-1"}}
	is.Equal(operator.SiteScope(), []string{"site-1"})

	// A token without site grants matches nothing rather than everything.
	ungranted := Actor{ID: "u-3", Role: RoleOperator}
	scope := ungranted.SiteScope()
	is.True(scope != nil)
	is.Equal(len(scope), 0)
}

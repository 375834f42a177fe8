package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medicore/hospital-api/internal/model"
)

func itemIDs(items []model.NavigationItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestFilterForRole_AdminSeesEverything(t *testing.T) {
	reg := Default()

	items := reg.FilterForRole(model.RoleAdmin)

	assert.Len(t, items, len(reg))
	assert.Equal(t, itemIDs(reg), itemIDs(items))
}

func TestFilterForRole_ReceptionistSubset(t *testing.T) {
	items := Default().FilterForRole(model.RoleReceptionist)

	ids := itemIDs(items)
	assert.Equal(t, []string{"dashboard", "patients", "appointments", "notifications", "settings"}, ids)
	assert.NotContains(t, ids, "staff")
	assert.NotContains(t, ids, "financial")
}

func TestFilterForRole_MembershipIsExact(t *testing.T) {
	reg := Default()

	for _, role := range model.AllRoles {
		visible := make(map[string]bool)
		for _, item := range reg.FilterForRole(role) {
			visible[item.ID] = true
		}

		for _, item := range reg {
			assert.Equal(t, item.Allows(role), visible[item.ID],
				"item %s visibility for role %s", item.ID, role)
		}
	}
}

func TestFilterForRole_PreservesOrder(t *testing.T) {
	reg := Default()
	items := reg.FilterForRole(model.RoleDoctor)

	// Filtered IDs must appear in the same relative order as the registry.
	pos := make(map[string]int)
	for i, item := range reg {
		pos[item.ID] = i
	}
	for i := 1; i < len(items); i++ {
		assert.Less(t, pos[items[i-1].ID], pos[items[i].ID])
	}
}

func TestFilterForRole_ChildrenFilteredIndependently(t *testing.T) {
	reg := Registry{
		{
			ID:    "parent",
			Roles: []model.Role{model.RoleAdmin, model.RoleNurse},
			Children: []model.NavigationItem{
				{ID: "admin-only", Roles: []model.Role{model.RoleAdmin}},
				{ID: "shared", Roles: []model.Role{model.RoleAdmin, model.RoleNurse}},
			},
		},
	}

	nurse := reg.FilterForRole(model.RoleNurse)
	assert.Len(t, nurse, 1)
	assert.Equal(t, []string{"shared"}, itemIDs(nurse[0].Children))

	admin := reg.FilterForRole(model.RoleAdmin)
	assert.Len(t, admin[0].Children, 2)
}

func TestFilterForRole_DoesNotMutateRegistry(t *testing.T) {
	reg := Registry{
		{
			ID:    "parent",
			Roles: []model.Role{model.RoleAdmin, model.RoleNurse},
			Children: []model.NavigationItem{
				{ID: "admin-only", Roles: []model.Role{model.RoleAdmin}},
			},
		},
	}

	_ = reg.FilterForRole(model.RoleNurse)

	assert.Len(t, reg[0].Children, 1, "filtering must not modify the registry")
}

func TestFind(t *testing.T) {
	reg := Default()

	item, ok := reg.Find("pharmacy")
	assert.True(t, ok)
	assert.Equal(t, "/pharmacy", item.Path)

	_, ok = reg.Find("does-not-exist")
	assert.False(t, ok)
}

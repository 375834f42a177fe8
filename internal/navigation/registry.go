// Package navigation holds the static registry of application areas and the
// role sets that may see them. The registry is fixed configuration: loaded
// once, never mutated at runtime. Declaration order is display order.
package navigation

import "github.com/medicore/hospital-api/internal/model"

// Registry is an ordered list of navigation items.
type Registry []model.NavigationItem

// Default returns the registry for the hospital application. Sidebar
// visibility and route enforcement both derive from these role sets.
func Default() Registry {
	return Registry{
		{
			ID:    "dashboard",
			Label: "Dashboard",
			Icon:  "layout-dashboard",
			Path:  "/dashboard",
			Roles: model.AllRoles,
		},
		{
			ID:    "patients",
			Label: "Patient Management",
			Icon:  "users",
			Path:  "/patients",
			Roles: []model.Role{model.RoleAdmin, model.RoleDoctor, model.RoleNurse, model.RoleReceptionist},
		},
		{
			ID:    "appointments",
			Label: "Appointments",
			Icon:  "calendar",
			Path:  "/appointments",
			Roles: []model.Role{model.RoleAdmin, model.RoleDoctor, model.RoleNurse, model.RoleReceptionist},
		},
		{
			ID:    "pharmacy",
			Label: "Pharmacy",
			Icon:  "pill",
			Path:  "/pharmacy",
			Roles: []model.Role{model.RoleAdmin, model.RolePharmacist, model.RoleDoctor},
		},
		{
			ID:    "laboratory",
			Label: "Laboratory",
			Icon:  "test-tube",
			Path:  "/laboratory",
			Roles: []model.Role{model.RoleAdmin, model.RoleLabTechnician, model.RoleDoctor},
		},
		{
			ID:    "staff",
			Label: "Staff Management",
			Icon:  "user-cog",
			Path:  "/staff",
			Roles: []model.Role{model.RoleAdmin},
		},
		{
			ID:    "financial",
			Label: "Financial Reports",
			Icon:  "dollar-sign",
			Path:  "/financial",
			Roles: []model.Role{model.RoleAdmin},
		},
		{
			ID:    "notifications",
			Label: "Notifications",
			Icon:  "bell",
			Path:  "/notifications",
			Roles: model.AllRoles,
		},
		{
			ID:    "settings",
			Label: "Settings",
			Icon:  "settings",
			Path:  "/settings",
			Roles: model.AllRoles,
		},
	}
}

// FilterForRole returns the ordered sublist of items visible to the role.
// Children are filtered by their own role sets: a child survives only if the
// role is in its own list, and a retained parent may lose any or all
// children. Pure function of (registry, role).
func (reg Registry) FilterForRole(role model.Role) []model.NavigationItem {
	filtered := make([]model.NavigationItem, 0, len(reg))
	for _, item := range reg {
		if !item.Allows(role) {
			continue
		}
		copied := item
		if len(item.Children) > 0 {
			copied.Children = Registry(item.Children).FilterForRole(role)
		}
		filtered = append(filtered, copied)
	}
	return filtered
}

// Find returns the item with the given ID, searching children too.
func (reg Registry) Find(id string) (model.NavigationItem, bool) {
	for _, item := range reg {
		if item.ID == id {
			return item, true
		}
		if len(item.Children) > 0 {
			if child, ok := Registry(item.Children).Find(id); ok {
				return child, true
			}
		}
	}
	return model.NavigationItem{}, false
}

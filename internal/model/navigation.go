package model

// NavigationItem is one entry of the static navigation registry. Roles is the
// complete access list for the item: children do not inherit it and declare
// their own.
type NavigationItem struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Icon     string           `json:"icon"`
	Path     string           `json:"path"`
	Roles    []Role           `json:"roles"`
	Children []NavigationItem `json:"children,omitempty"`
}

// Allows reports whether the item is visible to the given role.
func (n NavigationItem) Allows(r Role) bool {
	for _, allowed := range n.Roles {
		if allowed == r {
			return true
		}
	}
	return false
}

// Package tenant holds the Tenant entity: an organization whose invoices a
// signed-in user may browse.
package tenant

import (
	"cmp"
	"slices"
	"strings"
)

// Tenant is a read-only organization record.
type Tenant struct {
	ID          string
	DisplayName string
	Domain      string
}

// SortByDisplayName orders tenants by display name ascending, breaking ties
// by ID so the order is deterministic.
func SortByDisplayName(tenants []Tenant) {
	slices.SortStableFunc(tenants, func(a, b Tenant) int {
		if c := strings.Compare(a.DisplayName, b.DisplayName); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

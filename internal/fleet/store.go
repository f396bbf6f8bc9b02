// Package fleet owns the mutable airplane roster and the selected-airplane
// pointer, and derives per-airplane risk views. All mutations are atomic
// under a single lock; reads hand out snapshots.
package fleet

import (
	"sort"
	"sync"

	"github.com/aeroscope/core/internal/catalog"
	"github.com/aeroscope/core/internal/models"
)

// Store is the single owner of airplane assignment state. One instance per
// process; construct it with NewStore and share it by reference.
type Store struct {
	mu         sync.RWMutex
	catalog    *catalog.Catalog
	airplanes  []models.Airplane
	selectedID string
}

// NewStore seeds the roster from the catalog. The 737 MAX is selected by
// default since it carries the most sourcing risks. A nil catalog is a
// wiring defect, not a runtime condition.
func NewStore(c *catalog.Catalog) *Store {
	if c == nil {
		panic("fleet: NewStore requires a non-nil catalog")
	}
	airplanes := c.InitialAirplanes()
	selected := ""
	if len(airplanes) > 1 {
		selected = airplanes[1].ID
	} else if len(airplanes) > 0 {
		selected = airplanes[0].ID
	}
	return &Store{
		catalog:    c,
		airplanes:  airplanes,
		selectedID: selected,
	}
}

// Airplanes returns a deep-copied snapshot of the roster.
func (st *Store) Airplanes() []models.Airplane {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]models.Airplane, len(st.airplanes))
	for i, a := range st.airplanes {
		out[i] = a.Clone()
	}
	return out
}

// Selected returns the currently selected airplane, falling back to the
// first airplane in the roster when the selection no longer resolves.
func (st *Store) Selected() (models.Airplane, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	a, ok := st.find(st.selectedID)
	if !ok {
		if len(st.airplanes) == 0 {
			return models.Airplane{}, false
		}
		a = st.airplanes[0]
	}
	return a.Clone(), true
}

// SelectedID returns the raw selection pointer, which may not resolve.
func (st *Store) SelectedID() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.selectedID
}

// SelectAirplane sets the active airplane pointer. Unknown ids are kept
// as-is; readers fall back to the first airplane.
func (st *Store) SelectAirplane(airplaneID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.selectedID = airplaneID
}

// ReassignSupplier replaces the supplier assigned to one component of one
// airplane, leaving every other component and airplane untouched. The new
// supplier id is not validated against the component; an unknown id simply
// fails to resolve in downstream views. Returns false when the airplane is
// unknown.
func (st *Store) ReassignSupplier(airplaneID, component, newSupplierID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.airplanes {
		if st.airplanes[i].ID == airplaneID {
			st.airplanes[i].Suppliers[component] = newSupplierID
			return true
		}
	}
	return false
}

// ReplaceComponent removes oldComponent from the airplane's sourcing map
// and inserts newComponent with the given supplier. The key set changes, so
// views keyed by component must re-derive their component list. If
// newComponent already exists its assignment is overwritten and the total
// key count shrinks by one. Returns false when the airplane is unknown.
func (st *Store) ReplaceComponent(airplaneID, oldComponent, newComponent, newSupplierID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.airplanes {
		if st.airplanes[i].ID == airplaneID {
			delete(st.airplanes[i].Suppliers, oldComponent)
			st.airplanes[i].Suppliers[newComponent] = newSupplierID
			return true
		}
	}
	return false
}

// RiskRows derives the per-component risk view for the airplane, falling
// back to the first airplane when the id is unknown. Entries whose supplier
// id no longer resolves are skipped. A supplier's risk is promoted from low
// to medium when its part is kerosene-only.
//
// Display order: sustainability-flagged rows first, then rows by promoted
// severity (critical, high, medium), then clean rows; ties break
// alphabetically by component so repeated calls yield identical output.
func (st *Store) RiskRows(airplaneID string) []models.SupplierRiskRow {
	st.mu.RLock()
	defer st.mu.RUnlock()

	airplane, ok := st.find(airplaneID)
	if !ok {
		if len(st.airplanes) == 0 {
			return nil
		}
		airplane = st.airplanes[0]
	}

	components := make([]string, 0, len(airplane.Suppliers))
	for component := range airplane.Suppliers {
		components = append(components, component)
	}
	sort.Strings(components)

	rows := make([]models.SupplierRiskRow, 0, len(components))
	for _, component := range components {
		supplier, ok := st.catalog.SupplierByID(airplane.Suppliers[component])
		if !ok {
			continue
		}
		sustainability := supplier.KeroseneOnly()
		level := supplier.Risk
		if sustainability && level == models.RiskLow {
			level = models.RiskMedium
		}
		rows = append(rows, models.SupplierRiskRow{
			Component:          component,
			Supplier:           supplier,
			SustainabilityRisk: sustainability,
			RiskLevel:          level,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rowPriority(rows[i]) < rowPriority(rows[j])
	})
	return rows
}

// rowPriority buckets a row for display: sustainability flags outrank raw
// severity, clean rows go last.
func rowPriority(row models.SupplierRiskRow) int {
	if row.SustainabilityRisk {
		return 0
	}
	switch row.RiskLevel {
	case models.RiskCritical:
		return 1
	case models.RiskHigh:
		return 2
	case models.RiskMedium:
		return 3
	}
	return 4
}

// RiskCount tallies badge counts for the airplane using raw supplier risk,
// not the promoted level. Unknown airplanes and unresolvable supplier ids
// count as zero.
func (st *Store) RiskCount(airplaneID string) models.RiskCount {
	st.mu.RLock()
	defer st.mu.RUnlock()

	var count models.RiskCount
	airplane, ok := st.find(airplaneID)
	if !ok {
		return count
	}
	for _, supplierID := range airplane.Suppliers {
		supplier, ok := st.catalog.SupplierByID(supplierID)
		if !ok {
			continue
		}
		if supplier.Risk == models.RiskHigh || supplier.Risk == models.RiskCritical {
			count.High++
		}
		if supplier.KeroseneOnly() {
			count.Sustainability++
		}
	}
	return count
}

// find must be called with the lock held.
func (st *Store) find(airplaneID string) (models.Airplane, bool) {
	for _, a := range st.airplanes {
		if a.ID == airplaneID {
			return a, true
		}
	}
	return models.Airplane{}, false
}

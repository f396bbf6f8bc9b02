package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroscope/core/internal/catalog"
	"github.com/aeroscope/core/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(catalog.New())
}

func TestNewStore(t *testing.T) {
	t.Run("panics on nil catalog", func(t *testing.T) {
		assert.Panics(t, func() { NewStore(nil) })
	})

	t.Run("selects the 737 MAX by default", func(t *testing.T) {
		store := newTestStore(t)
		assert.Equal(t, "737max", store.SelectedID())
	})

	t.Run("seeds three airplanes", func(t *testing.T) {
		store := newTestStore(t)
		assert.Len(t, store.Airplanes(), 3)
	})

	t.Run("mutating a snapshot does not affect the store", func(t *testing.T) {
		store := newTestStore(t)
		snapshot := store.Airplanes()
		snapshot[0].Suppliers["Engines"] = "tampered"

		fresh := store.Airplanes()
		assert.Equal(t, "alt-eng-1", fresh[0].Suppliers["Engines"])
	})
}

func TestSelectAirplane(t *testing.T) {
	t.Run("switches the selection", func(t *testing.T) {
		store := newTestStore(t)
		store.SelectAirplane("zeroe")

		selected, ok := store.Selected()
		require.True(t, ok)
		assert.Equal(t, "zeroe", selected.ID)
	})

	t.Run("unknown id falls back to the first airplane", func(t *testing.T) {
		store := newTestStore(t)
		store.SelectAirplane("no-such-plane")

		selected, ok := store.Selected()
		require.True(t, ok)
		assert.Equal(t, "a320neo", selected.ID)
	})
}

func TestReassignSupplier(t *testing.T) {
	t.Run("replaces only the named component", func(t *testing.T) {
		store := newTestStore(t)
		before := store.Airplanes()[1].Suppliers

		ok := store.ReassignSupplier("737max", "Avionics", "alt-av-1")
		require.True(t, ok)

		after := store.Airplanes()[1].Suppliers
		assert.Equal(t, "alt-av-1", after["Avionics"])
		for component, supplierID := range before {
			if component == "Avionics" {
				continue
			}
			assert.Equal(t, supplierID, after[component], "component %s changed", component)
		}
	})

	t.Run("does not alter other airplanes", func(t *testing.T) {
		store := newTestStore(t)
		otherBefore := store.Airplanes()[0]

		ok := store.ReassignSupplier("737max", "Engines", "alt-eng-3")
		require.True(t, ok)

		otherAfter := store.Airplanes()[0]
		assert.Equal(t, otherBefore.Suppliers, otherAfter.Suppliers)
	})

	t.Run("unknown airplane is a no-op", func(t *testing.T) {
		store := newTestStore(t)
		before := store.Airplanes()

		ok := store.ReassignSupplier("ghost", "Engines", "s1")
		assert.False(t, ok)
		assert.Equal(t, before, store.Airplanes())
	})

	t.Run("accepts a supplier id the catalog cannot resolve", func(t *testing.T) {
		store := newTestStore(t)

		ok := store.ReassignSupplier("737max", "Engines", "nonexistent")
		require.True(t, ok)

		// Downstream views skip the unresolvable entry rather than failing.
		rows := store.RiskRows("737max")
		for _, row := range rows {
			assert.NotEqual(t, "Engines", row.Component)
		}
	})
}

func TestReplaceComponent(t *testing.T) {
	t.Run("changes the key set", func(t *testing.T) {
		store := newTestStore(t)
		before := store.Airplanes()[0].Suppliers
		require.Contains(t, before, "Titanium Forgings")
		require.NotContains(t, before, "Ceramic Forgings")

		ok := store.ReplaceComponent("a320neo", "Titanium Forgings", "Ceramic Forgings", "s9")
		require.True(t, ok)

		after := store.Airplanes()[0].Suppliers
		assert.NotContains(t, after, "Titanium Forgings")
		assert.Equal(t, "s9", after["Ceramic Forgings"])
		assert.Len(t, after, len(before))
	})

	t.Run("replacing onto an existing component shrinks the key set", func(t *testing.T) {
		store := newTestStore(t)
		before := store.Airplanes()[0].Suppliers

		// Aluminum Alloys already exists; the old assignment is overwritten.
		ok := store.ReplaceComponent("a320neo", "Titanium Forgings", "Aluminum Alloys", "s9")
		require.True(t, ok)

		after := store.Airplanes()[0].Suppliers
		assert.NotContains(t, after, "Titanium Forgings")
		assert.Equal(t, "s9", after["Aluminum Alloys"])
		assert.Len(t, after, len(before)-1)
	})

	t.Run("unknown airplane is a no-op", func(t *testing.T) {
		store := newTestStore(t)
		ok := store.ReplaceComponent("ghost", "Engines", "Turbines", "s1")
		assert.False(t, ok)
	})
}

func TestRiskRows(t *testing.T) {
	t.Run("repeated calls on unchanged state are identical", func(t *testing.T) {
		store := newTestStore(t)
		first := store.RiskRows("737max")
		second := store.RiskRows("737max")
		assert.Equal(t, first, second)
	})

	t.Run("promotes kerosene-only low risk to medium", func(t *testing.T) {
		store := newTestStore(t)
		rows := store.RiskRows("737max")

		var found bool
		for _, row := range rows {
			// Curtiss-Wright actuation: kerosene-only, raw risk medium stays.
			// Collins avionics: kerosene-only, raw medium. Spirit fuselage:
			// kerosene-only, raw medium. TIMET: kerosene-only, critical stays.
			if row.Supplier.ID == "s11" {
				found = true
				assert.True(t, row.SustainabilityRisk)
				assert.Equal(t, models.RiskCritical, row.RiskLevel)
			}
		}
		assert.True(t, found, "titanium row missing")
	})

	t.Run("no sustainability-flagged row stays below medium", func(t *testing.T) {
		store := newTestStore(t)
		for _, id := range []string{"a320neo", "737max", "zeroe"} {
			for _, row := range store.RiskRows(id) {
				if row.SustainabilityRisk {
					assert.GreaterOrEqual(t, row.RiskLevel.Severity(), models.RiskMedium.Severity(),
						"%s/%s not promoted", id, row.Component)
				}
			}
		}
	})

	t.Run("sustainability-flagged rows sort before raw severity", func(t *testing.T) {
		store := newTestStore(t)
		rows := store.RiskRows("737max")
		require.NotEmpty(t, rows)

		// Every sustainability-flagged row must precede every unflagged row
		// that carries raw risk, and clean rows come last.
		lastFlagged := -1
		firstUnflagged := len(rows)
		for i, row := range rows {
			if row.SustainabilityRisk {
				lastFlagged = i
			} else if i < firstUnflagged {
				firstUnflagged = i
			}
		}
		assert.Less(t, lastFlagged, firstUnflagged)
	})

	t.Run("clean rows come after risky rows", func(t *testing.T) {
		store := newTestStore(t)
		rows := store.RiskRows("737max")

		seenClean := false
		for _, row := range rows {
			clean := !row.SustainabilityRisk && row.RiskLevel == models.RiskLow
			if clean {
				seenClean = true
			} else {
				assert.False(t, seenClean, "risky row %s after a clean row", row.Component)
			}
		}
	})

	t.Run("unknown airplane falls back to the first", func(t *testing.T) {
		store := newTestStore(t)
		assert.Equal(t, store.RiskRows("a320neo"), store.RiskRows("ghost"))
	})
}

func TestRiskCount(t *testing.T) {
	t.Run("counts raw high and critical plus kerosene-only", func(t *testing.T) {
		store := newTestStore(t)
		count := store.RiskCount("737max")

		// Toray (high) + TIMET (critical) = 2 high; Collins, Spirit,
		// Curtiss-Wright, TIMET are kerosene-only = 4 sustainability.
		assert.Equal(t, 2, count.High)
		assert.Equal(t, 4, count.Sustainability)
	})

	t.Run("repeated calls on unchanged state are identical", func(t *testing.T) {
		store := newTestStore(t)
		assert.Equal(t, store.RiskCount("a320neo"), store.RiskCount("a320neo"))
	})

	t.Run("unknown airplane counts zero", func(t *testing.T) {
		store := newTestStore(t)
		assert.Equal(t, models.RiskCount{}, store.RiskCount("ghost"))
	})

	t.Run("reflects reassignment", func(t *testing.T) {
		store := newTestStore(t)
		before := store.RiskCount("737max")

		// Swap critical TIMET for low-risk ATI.
		store.ReassignSupplier("737max", "Titanium Forgings", "alt-ti-2")
		after := store.RiskCount("737max")

		assert.Equal(t, before.High-1, after.High)
		assert.Equal(t, before.Sustainability-1, after.Sustainability)
	})
}

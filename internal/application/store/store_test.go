package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coatdesk/core/internal/domain/entities"
)

func TestCollectionAddAssignsSequentialIDs(t *testing.T) {
	c := NewCollection[entities.Customer](nil)

	first := c.Add(entities.Customer{Name: "Alpha"})
	second := c.Add(entities.Customer{Name: "Beta"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 2, c.Len())
}

func TestCollectionAddAfterGapUsesMaxPlusOne(t *testing.T) {
	c := NewCollection[entities.Customer](nil)
	c.Replace([]entities.Customer{
		{ID: 1, Name: "Alpha"},
		{ID: 7, Name: "Beta"},
	})

	added := c.Add(entities.Customer{Name: "Gamma"})

	assert.Equal(t, 8, added.ID)
}

func TestCollectionAddReusesIDOfDeletedMax(t *testing.T) {
	c := NewCollection[entities.Customer](nil)
	c.Add(entities.Customer{Name: "Alpha"})
	second := c.Add(entities.Customer{Name: "Beta"})

	c.Delete(second.ID)
	readded := c.Add(entities.Customer{Name: "Gamma"})

	// Max-plus-one over the remaining records, so the freed id comes back.
	assert.Equal(t, 2, readded.ID)
}

func TestCollectionGet(t *testing.T) {
	c := NewCollection[entities.Product](nil)
	c.Replace([]entities.Product{{ID: 3, Name: "Towel Set"}})

	got, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Towel Set", got.Name)

	_, ok = c.Get(99)
	assert.False(t, ok)
}

func TestCollectionUpdateMergesAndPinsID(t *testing.T) {
	c := NewCollection[entities.Customer](nil)
	c.Replace([]entities.Customer{{ID: 1, Name: "Alpha", Email: "a@example.com"}})

	name := "Alpha Renamed"
	patch := entities.CustomerPatch{Name: &name}
	c.Update(1, func(cur entities.Customer) entities.Customer {
		merged := patch.Apply(cur)
		merged.ID = 42 // any id the merge sets must be overridden
		return merged
	})

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Alpha Renamed", got.Name)
	assert.Equal(t, "a@example.com", got.Email)

	_, ok = c.Get(42)
	assert.False(t, ok)
}

func TestCollectionUpdateMissingIDIsNoOp(t *testing.T) {
	notified := 0
	c := NewCollection[entities.Customer](func() { notified++ })
	c.Replace([]entities.Customer{{ID: 1, Name: "Alpha"}})
	notified = 0

	c.Update(99, func(cur entities.Customer) entities.Customer {
		cur.Name = "changed"
		return cur
	})

	got, _ := c.Get(1)
	assert.Equal(t, "Alpha", got.Name)
	assert.Zero(t, notified)
}

func TestCollectionDeleteMissingIDIsNoOp(t *testing.T) {
	notified := 0
	c := NewCollection[entities.Customer](func() { notified++ })
	c.Replace([]entities.Customer{{ID: 1, Name: "Alpha"}})
	notified = 0

	c.Delete(99)

	assert.Equal(t, 1, c.Len())
	assert.Zero(t, notified)
}

func TestCollectionSnapshotUntouchedByLaterMutations(t *testing.T) {
	c := NewCollection[entities.Customer](nil)
	c.Add(entities.Customer{Name: "Alpha"})

	before := c.Snapshot()
	c.Add(entities.Customer{Name: "Beta"})
	c.Update(1, func(cur entities.Customer) entities.Customer {
		cur.Name = "Alpha Renamed"
		return cur
	})
	c.Delete(1)

	require.Len(t, before, 1)
	assert.Equal(t, "Alpha", before[0].Name)
}

func TestSeriesReplaceAndSnapshot(t *testing.T) {
	s := NewSeries[entities.SalesPoint](nil)
	points := []entities.SalesPoint{{Month: "January", Sales: 1000}}

	s.Replace(points)
	before := s.Snapshot()
	s.Replace([]entities.SalesPoint{{Month: "February", Sales: 2000}})

	require.Len(t, before, 1)
	assert.Equal(t, "January", before[0].Month)
	assert.Equal(t, "February", s.Snapshot()[0].Month)
}

func TestStoreSubscribeReportsMutatedKind(t *testing.T) {
	s := New()

	var kinds []entities.Kind
	s.Subscribe(func(kind entities.Kind) { kinds = append(kinds, kind) })

	s.Customers.Add(entities.Customer{Name: "Alpha"})
	s.Sales.Replace(nil)
	s.SalesSeries.Replace([]entities.SalesPoint{{Month: "March", Sales: 500}})

	assert.Equal(t, []entities.Kind{
		entities.KindCustomers,
		entities.KindSales,
		entities.KindSalesData,
	}, kinds)
}

func TestSubscriberRepullsSnapshotDuringNotification(t *testing.T) {
	s := New()

	var seen []entities.Customer
	s.Subscribe(func(kind entities.Kind) {
		if kind == entities.KindCustomers {
			seen = s.Customers.Snapshot()
		}
	})

	s.Customers.Add(entities.Customer{Name: "Alpha"})

	require.Len(t, seen, 1)
	assert.Equal(t, "Alpha", seen[0].Name)
}

func TestSubscriberRepullsAfterEveryMutationKind(t *testing.T) {
	s := New()
	s.Customers.Replace([]entities.Customer{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}})

	var lengths []int
	s.Subscribe(func(kind entities.Kind) {
		if kind == entities.KindCustomers {
			lengths = append(lengths, s.Customers.Len())
		}
	})

	s.Customers.Update(1, func(c entities.Customer) entities.Customer {
		c.Name = "Alpha Renamed"
		return c
	})
	s.Customers.Delete(2)
	s.Customers.Add(entities.Customer{Name: "Gamma"})

	assert.Equal(t, []int{2, 1, 2}, lengths)

	got, ok := s.Customers.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Alpha Renamed", got.Name)
}

func TestOnChangeReadsSeriesBeingReplaced(t *testing.T) {
	var series *Series[entities.SalesPoint]
	var seen []entities.SalesPoint
	series = NewSeries[entities.SalesPoint](func() {
		seen = series.Snapshot()
	})

	series.Replace([]entities.SalesPoint{{Month: "April", Sales: 900}})

	require.Len(t, seen, 1)
	assert.Equal(t, "April", seen[0].Month)
}

func TestStoreSubscribeMultipleListeners(t *testing.T) {
	s := New()

	first, second := 0, 0
	s.Subscribe(func(entities.Kind) { first++ })
	s.Subscribe(func(entities.Kind) { second++ })

	s.Products.Add(entities.Product{Name: "Booster Spray"})

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

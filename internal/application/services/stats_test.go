package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coatdesk/core/internal/domain/entities"
)

func TestTotalRevenue(t *testing.T) {
	sales := []entities.Sale{{Total: 687}, {Total: 280}}
	assert.Equal(t, 967.0, TotalRevenue(sales))
	assert.Equal(t, 0.0, TotalRevenue(nil))
}

func TestRevenueByCustomerType(t *testing.T) {
	customers := []entities.Customer{
		{ID: 1, Type: entities.TypeAuto},
		{ID: 2, Type: entities.TypeMoto},
	}
	sales := []entities.Sale{
		{CustomerID: 1, Total: 100},
		{CustomerID: 1, Total: 50},
		{CustomerID: 2, Total: 80},
		{CustomerID: 99, Total: 1000}, // unresolvable customer contributes nothing
	}

	revenue := RevenueByCustomerType(customers, sales)

	assert.Equal(t, 150.0, revenue[entities.TypeAuto])
	assert.Equal(t, 80.0, revenue[entities.TypeMoto])
	assert.Equal(t, 0.0, revenue[entities.TypeYacht])
	assert.Equal(t, 0.0, revenue[entities.TypeAviation])
}

func TestTopServiceByRevenueSumsAcrossSales(t *testing.T) {
	sales := []entities.Sale{
		{CustomerID: 1, Total: 200, Items: []entities.SaleItem{
			{Type: entities.ItemService, Name: "X", Price: 100, Quantity: 2},
		}},
		{CustomerID: 2, Total: 50, Items: []entities.SaleItem{
			{Type: entities.ItemService, Name: "X", Price: 50, Quantity: 1},
		}},
	}

	top := TopServiceByRevenue(sales)

	assert.Equal(t, "X", top.Name)
	assert.Equal(t, 250.0, top.Revenue)
}

func TestTopServiceByRevenueIgnoresProducts(t *testing.T) {
	sales := []entities.Sale{
		{Items: []entities.SaleItem{
			{Type: entities.ItemProduct, Name: "Shampoo", Price: 500, Quantity: 3},
			{Type: entities.ItemService, Name: "Polish", Price: 80, Quantity: 1},
		}},
	}

	assert.Equal(t, "Polish", TopServiceByRevenue(sales).Name)
	assert.Equal(t, "Shampoo", TopProductByRevenue(sales).Name)
	assert.Equal(t, 1500.0, TopProductByRevenue(sales).Revenue)
}

func TestTopServiceByRevenueEmptyYieldsSentinel(t *testing.T) {
	top := TopServiceByRevenue(nil)
	assert.Equal(t, "N/A", top.Name)
	assert.Equal(t, 0.0, top.Revenue)

	// Sales without any service items land on the same sentinel.
	sales := []entities.Sale{{Items: []entities.SaleItem{
		{Type: entities.ItemProduct, Name: "Towels", Price: 22, Quantity: 1},
	}}}
	assert.Equal(t, "N/A", TopServiceByRevenue(sales).Name)
}

func TestTopServiceByRevenueTieGoesToFirstEncountered(t *testing.T) {
	sales := []entities.Sale{
		{Items: []entities.SaleItem{{Type: entities.ItemService, Name: "First", Price: 100, Quantity: 1}}},
		{Items: []entities.SaleItem{{Type: entities.ItemService, Name: "Second", Price: 100, Quantity: 1}}},
	}

	assert.Equal(t, "First", TopServiceByRevenue(sales).Name)
}

func TestTopStaffByRevenue(t *testing.T) {
	staff := []entities.Staff{
		{ID: 1, Name: "Nikos"},
		{ID: 2, Name: "Katerina"},
	}
	appointments := []entities.Appointment{
		{ID: 1, StaffID: 1, CustomerID: 10, Date: "2024-05-20", Status: entities.AppointmentCompleted},
		{ID: 2, StaffID: 2, CustomerID: 11, Date: "2024-05-21", Status: entities.AppointmentCompleted},
		{ID: 3, StaffID: 2, CustomerID: 12, Date: "2024-05-22", Status: entities.AppointmentScheduled},
	}
	sales := []entities.Sale{
		{CustomerID: 10, Date: "2024-05-20", Total: 650},
		{CustomerID: 11, Date: "2024-05-21", Total: 180},
		{CustomerID: 11, Date: "2024-06-01", Total: 400}, // different day, not attributed
	}

	top := TopStaffByRevenue(staff, appointments, sales)

	assert.Equal(t, 1, top.StaffID)
	assert.Equal(t, "Nikos", top.Name)
	assert.Equal(t, 650.0, top.Revenue)
	assert.Equal(t, 1, top.Completed)
}

func TestTopStaffByRevenueDoubleCountsSameDaySales(t *testing.T) {
	staff := []entities.Staff{{ID: 1, Name: "Nikos"}}
	appointments := []entities.Appointment{
		{ID: 1, StaffID: 1, CustomerID: 10, Date: "2024-05-20", Status: entities.AppointmentCompleted},
		{ID: 2, StaffID: 1, CustomerID: 10, Date: "2024-05-20", Status: entities.AppointmentCompleted},
	}
	sales := []entities.Sale{{CustomerID: 10, Date: "2024-05-20", Total: 100}}

	top := TopStaffByRevenue(staff, appointments, sales)

	// Attribution is per completed appointment, so the one sale counts twice.
	assert.Equal(t, 200.0, top.Revenue)
	assert.Equal(t, 2, top.Completed)
}

func TestTopStaffByRevenueEmpty(t *testing.T) {
	top := TopStaffByRevenue(nil, nil, nil)
	assert.Equal(t, "N/A", top.Name)
	assert.Equal(t, 0.0, top.Revenue)
}

func TestGrowth(t *testing.T) {
	assert.Equal(t, 50.0, Growth(150, 100))
	assert.Equal(t, -25.0, Growth(75, 100))
	assert.Equal(t, 0.0, Growth(150, 0))
	assert.Equal(t, 0.0, Growth(0, 0))
}

func TestMonthlySalesGrowth(t *testing.T) {
	series := []entities.SalesPoint{
		{Month: "October", Sales: 20000},
		{Month: "November", Sales: 25000},
	}
	assert.Equal(t, 25.0, MonthlySalesGrowth(series))

	assert.Equal(t, 0.0, MonthlySalesGrowth(nil))
	assert.Equal(t, 0.0, MonthlySalesGrowth(series[:1]))
}

func TestWeeklyAppointmentsGrowth(t *testing.T) {
	series := make([]entities.AppointmentsPoint, 0, 14)
	for i := 0; i < 7; i++ {
		series = append(series, entities.AppointmentsPoint{Day: "prev", Appointments: 4})
	}
	for i := 0; i < 7; i++ {
		series = append(series, entities.AppointmentsPoint{Day: "cur", Appointments: 6})
	}

	assert.Equal(t, 50.0, WeeklyAppointmentsGrowth(series))
}

func TestWeeklyAppointmentsGrowthShortSeries(t *testing.T) {
	// A single week has no previous window, so growth is zero by convention.
	series := []entities.AppointmentsPoint{
		{Day: "Monday", Appointments: 5},
		{Day: "Tuesday", Appointments: 6},
	}
	assert.Equal(t, 0.0, WeeklyAppointmentsGrowth(series))
}

func TestUpcomingAppointmentsCount(t *testing.T) {
	appointments := []entities.Appointment{
		{Status: entities.AppointmentScheduled},
		{Status: entities.AppointmentCompleted},
		{Status: entities.AppointmentScheduled},
		{Status: entities.AppointmentCancelled},
	}
	assert.Equal(t, 2, UpcomingAppointmentsCount(appointments))
}

func TestLowStockCount(t *testing.T) {
	products := []entities.Product{
		{Stock: 0},
		{Stock: 10},
		{Stock: 11},
	}
	assert.Equal(t, 2, LowStockCount(products, 10))
}

func TestCustomerCountByType(t *testing.T) {
	customers := []entities.Customer{
		{Type: entities.TypeAuto},
		{Type: entities.TypeAuto},
		{Type: entities.TypeYacht},
		{Type: entities.CustomerType("BOGUS")},
	}

	counts := CustomerCountByType(customers)

	assert.Equal(t, 2, counts[entities.TypeAuto])
	assert.Equal(t, 1, counts[entities.TypeYacht])
	assert.Equal(t, 0, counts[entities.TypeMoto])
	assert.Equal(t, 0, counts[entities.TypeAviation])
}

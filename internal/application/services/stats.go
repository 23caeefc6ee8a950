package services

import (
	"github.com/coatdesk/core/internal/application/store"
	"github.com/coatdesk/core/internal/domain/entities"
)

// Aggregation functions. All of them are stateless transforms over a
// snapshot of the in-memory collections, safe to recompute on every render.

// Snapshot is a point-in-time view of the collections the aggregations
// consume.
type Snapshot struct {
	Customers          []entities.Customer
	Staff              []entities.Staff
	Products           []entities.Product
	Appointments       []entities.Appointment
	Sales              []entities.Sale
	SalesSeries        []entities.SalesPoint
	AppointmentsSeries []entities.AppointmentsPoint
}

// SnapshotOf captures the current state of a store.
func SnapshotOf(s *store.Store) Snapshot {
	return Snapshot{
		Customers:          s.Customers.Snapshot(),
		Staff:              s.Staff.Snapshot(),
		Products:           s.Products.Snapshot(),
		Appointments:       s.Appointments.Snapshot(),
		Sales:              s.Sales.Snapshot(),
		SalesSeries:        s.SalesSeries.Snapshot(),
		AppointmentsSeries: s.AppointmentsSeries.Snapshot(),
	}
}

// RevenueEntry names a service or product together with the revenue it
// brought in.
type RevenueEntry struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// StaffPerformance summarizes one staff member's completed appointments and
// the revenue attributed to them.
type StaffPerformance struct {
	StaffID   int     `json:"staffId"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Completed int     `json:"completed"`
}

// TotalRevenue sums all sale totals.
func TotalRevenue(sales []entities.Sale) float64 {
	var total float64
	for _, sale := range sales {
		total += sale.Total
	}
	return total
}

// RevenueByCustomerType partitions sale totals by the type of the
// referenced customer. A sale whose customer cannot be resolved contributes
// nothing.
func RevenueByCustomerType(customers []entities.Customer, sales []entities.Sale) map[entities.CustomerType]float64 {
	byID := make(map[int]entities.CustomerType, len(customers))
	for _, customer := range customers {
		byID[customer.ID] = customer.Type
	}

	revenue := make(map[entities.CustomerType]float64, 4)
	for _, t := range entities.CustomerTypes() {
		revenue[t] = 0
	}
	for _, sale := range sales {
		t, ok := byID[sale.CustomerID]
		if !ok || !t.IsValid() {
			continue
		}
		revenue[t] += sale.Total
	}
	return revenue
}

// TopServiceByRevenue returns the service item with the highest summed
// price x quantity across all sales. Ties go to the first-encountered name;
// no service items yield {"N/A", 0}.
func TopServiceByRevenue(sales []entities.Sale) RevenueEntry {
	return topItemByRevenue(sales, entities.ItemService)
}

// TopProductByRevenue is the product-partition counterpart of
// TopServiceByRevenue.
func TopProductByRevenue(sales []entities.Sale) RevenueEntry {
	return topItemByRevenue(sales, entities.ItemProduct)
}

func topItemByRevenue(sales []entities.Sale, itemType entities.SaleItemType) RevenueEntry {
	revenue := make(map[string]float64)
	var order []string

	for _, sale := range sales {
		for _, item := range sale.Items {
			if item.Type != itemType {
				continue
			}
			if _, seen := revenue[item.Name]; !seen {
				order = append(order, item.Name)
			}
			revenue[item.Name] += item.Revenue()
		}
	}

	top := RevenueEntry{Name: "N/A", Revenue: 0}
	found := false
	for _, name := range order {
		// Strictly greater keeps the first-encountered name on ties.
		if !found || revenue[name] > top.Revenue {
			top = RevenueEntry{Name: name, Revenue: revenue[name]}
			found = true
		}
	}
	return top
}

// TopStaffByRevenue ranks staff by revenue attributed from completed
// appointments. Revenue attribution is an approximation, not a referential
// join: every sale by the appointment's customer on the appointment's
// calendar day counts, so a customer with several same-day sales inflates
// the figure.
func TopStaffByRevenue(staff []entities.Staff, appointments []entities.Appointment, sales []entities.Sale) StaffPerformance {
	type perf struct {
		revenue   float64
		completed int
	}
	performance := make(map[int]*perf)
	var order []int

	for _, appt := range appointments {
		p, seen := performance[appt.StaffID]
		if !seen {
			p = &perf{}
			performance[appt.StaffID] = p
			order = append(order, appt.StaffID)
		}

		if appt.Status != entities.AppointmentCompleted {
			continue
		}
		p.completed++

		for _, sale := range sales {
			if sale.CustomerID == appt.CustomerID && entities.SameCalendarDay(sale.Date, appt.Date) {
				p.revenue += sale.Total
			}
		}
	}

	top := StaffPerformance{StaffID: 0, Name: "N/A"}
	found := false
	for _, staffID := range order {
		p := performance[staffID]
		if !found || p.revenue > top.Revenue {
			top = StaffPerformance{StaffID: staffID, Name: staffName(staff, staffID), Revenue: p.revenue, Completed: p.completed}
			found = true
		}
	}
	return top
}

func staffName(staff []entities.Staff, id int) string {
	for _, member := range staff {
		if member.ID == id {
			return member.Name
		}
	}
	return "Unknown"
}

// Growth returns the percentage change from previous to current. A zero
// previous value yields 0 by convention rather than Inf or NaN.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// MonthlySalesGrowth compares the last point of the monthly series against
// the one before it.
func MonthlySalesGrowth(series []entities.SalesPoint) float64 {
	if len(series) < 2 {
		return 0
	}
	current := series[len(series)-1].Sales
	previous := series[len(series)-2].Sales
	return Growth(current, previous)
}

// WeeklyAppointmentsGrowth compares the sum of the last seven points
// against the seven before them.
func WeeklyAppointmentsGrowth(series []entities.AppointmentsPoint) float64 {
	current := sumAppointments(tail(series, 7))
	previous := sumAppointments(tail(drop(series, 7), 7))
	return Growth(float64(current), float64(previous))
}

// tail returns up to the last n elements.
func tail[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// drop returns the slice without its last n elements.
func drop[T any](s []T, n int) []T {
	if len(s) <= n {
		return nil
	}
	return s[:len(s)-n]
}

func sumAppointments(points []entities.AppointmentsPoint) int {
	var total int
	for _, p := range points {
		total += p.Appointments
	}
	return total
}

// UpcomingAppointmentsCount counts appointments that are still scheduled.
func UpcomingAppointmentsCount(appointments []entities.Appointment) int {
	var count int
	for _, appt := range appointments {
		if appt.IsUpcoming() {
			count++
		}
	}
	return count
}

// LowStockCount counts products at or below the given stock threshold.
func LowStockCount(products []entities.Product, threshold int) int {
	var count int
	for _, product := range products {
		if product.Stock <= threshold {
			count++
		}
	}
	return count
}

// CustomerCountByType counts customers per business category.
func CustomerCountByType(customers []entities.Customer) map[entities.CustomerType]int {
	counts := make(map[entities.CustomerType]int, 4)
	for _, t := range entities.CustomerTypes() {
		counts[t] = 0
	}
	for _, customer := range customers {
		if customer.Type.IsValid() {
			counts[customer.Type]++
		}
	}
	return counts
}

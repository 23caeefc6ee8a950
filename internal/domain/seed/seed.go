// Package seed provides the default collections used whenever a dataset's
// backing file does not exist yet, and the generators for the precomputed
// chart series.
package seed

import "github.com/coatdesk/core/internal/domain/entities"

// Customers returns the default customer collection.
func Customers() []entities.Customer {
	return []entities.Customer{
		{ID: 1, Name: "Giorgos Papadopoulos", Email: "gpapad@example.com", Phone: "6944123456", Type: entities.TypeAuto, Vehicle: "BMW X5 2020", DateAdded: "2023-01-15"},
		{ID: 2, Name: "Maria Konstantinou", Email: "mariakonst@example.com", Phone: "6977654321", Type: entities.TypeMoto, Vehicle: "Honda CBR 650R", DateAdded: "2023-02-20"},
		{ID: 3, Name: "Dimitris Antoniou", Email: "dimant@example.com", Phone: "6933222111", Type: entities.TypeYacht, Vehicle: "Oceanic 45ft", DateAdded: "2023-03-10"},
		{ID: 4, Name: "Eleni Georgiou", Email: "elenigeo@example.com", Phone: "6955443322", Type: entities.TypeAuto, Vehicle: "Mercedes C200 2022", DateAdded: "2023-04-05"},
	}
}

// Staff returns the default staff collection.
func Staff() []entities.Staff {
	return []entities.Staff{
		{ID: 1, Name: "Nikos Alexiou", Position: "Senior Detailer", Email: "nalexiou@coatdesk.example", Phone: "6911111111", StartDate: "2021-06-01",
			Stats: entities.StaffStats{Appointments: 48, Completed: 45, Sales: 31}},
		{ID: 2, Name: "Katerina Vasileiou", Position: "Coating Specialist", Email: "kvasileiou@coatdesk.example", Phone: "6922222222", StartDate: "2022-02-14",
			Stats: entities.StaffStats{Appointments: 36, Completed: 33, Sales: 22}},
		{ID: 3, Name: "Stavros Mitsotakis", Position: "Apprentice", Email: "smitso@coatdesk.example", Phone: "6933333333", StartDate: "2023-09-01",
			Stats: entities.StaffStats{Appointments: 12, Completed: 10, Sales: 4}},
	}
}

// Services returns the default service catalog.
func Services() []entities.Service {
	return []entities.Service{
		{ID: 1, Name: "Ceramic Coating Premium", Description: "Full-body ceramic coating, 5 year warranty", Price: 650, Duration: 480, Category: entities.TypeAuto},
		{ID: 2, Name: "Paint Correction", Description: "Two-stage machine polish", Price: 280, Duration: 300, Category: entities.TypeAuto},
		{ID: 3, Name: "Moto Tank & Fairing Coating", Description: "Ceramic protection for tank and fairings", Price: 180, Duration: 180, Category: entities.TypeMoto},
		{ID: 4, Name: "Hull Gelcoat Protection", Description: "Marine-grade coating for hulls up to 50ft", Price: 2400, Duration: 960, Category: entities.TypeYacht},
		{ID: 5, Name: "Fuselage Sealant", Description: "Aviation surface sealant application", Price: 3800, Duration: 1200, Category: entities.TypeAviation},
	}
}

// Products returns the default product catalog.
func Products() []entities.Product {
	return []entities.Product{
		{ID: 1, Name: "Maintenance Shampoo 500ml", Description: "pH neutral wash for coated surfaces", Price: 18.5, Stock: 42, Category: "Washing"},
		{ID: 2, Name: "Ceramic Booster Spray", Description: "Top-up spray sealant", Price: 34, Stock: 25, Category: "Protection"},
		{ID: 3, Name: "Microfiber Towel Set", Description: "Pack of 5 edgeless towels", Price: 22, Stock: 60, Category: "Accessories"},
		{ID: 4, Name: "Interior Detailer 250ml", Description: "Quick interior cleaner", Price: 14, Stock: 8, Category: "Interior"},
	}
}

// Appointments returns the default appointment collection.
func Appointments() []entities.Appointment {
	return []entities.Appointment{
		{ID: 1, CustomerID: 1, CustomerName: "Giorgos Papadopoulos", StaffID: 1, StaffName: "Nikos Alexiou",
			Service: "Ceramic Coating Premium", Date: "2024-05-20", Time: "09:00", Status: entities.AppointmentCompleted, Type: entities.TypeAuto},
		{ID: 2, CustomerID: 2, CustomerName: "Maria Konstantinou", StaffID: 2, StaffName: "Katerina Vasileiou",
			Service: "Moto Tank & Fairing Coating", Date: "2024-05-22", Time: "11:30", Status: entities.AppointmentScheduled, Type: entities.TypeMoto},
		{ID: 3, CustomerID: 3, CustomerName: "Dimitris Antoniou", StaffID: 1, StaffName: "Nikos Alexiou",
			Service: "Hull Gelcoat Protection", Date: "2024-06-03", Time: "08:00", Status: entities.AppointmentScheduled, Type: entities.TypeYacht,
			Notes: "Marina access arranged with the harbor office"},
	}
}

// Sales returns the default sale collection.
func Sales() []entities.Sale {
	return []entities.Sale{
		{ID: 1, CustomerID: 1, CustomerName: "Giorgos Papadopoulos",
			Items: []entities.SaleItem{
				{Type: entities.ItemService, Name: "Ceramic Coating Premium", Price: 650, Quantity: 1},
				{Type: entities.ItemProduct, Name: "Maintenance Shampoo 500ml", Price: 18.5, Quantity: 2},
			},
			Total: 687, Date: "2024-05-20", PaymentMethod: entities.PaymentCard},
		{ID: 2, CustomerID: 4, CustomerName: "Eleni Georgiou",
			Items: []entities.SaleItem{
				{Type: entities.ItemService, Name: "Paint Correction", Price: 280, Quantity: 1},
			},
			Total: 280, Date: "2024-05-18", PaymentMethod: entities.PaymentCash},
	}
}

// MonthlySales generates twelve months of chart data with a steady upward
// trend. The series is independent from the Sale records.
func MonthlySales() []entities.SalesPoint {
	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	points := make([]entities.SalesPoint, 0, len(months))
	for i, month := range months {
		// Base trend plus a small seasonal swing.
		base := 15000 + i*2000
		swing := (i%3 - 1) * 1200
		points = append(points, entities.SalesPoint{Month: month, Sales: float64(base + swing)})
	}
	return points
}

// WeeklyAppointments generates one week of chart data. Weekdays carry the
// load, Saturday runs a short shift and Sunday is closed.
func WeeklyAppointments() []entities.AppointmentsPoint {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	points := make([]entities.AppointmentsPoint, 0, len(days))
	for i, day := range days {
		base := 5
		switch day {
		case "Saturday":
			base = 3
		case "Sunday":
			base = 0
		}
		points = append(points, entities.AppointmentsPoint{Day: day, Appointments: base + i%2})
	}
	return points
}

// Collection returns the seed collection for a dataset kind as an untyped
// value, ready to be marshaled into the backing file.
func Collection(kind entities.Kind) (any, bool) {
	switch kind {
	case entities.KindCustomers:
		return Customers(), true
	case entities.KindStaff:
		return Staff(), true
	case entities.KindServices:
		return Services(), true
	case entities.KindProducts:
		return Products(), true
	case entities.KindAppointments:
		return Appointments(), true
	case entities.KindSales:
		return Sales(), true
	case entities.KindSalesData:
		return MonthlySales(), true
	case entities.KindAppointmentsData:
		return WeeklyAppointments(), true
	default:
		return nil, false
	}
}

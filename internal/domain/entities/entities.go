package entities

import (
	"errors"
	"strings"
	"time"
)

// Common errors
var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrInvalidDataset      = errors.New("payload must contain a data array")
	ErrUnknownKind         = errors.New("unknown dataset kind")
	ErrConfigNotFound      = errors.New("twilio configuration not found")
	ErrIncompleteConfig    = errors.New("twilio configuration is incomplete")
	ErrMissingRecipient    = errors.New("phone number and message are required")
	ErrProviderUnavailable = errors.New("sms provider unavailable")
)

// Kind identifies one of the flat-file dataset collections.
type Kind string

const (
	KindCustomers        Kind = "customers"
	KindStaff            Kind = "staff"
	KindServices         Kind = "services"
	KindProducts         Kind = "products"
	KindAppointments     Kind = "appointments"
	KindSales            Kind = "sales"
	KindSalesData        Kind = "sales-data"
	KindAppointmentsData Kind = "appointments-data"
)

// Kinds lists every dataset kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindCustomers,
		KindStaff,
		KindServices,
		KindProducts,
		KindAppointments,
		KindSales,
		KindSalesData,
		KindAppointmentsData,
	}
}

// Slug returns the URL path segment for the kind's endpoints.
func (k Kind) Slug() string {
	return string(k)
}

// FileName returns the backing JSON file name for the kind. The chart
// series keep their historical camel-case file names.
func (k Kind) FileName() string {
	switch k {
	case KindSalesData:
		return "salesData.json"
	case KindAppointmentsData:
		return "appointmentsData.json"
	default:
		return string(k) + ".json"
	}
}

// DisplayName returns a human readable name used in response messages.
func (k Kind) DisplayName() string {
	return strings.ReplaceAll(string(k), "-", " ")
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCustomers, KindStaff, KindServices, KindProducts,
		KindAppointments, KindSales, KindSalesData, KindAppointmentsData:
		return true
	default:
		return false
	}
}

// CustomerType partitions the business domain by vehicle class. It doubles
// as the service category.
type CustomerType string

const (
	TypeAuto     CustomerType = "AUTO"
	TypeMoto     CustomerType = "MOTO"
	TypeYacht    CustomerType = "YACHT"
	TypeAviation CustomerType = "AVIATION"
)

// CustomerTypes lists the categories in their display order.
func CustomerTypes() []CustomerType {
	return []CustomerType{TypeAuto, TypeMoto, TypeYacht, TypeAviation}
}

func (t CustomerType) IsValid() bool {
	switch t {
	case TypeAuto, TypeMoto, TypeYacht, TypeAviation:
		return true
	default:
		return false
	}
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	default:
		return false
	}
}

type SaleItemType string

const (
	ItemService SaleItemType = "SERVICE"
	ItemProduct SaleItemType = "PRODUCT"
)

func (t SaleItemType) IsValid() bool {
	return t == ItemService || t == ItemProduct
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	default:
		return false
	}
}

// Customer represents a client of the detailing studio. JSON field names
// follow the persisted file format.
type Customer struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Type      CustomerType `json:"type"`
	Vehicle   string       `json:"vehicle,omitempty"`
	DateAdded string       `json:"dateAdded"`
}

func (c Customer) EntityID() int                { return c.ID }
func (c Customer) WithEntityID(id int) Customer { c.ID = id; return c }

// StaffStats carries denormalized per-member counters. They are maintained
// by callers, never recomputed from the appointment or sale collections.
type StaffStats struct {
	Appointments int `json:"appointments"`
	Completed    int `json:"completed"`
	Sales        int `json:"sales"`
}

// Staff represents an employee.
type Staff struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	StartDate string     `json:"startDate"`
	Stats     StaffStats `json:"stats"`
}

func (s Staff) EntityID() int             { return s.ID }
func (s Staff) WithEntityID(id int) Staff { s.ID = id; return s }

// Service is a catalog entry for a coating or detailing service.
type Service struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Duration    int          `json:"duration"` // minutes
	Category    CustomerType `json:"category"`
}

func (s Service) EntityID() int               { return s.ID }
func (s Service) WithEntityID(id int) Service { s.ID = id; return s }

// Product is a catalog entry for a retail product.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}

func (p Product) EntityID() int               { return p.ID }
func (p Product) WithEntityID(id int) Product { p.ID = id; return p }

// Appointment represents a scheduled visit. CustomerName and StaffName are
// denormalized display copies and can drift if the referenced record is
// later renamed.
type Appointment struct {
	ID           int               `json:"id"`
	CustomerID   int               `json:"customerId"`
	CustomerName string            `json:"customerName"`
	StaffID      int               `json:"staffId"`
	StaffName    string            `json:"staffName"`
	Service      string            `json:"service"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Status       AppointmentStatus `json:"status"`
	Type         CustomerType      `json:"type"`
	Notes        string            `json:"notes,omitempty"`
}

func (a Appointment) EntityID() int                   { return a.ID }
func (a Appointment) WithEntityID(id int) Appointment { a.ID = id; return a }

// IsUpcoming reports whether the appointment is still scheduled.
func (a Appointment) IsUpcoming() bool {
	return a.Status == AppointmentScheduled
}

// SaleItem is a single sold line within a Sale.
type SaleItem struct {
	Type     SaleItemType `json:"type"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Quantity int          `json:"quantity"`
}

// Revenue returns the line total.
func (i SaleItem) Revenue() float64 {
	return i.Price * float64(i.Quantity)
}

// Sale represents a completed transaction. Total is stored as given by the
// caller and is not re-derived from the items.
type Sale struct {
	ID            int           `json:"id"`
	CustomerID    int           `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	Items         []SaleItem    `json:"items"`
	Total         float64       `json:"total"`
	Date          string        `json:"date"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

func (s Sale) EntityID() int            { return s.ID }
func (s Sale) WithEntityID(id int) Sale { s.ID = id; return s }

// ItemsTotal sums the line revenues. Useful to audit drift against Total.
func (s Sale) ItemsTotal() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Revenue()
	}
	return total
}

// SalesPoint is one month of the precomputed sales chart series. It is
// stored independently from the Sale records.
type SalesPoint struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// AppointmentsPoint is one day of the precomputed weekly appointments
// chart series.
type AppointmentsPoint struct {
	Day          string `json:"day"`
	Appointments int    `json:"appointments"`
}

// TwilioConfig holds the SMS provider credentials.
type TwilioConfig struct {
	AccountSID  string `json:"accountSid"`
	AuthToken   string `json:"authToken"`
	PhoneNumber string `json:"phoneNumber"`
}

// IsComplete reports whether all three credential fields are present.
func (c TwilioConfig) IsComplete() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.PhoneNumber != ""
}

// SameCalendarDay compares two date strings on the calendar day only.
// Accepted layouts are plain dates and RFC 3339 timestamps; unparseable
// values fall back to exact string comparison.
func SameCalendarDay(a, b string) bool {
	ta, errA := parseDate(a)
	tb, errB := parseDate(b)
	if errA != nil || errB != nil {
		return a == b
	}
	ya, ma, da := ta.Date()
	yb, mb, db := tb.Date()
	return ya == yb && ma == mb && da == db
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format: " + s)
}

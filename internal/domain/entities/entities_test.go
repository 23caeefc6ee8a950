package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFileNames(t *testing.T) {
	assert.Equal(t, "customers.json", KindCustomers.FileName())
	assert.Equal(t, "appointments.json", KindAppointments.FileName())
	assert.Equal(t, "salesData.json", KindSalesData.FileName())
	assert.Equal(t, "appointmentsData.json", KindAppointmentsData.FileName())
}

func TestKindDisplayName(t *testing.T) {
	assert.Equal(t, "customers", KindCustomers.DisplayName())
	assert.Equal(t, "sales data", KindSalesData.DisplayName())
	assert.Equal(t, "appointments data", KindAppointmentsData.DisplayName())
}

func TestKindIsValid(t *testing.T) {
	for _, kind := range Kinds() {
		assert.True(t, kind.IsValid(), kind)
	}
	assert.False(t, Kind("bogus").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestCustomerJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(Customer{ID: 1, Name: "Alpha", Type: TypeAuto, DateAdded: "2023-01-15"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "dateAdded")
	assert.NotContains(t, fields, "vehicle") // omitted when empty
}

func TestSaleJSONFieldNames(t *testing.T) {
	sale := Sale{
		ID:            1,
		CustomerID:    2,
		CustomerName:  "Alpha",
		Items:         []SaleItem{{Type: ItemService, Name: "Polish", Price: 80, Quantity: 1}},
		Total:         80,
		PaymentMethod: PaymentCard,
	}
	raw, err := json.Marshal(sale)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "customerId")
	assert.Contains(t, fields, "customerName")
	assert.Contains(t, fields, "paymentMethod")
}

func TestTwilioConfigJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(TwilioConfig{AccountSID: "AC1", AuthToken: "t", PhoneNumber: "+1"})
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, map[string]string{
		"accountSid":  "AC1",
		"authToken":   "t",
		"phoneNumber": "+1",
	}, fields)
}

func TestTwilioConfigIsComplete(t *testing.T) {
	complete := TwilioConfig{AccountSID: "AC1", AuthToken: "t", PhoneNumber: "+1"}
	assert.True(t, complete.IsComplete())

	assert.False(t, TwilioConfig{}.IsComplete())
	assert.False(t, TwilioConfig{AccountSID: "AC1", AuthToken: "t"}.IsComplete())
	assert.False(t, TwilioConfig{AccountSID: "AC1", PhoneNumber: "+1"}.IsComplete())
	assert.False(t, TwilioConfig{AuthToken: "t", PhoneNumber: "+1"}.IsComplete())
}

func TestSaleItemRevenue(t *testing.T) {
	item := SaleItem{Price: 100, Quantity: 2}
	assert.Equal(t, 200.0, item.Revenue())
}

func TestSaleItemsTotal(t *testing.T) {
	sale := Sale{
		Items: []SaleItem{
			{Price: 100, Quantity: 2},
			{Price: 18.5, Quantity: 2},
		},
		Total: 250, // stored total is independent from the line sum
	}
	assert.Equal(t, 237.0, sale.ItemsTotal())
}

func TestWithEntityIDReturnsCopy(t *testing.T) {
	original := Customer{ID: 1, Name: "Alpha"}
	renumbered := original.WithEntityID(5)

	assert.Equal(t, 1, original.ID)
	assert.Equal(t, 5, renumbered.ID)
	assert.Equal(t, 5, renumbered.EntityID())
}

func TestSameCalendarDay(t *testing.T) {
	assert.True(t, SameCalendarDay("2024-05-20", "2024-05-20"))
	assert.True(t, SameCalendarDay("2024-05-20", "2024-05-20T14:30:00Z"))
	assert.True(t, SameCalendarDay("2024-05-20 09:00", "2024-05-20"))
	assert.False(t, SameCalendarDay("2024-05-20", "2024-05-21"))
	assert.False(t, SameCalendarDay("2024-05-20", "2023-05-20"))

	// Unparseable dates fall back to exact string equality.
	assert.True(t, SameCalendarDay("next tuesday", "next tuesday"))
	assert.False(t, SameCalendarDay("next tuesday", "2024-05-20"))
}

func TestCustomerPatchApply(t *testing.T) {
	customer := Customer{ID: 1, Name: "Alpha", Email: "a@example.com", Type: TypeAuto}

	name := "Alpha Renamed"
	vehicle := "Audi A4"
	patched := CustomerPatch{Name: &name, Vehicle: &vehicle}.Apply(customer)

	assert.Equal(t, "Alpha Renamed", patched.Name)
	assert.Equal(t, "Audi A4", patched.Vehicle)
	assert.Equal(t, "a@example.com", patched.Email)
	assert.Equal(t, TypeAuto, patched.Type)
	assert.Equal(t, 1, patched.ID)
}

func TestAppointmentPatchApply(t *testing.T) {
	appt := Appointment{ID: 2, Status: AppointmentScheduled, Date: "2024-05-22", Time: "11:30"}

	status := AppointmentCompleted
	patched := AppointmentPatch{Status: &status}.Apply(appt)

	assert.Equal(t, AppointmentCompleted, patched.Status)
	assert.Equal(t, "2024-05-22", patched.Date)
	assert.False(t, patched.IsUpcoming())
}

func TestEmptyPatchIsIdentity(t *testing.T) {
	product := Product{ID: 3, Name: "Booster", Price: 34, Stock: 25, Category: "Protection"}

	assert.Equal(t, product, ProductPatch{}.Apply(product))
}

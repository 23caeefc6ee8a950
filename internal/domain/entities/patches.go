package entities

// Patch types carry partial updates. Nil fields are left untouched when the
// patch is applied, mirroring the partial-field merge the update endpoints
// and the in-memory store expose. No referential checks are performed.

type CustomerPatch struct {
	Name      *string       `json:"name,omitempty"`
	Email     *string       `json:"email,omitempty"`
	Phone     *string       `json:"phone,omitempty"`
	Type      *CustomerType `json:"type,omitempty"`
	Vehicle   *string       `json:"vehicle,omitempty"`
	DateAdded *string       `json:"dateAdded,omitempty"`
}

func (p CustomerPatch) Apply(c Customer) Customer {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Vehicle != nil {
		c.Vehicle = *p.Vehicle
	}
	if p.DateAdded != nil {
		c.DateAdded = *p.DateAdded
	}
	return c
}

type StaffPatch struct {
	Name      *string     `json:"name,omitempty"`
	Position  *string     `json:"position,omitempty"`
	Email     *string     `json:"email,omitempty"`
	Phone     *string     `json:"phone,omitempty"`
	StartDate *string     `json:"startDate,omitempty"`
	Stats     *StaffStats `json:"stats,omitempty"`
}

func (p StaffPatch) Apply(s Staff) Staff {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Position != nil {
		s.Position = *p.Position
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.StartDate != nil {
		s.StartDate = *p.StartDate
	}
	if p.Stats != nil {
		s.Stats = *p.Stats
	}
	return s
}

type ServicePatch struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Price       *float64      `json:"price,omitempty"`
	Duration    *int          `json:"duration,omitempty"`
	Category    *CustomerType `json:"category,omitempty"`
}

func (p ServicePatch) Apply(s Service) Service {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	return s
}

type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

func (p ProductPatch) Apply(pr Product) Product {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Stock != nil {
		pr.Stock = *p.Stock
	}
	if p.Category != nil {
		pr.Category = *p.Category
	}
	return pr
}

type AppointmentPatch struct {
	CustomerID   *int               `json:"customerId,omitempty"`
	CustomerName *string            `json:"customerName,omitempty"`
	StaffID      *int               `json:"staffId,omitempty"`
	StaffName    *string            `json:"staffName,omitempty"`
	Service      *string            `json:"service,omitempty"`
	Date         *string            `json:"date,omitempty"`
	Time         *string            `json:"time,omitempty"`
	Status       *AppointmentStatus `json:"status,omitempty"`
	Type         *CustomerType      `json:"type,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
}

func (p AppointmentPatch) Apply(a Appointment) Appointment {
	if p.CustomerID != nil {
		a.CustomerID = *p.CustomerID
	}
	if p.CustomerName != nil {
		a.CustomerName = *p.CustomerName
	}
	if p.StaffID != nil {
		a.StaffID = *p.StaffID
	}
	if p.StaffName != nil {
		a.StaffName = *p.StaffName
	}
	if p.Service != nil {
		a.Service = *p.Service
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return a
}

type SalePatch struct {
	CustomerID    *int           `json:"customerId,omitempty"`
	CustomerName  *string        `json:"customerName,omitempty"`
	Items         *[]SaleItem    `json:"items,omitempty"`
	Total         *float64       `json:"total,omitempty"`
	Date          *string        `json:"date,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
}

func (p SalePatch) Apply(s Sale) Sale {
	if p.CustomerID != nil {
		s.CustomerID = *p.CustomerID
	}
	if p.CustomerName != nil {
		s.CustomerName = *p.CustomerName
	}
	if p.Items != nil {
		s.Items = *p.Items
	}
	if p.Total != nil {
		s.Total = *p.Total
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.PaymentMethod != nil {
		s.PaymentMethod = *p.PaymentMethod
	}
	return s
}

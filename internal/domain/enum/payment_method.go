package enum

// PaymentMethod is the tender type recorded on a sale.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMobile PaymentMethod = "mobile"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Priority is the kitchen/fulfilment priority on a sale.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string {
	return string(p)
}

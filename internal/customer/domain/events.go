package domain

// Event types recorded in the outbox for customer changes.
const (
	EventCustomerCreated = "customer.created"
	EventCustomerDeleted = "customer.deleted"
)

// CustomerEventPayload is the JSON body of customer outbox events.
type CustomerEventPayload struct {
	CustomerID int64  `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// NewCustomerEventPayload builds the event payload for customer.
func NewCustomerEventPayload(customer *Customer) CustomerEventPayload {
	return CustomerEventPayload{
		CustomerID: customer.ID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
	}
}

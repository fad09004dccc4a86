// Package domain defines the customer entity as known to the persistence layer.
package domain

// Customer is a persisted customer record. ID is assigned by the store on create.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
}

package models

import "time"

// Payment is one row of the append-only payment/shipping event log.
// Kind is "paid" or "shipped".
type Payment struct {
	PaymentID     string    `json:"paymentid" bson:"paymentid"`
	PurchaseID    string    `json:"purchaseid" bson:"purchaseid"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Amount        float64   `json:"amount,omitempty" bson:"amount,omitempty"`
	TransactionID string    `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Kind          string    `json:"kind" bson:"kind"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

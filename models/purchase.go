package models

import "time"

type Purchase struct {
	PurchaseID    string    `json:"purchaseid" bson:"purchaseid"`
	ToolID        string    `json:"toolid" bson:"toolid"`
	ToolName      string    `json:"toolName,omitempty" bson:"toolName,omitempty"`
	Email         string    `json:"email" bson:"email"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	Price         float64   `json:"price" bson:"price"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Paid          bool      `json:"paid" bson:"paid"`
	Shipped       bool      `json:"shipped" bson:"shipped"`
	TransactionID string    `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

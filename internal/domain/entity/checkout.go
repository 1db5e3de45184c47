package entity

import (
	"time"
)

const (
	CheckoutStatusPending   = "pending"
	CheckoutStatusSettled   = "settled"
	CheckoutStatusCancelled = "cancelled"
)

type CartItem struct {
	ProductName string  `json:"productName" firestore:"productName"`
	Price       float64 `json:"price" firestore:"price"`
	Quantity    int     `json:"quantity" firestore:"quantity"`
	UploadedBy  string  `json:"uploadedBy" firestore:"uploadedBy"`
}

// CheckoutSession is the durable record of a buyer's pending cart between
// payment-session creation and the gateway's success or cancel redirect.
// The redirect carries the session ID, so settlement is tied to this record
// rather than to a client-supplied buyer name.
type CheckoutSession struct {
	ID           string             `json:"id" firestore:"id"`
	Buyer        string             `json:"buyer" firestore:"buyer"`
	SellerTotals map[string]float64 `json:"sellerTotals" firestore:"sellerTotals"`
	CartItems    []CartItem         `json:"cartItems" firestore:"cartItems"`
	Status       string             `json:"status" firestore:"status"`
	GatewayRef   string             `json:"gatewayRef,omitempty" firestore:"gatewayRef,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func (s *CheckoutSession) GrandTotal() float64 {
	var total float64
	for _, amount := range s.SellerTotals {
		total += amount
	}
	return total
}

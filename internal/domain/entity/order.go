package entity

import (
	"time"
)

const OrderStatusPendingPayment = "pending_payment"

// Order records a buyer's purchase intent at the moment they jump to the
// payment flow. Write-only today; nothing reads these back yet.
type Order struct {
	ID           string  `json:"id" firestore:"id"`
	BuyerID      string  `json:"buyer_id" firestore:"buyerId"`
	ShopID       string  `json:"shop_id" firestore:"shopId"`
	ProductID    string  `json:"product_id" firestore:"productId"`
	ProductTitle string  `json:"product_title" firestore:"productTitle"`
	Price        float64 `json:"price" firestore:"price"`
	Status       string  `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

package entity

import (
	"time"
)

const (
	ProductStatusAvailable = "available"
	ProductStatusPending   = "pending"
	ProductStatusSold      = "sold"
	ProductStatusInactive  = "inactive"
)

const (
	ProductConditionNew  = "new"
	ProductConditionUsed = "used"
)

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	ShopID      string   `json:"shop_id" firestore:"shopId"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Price       float64  `json:"price" firestore:"price"`
	Condition   string   `json:"condition" firestore:"condition"`
	Images      []string `json:"images" firestore:"images"`
	Status      string   `json:"status" firestore:"status"`
	BuyerInfo   string   `json:"buyer_info,omitempty" firestore:"buyerInfo,omitempty"`

	// LegacyImageURL carries the single-image field written by early
	// revisions. Normalize folds it into Images; it is never written back.
	LegacyImageURL string `json:"-" firestore:"imageUrl,omitempty"`

	// ImageURLs holds resolved display URLs, same order as Images. Derived
	// per request, never persisted.
	ImageURLs []string `json:"image_urls,omitempty" firestore:"-"`

	SoldAt    *time.Time `json:"sold_at,omitempty" firestore:"soldAt,omitempty"`
	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// Normalize maps legacy document shapes onto the canonical one so nothing
// past the data-access boundary has to know about them.
func (p *Product) Normalize() {
	if len(p.Images) == 0 && p.LegacyImageURL != "" {
		p.Images = []string{p.LegacyImageURL}
	}
	if p.Condition == "" {
		p.Condition = ProductConditionUsed
	}
	if p.Status == "" {
		p.Status = ProductStatusAvailable
	}
}

package entity

import (
	"time"
)

// User mirrors the Firebase identity plus the app-level profile. ID is the
// Firebase UID and never changes; ShopID is set once when the owner creates
// their shop.
type User struct {
	ID          string `json:"id" firestore:"uid"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	PhotoURL    string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	ShopID      string `json:"shop_id,omitempty" firestore:"shopId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

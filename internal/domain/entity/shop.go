package entity

import (
	"time"
)

type Shop struct {
	ID          string `json:"id" firestore:"id"`
	OwnerID     string `json:"owner_id" firestore:"ownerId"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description" firestore:"description"`
	Whatsapp    string `json:"whatsapp" firestore:"whatsapp"`
	Location    string `json:"location" firestore:"location"`
	Alias       string `json:"alias" firestore:"alias"`
	CBU         string `json:"cbu" firestore:"cbu"`
	Theme       string `json:"theme" firestore:"theme"`
	Active      bool   `json:"active" firestore:"active"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

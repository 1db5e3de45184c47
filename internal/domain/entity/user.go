package entity

import (
	"time"
)

type User struct {
	Username  string  `json:"username" firestore:"username"`
	Email     string  `json:"email" firestore:"email"`
	FirstName string  `json:"firstName" firestore:"firstName"`
	LastName  string  `json:"lastName" firestore:"lastName"`
	Address   string  `json:"address" firestore:"address"`
	Karma     int64   `json:"karma" firestore:"karma"`
	Balance   float64 `json:"balance" firestore:"balance"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

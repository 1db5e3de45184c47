package entity

import (
	"fmt"
	"time"
)

// Products are keyed by the composite "<uploader>_<productName>" document ID.
// The uploadedBy field is stored alongside it so seller listings can use an
// indexed query instead of scanning the whole collection.
type Product struct {
	ID          string   `json:"id" firestore:"-"`
	ProductName string   `json:"productName" firestore:"productName"`
	Description string   `json:"description" firestore:"description"`
	Price       float64  `json:"price" firestore:"price"`
	Quantity    int      `json:"quantity" firestore:"quantity"`
	Photos      []string `json:"photos" firestore:"photos"`
	UploadedBy  string   `json:"uploadedBy" firestore:"uploadedBy"`
	LikedBy     []string `json:"likedBy" firestore:"likedBy"`
	DislikedBy  []string `json:"dislikedBy" firestore:"dislikedBy"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

func ProductID(uploader, productName string) string {
	return fmt.Sprintf("%s_%s", uploader, productName)
}

func (p *Product) HasOpinion(username string) (liked, disliked bool) {
	for _, u := range p.LikedBy {
		if u == username {
			liked = true
		}
	}
	for _, u := range p.DislikedBy {
		if u == username {
			disliked = true
		}
	}
	return liked, disliked
}

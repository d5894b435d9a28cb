package domain

import "time"

// Review represents a customer review of a product.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// AverageRating computes the mean rating of the given reviews, rounded to one
// decimal place. Returns 0 for an empty slice.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return float64(int(avg*10+0.5)) / 10
}

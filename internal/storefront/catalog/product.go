// Package catalog models storefront products, loads their description
// resources and keeps each visitor's in-memory copy with its reviews.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ReviewDateLayout is the ISO-8601 layout used for review timestamps.
const ReviewDateLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrInvalidProduct reports a product resource that cannot be used.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrProductNotFound reports an unknown product key.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidReview reports a review without author or comment.
	ErrInvalidReview = errors.New("review requires author and comment")
)

// Review is one visitor opinion about a product.
type Review struct {
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Product is one sellable item as described by its resource file.
type Product struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Reviews     []Review `json:"reviews"`
	InStock     bool     `json:"inStock"`
}

// Key identifies the product within a catalog: its id when set, otherwise
// its name.
func (p Product) Key() string {
	if id := strings.TrimSpace(p.ID); id != "" {
		return id
	}
	return strings.TrimSpace(p.Name)
}

// Parse decodes one product resource.
func Parse(data []byte) (Product, error) {
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Product{}, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if p.Price < 0 {
		return Product{}, fmt.Errorf("%w: price %v is negative", ErrInvalidProduct, p.Price)
	}
	if p.Reviews == nil {
		p.Reviews = []Review{}
	}
	return p, nil
}

// NewReview builds a review stamped with now in UTC.
func NewReview(author, comment string, now time.Time) (Review, error) {
	author = strings.TrimSpace(author)
	comment = strings.TrimSpace(comment)
	if author == "" || comment == "" {
		return Review{}, ErrInvalidReview
	}
	return Review{
		Author:  author,
		Comment: comment,
		Date:    now.UTC().Format(ReviewDateLayout),
	}, nil
}

// WithReview returns a copy of p with review prepended. p is left untouched.
func (p Product) WithReview(review Review) Product {
	reviews := make([]Review, 0, len(p.Reviews)+1)
	reviews = append(reviews, review)
	reviews = append(reviews, p.Reviews...)
	p.Reviews = reviews
	return p
}

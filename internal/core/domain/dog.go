package domain

import "time"

// Dog is a catalogued dog. OwnerID references the user that created the
// entry; BreedID references an existing DogBreed.
type Dog struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Image       string    `json:"image,omitempty"`
	OwnerID     string    `json:"userId"`
	BreedID     string    `json:"breedId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

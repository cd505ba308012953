package domain

import "time"

// DogBreed is an FCI-style breed entry. Group and Section follow the FCI
// nomenclature; Provisional marks breeds recognised on a provisional basis.
type DogBreed struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Group       string    `json:"group"`
	Section     string    `json:"section"`
	Provisional string    `json:"provisional,omitempty"`
	Country     string    `json:"country"`
	URL         string    `json:"url"`
	Image       string    `json:"image,omitempty"`
	PDF         string    `json:"pdf,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

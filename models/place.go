package models

import "fmt"

// NormalizedPlace is the uniform place shape returned to clients. All keys are always
// serialized; values missing upstream are null.
type NormalizedPlace struct {
	ID        *string     `json:"id"`
	Name      *string     `json:"name"`
	Latitude  *float64    `json:"latitude"`
	Longitude *float64    `json:"longitude"`
	Category  *string     `json:"category"`
	Rating    *float64    `json:"rating"`
	Price     *int        `json:"price"`
	Duration  interface{} `json:"duration"`
}

// HasCoordinates reports whether the place can be geo-indexed.
func (p NormalizedPlace) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

func (p NormalizedPlace) ToString() string {
	name, id := "<nil>", "<nil>"
	if p.Name != nil {
		name = *p.Name
	}
	if p.ID != nil {
		id = *p.ID
	}
	return fmt.Sprintf("Place(id=%s, name=%s)", id, name)
}

package models

// Point is a GeoJSON point. Coordinates are [longitude, latitude].
type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// OriginPoint returns the default location for cats created without
// resolved coordinates.
func OriginPoint() Point {
	return Point{Type: "Point", Coordinates: [2]float64{0, 0}}
}

// Cat represents a cat record owned by a user
type Cat struct {
	ID        int     `json:"id"`
	Name      string  `json:"cat_name"`
	Weight    float64 `json:"weight"`
	Birthdate string  `json:"birthdate"`
	Filename  string  `json:"filename"`
	Location  Point   `json:"location"`
	OwnerID   int     `json:"owner_id"`
	// Owner is the sanitized projection of the owning user. Populated on
	// single and list reads; left nil on owner-scoped and area queries.
	Owner *UserOutput `json:"owner,omitempty"`
}

// CreateCatRequest represents a request to create a new cat.
// Location is resolved upstream (e.g. from image metadata) and optional.
type CreateCatRequest struct {
	Name      string  `json:"cat_name"`
	Weight    float64 `json:"weight"`
	Birthdate string  `json:"birthdate"`
	Location  *Point  `json:"location"`
}

// UpdateCatRequest represents a partial update of a cat.
// Nil fields keep the stored value.
type UpdateCatRequest struct {
	Name      *string  `json:"cat_name"`
	Weight    *float64 `json:"weight"`
	Birthdate *string  `json:"birthdate"`
	Location  *Point   `json:"location"`
}

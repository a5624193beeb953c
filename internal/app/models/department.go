package models

// Department groups colonists under a chief
type Department struct {
	ID      int64  `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	ChiefID *int64 `json:"chief_id" db:"chief_id"`
	Members string `json:"members" db:"members"`
	Email   string `json:"email" db:"email"`
}

// OwnerID returns the chief id, or 0 when the department has none
func (d *Department) OwnerID() int64 {
	if d.ChiefID == nil {
		return 0
	}
	return *d.ChiefID
}

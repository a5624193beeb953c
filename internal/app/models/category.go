package models

// Category is a hazard classification applied to jobs
type Category struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"Research"`
	HazardLevel int    `json:"hazard_level" db:"hazard_level" example:"1"`
}

// DefaultCategories are inserted when the categories table is empty
var DefaultCategories = []Category{
	{Name: "Research", HazardLevel: 1},
	{Name: "Terraforming", HazardLevel: 3},
	{Name: "Construction", HazardLevel: 2},
	{Name: "Life Support", HazardLevel: 2},
}

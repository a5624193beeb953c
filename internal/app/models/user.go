package models

// User is a colonist account; team leaders and department chiefs are users
type User struct {
	ID             int64  `json:"id" db:"id" example:"1"`
	Surname        string `json:"surname" db:"surname" example:"Scott"`
	Name           string `json:"name" db:"name" example:"Ridley"`
	Age            int    `json:"age" db:"age" example:"21"`
	Position       string `json:"position" db:"position" example:"captain"`
	Speciality     string `json:"speciality" db:"speciality" example:"research engineer"`
	Address        string `json:"address" db:"address" example:"module_1"`
	Email          string `json:"email" db:"email" example:"scott_chief@mars.org"`
	HashedPassword string `json:"-" db:"hashed_password"`
	CityFrom       string `json:"city_from" db:"city_from" example:"Moscow"`
}

// FullName returns "Surname Name"
func (u *User) FullName() string {
	return u.Surname + " " + u.Name
}

// MapAddress is the address used for geocoding, falling back to the city of origin
func (u *User) MapAddress() string {
	if u.Address != "" {
		return u.Address
	}
	return u.CityFrom
}

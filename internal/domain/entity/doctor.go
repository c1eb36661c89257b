package entity

// Doctor is a healthcare provider kept by a user.
type Doctor struct {
	Record
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Hours     string `json:"hours,omitempty"`
	Contact   string `json:"contact,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

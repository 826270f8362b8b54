package response

// StudentResponse represents student detail data
type StudentResponse struct {
	ID           uint    `json:"id" example:"7"`
	Name         string  `json:"name" example:"Aarav Sharma"`
	Email        string  `json:"email" example:"aarav.sharma@example.com"`
	Phone        string  `json:"phone" example:"+919876543210"`
	GuardianID   *uint   `json:"guardian_id,omitempty" example:"3"`
	GuardianName *string `json:"guardian_name,omitempty" example:"Rohit Sharma"`
	Active       bool    `json:"active" example:"true"`
}

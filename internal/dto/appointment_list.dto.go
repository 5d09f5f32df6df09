package dto

type AppointmentListDTO struct {
	ID            uint   `json:"id"`
	PublicID      string `json:"public_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	Day           string `json:"day"`
	TimeSlot      string `json:"time_slot"`
	ServiceName   string `json:"service_name"`
	Status        string `json:"status"`
}

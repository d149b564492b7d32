package domain

type Flight struct {
	RecordMeta
	Number         string  `json:"number"`
	Airline        string  `json:"airline"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	Date           string  `json:"date"`           // DD/MM/YYYY
	DepartureTime  string  `json:"departure_time"` // HH:MM
	ArrivalTime    string  `json:"arrival_time"`   // HH:MM
	TotalSeats     int     `json:"total_seats"`
	AvailableSeats int     `json:"available_seats"`
	EconomyPrice   float64 `json:"economy_price"`
	BusinessPrice  float64 `json:"business_price"`
}

// BookedSeats is the number of seats currently held by active bookings.
func (f *Flight) BookedSeats() int {
	return f.TotalSeats - f.AvailableSeats
}

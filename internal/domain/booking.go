package domain

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "E"
	SeatClassBusiness SeatClass = "B"
)

func (c SeatClass) String() string {
	if c == SeatClassBusiness {
		return "Business"
	}
	return "Economy"
}

// Booking links a passenger to a flight. AmountPaid snapshots the flight
// price at booking time; later price changes never affect it. The active
// flag distinguishes Confirmed from Cancelled, a terminal state.
type Booking struct {
	RecordMeta
	FlightID    int64     `json:"flight_id"`
	PassengerID int64     `json:"passenger_id"`
	SeatNumber  string    `json:"seat_number"`
	Class       SeatClass `json:"class"`
	AmountPaid  float64   `json:"amount_paid"`
	BookedOn    string    `json:"booked_on"` // DD/MM/YYYY
}

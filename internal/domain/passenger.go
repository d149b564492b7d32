package domain

// Passenger records are immutable once registered and are never
// deactivated; the embedded active flag stays true for the record's
// lifetime.
type Passenger struct {
	RecordMeta
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"` // "M", "F" or "O"
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Passport    string `json:"passport"`
	Nationality string `json:"nationality"`
}

package seed

import (
	"context"
	"errors"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/auth"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/flights"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/passengers"
)

// ErrDataExists is returned when seeding is attempted on a non-empty
// catalog; sample data never overwrites operator data.
var ErrDataExists = errors.New("data already exists, sample data not loaded")

var sampleFlights = []flights.FlightInput{
	{Number: "AI-101", Airline: "Air India", Source: "Delhi", Destination: "Mumbai", Date: "28/01/2025", DepartureTime: "06:00", ArrivalTime: "08:15", TotalSeats: 180, EconomyPrice: 4500, BusinessPrice: 12000},
	{Number: "6E-205", Airline: "IndiGo", Source: "Delhi", Destination: "Bangalore", Date: "28/01/2025", DepartureTime: "09:30", ArrivalTime: "12:30", TotalSeats: 200, EconomyPrice: 5200, BusinessPrice: 14000},
	{Number: "UK-833", Airline: "Vistara", Source: "Mumbai", Destination: "Kolkata", Date: "29/01/2025", DepartureTime: "14:00", ArrivalTime: "16:30", TotalSeats: 160, EconomyPrice: 4800, BusinessPrice: 13000},
	{Number: "SG-422", Airline: "SpiceJet", Source: "Chennai", Destination: "Delhi", Date: "29/01/2025", DepartureTime: "07:45", ArrivalTime: "10:30", TotalSeats: 180, EconomyPrice: 3800, BusinessPrice: 10000},
	{Number: "AI-305", Airline: "Air India", Source: "Kolkata", Destination: "Hyderabad", Date: "30/01/2025", DepartureTime: "11:00", ArrivalTime: "13:15", TotalSeats: 150, EconomyPrice: 4200, BusinessPrice: 11500},
	{Number: "6E-117", Airline: "IndiGo", Source: "Bangalore", Destination: "Delhi", Date: "30/01/2025", DepartureTime: "16:30", ArrivalTime: "19:30", TotalSeats: 200, EconomyPrice: 5500, BusinessPrice: 15000},
}

var samplePassengers = []passengers.PassengerInput{
	{Name: "Rahul Sharma", Age: 22, Gender: "M", Phone: "9876543210", Email: "rahul@email.com", Passport: "A1234567", Nationality: "Indian"},
	{Name: "Priya Patel", Age: 25, Gender: "F", Phone: "9876543211", Email: "priya@email.com", Passport: "B2345678", Nationality: "Indian"},
	{Name: "Amit Kumar", Age: 30, Gender: "M", Phone: "9876543212", Email: "amit@email.com", Passport: "C3456789", Nationality: "Indian"},
}

// Load inserts the sample fleet and passengers through the regular
// services so ids and invariants come out the same as manual entry. All
// sample flights start fully available.
func Load(ctx context.Context, token auth.Token, flightSvc *flights.FlightService, passengerSvc *passengers.PassengerService) (int, int, error) {
	if len(flightSvc.List(ctx)) > 0 {
		return 0, 0, ErrDataExists
	}
	for _, input := range sampleFlights {
		if _, err := flightSvc.AddFlight(ctx, token, input); err != nil {
			return 0, 0, err
		}
	}
	for _, input := range samplePassengers {
		if _, err := passengerSvc.Register(ctx, input); err != nil {
			return len(sampleFlights), 0, err
		}
	}
	return len(sampleFlights), len(samplePassengers), nil
}

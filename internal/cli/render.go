package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/stats"
)

func (a *App) renderFlightTable(list []*domain.Flight) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No flights in the system.")
		return
	}
	fmt.Fprintf(a.out, "%-6s %-9s %-14s %-11s %-11s %-11s %-7s %-6s %-8s\n",
		"ID", "Flight#", "Airline", "From", "To", "Date", "Depart", "Seats", "Status")
	fmt.Fprintln(a.out, strings.Repeat("-", 88))
	for _, f := range list {
		status := "Active"
		if !f.IsActive() {
			status = "Cancel"
		}
		fmt.Fprintf(a.out, "%-6d %-9s %-14s %-11s %-11s %-11s %-7s %-6d %-8s\n",
			f.RecordID(), f.Number, f.Airline, f.Source, f.Destination,
			f.Date, f.DepartureTime, f.AvailableSeats, status)
	}
	fmt.Fprintf(a.out, "Total flights: %d\n", len(list))
}

func (a *App) renderFlightDetails(f *domain.Flight) {
	status := "Active"
	if !f.IsActive() {
		status = "Cancelled"
	}
	fmt.Fprintln(a.out, "--- FLIGHT DETAILS ---")
	fmt.Fprintf(a.out, "  Flight ID       : %d\n", f.RecordID())
	fmt.Fprintf(a.out, "  Flight Number   : %s\n", f.Number)
	fmt.Fprintf(a.out, "  Airline         : %s\n", f.Airline)
	fmt.Fprintf(a.out, "  Route           : %s -> %s\n", f.Source, f.Destination)
	fmt.Fprintf(a.out, "  Date            : %s\n", f.Date)
	fmt.Fprintf(a.out, "  Departure       : %s\n", f.DepartureTime)
	fmt.Fprintf(a.out, "  Arrival         : %s\n", f.ArrivalTime)
	fmt.Fprintf(a.out, "  Total Seats     : %d\n", f.TotalSeats)
	fmt.Fprintf(a.out, "  Available Seats : %d\n", f.AvailableSeats)
	fmt.Fprintf(a.out, "  Economy Price   : Rs. %.2f\n", f.EconomyPrice)
	fmt.Fprintf(a.out, "  Business Price  : Rs. %.2f\n", f.BusinessPrice)
	fmt.Fprintf(a.out, "  Status          : %s\n", status)
}

func (a *App) renderPassengerTable(list []*domain.Passenger) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No passengers registered.")
		return
	}
	fmt.Fprintf(a.out, "%-6s %-25s %-4s %-3s %-13s %-12s\n",
		"ID", "Name", "Age", "G", "Phone", "Passport")
	fmt.Fprintln(a.out, strings.Repeat("-", 75))
	for _, p := range list {
		fmt.Fprintf(a.out, "%-6d %-25s %-4d %-3s %-13s %-12s\n",
			p.RecordID(), p.Name, p.Age, p.Gender, p.Phone, p.Passport)
	}
	fmt.Fprintf(a.out, "Total passengers: %d\n", len(list))
}

func (a *App) renderBookingTable(ctx context.Context, list []*domain.Booking) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No bookings yet.")
		return
	}
	fmt.Fprintf(a.out, "%-7s %-9s %-20s %-6s %-9s %-10s %-8s\n",
		"BookID", "Flight#", "Passenger", "Seat", "Class", "Amount", "Status")
	fmt.Fprintln(a.out, strings.Repeat("-", 75))
	for _, b := range list {
		flightNum, passName := "N/A", "N/A"
		if f, err := a.flights.GetByID(ctx, b.FlightID); err == nil {
			flightNum = f.Number
		}
		if p, err := a.passengers.GetByID(ctx, b.PassengerID); err == nil {
			passName = p.Name
		}
		status := "Active"
		if !b.IsActive() {
			status = "Cancel"
		}
		fmt.Fprintf(a.out, "%-7d %-9s %-20s %-6s %-9s Rs.%-7.0f %-8s\n",
			b.RecordID(), flightNum, passName, b.SeatNumber, b.Class, b.AmountPaid, status)
	}
	fmt.Fprintf(a.out, "Total bookings: %d\n", len(list))
}

func (a *App) renderBookingDetails(ctx context.Context, b *domain.Booking) {
	fmt.Fprintln(a.out, "--- BOOKING DETAILS ---")
	fmt.Fprintf(a.out, "  Booking ID  : %d\n", b.RecordID())
	if p, err := a.passengers.GetByID(ctx, b.PassengerID); err == nil {
		fmt.Fprintf(a.out, "  Passenger   : %s\n", p.Name)
	}
	if f, err := a.flights.GetByID(ctx, b.FlightID); err == nil {
		fmt.Fprintf(a.out, "  Flight      : %s\n", f.Number)
		fmt.Fprintf(a.out, "  Route       : %s -> %s\n", f.Source, f.Destination)
	}
	fmt.Fprintf(a.out, "  Seat        : %s (%s)\n", b.SeatNumber, b.Class)
	fmt.Fprintf(a.out, "  Amount Paid : Rs. %.2f\n", b.AmountPaid)
}

func (a *App) renderBoardingPass(ctx context.Context, b *domain.Booking) {
	fmt.Fprintln(a.out, strings.Repeat("*", 50))
	fmt.Fprintln(a.out, "              BOARDING PASS")
	fmt.Fprintln(a.out, strings.Repeat("*", 50))
	fmt.Fprintf(a.out, "  Booking ID    : %d\n", b.RecordID())
	if p, err := a.passengers.GetByID(ctx, b.PassengerID); err == nil {
		fmt.Fprintf(a.out, "  Passenger     : %s\n", p.Name)
	}
	if f, err := a.flights.GetByID(ctx, b.FlightID); err == nil {
		fmt.Fprintf(a.out, "  Flight        : %s (%s)\n", f.Number, f.Airline)
		fmt.Fprintf(a.out, "  Route         : %s --> %s\n", f.Source, f.Destination)
		fmt.Fprintf(a.out, "  Date          : %s\n", f.Date)
		fmt.Fprintf(a.out, "  Departure     : %s\n", f.DepartureTime)
		fmt.Fprintf(a.out, "  Arrival       : %s\n", f.ArrivalTime)
	}
	fmt.Fprintf(a.out, "  Seat          : %s (%s)\n", b.SeatNumber, b.Class)
	fmt.Fprintf(a.out, "  Amount Paid   : Rs. %.2f\n", b.AmountPaid)
	fmt.Fprintf(a.out, "  Booking Date  : %s\n", b.BookedOn)
	fmt.Fprintln(a.out, "  Status        : CONFIRMED")
	fmt.Fprintln(a.out, strings.Repeat("*", 50))
	fmt.Fprintln(a.out, "  ** Please arrive 2 hours before departure **")
	fmt.Fprintln(a.out, strings.Repeat("*", 50))
}

func (a *App) renderStats(r stats.Report) {
	a.header("AIRPORT STATISTICS DASHBOARD")
	fmt.Fprintf(a.out, "  Total Flights      : %d\n", r.TotalFlights)
	fmt.Fprintf(a.out, "  Active Flights     : %d\n", r.ActiveFlights)
	fmt.Fprintf(a.out, "  Cancelled Flights  : %d\n", r.CancelledFlights)
	fmt.Fprintf(a.out, "  Total Passengers   : %d\n", r.TotalPassengers)
	fmt.Fprintf(a.out, "  Total Bookings     : %d\n", r.TotalBookings)
	fmt.Fprintf(a.out, "  Active Bookings    : %d\n", r.ActiveBookings)
	fmt.Fprintf(a.out, "  Cancelled Bookings : %d\n", r.CancelledBookings)
	fmt.Fprintf(a.out, "  Total Seats        : %d\n", r.TotalSeats)
	fmt.Fprintf(a.out, "  Booked Seats       : %d\n", r.BookedSeats)
	fmt.Fprintf(a.out, "  Occupancy Rate     : %.1f%%\n", r.OccupancyPercent)
	fmt.Fprintf(a.out, "  Total Revenue      : Rs. %.2f\n", r.Revenue)
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/auth"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/journal"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/notify"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/seed"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/booking"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/flights"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/passengers"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/stats"
)

// App is the interactive console front end. All business rules live in the
// services; this layer only reads input, dispatches and renders.
type App struct {
	scanner    *bufio.Scanner
	out        io.Writer
	auth       *auth.Service
	flights    *flights.FlightService
	passengers *passengers.PassengerService
	bookings   *booking.BookingService
	stats      *stats.Service
	notifier   *notify.Sender
	persistAll func(ctx context.Context) error
	eof        bool
}

func New(
	in io.Reader,
	out io.Writer,
	authSvc *auth.Service,
	flightSvc *flights.FlightService,
	passengerSvc *passengers.PassengerService,
	bookingSvc *booking.BookingService,
	statsSvc *stats.Service,
	persistAll func(ctx context.Context) error,
) *App {
	return &App{
		scanner:    bufio.NewScanner(in),
		out:        out,
		auth:       authSvc,
		flights:    flightSvc,
		passengers: passengerSvc,
		bookings:   bookingSvc,
		stats:      statsSvc,
		notifier:   notify.NewSender(out),
		persistAll: persistAll,
	}
}

// Run drives the main menu until the operator exits or input ends. Exit
// persists all three stores.
func (a *App) Run(ctx context.Context) error {
	for !a.eof {
		a.header("AIRPORT MANAGEMENT SYSTEM")
		fmt.Fprintln(a.out, "  [1] Admin Login")
		fmt.Fprintln(a.out, "  [2] Passenger / User")
		fmt.Fprintln(a.out, "  [3] About")
		fmt.Fprintln(a.out, "  [0] Exit")
		switch a.readInt("Enter your choice: ") {
		case 1:
			a.adminLogin(ctx)
		case 2:
			a.userMenu(ctx)
		case 3:
			a.about()
		case 0:
			if err := a.persistAll(ctx); err != nil {
				fmt.Fprintf(a.out, "[WARNING] saving data failed: %v\n", err)
			} else {
				fmt.Fprintln(a.out, "All data has been saved. Goodbye!")
			}
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice, try again.")
		}
	}
	return a.persistAll(ctx)
}

func (a *App) about() {
	a.header("ABOUT")
	fmt.Fprintln(a.out, "  Airport Management System")
	fmt.Fprintln(a.out, "  Manages flights, passenger registrations and ticket")
	fmt.Fprintln(a.out, "  bookings for a single terminal. Data is stored in a")
	fmt.Fprintln(a.out, "  local database file and saved automatically on exit.")
}

func (a *App) adminLogin(ctx context.Context) {
	a.header("ADMIN LOGIN")
	username := a.readLine("Username : ")
	password := a.readLine("Password : ")
	token, err := a.auth.Login(username, password)
	if err != nil {
		fmt.Fprintln(a.out, "[FAILED] Invalid credentials!")
		return
	}
	fmt.Fprintln(a.out, "[SUCCESS] Login successful! Welcome, Admin.")
	a.adminMenu(ctx, token)
	a.auth.Revoke(token)
}

func (a *App) adminMenu(ctx context.Context, token auth.Token) {
	for !a.eof {
		a.header("ADMIN PANEL")
		fmt.Fprintln(a.out, "  1. Add New Flight")
		fmt.Fprintln(a.out, "  2. View All Flights")
		fmt.Fprintln(a.out, "  3. Search Flight")
		fmt.Fprintln(a.out, "  4. Modify Flight")
		fmt.Fprintln(a.out, "  5. Cancel Flight")
		fmt.Fprintln(a.out, "  6. View All Passengers")
		fmt.Fprintln(a.out, "  7. View All Bookings")
		fmt.Fprintln(a.out, "  8. Statistics Dashboard")
		fmt.Fprintln(a.out, "  9. Load Sample Data")
		fmt.Fprintln(a.out, "  0. Logout")
		switch a.readInt("Enter choice: ") {
		case 1:
			a.addFlight(ctx, token)
		case 2:
			a.renderFlightTable(a.flights.List(ctx))
		case 3:
			a.searchFlights(ctx)
		case 4:
			a.modifyFlight(ctx, token)
		case 5:
			a.cancelFlight(ctx, token)
		case 6:
			a.renderPassengerTable(a.passengers.List(ctx))
		case 7:
			a.renderBookingTable(ctx, a.bookings.ListAll(ctx))
		case 8:
			a.renderStats(a.stats.Collect(ctx))
		case 9:
			a.loadSampleData(ctx, token)
		case 0:
			fmt.Fprintln(a.out, "Logged out successfully.")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice, try again.")
		}
	}
}

func (a *App) userMenu(ctx context.Context) {
	for !a.eof {
		a.header("PASSENGER MENU")
		fmt.Fprintln(a.out, "  1. Search Flights")
		fmt.Fprintln(a.out, "  2. View All Flights")
		fmt.Fprintln(a.out, "  3. Register as Passenger")
		fmt.Fprintln(a.out, "  4. Book a Ticket")
		fmt.Fprintln(a.out, "  5. Cancel Booking")
		fmt.Fprintln(a.out, "  6. View My Bookings")
		fmt.Fprintln(a.out, "  0. Back to Main Menu")
		switch a.readInt("Enter choice: ") {
		case 1:
			a.searchFlights(ctx)
		case 2:
			a.renderFlightTable(a.flights.List(ctx))
		case 3:
			a.registerPassenger(ctx)
		case 4:
			a.bookTicket(ctx)
		case 5:
			a.cancelBooking(ctx)
		case 6:
			a.myBookings(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice, try again.")
		}
	}
}

func (a *App) addFlight(ctx context.Context, token auth.Token) {
	a.header("ADD NEW FLIGHT")
	input := flights.FlightInput{
		Number:        a.readLine("Flight Number (e.g. AI-101)  : "),
		Airline:       a.readLine("Airline Name                 : "),
		Source:        a.readLine("Source City                  : "),
		Destination:   a.readLine("Destination City             : "),
		Date:          a.readLine("Date (DD/MM/YYYY)            : "),
		DepartureTime: a.readLine("Departure Time (HH:MM)       : "),
		ArrivalTime:   a.readLine("Arrival Time (HH:MM)         : "),
		TotalSeats:    a.readInt("Total Seats                  : "),
		EconomyPrice:  a.readFloat("Economy Class Price (INR)    : "),
		BusinessPrice: a.readFloat("Business Class Price (INR)   : "),
	}
	f, err := a.flights.AddFlight(ctx, token, input)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "[SUCCESS] Flight added. ID %d, %s, %s -> %s\n", f.RecordID(), f.Number, f.Source, f.Destination)
}

func (a *App) searchFlights(ctx context.Context) {
	a.header("SEARCH FLIGHTS")
	fmt.Fprintln(a.out, "  1. Flight Number")
	fmt.Fprintln(a.out, "  2. Route (Source & Destination)")
	fmt.Fprintln(a.out, "  3. Date")
	fmt.Fprintln(a.out, "  4. Flight ID")
	var criteria flights.SearchCriteria
	switch a.readInt("Your choice: ") {
	case 1:
		criteria.Number = a.readLine("Enter Flight Number: ")
	case 2:
		criteria.Source = a.readLine("Enter Source City      : ")
		criteria.Destination = a.readLine("Enter Destination City : ")
	case 3:
		criteria.Date = a.readLine("Enter Date (DD/MM/YYYY): ")
	case 4:
		criteria.ID = int64(a.readInt("Enter Flight ID: "))
	default:
		fmt.Fprintln(a.out, "Invalid choice.")
		return
	}
	matches := a.flights.Search(ctx, criteria)
	if len(matches) == 0 {
		fmt.Fprintln(a.out, "No matching flights found.")
		return
	}
	a.renderFlightTable(matches)
}

func (a *App) modifyFlight(ctx context.Context, token auth.Token) {
	a.header("MODIFY FLIGHT")
	id := int64(a.readInt("Enter Flight ID to modify: "))
	f, err := a.flights.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	a.renderFlightDetails(f)
	fmt.Fprintln(a.out, "  1. Date")
	fmt.Fprintln(a.out, "  2. Departure Time")
	fmt.Fprintln(a.out, "  3. Arrival Time")
	fmt.Fprintln(a.out, "  4. Economy Price")
	fmt.Fprintln(a.out, "  5. Business Price")
	fmt.Fprintln(a.out, "  6. Total Seats")
	var upd flights.FlightUpdate
	switch a.readInt("Choice: ") {
	case 1:
		upd.Date = a.readLine("New Date (DD/MM/YYYY): ")
	case 2:
		upd.DepartureTime = a.readLine("New Departure Time (HH:MM): ")
	case 3:
		upd.ArrivalTime = a.readLine("New Arrival Time (HH:MM): ")
	case 4:
		price := a.readFloat("New Economy Price: ")
		upd.EconomyPrice = &price
	case 5:
		price := a.readFloat("New Business Price: ")
		upd.BusinessPrice = &price
	case 6:
		newTotal := a.readInt("New Total Seats: ")
		if _, err := a.flights.ModifySeatCapacity(ctx, token, id, newTotal); err != nil {
			fmt.Fprintf(a.out, "[ERROR] %v\n", err)
			return
		}
		fmt.Fprintln(a.out, "[SUCCESS] Flight updated!")
		return
	default:
		fmt.Fprintln(a.out, "Invalid choice.")
		return
	}
	if _, err := a.flights.UpdateFlight(ctx, token, id, upd); err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "[SUCCESS] Flight updated!")
}

func (a *App) cancelFlight(ctx context.Context, token auth.Token) {
	a.header("CANCEL FLIGHT")
	id := int64(a.readInt("Enter Flight ID to cancel: "))
	f, err := a.flights.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	a.renderFlightDetails(f)
	if !a.confirm("Are you sure you want to cancel? (Y/N): ") {
		fmt.Fprintln(a.out, "Cancellation aborted.")
		return
	}
	f, cascaded, err := a.flights.CancelFlight(ctx, token, id)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "[SUCCESS] Flight %s cancelled. %d booking(s) also cancelled.\n", f.Number, cascaded)
}

func (a *App) registerPassenger(ctx context.Context) *domain.Passenger {
	a.header("PASSENGER REGISTRATION")
	input := passengers.PassengerInput{
		Name:        a.readLine("Full Name        : "),
		Age:         a.readInt("Age              : "),
		Gender:      a.readLine("Gender (M/F/O)   : "),
		Phone:       a.readLine("Phone Number     : "),
		Email:       a.readLine("Email            : "),
		Passport:    a.readLine("Passport Number  : "),
		Nationality: a.readLine("Nationality      : "),
	}
	p, err := a.passengers.Register(ctx, input)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return nil
	}
	fmt.Fprintf(a.out, "[SUCCESS] Passenger registered. ID %d, %s\n", p.RecordID(), p.Name)
	return p
}

func (a *App) bookTicket(ctx context.Context) {
	a.header("BOOK A TICKET")

	var passengerID int64
	if a.confirm("Do you have a Passenger ID? (Y/N): ") {
		passengerID = int64(a.readInt("Enter your Passenger ID: "))
		p, err := a.passengers.GetByID(ctx, passengerID)
		if err != nil {
			fmt.Fprintf(a.out, "[ERROR] %v\n", err)
			return
		}
		fmt.Fprintf(a.out, "Welcome back, %s!\n", p.Name)
	} else {
		p := a.registerPassenger(ctx)
		if p == nil {
			return
		}
		passengerID = p.RecordID()
	}

	var bookable []*domain.Flight
	for _, f := range a.flights.List(ctx) {
		if f.IsActive() && f.AvailableSeats > 0 {
			bookable = append(bookable, f)
		}
	}
	if len(bookable) == 0 {
		fmt.Fprintln(a.out, "No flights with available seats!")
		return
	}
	fmt.Fprintln(a.out, "--- AVAILABLE FLIGHTS ---")
	a.renderFlightTable(bookable)

	flightID := int64(a.readInt("Enter Flight ID to book: "))
	class := domain.SeatClassEconomy
	if strings.EqualFold(a.readLine("Select Class (E=Economy, B=Business): "), "B") {
		class = domain.SeatClassBusiness
	}

	b, err := a.bookings.CreateBooking(ctx, flightID, passengerID, class)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	a.renderBoardingPass(ctx, b)
	_ = a.notifier.Send(ctx, journal.Event{
		Type:      journal.EventBookingCreated,
		BookingID: b.RecordID(),
		FlightID:  b.FlightID,
		Seat:      b.SeatNumber,
		Amount:    b.AmountPaid,
	})
}

func (a *App) cancelBooking(ctx context.Context) {
	a.header("CANCEL BOOKING")
	id := int64(a.readInt("Enter Booking ID: "))
	b, err := a.bookings.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	a.renderBookingDetails(ctx, b)
	if !a.confirm("Confirm cancellation? (Y/N): ") {
		fmt.Fprintln(a.out, "Cancellation aborted.")
		return
	}
	b, refund, err := a.bookings.CancelBooking(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	_ = a.notifier.Send(ctx, journal.Event{
		Type:      journal.EventBookingCancelled,
		BookingID: b.RecordID(),
		FlightID:  b.FlightID,
		Amount:    refund,
	})
}

func (a *App) myBookings(ctx context.Context) {
	a.header("MY BOOKINGS")
	passengerID := int64(a.readInt("Enter your Passenger ID: "))
	p, err := a.passengers.GetByID(ctx, passengerID)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Bookings for: %s (ID: %d)\n", p.Name, passengerID)
	mine := a.bookings.ListByPassenger(ctx, passengerID)
	if len(mine) == 0 {
		fmt.Fprintln(a.out, "No bookings found for this passenger.")
		return
	}
	a.renderBookingTable(ctx, mine)
}

func (a *App) loadSampleData(ctx context.Context, token auth.Token) {
	flightsAdded, passengersAdded, err := seed.Load(ctx, token, a.flights, a.passengers)
	if err != nil {
		fmt.Fprintf(a.out, "[ERROR] %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "[SUCCESS] Sample data loaded! %d flights and %d passengers added.\n", flightsAdded, passengersAdded)
}

func (a *App) readLine(prompt string) string {
	fmt.Fprint(a.out, prompt)
	if !a.scanner.Scan() {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(a.scanner.Text())
}

func (a *App) readInt(prompt string) int {
	for {
		line := a.readLine(prompt)
		if a.eof {
			return 0
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n
		}
		fmt.Fprintln(a.out, "Please enter a number.")
	}
}

func (a *App) readFloat(prompt string) float64 {
	for {
		line := a.readLine(prompt)
		if a.eof {
			return 0
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v
		}
		fmt.Fprintln(a.out, "Please enter a number.")
	}
}

func (a *App) confirm(prompt string) bool {
	return strings.EqualFold(a.readLine(prompt), "Y")
}

func (a *App) header(title string) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, strings.Repeat("=", 60))
	fmt.Fprintf(a.out, "   %s\n", title)
	fmt.Fprintln(a.out, strings.Repeat("=", 60))
}

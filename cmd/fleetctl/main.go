package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	_ "github.com/lib/pq"
	"github.com/richxcame/fleet-admin/internal/booking"
	"github.com/richxcame/fleet-admin/internal/finance"
	"github.com/richxcame/fleet-admin/internal/fleet"
	"github.com/richxcame/fleet-admin/internal/ledger"
	"github.com/richxcame/fleet-admin/internal/maintenance"
	"github.com/richxcame/fleet-admin/internal/returns"
	"github.com/richxcame/fleet-admin/pkg/config"
	"github.com/richxcame/fleet-admin/pkg/database"
	"github.com/richxcame/fleet-admin/pkg/logger"
)

// app bundles the services behind the interactive menu
type app struct {
	fleet       *fleet.Service
	booking     *booking.Service
	returns     *returns.Service
	maintenance *maintenance.Service
	ledger      *ledger.Service
	finance     *finance.Service
	in          *bufio.Scanner
}

func main() {
	cfg, err := config.Load("fleetctl")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Keep terminal output readable: log only warnings and above
	if err := logger.Init("production"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := database.RunMigrations(&cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := database.NewPostgresPool(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(pool)

	reportDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to open report database: %v", err)
	}
	defer reportDB.Close()

	a := &app{
		fleet:       fleet.NewService(fleet.NewRepository(pool)),
		booking:     booking.NewService(booking.NewRepository(pool)),
		returns:     returns.NewService(returns.NewRepository(pool)),
		maintenance: maintenance.NewService(maintenance.NewRepository(pool)),
		ledger:      ledger.NewService(ledger.NewRepository(pool)),
		finance:     finance.NewService(finance.NewRepository(reportDB)),
		in:          bufio.NewScanner(os.Stdin),
	}

	a.run()
}

func (a *app) run() {
	ctx := context.Background()

	for {
		fmt.Println()
		fmt.Println("=== Fleet Administration ===")
		fmt.Println(" 1) View inventory")
		fmt.Println(" 2) Add vehicle")
		fmt.Println(" 3) Create booking")
		fmt.Println(" 4) View bookings")
		fmt.Println(" 5) Process return")
		fmt.Println(" 6) View returns")
		fmt.Println(" 7) Run maintenance sweep")
		fmt.Println(" 8) Complete maintenance")
		fmt.Println(" 9) View maintenance log")
		fmt.Println("10) View transactions")
		fmt.Println("11) Financial report")
		fmt.Println(" 0) Exit")

		switch a.prompt("Select an option: ") {
		case "1":
			a.viewInventory(ctx)
		case "2":
			a.addVehicle(ctx)
		case "3":
			a.createBooking(ctx)
		case "4":
			a.viewBookings(ctx)
		case "5":
			a.processReturn(ctx)
		case "6":
			a.viewReturns(ctx)
		case "7":
			a.runMaintenanceSweep(ctx)
		case "8":
			a.completeMaintenance(ctx)
		case "9":
			a.viewMaintenanceLog(ctx)
		case "10":
			a.viewTransactions(ctx)
		case "11":
			a.financialReport(ctx)
		case "0":
			fmt.Println("Bye.")
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptInt(label string) (int64, bool) {
	v, err := strconv.ParseInt(a.prompt(label), 10, 64)
	if err != nil {
		fmt.Println("Not a valid number.")
		return 0, false
	}
	return v, true
}

func (a *app) promptFloat(label string) (float64, bool) {
	v, err := strconv.ParseFloat(a.prompt(label), 64)
	if err != nil {
		fmt.Println("Not a valid number.")
		return 0, false
	}
	return v, true
}

func (a *app) viewInventory(ctx context.Context) {
	vehicles, err := a.fleet.ViewInventory(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tMILEAGE\tPRICE/DAY\tMAINT/KM\tAVAILABLE")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%t\n",
			v.VehicleID, v.BrandModel, v.Mileage, v.DailyPrice, v.MaintCostPerKM, v.Available)
	}
	w.Flush()
}

func (a *app) addVehicle(ctx context.Context) {
	brandModel := a.prompt("Brand and model: ")
	mileage, ok := a.promptInt("Initial mileage (km): ")
	if !ok {
		return
	}
	dailyPrice, ok := a.promptFloat("Daily price: ")
	if !ok {
		return
	}
	maintCost, ok := a.promptFloat("Maintenance cost per km: ")
	if !ok {
		return
	}

	v, err := a.fleet.AddVehicle(ctx, &fleet.AddVehicleRequest{
		BrandModel:     brandModel,
		Mileage:        mileage,
		DailyPrice:     dailyPrice,
		MaintCostPerKM: maintCost,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Added vehicle %s (%s).\n", v.VehicleID, v.BrandModel)
}

func (a *app) createBooking(ctx context.Context) {
	customer := a.prompt("Customer name: ")
	vehicleID := a.prompt("Vehicle ID: ")
	startDate := a.prompt("Start date (YYYY-MM-DD): ")
	rentalDays, ok := a.promptInt("Rental days: ")
	if !ok {
		return
	}
	estKM, ok := a.promptInt("Estimated km: ")
	if !ok {
		return
	}

	b, err := a.booking.CreateBooking(ctx, &booking.CreateBookingRequest{
		CustomerName: customer,
		VehicleID:    vehicleID,
		StartDate:    startDate,
		RentalDays:   int(rentalDays),
		EstimatedKM:  estKM,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Booking %d created: %s until %s, estimated cost %.2f.\n",
		b.BookingID, b.VehicleID, b.EndDate.Format(booking.DateLayout), b.EstimatedCost)
}

func (a *app) viewBookings(ctx context.Context) {
	bookings, err := a.booking.ViewBookings(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tVEHICLE\tSTART\tEND\tEST KM\tEST COST")
	for _, b := range bookings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%.2f\n",
			b.BookingID, b.CustomerName, b.VehicleID,
			b.StartDate.Format(booking.DateLayout), b.EndDate.Format(booking.DateLayout),
			b.EstimatedKM, b.EstimatedCost)
	}
	w.Flush()
}

func (a *app) processReturn(ctx context.Context) {
	bookingID, ok := a.promptInt("Booking ID: ")
	if !ok {
		return
	}
	actualKM, ok := a.promptInt("Actual km driven: ")
	if !ok {
		return
	}
	returnDate := a.prompt("Return date (YYYY-MM-DD): ")

	summary, err := a.returns.ProcessReturn(ctx, &returns.ProcessReturnRequest{
		BookingID:  bookingID,
		ActualKM:   actualKM,
		ReturnDate: returnDate,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Return processed for booking %d (%s, %s):\n", summary.BookingID, summary.CustomerName, summary.VehicleID)
	fmt.Printf("  Late days:       %d (fee %.2f)\n", summary.LateDays, summary.LateFee)
	fmt.Printf("  Cleaning fee:    %.2f\n", summary.CleaningFee)
	fmt.Printf("  Maintenance fee: %.2f\n", summary.MaintenanceFee)
	fmt.Printf("  Total fees:      %.2f\n", summary.TotalAdditional)
	fmt.Printf("  Revenue:         %.2f\n", summary.Revenue)
	if summary.MaintenanceScheduled {
		fmt.Println("  Maintenance was logged for this vehicle.")
	}
}

func (a *app) viewReturns(ctx context.Context) {
	results, err := a.returns.ViewReturns(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBOOKING\tKM\tLATE FEE\tCLEANING\tMAINT FEE\tDATE")
	for _, ret := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%.2f\t%.2f\t%s\n",
			ret.ReturnID, ret.BookingID, ret.ActualKM,
			ret.LateFee, ret.CleaningFee, ret.MaintenanceFee,
			ret.ReturnDate.Format(returns.DateLayout))
	}
	w.Flush()
}

func (a *app) runMaintenanceSweep(ctx context.Context) {
	events, err := a.maintenance.ScheduleMaintenance(ctx, maintenance.DefaultThresholdKM)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(events) == 0 {
		fmt.Println("No vehicles needed maintenance.")
		return
	}
	for _, e := range events {
		fmt.Printf("Scheduled maintenance for %s at %d km, cost %.2f.\n",
			e.VehicleID, e.MileageAtService, e.Cost)
	}
}

func (a *app) completeMaintenance(ctx context.Context) {
	vehicleID := a.prompt("Vehicle ID: ")
	if err := a.maintenance.CompleteMaintenance(ctx, vehicleID); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("%s is available again.\n", vehicleID)
}

func (a *app) viewMaintenanceLog(ctx context.Context) {
	entries, err := a.maintenance.ViewLog(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tMILEAGE\tCOST\tDATE")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%s\n",
			e.MaintID, e.VehicleID, e.MileageAtService, e.Cost,
			e.ServiceDate.Format(returns.DateLayout))
	}
	w.Flush()
}

func (a *app) viewTransactions(ctx context.Context) {
	transactions, err := a.ledger.ViewTransactions(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tVEHICLE\tDAYS\tREVENUE\tCLEANING\tMAINT\tLATE\tDATE")
	for _, t := range transactions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			t.TransactionID, t.CustomerName, t.VehicleID, t.RentalDurationDays,
			t.Revenue, t.CleaningFee, t.MaintenanceFee, t.LateFee,
			t.Date.Format(returns.DateLayout))
	}
	w.Flush()
}

func (a *app) financialReport(ctx context.Context) {
	report, err := a.finance.GenerateFullReport(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("=== Financial Report ===")
	fmt.Printf("Total revenue:           %.2f\n", report.TotalRevenue)
	fmt.Printf("Total operational costs: %.2f\n", report.TotalOperationalCosts)
	fmt.Printf("Total profit:            %.2f\n", report.TotalProfit)
	fmt.Printf("Average mileage:         %.2f km\n", report.AverageMileage)
}

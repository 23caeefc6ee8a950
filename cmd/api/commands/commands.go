package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/coatdesk/core/internal/adapters/client"
	"github.com/coatdesk/core/internal/adapters/repository"
	"github.com/coatdesk/core/internal/adapters/sms"
	"github.com/coatdesk/core/internal/application/services"
	"github.com/coatdesk/core/internal/application/store"
	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/infrastructure/config"
	"github.com/coatdesk/core/internal/infrastructure/logger"
	"github.com/coatdesk/core/internal/infrastructure/server"
	"github.com/coatdesk/core/internal/infrastructure/storage"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the CoatDesk API server",
		Long:  "Start the CoatDesk API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewInitCommand creates the data initialization command. It is the local
// counterpart of the initialize-data endpoint and equally idempotent.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create any missing data files with seed content",
		Run: func(cmd *cobra.Command, args []string) {
			runInit()
		},
	}
}

// NewDataCommand creates the data inspection command group, which talks to
// a running server through the gateway client.
func NewDataCommand() *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect datasets on a running server",
	}

	var serverURL string

	getCmd := &cobra.Command{
		Use:   "get <kind>",
		Short: "Print one dataset as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runDataGet(serverURL, entities.Kind(args[0]))
		},
	}
	getCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the running server")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Ask a running server to create any missing data files",
		Run: func(cmd *cobra.Command, args []string) {
			runDataInit(serverURL)
		},
	}
	initCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the running server")

	setCmd := &cobra.Command{
		Use:   "set <kind> <id> <patch-json>",
		Short: "Merge partial fields into one record and save the collection back",
		Long:  `Merge partial fields into one record and save the collection back, e.g.: data set customers 2 '{"phone":"6900000000"}'`,
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				log.Fatalf("Record id must be an integer: %v", err)
			}
			runDataSet(serverURL, entities.Kind(args[0]), id, args[2])
		},
	}
	setCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the running server")

	dataCmd.AddCommand(getCmd)
	dataCmd.AddCommand(initCmd)
	dataCmd.AddCommand(setCmd)
	return dataCmd
}

// NewStatsCommand creates the dashboard statistics command. It pulls every
// dataset from a running server into an in-memory store and prints the
// derived figures.
func NewStatsCommand() *cobra.Command {
	var serverURL string

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard statistics computed from a running server's data",
		Run: func(cmd *cobra.Command, args []string) {
			runStats(serverURL)
		},
	}
	statsCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the running server")
	return statsCmd
}

// NewSMSCommand creates the SMS test command
func NewSMSCommand() *cobra.Command {
	smsCmd := &cobra.Command{
		Use:   "sms",
		Short: "SMS provider commands",
	}

	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send a test SMS using the configured provider credentials",
		Run: func(cmd *cobra.Command, args []string) {
			to, _ := cmd.Flags().GetString("to")
			message, _ := cmd.Flags().GetString("message")

			if to == "" || message == "" {
				log.Fatal("Recipient and message are required")
			}

			runSMSSend(to, message)
		},
	}

	sendCmd.Flags().String("to", "", "Recipient phone number (required)")
	sendCmd.Flags().String("message", "", "Message body (required)")

	smsCmd.AddCommand(sendCmd)
	return smsCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CoatDesk version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("CoatDesk Core v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store := storage.NewOS(cfg.Storage.DataDir)
	if err := store.HealthCheck(); err != nil {
		appLogger.Fatal("Data directory unavailable", "error", err)
	}

	if cfg.Storage.InitializeOnStart {
		datasets := services.NewDatasetService(repository.NewDatasetRepository(store), appLogger)
		if _, err := datasets.Initialize(context.Background()); err != nil {
			appLogger.Fatal("Failed to initialize data files", "error", err)
		}
	}

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting CoatDesk API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"data_dir", store.Dir(),
	)

	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		appLogger.Fatal("Server failed to start", "error", err)
	}
}

func runInit() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store := storage.NewOS(cfg.Storage.DataDir)
	datasets := services.NewDatasetService(repository.NewDatasetRepository(store), appLogger)

	created, err := datasets.Initialize(context.Background())
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}

	if len(created) == 0 {
		fmt.Println("All data files already exist")
		return
	}
	for _, kind := range created {
		fmt.Printf("Created %s\n", kind.FileName())
	}
}

func runDataGet(serverURL string, kind entities.Kind) {
	if !kind.IsValid() {
		log.Fatalf("Unknown dataset kind %q", kind)
	}

	appLogger, err := logger.New(config.LoggerConfig{Level: "warn", Format: "console", Output: "stdout"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	gateway := client.New(serverURL, appLogger)

	var collection any
	switch kind {
	case entities.KindCustomers:
		collection = gateway.LoadCustomers(ctx)
	case entities.KindStaff:
		collection = gateway.LoadStaff(ctx)
	case entities.KindServices:
		collection = gateway.LoadServices(ctx)
	case entities.KindProducts:
		collection = gateway.LoadProducts(ctx)
	case entities.KindAppointments:
		collection = gateway.LoadAppointments(ctx)
	case entities.KindSales:
		collection = gateway.LoadSales(ctx)
	case entities.KindSalesData:
		collection = gateway.LoadSalesSeries(ctx)
	case entities.KindAppointmentsData:
		collection = gateway.LoadAppointmentsSeries(ctx)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(collection); err != nil {
		log.Fatalf("Failed to render %s: %v", kind, err)
	}
}

// applyPatch loads a collection from the server, merges a partial update
// into the record with the given id and saves the whole collection back.
func applyPatch[E store.Record[E], P interface{ Apply(E) E }](ctx context.Context, id int, patchJSON []byte, load func(context.Context) []E, save func(context.Context, []E) bool) error {
	var patch P
	if err := json.Unmarshal(patchJSON, &patch); err != nil {
		return fmt.Errorf("parse patch: %w", err)
	}

	collection := store.NewCollection[E](nil)
	collection.Replace(load(ctx))
	if _, ok := collection.Get(id); !ok {
		return fmt.Errorf("no record with id %d", id)
	}
	collection.Update(id, patch.Apply)

	if !save(ctx, collection.Snapshot()) {
		return errors.New("server rejected the save")
	}
	return nil
}

func runDataSet(serverURL string, kind entities.Kind, id int, patchJSON string) {
	appLogger, err := logger.New(config.LoggerConfig{Level: "warn", Format: "console", Output: "stdout"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	gateway := client.New(serverURL, appLogger)
	raw := []byte(patchJSON)

	switch kind {
	case entities.KindCustomers:
		err = applyPatch[entities.Customer, entities.CustomerPatch](ctx, id, raw, gateway.LoadCustomers, gateway.SaveCustomers)
	case entities.KindStaff:
		err = applyPatch[entities.Staff, entities.StaffPatch](ctx, id, raw, gateway.LoadStaff, gateway.SaveStaff)
	case entities.KindServices:
		err = applyPatch[entities.Service, entities.ServicePatch](ctx, id, raw, gateway.LoadServices, gateway.SaveServices)
	case entities.KindProducts:
		err = applyPatch[entities.Product, entities.ProductPatch](ctx, id, raw, gateway.LoadProducts, gateway.SaveProducts)
	case entities.KindAppointments:
		err = applyPatch[entities.Appointment, entities.AppointmentPatch](ctx, id, raw, gateway.LoadAppointments, gateway.SaveAppointments)
	case entities.KindSales:
		err = applyPatch[entities.Sale, entities.SalePatch](ctx, id, raw, gateway.LoadSales, gateway.SaveSales)
	default:
		err = fmt.Errorf("dataset %s does not support record updates", kind)
	}
	if err != nil {
		log.Fatalf("Update failed: %v", err)
	}
	fmt.Printf("Updated %s record %d\n", kind.DisplayName(), id)
}

func runDataInit(serverURL string) {
	appLogger, err := logger.New(config.LoggerConfig{Level: "warn", Format: "console", Output: "stdout"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if !client.New(serverURL, appLogger).InitializeData(ctx) {
		log.Fatal("Server-side initialization failed")
	}
	fmt.Println("Data files initialized")
}

func runStats(serverURL string) {
	appLogger, err := logger.New(config.LoggerConfig{Level: "warn", Format: "console", Output: "stdout"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gateway := client.New(serverURL, appLogger)

	sessionStore := store.New()
	sessionStore.Customers.Replace(gateway.LoadCustomers(ctx))
	sessionStore.Staff.Replace(gateway.LoadStaff(ctx))
	sessionStore.Products.Replace(gateway.LoadProducts(ctx))
	sessionStore.Appointments.Replace(gateway.LoadAppointments(ctx))
	sessionStore.Sales.Replace(gateway.LoadSales(ctx))
	sessionStore.SalesSeries.Replace(gateway.LoadSalesSeries(ctx))
	sessionStore.AppointmentsSeries.Replace(gateway.LoadAppointmentsSeries(ctx))

	snap := services.SnapshotOf(sessionStore)
	topService := services.TopServiceByRevenue(snap.Sales)
	topProduct := services.TopProductByRevenue(snap.Sales)
	topStaff := services.TopStaffByRevenue(snap.Staff, snap.Appointments, snap.Sales)

	fmt.Printf("Total revenue:          %.2f\n", services.TotalRevenue(snap.Sales))
	byType := services.RevenueByCustomerType(snap.Customers, snap.Sales)
	for _, t := range entities.CustomerTypes() {
		fmt.Printf("  %-12s %.2f\n", t, byType[t])
	}
	fmt.Printf("Top service:            %s (%.2f)\n", topService.Name, topService.Revenue)
	fmt.Printf("Top product:            %s (%.2f)\n", topProduct.Name, topProduct.Revenue)
	fmt.Printf("Top staff:              %s (%.2f, %d completed)\n", topStaff.Name, topStaff.Revenue, topStaff.Completed)
	fmt.Printf("Monthly sales growth:   %.1f%%\n", services.MonthlySalesGrowth(snap.SalesSeries))
	fmt.Printf("Weekly appt growth:     %.1f%%\n", services.WeeklyAppointmentsGrowth(snap.AppointmentsSeries))
	fmt.Printf("Upcoming appointments:  %d\n", services.UpcomingAppointmentsCount(snap.Appointments))
	fmt.Printf("Low stock products:     %d\n", services.LowStockCount(snap.Products, 10))
}

func runSMSSend(to, message string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	providerCfg := entities.TwilioConfig{
		AccountSID:  cfg.Twilio.AccountSID,
		AuthToken:   cfg.Twilio.AuthToken,
		PhoneNumber: cfg.Twilio.PhoneNumber,
	}
	if !providerCfg.IsComplete() {
		log.Fatal("Twilio credentials are not configured (TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_PHONE_NUMBER)")
	}

	sender := sms.NewTwilioSender(cfg.Twilio.BaseURL, appLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messageID, err := sender.Send(ctx, providerCfg, to, message)
	if err != nil {
		log.Fatalf("Send failed: %v", err)
	}
	fmt.Printf("Message sent: %s\n", messageID)
}

// Package cli implements the cobra command tree for HomeCrew.
//
// Commands resolve interactive menu choices into validated arguments
// before calling the core services: plan selection counts, duplicate-free
// work choices and future-dated scheduling are all enforced here, never
// in the services.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	catalogfile "github.com/homecrew-labs/homecrew-cli/internal/adapters/driven/catalog/file"
	configfile "github.com/homecrew-labs/homecrew-cli/internal/adapters/driven/config/file"
	"github.com/homecrew-labs/homecrew-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driven"
	"github.com/homecrew-labs/homecrew-cli/internal/core/ports/driving"
	"github.com/homecrew-labs/homecrew-cli/internal/core/services"
	"github.com/homecrew-labs/homecrew-cli/internal/logger"
	"github.com/homecrew-labs/homecrew-cli/internal/timeutil"
)

// version is set at build time via ldflags.
var version = "dev"

// Config keys understood by the config store.
const (
	configKeyDataDir = "storage.data_dir"
	configKeyCatalog = "catalog.path"
)

// Services wired by initServices. Package-level so commands and tests can
// reach them; tests swap them for doubles.
var (
	customerService driving.CustomerService
	bookingService  driving.BookingService
	paymentService  driving.PaymentService
	workCatalog     driven.Catalog
	configStore     driven.ConfigStore
	clock           timeutil.Clock = timeutil.SystemClock{}
)

var (
	flagVerbose   bool
	flagDataDir   string
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "homecrew",
	Short: "Book home services from the command line",
	Long: `HomeCrew is the customer console for a home-services marketplace.

Sign up, book immediate or scheduled service bundles under a pricing
plan, pay the computed bill, and review your bookings. Worker assignment
and completion are handled by the separate admin tooling.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the shared collection files")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "directory holding config.toml and catalog.toml (default ~/.homecrew)")
}

// initServices wires the file-backed adapters into the core services.
// Precedence for the data directory: --data-dir flag, then the
// HOMECREW_DATA_DIR environment variable, then the config store, then a
// data/ directory next to the config file.
func initServices() error {
	if configStore == nil {
		configDir := flagConfigDir
		if configDir == "" {
			configDir = os.Getenv("HOMECREW_CONFIG_DIR")
		}
		store, err := configfile.NewConfigStore(configDir)
		if err != nil {
			return err
		}
		configStore = store
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = os.Getenv("HOMECREW_DATA_DIR")
	}
	if dataDir == "" {
		dataDir = configStore.GetString(configKeyDataDir)
	}
	if dataDir == "" {
		dataDir = defaultDataDir(configStore.Path())
	}

	if workCatalog == nil {
		catalogPath := configStore.GetString(configKeyCatalog)
		if catalogPath == "" {
			catalogPath = defaultCatalogPath(configStore.Path())
		}
		workCatalog = catalogfile.NewCatalog(catalogPath)
	}

	if customerService != nil && bookingService != nil && paymentService != nil {
		return nil // already wired (tests)
	}

	customers, err := jsonfile.NewCustomerStore(dataDir)
	if err != nil {
		return err
	}
	servicesStore, err := jsonfile.NewServiceStore(dataDir)
	if err != nil {
		return err
	}
	payments, err := jsonfile.NewPaymentStore(dataDir)
	if err != nil {
		return err
	}

	customerService = services.NewCustomerService(customers, servicesStore)
	bookingService = services.NewBookingService(servicesStore, clock)
	paymentService = services.NewPaymentService(payments, servicesStore, workCatalog)

	logger.Debug("services wired; data dir %s", dataDir)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

package config

import "time"

// Built-in defaults, applied after every other source.
const (
	DefaultSessionTTL          = 7 * 24 * time.Hour
	DefaultSessionSweep        = time.Hour
	DefaultSessionCookieName   = "corb3d_session"
	DefaultMasterAdminUsername = "hcorbage"
	DefaultBcryptCost          = 10
	DefaultLogLevel            = "info"
	DefaultDriver              = DriverPostgres
	DefaultHTTPAddress         = ":8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultCEPPrimaryURL       = "https://brasilapi.com.br/api/cep/v1"
	DefaultCEPFallbackURL      = "https://viacep.com.br/ws"
	DefaultCEPTimeout          = 5 * time.Second

	// DevSessionSecret replaces an empty session secret in DevMode only.
	DevSessionSecret = "corb3d-dev-session-secret-do-not-use-in-production"
)

// Supported values of Storage.DB.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionTTL:           DefaultSessionTTL,
			SessionSweepInterval: DefaultSessionSweep,
			SessionCookieName:    DefaultSessionCookieName,
			MasterAdminUsername:  DefaultMasterAdminUsername,
			BcryptCost:           DefaultBcryptCost,
			LogLevel:             DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDriver},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			PostalCode: PostalCode{
				PrimaryURL:  DefaultCEPPrimaryURL,
				FallbackURL: DefaultCEPFallbackURL,
				Timeout:     DefaultCEPTimeout,
			},
		},
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SessionSecret       string   `json:"session_secret"`
		SessionTTL          Duration `json:"session_ttl"`
		SessionSweep        Duration `json:"session_sweep_interval"`
		SessionCookieName   string   `json:"session_cookie"`
		SecureCookie        bool     `json:"secure_cookie"`
		MasterAdminUsername string   `json:"master_admin_username"`
		MasterAdminPassword string   `json:"master_admin_password"`
		BcryptCost          int      `json:"bcrypt_cost"`
		DevMode             bool     `json:"dev_mode"`
		LogLevel            string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		PostalCode struct {
			PrimaryURL  string   `json:"primary_url"`
			FallbackURL string   `json:"fallback_url"`
			Timeout     Duration `json:"timeout"`
		} `json:"postal_code,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSecret:        jsonCfg.App.SessionSecret,
			SessionTTL:           time.Duration(jsonCfg.App.SessionTTL),
			SessionSweepInterval: time.Duration(jsonCfg.App.SessionSweep),
			SessionCookieName:    jsonCfg.App.SessionCookieName,
			SecureCookie:         jsonCfg.App.SecureCookie,
			MasterAdminUsername:  jsonCfg.App.MasterAdminUsername,
			MasterAdminPassword:  jsonCfg.App.MasterAdminPassword,
			BcryptCost:           jsonCfg.App.BcryptCost,
			DevMode:              jsonCfg.App.DevMode,
			LogLevel:             jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			PostalCode: PostalCode{
				PrimaryURL:  jsonCfg.Adapter.PostalCode.PrimaryURL,
				FallbackURL: jsonCfg.Adapter.PostalCode.FallbackURL,
				Timeout:     time.Duration(jsonCfg.Adapter.PostalCode.Timeout),
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

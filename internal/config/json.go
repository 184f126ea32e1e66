package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/alumnihub/alumnihub/internal/flagx"
	"github.com/alumnihub/alumnihub/internal/timex"
)

// jsonConfig is an intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for interval fields, which
// allows parsing both string values such as "1h" and integer nanoseconds.
// After unmarshalling, its fields are copied into the runtime Config.
type jsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	CORSAllowedOrigins    []string       `json:"cors_allowed_origins"`
}

// parseJSON loads configuration values from the JSON file given via the
// -c or -config flags. If no file is specified, nothing is loaded. If the
// file cannot be read or contains invalid JSON, the function panics.
func parseJSON(config *Config) {

	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &jsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.BcryptCost = c.BcryptCost
	config.CORSAllowedOrigins = c.CORSAllowedOrigins
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Catalog struct {
		Root       string `json:"root"`
		Collection string `json:"collection"`
		IDField    string `json:"id_field"`
		PublicDir  string `json:"public_dir"`
	} `json:"catalog,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Port string `json:"port"`
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
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Catalog: Catalog{
			Root:       jsonCfg.Catalog.Root,
			Collection: jsonCfg.Catalog.Collection,
			IDField:    jsonCfg.Catalog.IDField,
			PublicDir:  jsonCfg.Catalog.PublicDir,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Port: jsonCfg.Port,
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
	case nil:
		return nil
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
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

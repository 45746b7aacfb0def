package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// duration type that accepts "15m"-style strings.
type StructuredJSONConfig struct {
	Auth struct {
		AccessTokenTTL    Duration `json:"access_token_ttl"`
		RefreshTokenTTL   Duration `json:"refresh_token_ttl"`
		AccessPrivateKey  string   `json:"access_token_private_key"`
		AccessPublicKey   string   `json:"access_token_public_key"`
		RefreshPrivateKey string   `json:"refresh_token_private_key"`
		RefreshPublicKey  string   `json:"refresh_token_public_key"`
		TokenIssuer       string   `json:"token_issuer"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Catalog struct {
		BaseURL      string   `json:"base_url"`
		AuthURL      string   `json:"auth_url"`
		ClientID     string   `json:"client_id"`
		ClientSecret string   `json:"client_secret"`
		Timeout      Duration `json:"timeout"`
	} `json:"catalog,omitempty"`
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
		Auth: Auth{
			AccessTokenTTL:    time.Duration(jsonCfg.Auth.AccessTokenTTL),
			RefreshTokenTTL:   time.Duration(jsonCfg.Auth.RefreshTokenTTL),
			AccessPrivateKey:  jsonCfg.Auth.AccessPrivateKey,
			AccessPublicKey:   jsonCfg.Auth.AccessPublicKey,
			RefreshPrivateKey: jsonCfg.Auth.RefreshPrivateKey,
			RefreshPublicKey:  jsonCfg.Auth.RefreshPublicKey,
			TokenIssuer:       jsonCfg.Auth.TokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Catalog: Catalog{
			BaseURL:      jsonCfg.Catalog.BaseURL,
			AuthURL:      jsonCfg.Catalog.AuthURL,
			ClientID:     jsonCfg.Catalog.ClientID,
			ClientSecret: jsonCfg.Catalog.ClientSecret,
			Timeout:      time.Duration(jsonCfg.Catalog.Timeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

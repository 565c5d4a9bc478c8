package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can carry durations in
// the human "1h30m" form instead of nanosecond integers.
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements [json.Unmarshaler] for both string ("30s") and
// numeric (nanoseconds) encodings.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}
}

// structuredJSONConfig mirrors StructuredConfig with JSON tags and
// string-friendly durations.
type structuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Client struct {
		GatewayURL     string   `json:"gateway_url"`
		OwnerAddress   string   `json:"owner_address"`
		ArtifactDir    string   `json:"artifact_dir"`
		StatePath      string   `json:"state_path"`
		RequestTimeout Duration `json:"request_timeout"`
		ProofTimeout   Duration `json:"proof_timeout"`
		FetchRetries   int      `json:"fetch_retries"`
	} `json:"client,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Blobs struct {
			Dir string `json:"dir"`
		} `json:"blobs,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading json config %s: %w", jsonFilePath, err)
	}

	var jc structuredJSONConfig
	if err := json.Unmarshal(raw, &jc); err != nil {
		return nil, fmt.Errorf("error parsing json config %s: %w", jsonFilePath, err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jc.App.TokenSignKey,
			TokenIssuer:   jc.App.TokenIssuer,
			TokenDuration: jc.App.TokenDuration.Duration,
			Version:       jc.App.Version,
		},
		Client: Client{
			GatewayURL:     jc.Client.GatewayURL,
			OwnerAddress:   jc.Client.OwnerAddress,
			ArtifactDir:    jc.Client.ArtifactDir,
			StatePath:      jc.Client.StatePath,
			RequestTimeout: jc.Client.RequestTimeout.Duration,
			ProofTimeout:   jc.Client.ProofTimeout.Duration,
			FetchRetries:   jc.Client.FetchRetries,
		},
		Storage: Storage{
			DB:    DB{DSN: jc.Storage.DB.DSN},
			Blobs: Blobs{Dir: jc.Storage.Blobs.Dir},
		},
		Server: Server{
			HTTPAddress:    jc.Server.HTTPAddress,
			RequestTimeout: jc.Server.RequestTimeout.Duration,
		},
	}, nil
}

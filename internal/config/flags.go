package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses configuration flags from the command line.
//
// Flags:
//
//	-a gateway listen address in format [host]:[port]
//	-d anchor registry database DSN
//	-blobs-dir blob store directory
//	-gateway-url client gateway base URL
//	-owner client owner address
//	-artifact-dir circuit artifact cache directory
//	-state-path client local state (SQLite) path
//	-request-timeout request timeout (e.g. "30s")
//	-proof-timeout proof generation timeout (e.g. "2m")
//	-fetch-retries bounded storage fetch attempt count
//	-token-sign-key session token signing key
//	-token-issuer session token issuer
//	-token-duration session token lifetime (e.g. "1h")
//	-c/-config json config file path
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("veilvault", flag.ContinueOnError)

	var (
		serverAddress  string
		databaseDSN    string
		blobsDir       string
		gatewayURL     string
		ownerAddress   string
		artifactDir    string
		statePath      string
		requestTimeout time.Duration
		proofTimeout   time.Duration
		fetchRetries   int
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		jsonConfigPath string
	)

	fs.StringVar(&serverAddress, "a", "", "Gateway listen address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Anchor registry database DSN")
	fs.StringVar(&blobsDir, "blobs-dir", "", "Blob store directory")
	fs.StringVar(&gatewayURL, "gateway-url", "", "Gateway base URL")
	fs.StringVar(&ownerAddress, "owner", "", "Owner address")
	fs.StringVar(&artifactDir, "artifact-dir", "", "Circuit artifact cache directory")
	fs.StringVar(&statePath, "state-path", "", "Client local state path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.DurationVar(&proofTimeout, "proof-timeout", 0, "Proof generation timeout (e.g. 2m)")
	fs.IntVar(&fetchRetries, "fetch-retries", 0, "Storage fetch attempt count")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token lifetime (e.g. 1h)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Client: Client{
			GatewayURL:     gatewayURL,
			OwnerAddress:   ownerAddress,
			ArtifactDir:    artifactDir,
			StatePath:      statePath,
			RequestTimeout: requestTimeout,
			ProofTimeout:   proofTimeout,
			FetchRetries:   fetchRetries,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Blobs: Blobs{Dir: blobsDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

package service

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/veilvault/veilvault/internal/adapter"
	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/store"
	"github.com/veilvault/veilvault/internal/utils"
	"github.com/veilvault/veilvault/models"
)

// Gateway authentication errors.
var (
	// ErrChallengeUnknown means the presented challenge was never issued,
	// already consumed, or expired.
	ErrChallengeUnknown = errors.New("unknown or expired login challenge")

	// ErrBadSignature means the challenge signature does not verify against
	// the owner's registered public key.
	ErrBadSignature = errors.New("challenge signature verification failed")

	// ErrTokenIsExpired means the presented session token is past its "exp"
	// claim.
	ErrTokenIsExpired = errors.New("session token is expired")
)

// challengeTTL bounds how long an issued challenge stays redeemable.
const challengeTTL = 2 * time.Minute

// AuthServiceConfig holds the token parameters of the gateway.
type AuthServiceConfig struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// AuthService implements the gateway's challenge-signature login.
//
// Login is wallet-native: the gateway hands out a one-shot challenge, the
// client signs it with the same wallet that derives vault keys, and the
// gateway verifies the signature against the owner's registered public key.
// No passwords exist anywhere in the flow.
type AuthService struct {
	owners store.OwnerRegistry
	uuids  *utils.UUIDGenerator
	cfg    AuthServiceConfig
	logger *logger.Logger

	mu         sync.Mutex
	challenges map[string]issuedChallenge
}

type issuedChallenge struct {
	owner     string
	expiresAt time.Time
}

// NewAuthService constructs the gateway [AuthService].
func NewAuthService(owners store.OwnerRegistry, cfg AuthServiceConfig, log *logger.Logger) *AuthService {
	return &AuthService{
		owners:     owners,
		uuids:      utils.NewUUIDGenerator(),
		cfg:        cfg,
		logger:     log,
		challenges: make(map[string]issuedChallenge),
	}
}

// NewChallenge issues a fresh one-shot challenge for an owner address.
func (s *AuthService) NewChallenge(ownerAddress string) (string, error) {
	if ownerAddress == "" {
		return "", errors.New("owner address is required")
	}

	challenge := s.uuids.Generate()

	s.mu.Lock()
	s.pruneLocked(time.Now())
	s.challenges[challenge] = issuedChallenge{owner: ownerAddress, expiresAt: time.Now().Add(challengeTTL)}
	s.mu.Unlock()

	return challenge, nil
}

// Login redeems a signed challenge for a session token.
//
// First-time owners are registered with the public key presented in the
// request, provided it matches the claimed signature. Returning owners are
// verified strictly against the key already on file; the request's key is
// ignored for them.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	if err := s.redeemChallenge(req.OwnerAddress, req.Challenge); err != nil {
		return models.Token{}, err
	}

	sig, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		return models.Token{}, fmt.Errorf("decode signature: %w", ErrBadSignature)
	}

	publicKey, err := s.owners.GetPublicKey(ctx, req.OwnerAddress)
	if errors.Is(err, store.ErrOwnerNotFound) {
		publicKey, err = s.registerFirstLogin(ctx, req)
	}
	if err != nil {
		return models.Token{}, err
	}

	if !adapter.VerifySignature(ed25519.PublicKey(publicKey), req.Challenge, sig) {
		s.logger.Warn().Str("owner", req.OwnerAddress).Msg("login rejected: bad challenge signature")
		return models.Token{}, ErrBadSignature
	}

	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, req.OwnerAddress, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("issue session token: %w", err)
	}

	s.logger.Info().Str("owner", req.OwnerAddress).Msg("owner logged in")
	return token, nil
}

// ParseToken validates a session token string and returns its parsed form.
// Expired tokens surface as [ErrTokenIsExpired].
func (s *AuthService) ParseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, err
	}
	return token, nil
}

// redeemChallenge consumes a challenge; each issued challenge works exactly
// once.
func (s *AuthService) redeemChallenge(ownerAddress, challenge string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.challenges[challenge]
	if !ok || issued.owner != ownerAddress || time.Now().After(issued.expiresAt) {
		return ErrChallengeUnknown
	}
	delete(s.challenges, challenge)
	return nil
}

func (s *AuthService) registerFirstLogin(ctx context.Context, req models.LoginRequest) ([]byte, error) {
	if req.PublicKey == "" {
		return nil, store.ErrOwnerNotFound
	}
	publicKey, err := base64.StdEncoding.DecodeString(req.PublicKey)
	if err != nil || len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("malformed public key: %w", ErrBadSignature)
	}

	if err := s.owners.Register(ctx, req.OwnerAddress, publicKey); err != nil {
		// lost a registration race; verify against whatever won
		if errors.Is(err, store.ErrOwnerAlreadyRegistered) {
			return s.owners.GetPublicKey(ctx, req.OwnerAddress)
		}
		return nil, err
	}
	return publicKey, nil
}

func (s *AuthService) pruneLocked(now time.Time) {
	for challenge, issued := range s.challenges {
		if now.After(issued.expiresAt) {
			delete(s.challenges, challenge)
		}
	}
}

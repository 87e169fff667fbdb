package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/univendor/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps login sessions in Redis. Session IDs are
// opaque random tokens handed to the browser in a cookie; the session
// record itself never leaves the server, so role checks and the
// impersonation overlay can be revalidated on every request.
type RedisSessionStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisSessionStore creates a session store from the application config
func NewRedisSessionStore(redisCfg *config.RedisConfig, sessionCfg *config.SessionConfig) (*RedisSessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr(),
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSessionStore{
		client:    client,
		keyPrefix: sessionCfg.KeyPrefix,
		ttl:       sessionCfg.TTL,
	}, nil
}

// NewRedisSessionStoreWithClient creates a store with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisSessionStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisSessionStore {
	if keyPrefix == "" {
		keyPrefix = "session:"
	}
	if ttl == 0 {
		ttl = 168 * time.Hour
	}
	return &RedisSessionStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Create stores a new session and returns its opaque ID
func (s *RedisSessionStore) Create(ctx context.Context, sess *identity.Session) (string, error) {
	id, err := generateSessionID()
	if err != nil {
		return "", err
	}

	if err := s.write(ctx, id, sess); err != nil {
		return "", err
	}
	return id, nil
}

// Get loads the session for the given ID. Unknown or expired IDs
// return shared.ErrUnauthorized.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*identity.Session, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shared.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess identity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &sess, nil
}

// Update replaces the stored session, refreshing its TTL
func (s *RedisSessionStore) Update(ctx context.Context, id string, sess *identity.Session) error {
	return s.write(ctx, id, sess)
}

// Delete removes the session. Deleting an unknown session is not an error.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (s *RedisSessionStore) GetClient() *redis.Client {
	return s.client
}

func (s *RedisSessionStore) write(ctx context.Context, id string, sess *identity.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// generateSessionID returns a 128-bit random token in hex
func generateSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

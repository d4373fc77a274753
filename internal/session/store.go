package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation transcript.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ContextValue is a single context entry with its own timestamp, so each key
// ages independently of the rest of the session.
type ContextValue struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store keeps per-user conversation state in Redis. The transcript lives under
// a long TTL; the context map and the last-shown-locations slot expire much
// faster, so ordinal references never resolve against stale data. Expired keys
// are simply absent on the next read, which is exactly the lazy-eviction
// behavior the router depends on.
type Store struct {
	redis           *redis.Client
	tracer          trace.Tracer
	logger          *logging.Logger
	conversationTTL time.Duration
	locationTTL     time.Duration
}

// NewStore creates a session store. Both TTLs are required because they guard
// different data: conversationTTL for the transcript, locationTTL for context
// flags and the locations slot.
func NewStore(client *redis.Client, conversationTTL, locationTTL time.Duration, logger *logging.Logger) *Store {
	if client == nil {
		panic("session: redis client cannot be nil")
	}
	if conversationTTL <= 0 {
		conversationTTL = 24 * time.Hour
	}
	if locationTTL <= 0 {
		locationTTL = 10 * time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		redis:           client,
		tracer:          otel.Tracer("almassist.internal.session"),
		logger:          logger,
		conversationTTL: conversationTTL,
		locationTTL:     locationTTL,
	}
}

func historyKey(userID string) string {
	return fmt.Sprintf("chat:history:%s", userID)
}

func contextKey(userID string) string {
	return fmt.Sprintf("chat:context:%s", userID)
}

func locationsKey(userID string) string {
	return fmt.Sprintf("chat:locations:%s", userID)
}

// AppendMessage adds one turn to the user's transcript, creating the session
// if absent, and refreshes the transcript TTL.
func (s *Store) AppendMessage(ctx context.Context, userID, role, text string) error {
	ctx, span := s.tracer.Start(ctx, "session.append_message")
	defer span.End()

	history, err := s.loadHistory(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return err
	}

	history = append(history, Message{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})

	data, err := json.Marshal(history)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to marshal history: %w", err)
	}
	if err := s.redis.Set(ctx, historyKey(userID), data, s.conversationTTL).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to persist history: %w", err)
	}
	return nil
}

// History returns the user's transcript, oldest first. A missing or expired
// session yields an empty slice, never an error: the router treats any read
// failure as "no history".
func (s *Store) History(ctx context.Context, userID string) []Message {
	ctx, span := s.tracer.Start(ctx, "session.history")
	defer span.End()

	history, err := s.loadHistory(ctx, userID)
	if err != nil {
		span.RecordError(err)
		s.logger.Warn("session: history read failed", "user_id", userID, "error", err)
		return nil
	}
	return history
}

func (s *Store) loadHistory(ctx context.Context, userID string) ([]Message, error) {
	data, err := s.redis.Get(ctx, historyKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: failed to load history: %w", err)
	}

	var history []Message
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("session: failed to decode history: %w", err)
	}
	return history, nil
}

// SaveContext upserts one context entry with the current timestamp and
// refreshes the context TTL. History is untouched.
func (s *Store) SaveContext(ctx context.Context, userID, key, value string) error {
	ctx, span := s.tracer.Start(ctx, "session.save_context")
	defer span.End()

	contexts := s.Context(ctx, userID)
	if contexts == nil {
		contexts = make(map[string]ContextValue)
	}
	contexts[key] = ContextValue{Value: value, UpdatedAt: time.Now().UTC()}

	data, err := json.Marshal(contexts)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to marshal context: %w", err)
	}
	if err := s.redis.Set(ctx, contextKey(userID), data, s.locationTTL).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to persist context: %w", err)
	}
	return nil
}

// Context returns the full context mapping for a user, or an empty map.
func (s *Store) Context(ctx context.Context, userID string) map[string]ContextValue {
	data, err := s.redis.Get(ctx, contextKey(userID)).Bytes()
	if err == redis.Nil {
		return map[string]ContextValue{}
	}
	if err != nil {
		s.logger.Warn("session: context read failed", "user_id", userID, "error", err)
		return map[string]ContextValue{}
	}

	var contexts map[string]ContextValue
	if err := json.Unmarshal(data, &contexts); err != nil {
		s.logger.Warn("session: context decode failed", "user_id", userID, "error", err)
		return map[string]ContextValue{}
	}
	return contexts
}

// Flag reports whether a boolean-like context value is set to "true".
func (s *Store) Flag(ctx context.Context, userID, key string) bool {
	return s.Context(ctx, userID)[key].Value == "true"
}

// SaveLocations stores the ordered list of location names last shown to the
// user, in its own slot with the short TTL.
func (s *Store) SaveLocations(ctx context.Context, userID string, names []string) error {
	ctx, span := s.tracer.Start(ctx, "session.save_locations")
	defer span.End()

	data, err := json.Marshal(names)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to marshal locations: %w", err)
	}
	if err := s.redis.Set(ctx, locationsKey(userID), data, s.locationTTL).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to persist locations: %w", err)
	}

	s.logger.Info("session: locations slot saved", "user_id", userID, "count", len(names))
	return nil
}

// Locations returns the last list of location names shown to the user, or nil
// when none was shown or the slot has expired.
func (s *Store) Locations(ctx context.Context, userID string) []string {
	data, err := s.redis.Get(ctx, locationsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		s.logger.Warn("session: locations read failed", "user_id", userID, "error", err)
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		s.logger.Warn("session: locations decode failed", "user_id", userID, "error", err)
		return nil
	}
	return names
}

// ResolveReference maps an ordinal reference ("segunda", "2da", "2", "última")
// to a name from the stored locations list. When the token is not a recognized
// ordinal it falls back to accent-insensitive substring matching. The second
// return value is false when nothing resolves, including the no-list case.
func (s *Store) ResolveReference(ctx context.Context, userID, reference string) (string, bool) {
	names := s.Locations(ctx, userID)
	if len(names) == 0 {
		return "", false
	}
	return resolveOrdinal(names, reference)
}

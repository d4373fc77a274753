package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

const (
	maxQueryLen = 10000
	maxRows     = 1000
)

// ErrUnsafeQuery is returned when a statement fails the read-only guard.
var ErrUnsafeQuery = errors.New("directory: query rejected by safety guard")

var (
	commentPattern    = regexp.MustCompile(`(?s)--.*?\n|/\*.*?\*/`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	unionAllPattern   = regexp.MustCompile(`UNION\s+ALL\s+SELECT`)
)

// blockedKeywords are statements that must never reach the database. The
// guard matches them as standalone commands, not as substrings of column
// names.
var blockedKeywords = []string{
	"INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "CREATE",
	"TRUNCATE", "MERGE", "EXECUTE", "EXEC", "GRANT", "REVOKE",
	"COMMIT", "ROLLBACK", "SAVEPOINT", "LOCK", "UNLOCK",
	"DECLARE", "BEGIN", "CALL", "ANALYZE", "COMMENT",
	"EXPLAIN", "RENAME", "SET", "SHUTDOWN", "WITH",
}

// Store provides guarded, read-only access to the operational database.
// Every statement passes through the safety guard before execution.
type Store struct {
	db     *sql.DB
	tracer trace.Tracer
	logger *logging.Logger
}

// NewStore creates a directory store backed by Postgres.
func NewStore(db *sql.DB, logger *logging.Logger) *Store {
	if db == nil {
		panic("directory: db is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		db:     db,
		tracer: otel.Tracer("almassist.internal.directory"),
		logger: logger,
	}
}

// IsSafeQuery reports whether a statement is a single plain SELECT. Comments
// are stripped before inspection so they cannot hide a mutation.
func IsSafeQuery(query string) bool {
	cleaned := commentPattern.ReplaceAllString(query+"\n", " ")
	normalized := strings.ToUpper(strings.Join(strings.Fields(cleaned), " "))

	for _, keyword := range blockedKeywords {
		pattern := regexp.MustCompile(`(^|\s|;)` + keyword + `\s`)
		if pattern.MatchString(normalized + " ") {
			return false
		}
	}

	if !strings.HasPrefix(normalized, "SELECT") {
		return false
	}

	if strings.Count(normalized, ";") > 1 {
		return false
	}

	if strings.Contains(normalized, "UNION") && !unionAllPattern.MatchString(normalized) {
		return false
	}

	return true
}

// ValidIdentifier reports whether a table or column name is plain enough to
// interpolate into a statement.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// Query runs a guarded SELECT and returns column names plus row values.
// String arguments carrying quoting or comment characters are rejected.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]string, [][]any, error) {
	ctx, span := s.tracer.Start(ctx, "directory.query")
	defer span.End()

	if len(query) > maxQueryLen {
		return nil, nil, fmt.Errorf("%w: statement too long", ErrUnsafeQuery)
	}
	if !IsSafeQuery(query) {
		s.logger.Warn("unsafe statement rejected", "query", query)
		return nil, nil, ErrUnsafeQuery
	}
	for _, arg := range args {
		str, ok := arg.(string)
		if !ok {
			continue
		}
		if strings.ContainsAny(str, `;'"`) || strings.Contains(str, "--") || strings.Contains(str, "/*") {
			return nil, nil, fmt.Errorf("%w: suspicious argument", ErrUnsafeQuery)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		return nil, nil, fmt.Errorf("directory: query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		span.RecordError(err)
		return nil, nil, fmt.Errorf("directory: failed to read columns: %w", err)
	}

	var results [][]any
	for rows.Next() {
		if len(results) >= maxRows {
			break
		}
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			span.RecordError(err)
			return nil, nil, fmt.Errorf("directory: failed to scan row: %w", err)
		}
		results = append(results, values)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, nil, fmt.Errorf("directory: row iteration failed: %w", err)
	}

	return columns, results, nil
}

// SearchLocations finds warehouses whose name or city matches the term.
// Results supplement the static roster when the database carries newer
// contact data.
func (s *Store) SearchLocations(ctx context.Context, term string) ([]Location, error) {
	ctx, span := s.tracer.Start(ctx, "directory.search_locations")
	defer span.End()

	const query = `SELECT key, name, address, postal_code, city, maps_url, plaza, phone, hours
		FROM locations
		WHERE name ILIKE $1 OR city ILIKE $1
		ORDER BY plaza, name
		LIMIT 50`

	rows, err := s.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("directory: location search failed: %w", err)
	}
	defer rows.Close()

	var out []Location
	for rows.Next() {
		var loc Location
		var phone, hours sql.NullString
		if err := rows.Scan(&loc.Key, &loc.Name, &loc.Address, &loc.PostalCode,
			&loc.City, &loc.MapsURL, &loc.Plaza, &phone, &hours); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("directory: failed to scan location: %w", err)
		}
		loc.Phone = phone.String
		loc.Hours = hours.String
		out = append(out, loc)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("directory: row iteration failed: %w", err)
	}

	return out, nil
}

// ListTables returns the user tables visible in the public schema.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	const query = `SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name`

	_, rows, err := s.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		switch v := row[0].(type) {
		case string:
			names = append(names, v)
		case []byte:
			names = append(names, string(v))
		}
	}
	return names, nil
}

// TableColumns returns column metadata for one table. The table name is
// validated before interpolation.
func (s *Store) TableColumns(ctx context.Context, table string) ([]string, [][]any, error) {
	if !ValidIdentifier(table) {
		return nil, nil, fmt.Errorf("%w: invalid table name", ErrUnsafeQuery)
	}

	const query = `SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_name = $1
		ORDER BY ordinal_position`

	return s.Query(ctx, query, strings.ToLower(table))
}

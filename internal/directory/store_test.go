package directory

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

func TestIsSafeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"plain select", "SELECT name FROM locations", true},
		{"select with where", "select * from locations where city = $1", true},
		{"insert", "INSERT INTO locations VALUES (1)", false},
		{"update", "UPDATE locations SET name = 'x'", false},
		{"delete", "DELETE FROM locations", false},
		{"drop", "DROP TABLE locations", false},
		{"truncate", "TRUNCATE locations", false},
		{"not a select", "SHOW TABLES", false},
		{"piggybacked statement", "SELECT 1; DROP TABLE locations; SELECT 2", false},
		{"hidden in comment", "SELECT 1 /* x */; DELETE FROM locations; --", false},
		{"union injection", "SELECT name FROM locations UNION SELECT password FROM users", false},
		{"union all is tolerated", "SELECT name FROM locations UNION ALL SELECT name FROM old_locations", true},
		{"column named like keyword", "SELECT created_at, updated_at FROM locations", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSafeQuery(tc.query))
		})
	}
}

func TestValidIdentifier(t *testing.T) {
	assert.True(t, ValidIdentifier("locations"))
	assert.True(t, ValidIdentifier("user_tab_columns"))
	assert.False(t, ValidIdentifier("locations; DROP TABLE x"))
	assert.False(t, ValidIdentifier("loc-ations"))
	assert.False(t, ValidIdentifier(""))
}

func TestQueryRejectsUnsafeStatements(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, logging.Default())

	_, _, err = store.Query(context.Background(), "DELETE FROM locations")
	assert.ErrorIs(t, err, ErrUnsafeQuery)

	_, _, err = store.Query(context.Background(), "SELECT * FROM locations WHERE name = $1", "x'; DROP TABLE locations; --")
	assert.ErrorIs(t, err, ErrUnsafeQuery)
}

func TestQueryCapsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name"})
	for i := 0; i < maxRows+10; i++ {
		rows.AddRow("loc")
	}
	mock.ExpectQuery("SELECT name FROM locations").WillReturnRows(rows)

	store := NewStore(db, logging.Default())
	columns, results, err := store.Query(context.Background(), "SELECT name FROM locations")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, columns)
	assert.Len(t, results, maxRows)
}

func TestSearchLocations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"key", "name", "address", "postal_code", "city", "maps_url", "plaza", "phone", "hours"}).
		AddRow("ULÚA", "ALMACÉN ULÚA", "Boulevard San Juan de Ulúa #3", "91899", "Veracruz, Veracruz",
			"https://maps.app.goo.gl/bMypUhqrdsa3835r5", "PLAZA GOLFO", "229-123-4567", nil)

	mock.ExpectQuery("SELECT key, name, address").
		WithArgs("%ulúa%").
		WillReturnRows(rows)

	store := NewStore(db, logging.Default())
	locations, err := store.SearchLocations(context.Background(), "ulúa")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "ALMACÉN ULÚA", locations[0].Name)
	assert.Equal(t, "229-123-4567", locations[0].Phone)
	assert.Empty(t, locations[0].Hours)
	require.NoError(t, mock.ExpectationsWereMet())
}

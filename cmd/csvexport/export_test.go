package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) string {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "app.db")
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE people (name TEXT NOT NULL, age INTEGER)`,
		`INSERT INTO people (name, age) VALUES ('Ann', 30), ('Bo, Jr.', NULL)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return dsn
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "people.csv")
	metricsFile := filepath.Join(dir, "csvexport.prom")

	err := export(context.Background(), exportConfig{
		Driver:      "sqlite",
		DSN:         seed(t),
		Query:       "SELECT name, age FROM people ORDER BY rowid",
		Out:         out,
		MetricsFile: metricsFile,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "name,age\nAnn,30\n\"Bo, Jr.\",\n", string(data))

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(prom), "csvexport_rows_total"), "metrics file should hold rows_total")
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  exportConfig
	}{
		{
			name: "missing dsn",
			cfg:  exportConfig{Driver: "sqlite", Query: "SELECT 1", Out: "/dev/null"},
		},
		{
			name: "bad query",
			cfg:  exportConfig{Driver: "sqlite", Query: "SELECT * FROM nowhere", Out: "/dev/null"},
		},
		{
			name: "bad output",
			cfg:  exportConfig{Driver: "sqlite", Query: "SELECT 1", Out: "s3://bucket"},
		},
	}

	dsn := seed(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name != "missing dsn" {
				tt.cfg.DSN = dsn
			}
			assert.Error(t, export(context.Background(), tt.cfg))
		})
	}
}

func TestExport_FailureRemovesOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "people.csv")

	// abs() of the smallest integer overflows on the second row.
	err := export(context.Background(), exportConfig{
		Driver: "sqlite",
		DSN:    seed(t),
		Query:  "SELECT name, CASE WHEN age IS NULL THEN abs(-9223372036854775808) ELSE age END AS age FROM people ORDER BY rowid",
		Out:    out,
	})
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "failed export should not leave %s behind", out)
}

func TestDrivers(t *testing.T) {
	registered := sql.Drivers()
	for _, d := range drivers() {
		assert.Contains(t, registered, d)
	}
}

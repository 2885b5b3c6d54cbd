package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPostgresDSN(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{
		User:     "feeds",
		Password: "secret",
		Name:     "storefeed",
		Host:     "db.internal",
		Port:     5433,
	})
	require.NoError(t, err)
	require.Contains(t, dsn, "host=db.internal")
	require.Contains(t, dsn, "port=5433")
	require.Contains(t, dsn, "dbname=storefeed")
	require.Contains(t, dsn, "sslmode=disable")
}

func TestBuildPostgresDSNRequiresUserAndName(t *testing.T) {
	_, err := buildPostgresDSN(Config{Host: "localhost"})
	require.Error(t, err)
}

func TestBuildPostgresDSNPassthrough(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{DSN: "host=custom"})
	require.NoError(t, err)
	require.Equal(t, "host=custom", dsn)
}

func TestBuildMySQLDSN(t *testing.T) {
	dsn, err := buildMySQLDSN(Config{
		User:     "feeds",
		Password: "secret",
		Name:     "storefeed",
	})
	require.NoError(t, err)
	require.Contains(t, dsn, "feeds:secret@tcp(127.0.0.1:3306)/storefeed")
	require.Contains(t, dsn, "parseTime=True")
}

func TestBuildMySQLDSNOptionsOverride(t *testing.T) {
	dsn, err := buildMySQLDSN(Config{
		User:    "feeds",
		Name:    "storefeed",
		Options: map[string]string{"charset": "latin1"},
	})
	require.NoError(t, err)
	require.Contains(t, dsn, "charset=latin1")
}

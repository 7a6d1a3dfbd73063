package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms_backend/internals/configs"
)

func TestBuildDSNPrefersDatabaseURL(t *testing.T) {
	cfg := configs.AppConfig{DatabaseURL: "postgres://u:p@db:5432/x", DBHost: "ignored"}
	assert.Equal(t, "postgres://u:p@db:5432/x", BuildDSN(cfg))
}

func TestBuildDSNFromParts(t *testing.T) {
	cfg := configs.AppConfig{
		DBHost:          "localhost",
		DBPort:          "5432",
		DBUser:          "hr",
		DBPassword:      "s3cr@t",
		DBName:          "hrms",
		DBSSLMode:       "disable",
		DBStmtTimeoutMS: 3000,
	}

	u, err := url.Parse(BuildDSN(cfg))
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "localhost:5432", u.Host)
	assert.Equal(t, "/hrms", u.Path)
	assert.Equal(t, "hr", u.User.Username())
	pw, _ := u.User.Password()
	assert.Equal(t, "s3cr@t", pw)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "-c statement_timeout=3000", u.Query().Get("options"))
}

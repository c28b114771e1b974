package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"mongo": map[string]any{
			"uri": "",
		},
		"geocoding": map[string]any{
			"baseUrl": "",
		},
		"auth": map[string]any{
			"jwtSecret":   "",
			"adminEmails": []any{},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "GEOCODING_BASEURL", want: "geocoding.baseUrl"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "AUTH_ADMINEMAILS", want: "auth.adminEmails"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, "mongodb://127.0.0.1:27017/localhunt", cfg.Mongo.URI)
	assert.Equal(t, "localhunt", cfg.Mongo.Database)
	assert.Equal(t, []string{"admin@localhunt.com"}, cfg.Auth.AdminEmails)
	assert.Equal(t, 10000, cfg.Places.DefaultRadius)
	assert.InDelta(t, 1.0, cfg.Geocoding.RPS, 0)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.NotNil(t, cfg.Breaker)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Store: &StoreConfig{Driver: "postgres"},
		Auth:  &AuthConfig{Provider: "firebase", AdminEmails: []string{"ops@example.com"}},
	}
	cfg.HTTP.Port = 8080
	ApplyDefaults(cfg)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "firebase", cfg.Auth.Provider)
	assert.Equal(t, []string{"ops@example.com"}, cfg.Auth.AdminEmails)
}

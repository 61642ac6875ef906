package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"security": map[string]any{
			"encryptionKey": "",
			"sessionSecret": "",
		},
		"meta": map[string]any{
			"clientId":    "",
			"redirectUri": "",
		},
		"cache": map[string]any{
			"retainPerUser": 1,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECURITY_ENCRYPTIONKEY", want: "security.encryptionKey"},
		{envKey: "SECURITY_SESSIONSECRET", want: "security.sessionSecret"},
		{envKey: "META_CLIENTID", want: "meta.clientId"},
		{envKey: "META_REDIRECTURI", want: "meta.redirectUri"},
		{envKey: "CACHE_RETAINPERUSER", want: "cache.retainPerUser"},
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

package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"sqlite": map[string]any{
			"path": "database/users.db",
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SQLITE_PATH", want: "sqlite.path"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
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

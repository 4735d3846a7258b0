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
		"redis": map[string]any{
			"keyPrefix": "yelocar",
		},
		"firebase": map[string]any{
			"databaseUrl": "",
			"leadTopic":   "",
		},
		"stores": map[string]any{
			"keyValue": "firebase",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REDIS_KEYPREFIX", want: "redis.keyPrefix"},
		{envKey: "FIREBASE_DATABASEURL", want: "firebase.databaseUrl"},
		{envKey: "FIREBASE_LEADTOPIC", want: "firebase.leadTopic"},
		{envKey: "STORES_KEYVALUE", want: "stores.keyValue"},
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

package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"printer": map[string]any{
			"spoolDir": "",
			"connectTimeout": "3s",
		},
		"storage": map[string]any{
			"snapshotPath": "",
		},
		"pix": map[string]any{
			"merchantName": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PRINTER_SPOOLDIR", want: "printer.spoolDir"},
		{envKey: "PRINTER_CONNECTTIMEOUT", want: "printer.connectTimeout"},
		{envKey: "STORAGE_SNAPSHOTPATH", want: "storage.snapshotPath"},
		{envKey: "PIX_MERCHANTNAME", want: "pix.merchantName"},
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

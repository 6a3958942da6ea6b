package config

import "testing"

func TestNormalizeEnv(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"production", "production"},
		{"prod", "production"},
		{" PROD ", "production"},
		{"staging", "staging"},
		{"local", "local"},
		{"dev", "dev"},
		{"", "dev"},
		{"anything-else", "dev"},
	}
	for _, tc := range cases {
		if got := normalizeEnv(tc.raw); got != tc.want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeStoreType(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"s3", "s3"},
		{" S3 ", "s3"},
		{"none", "none"},
		{"NONE", "none"},
		{"local", "local"},
		{"", "local"},
		{"gcs", "local"},
	}
	for _, tc := range cases {
		if got := normalizeStoreType(tc.raw); got != tc.want {
			t.Fatalf("normalizeStoreType(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"url passthrough", "postgres://u:p@localhost:5432/app?sslmode=disable", "postgres://u:p@localhost:5432/app?sslmode=disable"},
		{"url uppercase scheme", "POSTGRESQL://u:p@db/app", "POSTGRESQL://u:p@db/app"},
		{"quoted url", `"postgres://u:p@localhost/app"`, "postgres://u:p@localhost/app"},
		{"kv adds sslmode", "host=localhost user=app dbname=app", "host=localhost user=app dbname=app sslmode=disable"},
		{"kv keeps sslmode", "host=localhost dbname=app sslmode=require", "host=localhost dbname=app sslmode=require"},
		{"kv collapses whitespace", "  host=localhost   dbname=app  ", "host=localhost dbname=app sslmode=disable"},
		{"unrecognized passthrough", "file:test.db", "file:test.db"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeDSN(tc.in); got != tc.want {
				t.Fatalf("NormalizeDSN(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestGetNormalizedDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", " host=localhost dbname=app ")
	if got := GetNormalizedDSN(); got != "host=localhost dbname=app sslmode=disable" {
		t.Fatalf("got %q", got)
	}
}

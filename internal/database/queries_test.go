package database

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "pasta", want: "pasta"},
		{name: "percent", input: "100% rye", want: `100\% rye`},
		{name: "underscore", input: "under_score", want: `under\_score`},
		{name: "backslash", input: `back\slash`, want: `back\\slash`},
		{name: "all metacharacters", input: `\%_`, want: `\\\%\_`},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeLike(tt.input); got != tt.want {
				t.Errorf("EscapeLike(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestViolationClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantUnique bool
		wantFK     bool
	}{
		{
			name:       "unique violation",
			err:        &pgconn.PgError{Code: "23505"},
			wantUnique: true,
		},
		{
			name:   "foreign key violation",
			err:    &pgconn.PgError{Code: "23503"},
			wantFK: true,
		},
		{
			name: "other pg error",
			err:  &pgconn.PgError{Code: "42P01"},
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.wantUnique {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.wantUnique)
			}
			if got := IsForeignKeyViolation(tt.err); got != tt.wantFK {
				t.Errorf("IsForeignKeyViolation() = %v, want %v", got, tt.wantFK)
			}
		})
	}
}

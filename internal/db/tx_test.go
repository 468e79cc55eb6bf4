package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT UNIQUE)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countNotes(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestWithTx(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		fn        func(tx *sql.Tx) error
		wantErr   error
		wantCount int
	}{
		{
			name: "commit",
			fn: func(tx *sql.Tx) error {
				_, err := tx.Exec(`INSERT INTO notes (body) VALUES ('a'), ('b')`)
				return err
			},
			wantCount: 2,
		},
		{
			name: "callback error rolls back",
			fn: func(tx *sql.Tx) error {
				if _, err := tx.Exec(`INSERT INTO notes (body) VALUES ('a')`); err != nil {
					return err
				}
				return errBoom
			},
			wantErr: errBoom,
		},
		{
			name: "failed statement rolls back earlier ones",
			fn: func(tx *sql.Tx) error {
				if _, err := tx.Exec(`INSERT INTO notes (body) VALUES ('a')`); err != nil {
					return err
				}
				_, err := tx.Exec(`INSERT INTO notes (body) VALUES ('a')`)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			err := WithTx(db, tt.fn)
			switch {
			case tt.wantErr != nil && !errors.Is(err, tt.wantErr):
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			case tt.wantErr == nil && tt.wantCount > 0 && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tt.wantCount == 0 && err == nil:
				t.Fatal("expected an error")
			}

			if got := countNotes(t, db); got != tt.wantCount {
				t.Errorf("count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestWithTx_ClosedDB(t *testing.T) {
	db := setupTestDB(t)
	db.Close()

	err := WithTx(db, func(*sql.Tx) error { return nil })
	if err == nil {
		t.Fatal("expected begin error on closed db")
	}
}

func TestNullString(t *testing.T) {
	if got := NullString(""); got.Valid {
		t.Errorf("NullString(\"\") = %+v, want invalid", got)
	}
	if got := NullString("x"); !got.Valid || got.String != "x" {
		t.Errorf("NullString(\"x\") = %+v", got)
	}
}

func TestNullStringValue(t *testing.T) {
	if got := NullStringValue(sql.NullString{String: "ignored"}); got != "" {
		t.Errorf("invalid = %q, want empty", got)
	}
	if got := NullStringValue(sql.NullString{String: "hi", Valid: true}); got != "hi" {
		t.Errorf("valid = %q, want hi", got)
	}
}

func TestNullString_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.Exec(`INSERT INTO notes (id, body) VALUES (1, ?)`, NullString("")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	var body sql.NullString
	if err := db.QueryRow(`SELECT body FROM notes WHERE id = 1`).Scan(&body); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if body.Valid {
		t.Error("expected NULL body")
	}
	if NullStringValue(body) != "" {
		t.Error("expected empty value")
	}
}

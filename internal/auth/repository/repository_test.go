package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	err  error
	scan func(dest ...any)
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.scan != nil {
		r.scan(dest...)
	}
	return nil
}

type fakeDB struct {
	row     fakeRow
	lastSQL string
	args    []any
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL = sql
	f.args = args
	return f.row
}

func TestCreateUserMapsUniqueViolation(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: &pgconn.PgError{Code: "23505"}}}

	_, err := New(db).CreateUser(context.Background(), CreateUserParams{Email: "a@b.c"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCreateUserWrapsOtherErrors(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: errors.New("connection reset")}}

	_, err := New(db).CreateUser(context.Background(), CreateUserParams{Email: "a@b.c"})
	if err == nil || errors.Is(err, ErrDuplicate) || !strings.Contains(err.Error(), "create user") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}

	if _, err := New(db).GetUserByID(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUserByIdentifierScansRow(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{row: fakeRow{scan: func(dest ...any) {
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*string) = "anna@example.org"
		*dest[2].(*string) = "anna"
	}}}

	user, err := New(db).GetUserByIdentifier(context.Background(), "ANNA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != id || user.Username != "anna" {
		t.Fatalf("unexpected user %+v", user)
	}
	if !strings.Contains(db.lastSQL, "lower(username) = lower($1)") || db.args[0] != "ANNA" {
		t.Fatalf("unexpected query %q args %v", db.lastSQL, db.args)
	}
}

func TestExistsByEmailOrUsername(t *testing.T) {
	db := &fakeDB{row: fakeRow{scan: func(dest ...any) { *dest[0].(*bool) = true }}}

	exists, err := New(db).ExistsByEmailOrUsername(context.Background(), "a@b.c", "anna")
	if err != nil || !exists {
		t.Fatalf("expected exists, got %v err=%v", exists, err)
	}
	if len(db.args) != 2 {
		t.Fatalf("expected email and username args, got %v", db.args)
	}
}

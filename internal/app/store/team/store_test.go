package team

import (
	"errors"
	"testing"
	"time"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/davidmarban/crewdeck/internal/testutil"
)

func TestAuthenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	created, err := store.Create(ctx, models.TeamMember{Name: "Ana", Password: "s3creta", Role: "Design"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Authenticate(ctx, "Ana", "s3creta")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("authenticated wrong member: %q", got.ID)
	}

	if _, err := store.Authenticate(ctx, "Ana", "wrong"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("wrong password: err = %v, want ErrNoMatch", err)
	}
	if _, err := store.Authenticate(ctx, "ana", "s3creta"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("names compare exactly: err = %v, want ErrNoMatch", err)
	}
}

func TestUpdateKeepsPasswordWhenBlank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	created, err := store.Create(ctx, models.TeamMember{Name: "Ana", Password: "s3creta"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Password = ""
	created.Role = "Lead"
	if _, err := store.Update(ctx, created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := store.Authenticate(ctx, "Ana", "s3creta"); err != nil {
		t.Fatalf("blank-password update must keep the stored password: %v", err)
	}
}

func TestListInsertionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"Ana", "Bruno", "Carla"} {
		m := models.TeamMember{Name: name, Password: "pw", Created: base.Add(time.Duration(i) * time.Second)}
		if _, err := store.Create(ctx, m); err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
	}

	members, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("got %d members", len(members))
	}
	for i, want := range []string{"Ana", "Bruno", "Carla"} {
		if members[i].Name != want {
			t.Fatalf("position %d = %q, want %q", i, members[i].Name, want)
		}
	}
}

package dashboard

import (
	"testing"

	"github.com/davidmarban/crewdeck/internal/domain/models"
)

func asset(id, name string) models.Asset {
	return models.Asset{ID: id, Name: name}
}

func assertIDs(t *testing.T, got []models.Asset, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: id = %q, want %q", i, got[i].ID, want[i])
		}
	}
}

func TestPrependNewestFirst(t *testing.T) {
	coll := []models.Asset{asset("a", "old")}
	coll = prepend(coll, asset("b", "new"))
	assertIDs(t, coll, "b", "a")
}

func TestAppendItemKeepsInsertionOrder(t *testing.T) {
	coll := []models.Asset{asset("a", "first")}
	coll = appendItem(coll, asset("b", "second"))
	assertIDs(t, coll, "a", "b")
}

func TestInsertNeverDuplicatesID(t *testing.T) {
	coll := []models.Asset{asset("a", "one"), asset("b", "two")}
	coll = prepend(coll, asset("a", "one again"))
	assertIDs(t, coll, "a", "b")
	if coll[0].Name != "one again" {
		t.Fatalf("re-insert did not take the new value: %q", coll[0].Name)
	}

	coll = appendItem(coll, asset("b", "two again"))
	assertIDs(t, coll, "a", "b")
	if coll[1].Name != "two again" {
		t.Fatalf("re-append did not take the new value: %q", coll[1].Name)
	}
}

func TestReplaceByIDPreservesOrder(t *testing.T) {
	coll := []models.Asset{asset("a", "one"), asset("b", "two"), asset("c", "three")}
	next := replaceByID(coll, asset("b", "TWO"))
	assertIDs(t, next, "a", "b", "c")
	if next[1].Name != "TWO" {
		t.Fatalf("replace did not take: %q", next[1].Name)
	}
	// original slice untouched
	if coll[1].Name != "two" {
		t.Fatalf("replaceByID mutated its input")
	}
}

func TestReplaceByIDUnknownIDIsNoop(t *testing.T) {
	coll := []models.Asset{asset("a", "one")}
	next := replaceByID(coll, asset("zz", "ghost"))
	assertIDs(t, next, "a")
}

func TestRemoveByID(t *testing.T) {
	coll := []models.Asset{asset("a", "one"), asset("b", "two"), asset("c", "three")}
	next := removeByID(coll, "b")
	assertIDs(t, next, "a", "c")

	next = removeByID(next, "missing")
	assertIDs(t, next, "a", "c")
}

func TestFindAndContains(t *testing.T) {
	coll := []models.Asset{asset("a", "one")}
	if !containsID(coll, "a") || containsID(coll, "b") {
		t.Fatalf("containsID gave wrong answers")
	}
	if p := findByID(coll, "a"); p == nil || p.Name != "one" {
		t.Fatalf("findByID(a) = %v", p)
	}
	if p := findByID(coll, "b"); p != nil {
		t.Fatalf("findByID(b) = %v, want nil", p)
	}
}

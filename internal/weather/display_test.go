package weather

import (
	"testing"

	"github.com/Ayush0023/Weather-Zone/internal/types"
)

func TestDisplayRejectsStaleCommit(t *testing.T) {
	display := NewDisplay()

	g1 := display.Begin()
	g2 := display.Begin()

	newer := &LookupResult{Location: types.GeoLocation{DisplayName: "Pune, India"}}
	older := &LookupResult{Location: types.GeoLocation{DisplayName: "Mumbai, India"}}

	if !display.Commit(g2, newer) {
		t.Fatal("Commit with the latest generation rejected")
	}
	if display.Commit(g1, older) {
		t.Error("Commit with a stale generation accepted")
	}

	latest, ok := display.Latest()
	if !ok {
		t.Fatal("Latest() empty after commit")
	}
	if latest != newer {
		t.Errorf("Latest() = %q, want the newer result", latest.Location.DisplayName)
	}
}

func TestDisplayEmptyUntilFirstCommit(t *testing.T) {
	display := NewDisplay()

	if _, ok := display.Latest(); ok {
		t.Error("Latest() reported a result before any commit")
	}

	g := display.Begin()
	result := &LookupResult{Location: types.GeoLocation{DisplayName: "Mumbai, India"}}
	if !display.Commit(g, result) {
		t.Fatal("Commit with the only generation rejected")
	}

	latest, ok := display.Latest()
	if !ok || latest != result {
		t.Error("Latest() does not reflect the committed result")
	}
}

func TestDisplayLaterBeginInvalidatesCommittedGeneration(t *testing.T) {
	display := NewDisplay()

	g := display.Begin()
	first := &LookupResult{Location: types.GeoLocation{DisplayName: "Mumbai, India"}}
	if !display.Commit(g, first) {
		t.Fatal("first Commit rejected")
	}

	display.Begin()
	if display.Commit(g, first) {
		t.Error("generation accepted after a newer lookup began")
	}

	// The earlier commit stays on display until the newer lookup lands.
	latest, ok := display.Latest()
	if !ok || latest != first {
		t.Error("pending newer lookup cleared the displayed result")
	}
}

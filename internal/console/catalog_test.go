package console

import (
	"context"
	"testing"
	"time"

	"soundctl/internal/models"
)

func newTestCatalog(api *fakeAPI, now func() time.Time) *CatalogView {
	gate := NewGate("2026", newMemStore(), testLogger())
	gate.Login("2026")
	stages := NewStageSet()
	poller := NewPoller(api, stages, defaultLogLimit, testLogger())
	d := NewDispatcher(api, gate, stages, poller, testLogger())
	return NewCatalogView(api, d, now, testLogger())
}

func catalogFixture() models.ProgramCatalog {
	return models.ProgramCatalog{
		AvailableScripts: []models.Program{
			{Name: "85adfire.py", Volume: 85, ProgramType: "adfire"},
			{Name: "70ad.py", Volume: 70, ProgramType: "ad"},
			{Name: "60ad.py", Volume: 60, ProgramType: "ad"},
			{Name: "100fm.py", Volume: 100, ProgramType: "fm"},
			{Name: "80ad.py", Volume: 80, ProgramType: "ad"},
		},
	}
}

func TestCatalogView_GroupedSortsByVolumeAscending(t *testing.T) {
	api := newFakeAPI()
	api.catalog = catalogFixture()
	v := newTestCatalog(api, time.Now)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	groups := v.Grouped()
	if len(groups) != 3 {
		t.Fatalf("expected 3 type groups, got %d", len(groups))
	}
	// Groups sorted by type code: ad, adfire, fm.
	if groups[0].Type != "ad" || groups[1].Type != "adfire" || groups[2].Type != "fm" {
		t.Fatalf("groups out of order: %v %v %v", groups[0].Type, groups[1].Type, groups[2].Type)
	}
	ad := groups[0].Items
	if len(ad) != 3 || ad[0].Volume != 60 || ad[1].Volume != 70 || ad[2].Volume != 80 {
		t.Fatalf("ad group not volume-ascending: %+v", ad)
	}
	if groups[0].Label != "Business Ad" {
		t.Fatalf("expected resolved type label, got %q", groups[0].Label)
	}
}

func TestCatalogView_Filter(t *testing.T) {
	api := newFakeAPI()
	api.catalog = catalogFixture()
	v := newTestCatalog(api, time.Now)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v.SetFilter("fm")
	groups := v.Grouped()
	if len(groups) != 1 || groups[0].Type != "fm" {
		t.Fatalf("expected only the fm group, got %+v", groups)
	}

	v.SetFilter(FilterAll)
	if got := len(v.Grouped()); got != 3 {
		t.Fatalf("expected all groups back, got %d", got)
	}
}

func TestCatalogView_Types(t *testing.T) {
	api := newFakeAPI()
	api.catalog = catalogFixture()
	v := newTestCatalog(api, time.Now)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	types := v.Types()
	want := []string{"ad", "adfire", "fm"}
	if len(types) != len(want) {
		t.Fatalf("expected %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, types)
		}
	}
}

func TestCatalogView_RunNowCooldown(t *testing.T) {
	api := newFakeAPI()
	api.catalog = catalogFixture()

	at := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	now := func() time.Time { return at }
	v := newTestCatalog(api, now)

	if v.JustLaunched("85adfire.py") {
		t.Fatalf("expected no cooldown before any run")
	}
	if err := v.RunNow(context.Background(), "85adfire.py"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(api.runPrograms) != 1 || api.runPrograms[0] != "85adfire.py" {
		t.Fatalf("expected one run request, got %v", api.runPrograms)
	}
	if !v.JustLaunched("85adfire.py") {
		t.Fatalf("expected cooldown active right after a run")
	}
	if v.JustLaunched("70ad.py") {
		t.Fatalf("cooldown must be per program")
	}

	at = at.Add(runCooldown + time.Millisecond)
	if v.JustLaunched("85adfire.py") {
		t.Fatalf("expected cooldown expired")
	}
}

func TestCatalogView_RefreshToleratesMissingFavorites(t *testing.T) {
	api := newFakeAPI()
	api.catalog = catalogFixture()
	api.errs["GetKnownFavorites"] = context.DeadlineExceeded
	v := newTestCatalog(api, time.Now)

	if err := v.Refresh(context.Background()); err != nil {
		t.Fatalf("favorites failure must not fail the refresh: %v", err)
	}
	if got := len(v.Grouped()); got == 0 {
		t.Fatalf("expected programs loaded despite favorites failure")
	}
	if favs := v.Favorites(); favs != nil {
		t.Fatalf("expected no favorites, got %v", favs)
	}
}

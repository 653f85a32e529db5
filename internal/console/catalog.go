package console

import (
	"context"
	"sort"
	"sync"
	"time"

	"soundctl/internal/logger"
	"soundctl/internal/models"
)

// runCooldown is how long a program stays marked as "just launched" after a
// run-now dispatch, long enough for the reconciling poll to catch up.
const runCooldown = 2 * time.Second

// FilterAll shows every program type.
const FilterAll = "all"

// ProgramGroup is one type bucket of the catalog, volume-ascending.
type ProgramGroup struct {
	Type  string
	Label string
	Items []models.Program
}

// CatalogView holds the cached program library with type grouping, a type
// filter, and one-shot run-now dispatch.
type CatalogView struct {
	api        ControlAPI
	dispatcher *Dispatcher
	now        func() time.Time
	log        *logger.Logger

	mu        sync.Mutex
	programs  []models.Program
	favorites []models.Favorite
	filter    string
	lastRun   map[string]time.Time
}

func NewCatalogView(api ControlAPI, dispatcher *Dispatcher, now func() time.Time, log *logger.Logger) *CatalogView {
	return &CatalogView{
		api:        api,
		dispatcher: dispatcher,
		now:        now,
		log:        log,
		filter:     FilterAll,
		lastRun:    make(map[string]time.Time),
	}
}

// Refresh reloads the program library and the known favorites.
func (v *CatalogView) Refresh(ctx context.Context) error {
	catalog, err := v.api.GetPrograms(ctx)
	if err != nil {
		return err
	}
	favorites, err := v.api.GetKnownFavorites(ctx)
	if err != nil {
		v.log.Debugw("favorites unavailable", "err", err)
		favorites = nil
	}

	v.mu.Lock()
	v.programs = catalog.AvailableScripts
	v.favorites = favorites
	v.mu.Unlock()
	return nil
}

// Filter returns the active type filter.
func (v *CatalogView) Filter() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// SetFilter restricts Grouped to one type code, or FilterAll for
// everything.
func (v *CatalogView) SetFilter(typeCode string) {
	v.mu.Lock()
	v.filter = typeCode
	v.mu.Unlock()
}

// Types lists the type codes present in the library, sorted, for building
// the filter bar.
func (v *CatalogView) Types() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	seen := make(map[string]bool)
	var types []string
	for _, p := range v.programs {
		if !seen[p.ProgramType] {
			seen[p.ProgramType] = true
			types = append(types, p.ProgramType)
		}
	}
	sort.Strings(types)
	return types
}

// Grouped buckets the filtered library by program type, volume-ascending
// within each bucket, buckets sorted by type code.
func (v *CatalogView) Grouped() []ProgramGroup {
	v.mu.Lock()
	programs := v.programs
	filter := v.filter
	v.mu.Unlock()

	byType := make(map[string][]models.Program)
	for _, p := range programs {
		if filter != FilterAll && p.ProgramType != filter {
			continue
		}
		byType[p.ProgramType] = append(byType[p.ProgramType], p)
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	groups := make([]ProgramGroup, 0, len(types))
	for _, t := range types {
		items := byType[t]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Volume < items[j].Volume
		})
		groups = append(groups, ProgramGroup{Type: t, Label: ProgramTypeName(t), Items: items})
	}
	return groups
}

// Favorites returns the cached station/playlist list.
func (v *CatalogView) Favorites() []models.Favorite {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.favorites
}

// RunNow dispatches a one-shot run and marks the program as just launched
// for the cooldown window.
func (v *CatalogView) RunNow(ctx context.Context, programName string) error {
	if err := v.dispatcher.RunProgram(ctx, programName); err != nil {
		return err
	}
	v.mu.Lock()
	v.lastRun[programName] = v.now()
	v.mu.Unlock()
	return nil
}

// JustLaunched reports whether a run-now for the program is inside its
// cooldown window, used to debounce the button and show a transient marker.
func (v *CatalogView) JustLaunched(programName string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	at, ok := v.lastRun[programName]
	return ok && v.now().Sub(at) < runCooldown
}

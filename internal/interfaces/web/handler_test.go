package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	crerr "github.com/cockroachdb/errors"

	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/team"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
	"github.com/clubstats/statsboard/internal/infrastructure/repository/memory"
	"github.com/clubstats/statsboard/internal/platform/logging"
	"github.com/clubstats/statsboard/internal/usecase"
)

var errStoreDown = crerr.Mark(crerr.New("dial tcp: connection refused"), usecase.ErrStoreUnavailable)

type downMatchRepo struct{}

func (downMatchRepo) ListRecent(context.Context, match.Filter) ([]match.Match, error) {
	return nil, errStoreDown
}

type downTeamRepo struct{}

func (downTeamRepo) List(context.Context) ([]team.Team, error) { return nil, errStoreDown }
func (downTeamRepo) GetByID(context.Context, int64) (team.Team, bool, error) {
	return team.Team{}, false, errStoreDown
}

type downPlayerStatsRepo struct{}

func (downPlayerStatsRepo) ListTopByMatch(context.Context, int64, int) ([]playerstats.MatchLeader, error) {
	return nil, errStoreDown
}
func (downPlayerStatsRepo) ListTopOverall(context.Context, int) ([]playerstats.MatchLeader, error) {
	return nil, errStoreDown
}
func (downPlayerStatsRepo) ListTopGoalkeepers(context.Context, int) ([]playerstats.GoalkeeperRank, error) {
	return nil, errStoreDown
}

type downTeamStatsRepo struct{}

func (downTeamStatsRepo) ListByMatch(context.Context, int64) ([]teamstats.MatchStats, error) {
	return nil, errStoreDown
}
func (downTeamStatsRepo) ListMostAggressive(context.Context, int) ([]teamstats.AggressionRank, error) {
	return nil, errStoreDown
}
func (downTeamStatsRepo) ListBestDefensive(context.Context, int) ([]teamstats.DefenseRank, error) {
	return nil, errStoreDown
}
func (downTeamStatsRepo) ListBestAttacking(context.Context, int) ([]teamstats.AttackRank, error) {
	return nil, errStoreDown
}
func (downTeamStatsRepo) GetOverview(context.Context, int64) (teamstats.Overview, error) {
	return teamstats.Overview{}, errStoreDown
}
func (downTeamStatsRepo) ListGoalsByMatch(context.Context, int64) ([]teamstats.GoalsByMatch, error) {
	return nil, errStoreDown
}

type countingFlusher struct{ calls int }

func (f *countingFlusher) Flush(context.Context) { f.calls++ }

func seededRouter(t *testing.T, flushers ...CacheFlusher) http.Handler {
	t.Helper()

	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerStatsRepo := memory.NewPlayerStatsRepository(memory.SeedPlayers(), memory.SeedTeams(), memory.SeedPlayerStatLines())
	teamStatsRepo := memory.NewTeamStatsRepository(memory.SeedTeams(), memory.SeedMatches(), memory.SeedTeamStatLines())

	handler := NewHandler(
		usecase.NewMatchService(matchRepo, teamStatsRepo, playerStatsRepo),
		usecase.NewTournamentService(playerStatsRepo, teamStatsRepo, logging.NewNop()),
		usecase.NewTeamService(teamRepo, teamStatsRepo),
		flushers,
		logging.NewNop(),
	)
	return NewRouter(handler, logging.NewNop())
}

func downRouter(t *testing.T) http.Handler {
	t.Helper()

	handler := NewHandler(
		usecase.NewMatchService(downMatchRepo{}, downTeamStatsRepo{}, downPlayerStatsRepo{}),
		usecase.NewTournamentService(downPlayerStatsRepo{}, downTeamStatsRepo{}, logging.NewNop()),
		usecase.NewTeamService(downTeamRepo{}, downTeamStatsRepo{}),
		nil,
		logging.NewNop(),
	)
	return NewRouter(handler, logging.NewNop())
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRootRedirectsToMatches(t *testing.T) {
	rec := get(t, seededRouter(t), "/")

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/matches" {
		t.Fatalf("location = %q, want /matches", loc)
	}
}

func TestMatchesTab_DefaultsToMostRecentMatch(t *testing.T) {
	rec := get(t, seededRouter(t), "/matches")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Chelsea 3 - 0 Paris Saint-Germain") {
		t.Fatalf("expected final in selector, body:\n%s", body)
	}
	if !strings.Contains(body, "Cole Palmer") {
		t.Fatal("expected match leaderboard to include the top scorer")
	}
	if !strings.Contains(body, "/charts/possession.svg?match=106") {
		t.Fatal("expected possession chart for the default selection")
	}
}

func TestMatchesTab_UnknownMatchShowsEmptyState(t *testing.T) {
	rec := get(t, seededRouter(t), "/matches?match=9999")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No data for this selection.") {
		t.Fatal("expected the empty-state message for an unknown match")
	}
}

func TestMatchesTab_RejectsGarbageParameter(t *testing.T) {
	for _, target := range []string{"/matches?match=abc", "/matches?match=-3"} {
		rec := get(t, seededRouter(t), target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestTournamentTab_RendersAllFiveWidgets(t *testing.T) {
	rec := get(t, seededRouter(t), "/tournament")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, title := range []string{"Top Players", "Top Goalkeepers", "Most Aggressive Teams", "Best Defensive Teams", "Best Attacking Teams"} {
		if !strings.Contains(body, title) {
			t.Fatalf("missing widget %q", title)
		}
	}
	if !strings.Contains(body, "Fabio") {
		t.Fatal("expected goalkeeper leaderboard content")
	}
}

func TestTeamsTab_RendersOverviewAndGoals(t *testing.T) {
	rec := get(t, seededRouter(t), "/teams?team=1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Chelsea Overview") {
		t.Fatal("expected the overview heading for the selected team")
	}
	if !strings.Contains(body, "Goals by Match") {
		t.Fatal("expected the goals widget")
	}
	if !strings.Contains(body, "/charts/goals.svg?team=1") {
		t.Fatal("expected the goals chart for the selected team")
	}
}

func TestOutage_ShowsBannerAndKeepsShellUsable(t *testing.T) {
	router := downRouter(t)

	for _, target := range []string{"/matches", "/tournament", "/teams"} {
		rec := get(t, router, target)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", target, rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, bannerMessage) {
			t.Fatalf("%s: expected the outage banner", target)
		}
		// Navigation must survive a dead store.
		for _, link := range []string{`href="/matches"`, `href="/tournament"`, `href="/teams"`} {
			if !strings.Contains(body, link) {
				t.Fatalf("%s: missing nav link %s", target, link)
			}
		}
	}
}

func TestOutage_TournamentWidgetsDegradeInline(t *testing.T) {
	rec := get(t, downRouter(t), "/tournament")

	if got := strings.Count(rec.Body.String(), failedMessage); got != 5 {
		t.Fatalf("expected all five widgets degraded, found %d failure messages", got)
	}
}

func TestRefresh_FlushesStoresAndRedirects(t *testing.T) {
	flusher := &countingFlusher{}
	router := seededRouter(t, flusher)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.Header.Set("Referer", "/tournament")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/tournament" {
		t.Fatalf("location = %q, want /tournament", loc)
	}
	if flusher.calls != 1 {
		t.Fatalf("expected one flush, got %d", flusher.calls)
	}
}

func TestHealthz_ReturnsJSON(t *testing.T) {
	rec := get(t, seededRouter(t), "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCharts_ServeSVG(t *testing.T) {
	router := seededRouter(t)

	for _, target := range []string{"/charts/possession.svg?match=106", "/charts/goals.svg?team=1"} {
		rec := get(t, router, target)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", target, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
			t.Fatalf("%s: content type = %q", target, ct)
		}
		if !strings.Contains(rec.Body.String(), "<svg") {
			t.Fatalf("%s: expected SVG markup", target)
		}
	}
}

func TestCharts_RequireSelection(t *testing.T) {
	router := seededRouter(t)

	for _, target := range []string{"/charts/possession.svg", "/charts/goals.svg?team=abc"} {
		rec := get(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

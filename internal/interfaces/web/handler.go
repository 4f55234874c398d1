package web

import (
	"context"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
	"github.com/clubstats/statsboard/internal/platform/logging"
	"github.com/clubstats/statsboard/internal/usecase"
)

// CacheFlusher drops memoized query results. The refresh endpoint flushes
// every registered store.
type CacheFlusher interface {
	Flush(ctx context.Context)
}

type Handler struct {
	matches    *usecase.MatchService
	tournament *usecase.TournamentService
	teams      *usecase.TeamService
	flushers   []CacheFlusher
	logger     *logging.Logger
	validate   *validator.Validate
}

func NewHandler(
	matches *usecase.MatchService,
	tournament *usecase.TournamentService,
	teams *usecase.TeamService,
	flushers []CacheFlusher,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matches:    matches,
		tournament: tournament,
		teams:      teams,
		flushers:   flushers,
		logger:     logger,
		validate:   validator.New(),
	}
}

type selectionParams struct {
	ID int64 `validate:"omitempty,gt=0"`
}

// parseSelection reads an optional numeric query parameter. A missing
// parameter is a valid "no selection yet"; garbage is a client error.
func (h *Handler) parseSelection(r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	if err := h.validate.Struct(selectionParams{ID: id}); err != nil {
		return 0, false
	}

	return id, true
}

func (h *Handler) RootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/matches", http.StatusFound)
}

// MatchesTab renders the per-match view: a selector over recent matches,
// the possession chart, both team stat lines and the match leaderboard.
func (h *Handler) MatchesTab(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.MatchesTab")
	defer span.End()

	selectedID, ok := h.parseSelection(r, "match")
	if !ok {
		http.Error(w, "invalid match parameter", http.StatusBadRequest)
		return
	}

	matches, listErr := h.matches.ListMatches(ctx, match.Filter{})
	if listErr != nil {
		h.logger.WarnContext(ctx, "match list failed", "error", listErr)
	}

	options := make([]Option, 0, len(matches))
	for _, m := range matches {
		options = append(options, Option{ID: m.ID, Label: m.Label()})
	}
	if selectedID == 0 && len(options) > 0 {
		selectedID = options[0].ID
	}

	var (
		statsErr   error
		leadersErr error
	)
	page := MatchesPage{
		Page:       Page{Title: "Match Stats", ActiveTab: "matches"},
		Matches:    options,
		SelectedID: selectedID,
		ListFailed: listErr != nil,
	}

	if selectedID > 0 {
		stats, err := h.matches.GetTeamStats(ctx, selectedID)
		statsErr = err
		page.TeamStats = buildTeamStatsWidget(stats, err)

		leaders, err := h.matches.ListTopPlayers(ctx, selectedID, 0)
		leadersErr = err
		page.TopPlayers = buildLeadersWidget("Top Players", leaders, err)

		page.PossessionURL = "/charts/possession.svg?match=" + strconv.FormatInt(selectedID, 10)
	} else {
		page.TeamStats = buildTeamStatsWidget(nil, nil)
		page.TopPlayers = buildLeadersWidget("Top Players", nil, nil)
	}

	page.Banner = bannerFromErrors(listErr, statsErr, leadersErr)
	renderPage(ctx, w, h.logger, "matches", page)
}

// TournamentTab renders the five tournament-wide leaderboards. Each widget
// degrades on its own; only a worker-pool breakdown is a hard failure.
func (h *Handler) TournamentTab(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.TournamentTab")
	defer span.End()

	boards, err := h.tournament.Leaderboards(ctx, 0)
	if err != nil {
		h.logger.ErrorContext(ctx, "leaderboards failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := TournamentPage{
		Page:        Page{Title: "Tournament Stats", ActiveTab: "tournament"},
		TopPlayers:  buildLeadersWidget("Top Players", boards.TopPlayers, boards.TopPlayersErr),
		Goalkeepers: buildGoalkeepersWidget(boards.TopGoalkeepers, boards.TopGoalkeepersErr),
		Aggression:  buildAggressionWidget(boards.MostAggressive, boards.MostAggressiveErr),
		Defense:     buildDefenseWidget(boards.BestDefensive, boards.BestDefensiveErr),
		Attack:      buildAttackWidget(boards.BestAttacking, boards.BestAttackingErr),
	}
	page.Banner = bannerFromErrors(
		boards.TopPlayersErr,
		boards.TopGoalkeepersErr,
		boards.MostAggressiveErr,
		boards.BestDefensiveErr,
		boards.BestAttackingErr,
	)

	renderPage(ctx, w, h.logger, "tournament", page)
}

// TeamsTab renders the team picker, the overview cards and the goals chart.
func (h *Handler) TeamsTab(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.TeamsTab")
	defer span.End()

	selectedID, ok := h.parseSelection(r, "team")
	if !ok {
		http.Error(w, "invalid team parameter", http.StatusBadRequest)
		return
	}

	teams, listErr := h.teams.ListTeams(ctx)
	if listErr != nil {
		h.logger.WarnContext(ctx, "team list failed", "error", listErr)
	}

	options := make([]Option, 0, len(teams))
	for _, t := range teams {
		options = append(options, Option{ID: t.ID, Label: t.Name})
	}
	if selectedID == 0 && len(options) > 0 {
		selectedID = options[0].ID
	}

	page := TeamsPage{
		Page:       Page{Title: "Teams", ActiveTab: "teams"},
		Teams:      options,
		SelectedID: selectedID,
		ListFailed: listErr != nil,
		TeamName:   "Team",
	}

	var (
		overviewErr error
		goalsErr    error
	)
	if selectedID > 0 {
		if picked, exists, err := h.teams.GetTeam(ctx, selectedID); err == nil && exists {
			page.TeamName = picked.Name
		}

		overview, err := h.teams.GetOverview(ctx, selectedID)
		overviewErr = err
		page.Overview = buildOverviewCards(overview, err)

		goals, err := h.teams.GoalsByMatch(ctx, selectedID)
		goalsErr = err
		page.Goals = buildGoalsWidget(goals, err)

		page.GoalsURL = "/charts/goals.svg?team=" + strconv.FormatInt(selectedID, 10)
	} else {
		page.Overview = buildOverviewCards(teamstats.Overview{}, nil)
		page.Goals = buildGoalsWidget(nil, nil)
	}

	page.Banner = bannerFromErrors(listErr, overviewErr, goalsErr)
	renderPage(ctx, w, h.logger, "teams", page)
}

// Refresh flushes every cache store and sends the browser back to the tab
// it came from.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Refresh")
	defer span.End()

	for _, flusher := range h.flushers {
		flusher.Flush(ctx)
	}
	h.logger.InfoContext(ctx, "cache flushed", "stores", len(h.flushers))

	target := r.Referer()
	if target == "" {
		target = "/matches"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// PossessionChart serves the per-match possession donut as SVG.
func (h *Handler) PossessionChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.PossessionChart")
	defer span.End()

	matchID, ok := h.parseSelection(r, "match")
	if !ok || matchID == 0 {
		http.Error(w, "invalid match parameter", http.StatusBadRequest)
		return
	}

	stats, err := h.matches.GetTeamStats(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "possession chart data failed", "match_id", matchID, "error", err)
		http.Error(w, "chart unavailable", http.StatusServiceUnavailable)
		return
	}

	svg, err := renderPossessionChart(stats)
	if err != nil {
		h.logger.ErrorContext(ctx, "possession chart render failed", "match_id", matchID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeSVG(w, svg)
}

// GoalsChart serves the per-team goals bar chart as SVG.
func (h *Handler) GoalsChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.GoalsChart")
	defer span.End()

	teamID, ok := h.parseSelection(r, "team")
	if !ok || teamID == 0 {
		http.Error(w, "invalid team parameter", http.StatusBadRequest)
		return
	}

	goals, err := h.teams.GoalsByMatch(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "goals chart data failed", "team_id", teamID, "error", err)
		http.Error(w, "chart unavailable", http.StatusServiceUnavailable)
		return
	}

	svg, err := renderGoalsChart(goals)
	if err != nil {
		h.logger.ErrorContext(ctx, "goals chart render failed", "team_id", teamID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeSVG(w, svg)
}

func writeSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

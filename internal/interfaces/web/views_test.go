package web

import (
	"errors"
	"testing"

	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
)

func TestBuildWidget_StateIsExclusive(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		err     error
		want    WidgetState
		message string
	}{
		{name: "ready", rows: [][]string{{"Chelsea"}}, want: WidgetReady},
		{name: "empty", rows: nil, want: WidgetEmpty, message: emptyMessage},
		{name: "failed", rows: [][]string{{"Chelsea"}}, err: errors.New("boom"), want: WidgetFailed, message: failedMessage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := buildWidget("Title", Table{Columns: []string{"Team"}, Rows: tc.rows}, tc.err)
			if w.State != tc.want {
				t.Fatalf("state = %q, want %q", w.State, tc.want)
			}
			if w.Message != tc.message {
				t.Fatalf("message = %q, want %q", w.Message, tc.message)
			}
			if tc.want == WidgetFailed && len(w.Table.Rows) != 0 {
				t.Fatal("failed widget must not leak rows")
			}
		})
	}
}

func TestBuildGoalkeepersWidget_FormatsSavePct(t *testing.T) {
	w := buildGoalkeepersWidget([]playerstats.GoalkeeperRank{
		{Name: "Fabio", TeamName: "Fluminense", Matches: 1, Saves: 7, SavePct: 1.0},
	}, nil)

	if w.State != WidgetReady {
		t.Fatalf("state = %q", w.State)
	}
	if got := w.Table.Rows[0][5]; got != "100.0%" {
		t.Fatalf("save pct cell = %q, want 100.0%%", got)
	}
}

func TestBuildOverviewCards_EmptyWhenNoMatches(t *testing.T) {
	cards := buildOverviewCards(teamstats.Overview{}, nil)
	if cards.State != WidgetEmpty || cards.Message != emptyMessage {
		t.Fatalf("unexpected card group: %+v", cards)
	}

	cards = buildOverviewCards(teamstats.Overview{Matches: 2, Wins: 2, AvgPossessionPct: 46.0}, nil)
	if cards.State != WidgetReady || len(cards.Cards) != 8 {
		t.Fatalf("unexpected card group: %+v", cards)
	}
}

func TestBannerFromErrors_OnlyConnectionKind(t *testing.T) {
	if got := bannerFromErrors(nil, errors.New("syntax error")); got != "" {
		t.Fatalf("query failures must not raise the banner, got %q", got)
	}
	if got := bannerFromErrors(nil, errStoreDown); got != bannerMessage {
		t.Fatalf("expected the banner for a connection failure, got %q", got)
	}
}

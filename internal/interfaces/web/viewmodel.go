package web

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/clubstats/statsboard/internal/usecase"
)

// Widget is the unit the templates render. Exactly one state applies:
// a ready table, an explicit empty message, or an inline failure message.
type WidgetState string

const (
	WidgetReady  WidgetState = "ready"
	WidgetEmpty  WidgetState = "empty"
	WidgetFailed WidgetState = "failed"
)

const (
	emptyMessage  = "No data for this selection."
	failedMessage = "Data temporarily unavailable."
	bannerMessage = "The data store is currently unreachable. Statistics cannot be loaded right now."
)

type Table struct {
	Columns []string
	Rows    [][]string
}

type Widget struct {
	Title   string
	State   WidgetState
	Message string
	Table   Table
}

func buildWidget(title string, table Table, err error) Widget {
	if err != nil {
		return Widget{Title: title, State: WidgetFailed, Message: failedMessage}
	}
	if len(table.Rows) == 0 {
		return Widget{Title: title, State: WidgetEmpty, Message: emptyMessage}
	}
	return Widget{Title: title, State: WidgetReady, Table: table}
}

// Card is one headline figure on the team overview.
type Card struct {
	Label string
	Value string
}

type CardGroup struct {
	State   WidgetState
	Message string
	Cards   []Card
}

// Page carries the shell every tab shares.
type Page struct {
	Title     string
	ActiveTab string
	Banner    string
}

type Option struct {
	ID    int64
	Label string
}

type MatchesPage struct {
	Page
	Matches       []Option
	SelectedID    int64
	ListFailed    bool
	TeamStats     Widget
	TopPlayers    Widget
	PossessionURL string
}

type TournamentPage struct {
	Page
	TopPlayers  Widget
	Goalkeepers Widget
	Aggression  Widget
	Defense     Widget
	Attack      Widget
}

type TeamsPage struct {
	Page
	Teams      []Option
	SelectedID int64
	ListFailed bool
	TeamName   string
	Overview   CardGroup
	Goals      Widget
	GoalsURL   string
}

// bannerFromErrors reports the shared banner text when any failure is
// connection-kind. Query-level failures stay inline on their widget.
func bannerFromErrors(errs ...error) string {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if crerr.Is(err, usecase.ErrStoreUnavailable) {
			return bannerMessage
		}
	}
	return ""
}

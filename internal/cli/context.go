// Package cli implements the subcommand surface. Every command maps 1:1 to a
// session operation and translates its typed failures into user messages.
package cli

import (
	"github.com/julianstephens/dailydash/internal/audio"
	"github.com/julianstephens/dailydash/internal/session"
	"github.com/julianstephens/dailydash/internal/store"
	"github.com/julianstephens/dailydash/internal/weather"
	"github.com/julianstephens/dailydash/internal/workers"
)

// Context carries the shared application objects into command Run methods.
type Context struct {
	Session *session.Session
	History *store.HistoryLog
	Workers *workers.Manager
	Weather *weather.Client
	Audio   *audio.Manager
}

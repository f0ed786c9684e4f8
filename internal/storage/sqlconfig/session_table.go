package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

const sessionsTable = "sessions"

var _ ISessionTable = (*SessionsTable)(nil)

// sessionRow mirrors one row of the sessions table.
type sessionRow struct {
	ViewID    string `db:"view_id"`
	Token     string `db:"token"`
	UpdatedAt int64  `db:"updated_at"`
}

// SessionSetter holds the columns to write. Unset fields are left out of the statement.
type SessionSetter struct {
	ViewID    omit.Val[string]
	Token     omit.Val[string]
	UpdatedAt omit.Val[int64]
}

func (s SessionSetter) insertMods() []bob.Mod[*dialect.InsertQuery] {
	var (
		columns []string
		values  []bob.Expression
	)
	if v, ok := s.ViewID.Get(); ok {
		columns = append(columns, "view_id")
		values = append(values, sqlite.Arg(v))
	}
	if v, ok := s.Token.Get(); ok {
		columns = append(columns, "token")
		values = append(values, sqlite.Arg(v))
	}
	if v, ok := s.UpdatedAt.Get(); ok {
		columns = append(columns, "updated_at")
		values = append(values, sqlite.Arg(v))
	}
	return []bob.Mod[*dialect.InsertQuery]{
		im.Into(sessionsTable, columns...),
		im.Values(values...),
	}
}

// SessionsTable stores session tokens in the sessions table.
type SessionsTable struct {
	exec bob.Executor
	now  func() time.Time
}

func NewSessionsTable(db *sql.DB) *SessionsTable {
	return &SessionsTable{exec: bob.NewDB(db), now: time.Now}
}

// FindByViewID retrieves the session persisted for viewID.
func (t *SessionsTable) FindByViewID(ctx context.Context, viewID string) (*Session, error) {
	query := sqlite.Select(
		sm.Columns("view_id", "token", "updated_at"),
		sm.From(sessionsTable),
		sm.Where(sqlite.Quote("view_id").EQ(sqlite.Arg(viewID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[sessionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Session{
		ViewID:    row.ViewID,
		Token:     row.Token,
		UpdatedAt: time.Unix(row.UpdatedAt, 0).UTC(),
	}, nil
}

// Upsert stores token for viewID, replacing any previous token.
func (t *SessionsTable) Upsert(ctx context.Context, viewID, token string) error {
	setter := SessionSetter{
		ViewID:    omit.From(viewID),
		Token:     omit.From(token),
		UpdatedAt: omit.From(t.now().Unix()),
	}
	query := sqlite.Insert(append(setter.insertMods(), im.OrReplace())...)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// Delete removes the token for viewID. Deleting a missing session is not an error.
func (t *SessionsTable) Delete(ctx context.Context, viewID string) error {
	query := sqlite.Delete(
		dm.From(sessionsTable),
		dm.Where(sqlite.Quote("view_id").EQ(sqlite.Arg(viewID))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

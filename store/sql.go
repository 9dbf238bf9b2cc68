// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-meet/db"
	"github.com/danielhkuo/quickly-meet/logger"
	"github.com/danielhkuo/quickly-meet/models"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLStore keeps the event set as one JSON document row
type SQLStore struct {
	conn *sqlx.DB
	log  *slog.Logger
}

// OpenSQLStore connects with the given driver ("sqlite" or "postgres") and
// creates the schema
func OpenSQLStore(driverName, dataSourceName string) (*SQLStore, error) {
	if driverName == "sqlite" {
		dataSourceName = sqliteDSN(dataSourceName)
	}

	conn, err := sqlx.Connect(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if driverName == "sqlite" {
		// A busy error on read would look like an empty set to Load
		conn.SetMaxOpenConns(1)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return NewSQLStore(conn), nil
}

// sqliteDSN makes writers from other processes wait for the lock instead of
// failing with SQLITE_BUSY
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "busy_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)"
}

// NewSQLStore wraps an open connection whose schema already exists
func NewSQLStore(conn *sqlx.DB) *SQLStore {
	return &SQLStore{
		conn: conn,
		log:  logger.Component("store").With("backend", conn.DriverName()),
	}
}

func (s *SQLStore) Load(ctx context.Context) models.EventSet {
	var payload string
	err := s.conn.GetContext(ctx, &payload, s.conn.Rebind(`
		SELECT payload FROM event_document WHERE id = ?
	`), db.DocumentID)

	if errors.Is(err, sql.ErrNoRows) {
		return models.EventSet{}
	}
	if err != nil {
		s.log.Warn("failed to query events, starting empty", "error", err)
		return models.EventSet{}
	}

	events, err := decodeEventSet([]byte(payload))
	if err != nil {
		s.log.Warn("failed to parse events, starting empty", "error", err)
		return models.EventSet{}
	}
	return events
}

func (s *SQLStore) Save(ctx context.Context, events models.EventSet) error {
	data, err := encodeEventSet(events)
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, s.conn.Rebind(`
		INSERT INTO event_document (id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`), db.DocumentID, string(data), time.Now().UTC())

	if err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}

	s.log.Debug("events saved", "count", len(events))
	return nil
}

func (s *SQLStore) Close() error {
	return s.conn.Close()
}

/**
* Name: 			database.go
* Description: 		생성 요청 사용 기록(usage ledger) 저장소
* Workflow: 		sqlite 열기, 테이블 생성, 기록 추가 및 종류별 집계
 */

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"FitCoach_AIProject/internal/models"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

const createEventsTable = `
CREATE TABLE IF NOT EXISTS generation_events (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"request_id" TEXT NOT NULL,
		"kind" TEXT NOT NULL,
		"status" INTEGER NOT NULL,
		"error_kind" TEXT NOT NULL DEFAULT '',
		"duration_ms" INTEGER NOT NULL,
		"created_at" INTEGER NOT NULL
);`

const createEventsKindIndex = `CREATE INDEX IF NOT EXISTS idx_generation_events_kind ON generation_events(kind);`

// Open opens (or creates) the sqlite database at path and prepares the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to open database: %w", err)
	}
	// sqlite는 단일 writer
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open(): failed to connect to database: %w", err)
	}
	for _, stmt := range []string{createEventsTable, createEventsKindIndex} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage.Open(): failed to create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordGeneration appends one event. CreatedAt defaults to now.
func (s *Store) RecordGeneration(ctx context.Context, ev models.GenerationEvent) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generation_events(request_id, kind, status, error_kind, duration_ms, created_at) VALUES(?, ?, ?, ?, ?, ?)`,
		ev.RequestID, ev.Kind, ev.Status, ev.ErrorKind, ev.DurationMS, ev.CreatedAt.UnixMilli(),
	)
	return err
}

// Summary aggregates events per kind. Statuses below 400 count as succeeded.
func (s *Store) Summary(ctx context.Context) ([]models.UsageSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind,
			COUNT(*),
			SUM(CASE WHEN status < 400 THEN 1 ELSE 0 END),
			SUM(CASE WHEN status >= 400 THEN 1 ELSE 0 END),
			AVG(duration_ms)
		FROM generation_events
		GROUP BY kind
		ORDER BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.UsageSummary{}
	for rows.Next() {
		var u models.UsageSummary
		if err := rows.Scan(&u.Kind, &u.Total, &u.Succeeded, &u.Failed, &u.AvgDurationMS); err != nil {
			return nil, err
		}
		summaries = append(summaries, u)
	}
	return summaries, rows.Err()
}

// RecentEvents returns up to limit events, newest first.
func (s *Store) RecentEvents(ctx context.Context, limit int) ([]models.GenerationEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, request_id, kind, status, error_kind, duration_ms, created_at
		FROM generation_events
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.GenerationEvent
	for rows.Next() {
		var ev models.GenerationEvent
		var createdMS int64
		if err := rows.Scan(&ev.ID, &ev.RequestID, &ev.Kind, &ev.Status, &ev.ErrorKind, &ev.DurationMS, &createdMS); err != nil {
			return nil, err
		}
		ev.CreatedAt = time.UnixMilli(createdMS)
		events = append(events, ev)
	}
	return events, rows.Err()
}

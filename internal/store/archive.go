package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/noemalabs/noema/internal/domain"
)

var ErrNotFound = errors.New("not found")

// ArchiveStore persists a copy of every thought to Postgres so reasoning
// sessions survive beyond the process. The in-memory GraphStore stays
// authoritative; archive failures never affect engine state.
type ArchiveStore struct {
	db *pgxpool.Pool
}

func NewArchiveStore(db *pgxpool.Pool) *ArchiveStore {
	return &ArchiveStore{db: db}
}

// EnsureSchema creates the archive table and pgvector extension if missing.
func (s *ArchiveStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`CREATE TABLE IF NOT EXISTS archived_thoughts (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			content TEXT NOT NULL,
			thought_type TEXT NOT NULL,
			strategy TEXT NOT NULL,
			parent_id TEXT,
			branch_id TEXT,
			revision_of TEXT,
			metrics JSONB NOT NULL,
			cognitive_biases TEXT[] NOT NULL DEFAULT '{}',
			tags TEXT[] NOT NULL DEFAULT '{}',
			supports TEXT[] NOT NULL DEFAULT '{}',
			contradicts TEXT[] NOT NULL DEFAULT '{}',
			builds_on TEXT[] NOT NULL DEFAULT '{}',
			embedding vector(64),
			created_at TIMESTAMPTZ NOT NULL,
			archived_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_archived_thoughts_session ON archived_thoughts (session_id, created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure archive schema: %w", err)
		}
	}
	return nil
}

// ArchiveThought upserts one thought into the archive.
func (s *ArchiveStore) ArchiveThought(ctx context.Context, sessionID string, t *domain.Thought, embedding []float32) error {
	metricsJSON, err := json.Marshal(t.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	var vec *pgvector.Vector
	if len(embedding) > 0 {
		v := pgvector.NewVector(embedding)
		vec = &v
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO archived_thoughts (id, session_id, content, thought_type, strategy, parent_id, branch_id, revision_of,
			metrics, cognitive_biases, tags, supports, contradicts, builds_on, embedding, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11, $12, $13, $14, $15, $16)
		 ON CONFLICT (id) DO UPDATE SET
			metrics = EXCLUDED.metrics,
			cognitive_biases = EXCLUDED.cognitive_biases,
			archived_at = NOW()`,
		t.ID, sessionID, t.Content, t.Type, t.Strategy, t.ParentID, t.BranchID, t.RevisionOf,
		metricsJSON, t.CognitiveBiases, t.Tags, t.Supports, t.Contradicts, t.BuildsOn, vec, t.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("archive thought %s: %w", t.ID, err)
	}
	return nil
}

// SessionThoughtCount returns the number of archived thoughts in a session.
func (s *ArchiveStore) SessionThoughtCount(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM archived_thoughts WHERE session_id = $1`, sessionID,
	).Scan(&count)
	return count, err
}

// SimilarThoughts finds archived thoughts closest to the given embedding by
// cosine distance.
func (s *ArchiveStore) SimilarThoughts(ctx context.Context, embedding []float32, limit int) ([]domain.Thought, error) {
	if limit <= 0 {
		limit = 5
	}
	vec := pgvector.NewVector(embedding)

	rows, err := s.db.Query(ctx,
		`SELECT id, content, thought_type, strategy, COALESCE(parent_id, ''), metrics, cognitive_biases, tags, created_at
		 FROM archived_thoughts
		 WHERE embedding IS NOT NULL
		 ORDER BY embedding <=> $1
		 LIMIT $2`,
		vec, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var thoughts []domain.Thought
	for rows.Next() {
		var t domain.Thought
		var metricsJSON []byte
		if err := rows.Scan(&t.ID, &t.Content, &t.Type, &t.Strategy, &t.ParentID,
			&metricsJSON, &t.CognitiveBiases, &t.Tags, &t.Timestamp); err != nil {
			return nil, err
		}
		if len(metricsJSON) > 0 {
			if err := json.Unmarshal(metricsJSON, &t.Metrics); err != nil {
				return nil, fmt.Errorf("unmarshal metrics: %w", err)
			}
		}
		thoughts = append(thoughts, t)
	}
	return thoughts, rows.Err()
}

// GetArchived loads one archived thought by id.
func (s *ArchiveStore) GetArchived(ctx context.Context, id string) (*domain.Thought, error) {
	t := &domain.Thought{}
	var metricsJSON []byte
	err := s.db.QueryRow(ctx,
		`SELECT id, content, thought_type, strategy, COALESCE(parent_id, ''), metrics, cognitive_biases, tags, created_at
		 FROM archived_thoughts WHERE id = $1`, id,
	).Scan(&t.ID, &t.Content, &t.Type, &t.Strategy, &t.ParentID,
		&metricsJSON, &t.CognitiveBiases, &t.Tags, &t.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &t.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics: %w", err)
		}
	}
	return t, nil
}

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aiscore/internal/aidetect"
)

var ErrNotFound = errors.New("analysis not found")

// createdLayout is fixed width so created_at sorts as text in time order.
const createdLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record is one stored analysis. Result is only populated by Get.
type Record struct {
	ID               string              `json:"id"`
	CreatedAt        time.Time           `json:"createdAt"`
	Source           string              `json:"source"`
	WordCount        int                 `json:"wordCount"`
	AIProbability    int                 `json:"aiProbability"`
	HumanProbability int                 `json:"humanProbability"`
	Confidence       aidetect.Confidence `json:"confidence"`
	Verdict          aidetect.Verdict    `json:"verdict"`
	Result           *aidetect.Result    `json:"result,omitempty"`
}

type Store struct {
	conn *sql.DB
	now  func() time.Time
}

func OpenStore(path string) (*Store, error) {
	conn, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &Store{conn: conn, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// Save stores res under a new id.
func (s *Store) Save(ctx context.Context, source string, res aidetect.Result) (Record, error) {
	payload, err := json.Marshal(res)
	if err != nil {
		return Record{}, fmt.Errorf("encode result: %w", err)
	}
	rec := Record{
		ID:               uuid.NewString(),
		CreatedAt:        s.now().UTC(),
		Source:           source,
		WordCount:        res.WordCount,
		AIProbability:    res.AIProbability,
		HumanProbability: res.HumanProbability,
		Confidence:       res.Confidence,
		Verdict:          res.Verdict,
	}
	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO analyses(id, created_at, source, word_count, ai_probability, human_probability, confidence, verdict, result_json)
		 VALUES(?,?,?,?,?,?,?,?,?)`,
		rec.ID,
		rec.CreatedAt.Format(createdLayout),
		rec.Source,
		rec.WordCount,
		rec.AIProbability,
		rec.HumanProbability,
		string(rec.Confidence),
		string(rec.Verdict),
		string(payload),
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert analysis: %w", err)
	}
	return rec, nil
}

func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, created_at, source, word_count, ai_probability, human_probability, confidence, verdict, result_json
		 FROM analyses WHERE id = ?`, id)

	var payload string
	rec, err := scanRecord(row, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	var res aidetect.Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return Record{}, fmt.Errorf("decode result %s: %w", id, err)
	}
	rec.Result = &res
	return rec, nil
}

// List returns up to limit records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, created_at, source, word_count, ai_probability, human_probability, confidence, verdict, ''
		 FROM analyses ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var ignored string
		rec, err := scanRecord(rows, &ignored)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner, payload *string) (Record, error) {
	var (
		rec        Record
		created    string
		confidence string
		verdict    string
	)
	err := row.Scan(&rec.ID, &created, &rec.Source, &rec.WordCount, &rec.AIProbability,
		&rec.HumanProbability, &confidence, &verdict, payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan analysis: %w", err)
	}
	rec.CreatedAt, err = time.Parse(createdLayout, created)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	rec.Confidence = aidetect.Confidence(confidence)
	rec.Verdict = aidetect.Verdict(verdict)
	return rec, nil
}

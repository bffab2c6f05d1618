package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vvka-141/ogmi/internal/checksum"
	"github.com/vvka-141/ogmi/internal/logging"
	"github.com/vvka-141/ogmi/pkg/ogmi"
	"github.com/vvka-141/ogmi/pkg/opengraph"
)

// snapshotNamespace scopes the deterministic snapshot IDs.
var snapshotNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/vvka-141/ogmi/snapshot"))

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ogmi_snapshot (
    id           uuid PRIMARY KEY,
    url          text NOT NULL,
    checksum     text NOT NULL,
    raw_checksum text NOT NULL,
    fetched_at   timestamptz NOT NULL,
    snapshot     jsonb NOT NULL,
    UNIQUE (url, checksum)
);
CREATE INDEX IF NOT EXISTS ogmi_snapshot_url_fetched_idx ON ogmi_snapshot (url, fetched_at DESC);
`

const insertSQL = `
INSERT INTO ogmi_snapshot (id, url, checksum, raw_checksum, fetched_at, snapshot)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (url, checksum) DO NOTHING`

const selectColumns = `SELECT id, url, checksum, raw_checksum, fetched_at, snapshot FROM ogmi_snapshot`

// DB is the subset of *pgxpool.Pool used by Store.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Record is one archived snapshot.
type Record struct {
	ID          uuid.UUID          `json:"id" yaml:"id"`
	URL         string             `json:"url" yaml:"url"`
	Checksum    string             `json:"checksum" yaml:"checksum"`
	RawChecksum string             `json:"raw_checksum" yaml:"raw_checksum"`
	FetchedAt   time.Time          `json:"fetched_at" yaml:"fetched_at"`
	Snapshot    opengraph.Snapshot `json:"snapshot" yaml:"snapshot"`
}

// Store reads and writes snapshots. Safe for concurrent use when the
// underlying DB is.
type Store struct {
	db     DB
	calc   checksum.Calculator
	logger ogmi.Logger
	now    func() time.Time
	close  func()
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l ogmi.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for fetched_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithChecksum overrides the checksum calculator.
func WithChecksum(c checksum.Calculator) Option {
	return func(s *Store) { s.calc = c }
}

// New wraps an existing connection. The caller owns db.
func New(db DB, opts ...Option) *Store {
	s := &Store{
		db:     db,
		calc:   checksum.New(),
		logger: logging.NewNullLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the connection pool when the Store opened it.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// EnsureSchema creates the snapshot table and index if they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w: %w", ogmi.ErrStoreFailed, err)
	}
	return nil
}

// SnapshotID returns the deterministic ID for a URL and normalized checksum.
func SnapshotID(url, normalizedChecksum string) uuid.UUID {
	return uuid.NewSHA1(snapshotNamespace, []byte(url+"\x00"+normalizedChecksum))
}

// Save archives the graph under its original URL. The returned bool is false
// when an identical document was already stored for that URL.
func (s *Store) Save(ctx context.Context, g *opengraph.OpenGraph) (Record, bool, error) {
	if g == nil {
		return Record{}, false, fmt.Errorf("graph is nil: %w", ogmi.ErrInvalidConfig)
	}
	url := strings.TrimSpace(g.OriginalURL())
	if url == "" {
		return Record{}, false, fmt.Errorf("graph has no original URL: %w", ogmi.ErrInvalidConfig)
	}

	html := []byte(g.OriginalHTML())
	rec := Record{
		URL:         url,
		Checksum:    s.calc.CalculateNormalized(html),
		RawChecksum: s.calc.CalculateRaw(html),
		FetchedAt:   s.now().UTC(),
		Snapshot:    g.Snapshot(),
	}
	rec.ID = SnapshotID(rec.URL, rec.Checksum)

	body, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to encode snapshot: %w: %w", ogmi.ErrStoreFailed, err)
	}

	tag, err := s.db.Exec(ctx, insertSQL, rec.ID, rec.URL, rec.Checksum, rec.RawChecksum, rec.FetchedAt, body)
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to save snapshot for %s: %w: %w", url, ogmi.ErrStoreFailed, err)
	}

	inserted := tag.RowsAffected() > 0
	if inserted {
		s.logger.Verbose("Stored snapshot %s for %s", rec.ID, url)
	} else {
		s.logger.Verbose("Snapshot for %s unchanged (checksum %s)", url, rec.Checksum)
	}
	return rec, inserted, nil
}

// Latest returns the most recent snapshot for url, or an error wrapping
// ogmi.ErrSnapshotNotFound.
func (s *Store) Latest(ctx context.Context, url string) (Record, error) {
	row := s.db.QueryRow(ctx, selectColumns+` WHERE url = $1 ORDER BY fetched_at DESC LIMIT 1`, url)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, fmt.Errorf("%s: %w", url, ogmi.ErrSnapshotNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to load snapshot for %s: %w: %w", url, ogmi.ErrStoreFailed, err)
	}
	return rec, nil
}

// History returns up to limit snapshots for url, newest first. A limit of
// zero or less uses ogmi.DefaultHistoryLimit.
func (s *Store) History(ctx context.Context, url string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = ogmi.DefaultHistoryLimit
	}

	rows, err := s.db.Query(ctx, selectColumns+` WHERE url = $1 ORDER BY fetched_at DESC LIMIT $2`, url, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for %s: %w: %w", url, ogmi.ErrStoreFailed, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read history for %s: %w: %w", url, ogmi.ErrStoreFailed, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history for %s: %w: %w", url, ogmi.ErrStoreFailed, err)
	}
	return out, nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var (
		rec  Record
		body []byte
	)
	if err := row.Scan(&rec.ID, &rec.URL, &rec.Checksum, &rec.RawChecksum, &rec.FetchedAt, &body); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal(body, &rec.Snapshot); err != nil {
		return Record{}, fmt.Errorf("corrupt snapshot %s: %w", rec.ID, err)
	}
	return rec, nil
}

package server

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/Zachkp/folio/internal/sections"
)

// sqliteTime is how timestamps are stored, matching datetime('now').
const sqliteTime = "2006-01-02 15:04:05"

// retention is how long visitor records are kept.
const retention = "-12 months"

// VisitorMetric is one recorded page view. The IP is stored only as a salted
// hash.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Lang      string    `json:"lang,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ContactMessage is one contact form submission.
type ContactMessage struct {
	Ref       string    `json:"ref"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Lang      string    `json:"lang"`
	CreatedAt time.Time `json:"created_at"`
}

// PathStat is the view count of one path.
type PathStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// AdminStats is the dashboard summary.
type AdminStats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	ArabicShare      float64          `json:"arabic_share"`
	TotalMessages    int64            `json:"total_messages"`
	TopPaths         []PathStat       `json:"top_paths"`
	RecentVisitors   []VisitorMetric  `json:"recent_visitors"`
	RecentMessages   []ContactMessage `json:"recent_messages"`
}

// Store keeps visitor analytics and contact submissions in SQLite.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// OpenStore opens (creating if needed) the database at path. Use ":memory:"
// for a throwaway store.
func OpenStore(path string) (s *Store, err error) {
	var db *sql.DB
	db, err = sql.Open("sqlite", path)
	if err != nil {
		err = errors.Wrapf(err, "open database %s", path)
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared and serializes
	// writers.
	db.SetMaxOpenConns(1)

	s = &Store{db: db, salt: randomHex(32), now: time.Now}
	err = s.migrate()
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate() (err error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT,
			path TEXT,
			lang TEXT,
			timestamp TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp)`,
		`CREATE TABLE IF NOT EXISTS messages (
			ref TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			lang TEXT,
			created_at TEXT NOT NULL
		)`,
	}
	for _, q := range stmts {
		if _, err = s.db.Exec(q); err != nil {
			return errors.Wrap(err, "migrate")
		}
	}
	return nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("[admin] Failed to generate random bytes:", err)
	}
	return hex.EncodeToString(b)
}

// HashIP returns the salted, truncated hash stored in place of ip. It is
// stable for the lifetime of the store.
func (s *Store) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path, lang string) error {
	return s.recordVisitAt(ctx, ip, userAgent, path, lang, s.now())
}

func (s *Store) recordVisitAt(ctx context.Context, ip, userAgent, path, lang string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, lang, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, s.HashIP(ip), userAgent, path, lang, at.UTC().Format(sqliteTime))
	return errors.Wrap(err, "record visit")
}

// CleanupOldVisits deletes visitor records past the retention window and
// returns how many were removed.
func (s *Store) CleanupOldVisits(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM visitors
		WHERE timestamp < datetime('now', ?)
	`, retention)
	if err != nil {
		return 0, errors.Wrap(err, "cleanup visitors")
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		log.Printf("[admin] Privacy cleanup: Removed %d visitor records older than 12 months", n)
	}
	return n, nil
}

// SaveContact stores a submission and returns its reference.
func (s *Store) SaveContact(ctx context.Context, f sections.ContactForm, lang string) (ref string, err error) {
	ref = uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO messages (ref, name, email, message, lang, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, ref, f.Name, f.Email, f.Message, lang, s.now().UTC().Format(sqliteTime))
	if err != nil {
		return "", errors.Wrap(err, "save contact message")
	}
	return ref, nil
}

// DeleteContact removes a submission. It reports whether one existed.
func (s *Store) DeleteContact(ctx context.Context, ref string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE ref = ?`, ref)
	if err != nil {
		return false, errors.Wrapf(err, "delete message %s", ref)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Visitors returns the most recent page views, newest first.
func (s *Store) Visitors(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), COALESCE(lang, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query visitors")
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Lang, &ts); err != nil {
			continue
		}
		v.Timestamp, _ = time.Parse(sqliteTime, ts)
		out = append(out, v)
	}
	return out, errors.Wrap(rows.Err(), "scan visitors")
}

// Messages returns the most recent contact submissions, newest first.
func (s *Store) Messages(ctx context.Context, limit int) ([]ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ref, name, email, message, COALESCE(lang, ''), created_at
		FROM messages
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query messages")
	}
	defer rows.Close()

	var out []ContactMessage
	for rows.Next() {
		var m ContactMessage
		var ts string
		if err := rows.Scan(&m.Ref, &m.Name, &m.Email, &m.Message, &m.Lang, &ts); err != nil {
			continue
		}
		m.CreatedAt, _ = time.Parse(sqliteTime, ts)
		out = append(out, m)
	}
	return out, errors.Wrap(rows.Err(), "scan messages")
}

// Stats builds the dashboard summary.
func (s *Store) Stats(ctx context.Context) (stats *AdminStats, err error) {
	stats = &AdminStats{}
	counts := []struct {
		dst   *int64
		query string
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')`},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')`},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`},
	}
	for _, c := range counts {
		if err = s.db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return nil, errors.Wrap(err, "count")
		}
	}

	if stats.TotalVisitors > 0 {
		var arabic int64
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visitors WHERE lang = 'ar'`).Scan(&arabic)
		if err != nil {
			return nil, errors.Wrap(err, "count arabic visitors")
		}
		stats.ArabicShare = float64(arabic) / float64(stats.TotalVisitors)
	}

	if stats.TopPaths, err = s.topPaths(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.Visitors(ctx, 50); err != nil {
		return nil, err
	}
	if stats.RecentMessages, err = s.Messages(ctx, 10); err != nil {
		return nil, err
	}
	return stats, nil
}

// topPaths closes its rows before returning; the store runs on one
// connection.
func (s *Store) topPaths(ctx context.Context, limit int) ([]PathStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(path, ''), COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "top paths")
	}
	defer rows.Close()

	var out []PathStat
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, errors.Wrap(rows.Err(), "scan top paths")
}

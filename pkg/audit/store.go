package audit

import (
	"database/sql"
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// Store persists audit events to the optional audit database. One row is
// written per event, carrying the syslog envelope of the logger plus the
// event's structured data as jsonb so compliance reviews can query by
// subject or document.
type Store struct {
	db *sql.DB
}

// NewStore creates a store from AUDIT_DATABASE_URL. Returns nil if
// AUDIT_DATABASE_URL is not set (audit DB disabled).
func NewStore() (*Store, error) {
	dbURL := os.Getenv("AUDIT_DATABASE_URL")
	if dbURL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB creates a store with an existing database connection.
// Useful for testing with sqlmock.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes one audit event. The event column holds the message id
// ("document", "moderation-request", ...) so decisions on a document can be
// pulled with a single indexed query.
func (s *Store) Save(event Event) error {
	if s.db == nil {
		return nil
	}

	hostname, _ := os.Hostname()

	sdataJSON, err := json.Marshal(event.StructuredData())
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO audit_messages (logged_at, hostname, procid, event, severity, facility, sdata, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		time.Now().UTC(),
		hostname,
		strconv.Itoa(os.Getpid()),
		event.MessageID(),
		int(event.Severity()),
		event.Facility(),
		sdataJSON,
		event.Message(),
	)

	return err
}

// DB returns the underlying database connection (for testing)
func (s *Store) DB() *sql.DB {
	return s.db
}

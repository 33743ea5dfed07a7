package storage

import (
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

var (
	ErrIdentifierExists = errors.New("id number already registered")
	ErrNotFound         = errors.New("record not found")
)

// Store wraps the shared connection pool. One Store is created at startup
// and injected into the services that need it.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"full_name" TEXT NOT NULL,
			"gender" TEXT,
			"birth_date" TEXT,
			"id_number" TEXT NOT NULL UNIQUE,
			"password" TEXT NOT NULL,
			"phone_number" TEXT,
			"email" TEXT,
			"created_at" TEXT NOT NULL
	);`
	createHealthChecksTable := `
	CREATE TABLE IF NOT EXISTS health_checks (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"id_number" TEXT NOT NULL,
			"check_date" TEXT NOT NULL,
			"data" TEXT,
			"file_data" BLOB,
			"extracted_text" TEXT,
			"notes" TEXT,
			"created_at" TEXT,
			FOREIGN KEY(id_number) REFERENCES users(id_number)
	);`

	if _, err := s.db.Exec(createUsersTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(createHealthChecksTable); err != nil {
		return err
	}
	return nil
}

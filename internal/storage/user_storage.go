package storage

import (
	"database/sql"
	"errors"
	"time"

	"health_check_project/internal/models"

	"modernc.org/sqlite"
)

// sqlite extended error code for UNIQUE constraint violations.
const sqliteConstraintUnique = 2067

// IdentifierExists reports whether a user row exists for the given id number.
// Empty identifiers never match.
func (s *Store) IdentifierExists(idNumber string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT COUNT(*) FROM users WHERE id_number = ? AND id_number != ''", idNumber)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindIdentifier returns the stored id number, or ErrNotFound.
func (s *Store) FindIdentifier(idNumber string) (string, error) {
	var found string
	row := s.db.QueryRow("SELECT id_number FROM users WHERE id_number = ? AND id_number != ''", idNumber)
	if err := row.Scan(&found); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", err
	}
	return found, nil
}

func (s *Store) CreateUser(user models.User) error {
	stmt, err := s.db.Prepare(`INSERT INTO users
		(full_name, gender, birth_date, id_number, password, phone_number, email, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		user.FullName,
		user.Gender,
		user.BirthDate,
		user.IDNumber,
		user.PasswordHash,
		user.PhoneNumber,
		user.Email,
		time.Now().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return ErrIdentifierExists
		}
		return err
	}
	return nil
}

// GetUserCredentials returns the stored password hash for a login check.
func (s *Store) GetUserCredentials(idNumber string) (string, error) {
	var hash sql.NullString
	row := s.db.QueryRow("SELECT password FROM users WHERE id_number = ? AND id_number != ''", idNumber)
	if err := row.Scan(&hash); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", err
	}
	return hash.String, nil
}

// ResetPassword overwrites the stored hash when the (id number, email) pair
// matches exactly. ErrNotFound otherwise.
func (s *Store) ResetPassword(idNumber, email, newHash string) error {
	var id int
	row := s.db.QueryRow("SELECT id FROM users WHERE id_number = ? AND email = ?", idNumber, email)
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}

	_, err := s.db.Exec("UPDATE users SET password = ? WHERE id = ?", newHash, id)
	return err
}

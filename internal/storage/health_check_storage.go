package storage

import (
	"database/sql"
	"time"

	"health_check_project/internal/models"
)

// UpsertHealthCheck stores the extracted document for a user, replacing any
// previous record for the same id number. The raw text is stored redundantly
// in both the data and extracted_text columns, matching the legacy schema.
// It reports whether an existing record was updated.
func (s *Store) UpsertHealthCheck(idNumber string, extractedText string, fileData []byte) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT COUNT(*) FROM health_checks WHERE id_number = ?", idNumber)
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	checkDate := time.Now().Format("2006-01-02")

	if count > 0 {
		stmt, err := s.db.Prepare(`UPDATE health_checks
			SET check_date = ?, data = ?, file_data = ?, extracted_text = ?
			WHERE id_number = ?`)
		if err != nil {
			return false, err
		}
		defer stmt.Close()

		if _, err := stmt.Exec(checkDate, extractedText, fileData, extractedText, idNumber); err != nil {
			return false, err
		}
		return true, nil
	}

	stmt, err := s.db.Prepare(`INSERT INTO health_checks
		(id_number, check_date, data, file_data, extracted_text, created_at)
		VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(idNumber, checkDate, extractedText, fileData, extractedText,
		time.Now().Format("2006-01-02 15:04:05"))
	return false, err
}

// GetLatestHealthRecord joins the user row with the most recent health check.
// ErrNotFound when the user has no health check on file.
func (s *Store) GetLatestHealthRecord(idNumber string) (models.HealthRecord, error) {
	query := `
		SELECT u.full_name, u.gender, u.birth_date, hc.check_date, hc.extracted_text,
		       hc.notes, u.created_at, u.id_number, u.phone_number, u.email
		FROM health_checks hc
		JOIN users u ON hc.id_number = u.id_number
		WHERE hc.id_number = ?
		ORDER BY hc.check_date DESC
	`
	var record models.HealthRecord
	var gender, extractedText, notes, createdAt, phone, email sql.NullString

	row := s.db.QueryRow(query, idNumber)
	if err := row.Scan(
		&record.FullName,
		&gender,
		&record.BirthDate,
		&record.CheckDate,
		&extractedText,
		&notes,
		&createdAt,
		&record.IDNumber,
		&phone,
		&email,
	); err != nil {
		if err == sql.ErrNoRows {
			return record, ErrNotFound
		}
		return record, err
	}

	record.Gender = gender.String
	record.ExtractedText = extractedText.String
	record.Notes = notes.String
	record.CreatedAt = createdAt.String
	record.PhoneNumber = phone.String
	record.Email = email.String
	return record, nil
}

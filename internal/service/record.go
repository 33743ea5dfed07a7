package service

import (
	"fmt"
	"strings"

	"health_check_project/internal/extractor"
	"health_check_project/internal/models"
	"health_check_project/internal/storage"
	"health_check_project/internal/validation"
)

// RecordService orchestrates document upload (extract + upsert) and joined
// retrieval of the latest health check.
type RecordService struct {
	store   *storage.Store
	extract func(data []byte, ext string) (string, error)
}

// NewRecordService takes the byte→text converter explicitly; production
// wiring passes extractor.Extract.
func NewRecordService(store *storage.Store, extract func(data []byte, ext string) (string, error)) *RecordService {
	return &RecordService{store: store, extract: extract}
}

// Upload stores the extracted text and original bytes for an existing user.
// It returns the extracted text and whether a previous record was replaced.
func (s *RecordService) Upload(idNumber, filename, contentType string, data []byte) (string, bool, error) {
	if !validation.IDNumber(idNumber) {
		return "", false, validation.ErrIDNumberFormat
	}
	if _, err := s.store.FindIdentifier(idNumber); err != nil {
		return "", false, err
	}
	if !extractor.SupportedContentType(contentType) {
		return "", false, extractor.ErrUnsupportedFormat
	}

	ext := ""
	if dot := strings.LastIndex(filename, "."); dot >= 0 {
		ext = filename[dot+1:]
	}

	text, err := s.extract(data, ext)
	if err != nil {
		return "", false, err
	}

	updated, err := s.store.UpsertHealthCheck(idNumber, text, data)
	if err != nil {
		return "", false, err
	}
	return text, updated, nil
}

// Retrieve returns the latest joined record for an existing user.
func (s *RecordService) Retrieve(idNumber string) (models.HealthRecord, error) {
	if !validation.IDNumber(idNumber) {
		return models.HealthRecord{}, validation.ErrIDNumberFormat
	}
	if _, err := s.store.FindIdentifier(idNumber); err != nil {
		return models.HealthRecord{}, err
	}
	return s.store.GetLatestHealthRecord(idNumber)
}

// FormatRecord renders the joined record as the fixed-order block consumed by
// the analysis prompts and returned in health_data.
func FormatRecord(record models.HealthRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("使用者姓名: %s\n", record.FullName))
	sb.WriteString(fmt.Sprintf("性別: %s\n", orDefault(record.Gender, "未提供")))
	sb.WriteString(fmt.Sprintf("出生日期: %s\n", record.BirthDate))
	sb.WriteString(fmt.Sprintf("健檢日期: %s\n", record.CheckDate))
	sb.WriteString(fmt.Sprintf("健檢資料: %s\n", orDefault(record.ExtractedText, "無")))
	sb.WriteString(fmt.Sprintf("建議: %s\n", orDefault(record.Notes, "無")))
	sb.WriteString(fmt.Sprintf("創建時間: %s\n", orDefault(record.CreatedAt, "未提供")))
	sb.WriteString(fmt.Sprintf("身分證字號: %s\n", record.IDNumber))
	sb.WriteString(fmt.Sprintf("手機號碼: %s\n", record.PhoneNumber))
	sb.WriteString(fmt.Sprintf("電子郵件: %s\n", record.Email))
	return sb.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

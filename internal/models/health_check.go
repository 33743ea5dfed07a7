package models

// 健檢資料模型，每位用戶最多保留一筆（以身分證字號 upsert）
type HealthCheck struct {
	IDNumber      string `json:"id_number"`
	CheckDate     string `json:"check_date"` // YYYY-MM-DD
	Data          string `json:"data"`
	FileData      []byte `json:"-"`
	ExtractedText string `json:"extracted_text"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// HealthRecord is the users ⋈ health_checks row consumed by the analysis flow.
type HealthRecord struct {
	FullName      string
	Gender        string
	BirthDate     string
	CheckDate     string
	ExtractedText string
	Notes         string
	CreatedAt     string
	IDNumber      string
	PhoneNumber   string
	Email         string
}

package repository

import "time"

// IdentityRecord is an enrollable person. Display metadata only; the
// pipeline never writes identities.
type IdentityRecord struct {
	ID          string    `gorm:"primaryKey;size:64"`
	DisplayName string    `gorm:"column:display_name;size:128"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (IdentityRecord) TableName() string {
	return "identities"
}

// TemplateRecord is the one canonical template stored per identity.
// Embedding and landmarks are JSON-encoded float arrays.
type TemplateRecord struct {
	ID            uint      `gorm:"primaryKey"`
	IdentityID    string    `gorm:"column:identity_id;uniqueIndex;size:64"`
	Embedding     []byte    `gorm:"column:embedding;type:text"`
	Landmarks     []byte    `gorm:"column:landmarks;type:text"`
	LivenessScore float64   `gorm:"column:liveness_score"`
	CapturedAt    time.Time `gorm:"column:captured_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (TemplateRecord) TableName() string {
	return "face_templates"
}

// AttendanceRecord is one append-only attendance event.
type AttendanceRecord struct {
	ID         uint      `gorm:"primaryKey"`
	IdentityID string    `gorm:"column:identity_id;size:64;index:idx_attendance_identity_time"`
	Timestamp  time.Time `gorm:"column:timestamp;index:idx_attendance_identity_time"`
	Confidence float64   `gorm:"column:confidence"`
	Device     string    `gorm:"column:device;size:64"`
}

// TableName overrides the default table name.
func (AttendanceRecord) TableName() string {
	return "attendance_events"
}

// RecognitionLog is one audit entry per match attempt, successful or not.
// IdentityID is empty when no identity matched.
type RecognitionLog struct {
	ID         uint      `gorm:"primaryKey"`
	SessionID  string    `gorm:"column:session_id;size:64;index"`
	IdentityID string    `gorm:"column:identity_id;size:64"`
	Embedding  []byte    `gorm:"column:embedding;type:text"`
	Similarity float64   `gorm:"column:similarity"`
	Success    bool      `gorm:"column:success"`
	Device     string    `gorm:"column:device;size:64"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (RecognitionLog) TableName() string {
	return "recognition_logs"
}

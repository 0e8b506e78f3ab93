package history

import (
	"time"

	"github.com/yanun0323/logs"
	"gorm.io/gorm"
)

// Record is one mirrored historical entry. Rows are insert-only, matching
// the append semantics of the text streams.
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"index:idx_history_kind_key"`
	Key       string `gorm:"index:idx_history_kind_key"`
	Payload   string
	CreatedAt time.Time
}

func (Record) TableName() string { return "history_records" }

// Mirror copies persisted records into PostgreSQL.
type Mirror struct {
	db *gorm.DB
}

// NewMirror migrates the record table and returns the mirror.
func NewMirror(db *gorm.DB) (*Mirror, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Mirror{db: db}, nil
}

// Save inserts one record. Failures are logged, never propagated.
func (m *Mirror) Save(kind, key, payload string) {
	rec := Record{Kind: kind, Key: key, Payload: payload}
	if err := m.db.Create(&rec).Error; err != nil {
		logs.Errorf("mirror %s record: %+v", kind, err)
	}
}

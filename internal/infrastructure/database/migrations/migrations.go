package migrations

import (
	"log"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate creates the gateway-owned tracking tables. The legacy oc_*
// tables are deliberately left untouched.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Session{},
		&entities.UserActivity{},
	)
}

// AddIndexes cria índices usados pelas consultas de analytics. Errors
// are logged and skipped so a partially indexed database still boots.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_api_user_activity_event_type", "CREATE INDEX idx_api_user_activity_event_type ON api_user_activity (event_type)"},
		{"idx_api_user_activity_date_added", "CREATE INDEX idx_api_user_activity_date_added ON api_user_activity (date_added)"},
		{"idx_api_session_last_activity", "CREATE INDEX idx_api_session_last_activity ON api_session (last_activity)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			// MySQL has no CREATE INDEX IF NOT EXISTS; rerunning is fine
			log.Printf("⚠️ Skipping index %s: %v", idx.name, err)
		}
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"tourguard/internal/domain/entity"
	"tourguard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&model.GeofenceModel{},
		&model.IncidentModel{},
		&model.AlertModel{},
		&model.TouristLocationModel{},
		&model.LocationHistoryModel{},
		&model.TouristProfileModel{},
	}
}

// Migrate creates or updates the schema, including the indexes GORM tags cannot express.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	statements := []string{
		fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS %s ON alerts (incident_id, channel) WHERE status = '%s'`,
			model.AlertPendingIndex, entity.AlertStatusPending,
		),
		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_alerts_incident') THEN
				ALTER TABLE alerts ADD CONSTRAINT fk_alerts_incident
					FOREIGN KEY (incident_id) REFERENCES incidents (id) ON DELETE CASCADE;
			END IF;
		END $$`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "failed to apply schema statement")
		}
	}

	return nil
}

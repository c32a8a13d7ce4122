// internal/app/system/schema/schema.go
package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dalemusser/groupflight/internal/domain/models"
	"gorm.io/gorm"
)

/*
EnsureAll is called at startup (and by test setup). Every step is idempotent:
AutoMigrate only adds what is missing, and the extra indexes use IF NOT EXISTS.
Problems are aggregated so one bad table does not hide another.
*/
func EnsureAll(ctx context.Context, db *gorm.DB) error {
	var problems []string
	tx := db.WithContext(ctx)

	for _, m := range models.All() {
		if err := tx.AutoMigrate(m); err != nil {
			problems = append(problems, fmt.Sprintf("%T: %v", m, err))
		}
	}

	// The junction's composite primary key leads with event_id, which covers
	// "groups for event". "Events for group" needs its own index.
	for _, stmt := range extraIndexes {
		if err := tx.Exec(stmt).Error; err != nil {
			problems = append(problems, stmt+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

var extraIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_event_groups_group_id ON event_groups (group_id)",
}

package seeds

import (
	"context"

	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/seeds/hr"
)

// RunAllSeeds loads demo data from path; an empty path does nothing.
func RunAllSeeds(ctx context.Context, db *gorm.DB, path string) error {
	if path == "" {
		return nil
	}
	configs.Log.WithField("file", path).Info("📥 seeding demo data")

	//* HR
	sf, err := hr.LoadSeedFile(path, nil)
	if err != nil {
		return err
	}
	return hr.Apply(ctx, db, sf)
}

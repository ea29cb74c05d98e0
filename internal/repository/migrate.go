package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema for all persisted models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&hotelModel{},
		&roomModel{},
		&bookingModel{},
	); err != nil {
		return err
	}

	// On Postgres an exclusion constraint rejects a second active booking
	// whose stay intersects an existing one for the same room. This closes
	// the gap between the availability check and the insert; SQLite has no
	// equivalent, so local dev keeps the check/insert window open.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
			return err
		}
		if err := db.Exec(`
DO $$ BEGIN
  ALTER TABLE bookings ADD CONSTRAINT idx_no_overbooking
    EXCLUDE USING gist (
      room_id WITH =,
      tstzrange(check_in_date, check_out_date, '[]') WITH &&
    ) WHERE (status IN ('pending', 'confirmed'));
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;
`).Error; err != nil {
			return err
		}
	}

	return nil
}

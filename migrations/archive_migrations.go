package migrations

import "gorm.io/gorm"

// GetArchiveMigrations returns the archive table migrations in order.
func GetArchiveMigrations() []Definition {
	return []Definition{
		{
			Name: "2026_08_10_000000_create_archived_matches",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS archived_matches (
						id BIGSERIAL PRIMARY KEY,
						match_id VARCHAR(36) NOT NULL UNIQUE,
						format VARCHAR(20) NOT NULL,
						scoring_system VARCHAR(20) NOT NULL,
						target_score INT NOT NULL,
						team1_score INT NOT NULL,
						team2_score INT NOT NULL,
						winner INT NOT NULL,
						rally_count INT NOT NULL,
						started_at TIMESTAMP NOT NULL,
						completed_at TIMESTAMP NOT NULL,
						created_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_archived_matches_completed_at ON archived_matches(completed_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`DROP TABLE IF EXISTS archived_matches;`).Error
			},
		},
		{
			Name: "2026_08_10_000001_create_archived_tournaments",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS archived_tournaments (
						id BIGSERIAL PRIMARY KEY,
						tournament_id VARCHAR(36) NOT NULL UNIQUE,
						name VARCHAR(255) NOT NULL,
						organizer_id VARCHAR(255) NOT NULL,
						team_count INT NOT NULL,
						fixture_count INT NOT NULL,
						winner_name VARCHAR(255),
						started_at TIMESTAMP NOT NULL,
						completed_at TIMESTAMP NOT NULL,
						created_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_archived_tournaments_completed_at ON archived_tournaments(completed_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`DROP TABLE IF EXISTS archived_tournaments;`).Error
			},
		},
	}
}

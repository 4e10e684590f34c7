package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(64) PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'routeman',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS reports (
		id VARCHAR(64) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		report_type VARCHAR(16) NOT NULL DEFAULT 'iceCream',
		status VARCHAR(16) NOT NULL DEFAULT 'completed',
		location VARCHAR(255) NOT NULL,
		machine_serial_number VARCHAR(10) NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		user_id VARCHAR(64) NOT NULL REFERENCES users(id),
		user_name VARCHAR(255) NOT NULL,
		equipment_checklist JSONB,
		cleaning_checklist JSONB,
		filling_details JSONB,
		cup_stock TEXT NOT NULL DEFAULT '',
		waste_note TEXT NOT NULL DEFAULT '',
		stock_info TEXT NOT NULL DEFAULT '',
		issue JSONB,
		waste JSONB,
		slots JSONB,
		before_photos JSONB NOT NULL DEFAULT '[]',
		after_photos JSONB NOT NULL DEFAULT '[]',
		issue_photos JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_reports_user_id ON reports (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports (created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_reports_report_type ON reports (report_type);`,
	`CREATE TABLE IF NOT EXISTS commodities (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		commodity_code VARCHAR(64) NOT NULL UNIQUE,
		product_name VARCHAR(255) NOT NULL,
		unit_price VARCHAR(32) NOT NULL DEFAULT '',
		cost_price VARCHAR(32) NOT NULL DEFAULT '',
		supplier VARCHAR(255) NOT NULL DEFAULT '',
		specs VARCHAR(255) NOT NULL DEFAULT '',
		type VARCHAR(64) NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_commodities_supplier ON commodities (supplier);`,
	`CREATE INDEX IF NOT EXISTS idx_commodities_type ON commodities (type);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

// Command migrate backfills the weekly_hours column from the legacy hours
// and days_open columns, then drops the legacy columns. It is safe to run
// repeatedly; a database without the legacy columns is left untouched.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"coffee-filter-api/internal/config"
	"coffee-filter-api/internal/hours"

	"github.com/jackc/pgx/v5"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	hasHours, err := columnExists(ctx, conn, "hours")
	if err != nil {
		fmt.Printf("Error inspecting schema: %v\n", err)
		os.Exit(1)
	}
	hasDaysOpen, err := columnExists(ctx, conn, "days_open")
	if err != nil {
		fmt.Printf("Error inspecting schema: %v\n", err)
		os.Exit(1)
	}

	if !hasHours && !hasDaysOpen {
		fmt.Println("Migration already completed")
		return
	}

	if _, err := conn.Exec(ctx, `ALTER TABLE coffee_shops ADD COLUMN IF NOT EXISTS weekly_hours JSONB`); err != nil {
		fmt.Printf("Error adding weekly_hours column: %v\n", err)
		os.Exit(1)
	}

	migrated, err := backfill(ctx, conn, hasHours, hasDaysOpen)
	if err != nil {
		fmt.Printf("Error migrating data: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Migrated %d shops\n", migrated)

	if hasHours {
		if _, err := conn.Exec(ctx, `ALTER TABLE coffee_shops DROP COLUMN hours`); err != nil {
			fmt.Printf("Error dropping hours column: %v\n", err)
			os.Exit(1)
		}
	}
	if hasDaysOpen {
		if _, err := conn.Exec(ctx, `ALTER TABLE coffee_shops DROP COLUMN days_open`); err != nil {
			fmt.Printf("Error dropping days_open column: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Migration completed successfully")
}

func columnExists(ctx context.Context, conn *pgx.Conn, column string) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'coffee_shops' AND column_name = $1
		)`, column).Scan(&exists)
	return exists, err
}

type legacyRow struct {
	id       int
	hours    string
	daysOpen []string
}

func backfill(ctx context.Context, conn *pgx.Conn, hasHours, hasDaysOpen bool) (int, error) {
	sql := "SELECT id, "
	if hasHours {
		sql += "COALESCE(hours, ''), "
	} else {
		sql += "'', "
	}
	if hasDaysOpen {
		sql += "COALESCE(days_open, '')"
	} else {
		sql += "''"
	}
	sql += " FROM coffee_shops"

	rows, err := conn.Query(ctx, sql)
	if err != nil {
		return 0, fmt.Errorf("failed to read legacy columns: %w", err)
	}

	var legacy []legacyRow
	for rows.Next() {
		var row legacyRow
		var daysRaw string
		if err := rows.Scan(&row.id, &row.hours, &daysRaw); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan row: %w", err)
		}
		row.daysOpen = parseDays(daysRaw)
		legacy = append(legacy, row)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating rows: %w", err)
	}

	for _, row := range legacy {
		weekly := hours.ExpandDays(row.hours, row.daysOpen)
		if _, err := conn.Exec(ctx, `UPDATE coffee_shops SET weekly_hours = $1 WHERE id = $2`, weekly, row.id); err != nil {
			return 0, fmt.Errorf("failed to update shop %d: %w", row.id, err)
		}
		fmt.Printf("  Migrated shop %d: %v\n", row.id, weekly)
	}

	return len(legacy), nil
}

// days_open was stored either as a JSON array or a bare comma-separated
// string; historic data is noisy, so an unparsable value just means no days.
func parseDays(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var days []string
	if err := json.Unmarshal([]byte(raw), &days); err == nil {
		return days
	}

	for _, day := range strings.Split(raw, ",") {
		if day = strings.TrimSpace(day); day != "" {
			days = append(days, day)
		}
	}
	return days
}

package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"coffee-filter-api/internal/config"
	"coffee-filter-api/internal/geocode"
	"coffee-filter-api/internal/hours"
	"coffee-filter-api/internal/models"
	"coffee-filter-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShopRecord is one CSV row of seed data. The hours and days columns use the
// legacy free-text format and are expanded into weekly hours on import.
type ShopRecord struct {
	Name          string
	Address       string
	Lat           float64
	Lon           float64
	HasCoords     bool
	Image         string
	Accessibility bool
	HasWifi       bool
	Description   string
	Machine       string
	WeeklyHours   models.WeeklyHours
	PourOver      bool
	Website       *string
	Instagram     *string
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Geocode rows that came without coordinates
	resolver := geocode.NewClient(cfg.NominatimBaseURL, cfg.GeocodeUserAgent, cfg.GeocodeTimeout)
	skipped := 0
	resolved := make([]ShopRecord, 0, len(records))
	for _, r := range records {
		if !r.HasCoords {
			lat, lon, ok := resolver.Resolve(context.Background(), r.Address)
			if !ok {
				fmt.Printf("Skipping %q: could not geocode address %q\n", r.Name, r.Address)
				skipped++
				continue
			}
			r.Lat = lat
			r.Lon = lon
		}
		resolved = append(resolved, r)
	}

	// Connect to DB
	conn, err := pgxpool.New(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Ensure tables exist
	if err := repository.NewRepository(conn).Migrate(context.Background()); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	err = insertRecords(conn, resolved)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, len(resolved))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records (%d skipped)\n", len(resolved), skipped)
}

// Columns: name, address, latitude, longitude, image, accessibility,
// has_wifi, description, machine, hours, days_open, pour_over, website,
// instagram. days_open holds day names separated by ';'.
func parseCSV(filePath string) ([]ShopRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []ShopRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 14 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 14 columns", len(record))
		}

		shop := ShopRecord{
			Name:          record[0],
			Address:       record[1],
			Image:         record[4],
			Accessibility: record[5] == "true",
			HasWifi:       record[6] == "true",
			Description:   record[7],
			Machine:       record[8],
			PourOver:      record[11] == "true",
			Website:       optionalColumn(record[12]),
			Instagram:     optionalColumn(record[13]),
		}

		if record[2] != "" && record[3] != "" {
			lat, err := strconv.ParseFloat(record[2], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid latitude: %s", record[2])
			}
			lon, err := strconv.ParseFloat(record[3], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid longitude: %s", record[3])
			}
			shop.Lat = lat
			shop.Lon = lon
			shop.HasCoords = true
		}

		var days []string
		for _, day := range strings.Split(record[10], ";") {
			if day = strings.TrimSpace(day); day != "" {
				days = append(days, day)
			}
		}
		shop.WeeklyHours = hours.ExpandDays(record[9], days)

		if shop.Image == "" {
			shop.Image = models.DefaultImage
		}

		records = append(records, shop)
	}

	return records, nil
}

func optionalColumn(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func insertRecords(conn *pgxpool.Pool, records []ShopRecord) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"coffee_shops"},
		[]string{"name", "address", "latitude", "longitude", "image", "accessibility", "has_wifi", "description", "machine", "weekly_hours", "pour_over", "website", "instagram"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{r.Name, r.Address, r.Lat, r.Lon, r.Image, r.Accessibility, r.HasWifi, r.Description, r.Machine, r.WeeklyHours, r.PourOver, r.Website, r.Instagram}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgxpool.Pool, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM coffee_shops").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count < expectedCount {
		return fmt.Errorf("record count mismatch: expected at least %d, got %d", expectedCount, count)
	}

	var name string
	err = conn.QueryRow(context.Background(), "SELECT name FROM coffee_shops LIMIT 1").Scan(&name)
	if err != nil {
		return fmt.Errorf("failed to check sample row: %w", err)
	}

	fmt.Printf("Sample shop: %s\n", name)
	return nil
}

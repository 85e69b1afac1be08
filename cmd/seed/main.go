package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fitstudio/internal/class"
	"fitstudio/internal/config"
	"fitstudio/internal/db"
	"fitstudio/internal/logger"
	"fitstudio/internal/timezone"
)

const seedTimeLayout = "2006-01-02 15:04:05"

var requiredColumns = []string{"Class Name", "Start Time", "Instructor", "Available Slots"}

// Imports fitness classes from a CSV file. Start times carry no zone suffix
// and are interpreted in the studio home zone.
func main() {
	logger.Init()

	filePath := flag.String("file", "classes_data.csv", "Path to the classes CSV file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		logger.Fatalf("File not found: %s", *filePath)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		logger.Fatalf("Error while reading CSV file: %v", err)
	}
	if len(rows) < 1 {
		logger.Fatal("CSV file is empty")
	}

	columns, err := columnIndexes(rows[0])
	if err != nil {
		logger.Fatalf("Missing required columns. Required: %v", requiredColumns)
	}

	repo := class.NewRepository(database)
	ctx := context.Background()

	imported := 0
	for i, row := range rows[1:] {
		startTime, err := timezone.ParseInHomeZone(seedTimeLayout, strings.TrimSpace(row[columns["Start Time"]]))
		if err != nil {
			logger.Errorf("Skipping row %d due to error: %v", i+2, err)
			continue
		}

		slots, err := strconv.Atoi(strings.TrimSpace(row[columns["Available Slots"]]))
		if err != nil || slots < 0 {
			logger.Errorf("Skipping row %d: invalid slot count %q", i+2, row[columns["Available Slots"]])
			continue
		}

		name := strings.TrimSpace(row[columns["Class Name"]])
		instructor := strings.TrimSpace(row[columns["Instructor"]])

		if _, err := repo.CreateClass(ctx, name, startTime, instructor, slots); err != nil {
			logger.Errorf("Skipping row %d due to error: %v", i+2, err)
			continue
		}
		imported++
	}

	if imported > 0 {
		logger.Infof("%d classes imported successfully", imported)
	} else {
		logger.Warn("No valid rows to import")
	}
}

func columnIndexes(header []string) (map[string]int, error) {
	columns := map[string]int{}
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	return columns, nil
}

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go-library-management/config"
	"go-library-management/internal/domain/entity"
	"go-library-management/internal/infrastructure/database"
	"go-library-management/internal/repository"

	"github.com/sirupsen/logrus"
)

// Bulk catalog importer. Reads a CSV with the columns
// name,image,publisher,inventory,author_name and inserts the books,
// linking each row to an existing author by name. Invalid rows are
// skipped with a warning so one bad line never aborts the import.
func main() {
	filePath := flag.String("file", "", "path to the CSV file to import")
	flag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	if *filePath == "" {
		logrus.Fatal("Usage: importer -file <books.csv>")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	file, err := os.Open(*filePath)
	if err != nil {
		logrus.Fatalf("Failed to open %s: %v", *filePath, err)
	}
	defer file.Close()

	bookRepo := repository.NewBookRepository()
	authorRepo := repository.NewAuthorRepository()

	reader := csv.NewReader(file)

	// Header row
	if _, err := reader.Read(); err != nil {
		logrus.Fatalf("Failed to read CSV header: %v", err)
	}

	imported, skipped := 0, 0
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logrus.Warnf("Line %d: malformed row, skipping: %v", line, err)
			skipped++
			continue
		}

		book, err := parseRow(record)
		if err != nil {
			logrus.Warnf("Line %d: %v, skipping", line, err)
			skipped++
			continue
		}

		author, err := authorRepo.FindByName(db, record[4])
		if err != nil {
			logrus.Warnf("Line %d: failed to look up author %q: %v, skipping", line, record[4], err)
			skipped++
			continue
		}
		if author == nil {
			logrus.Warnf("Line %d: author %q not found, skipping", line, record[4])
			skipped++
			continue
		}
		book.Authors = []entity.Author{*author}

		if err := bookRepo.Create(db, book); err != nil {
			logrus.Warnf("Line %d: failed to insert book %q: %v, skipping", line, book.Name, err)
			skipped++
			continue
		}
		imported++
	}

	logrus.Infof("Import complete: %d imported, %d skipped", imported, skipped)
}

func parseRow(record []string) (*entity.Book, error) {
	if len(record) < 5 {
		return nil, fmt.Errorf("expected 5 columns, got %d", len(record))
	}

	name, image, publisher := record[0], record[1], record[2]
	if name == "" || publisher == "" {
		return nil, fmt.Errorf("name and publisher are required")
	}
	if image == "" {
		image = entity.DefaultBookImage
	}

	inventory, err := strconv.Atoi(record[3])
	if err != nil || inventory < 0 {
		return nil, fmt.Errorf("invalid inventory %q", record[3])
	}

	return &entity.Book{
		Name:      name,
		Image:     image,
		Publisher: publisher,
		Inventory: inventory,
	}, nil
}

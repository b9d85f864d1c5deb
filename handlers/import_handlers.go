package handlers

import (
	"encoding/csv"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pricewise/models"
)

// HandleImportDataset ingests a CSV upload (header row + typed cells) into
// the smartphone reference dataset. Schema is not validated beyond counting
// rows and columns; rows without a brand and model are skipped.
func HandleImportDataset(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "file is required"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to read upload"})
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "File is empty or not valid CSV"})
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(row []string, name string) float64 {
		v, _ := strconv.ParseFloat(cell(row, name), 64)
		return v
	}

	summary := models.ImportSummary{Columns: len(header), Headers: header}
	var records []models.PhoneRecord

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Malformed CSV row"})
		}
		summary.Rows++

		record := models.PhoneRecord{
			Brand:       cell(row, "brand"),
			Model:       cell(row, "model"),
			LaunchPrice: num(row, "launch_price"),
			DemandLevel: num(row, "demand_level"),
			RAM:         cell(row, "ram"),
			Storage:     cell(row, "storage"),
			ScreenSize:  cell(row, "screen_size"),
			Battery:     cell(row, "battery"),
			Camera:      cell(row, "camera"),
		}
		if record.Brand == "" || record.Model == "" {
			continue
		}
		records = append(records, record)
	}

	dataStore.AddPhoneRecords(records...)
	summary.Imported = len(records)

	log.Printf("Dataset import: %d rows, %d columns, %d records imported", summary.Rows, summary.Columns, summary.Imported)

	return c.JSON(fiber.Map{"status": "success", "data": summary})
}

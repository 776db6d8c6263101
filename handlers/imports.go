package handlers

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/models"
)

// Bulk CSV upload for brands and categories. The outcome is a single
// created count; per-row successes and failures are not reported.

var (
	brandHeader    = []string{"name", "website", "logo_url"}
	categoryHeader = []string{"name", "parent", "image_url"}
)

// parseBrandCSV reads rows under the header `name,website,logo_url`.
// Rows with an empty name are skipped.
func parseBrandCSV(r io.Reader) ([]models.Brand, error) {
	records, err := readCSV(r, brandHeader)
	if err != nil {
		return nil, err
	}

	var brands []models.Brand
	for _, rec := range records {
		if rec[0] == "" {
			continue
		}
		brands = append(brands, models.Brand{
			ID:        primitive.NewObjectID(),
			Name:      rec[0],
			Website:   rec[1],
			Logo:      rec[2],
			Products:  0,
			Status:    "Active",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}
	return brands, nil
}

// parseCategoryCSV reads rows under the header `name,parent,image_url`.
func parseCategoryCSV(r io.Reader) ([]models.Category, error) {
	records, err := readCSV(r, categoryHeader)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	for _, rec := range records {
		if rec[0] == "" {
			continue
		}
		categories = append(categories, models.Category{
			ID:        primitive.NewObjectID(),
			Name:      rec[0],
			Parent:    rec[1],
			Image:     rec[2],
			Products:  0,
			Status:    "Published",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}
	return categories, nil
}

func readCSV(r io.Reader, wantHeader []string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(wantHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("expected header %q", strings.Join(wantHeader, ","))
	}
	for i, col := range wantHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return nil, fmt.Errorf("expected header %q", strings.Join(wantHeader, ","))
		}
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed csv: %v", err)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		records = append(records, rec)
	}
	return records, nil
}

func ImportBrands(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "CSV file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to open file"})
	}
	defer file.Close()

	brands, err := parseBrandCSV(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if len(brands) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "CSV file has no rows"})
	}

	docs := make([]interface{}, len(brands))
	for i, b := range brands {
		docs[i] = b
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("brands").InsertMany(ctx, docs); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to import brands"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "created": len(brands)})
}

func ImportCategories(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "CSV file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to open file"})
	}
	defer file.Close()

	categories, err := parseCategoryCSV(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if len(categories) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "CSV file has no rows"})
	}

	docs := make([]interface{}, len(categories))
	for i, cat := range categories {
		docs[i] = cat
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("categories").InsertMany(ctx, docs); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to import categories"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "created": len(categories)})
}

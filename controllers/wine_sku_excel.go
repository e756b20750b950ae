package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"wine-api/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ExcelRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type ExcelWineUploadResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	TotalRows    int             `json:"total_rows"`
	SuccessCount int             `json:"success_count"`
	FailedCount  int             `json:"failed_count"`
	Created      []string        `json:"created_product_codes,omitempty"`
	Errors       []ExcelRowError `json:"errors,omitempty"`
}

// Expected column order in the upload template.
var wineExcelColumns = []string{
	"product_code", "wine_name", "vintage_year", "producer", "country",
	"region", "grape_varieties", "alcohol_content", "price_bottle",
	"price_glass", "cost_price",
}

// parsedWineRow keeps the originating sheet row with each input so create
// failures can point back at the right row.
type parsedWineRow struct {
	Row   int
	Input WineSKUInput
}

// parseWineRowsFromExcel converts sheet rows (header included) into create
// inputs. Grape varieties are semicolon-separated in one cell. Row numbers
// in errors are 1-based sheet rows.
func parseWineRowsFromExcel(rows [][]string) ([]parsedWineRow, []ExcelRowError) {
	var inputs []parsedWineRow
	var rowErrors []ExcelRowError

	for i, row := range rows[1:] {
		rowNum := i + 2

		if len(row) < len(wineExcelColumns) {
			rowErrors = append(rowErrors, ExcelRowError{
				Row:     rowNum,
				Message: "Incomplete row",
				Detail:  fmt.Sprintf("expected %d columns, got %d", len(wineExcelColumns), len(row)),
			})
			continue
		}

		vintage, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			rowErrors = append(rowErrors, ExcelRowError{Row: rowNum, Message: "Invalid vintage_year", Detail: row[2]})
			continue
		}

		numbers := make([]float64, 4)
		bad := false
		for j, col := range []int{7, 8, 9, 10} {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				rowErrors = append(rowErrors, ExcelRowError{
					Row:     rowNum,
					Message: "Invalid " + wineExcelColumns[col],
					Detail:  row[col],
				})
				bad = true
				break
			}
			numbers[j] = v
		}
		if bad {
			continue
		}

		var varieties []string
		for _, g := range strings.Split(row[6], ";") {
			g = strings.TrimSpace(g)
			if g != "" {
				varieties = append(varieties, g)
			}
		}

		input := WineSKUInput{
			ProductCode:    strings.TrimSpace(row[0]),
			WineName:       strings.TrimSpace(row[1]),
			VintageYear:    vintage,
			Producer:       strings.TrimSpace(row[3]),
			Country:        strings.TrimSpace(row[4]),
			Region:         strings.TrimSpace(row[5]),
			GrapeVarieties: varieties,
			AlcoholContent: numbers[0],
			PriceBottle:    numbers[1],
			PriceGlass:     numbers[2],
			CostPrice:      numbers[3],
		}

		if err := input.Validate(); err != nil {
			rowErrors = append(rowErrors, ExcelRowError{Row: rowNum, Message: "Validation failed", Detail: err.Error()})
			continue
		}

		inputs = append(inputs, parsedWineRow{Row: rowNum, Input: input})
	}

	return inputs, rowErrors
}

// ImportWinesFromExcel bulk-creates wine SKUs from an uploaded .xlsx file.
// Each row is its own create attempt; constraint violations fail that row
// only and are reported back with the row number.
func (c *WineSKUController) ImportWinesFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelWineUploadResponse{
			Success: false,
			Message: "No file uploaded or invalid file",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelWineUploadResponse{
			Success: false,
			Message: "Invalid file format. Only .xlsx files are allowed",
		})
	}

	if file.Size > 10*1024*1024 {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelWineUploadResponse{
			Success: false,
			Message: "File size exceeds maximum limit of 10MB",
		})
	}

	fileHeader, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(ExcelWineUploadResponse{
			Success: false,
			Message: "Failed to open uploaded file",
		})
	}
	defer fileHeader.Close()

	excelFile, err := excelize.OpenReader(fileHeader)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelWineUploadResponse{
			Success: false,
			Message: "Failed to read Excel file. Please ensure the file is not corrupted",
		})
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelWineUploadResponse{
			Success: false,
			Message: "Excel file contains no sheets",
		})
	}

	rows, err := excelFile.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(ExcelWineUploadResponse{
			Success: false,
			Message: "Failed to read rows from Excel",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(ExcelWineUploadResponse{
			Success: false,
			Message: "Excel file must contain at least header row and one data row",
		})
	}

	inputs, rowErrors := parseWineRowsFromExcel(rows)

	repo := repositories.NewWineSKURepository(c.DB)
	var created []string

	for _, parsed := range inputs {
		sku := parsed.Input.toModel()
		if err := repo.Create(&sku); err != nil {
			rowErrors = append(rowErrors, ExcelRowError{
				Row:     parsed.Row,
				Message: "Failed to create " + parsed.Input.ProductCode,
				Detail:  err.Error(),
			})
			continue
		}
		created = append(created, sku.ProductCode)
	}

	resp := ExcelWineUploadResponse{
		Success:      len(rowErrors) == 0,
		Message:      fmt.Sprintf("Imported %d of %d rows", len(created), len(rows)-1),
		TotalRows:    len(rows) - 1,
		SuccessCount: len(created),
		FailedCount:  len(rows) - 1 - len(created),
		Created:      created,
		Errors:       rowErrors,
	}

	status := fiber.StatusOK
	if len(created) == 0 {
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(resp)
}

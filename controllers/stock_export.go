package controllers

import (
	"fmt"
	"net/http"

	"wine-api/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ExportExcel streams the current stock balances as an .xlsx report.
func (c *StockController) ExportExcel(ctx *fiber.Ctx) error {
	repo := repositories.NewStockRepository(c.DB)
	stocks, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Stock ID")
	f.SetCellValue(sheet, "B1", "SKU ID")
	f.SetCellValue(sheet, "C1", "Lot ID")
	f.SetCellValue(sheet, "D1", "Location ID")
	f.SetCellValue(sheet, "E1", "Quantity")
	f.SetCellValue(sheet, "F1", "Updated At")

	for i, item := range stocks {
		lot := ""
		if item.LotID != nil {
			lot = item.LotID.String()
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), item.ID.String())
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), item.SkuID.String())
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), lot)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), item.LocationID.String())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), item.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), item.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="stock_report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}

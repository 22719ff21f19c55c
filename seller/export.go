package seller

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/PoonjothiV/grocerywebsites/models"
)

const exportSheet = "Products"

// ExportProducts writes the given products as an Excel sheet with the same
// columns the seller list shows: Name, Category, Price, Stock.
func ExportProducts(w io.Writer, currency string, products []models.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	f.SetActiveSheet(index)

	header := []interface{}{"Name", "Category", "Price", "Stock"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}

	for i, p := range products {
		stock := "Out of Stock"
		if p.InStock {
			stock = "In Stock"
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.Name, p.Category, currency + p.OfferPrice.StringFixed(2), stock}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/models"
)

// GET /api/admin/products/export
//
// Streams the catalog as an .xlsx attachment for offline editing.
func ExportProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}

		headers := []string{
			"ID", "Name", "OriginalPrice", "DiscountedPrice", "Discount",
			"Rating", "Reviews", "ImageURL", "Category", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.OriginalPrice)
			row.AddCell().SetValue(p.DiscountedPrice)
			row.AddCell().SetValue(p.Discount)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.Reviews)
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
	}
}

package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"gelato-pos/internal/models"
	"gelato-pos/internal/store"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler produces the spreadsheet views of the financial ledger.
type ExportHandler struct {
	Store *store.Store
}

func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{Store: s}
}

// exportHeader is the column layout pt-BR spreadsheets expect.
var exportHeader = []string{"Data", "Tipo", "Descrição", "Categoria", "Método de Pagamento", "Valor (R$)"}

// exportRows renders the ledger newest first. Same-format ISO date strings
// order correctly under plain string comparison.
func exportRows(list []models.Transaction) [][]string {
	sorted := make([]models.Transaction, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	rows := make([][]string, 0, len(sorted))
	for _, t := range sorted {
		tipo := "Saída"
		if t.Type == models.TransactionIncome {
			tipo = "Entrada"
		}
		method := string(t.PaymentMethod)
		if method == "" {
			method = "N/A"
		}
		rows = append(rows, []string{
			formatDateBR(t.Date),
			tipo,
			// strip the separator so descriptions cannot break columns
			strings.ReplaceAll(t.Description, ";", " "),
			t.Category,
			method,
			formatDecimalComma(t.Amount),
		})
	}
	return rows
}

func formatDateBR(dateStr string) string {
	t, err := util.ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("02/01/2006")
}

// formatDecimalComma renders an amount with two decimals and a comma
// separator, the way Brazilian spreadsheets parse numbers.
func formatDecimalComma(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}

// ExportCSV streams the ledger as a ;-separated UTF-8 document with a BOM so
// Excel and Sheets open the accents correctly.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	list := h.Store.ListTransactions()

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"financeiro-sorveteria-%s.csv\"",
		time.Now().Format("2006-01-02")))

	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	writer.Comma = ';'
	defer writer.Flush()

	writer.Write(exportHeader)
	for _, row := range exportRows(list) {
		writer.Write(row)
	}
}

// ExportXLSX renders the same table as a spreadsheet workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	list := h.Store.ListTransactions()

	f := excelize.NewFile()
	sheetName := "Financeiro"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao criar planilha")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, head := range exportHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}
	for idx, row := range exportRows(list) {
		for col, val := range row {
			cell := fmt.Sprintf("%c%d", 'A'+col, idx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 35)
	f.SetColWidth(sheetName, "D", "D", 20)
	f.SetColWidth(sheetName, "E", "E", 20)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"financeiro-sorveteria-%s.xlsx\"",
		time.Now().Format("2006-01-02")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao exportar")
	}
}

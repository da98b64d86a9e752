package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Rajnish-J/todo-fast-api/internal/middleware"
	"github.com/Rajnish-J/todo-fast-api/internal/store"
	"github.com/Rajnish-J/todo-fast-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the caller's todos as a download. Exports are
// owner-scoped like every other todo read.
type ExportHandler struct {
	Todos store.TodoStore
}

func NewExportHandler(todos store.TodoStore) *ExportHandler {
	return &ExportHandler{Todos: todos}
}

var exportHeaders = []string{"ID", "Title", "Description", "Priority", "Complete", "Created"}

// ExportCSV exports the caller's todos as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		return
	}

	todos, err := h.Todos.ListOwned(identity.UserID, 0, 0)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list todos")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todos_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, t := range todos {
		writer.Write([]string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Title,
			t.Description,
			strconv.Itoa(t.Priority),
			strconv.FormatBool(t.Complete),
			t.CreatedAt.Format("2006-01-02"),
		})
	}
}

// ExportXLSX exports the caller's todos as an XLSX workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		return
	}

	todos, err := h.Todos.ListOwned(identity.UserID, 0, 0)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list todos")
		return
	}

	f := excelize.NewFile()
	sheetName := "Todos"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to build workbook")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, t := range todos {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Priority)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Complete)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), t.CreatedAt.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 40)
	f.SetColWidth(sheetName, "D", "E", 10)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todos_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to export todos")
	}
}

package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetReport отдаёт отчёт по заявкам в JSON, а при ?format=xlsx — файлом.
func (c *ReportController) GetReport(ctx echo.Context) error {
	filter := dto.RequestFilterDTO{
		EquipmentID: ctx.QueryParam("equipment_id"),
		AssignedTo:  ctx.QueryParam("assigned_to"),
		Stage:       ctx.QueryParam("stage"),
	}
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("Запрос на отчёт", zap.Any("filters", filter), zap.String("format", format))

	data, err := c.reportService.GetRequestReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Отчёт успешно сформирован", http.StatusOK, uint64(len(data)))
}

var reportHeaders = []string{
	"ID заявки", "Оборудование", "Серийный номер", "Тип", "Приоритет", "Стадия",
	"Техник", "Команда", "Заявитель", "Создана", "Плановая дата", "Часы работ", "Просрочена",
}

func rowToSlice(item dto.RequestReportItem) []interface{} {
	dateFmt := "02.01.2006 15:04"
	var scheduled string
	if item.ScheduledDate != nil {
		scheduled = item.ScheduledDate.Format("02.01.2006")
	}
	overdue := "нет"
	if item.Overdue {
		overdue = "да"
	}

	return []interface{}{
		item.RequestID, item.EquipmentName, item.SerialNumber, item.Type, item.Priority, item.Stage,
		item.Technician, item.Team, item.ReportedBy, item.CreatedAt.Format(dateFmt),
		scheduled, fmt.Sprintf("%.2f", item.DurationHours), overdue,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.RequestReportItem) error {
	f := excelize.NewFile()
	sheet := "Отчёт по заявкам"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 36)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "G", "I", 20)
	f.SetColWidth(sheet, "J", "K", 18)

	fileName := fmt.Sprintf("report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(service services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{
		requestService: service,
		logger:         logger,
	}
}

// GetRequests отдаёт ленту заявок для канбана/списка/календаря
// с фильтрами по оборудованию, технику и стадии.
func (c *RequestController) GetRequests(ctx echo.Context) error {
	filter := dto.RequestFilterDTO{
		EquipmentID: ctx.QueryParam("equipment_id"),
		AssignedTo:  ctx.QueryParam("assigned_to"),
		Stage:       ctx.QueryParam("stage"),
	}

	res, total, err := c.requestService.GetRequests(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetRequests: ошибка при получении списка заявок", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список заявок успешно получен", http.StatusOK, total)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	id := ctx.Param("id")

	res, err := c.requestService.FindRequest(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindRequest: ошибка при поиске заявки", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Заявка успешно найдена", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateRequest: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateRequest: ошибка при создании заявки", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Заявка успешно создана", http.StatusCreated)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.UpdateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("UpdateRequest: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequest(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateRequest: ошибка при обновлении заявки", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Заявка успешно обновлена", http.StatusOK)
}

// TransitionRequest — единственная ручка, меняющая стадию заявки.
func (c *RequestController) TransitionRequest(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.TransitionRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("TransitionRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("TransitionRequest: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.TransitionRequest(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Warn("TransitionRequest: переход отклонён",
			zap.String("id", id), zap.String("stage", payload.Stage), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Стадия заявки успешно изменена", http.StatusOK)
}

func (c *RequestController) TechnicianStats(ctx echo.Context) error {
	technicianID := ctx.Param("id")

	res, err := c.requestService.TechnicianStats(ctx.Request().Context(), technicianID)
	if err != nil {
		c.logger.Error("TechnicianStats: ошибка при подсчёте статистики", zap.String("technicianId", technicianID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Статистика техника успешно получена", http.StatusOK)
}

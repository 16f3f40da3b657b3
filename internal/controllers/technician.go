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

type TechnicianController struct {
	technicianService services.TechnicianServiceInterface
	logger            *zap.Logger
}

func NewTechnicianController(service services.TechnicianServiceInterface, logger *zap.Logger) *TechnicianController {
	return &TechnicianController{
		technicianService: service,
		logger:            logger,
	}
}

func (c *TechnicianController) GetTechnicians(ctx echo.Context) error {
	res, total, err := c.technicianService.GetTechnicians(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetTechnicians: ошибка при получении списка техников", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список техников успешно получен", http.StatusOK, total)
}

func (c *TechnicianController) GetTeams(ctx echo.Context) error {
	res, err := c.technicianService.GetTeams(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetTeams: ошибка при получении списка команд", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список команд успешно получен", http.StatusOK)
}

func (c *TechnicianController) GetTeamMembers(ctx echo.Context) error {
	teamID := ctx.Param("id")

	res, err := c.technicianService.GetTeamMembers(ctx.Request().Context(), teamID)
	if err != nil {
		c.logger.Error("GetTeamMembers: ошибка при получении состава команды", zap.String("teamId", teamID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Состав команды успешно получен", http.StatusOK)
}

func (c *TechnicianController) CreateTechnician(ctx echo.Context) error {
	var payload dto.CreateTechnicianDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateTechnician: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateTechnician: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.technicianService.CreateTechnician(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateTechnician: ошибка при создании техника", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Техник успешно создан", http.StatusCreated)
}

func (c *TechnicianController) UpdateTechnician(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.UpdateTechnicianDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateTechnician: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("UpdateTechnician: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.technicianService.UpdateTechnician(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateTechnician: ошибка при обновлении техника", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Техник успешно обновлён", http.StatusOK)
}

func (c *TechnicianController) DeleteTechnician(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.technicianService.DeleteTechnician(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteTechnician: ошибка при удалении техника", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Техник успешно удалён", http.StatusOK)
}

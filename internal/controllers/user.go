package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, jwtService service.JWTService, logger *zap.Logger) *UserController {
	return &UserController{
		userService: userService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// StartSession принимает полезную нагрузку identity-провайдера,
// находит или создаёт профиль и выдаёт пару токенов.
func (c *UserController) StartSession(ctx echo.Context) error {
	var payload dto.SessionDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("StartSession: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("StartSession: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	profile, err := c.userService.ResolveSession(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("StartSession: ошибка при создании сессии", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	accessToken, refreshToken, err := c.jwtService.GenerateTokens(profile.UserID)
	if err != nil {
		c.logger.Error("StartSession: ошибка при генерации токенов", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res := dto.SessionResultDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}
	return utils.SuccessResponse(ctx, res, "Сессия успешно открыта", http.StatusOK)
}

// GetMe отдаёт профиль пользователя из текущего токена.
func (c *UserController) GetMe(ctx echo.Context) error {
	userID, ok := ctx.Request().Context().Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrUserIDNotFoundInContext, c.logger)
	}

	res, err := c.userService.GetProfile(ctx.Request().Context(), userID)
	if err != nil {
		c.logger.Error("GetMe: ошибка при получении профиля", zap.String("userId", userID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Профиль успешно получен", http.StatusOK)
}

func (c *UserController) GetUsers(ctx echo.Context) error {
	res, total, err := c.userService.GetUsers(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetUsers: ошибка при получении списка пользователей", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список пользователей успешно получен", http.StatusOK, total)
}

func (c *UserController) FindUser(ctx echo.Context) error {
	id := ctx.Param("id")

	res, err := c.userService.GetProfile(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindUser: ошибка при поиске пользователя", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Пользователь успешно найден", http.StatusOK)
}

// UpdateMe обновляет контактные данные собственного профиля.
func (c *UserController) UpdateMe(ctx echo.Context) error {
	userID, ok := ctx.Request().Context().Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrUserIDNotFoundInContext, c.logger)
	}

	var payload dto.UpdateProfileDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateMe: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("UpdateMe: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.userService.UpdateProfile(ctx.Request().Context(), userID, payload)
	if err != nil {
		c.logger.Error("UpdateMe: ошибка при обновлении профиля", zap.String("userId", userID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Профиль успешно обновлён", http.StatusOK)
}

func (c *UserController) SetPermission(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.SetPermissionDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("SetPermission: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("SetPermission: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.userService.SetPermission(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("SetPermission: ошибка при изменении прав", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Уровень доступа успешно изменён", http.StatusOK)
}

package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthMiddleware struct {
	jwtService  service.JWTService
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, userService services.UserServiceInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtSvc,
		userService: userService,
		logger:      logger,
	}
}

// Auth - это основная функция middleware.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// 1. Извлекаем токен из заголовка
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		// 2. Проверяем формат заголовка "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		tokenString := parts[1]

		// 3. Валидируем токен
		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		// 4. Убеждаемся, что это не refresh токен
		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: Попытка доступа с refresh токеном")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		// 5. Записываем UserID в контекст запроса для дальнейшего использования
		ctx := c.Request().Context()
		newCtx := context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		c.SetRequest(c.Request().WithContext(newCtx))

		m.logger.Debug("AuthMiddleware: Пользователь успешно аутентифицирован", zap.String("userID", claims.UserID))

		// 6. Если все в порядке, передаем управление следующему обработчику
		return next(c)
	}
}

// RequirePermission пропускает запрос только при достаточном уровне
// доступа к ресурсу; при любой неопределённости доступ закрыт.
func (m *AuthMiddleware) RequirePermission(resource entities.Resource, action authz.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
			if !ok || userID == "" {
				return utils.ErrorResponse(c, apperrors.ErrUserIDNotFoundInContext, m.logger)
			}

			profile, err := m.userService.GetProfile(ctx, userID)
			if err != nil {
				m.logger.Warn("RequirePermission: профиль пользователя не найден",
					zap.String("userID", userID), zap.Error(err))
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}

			if !authz.HasPermission(profile, resource, action) {
				m.logger.Warn("RequirePermission: доступ запрещён",
					zap.String("userID", userID),
					zap.String("resource", string(resource)),
					zap.String("action", string(action)),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}

			newCtx := context.WithValue(ctx, contextkeys.UserProfileKey, profile)
			c.SetRequest(c.Request().WithContext(newCtx))
			return next(c)
		}
	}
}

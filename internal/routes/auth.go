package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

func runAuthRouter(
	api *echo.Group,
	secureGroup *echo.Group,
	userService services.UserServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	userController := controllers.NewUserController(userService, jwtSvc, logger)

	// Открытие сессии — единственный публичный маршрут.
	api.POST("/auth/session", userController.StartSession)

	secureGroup.GET("/users/me", userController.GetMe)
	secureGroup.PUT("/users/me", userController.UpdateMe)

	secureGroup.GET("/users", userController.GetUsers,
		authMW.RequirePermission(entities.ResourceUsers, authz.ActionRead))
	secureGroup.GET("/users/:id", userController.FindUser,
		authMW.RequirePermission(entities.ResourceUsers, authz.ActionRead))
	secureGroup.PUT("/users/:id/permissions", userController.SetPermission,
		authMW.RequirePermission(entities.ResourceUsers, authz.ActionWrite))
}

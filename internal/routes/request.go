package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	"gearguard/pkg/middleware"
)

func runRequestRouter(
	secureGroup *echo.Group,
	requestService services.RequestServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	requestCtrl := controllers.NewRequestController(requestService, logger)

	read := authMW.RequirePermission(entities.ResourceRequests, authz.ActionRead)
	write := authMW.RequirePermission(entities.ResourceRequests, authz.ActionWrite)

	secureGroup.GET("/requests", requestCtrl.GetRequests, read)
	secureGroup.GET("/technicians/:id/stats", requestCtrl.TechnicianStats, read)
	secureGroup.GET("/requests/:id", requestCtrl.FindRequest, read)
	secureGroup.POST("/requests", requestCtrl.CreateRequest, write)
	secureGroup.PUT("/requests/:id", requestCtrl.UpdateRequest, write)
	secureGroup.POST("/requests/:id/transition", requestCtrl.TransitionRequest, write)
}

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

func runTechnicianRouter(
	secureGroup *echo.Group,
	technicianService services.TechnicianServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	technicianCtrl := controllers.NewTechnicianController(technicianService, logger)

	// Справочник техников нужен любому, кто работает с заявками;
	// управление составом — это администрирование пользователей.
	read := authMW.RequirePermission(entities.ResourceRequests, authz.ActionRead)
	write := authMW.RequirePermission(entities.ResourceUsers, authz.ActionWrite)

	secureGroup.GET("/technicians", technicianCtrl.GetTechnicians, read)
	secureGroup.GET("/teams", technicianCtrl.GetTeams, read)
	secureGroup.GET("/teams/:id/members", technicianCtrl.GetTeamMembers, read)
	secureGroup.POST("/technicians", technicianCtrl.CreateTechnician, write)
	secureGroup.PUT("/technicians/:id", technicianCtrl.UpdateTechnician, write)
	secureGroup.DELETE("/technicians/:id", technicianCtrl.DeleteTechnician, write)
}

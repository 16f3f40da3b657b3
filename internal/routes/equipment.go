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

func runEquipmentRouter(
	secureGroup *echo.Group,
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	read := authMW.RequirePermission(entities.ResourceEquipment, authz.ActionRead)
	write := authMW.RequirePermission(entities.ResourceEquipment, authz.ActionWrite)

	secureGroup.GET("/equipment", equipmentCtrl.GetEquipments, read)
	secureGroup.GET("/equipment/:id", equipmentCtrl.FindEquipment, read)
	secureGroup.POST("/equipment", equipmentCtrl.CreateEquipment, write)
	secureGroup.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment, write)
	secureGroup.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment, write)
}

package routes

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/internal/storage"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

// InitRouter собирает весь граф зависимостей: хранилище -> репозитории ->
// сервисы -> контроллеры -> маршруты под /api.
func InitRouter(
	ctx context.Context,
	e *echo.Echo,
	st storage.Storage,
	jwtSvc service.JWTService,
	bus *eventbus.Bus,
	logger *zap.Logger,
) error {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 1. РЕПОЗИТОРИИ ---
	equipmentRepo, err := repositories.NewEquipmentRepository(ctx, st)
	if err != nil {
		return err
	}
	requestRepo, err := repositories.NewRequestRepository(ctx, st)
	if err != nil {
		return err
	}
	technicianRepo, err := repositories.NewTechnicianRepository(ctx, st)
	if err != nil {
		return err
	}
	userRepo, err := repositories.NewUserRepository(ctx, st)
	if err != nil {
		return err
	}
	teamRepo := repositories.NewTeamRepository()

	// --- 2. СЕРВИСЫ ---
	equipmentService := services.NewEquipmentService(equipmentRepo, requestRepo, teamRepo, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, technicianRepo, teamRepo, bus, logger)
	technicianService := services.NewTechnicianService(technicianRepo, teamRepo, logger)
	userService := services.NewUserService(userRepo, logger)
	dashboardService := services.NewDashboardService(equipmentRepo, requestRepo)
	reportService := services.NewReportService(requestRepo, equipmentRepo, technicianRepo, teamRepo)

	// Журналируем списание оборудования как отдельное событие аудита.
	bus.Subscribe(events.EquipmentScrappedEventName, func(_ context.Context, event eventbus.Event) error {
		if scrapped, ok := event.(events.EquipmentScrappedEvent); ok {
			logger.Info("оборудование списано по заявке",
				zap.String("requestId", scrapped.RequestID),
				zap.String("equipmentId", scrapped.EquipmentID),
			)
		}
		return nil
	})

	// --- 3. КОНТРОЛЛЕРЫ И МАРШРУТЫ ---
	authMW := middleware.NewAuthMiddleware(jwtSvc, userService, logger)

	api := e.Group("/api")
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, userService, jwtSvc, logger, authMW)
	runEquipmentRouter(secureGroup, equipmentService, logger, authMW)
	runRequestRouter(secureGroup, requestService, logger, authMW)
	runTechnicianRouter(secureGroup, technicianService, logger, authMW)
	runDashboardRouter(secureGroup, dashboardService, logger, authMW)
	runReportRouter(secureGroup, reportService, logger, authMW)

	logger.Info("InitRouter: Создание маршрутов завершено")
	return nil
}

// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	attendanceController "hrms_backend/internals/features/hr/attendance/controller"
	attendanceRepository "hrms_backend/internals/features/hr/attendance/repository"
	attendanceRoute "hrms_backend/internals/features/hr/attendance/route"
	employeeController "hrms_backend/internals/features/hr/employees/controller"
	employeeRepository "hrms_backend/internals/features/hr/employees/repository"
	employeeRoute "hrms_backend/internals/features/hr/employees/route"
	helper "hrms_backend/internals/helpers"
	middlewares "hrms_backend/internals/middlewares"
	"hrms_backend/internals/middlewares/logger"
	"hrms_backend/internals/middlewares/metrics"
)

var startTime = time.Now()

// Deps are the storage collaborators behind the HTTP surface.
type Deps struct {
	Employees  employeeController.EmployeeStore
	Attendance attendanceController.AttendanceStore
	DB         Pinger
}

// NewDeps wires the Postgres repositories.
func NewDeps(db *gorm.DB) (Deps, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return Deps{}, err
	}
	return Deps{
		Employees:  employeeRepository.NewEmployeeRepository(db),
		Attendance: attendanceRepository.NewAttendanceRepository(db),
		DB:         sqlDB,
	}, nil
}

// NewApp builds the fiber app with the full middleware chain and routes.
func NewApp(cfg configs.AppConfig, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.FiberErrorHandler,
		DisableStartupMessage: true,
		UnescapePath:          true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestContext(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware(configs.Log.Out))
	app.Use(metrics.Middleware())
	app.Use(middlewares.CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(middlewares.GlobalRateLimiter(cfg.RateLimitMax))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	app.Get("/metrics", metrics.Handler())
	SetupRoutes(app, deps)
	return app
}

func SetupRoutes(app *fiber.App, deps Deps) {
	validate := helper.NewValidator()

	configs.Log.Info("Setting up BaseRoutes...")
	BaseRoutes(app, deps.DB)

	configs.Log.Info("Mounting Employee routes...")
	employeeRoute.EmployeeRoutes(app, deps.Employees, validate)

	configs.Log.Info("Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(app, deps.Employees, deps.Attendance, validate)
}

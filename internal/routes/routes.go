package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/audit"
	"github.com/BruksfildServices01/vet-clinic/internal/config"
	"github.com/BruksfildServices01/vet-clinic/internal/handlers"
	infraRepo "github.com/BruksfildServices01/vet-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/vet-clinic/internal/middleware"
	ucAnimal "github.com/BruksfildServices01/vet-clinic/internal/usecase/animal"
	ucAppointment "github.com/BruksfildServices01/vet-clinic/internal/usecase/appointment"
	ucVeterinarian "github.com/BruksfildServices01/vet-clinic/internal/usecase/veterinarian"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
	log *slog.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.AllowedOrigins()),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	veterinarianRepo := infraRepo.NewVeterinarianGormRepository(db)
	animalRepo := infraRepo.NewAnimalGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	veterinarianHandler := handlers.NewVeterinarianHandler(
		ucVeterinarian.NewListVeterinarians(veterinarianRepo),
		ucVeterinarian.NewGetVeterinarian(veterinarianRepo),
		ucVeterinarian.NewCreateVeterinarian(veterinarianRepo, auditDispatcher),
		ucVeterinarian.NewUpdateVeterinarian(veterinarianRepo, auditDispatcher),
		ucVeterinarian.NewDeleteVeterinarian(veterinarianRepo, auditDispatcher),
		log,
	)

	animalHandler := handlers.NewAnimalHandler(
		ucAnimal.NewListAnimals(animalRepo),
		ucAnimal.NewGetAnimal(animalRepo),
		ucAnimal.NewCreateAnimal(animalRepo, auditDispatcher),
		ucAnimal.NewUpdateAnimal(animalRepo, auditDispatcher),
		ucAnimal.NewDeleteAnimal(animalRepo, auditDispatcher),
		log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewListAppointments(appointmentRepo),
		ucAppointment.NewGetAppointment(appointmentRepo),
		ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher),
		ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher),
		ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher),
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg.Timezone, log)
	systemHandler := handlers.NewSystemHandler(db, log)

	// ======================================================
	// 🩺 SISTEMA
	// ======================================================
	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		vets := api.Group("/veterinarians")
		{
			vets.GET("", veterinarianHandler.List)
			vets.GET("/:id", veterinarianHandler.Get)
			vets.POST("", veterinarianHandler.Create)
			vets.PUT("/:id", veterinarianHandler.Update)
			vets.DELETE("/:id", veterinarianHandler.Delete)
		}

		animals := api.Group("/animals")
		{
			animals.GET("", animalHandler.List)
			animals.GET("/:id", animalHandler.Get)
			animals.POST("", animalHandler.Create)
			animals.PUT("/:id", animalHandler.Update)
			animals.DELETE("/:id", animalHandler.Delete)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.List)
			appointments.GET("/:id", appointmentHandler.Get)
			appointments.POST("", appointmentHandler.Create)
			appointments.PUT("/:id", appointmentHandler.Update)
			appointments.DELETE("/:id", appointmentHandler.Delete)
		}

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/chateaupet/petshop-api/internal/audit"
	"github.com/chateaupet/petshop-api/internal/config"
	"github.com/chateaupet/petshop-api/internal/handlers"
	infraRepo "github.com/chateaupet/petshop-api/internal/infra/repository"
	"github.com/chateaupet/petshop-api/internal/middleware"
	"github.com/chateaupet/petshop-api/internal/passwordreset"
	"github.com/chateaupet/petshop-api/internal/prefs"
	"github.com/chateaupet/petshop-api/internal/session"
	"github.com/chateaupet/petshop-api/internal/storage"
	ucScheduling "github.com/chateaupet/petshop-api/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := storage.NewUploader(cfg)

	// Sem Redis a API continua de pé com os stores em memória;
	// preferências e sessões revogadas não sobrevivem ao restart.
	var (
		favoritesStore prefs.FavoritesStore
		selectionStore prefs.SelectionStore
		denylist       session.Denylist
		resetTokens    passwordreset.TokenStore
	)
	if rdb != nil {
		favoritesStore = prefs.NewRedisFavorites(rdb)
		selectionStore = prefs.NewRedisSelection(rdb)
		denylist = session.NewRedisDenylist(rdb)
		resetTokens = passwordreset.NewRedisTokens(rdb)
	} else {
		favoritesStore = prefs.NewMemoryFavorites()
		selectionStore = prefs.NewMemorySelection()
		denylist = session.NewMemoryDenylist()
		resetTokens = passwordreset.NewMemoryTokens()
	}

	favorites := prefs.NewFavorites(favoritesStore)
	selector := prefs.NewSelector(selectionStore)

	// ======================================================
	// 🧠 USE CASES — AGENDAMENTO
	// ======================================================
	getAvailabilityUC := ucScheduling.NewGetAvailability(schedulingRepo)

	createAppointmentUC := ucScheduling.NewCreateAppointment(
		schedulingRepo,
		auditDispatcher,
	)

	changeStatusUC := ucScheduling.NewChangeStatus(
		schedulingRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, resetTokens)
	meHandler := handlers.NewMeHandler(db)
	storeHandler := handlers.NewStoreHandler(db)
	prefsHandler := handlers.NewPrefsHandler(favorites, selector)
	catalogHandler := handlers.NewCatalogHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		getAvailabilityUC,
		createAppointmentUC,
	)

	appointmentAdminHandler := handlers.NewAppointmentAdminHandler(
		db,
		changeStatusUC,
		auditDispatcher,
	)
	productAdminHandler := handlers.NewProductAdminHandler(
		db,
		uploader,
		auditDispatcher,
	)
	scheduleAdminHandler := handlers.NewScheduleAdminHandler(db, auditDispatcher)
	cmsHandler := handlers.NewCMSHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/esqueci-senha", authHandler.ForgotPassword)
		api.POST("/auth/redefinir-senha", authHandler.ResetPassword)

		// ------------------------------
		// 🌐 API PÚBLICA — VITRINE
		// ------------------------------
		api.GET("/produtos/ofertas", catalogHandler.Offers)
		api.GET("/produtos/novidades", catalogHandler.NewArrivals)
		api.GET("/produtos/mais-vendidos", catalogHandler.BestSellers)
		api.GET("/produtos/filtros", catalogHandler.Filters)
		api.GET("/produtos/:id/relacionados", catalogHandler.Related)
		api.GET("/produtos/:id", catalogHandler.Get)
		api.GET("/produtos", catalogHandler.List)

		api.GET("/lojas", storeHandler.List)
		api.GET("/lojas/mais-proxima", storeHandler.Nearest)

		api.GET("/cms/componente/:nome", cmsHandler.GetComponent)

		api.GET("/horarios-disponiveis", bookingHandler.AvailableSlots)

		// ------------------------------
		// 🛒 PREFERÊNCIAS DO CLIENTE
		// ------------------------------
		api.GET("/preferencias/favoritos", prefsHandler.ListFavorites)
		api.POST("/preferencias/favoritos/:id", prefsHandler.ToggleFavorite)
		api.GET("/preferencias/loja", prefsHandler.GetSelectedStore)
		api.PUT("/preferencias/loja", prefsHandler.SelectStore)

		// ------------------------------
		// 🔐 API PRIVADA (cliente logado)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/pets", meHandler.ListPets)
			secured.POST("/me/pets", meHandler.CreatePet)

			secured.GET("/me/agendamentos", meHandler.ListMyAppointments)
			secured.POST("/agendar", bookingHandler.Create)

			// ------------------------------
			// 👑 PAINEL ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin(denylist))
			{
				admin.GET("/agendamentos", appointmentAdminHandler.List)
				admin.GET("/agendamentos/:id", appointmentAdminHandler.Get)
				admin.PATCH("/agendamentos/:id/status", appointmentAdminHandler.UpdateStatus)
				admin.PATCH("/agendamentos/:id/cancelar", appointmentAdminHandler.Cancel)
				admin.DELETE("/agendamentos/:id", appointmentAdminHandler.Delete)

				admin.GET("/produtos", productAdminHandler.List)
				admin.POST("/produtos", productAdminHandler.Create)
				admin.PATCH("/produtos/:id", productAdminHandler.Update)
				admin.DELETE("/produtos/:id", productAdminHandler.Delete)
				admin.POST("/produtos/:id/imagem", productAdminHandler.UploadImage)

				admin.GET("/horarios/bloqueios", scheduleAdminHandler.ListDayBlocks)
				admin.POST("/horarios/bloqueios", scheduleAdminHandler.CreateDayBlock)
				admin.DELETE("/horarios/bloqueios/:id", scheduleAdminHandler.DeleteDayBlock)

				admin.GET("/horarios/regras", scheduleAdminHandler.ListCapacityRules)
				admin.PATCH("/horarios/regras/:id", scheduleAdminHandler.UpdateCapacityRule)

				admin.GET("/servicos", scheduleAdminHandler.ListServices)

				admin.PUT("/cms/componente/:nome", cmsHandler.UpsertComponent)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	"github.com/suryadizhang/mh-scheduler/internal/config"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/geo"
	"github.com/suryadizhang/mh-scheduler/internal/handlers"
	infraRepo "github.com/suryadizhang/mh-scheduler/internal/infra/repository"
	"github.com/suryadizhang/mh-scheduler/internal/middleware"
	"github.com/suryadizhang/mh-scheduler/internal/notify"
	ucAssignment "github.com/suryadizhang/mh-scheduler/internal/usecase/assignment"
	ucAvailability "github.com/suryadizhang/mh-scheduler/internal/usecase/availability"
	ucBooking "github.com/suryadizhang/mh-scheduler/internal/usecase/booking"
	ucCancellation "github.com/suryadizhang/mh-scheduler/internal/usecase/cancellation"
	ucHold "github.com/suryadizhang/mh-scheduler/internal/usecase/hold"
	ucNegotiation "github.com/suryadizhang/mh-scheduler/internal/usecase/negotiation"
	"github.com/suryadizhang/mh-scheduler/internal/worker"
)

// RegisterRoutes monta toda a árvore de rotas e devolve o sweeper já
// registrado; quem chama decide quando ligar/desligar.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) *worker.Sweeper {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	holdRepo := infraRepo.NewHoldGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	assignmentRepo := infraRepo.NewAssignmentGormRepository(db)
	negotiationRepo := infraRepo.NewNegotiationGormRepository(db)
	dynvarRepo := infraRepo.NewDynVarGormRepository(db)

	vars := dynvars.New(dynvarRepo)

	travelCache := geo.NewTravelCache(rdb)
	travelService := geo.NewTravelService(travelCache, vars)
	geocoder := geo.NewHTTPGeocoder(cfg.GeocoderBaseURL, 5*time.Second)

	notifier := notify.NewLogNotifier()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createHoldUC := ucHold.NewCreateHold(holdRepo, vars, auditDispatcher)
	signAgreementUC := ucHold.NewSignAgreement(holdRepo, vars, auditDispatcher)
	payDepositUC := ucHold.NewPayDeposit(holdRepo, vars, geocoder, notifier, auditDispatcher)
	holdSweeper := ucHold.NewSweeper(holdRepo, vars, notifier)

	availabilityUC := ucAvailability.NewGetAvailability(holdRepo, vars)

	assignChefUC := ucAssignment.NewAssignChef(assignmentRepo, travelService, auditDispatcher)

	proposeUC := ucNegotiation.NewPropose(negotiationRepo, vars, notifier, auditDispatcher)
	respondUC := ucNegotiation.NewRespond(negotiationRepo, assignChefUC, auditDispatcher)
	negotiationSweeper := ucNegotiation.NewSweeper(negotiationRepo)

	requestCancellationUC := ucCancellation.NewRequest(bookingRepo, auditDispatcher)
	resolveCancellationUC := ucCancellation.NewResolve(bookingRepo, auditDispatcher)

	listBookingsUC := ucBooking.NewListByDate(bookingRepo)
	urgencySweeper := ucBooking.NewUrgencySweeper(bookingRepo, vars)

	// ======================================================
	// ⏱️ SWEEPS PERIÓDICOS
	// ======================================================
	sweeper := worker.NewSweeper(time.Duration(cfg.SweepIntervalSec) * time.Second)
	sweeper.Register("hold_warnings", holdSweeper.SweepWarnings)
	sweeper.Register("hold_expiry", holdSweeper.SweepExpired)
	sweeper.Register("negotiation_expiry", negotiationSweeper.SweepExpired)
	sweeper.Register("booking_urgency", urgencySweeper.SweepUrgency)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	stationHandler := handlers.NewStationHandler(db)
	chefHandler := handlers.NewChefHandler(db)

	holdHandler := handlers.NewHoldHandler(createHoldUC, signAgreementUC, payDepositUC, holdRepo)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	bookingHandler := handlers.NewBookingHandler(listBookingsUC, bookingRepo)
	cancellationHandler := handlers.NewCancellationHandler(requestCancellationUC, resolveCancellationUC)
	negotiationHandler := handlers.NewNegotiationHandler(proposeUC, respondUC, negotiationRepo)
	assignmentHandler := handlers.NewAssignmentHandler(assignChefUC, proposeUC)

	dynvarHandler := handlers.NewDynVarHandler(db, dynvarRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 📈 METRICS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (cliente, sem login)
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/stations", stationHandler.List)
			public.GET("/stations/:slug/availability", availabilityHandler.Get)

			public.POST("/holds", holdHandler.Create)
			public.GET("/holds/:id", holdHandler.Get)
			public.POST("/holds/:id/sign", holdHandler.Sign)
			public.POST("/holds/:id/pay", holdHandler.Pay)

			public.POST("/negotiations/:id/respond", negotiationHandler.Respond)
		}

		// ------------------------------
		// 🔑 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔒 API OPS (admins)
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/stations", middleware.RequireRole("super_admin"), stationHandler.Create)

			secured.GET("/chefs", chefHandler.List)
			secured.POST("/chefs", chefHandler.Create)
			secured.GET("/chefs/:id/availability", chefHandler.ListAvailability)
			secured.PUT("/chefs/:id/availability", chefHandler.UpsertAvailability)

			secured.GET("/stations/:slug/bookings", bookingHandler.ListByDate)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.POST("/bookings/:id/assign", assignmentHandler.Assign)

			secured.POST("/bookings/:id/cancellation", cancellationHandler.Request)
			secured.POST("/bookings/:id/cancellation/approve", cancellationHandler.Approve)
			secured.POST("/bookings/:id/cancellation/reject", cancellationHandler.Reject)

			secured.POST("/negotiations", negotiationHandler.Propose)
			secured.GET("/negotiations/booking/:id", negotiationHandler.ListByBooking)

			secured.GET("/variables", dynvarHandler.List)
			secured.PUT("/variables", dynvarHandler.Upsert)
			secured.POST("/variables/:category/:key/approve", dynvarHandler.Approve)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return sweeper
}

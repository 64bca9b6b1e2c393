package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"team-ops-system/config"
	"team-ops-system/handlers"
	"team-ops-system/models"
	"team-ops-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration:", err)
	}

	app := fiber.New()

	origins := strings.Split(cfg.AllowedOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-User-ID",
		AllowCredentials: true,
	}))

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.UserSettings{},
		&models.Season{},
		&models.Team{},
		&models.Opponent{},
		&models.Player{},
		&models.Match{},
		&models.PlayerMatchStat{},
		&models.Exercise{},
		&models.Training{},
		&models.TrainingAttendance{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	seasonService := services.NewSeasonService(db)
	settingsService := services.NewUserSettingsService(db, cfg.DefaultMaxPlayersPerTeam)
	teamService := services.NewTeamService(db)
	opponentService := services.NewOpponentService(db)
	exerciseService := services.NewExerciseService(db)
	playerService := services.NewPlayerService(db, seasonService, settingsService)
	matchService := services.NewMatchService(db, seasonService)
	trainingService := services.NewTrainingService(db)

	if cfg.SeedDevData {
		seedService := services.NewSeedService(db, teamService, playerService, opponentService, exerciseService)
		if err := seedService.SeedDevData(); err != nil {
			log.Fatal("failed to seed dev data:", err)
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handlers.SetupEnumRoutes(app)
	handlers.SetupSettingsRoutes(app, settingsService)
	handlers.SetupSeasonRoutes(app, seasonService)
	handlers.SetupTeamRoutes(app, teamService, opponentService)
	handlers.SetupPlayerRoutes(app, playerService)
	handlers.SetupMatchRoutes(app, matchService)
	handlers.SetupTrainingRoutes(app, trainingService, exerciseService)

	seasonService.StartSeasonScheduler()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()
	log.Printf("✅ team-ops-system listening on %s", cfg.ListenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"

	"alfredoptarigan/github-talent-scout/internal/config"
	"alfredoptarigan/github-talent-scout/internal/handlers"
	"alfredoptarigan/github-talent-scout/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeExtractor := services.NewResumeExtractor()
	profileExtractor := services.NewProfileExtractor()
	githubService := services.NewGithubService(cfg.Github.Token, cfg.Analysis.MaxRepoFiles)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	summarizer := services.NewFileSummarizer(geminiService, cfg.Gemini.SummaryModel, cfg.Analysis.MaxSummaryChars)
	candidateAnalyzer := services.NewCandidateAnalyzer(geminiService, cfg.Gemini.AnalysisModel)
	repoAnalyzer := services.NewRepoAnalyzer(geminiService, cfg.Gemini.AnalysisModel, cfg.Analysis.MaxRepoAnalysisChars)

	pipeline := services.NewAnalysisPipeline(
		githubService,
		summarizer,
		candidateAnalyzer,
		repoAnalyzer,
		cfg.Analysis.TopRepoCount,
	)
	log.Println("✅ Analysis pipeline initialized")

	// Session store carries the per-flow state between upload, confirm,
	// and analyze requests.
	store := session.New(session.Config{
		Expiration:   2 * time.Hour,
		CookieSecure: cfg.Server.Env != "development",
	})

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		store,
		storageService,
		resumeExtractor,
		profileExtractor,
		cfg.Storage.MaxFileSize,
	)
	githubHandler := handlers.NewGithubHandler(store, profileExtractor)
	analyzeHandler := handlers.NewAnalyzeHandler(store, pipeline)
	repoHandler := handlers.NewRepoHandler(store, githubService, repoAnalyzer)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName:      "GitHub Talent Scout",
		Views:        engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/", uploadHandler.HandleIndex)
	app.Post("/upload", uploadHandler.HandleUpload)
	app.Get("/confirm", githubHandler.HandleConfirmPage)
	app.Post("/github", githubHandler.HandleManualGithub)
	app.Get("/analyze", analyzeHandler.HandleAnalyze)
	app.Get("/repo", repoHandler.HandleRepoReview)
	app.Post("/repo", repoHandler.HandleRepoReview)

	// Health check
	app.Get("/api/v1/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).Render("error", fiber.Map{
		"Message": err.Error(),
	})
}

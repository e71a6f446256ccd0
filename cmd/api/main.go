package main

import (
	"log"
	"time"

	config "github.com/anqnd2510/tray-homework/configs"
	"github.com/anqnd2510/tray-homework/database"
	"github.com/anqnd2510/tray-homework/handlers"
	"github.com/anqnd2510/tray-homework/jobs"
	"github.com/anqnd2510/tray-homework/notifications"
	"github.com/anqnd2510/tray-homework/payments"
	"github.com/anqnd2510/tray-homework/routes"
	"github.com/anqnd2510/tray-homework/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	notifications.InitEmailService()

	momoCfg := config.LoadMomo()
	codec := payments.NewSignatureCodec(momoCfg.SecretKey)
	momoClient := payments.NewMomoClient(momoCfg, codec)

	catalog := services.NewPlanCatalog()
	ledger := services.NewTransactionService(database.DB)
	paymentService := services.NewPaymentService(database.DB, momoClient, codec, catalog, ledger)
	scoreService := services.NewScoreService(database.DB)

	paymentHandler := handlers.NewPaymentHandler(paymentService)
	answerHandler := handlers.NewAnswerHandler(scoreService)
	transactionHandler := handlers.NewTransactionHandler(ledger)

	c := cron.New()
	c.AddFunc("*/30 * * * *", jobs.ExpireStalePayments)
	go c.Start()
	log.Println("✅ Cron job for payment reconciliation scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Tray Homework",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Tray Homework API",
		})
	})

	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.ClassRoutes(app)
	routes.SlotRoutes(app)
	routes.QuestionRoutes(app)
	routes.AnswerRoutes(app, answerHandler)
	routes.PaymentRoutes(app, paymentHandler)
	routes.TransactionRoutes(app, transactionHandler)
	routes.FeedbackRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}

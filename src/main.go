package main

import (
	_ "Backend-Tutoria-001/docs"
	"Backend-Tutoria-001/src/database"
	"Backend-Tutoria-001/src/jobs"
	"Backend-Tutoria-001/src/routes"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        Tutoria API
// @version      1.0
// @description  Backend for the Tutoria online tutoring platform
// @BasePath     /api
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and the fan-out worker are optional; without them general
	// messages are stored but not fanned out to notifications.
	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}

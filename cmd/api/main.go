package main

import (
	_ "atelier_prints/docs"
	"atelier_prints/internal/adapter/http/routes"
	"atelier_prints/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Atelier Prints API
// @version         1.0
// @description     Photography print shop (catalog + cart + checkout) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logger.InitLogger()
	defer logger.Sync()

	routes.Run()
}

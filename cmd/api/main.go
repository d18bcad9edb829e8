package main

import (
	"os"

	_ "painting_crm/docs"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Painting CRM KPI API
// @version         1.0
// @description     Dashboard KPIs and estimate pricing for painting contractors.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

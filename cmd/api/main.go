package main

import (
	_ "time/tzdata"

	_ "stripe_books_bridge/docs"
	"stripe_books_bridge/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Stripe Books Bridge API
// @version         1.0
// @description     Reconciles Stripe checkout webhooks into Zoho Books invoices and payments.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

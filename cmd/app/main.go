package main

import (
	"arena/config"
	"arena/di"
	"arena/shared/logger"
)

// @title Arena Booking API
// @version 1.0
// @description Facility availability, reservations, maintenance windows and reports.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

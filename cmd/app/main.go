package main

import (
	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/di"
	"github.com/gabrielgilbord/Frantana-Booking/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

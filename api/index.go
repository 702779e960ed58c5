package handler

import (
	"net/http"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/di"
	"github.com/gabrielgilbord/Frantana-Booking/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}

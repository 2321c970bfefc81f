package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/medcare/medcare-api/api/handlers"
	"github.com/medcare/medcare-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	a.Initialize() //initialize stores, scheduler and router

	port := a.Config.Port
	if port == "" {
		port = "5000"
	}
	zap.S().Infow("medcare-api is up and running",
		"port", port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}

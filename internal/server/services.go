package server

import (
	"github.com/openmined/skeleton-api/internal/server/models"
	"github.com/openmined/skeleton-api/internal/server/services"
)

type Services struct {
	Info *services.InfoService
}

func NewServices(config *Config) *Services {
	return &Services{
		Info: services.NewInfoService(models.NewExampleModel(config.ExampleCount)),
	}
}

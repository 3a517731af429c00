package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"leavedesk/internal/config"
	"leavedesk/internal/middleware"
	"leavedesk/internal/request"
	"leavedesk/internal/shared/connection"
)

// BuildApp connects the infrastructure, constructs the request engine once
// and hangs its routes off the router. The store is injected downward from
// here; nothing holds package-level state.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config) error {
	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	repo := request.NewRepository(redisClient)
	seeder := request.NewSeeder(cfg.MockSeed)
	store, err := request.NewStore(ctx, repo, seeder)
	if err != nil {
		return err
	}

	allotment := request.Allotment{
		VacationDays:     cfg.VacationAllotment,
		CompensatoryDays: cfg.CompensatoryAllotment,
	}
	service := request.NewService(store, allotment)
	handler := request.NewHandler(service)

	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
	)
	request.RegisterRoutes(api, handler)

	return nil
}

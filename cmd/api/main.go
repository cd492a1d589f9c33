package main

import (
	"context"
	"os"

	"github.com/yigit/coursedesk/internal/cli"
	"github.com/yigit/coursedesk/internal/pkg/logger"
)

// @title Coursedesk API
// @version 1.0
// @description Course, student and enrollment administration API

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from POST /auth/token

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		logger.Error().Err(err).Msg("coursedesk failed")
		os.Exit(1)
	}
}

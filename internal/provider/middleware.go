package provider

import (
	"github.com/Naveen2070/Hive-Movie/internal/app/authinfra"
	"github.com/Naveen2070/Hive-Movie/internal/interfaces/http/middleware"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/logger"
)

// ProvideAuthMiddleware creates and returns an auth middleware
func ProvideAuthMiddleware(
	jwtManager *authinfra.JWTManager,
	log *logger.Logger,
) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(jwtManager, log)
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"supermind/internal/middleware"
	"supermind/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() middleware.Middleware {
	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l, srv.webConfig)
	srv.gin.Use(mw.Cors())

	ctx := context.Background()
	switch {
	case len(srv.webConfig.AllowedOrigins) > 0:
		srv.l.Infof(ctx, "CORS origins: %v", srv.webConfig.AllowedOrigins)
	case srv.environment == string(model.EnvironmentProduction):
		srv.l.Warn(ctx, "CORS allows all origins in production; set web.allowed_origins")
	default:
		srv.l.Infof(ctx, "CORS mode: allow all (%s)", srv.environment)
	}

	return mw
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

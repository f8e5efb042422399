package httpserver

import (
	"context"

	chatHTTP "supermind/internal/chat/delivery/http"
	chatRepo "supermind/internal/chat/repository/inmem"
	chatUC "supermind/internal/chat/usecase"
	"supermind/internal/middleware"
	reportHTTP "supermind/internal/report/delivery/http"
	reportUC "supermind/internal/report/usecase"
)

// registerDomainRoutes wires repositories, use cases and handlers for
// every domain under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Chat domain: session and turn history.
	sessionRepo := chatRepo.New(srv.l)
	chatUseCase := chatUC.New(srv.l, sessionRepo)
	chatHandler := chatHTTP.New(srv.l, chatUseCase)
	chatHTTP.RegisterRoutes(api.Group("/chats"), chatHandler)
	srv.l.Infof(ctx, "Chat domain registered")

	// Report domain: generation rides on the chat use case for turn
	// bookkeeping, so both share the one session store.
	reportUseCase := reportUC.New(srv.l, srv.flow, chatUseCase, srv.tweaks)
	reportHandler := reportHTTP.New(srv.l, reportUseCase)
	reportHTTP.RegisterRoutes(api.Group("/reports"), reportHandler, mw.RateLimit())
	srv.l.Infof(ctx, "Report domain registered")

	return nil
}

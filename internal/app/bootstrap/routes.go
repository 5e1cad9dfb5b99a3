// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	accountfeature "github.com/giftmonk/giftmonk/internal/app/features/account"
	authgooglefeature "github.com/giftmonk/giftmonk/internal/app/features/authgoogle"
	giftsfeature "github.com/giftmonk/giftmonk/internal/app/features/gifts"
	groupsfeature "github.com/giftmonk/giftmonk/internal/app/features/groups"
	healthfeature "github.com/giftmonk/giftmonk/internal/app/features/health"
	loginfeature "github.com/giftmonk/giftmonk/internal/app/features/login"
	logoutfeature "github.com/giftmonk/giftmonk/internal/app/features/logout"
	"github.com/giftmonk/giftmonk/internal/app/store/oauthstate"
	userstore "github.com/giftmonk/giftmonk/internal/app/store/users"
	"github.com/giftmonk/giftmonk/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The JSON API lives under /api; the
// built web client is served statically for every other path.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the UserFetcher so LoadSessionUser fetches fresh user data on
	// each request. Name changes take effect immediately this way.
	users := userstore.New(deps.MongoDatabase)
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(users, sessionMgr, logger)
	r.Mount("/api/auth", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/api/auth/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	googleHandler := authgooglefeature.NewHandler(
		users,
		oauthstate.New(deps.MongoDatabase),
		sessionMgr,
		appCfg.GoogleClientID,
		appCfg.GoogleClientSecret,
		appCfg.BaseURL,
		logger,
	)
	r.Mount("/api/auth/google", authgooglefeature.Routes(googleHandler))

	// Account
	accountHandler := accountfeature.NewHandler(users, logger)
	r.Mount("/api/account", accountfeature.Routes(accountHandler, sessionMgr))

	// Group membership
	groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/groups", groupsfeature.Routes(groupsHandler, sessionMgr))

	// Gift lists
	giftsHandler := giftsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/gifts", giftsfeature.Routes(giftsHandler, sessionMgr))
	r.Mount("/api/members", giftsfeature.MemberRoutes(giftsHandler, sessionMgr))

	// Built web client with pre-compressed file support (gzip/brotli)
	r.Handle("/*", fileserver.Handler("/", appCfg.StaticDir))

	return r, nil
}

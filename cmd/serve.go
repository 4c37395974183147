package cmd

import (
	"fmt"
	"net/http"
	"path"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jscott1989/push-notifications-service/api/handlers"
	"github.com/jscott1989/push-notifications-service/api/middleware"
	"github.com/jscott1989/push-notifications-service/api/services"
	docs "github.com/jscott1989/push-notifications-service/docs"
	"github.com/jscott1989/push-notifications-service/internal/appconfig"
	"github.com/jscott1989/push-notifications-service/internal/metrics"
	"github.com/jscott1989/push-notifications-service/registry"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Push Notifications Service API
// @version v1
// @description HTTP API for registering users and groups and pushing notifications through Pushbullet.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Set up logging and load the config
		setUp()

		appCfg, err := appconfig.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}

		// All state lives in this registry for the lifetime of the process
		service := &services.Service{
			Config:   appCfg,
			Registry: registry.New(),
			Push:     services.NewPushbulletClient(appCfg.Pushbullet.URL),
		}

		// Create routes
		r := mux.NewRouter()

		// Register the routes
		api := r.PathPrefix(appCfg.BasePath).Subrouter()

		// Apply the middleware to the API routes
		api.Use(middleware.WithLogger)

		// User routes
		api.HandleFunc("/users", handlers.RegisterUser(service)).Methods(http.MethodPost)
		api.HandleFunc("/users", handlers.ListUsers(service)).Methods(http.MethodGet)
		api.HandleFunc("/users/{username}", handlers.GetUser(service)).Methods(http.MethodGet)
		api.HandleFunc("/users/{username}/notifications", handlers.GetUserNotifications(service)).Methods(http.MethodGet)
		api.HandleFunc("/users/{username}/notifications", handlers.SendUserNotification(service)).Methods(http.MethodPost)

		// Group routes
		api.HandleFunc("/groups", handlers.RegisterGroup(service)).Methods(http.MethodPost)
		api.HandleFunc("/groups", handlers.ListGroups(service)).Methods(http.MethodGet)
		api.HandleFunc("/groups/{group-id}", handlers.GetGroup(service)).Methods(http.MethodGet)
		api.HandleFunc("/groups/{group-id}/notifications", handlers.SendGroupNotification(service)).Methods(http.MethodPost)

		// Broadcast routes
		api.HandleFunc("/notifications", handlers.BroadcastNotification(service)).Methods(http.MethodPost)

		// Metrics
		r.Path(appCfg.MetricsPath).Handler(metrics.Handler()).Methods(http.MethodGet)

		// Docs
		docs.SwaggerInfo.Host = appCfg.Host
		docs.SwaggerInfo.BasePath = appCfg.BasePath
		r.PathPrefix(appCfg.DocsPath).Handler(httpSwagger.Handler(
			httpSwagger.URL(path.Join(appCfg.DocsPath, "/doc.json")),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("none"),
			httpSwagger.DomID("swagger-ui"),
		)).Methods(http.MethodGet)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otellogrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/option-pricing/src/models"
	"github.com/jiaming2012/option-pricing/src/priceapi"
	"github.com/jiaming2012/option-pricing/src/utils"
)

func loadPricingConfig(projectsDir string) (*models.PricingConfigYAML, error) {
	var pricingConfig models.PricingConfigYAML

	configFile, err := utils.GetEnv("PRICING_CONFIG_FILE")
	if err != nil {
		log.Info("PRICING_CONFIG_FILE not set: using pricing defaults")
		pricingConfig.ApplyDefaults()
		return &pricingConfig, nil
	}

	configInDir := path.Join(projectsDir, "option-pricing", "src", configFile)
	config, err := os.ReadFile(configInDir)
	if err != nil {
		return nil, fmt.Errorf("loadPricingConfig: failed to read pricing config: %w", err)
	}

	if err := yaml.Unmarshal(config, &pricingConfig); err != nil {
		return nil, fmt.Errorf("loadPricingConfig: failed to unmarshal pricing config: %w", err)
	}

	pricingConfig.ApplyDefaults()
	return &pricingConfig, nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	projectsDir := os.Getenv("PROJECTS_DIR")
	if projectsDir == "" {
		log.Fatalf("missing PROJECTS_DIR environment variable")
	}

	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	if err := utils.InitEnvironmentVariables(projectsDir, goEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	port, err := utils.GetEnv("PORT")
	if err != nil {
		log.Fatalf("$PORT not set: %v", err)
	}

	pricingConfig, err := loadPricingConfig(projectsDir)
	if err != nil {
		log.Fatalf("failed to load pricing config: %v", err)
	}

	// Set up telemetry
	log.AddHook(otellogrus.NewHook(otellogrus.WithLevels(
		log.PanicLevel,
		log.FatalLevel,
		log.ErrorLevel,
		log.WarnLevel,
		log.InfoLevel,
	)))

	// Setup router
	router := mux.NewRouter()
	priceapi.SetupHandler(router.PathPrefix("/options").Subrouter(), pricingConfig)

	// Register pprof handlers
	pprofRouter := router.PathPrefix("/debug/pprof").Subrouter()
	pprofRouter.HandleFunc("/", http.HandlerFunc(pprof.Index))
	pprofRouter.HandleFunc("/cmdline", http.HandlerFunc(pprof.Cmdline))
	pprofRouter.HandleFunc("/profile", http.HandlerFunc(pprof.Profile))
	pprofRouter.HandleFunc("/symbol", http.HandlerFunc(pprof.Symbol))
	pprofRouter.HandleFunc("/trace", http.HandlerFunc(pprof.Trace))

	// Setup web server
	srv := &http.Server{
		Handler: otelhttp.NewHandler(router, "option-pricing"),
		Addr:    fmt.Sprintf(":%s", port),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// Start web server
	go func() {
		log.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				log.Fatalf("failed to start server: %v", err)
			}
		}
	}()

	// Create channel for shutdown signals.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	log.Info("Main: init complete")

	// Block here until program is shut down
	<-stop

	cancel()

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}

	log.Info("Main: gracefully stopped!")
}

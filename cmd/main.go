package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solartherm/internal/handlers"
	"solartherm/internal/logger"
	"solartherm/internal/server"
	"solartherm/internal/service"
	"solartherm/internal/source"

	"github.com/spf13/viper"
)

const (
	defaultPort        = "8080"
	defaultSerialBaud  = 9600
	defaultReadTimeout = 5 * time.Second
)

func main() {
	if err := loadConfig(); err != nil {
		// No config file is tolerable; defaults and env cover a bare setup.
		logger.Get(logger.InfoLevel).Infow("no config file loaded", "err", err)
	}

	log := logger.Get(viper.GetString("log_level"))

	src := newSource(log)
	services := service.NewService(src)
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("port", defaultPort)
	viper.SetDefault("log_level", logger.InfoLevel)
	viper.SetDefault("source", "serial")
	viper.SetDefault("serial.device", "/dev/ttyUSB0")
	viper.SetDefault("serial.baud", defaultSerialBaud)
	viper.SetDefault("serial.timeout", defaultReadTimeout)
	return viper.ReadInConfig()
}

// newSource picks the frame source from config: a real serial port, or
// the canned sample frame for development without hardware.
func newSource(log *logger.Logger) source.Source {
	kind := viper.GetString("source")
	switch kind {
	case "fixture":
		log.Infow("using fixture frame source")
		return source.NewFixtureSource()
	case "serial":
	default:
		log.Warnw("unknown source kind, falling back to serial", "source", kind)
	}
	device := viper.GetString("serial.device")
	baud := viper.GetInt("serial.baud")
	timeout := viper.GetDuration("serial.timeout")
	log.Infow("using serial frame source", "device", device, "baud", baud, "timeout", timeout)
	return source.NewSerialSource(device, baud, timeout)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

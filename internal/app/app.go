package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
	"github.com/rexstudios-dev/venue-reservation-system/internal/layout"
	"github.com/rexstudios-dev/venue-reservation-system/internal/mailer"
	"github.com/rexstudios-dev/venue-reservation-system/internal/render"
	"github.com/rexstudios-dev/venue-reservation-system/internal/reservation"
	appvalidator "github.com/rexstudios-dev/venue-reservation-system/internal/validator"
	"github.com/rexstudios-dev/venue-reservation-system/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	service   domain.ReservationService
	system    *reservation.System
	mailer    mailer.Mailer
	tickets   *render.TicketGenerator
}

type config struct {
	port             int
	env              string
	otelCollectorUrl string
	ticketSecret     string
	venue            struct {
		layout string
		file   string
	}
	reservations struct {
		expiry           time.Duration
		maxItems         int
		allowOverlapping bool
		sweepInterval    time.Duration
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
}

func Run() error {
	// A missing .env is fine, flags and real environment still apply.
	_ = godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector URL")
	flag.StringVar(&cfg.ticketSecret, "ticket-secret", envString("TICKET_SECRET", ""), "Secret for ticket QR encryption")

	flag.StringVar(&cfg.venue.layout, "venue-layout", envString("VENUE_LAYOUT", "cinema"), "Venue layout (cinema|restaurant|conference|grid|file)")
	flag.StringVar(&cfg.venue.file, "venue-file", envString("VENUE_FILE", ""), "Venue map JSON file (layout=file)")

	flag.DurationVar(&cfg.reservations.expiry, "reservation-expiry", 15*time.Minute, "Pending reservation lifetime")
	flag.IntVar(&cfg.reservations.maxItems, "reservation-max-items", 10, "Max items per reservation (0 = unlimited)")
	flag.BoolVar(&cfg.reservations.allowOverlapping, "reservation-allow-overlapping", false, "Allow overlapping reservations on the same item")
	flag.DurationVar(&cfg.reservations.sweepInterval, "expiry-sweep-interval", time.Minute, "Interval between expired reservation sweeps")

	flag.StringVar(&cfg.smtp.host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", envString("SMTP_USERNAME", ""), "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", envString("SMTP_PASSWORD", ""), "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", envString("SMTP_SENDER", "Venue <no-reply@venue.rexstudios.dev>"), "SMTP sender")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	venue, err := buildVenue(cfg)
	if err != nil {
		return err
	}

	settings := reservation.DefaultSettings()
	settings.ReservationExpiry = cfg.reservations.expiry
	settings.MaxItemsPerReservation = cfg.reservations.maxItems
	settings.AllowOverlapping = cfg.reservations.allowOverlapping

	system := reservation.NewSystem(venue, settings, logger)

	app := &application{
		config:    cfg,
		logger:    logger,
		validator: appvalidator.NewValidator(),
		service:   system,
		system:    system,
		mailer:    mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender),
		tickets:   render.NewTicketGenerator(cfg.ticketSecret),
	}

	shutdownTelemetry, err := app.initTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	app.registerListeners()

	return app.run()
}

func buildVenue(cfg config) (*domain.VenueMap, error) {
	switch cfg.venue.layout {
	case "cinema":
		return layout.Cinema(layout.CinemaOptions{}), nil
	case "restaurant":
		return layout.Restaurant(layout.RestaurantOptions{}), nil
	case "conference":
		return layout.Conference(layout.ConferenceOptions{}), nil
	case "grid":
		return layout.Grid(layout.GridOptions{}), nil
	case "file":
		data, err := os.ReadFile(cfg.venue.file)
		if err != nil {
			return nil, err
		}
		return domain.ParseVenueMap(data)
	default:
		return nil, fmt.Errorf("unknown venue layout %q", cfg.venue.layout)
	}
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	sweeperDone := make(chan struct{})
	go app.sweepExpiredReservations(sweeperDone)

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		close(sweeperDone)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env, "layout", app.config.venue.layout)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

// sweepExpiredReservations periodically releases pending reservations whose
// hold has lapsed, until done is closed.
func (app *application) sweepExpiredReservations(done <-chan struct{}) {
	ticker := time.NewTicker(app.config.reservations.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := app.service.CleanupExpiredReservations(); n > 0 {
				app.logger.Info("released expired reservations", "count", n)
			}
		case <-done:
			return
		}
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

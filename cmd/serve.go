package cmd

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/controller"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/mailer"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/provider"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/service"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP (Echo) server exposing the donation and enquiry API.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	flowProvider := buildFlowProvider(cfg)
	sender := buildMailSender(cfg)

	donationService := service.NewDonationService(flowProvider)
	enquiryService := service.NewEnquiryService(sender, cfg.Mail.FromAddress, cfg.Mail.ToAddress)

	donationController := controller.NewDonationController(donationService)
	enquiryController := controller.NewEnquiryController(enquiryService)

	e := setupHTTPServer(donationController, enquiryController)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}

	logrus.Info("Server stopped")
}

func buildFlowProvider(cfg *config.Config) provider.RedirectFlowProvider {
	if strings.TrimSpace(cfg.GoCardless.AccessToken) == "" {
		logrus.Warn("No GoCardless access token configured; running redirect flows in mock mode")
		return provider.NewMockProvider()
	}

	logrus.WithField("environment", cfg.GoCardless.Environment).Info("Using GoCardless redirect flow provider")
	return provider.NewGoCardlessProvider(provider.GoCardlessConfig{
		AccessToken: cfg.GoCardless.AccessToken,
		Environment: cfg.GoCardless.Environment,
		BaseURL:     cfg.GoCardless.BaseURL,
		HTTPTimeout: cfg.GoCardless.HTTPTimeout,
	})
}

func buildMailSender(cfg *config.Config) mailer.Sender {
	if strings.TrimSpace(cfg.Mail.SMTPHost) == "" {
		logrus.Warn("No SMTP host configured; enquiry emails will only be logged")
		return mailer.NewLogSender(logrus.WithField("module", "mailer"))
	}

	return mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.SMTPUsername,
		Password: cfg.Mail.SMTPPassword,
		From:     cfg.Mail.FromAddress,
	})
}

func setupHTTPServer(donationController *controller.DonationController, enquiryController *controller.EnquiryController) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	controller.RegisterRoutes(e, donationController, enquiryController)

	return e
}

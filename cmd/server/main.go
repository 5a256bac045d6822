package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"jendo/backend/internal/config"
	"jendo/backend/internal/db"
	"jendo/backend/internal/mail"
	"jendo/backend/internal/notification/producer"
	"jendo/backend/internal/otp"
	otprepo "jendo/backend/internal/otp/repository"
	"jendo/backend/internal/security"
	"jendo/backend/internal/server"
	"jendo/backend/internal/telemetry/otel"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "jendo-backend")
	if err != nil {
		log.Fatal().Err(err).Msg("init tracing")
	}
	providers.SetGlobal()
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown")
		}
	}()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer database.Close()

	mailer := mail.NewClient(cfg.MailerAPIKey, cfg.MailerBaseURL, cfg.MailerSender)
	passcodes := otp.NewService(otprepo.NewPostgresRepository(database), mailer, cfg.PasscodeTTL(), log)

	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaBrokersList(), cfg.KafkaNotifyTopic)
	if kafkaProducer != nil {
		defer kafkaProducer.Close()
	}

	handler := server.NewRouter(server.Deps{
		DB:       database,
		Log:      log,
		Hasher:   security.NewHasher(cfg.BcryptCost),
		Tokens:   security.NewTokenProvider([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience, cfg.SessionTTL()),
		Passcode: passcodes,
		Producer: kafkaProducer,
	})

	srv := server.New(cfg.HTTPAddr, handler, log)
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
	log.Info().Msg("server stopped")
}

package setup

import (
	"fmt"

	"github.com/fundunity/donation-service/internal/config"
	"github.com/fundunity/donation-service/internal/domain"
	publisher "github.com/fundunity/donation-service/internal/infrastructure/kafka"
	"github.com/fundunity/donation-service/internal/infrastructure/metrics"
	"github.com/fundunity/donation-service/internal/infrastructure/midtrans"
	"github.com/fundunity/donation-service/internal/infrastructure/postgres"
	"github.com/fundunity/donation-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config             *config.DonationConfig
	DB                 *gorm.DB
	TransactionRepo    domain.TransactionRepository
	Gateway            domain.PaymentGateway
	Verifier           domain.NotificationVerifier
	EventPublisher     *publisher.KafkaPublisher
	TransactionMetrics *metrics.TransactionMetrics
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	gateway := midtrans.NewClient(
		cfg.Midtrans.SnapBaseURL,
		cfg.Midtrans.CoreAPIBaseURL,
		cfg.Midtrans.ServerKey,
	)
	verifier := midtrans.NewSignatureVerifier(cfg.Midtrans.ServerKey)

	eventPublisher := publisher.NewKafkaPublisher(
		[]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		cfg.KafkaService.Topic,
	)

	return &Dependencies{
		Config:             cfg,
		DB:                 db,
		TransactionRepo:    repository.NewDefaultTransactionRepository(db),
		Gateway:            gateway,
		Verifier:           verifier,
		EventPublisher:     eventPublisher,
		TransactionMetrics: metrics.NewTransactionMetrics(),
	}, nil
}

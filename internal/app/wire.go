//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"dispatch/internal/handlers/tasks/offer_cleanup"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/courierlock"
	courierRepo "dispatch/internal/repository/courier"
	settlementRepo "dispatch/internal/repository/settlement"
	walletRepo "dispatch/internal/repository/wallet"
	zoneRepo "dispatch/internal/repository/zone"
	assignmentService "dispatch/internal/service/assignment"
	courierService "dispatch/internal/service/courier"
	settlementService "dispatch/internal/service/settlement"
	walletService "dispatch/internal/service/wallet"

	"dispatch/pkg/logger"
	"dispatch/pkg/tx"
)

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideOfferLocker,

		provideCourierRepository,
		provideZoneRepository,
		provideWalletRepository,
		provideSettlementRepository,

		provideServiceCourier,
		provideServiceAssignment,
		provideServiceWallet,
		provideServiceSettlement,

		provideOfferCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceSettlement), new(*settlementService.Settlement)),
		wire.Bind(new(ServiceWallet), new(*walletService.Wallet)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(assignmentService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(assignmentService.ZoneRepository), new(*zoneRepo.Repository)),
		wire.Bind(new(assignmentService.OfferLocker), new(*courierlock.Locker)),
		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),
		wire.Bind(new(settlementService.Repository), new(*settlementRepo.Repository)),
		wire.Bind(new(settlementService.WalletService), new(*walletService.Wallet)),

		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),

		wire.Bind(new(offer_cleanup.Service), new(*assignmentService.Assignment)),
	)
	return &Application{}, nil
}

func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOfferLocker,

		provideCourierRepository,
		provideZoneRepository,
		provideWalletRepository,
		provideSettlementRepository,

		provideServiceAssignment,
		provideServiceWallet,
		provideServiceSettlement,

		wire.Bind(new(assignmentService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(assignmentService.ZoneRepository), new(*zoneRepo.Repository)),
		wire.Bind(new(assignmentService.OfferLocker), new(*courierlock.Locker)),
		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),
		wire.Bind(new(settlementService.Repository), new(*settlementRepo.Repository)),
		wire.Bind(new(settlementService.WalletService), new(*walletService.Wallet)),

		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	assignment_confirm_post "dispatch/internal/handlers/rest/assignment_confirm_post"
	assignment_release_post "dispatch/internal/handlers/rest/assignment_release_post"
	assignment_request_post "dispatch/internal/handlers/rest/assignment_request_post"
	courier_get "dispatch/internal/handlers/rest/courier_get"
	courier_location_put "dispatch/internal/handlers/rest/courier_location_put"
	courier_post "dispatch/internal/handlers/rest/courier_post"
	courier_put "dispatch/internal/handlers/rest/courier_put"
	couriers_get "dispatch/internal/handlers/rest/couriers_get"
	settlement_get "dispatch/internal/handlers/rest/settlement_get"
	settlement_post "dispatch/internal/handlers/rest/settlement_post"
	wallet_get "dispatch/internal/handlers/rest/wallet_get"
	wallet_reconcile_post "dispatch/internal/handlers/rest/wallet_reconcile_post"
	wallet_transaction_complete_post "dispatch/internal/handlers/rest/wallet_transaction_complete_post"
	wallet_transaction_fail_post "dispatch/internal/handlers/rest/wallet_transaction_fail_post"
	wallet_transaction_post "dispatch/internal/handlers/rest/wallet_transaction_post"
	wallet_transaction_reverse_post "dispatch/internal/handlers/rest/wallet_transaction_reverse_post"
	"dispatch/internal/handlers/tasks/offer_cleanup"

	"dispatch/internal/entities"
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

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
)

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceAssignment ServiceAssignment
	ServiceSettlement ServiceSettlement
	ServiceWallet     ServiceWallet
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
	courier_location_put.Service
}

type ServiceAssignment interface {
	assignment_request_post.Service
	assignment_confirm_post.Service
	assignment_release_post.Service
}

type ServiceSettlement interface {
	settlement_post.Service
	settlement_get.Service
}

type ServiceWallet interface {
	wallet_get.Service
	wallet_transaction_post.Service
	wallet_transaction_complete_post.Service
	wallet_transaction_fail_post.Service
	wallet_transaction_reverse_post.Service
	wallet_reconcile_post.Service
}

type KafkaWorkerApp struct {
	ServiceSettlement *settlementService.Settlement
	ServiceAssignment *assignmentService.Assignment
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOfferLocker(redisClient *goredis.Client, cfg *config.Config) *courierlock.Locker {
	return courierlock.New(redisClient, cfg.Assignment.OfferTTL)
}

func provideCourierRepository(querier *querier.Querier, cfg *config.Config) *courierRepo.Repository {
	return courierRepo.New(querier, cfg.Wallet.DefaultCashLimit)
}

func provideZoneRepository(querier *querier.Querier) *zoneRepo.Repository {
	return zoneRepo.New(querier)
}

func provideWalletRepository(querier *querier.Querier, cfg *config.Config) *walletRepo.Repository {
	return walletRepo.New(querier, cfg.Wallet.DefaultCashLimit)
}

func provideSettlementRepository(querier *querier.Querier) *settlementRepo.Repository {
	return settlementRepo.New(querier)
}

func provideServiceCourier(repository courierService.Repository) *courierService.Courier {
	return courierService.New(repository)
}

func provideServiceAssignment(
	couriers assignmentService.CourierRepository,
	zones assignmentService.ZoneRepository,
	locker assignmentService.OfferLocker,
	log logger.Logger,
	cfg *config.Config,
) *assignmentService.Assignment {
	return assignmentService.New(couriers, zones, locker, log, assignmentService.Config{
		MaxDistanceKm:  cfg.Assignment.MaxDistanceKm,
		OfferTTL:       cfg.Assignment.OfferTTL,
		LocationMaxAge: cfg.Assignment.LocationMaxAge,
	})
}

func provideServiceWallet(
	repository walletService.Repository,
	txManager walletService.TxManager,
	log logger.Logger,
) *walletService.Wallet {
	return walletService.New(repository, txManager, log)
}

func provideServiceSettlement(
	repository settlementService.Repository,
	wallets settlementService.WalletService,
	txManager settlementService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *settlementService.Settlement {
	return settlementService.New(repository, wallets, txManager, log, settlementService.Config{
		Rule: entities.CommissionRule{
			BasePayout:       cfg.Commission.BasePayout,
			FreeDistanceKm:   cfg.Commission.FreeDistanceKm,
			PerKmRate:        cfg.Commission.PerKmRate,
			PlatformFee:      cfg.Commission.PlatformFee,
			MinimumGuarantee: cfg.Commission.MinimumGuarantee,
		},
		DistancePolicy: settlementService.DistancePolicy(cfg.Settlement.DistancePolicy),
	})
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.OfferCleanupInterval)
}

func provideOfferCleanupTask(
	log logger.Logger,
	service offer_cleanup.Service,
	interval CleanupInterval,
) *offer_cleanup.OfferCleanup {
	return offer_cleanup.NewOfferCleanup(log, service, time.Duration(interval))
}

func provideTaskList(offerCleanupTask *offer_cleanup.OfferCleanup) []background.Task {
	return []background.Task{
		offerCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

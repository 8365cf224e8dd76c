package offer_cleanup

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ReleaseExpiredOffers(ctx context.Context) (int64, error)
}

type OfferCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOfferCleanup(log logger.Logger, service Service, interval time.Duration) *OfferCleanup {
	return &OfferCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OfferCleanup) TTL() time.Duration {
	return o.interval
}

func (o *OfferCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	released, err := o.service.ReleaseExpiredOffers(ctxWithTimeout)

	if released > 0 {
		o.log.With(
			logger.NewField("expired_offers", released),
		).Info("offer cleanup")
	}

	return err
}

func (o *OfferCleanup) Info() string {
	return "offer cleanup"
}

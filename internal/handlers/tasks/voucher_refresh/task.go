package voucher_refresh

import (
	"context"
	"time"

	"backoffice/pkg/logger"
)

type Service interface {
	RefreshStatuses(ctx context.Context) (int64, error)
}

// VoucherRefresh периодически передергивает статусы ваучеров: просроченные
// уходят в EXPIRED, исчерпанные в OUT_OF_USES.
type VoucherRefresh struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewVoucherRefresh(log logger.Logger, service Service, interval time.Duration) *VoucherRefresh {
	return &VoucherRefresh{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (v *VoucherRefresh) TTL() time.Duration {
	return v.interval
}

func (v *VoucherRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, v.interval)
	defer cancel()

	rowsAffected, err := v.service.RefreshStatuses(ctxWithTimeout)

	if rowsAffected > 0 {
		v.log.With(
			logger.NewField("vouchers_refreshed", rowsAffected),
		).Info("voucher status refresh")
	}

	return err
}

func (v *VoucherRefresh) Info() string {
	return "voucher status refresh"
}

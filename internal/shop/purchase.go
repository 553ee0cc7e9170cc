package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/metrics"
)

// ErrRefundFailed marks a purchase whose compensating refund could not be
// written; the buyer was charged without receiving the item.
var ErrRefundFailed = errors.New(ErrMsgRefund)

// Deliverer hands a purchased item over to the buyer, e.g. by direct message.
type Deliverer interface {
	Deliver(ctx context.Context, buyerID int64, item domain.ShopItem) error
}

// DelivererFunc adapts a function to the Deliverer interface
type DelivererFunc func(ctx context.Context, buyerID int64, item domain.ShopItem) error

func (f DelivererFunc) Deliver(ctx context.Context, buyerID int64, item domain.ShopItem) error {
	return f(ctx, buyerID, item)
}

// PurchaseResult describes a completed purchase
type PurchaseResult struct {
	Item          domain.ShopItem `json:"item"`
	BalanceBefore int64           `json:"balance_before"`
	BalanceAfter  int64           `json:"balance_after"`
}

// Purchase charges the buyer and delivers the item.
//
// The charge is written before delivery. If delivery fails the price is
// credited back and the returned error wraps domain.ErrDeliveryFailed; a
// refund that also fails is joined into that error.
func (s *service) Purchase(ctx context.Context, key domain.UserKey, itemID int64, d Deliverer) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)

	item, err := s.ItemDetails(ctx, key.GuildID, itemID)
	if err != nil {
		return nil, err
	}

	buyer, err := s.progress.GetOrCreate(ctx, key)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgressionFailedFmt, key, err)
	}
	if buyer.Balance < item.Price {
		metrics.Purchases.WithLabelValues(OutcomeRejected).Inc()
		log.Info(LogMsgPurchaseRejected, "user", key.String(), "item_id", itemID, "price", item.Price, "balance", buyer.Balance)
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, item.Price, buyer.Balance)
	}

	result := &PurchaseResult{
		Item:          *item,
		BalanceBefore: buyer.Balance,
		BalanceAfter:  buyer.Balance - item.Price,
	}
	if err := s.progress.PartialUpdate(ctx, key, domain.ProgressionPatch{Balance: &result.BalanceAfter}); err != nil {
		return nil, fmt.Errorf(ErrMsgChargeFailedFmt, key, itemID, err)
	}

	if err := d.Deliver(ctx, key.UserID, *item); err != nil {
		log.Warn(LogMsgDeliveryFailed, "user", key.String(), "item_id", itemID, "error", err)
		deliveryErr := fmt.Errorf(ErrMsgDeliveryFailedFmt, domain.ErrDeliveryFailed, itemID, key.UserID, err)
		if refundErr := s.refund(ctx, key, item.Price); refundErr != nil {
			metrics.Purchases.WithLabelValues(OutcomeRefundFailed).Inc()
			metrics.Refunds.WithLabelValues(RefundFailed).Inc()
			log.Error(LogMsgRefundFailed, "user", key.String(), "amount", item.Price, "error", refundErr)
			return nil, errors.Join(deliveryErr, refundErr)
		}
		metrics.Purchases.WithLabelValues(OutcomeRefunded).Inc()
		metrics.Refunds.WithLabelValues(RefundOK).Inc()
		log.Info(LogMsgRefunded, "user", key.String(), "amount", item.Price)
		return nil, deliveryErr
	}

	metrics.Purchases.WithLabelValues(OutcomeCompleted).Inc()
	metrics.CoinsSpent.Add(float64(item.Price))
	log.Info(LogMsgPurchaseCompleted, "user", key.String(), "item_id", itemID, "price", item.Price, "balance", result.BalanceAfter)
	return result, nil
}

// refund re-reads the balance so rewards granted during delivery are kept.
func (s *service) refund(ctx context.Context, key domain.UserKey, amount int64) error {
	current, err := s.progress.GetOrCreate(ctx, key)
	if err != nil {
		return fmt.Errorf(ErrMsgRefundFailedFmt, ErrRefundFailed, amount, key, err)
	}
	restored := current.Balance + amount
	if err := s.progress.PartialUpdate(ctx, key, domain.ProgressionPatch{Balance: &restored}); err != nil {
		return fmt.Errorf(ErrMsgRefundFailedFmt, ErrRefundFailed, amount, key, err)
	}
	return nil
}

package services

import (
	"math"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

// PricingMode selects how the delivery fee is computed.
type PricingMode int

const (
	// PricingModeFlat charges FlatFee for every order regardless of distance.
	PricingModeFlat PricingMode = iota + 1
	// PricingModeDynamic charges BaseFee plus per-kilometer and per-minute
	// components derived from a route estimate.
	PricingModeDynamic
)

// ErrPricingConfigIsNotConstructed is returned when a PricingConfig was not
// created via NewPricingConfig.
var ErrPricingConfigIsNotConstructed = errs.NewValueIsRequiredError("pricing config")

// PricingConfig is the pricing policy for delivery and service fees.
// All monetary amounts are whole VND.
type PricingConfig struct {
	mode              PricingMode
	flatFee           int64
	baseFee           int64
	perKmFee          float64
	perMinFee         float64
	minFee            int64
	maxFee            int64
	serviceFeePercent float64

	guard guard.ConstructorGuard
}

// NewPricingConfig creates a pricing policy.
//
// minFee and maxFee bound the dynamic fee; a zero bound disables that side of
// the clamp. serviceFeePercent of zero disables the service fee entirely.
func NewPricingConfig(
	mode PricingMode,
	flatFee int64,
	baseFee int64,
	perKmFee float64,
	perMinFee float64,
	minFee int64,
	maxFee int64,
	serviceFeePercent float64,
) (PricingConfig, error) {
	if mode != PricingModeFlat && mode != PricingModeDynamic {
		return PricingConfig{}, errs.NewValueIsInvalidError("pricing mode")
	}
	if flatFee < 0 || baseFee < 0 || perKmFee < 0 || perMinFee < 0 {
		return PricingConfig{}, errs.NewValueIsInvalidError("fee component")
	}
	if minFee < 0 || maxFee < 0 {
		return PricingConfig{}, errs.NewValueIsInvalidError("fee bound")
	}
	if minFee > 0 && maxFee > 0 && minFee > maxFee {
		return PricingConfig{}, errs.NewValueIsInvalidError("fee bounds")
	}
	if serviceFeePercent < 0 || serviceFeePercent > 100 {
		return PricingConfig{}, errs.NewValueIsOutOfRangeError("service fee percent", serviceFeePercent, 0, 100)
	}

	return PricingConfig{
		mode:              mode,
		flatFee:           flatFee,
		baseFee:           baseFee,
		perKmFee:          perKmFee,
		perMinFee:         perMinFee,
		minFee:            minFee,
		maxFee:            maxFee,
		serviceFeePercent: serviceFeePercent,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PricingConfig was created through NewPricingConfig.
func (c PricingConfig) Validate() error {
	return c.guard.Validate(ErrPricingConfigIsNotConstructed)
}

// Mode returns the configured pricing mode.
func (c PricingConfig) Mode() PricingMode {
	return c.mode
}

// FeeCalculator computes the delivery fee and service fee for an order.
//
// The calculator is deterministic: the same pricing policy, line items and
// route estimate always produce the same totals.
type FeeCalculator struct {
	config PricingConfig
}

// NewFeeCalculator creates a FeeCalculator with the given pricing policy.
func NewFeeCalculator(config PricingConfig) (FeeCalculator, error) {
	if err := config.Validate(); err != nil {
		return FeeCalculator{}, err
	}
	return FeeCalculator{config: config}, nil
}

// DeliveryFee computes the delivery fee for a route estimate.
//
// In flat mode the estimate is ignored. In dynamic mode a nil estimate means
// the destination could not be priced by distance, and the flat fee is
// charged instead. Negative estimate components are treated as zero.
func (f FeeCalculator) DeliveryFee(estimate *kernel.RouteEstimate) int64 {
	if f.config.mode == PricingModeFlat || estimate == nil {
		return f.config.flatFee
	}

	e := estimate.Floored()
	fee := float64(f.config.baseFee) +
		f.config.perKmFee*e.DistanceKm +
		f.config.perMinFee*e.DurationMin
	rounded := int64(math.Round(fee))

	if f.config.minFee > 0 && rounded < f.config.minFee {
		rounded = f.config.minFee
	}
	if f.config.maxFee > 0 && rounded > f.config.maxFee {
		rounded = f.config.maxFee
	}
	return rounded
}

// ServiceFee computes the service fee from the items subtotal.
// A zero percentage yields a zero fee.
func (f FeeCalculator) ServiceFee(itemsTotal int64) int64 {
	if f.config.serviceFeePercent <= 0 || itemsTotal <= 0 {
		return 0
	}
	return int64(math.Round(float64(itemsTotal) * f.config.serviceFeePercent / 100))
}

// Quote computes the full totals for a set of line items and a route estimate.
func (f FeeCalculator) Quote(items []order.LineItem, estimate *kernel.RouteEstimate) (order.Totals, error) {
	itemsTotal := order.ItemsTotal(items)
	return order.NewTotals(itemsTotal, f.DeliveryFee(estimate), f.ServiceFee(itemsTotal))
}

package order

import (
	"fmt"

	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MeatType is the kind of meat a customer can order
type MeatType string

const (
	MeatGoat    MeatType = "goat"
	MeatPork    MeatType = "pork"
	MeatBeef    MeatType = "beef"
	MeatChicken MeatType = "chicken"
)

// Seasoning is the seasoning package applied to an order
type Seasoning string

const (
	SeasoningNone      Seasoning = "none"
	SeasoningBasic     Seasoning = "basic"
	SeasoningCurry     Seasoning = "curry"
	SeasoningBrownStew Seasoning = "brown_stew"
)

// PepperLevel is the requested spice level
type PepperLevel string

const (
	PepperNone   PepperLevel = "none"
	PepperMild   PepperLevel = "mild"
	PepperMedium PepperLevel = "medium"
	PepperHot    PepperLevel = "hot"
)

// ParseMeatType validates a meat type string
func ParseMeatType(s string) (MeatType, error) {
	switch m := MeatType(s); m {
	case MeatGoat, MeatPork, MeatBeef, MeatChicken:
		return m, nil
	}
	return "", shared.NewInvalidInputError(fmt.Sprintf("Unknown meat type %q", s))
}

// ParseSeasoning validates a seasoning package string
func ParseSeasoning(s string) (Seasoning, error) {
	switch v := Seasoning(s); v {
	case SeasoningNone, SeasoningBasic, SeasoningCurry, SeasoningBrownStew:
		return v, nil
	}
	return "", shared.NewInvalidInputError(fmt.Sprintf("Unknown seasoning package %q", s))
}

// ParsePepperLevel validates a pepper level string
func ParsePepperLevel(s string) (PepperLevel, error) {
	switch v := PepperLevel(s); v {
	case PepperNone, PepperMild, PepperMedium, PepperHot:
		return v, nil
	}
	return "", shared.NewInvalidInputError(fmt.Sprintf("Unknown pepper level %q", s))
}

// MaxOrderPounds caps a single order well inside the pounds_ordered column.
const MaxOrderPounds = 10000

// maxLineTotal is the first amount that does not fit a DECIMAL(14,2) column.
var maxLineTotal = decimal.New(1, 12)

// PriceList holds the prices, fees and delivery rules for one location.
// All amounts are in JMD.
type PriceList struct {
	Location      string
	MinimumPounds decimal.Decimal
	DeliveryFee   decimal.Decimal
	PerPound      map[MeatType]decimal.Decimal
	SeasoningFees map[Seasoning]decimal.Decimal
}

// DefaultPriceList returns the St. Thomas price list
func DefaultPriceList() PriceList {
	return PriceList{
		Location:      "St. Thomas",
		MinimumPounds: decimal.NewFromInt(5),
		DeliveryFee:   decimal.NewFromInt(300),
		PerPound: map[MeatType]decimal.Decimal{
			MeatGoat:    decimal.NewFromInt(1400),
			MeatPork:    decimal.NewFromInt(500),
			MeatBeef:    decimal.NewFromInt(500),
			MeatChicken: decimal.NewFromInt(400),
		},
		SeasoningFees: map[Seasoning]decimal.Decimal{
			SeasoningNone:      decimal.Zero,
			SeasoningBasic:     decimal.NewFromInt(200),
			SeasoningCurry:     decimal.NewFromInt(250),
			SeasoningBrownStew: decimal.NewFromInt(250),
		},
	}
}

// Quote is the priced breakdown of a single-line order
type Quote struct {
	MeatType      MeatType
	Seasoning     Seasoning
	Pounds        decimal.Decimal
	PricePerPound decimal.Decimal
	BaseCost      decimal.Decimal
	SeasoningCost decimal.Decimal
	DeliveryFee   decimal.Decimal
	Total         decimal.Decimal
}

// ItemTotal is the line total stored on the order item; delivery is excluded
func (q Quote) ItemTotal() decimal.Decimal {
	return q.BaseCost.Add(q.SeasoningCost)
}

// TotalJMD is the grand total truncated to whole dollars for display
func (q Quote) TotalJMD() int64 {
	return q.Total.Truncate(0).IntPart()
}

// MinimumOrderError builds the rejection returned for orders under the minimum
func (p PriceList) MinimumOrderError() *shared.DomainError {
	return shared.NewDomainError(shared.ErrMinimumOrder.Code,
		fmt.Sprintf("Minimum order for %s is %s lbs.", p.Location, p.MinimumPounds.String()))
}

// Quote prices an order of the given pounds.
func (p PriceList) Quote(meat MeatType, seasoning Seasoning, pounds decimal.Decimal) (Quote, error) {
	if !pounds.IsPositive() {
		return Quote{}, shared.NewInvalidInputError("Pounds must be greater than zero")
	}
	if pounds.GreaterThan(decimal.NewFromInt(MaxOrderPounds)) {
		return Quote{}, shared.NewInvalidInputError(fmt.Sprintf("Orders are limited to %d lbs", MaxOrderPounds))
	}
	if pounds.LessThan(p.MinimumPounds) {
		return Quote{}, p.MinimumOrderError()
	}
	perPound, ok := p.PerPound[meat]
	if !ok {
		return Quote{}, shared.NewInvalidInputError(fmt.Sprintf("No price configured for %q", meat))
	}
	fee, ok := p.SeasoningFees[seasoning]
	if !ok {
		return Quote{}, shared.NewInvalidInputError(fmt.Sprintf("No fee configured for %q", seasoning))
	}

	base := perPound.Mul(pounds)
	if total := base.Add(fee).Add(p.DeliveryFee); !total.LessThan(maxLineTotal) {
		return Quote{}, shared.NewInvalidInputError("Order total is too large")
	}
	return Quote{
		MeatType:      meat,
		Seasoning:     seasoning,
		Pounds:        pounds,
		PricePerPound: perPound,
		BaseCost:      base,
		SeasoningCost: fee,
		DeliveryFee:   p.DeliveryFee,
		Total:         base.Add(fee).Add(p.DeliveryFee),
	}, nil
}

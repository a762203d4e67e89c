package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"motorent-backend/internal/domain"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// Quote is the result of pricing a rental period against a price list entry
// and an optional discount.
type Quote struct {
	Days           int32
	DailyRate      int64
	BasePrice      int64
	DiscountAmount int64
	TotalPrice     int64
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct. The
// components must be zero-padded: dates are stored and compared as text, and
// only the canonical form keeps string order equal to calendar order.
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("day must be between 1 and 31")
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// InclusiveDays computes the rental duration in days, counting both the start
// and the end date. A same-day rental is 1 day.
func InclusiveDays(start, end Date) (int32, error) {
	s := start.toTime()
	e := end.toTime()
	if e.Before(s) {
		return 0, fmt.Errorf("end date must be >= start date")
	}
	return int32(e.Sub(s).Hours()/24) + 1, nil
}

// CalculateRentalPrice computes the base price (daily rate x inclusive day
// count) and the discount amount for a rental period. Pure function: no I/O,
// no clock access beyond the supplied quote date.
//
// The discount amount is zero when no discount is given or the discount is
// not applicable on quoteDate; the amount is clamped so it never exceeds the
// base price.
func CalculateRentalPrice(priceList *domain.PriceList, discount *domain.Discount, startDate, endDate, quoteDate string) (Quote, error) {
	if priceList == nil || !priceList.IsActive {
		return Quote{}, domain.NewValidationError("motorbike has no active price list entry")
	}
	if priceList.DailyRate <= 0 {
		return Quote{}, domain.NewValidationError("motorbike daily rate must be positive")
	}

	start, err := ParseDate(startDate)
	if err != nil {
		return Quote{}, domain.NewValidationError(fmt.Sprintf("invalid start date: %v", err))
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return Quote{}, domain.NewValidationError(fmt.Sprintf("invalid end date: %v", err))
	}

	days, err := InclusiveDays(start, end)
	if err != nil {
		return Quote{}, domain.NewValidationError(err.Error())
	}

	basePrice := priceList.DailyRate * int64(days)
	discountAmount := DiscountAmount(discount, basePrice, quoteDate)

	return Quote{
		Days:           days,
		DailyRate:      priceList.DailyRate,
		BasePrice:      basePrice,
		DiscountAmount: discountAmount,
		TotalPrice:     basePrice - discountAmount,
	}, nil
}

// DiscountAmount returns the amount a discount takes off the given base
// price: percentage-of-base or fixed value, whichever the record specifies,
// clamped to not exceed basePrice. Zero for a missing or inapplicable
// discount.
func DiscountAmount(discount *domain.Discount, basePrice int64, quoteDate string) int64 {
	if discount == nil || !discount.ApplicableOn(quoteDate) {
		return 0
	}

	var amount int64
	switch {
	case discount.Percentage != nil:
		amount = basePrice * int64(*discount.Percentage) / 100
	case discount.FixedAmount != nil:
		amount = *discount.FixedAmount
	}

	if amount > basePrice {
		amount = basePrice
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}

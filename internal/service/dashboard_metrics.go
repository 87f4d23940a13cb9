package service

import (
	"fmt"
	"math"
	"time"

	"github.com/SohamNaik26/wealth-management/internal/model"
)

// RoundingPrecision is the multiplier used to round monetary values and
// percentages to two decimal places.
const RoundingPrecision = 100

// RecentTransactionLimit is the number of entries returned by
// RecentTransactions for the dashboard activity feed.
const RecentTransactionLimit = 5

//
// DERIVED METRIC FUNCTIONS
//
// Pure, stateless computations over store snapshots. Nothing here caches:
// every dashboard read recomputes from the current collections. Given the
// same snapshot they always return the same output.
//

// TotalValue sums quantity times current price across all assets.
func TotalValue(assets []model.Asset) float64 {
	var total float64
	for _, a := range assets {
		total += a.MarketValue()
	}
	return total
}

// TypeBucket is one slice of the asset allocation chart.
type TypeBucket struct {
	Label string
	Value float64
}

// TypeDistribution groups assets by asset_type, summing market value per
// group. Buckets appear in first-seen order so chart colors stay stable
// across recomputations. The sum of all bucket values equals TotalValue.
func TypeDistribution(assets []model.Asset) []TypeBucket {
	index := make(map[string]int)
	buckets := []TypeBucket{}
	for _, a := range assets {
		i, ok := index[a.AssetType]
		if !ok {
			i = len(buckets)
			index[a.AssetType] = i
			buckets = append(buckets, TypeBucket{Label: a.AssetType})
		}
		buckets[i].Value += a.MarketValue()
	}
	return buckets
}

// GainLossPercent computes the percentage gain or loss of an asset against
// its purchase price, rounded to two decimal places. When the purchase
// price is zero the percentage is undefined; ok is false and callers must
// render a neutral placeholder instead of the value.
func GainLossPercent(purchasePrice, currentPrice float64) (percent float64, ok bool) {
	if purchasePrice == 0 {
		return 0, false
	}
	percent = (currentPrice - purchasePrice) / purchasePrice * 100
	return math.Round(percent*RoundingPrecision) / RoundingPrecision, true
}

// GoalProgress computes the percentage of a goal reached, capped at 100.
// When the target amount is zero the percentage is undefined and ok is false.
func GoalProgress(currentAmount, targetAmount float64) (percent float64, ok bool) {
	if targetAmount == 0 {
		return 0, false
	}
	return math.Min(currentAmount/targetAmount*100, 100), true
}

// TimeRemaining formats the calendar time between now and a goal's target
// date. Past dates yield "Overdue", the current day "Due today", and future
// dates a breakdown in the largest applicable units using a 365-day year
// and 30-day month approximation.
func TimeRemaining(now, targetDate time.Time) string {
	diffDays := int(math.Ceil(targetDate.Sub(now).Hours() / 24))

	if diffDays < 0 {
		return "Overdue"
	}
	if diffDays == 0 {
		return "Due today"
	}

	years := diffDays / 365
	months := (diffDays % 365) / 30
	days := diffDays % 30

	switch {
	case years > 0:
		if months > 0 {
			return pluralize(years, "yr") + " " + pluralize(months, "mo")
		}
		return pluralize(years, "yr")
	case months > 0:
		if days > 0 {
			return pluralize(months, "mo") + " " + pluralize(days, "day")
		}
		return pluralize(months, "mo")
	default:
		return pluralize(days, "day")
	}
}

// RecentTransactions returns the last n entries of the collection with the
// most-recently-inserted first. Insertion order, not the Date field, defines
// recency.
func RecentTransactions(transactions []model.Transaction, n int) []model.Transaction {
	if n > len(transactions) {
		n = len(transactions)
	}
	out := make([]model.Transaction, 0, n)
	for i := len(transactions) - 1; i >= len(transactions)-n; i-- {
		out = append(out, transactions[i])
	}
	return out
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func round2(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

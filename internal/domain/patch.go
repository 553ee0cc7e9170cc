package domain

import (
	"fmt"
	"time"
)

// ProgressionPatch names the fields of a UserProgression to overwrite.
// Nil fields are left untouched by the store.
type ProgressionPatch struct {
	Balance        *int64
	XP             *int64
	Level          *int
	LastCoinClaim  *time.Time
	LastXPClaim    *time.Time
	LastDailyClaim *time.Time
	DailyStreak    *int
	DailySpamCount *int
}

// IsEmpty reports whether the patch names no field at all
func (p ProgressionPatch) IsEmpty() bool {
	return p.Balance == nil && p.XP == nil && p.Level == nil &&
		p.LastCoinClaim == nil && p.LastXPClaim == nil && p.LastDailyClaim == nil &&
		p.DailyStreak == nil && p.DailySpamCount == nil
}

// Validate rejects negative counters before anything reaches storage.
func (p ProgressionPatch) Validate() error {
	if p.Balance != nil && *p.Balance < 0 {
		return fmt.Errorf("%w: balance %d is negative", ErrInvalidInput, *p.Balance)
	}
	if p.XP != nil && *p.XP < 0 {
		return fmt.Errorf("%w: xp %d is negative", ErrInvalidInput, *p.XP)
	}
	if p.Level != nil && *p.Level < 0 {
		return fmt.Errorf("%w: level %d is negative", ErrInvalidInput, *p.Level)
	}
	if p.DailyStreak != nil && *p.DailyStreak < 0 {
		return fmt.Errorf("%w: daily streak %d is negative", ErrInvalidInput, *p.DailyStreak)
	}
	if p.DailySpamCount != nil && *p.DailySpamCount < 0 {
		return fmt.Errorf("%w: daily spam count %d is negative", ErrInvalidInput, *p.DailySpamCount)
	}
	return nil
}

// ApplyTo merges the named fields into a snapshot.
func (p ProgressionPatch) ApplyTo(u *UserProgression) {
	if p.Balance != nil {
		u.Balance = *p.Balance
	}
	if p.XP != nil {
		u.XP = *p.XP
	}
	if p.Level != nil {
		u.Level = *p.Level
	}
	if p.LastCoinClaim != nil {
		u.LastCoinClaim = *p.LastCoinClaim
	}
	if p.LastXPClaim != nil {
		u.LastXPClaim = *p.LastXPClaim
	}
	if p.LastDailyClaim != nil {
		d := *p.LastDailyClaim
		u.LastDailyClaim = &d
	}
	if p.DailyStreak != nil {
		u.DailyStreak = *p.DailyStreak
	}
	if p.DailySpamCount != nil {
		u.DailySpamCount = *p.DailySpamCount
	}
}

// ItemPatch names the catalog fields to overwrite on a ShopItem.
type ItemPatch struct {
	Name        *string
	Application *string
	Category    *string
	Price       *int64
	ProductLink *string
}

// IsEmpty reports whether the patch names no field at all
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Application == nil && p.Category == nil && p.Price == nil && p.ProductLink == nil
}

// Validate rejects negative prices and blank names or links.
func (p ItemPatch) Validate() error {
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: price %d is negative", ErrInvalidInput, *p.Price)
	}
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("%w: item name is empty", ErrInvalidInput)
	}
	if p.ProductLink != nil && *p.ProductLink == "" {
		return fmt.Errorf("%w: product link is empty", ErrInvalidInput)
	}
	return nil
}

package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/metrics"
	"github.com/osse101/RocksBot_Go/internal/progression"
	"github.com/osse101/RocksBot_Go/internal/repository"
)

// Service defines the interface for progression and balance operations
type Service interface {
	HandleMessage(ctx context.Context, key domain.UserKey, now time.Time) (*MessageResult, error)
	ClaimDaily(ctx context.Context, key domain.UserKey, now time.Time) (*DailyResult, error)
	GetProfile(ctx context.Context, key domain.UserKey) (*Profile, error)
	GetDropRates(ctx context.Context, key domain.UserKey) (*progression.DropRates, error)
	GiveCoins(ctx context.Context, key domain.UserKey, amount int64) (*BalanceChange, error)
	RemoveCoins(ctx context.Context, key domain.UserKey, amount int64) (*BalanceChange, error)
}

type service struct {
	repo repository.Progression
	loc  *time.Location // calendar used for daily claims
	rnd  progression.Rand
}

// NewService creates a new economy service. loc decides where "today" ends
// for daily claims; nil means UTC.
func NewService(repo repository.Progression, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo: repo,
		loc:  loc,
		rnd:  progression.DefaultRand(),
	}
}

func (s *service) load(ctx context.Context, key domain.UserKey) (*domain.UserProgression, error) {
	u, err := s.repo.GetOrCreate(ctx, key)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgressionFailedFmt, key, err)
	}
	return u, nil
}

func (s *service) save(ctx context.Context, key domain.UserKey, patch domain.ProgressionPatch) error {
	if err := s.repo.PartialUpdate(ctx, key, patch); err != nil {
		return fmt.Errorf(ErrMsgUpdateProgressionFailedFmt, key, err)
	}
	return nil
}

// HandleMessage grants the passive coin and XP rewards a message qualifies for.
// Both cooldowns are checked independently and everything is saved in one update.
func (s *service) HandleMessage(ctx context.Context, key domain.UserKey, now time.Time) (*MessageResult, error) {
	u, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}

	result := &MessageResult{NewLevel: u.Level, NewBalance: u.Balance}
	coinReady := progression.IsEligible(u.LastCoinClaim, now, progression.RewardCoin.Cooldown())
	xpReady := progression.IsEligible(u.LastXPClaim, now, progression.RewardXP.Cooldown())
	if !coinReady && !xpReady {
		return result, nil
	}

	luck := progression.CalculateLuckMultiplier(u.DailyStreak)
	var patch domain.ProgressionPatch

	if coinReady {
		result.CoinsEarned = int64(progression.EvaluatePassiveReward(progression.RewardCoin, u.Level, luck, s.rnd))
		result.NewBalance = u.Balance + result.CoinsEarned
		patch.Balance = &result.NewBalance
		patch.LastCoinClaim = &now
	}

	if xpReady {
		result.XPEarned = int64(progression.EvaluatePassiveReward(progression.RewardXP, u.Level, luck, s.rnd))
		lr := progression.ApplyXPGain(u.XP, result.XPEarned, u.Level)
		patch.XP = &lr.XP
		patch.LastXPClaim = &now
		if lr.LeveledUp {
			result.LeveledUp = true
			result.NewLevel = lr.Level
			patch.Level = &result.NewLevel
		}
	}

	if err := s.save(ctx, key, patch); err != nil {
		return nil, err
	}

	if result.CoinsEarned > 0 {
		metrics.CoinsAwarded.WithLabelValues(metrics.SourceChat).Add(float64(result.CoinsEarned))
	}
	if result.XPEarned > 0 {
		metrics.XPAwarded.Add(float64(result.XPEarned))
	}
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPassiveRewardGranted, "user", key.String(), "coins", result.CoinsEarned, "xp", result.XPEarned)
	if result.LeveledUp {
		metrics.LevelUps.Inc()
		log.Info(LogMsgLevelUp, "user", key.String(), "level", result.NewLevel)
	}
	return result, nil
}

// ClaimDaily evaluates and records a daily claim attempt.
func (s *service) ClaimDaily(ctx context.Context, key domain.UserKey, now time.Time) (*DailyResult, error) {
	u, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}

	today := domain.CalendarDate(now, s.loc)
	out := progression.EvaluateDailyClaim(today, u.LastDailyClaim, u.DailyStreak, u.DailySpamCount, u.Level)
	result := &DailyResult{
		Status:     out.Status,
		Streak:     out.NewStreak,
		NewBalance: u.Balance,
	}
	log := logger.FromContext(ctx)

	switch out.Status {
	case progression.DailyGranted:
		result.Reward = out.Reward
		result.NewBalance = u.Balance + out.Reward
		spam := 0
		if err := s.save(ctx, key, domain.ProgressionPatch{
			Balance:        &result.NewBalance,
			LastDailyClaim: &today,
			DailyStreak:    &result.Streak,
			DailySpamCount: &spam,
		}); err != nil {
			return nil, err
		}
		metrics.CoinsAwarded.WithLabelValues(metrics.SourceDaily).Add(float64(out.Reward))
		log.Info(LogMsgDailyGranted, "user", key.String(), "reward", out.Reward, "streak", out.NewStreak)

	case progression.DailyThrottled:
		result.Message = out.Message()
		if out.Warn {
			result.WarningText = progression.SpamWarningNotice
		}
		if err := s.save(ctx, key, domain.ProgressionPatch{DailySpamCount: &out.NewSpamCount}); err != nil {
			return nil, err
		}
		log.Debug(LogMsgDailyThrottled, "user", key.String(), "spam_count", out.NewSpamCount)

	case progression.DailyIgnored:
		log.Debug(LogMsgDailyIgnored, "user", key.String())
	}

	metrics.DailyClaims.WithLabelValues(out.Status.String()).Inc()
	return result, nil
}

// GetProfile returns balance, level, XP progress, streak and luck.
func (s *service) GetProfile(ctx context.Context, key domain.UserKey) (*Profile, error) {
	u, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Balance:        u.Balance,
		Level:          u.Level,
		XP:             u.XP,
		XPNeeded:       progression.XPNeeded(u.Level),
		DailyStreak:    u.DailyStreak,
		LuckMultiplier: progression.CalculateLuckMultiplier(u.DailyStreak),
	}, nil
}

func (s *service) GetDropRates(ctx context.Context, key domain.UserKey) (*progression.DropRates, error) {
	u, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	rates := progression.CalculateDropRates(u.Level, u.DailyStreak)
	return &rates, nil
}

// GiveCoins credits a user's balance.
func (s *service) GiveCoins(ctx context.Context, key domain.UserKey, amount int64) (*BalanceChange, error) {
	if amount <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.ErrInvalidInput)
	}
	u, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	change := &BalanceChange{Before: u.Balance, After: u.Balance + amount}
	if err := s.save(ctx, key, domain.ProgressionPatch{Balance: &change.After}); err != nil {
		return nil, err
	}
	metrics.AdminAdjustments.WithLabelValues(OperationGive).Inc()
	logger.FromContext(ctx).Info(LogMsgCoinsGiven, "user", key.String(), "amount", amount, "balance", change.After)
	return change, nil
}

// RemoveCoins debits a user's balance, never below zero.
func (s *service) RemoveCoins(ctx context.Context, key domain.UserKey, amount int64) (*BalanceChange, error) {
	if amount <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.ErrInvalidInput)
	}
	u, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	change := &BalanceChange{Before: u.Balance, After: max(u.Balance-amount, 0)}
	if err := s.save(ctx, key, domain.ProgressionPatch{Balance: &change.After}); err != nil {
		return nil, err
	}
	metrics.AdminAdjustments.WithLabelValues(OperationRemove).Inc()
	logger.FromContext(ctx).Info(LogMsgCoinsRemoved, "user", key.String(), "amount", amount, "balance", change.After)
	return change, nil
}

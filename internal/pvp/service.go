package pvp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/engine"
	"github.com/getgifts/starcase/internal/event"
	"github.com/getgifts/starcase/internal/logger"
	"github.com/getgifts/starcase/internal/repository"
)

// Service defines the interface for PvP wheel matches
type Service interface {
	Join(ctx context.Context, userID string, bet int) (*domain.Match, error)
	Spin(ctx context.Context, userID string, matchID uuid.UUID) (*domain.Match, error)
	Get(ctx context.Context, matchID uuid.UUID) (*domain.Match, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	repo        repository.Ledger
	engine      *engine.Engine
	bus         event.Bus
	reg         *registry
	joinTimeout time.Duration
	retryDelay  time.Duration
	now         func() time.Time

	mu     sync.Mutex // serializes match resolution
	timers map[uuid.UUID]*time.Timer
	wg     sync.WaitGroup
}

// NewService creates a new PvP service
func NewService(repo repository.Ledger, eng *engine.Engine, bus event.Bus, joinTimeout time.Duration) Service {
	if joinTimeout <= 0 {
		joinTimeout = DefaultJoinTimeout
	}
	return &service{
		repo:        repo,
		engine:      eng,
		bus:         bus,
		reg:         newRegistry(),
		joinTimeout: joinTimeout,
		retryDelay:  CreditRetryDelay,
		now:         time.Now,
		timers:      make(map[uuid.UUID]*time.Timer),
	}
}

// Join stakes the bet, synthesizes an opponent and opens the match. The
// debit is final: the match resolves at the spin deadline even if the
// caller never spins.
func (s *service) Join(ctx context.Context, userID string, bet int) (*domain.Match, error) {
	log := logger.FromContext(ctx)

	if bet <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrBetMustBePositive, bet)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Balance < bet {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientBalance, bet, profile.Balance)
	}
	profile.Balance -= bet

	if err := tx.UpdateProfile(ctx, *profile); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit stake: %w", err)
	}

	opponentBet := s.engine.OpponentBet(bet)
	now := s.now()
	match := &domain.Match{
		ID:    uuid.New(),
		State: domain.MatchStateCountdown,
		Caller: domain.MatchPlayer{
			UserID: userID,
			Name:   profile.Username,
			Bet:    bet,
		},
		Opponent: domain.MatchPlayer{
			Name:     opponentNames[opponentBet%len(opponentNames)],
			Bet:      opponentBet,
			Opponent: true,
		},
		CreatedAt:    now,
		SpinDeadline: now.Add(s.joinTimeout),
	}

	s.reg.Put(match)
	s.armDeadline(match.ID, s.joinTimeout)

	log.Info("match joined",
		"match_id", match.ID,
		"user_id", userID,
		"bet", bet,
		"opponent_bet", opponentBet)

	return match, nil
}

// Spin resolves the caller's match immediately instead of waiting for the
// deadline. Only the caller who staked the bet may spin.
func (s *service) Spin(ctx context.Context, userID string, matchID uuid.UUID) (*domain.Match, error) {
	match, ok := s.reg.Get(matchID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotFound, matchID)
	}
	if match.Caller.UserID != userID {
		return nil, fmt.Errorf("%w: match belongs to another caller", domain.ErrInvalidInput)
	}

	return s.resolve(ctx, matchID)
}

// Get returns a snapshot of a live or recently resolved match
func (s *service) Get(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, ok := s.reg.Get(matchID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotFound, matchID)
	}
	snapshot := *match
	return &snapshot, nil
}

// Shutdown cancels pending deadline timers and waits for in-flight
// resolutions. Unresolved matches stay registered; on restart their stakes
// are already committed, which is the documented behavior for abandonment.
func (s *service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for id, timer := range s.timers {
		if timer.Stop() {
			// Timer never fired; release its pending waiter.
			s.wg.Done()
		}
		delete(s.timers, id)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *service) armDeadline(matchID uuid.UUID, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armLocked(matchID, d)
}

// armLocked schedules a resolution attempt. Callers hold s.mu. Any timer
// already registered for the match is stopped first so the match never has
// two pending attempts.
func (s *service) armLocked(matchID uuid.UUID, d time.Duration) {
	if timer, ok := s.timers[matchID]; ok {
		if timer.Stop() {
			s.wg.Done()
		}
	}

	s.wg.Add(1)
	s.timers[matchID] = time.AfterFunc(d, func() {
		defer s.wg.Done()
		// The caller walked away; the wheel spins regardless.
		ctx := context.Background()
		if _, err := s.resolve(ctx, matchID); err != nil {
			logger.FromContext(ctx).Debug("deadline resolution skipped", "match_id", matchID, "error", err)
		}
	})
}

// resolve performs the exactly-once transition to the result state and
// credits the payout on a caller win.
func (s *service) resolve(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	match, ok := s.reg.Get(matchID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotFound, matchID)
	}

	switch match.State {
	case domain.MatchStateResult:
		return nil, fmt.Errorf("%w: %s", domain.ErrMatchAlreadyDone, matchID)
	case domain.MatchStateWaiting:
		return nil, fmt.Errorf("%w: no opponent yet", domain.ErrMatchNotSpinnable)
	}

	match.State = domain.MatchStateSpinning
	outcome := s.engine.ResolvePvP(match.Caller.Bet, match.Opponent.Bet)

	winnerName := match.Opponent.Name
	if outcome.CallerWins {
		winnerName = match.Caller.Name
		if err := s.credit(ctx, match.Caller.UserID, outcome.Payout); err != nil {
			// Leave the match spinnable and retry shortly; the pot stays
			// owed until the credit lands.
			match.State = domain.MatchStateCountdown
			s.armLocked(matchID, s.retryDelay)
			log.Warn("payout credit failed, retry scheduled",
				"match_id", matchID,
				"payout", outcome.Payout,
				"error", err)
			return nil, err
		}
	}

	completedAt := s.now()
	match.State = domain.MatchStateResult
	match.CompletedAt = &completedAt
	match.Result = &domain.MatchResult{
		WinnerName: winnerName,
		CallerWon:  outcome.CallerWins,
		Pot:        outcome.Pot,
		Payout:     outcome.Payout,
		Stop:       outcome.Stop,
	}
	s.reg.Complete(match)

	if timer, ok := s.timers[matchID]; ok {
		if timer.Stop() {
			// Timer never fired; release its pending waiter.
			s.wg.Done()
		}
		delete(s.timers, matchID)
	}

	log.Info("match resolved",
		"match_id", matchID,
		"winner", winnerName,
		"caller_won", outcome.CallerWins,
		"pot", outcome.Pot,
		"payout", outcome.Payout)
	s.publish(ctx, event.NewMatchCompletedEvent(
		matchID, match.Caller.UserID, winnerName, outcome.CallerWins, outcome.Pot, outcome.Payout))

	return match, nil
}

func (s *service) credit(ctx context.Context, userID string, amount int) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	profile.Balance += amount

	if err := tx.UpdateProfile(ctx, *profile); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payout: %w", err)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "event_type", evt.Type, "error", err)
	}
}

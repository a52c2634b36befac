package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"wager-escrow-service/internal/core/domain"
	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const settlementCacheTTL = 24 * time.Hour

// SettlementConfig holds the settlement engine's tunables.
type SettlementConfig struct {
	HouseAddress          string
	FeeRate               decimal.Decimal // e.g. 0.10
	RequiredConfirmations int64
	MinStake              int64
}

// SettlementEngineImpl implements ports.SettlementEngine. It is the
// source of truth for "did money actually arrive": stakes are
// validated against the ledger, and payouts/refunds are final only
// after the required confirmation depth.
type SettlementEngineImpl struct {
	walletRepo     ports.WalletRepository
	settlementRepo ports.SettlementRepository
	transactor     ports.DBTransactor
	tracker        ports.GameTracker
	cipher         ports.Cipher
	keyring        ports.Keyring
	keypairSvc     ports.KeypairService
	ledger         ports.LedgerClient
	cache          ports.SettlementCache
	cfg            SettlementConfig
	log            zerolog.Logger

	// Per-game exclusive sections: settlement for a game must never
	// run concurrently with a stake validation or another settlement
	// for the same game.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	statsMu sync.Mutex
	stats   domain.EscrowStats
}

// NewSettlementEngine creates a new SettlementEngineImpl.
func NewSettlementEngine(
	walletRepo ports.WalletRepository,
	settlementRepo ports.SettlementRepository,
	transactor ports.DBTransactor,
	tracker ports.GameTracker,
	cipher ports.Cipher,
	keyring ports.Keyring,
	keypairSvc ports.KeypairService,
	ledger ports.LedgerClient,
	cache ports.SettlementCache,
	cfg SettlementConfig,
	log zerolog.Logger,
) *SettlementEngineImpl {
	return &SettlementEngineImpl{
		walletRepo:     walletRepo,
		settlementRepo: settlementRepo,
		transactor:     transactor,
		tracker:        tracker,
		cipher:         cipher,
		keyring:        keyring,
		keypairSvc:     keypairSvc,
		ledger:         ledger,
		cache:          cache,
		cfg:            cfg,
		log:            log,
		locks:          make(map[string]*sync.Mutex),
	}
}

// gameLock returns the mutex serializing operations for one game.
func (s *SettlementEngineImpl) gameLock(gameID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	mu, ok := s.locks[gameID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[gameID] = mu
	}
	return mu
}

// SplitPot computes the fee split for a pot. The winner gets
// floor(balance × (1−feeRate)); the house fee absorbs the rounding
// remainder, so the two always sum to balance exactly.
func SplitPot(balance int64, feeRate decimal.Decimal) (winnerAmount, houseAmount int64) {
	winner := decimal.NewFromInt(balance).
		Mul(decimal.NewFromInt(1).Sub(feeRate)).
		Floor()
	winnerAmount = winner.IntPart()
	houseAmount = balance - winnerAmount
	return winnerAmount, houseAmount
}

// ValidateStake checks a claimed stake against the ledger: the
// sender-side balance delta of the referenced transfer must equal the
// expected amount exactly. Client-reported amounts are never trusted.
func (s *SettlementEngineImpl) ValidateStake(ctx context.Context, signature string, expectedAmount int64) (bool, error) {
	info, err := s.ledger.GetTransaction(ctx, signature)
	if err != nil {
		return false, err
	}
	if info == nil || len(info.PreBalances) == 0 || len(info.PostBalances) == 0 {
		return false, nil
	}

	delta := info.PreBalances[0] - info.PostBalances[0]
	return delta == expectedAmount, nil
}

// Stake validates a player's transfer and records it. The per-game
// lock keeps the validation from racing a settlement's balance read.
func (s *SettlementEngineImpl) Stake(ctx context.Context, gameID string, player string, amount int64, signature string) error {
	if amount < s.cfg.MinStake {
		return apperror.ErrStakeBelowMinimum(s.cfg.MinStake)
	}

	mu := s.gameLock(gameID)
	mu.Lock()
	defer mu.Unlock()

	ok, err := s.ValidateStake(ctx, signature, amount)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrInvalidStake()
	}

	if err := s.tracker.RecordStake(gameID, player, amount); err != nil {
		return err
	}

	s.log.Info().
		Str("game_id", gameID).
		Str("player", player).
		Int64("amount", amount).
		Str("signature", signature).
		Msg("stake validated and recorded")
	return nil
}

// Settle distributes a game's custodial balance to the winner and the
// house. The settlement is final only once the transfer reaches the
// required confirmation depth; until then nothing is recorded and no
// stats move.
func (s *SettlementEngineImpl) Settle(ctx context.Context, gameID string, winnerAddress string) (*domain.SettlementRecord, error) {
	mu := s.gameLock(gameID)
	mu.Lock()
	defer mu.Unlock()

	// Fast path: a completed settlement re-invoked (caller abandoned
	// the first call between submission and confirmation) returns the
	// recorded outcome instead of touching the ledger again.
	if cached, err := s.cache.Get(ctx, gameID); err != nil {
		s.log.Warn().Err(err).Str("game_id", gameID).Msg("settlement cache check failed, falling through to datastore")
	} else if cached != nil {
		return unmarshalRecord(cached)
	}

	wallet, err := s.walletRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return nil, apperror.ErrDatastoreUnavailable(err)
	}
	if wallet == nil || wallet.Status != domain.WalletStatusActive {
		return nil, apperror.ErrWalletNotFound()
	}

	balance, err := s.ledger.GetBalance(ctx, wallet.PublicAddress)
	if err != nil {
		return nil, err
	}
	if balance <= 0 {
		return nil, apperror.ErrEmptyEscrow()
	}

	winnerAmount, houseAmount := SplitPot(balance, s.cfg.FeeRate)

	// A dust pot can floor the winner's share to zero; zero-amount
	// instructions are unsignable, so each leg is emitted only when
	// it moves funds. The two amounts always sum to balance, so at
	// least one instruction survives.
	instructions := make([]ports.TransferInstruction, 0, 2)
	if winnerAmount > 0 {
		instructions = append(instructions, ports.TransferInstruction{
			From: wallet.PublicAddress, To: winnerAddress, Amount: winnerAmount,
		})
	}
	if houseAmount > 0 {
		instructions = append(instructions, ports.TransferInstruction{
			From: wallet.PublicAddress, To: s.cfg.HouseAddress, Amount: houseAmount,
		})
	}

	signature, err := s.submitSigned(ctx, gameID, wallet, instructions)
	if err != nil {
		return nil, err
	}

	record := &domain.SettlementRecord{
		ID:            uuid.New(),
		GameID:        gameID,
		Signature:     signature,
		WinnerAddress: winnerAddress,
		TotalAmount:   balance,
		WinnerAmount:  winnerAmount,
		HouseAmount:   houseAmount,
		Status:        domain.SettlementStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.finalize(ctx, gameID, record); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("game_id", gameID).
		Str("winner", winnerAddress).
		Int64("total", balance).
		Int64("winner_amount", winnerAmount).
		Int64("house_amount", houseAmount).
		Str("signature", signature).
		Msg("settlement completed")

	return record, nil
}

// Refund returns each recorded stake to its player out of the
// custodial balance. When the balance falls short of the recorded
// stakes, refunds are scaled pro-rata with floor rounding and the
// shortfall is attributed to the house; refunds are never invented
// beyond what the wallet holds.
func (s *SettlementEngineImpl) Refund(ctx context.Context, gameID string) (*domain.SettlementRecord, error) {
	mu := s.gameLock(gameID)
	mu.Lock()
	defer mu.Unlock()

	state := s.tracker.Get(gameID)
	if state == nil || len(state.Players) == 0 {
		return nil, apperror.ErrGameNotFound()
	}

	wallet, err := s.walletRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return nil, apperror.ErrDatastoreUnavailable(err)
	}
	if wallet == nil || wallet.Status != domain.WalletStatusActive {
		return nil, apperror.ErrWalletNotFound()
	}

	balance, err := s.ledger.GetBalance(ctx, wallet.PublicAddress)
	if err != nil {
		return nil, err
	}
	if balance <= 0 {
		return nil, apperror.ErrEmptyEscrow()
	}

	refunds := splitRefunds(state.Stakes, balance)

	var refunded int64
	instructions := make([]ports.TransferInstruction, 0, len(state.Players)+1)
	for i, player := range state.Players {
		if refunds[i] <= 0 {
			continue
		}
		refunded += refunds[i]
		instructions = append(instructions, ports.TransferInstruction{
			From: wallet.PublicAddress, To: player, Amount: refunds[i],
		})
	}

	// Rounding remainder and any surplus over the recorded stakes go
	// to the house rather than being left stranded in the wallet.
	leftover := balance - refunded
	if leftover > 0 {
		instructions = append(instructions, ports.TransferInstruction{
			From: wallet.PublicAddress, To: s.cfg.HouseAddress, Amount: leftover,
		})
	}

	signature, err := s.submitSigned(ctx, gameID, wallet, instructions)
	if err != nil {
		return nil, err
	}

	record := &domain.SettlementRecord{
		ID:           uuid.New(),
		GameID:       gameID,
		Signature:    signature,
		TotalAmount:  balance,
		WinnerAmount: refunded,
		HouseAmount:  leftover,
		Status:       domain.SettlementStatusRefunded,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.finalize(ctx, gameID, record); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("game_id", gameID).
		Int64("total", balance).
		Int64("refunded", refunded).
		Int64("house_amount", leftover).
		Str("signature", signature).
		Msg("refund completed")

	return record, nil
}

// splitRefunds computes per-player refunds. Full stakes when the
// balance covers them; otherwise floor(stake × balance / total) each.
func splitRefunds(stakes []int64, balance int64) []int64 {
	var total int64
	for _, st := range stakes {
		total += st
	}

	refunds := make([]int64, len(stakes))
	if total <= balance {
		copy(refunds, stakes)
		return refunds
	}

	balDec := decimal.NewFromInt(balance)
	totalDec := decimal.NewFromInt(total)
	for i, st := range stakes {
		refunds[i] = decimal.NewFromInt(st).Mul(balDec).Div(totalDec).Floor().IntPart()
	}
	return refunds
}

// submitSigned decrypts the custodial secret, signs the transfer set,
// submits it, and waits for the required confirmation depth. The
// plaintext secret never outlives this call, on any path.
func (s *SettlementEngineImpl) submitSigned(
	ctx context.Context,
	gameID string,
	wallet *domain.EscrowWallet,
	instructions []ports.TransferInstruction,
) (string, error) {
	keyHex, err := s.keyring.WalletKey(gameID)
	if err != nil {
		return "", apperror.InternalError(err)
	}

	secretStr, err := s.cipher.Decrypt(wallet.EncryptedSecret, keyHex)
	if err != nil {
		return "", err
	}

	secret, err := decodeSecret(secretStr)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	defer zeroBytes(secret)

	signedTx, err := s.keypairSvc.SignTransfers(secret, instructions)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("signing transfers: %w", err))
	}

	signature, err := s.ledger.SubmitTransaction(ctx, signedTx)
	if err != nil {
		return "", err
	}

	if err := s.ledger.WaitForConfirmation(ctx, signature, s.cfg.RequiredConfirmations); err != nil {
		// A submitted-but-unconfirmed transfer is not a settlement.
		// Nothing is recorded; the caller re-checks ledger state and
		// re-invokes, which re-reads the wallet status first.
		s.log.Error().
			Err(err).
			Str("game_id", gameID).
			Str("signature", signature).
			Msg("transfer not confirmed, settlement not recorded")
		return "", err
	}

	return signature, nil
}

// finalize persists the settlement record and the wallet's terminal
// status in one transaction, then updates bookkeeping and stats.
func (s *SettlementEngineImpl) finalize(ctx context.Context, gameID string, record *domain.SettlementRecord) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatastoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Re-check the wallet under the row lock. The in-process mutex
	// only serializes this process; another instance may have
	// finalized the same game since our earlier read.
	locked, err := s.walletRepo.GetActiveByGameIDForUpdate(ctx, dbTx, gameID)
	if err != nil {
		return apperror.ErrDatastoreUnavailable(fmt.Errorf("lock wallet row: %w", err))
	}
	if locked == nil {
		return apperror.ErrWalletNotFound()
	}

	if err := s.settlementRepo.Create(ctx, dbTx, record); err != nil {
		return apperror.ErrDatastoreUnavailable(fmt.Errorf("create settlement record: %w", err))
	}
	if err := s.walletRepo.MarkSettled(ctx, dbTx, gameID, record.CreatedAt); err != nil {
		return apperror.ErrDatastoreUnavailable(fmt.Errorf("mark wallet settled: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatastoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	s.tracker.MarkSettled(gameID)

	s.statsMu.Lock()
	s.stats.TotalGames++
	s.stats.TotalVolume += record.TotalAmount
	s.stats.TotalFees += record.HouseAmount
	s.statsMu.Unlock()

	// Best-effort cache so re-invocations short-circuit.
	if payload, err := json.Marshal(record); err == nil {
		if err := s.cache.Set(ctx, gameID, payload, settlementCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("game_id", gameID).Msg("failed to cache settlement record")
		}
	}

	return nil
}

// Stats returns a snapshot of the process-wide aggregate.
func (s *SettlementEngineImpl) Stats() domain.EscrowStats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return s.stats
}

// RefreshBalance polls the ledger for the house balance. Eventually
// consistent; never consulted by Settle or Refund.
func (s *SettlementEngineImpl) RefreshBalance(ctx context.Context) {
	balance, err := s.ledger.GetBalance(ctx, s.cfg.HouseAddress)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to refresh house balance")
		return
	}

	s.statsMu.Lock()
	s.stats.CurrentBalance = balance
	s.statsMu.Unlock()
}

func unmarshalRecord(data []byte) (*domain.SettlementRecord, error) {
	record := &domain.SettlementRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached settlement: %w", err))
	}
	return record, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wager-escrow-service/internal/core/domain"
	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/internal/core/ports/mocks"
	"wager-escrow-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

type settlementTestDeps struct {
	engine         *SettlementEngineImpl
	walletRepo     *mocks.MockWalletRepository
	settlementRepo *mocks.MockSettlementRepository
	transactor     *mocks.MockDBTransactor
	ledger         *mocks.MockLedgerClient
	cache          *mocks.MockSettlementCache
	tracker        *GameStateTracker
	keyring        *HKDFKeyring
	cipher         *AESCipher
	ctrl           *gomock.Controller
}

func setupSettlementEngine(t *testing.T) *settlementTestDeps {
	ctrl := gomock.NewController(t)
	keyring, err := NewHKDFKeyring(testWalletKey)
	require.NoError(t, err)

	d := &settlementTestDeps{
		walletRepo:     mocks.NewMockWalletRepository(ctrl),
		settlementRepo: mocks.NewMockSettlementRepository(ctrl),
		transactor:     mocks.NewMockDBTransactor(ctrl),
		ledger:         mocks.NewMockLedgerClient(ctrl),
		cache:          mocks.NewMockSettlementCache(ctrl),
		tracker:        NewGameStateTracker(),
		keyring:        keyring,
		cipher:         NewAESCipher(),
		ctrl:           ctrl,
	}
	d.engine = NewSettlementEngine(
		d.walletRepo, d.settlementRepo, d.transactor, d.tracker,
		d.cipher, d.keyring, NewEd25519KeypairService(), d.ledger, d.cache,
		SettlementConfig{
			HouseAddress:          "house-address",
			FeeRate:               decimal.RequireFromString("0.10"),
			RequiredConfirmations: 6,
			MinStake:              1_000_000,
		},
		zerolog.Nop(),
	)
	return d
}

// newFundedWallet builds an Active wallet whose encrypted secret the
// engine can actually decrypt and sign with.
func (d *settlementTestDeps) newFundedWallet(t *testing.T, gameID string) *domain.EscrowWallet {
	t.Helper()

	kp, err := NewEd25519KeypairService().Generate()
	require.NoError(t, err)

	keyHex, err := d.keyring.WalletKey(gameID)
	require.NoError(t, err)
	encrypted, err := d.cipher.Encrypt(encodeSecret(kp.Secret), keyHex)
	require.NoError(t, err)

	now := time.Now().UTC()
	return &domain.EscrowWallet{
		ID:              uuid.New(),
		GameID:          gameID,
		PublicAddress:   kp.PublicAddress,
		EncryptedSecret: encrypted,
		Status:          domain.WalletStatusActive,
		CreatedAt:       now,
		ExpiresAt:       now.Add(30 * time.Minute),
	}
}

// ==================== SplitPot ====================

func TestSplitPot(t *testing.T) {
	rate := decimal.RequireFromString("0.10")

	tests := []struct {
		balance    int64
		wantWinner int64
		wantHouse  int64
	}{
		{2_000_000, 1_800_000, 200_000},
		{0, 0, 0},
		{1, 0, 1}, // floor pushes the remainder to the house
		{9, 8, 1},
		{999_999_999, 899_999_999, 100_000_000},
	}

	for _, tt := range tests {
		winner, house := SplitPot(tt.balance, rate)
		assert.Equal(t, tt.wantWinner, winner, "balance=%d", tt.balance)
		assert.Equal(t, tt.wantHouse, house, "balance=%d", tt.balance)
		assert.Equal(t, tt.balance, winner+house, "split must be conservative")
	}
}

// ==================== ValidateStake ====================

func TestSettlementEngine_ValidateStake_Match(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()

	d.ledger.EXPECT().GetTransaction(ctx, "sig-1").Return(&ports.TransferInfo{
		PreBalances:   []int64{5_000_000, 0},
		PostBalances:  []int64{4_000_000, 1_000_000},
		Confirmations: 10,
	}, nil)

	ok, err := d.engine.ValidateStake(ctx, "sig-1", 1_000_000)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSettlementEngine_ValidateStake_AmountMismatch(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()

	// The transfer moved 900_000, the claim says 1_000_000.
	d.ledger.EXPECT().GetTransaction(ctx, "sig-1").Return(&ports.TransferInfo{
		PreBalances:  []int64{5_000_000},
		PostBalances: []int64{4_100_000},
	}, nil)

	ok, err := d.engine.ValidateStake(ctx, "sig-1", 1_000_000)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettlementEngine_ValidateStake_UnknownSignature(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()

	d.ledger.EXPECT().GetTransaction(ctx, "sig-x").Return(nil, nil)

	ok, err := d.engine.ValidateStake(ctx, "sig-x", 1_000_000)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ==================== Stake ====================

func TestSettlementEngine_Stake_RecordsValidated(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()

	d.ledger.EXPECT().GetTransaction(ctx, "sig-a").Return(&ports.TransferInfo{
		PreBalances:  []int64{3_000_000},
		PostBalances: []int64{2_000_000},
	}, nil)

	err := d.engine.Stake(ctx, "g1", "alice", 1_000_000, "sig-a")
	require.NoError(t, err)

	state := d.tracker.Get("g1")
	require.NotNil(t, state)
	assert.Equal(t, int64(1_000_000), state.TotalStake)
}

func TestSettlementEngine_Stake_BelowMinimum(t *testing.T) {
	d := setupSettlementEngine(t)

	err := d.engine.Stake(context.Background(), "g1", "alice", 10, "sig-a")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ESC_007", appErr.Code)
	assert.Nil(t, d.tracker.Get("g1"))
}

func TestSettlementEngine_Stake_LedgerMismatchNotRecorded(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()

	d.ledger.EXPECT().GetTransaction(ctx, "sig-a").Return(&ports.TransferInfo{
		PreBalances:  []int64{3_000_000},
		PostBalances: []int64{2_500_000},
	}, nil)

	err := d.engine.Stake(ctx, "g1", "alice", 1_000_000, "sig-a")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ESC_006", appErr.Code)
	assert.Nil(t, d.tracker.Get("g1"), "unvalidated stake must not be tracked")
}

// ==================== Settle ====================

func TestSettlementEngine_Settle_Success(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()
	wallet := d.newFundedWallet(t, "g1")
	tx := &mockTx{}

	require.NoError(t, d.tracker.RecordStake("g1", "alice", 1_000_000))
	require.NoError(t, d.tracker.RecordStake("g1", "bob", 1_000_000))

	d.cache.EXPECT().Get(ctx, "g1").Return(nil, nil)
	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(wallet, nil)
	d.ledger.EXPECT().GetBalance(ctx, wallet.PublicAddress).Return(int64(2_000_000), nil)
	d.ledger.EXPECT().SubmitTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, signedTx []byte) (string, error) {
			// The submitted transaction must carry exactly the split.
			instrs, signer, err := VerifySignedTransaction(signedTx)
			require.NoError(t, err)
			assert.Equal(t, wallet.PublicAddress, signer)
			require.Len(t, instrs, 2)
			assert.Equal(t, ports.TransferInstruction{From: wallet.PublicAddress, To: "alice", Amount: 1_800_000}, instrs[0])
			assert.Equal(t, ports.TransferInstruction{From: wallet.PublicAddress, To: "house-address", Amount: 200_000}, instrs[1])
			return "settle-sig", nil
		})
	d.ledger.EXPECT().WaitForConfirmation(ctx, "settle-sig", int64(6)).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetActiveByGameIDForUpdate(ctx, tx, "g1").Return(wallet, nil)
	d.settlementRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().MarkSettled(ctx, tx, "g1", gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(ctx, "g1", gomock.Any(), settlementCacheTTL).Return(nil)

	record, err := d.engine.Settle(ctx, "g1", "alice")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "g1", record.GameID)
	assert.Equal(t, "alice", record.WinnerAddress)
	assert.Equal(t, int64(2_000_000), record.TotalAmount)
	assert.Equal(t, int64(1_800_000), record.WinnerAmount)
	assert.Equal(t, int64(200_000), record.HouseAmount)
	assert.Equal(t, domain.SettlementStatusCompleted, record.Status)
	assert.Equal(t, "settle-sig", record.Signature)

	assert.False(t, d.tracker.Get("g1").IsActive)

	stats := d.engine.Stats()
	assert.Equal(t, int64(1), stats.TotalGames)
	assert.Equal(t, int64(2_000_000), stats.TotalVolume)
	assert.Equal(t, int64(200_000), stats.TotalFees)
}

func TestSettlementEngine_Settle_DustPotGoesToHouse(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()
	wallet := d.newFundedWallet(t, "g1")
	tx := &mockTx{}

	// Balance 1 at fee 0.10 floors the winner share to zero. The
	// settlement must still complete, paying the house the whole pot.
	d.cache.EXPECT().Get(ctx, "g1").Return(nil, nil)
	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(wallet, nil)
	d.ledger.EXPECT().GetBalance(ctx, wallet.PublicAddress).Return(int64(1), nil)
	d.ledger.EXPECT().SubmitTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, signedTx []byte) (string, error) {
			instrs, _, err := VerifySignedTransaction(signedTx)
			require.NoError(t, err)
			require.Len(t, instrs, 1, "no zero-amount winner leg")
			assert.Equal(t, ports.TransferInstruction{From: wallet.PublicAddress, To: "house-address", Amount: 1}, instrs[0])
			return "dust-sig", nil
		})
	d.ledger.EXPECT().WaitForConfirmation(ctx, "dust-sig", int64(6)).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetActiveByGameIDForUpdate(ctx, tx, "g1").Return(wallet, nil)
	d.settlementRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().MarkSettled(ctx, tx, "g1", gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(ctx, "g1", gomock.Any(), settlementCacheTTL).Return(nil)

	record, err := d.engine.Settle(ctx, "g1", "alice")
	require.NoError(t, err)

	assert.Equal(t, int64(1), record.TotalAmount)
	assert.Zero(t, record.WinnerAmount)
	assert.Equal(t, int64(1), record.HouseAmount)
	assert.Equal(t, domain.SettlementStatusCompleted, record.Status)
}

func TestSettlementEngine_Settle_RowLockLostRace(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()
	wallet := d.newFundedWallet(t, "g1")
	tx := &mockTx{}

	d.cache.EXPECT().Get(ctx, "g1").Return(nil, nil)
	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(wallet, nil)
	d.ledger.EXPECT().GetBalance(ctx, wallet.PublicAddress).Return(int64(2_000_000), nil)
	d.ledger.EXPECT().SubmitTransaction(ctx, gomock.Any()).Return("race-sig", nil)
	d.ledger.EXPECT().WaitForConfirmation(ctx, "race-sig", int64(6)).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	// Another instance finalized this game first: the row lock finds
	// no Active wallet, so nothing may be written here.
	d.walletRepo.EXPECT().GetActiveByGameIDForUpdate(ctx, tx, "g1").Return(nil, nil)

	_, err := d.engine.Settle(ctx, "g1", "alice")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ESC_002", appErr.Code)

	assert.Zero(t, d.engine.Stats().TotalGames, "no second record, no stats")
}

func TestSettlementEngine_Settle_WalletAlreadySettled(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()
	wallet := d.newFundedWallet(t, "g1")
	wallet.Status = domain.WalletStatusSettled

	d.cache.EXPECT().Get(ctx, "g1").Return(nil, nil)
	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(wallet, nil)

	_, err := d.engine.Settle(ctx, "g1", "alice")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ESC_002", appErr.Code, "no double payout")

	stats := d.engine.Stats()
	assert.Zero(t, stats.TotalGames, "state unchanged")
}

func TestSettlementEngine_Settle_WalletMissing(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()

	d.cache.EXPECT().Get(ctx, "g1").Return(nil, nil)
	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(nil, nil)

	_, err := d.engine.Settle(ctx, "g1", "alice")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ESC_002", appErr.Code)
}

func TestSettlementEngine_Settle_EmptyEscrow(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()
	wallet := d.newFundedWallet(t, "g1")

	d.cache.EXPECT().Get(ctx, "g1").Return(nil, nil)
	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(wallet, nil)
	d.ledger.EXPECT().GetBalance(ctx, wallet.PublicAddress).Return(int64(0), nil)

	_, err := d.engine.Settle(ctx, "g1", "alice")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ESC_004", appErr.Code)
}

func TestSettlementEngine_Settle_CachedRecordShortCircuits(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()

	cached := &domain.SettlementRecord{
		ID:           uuid.New(),
		GameID:       "g1",
		Signature:    "old-sig",
		TotalAmount:  2_000_000,
		WinnerAmount: 1_800_000,
		HouseAmount:  200_000,
		Status:       domain.SettlementStatusCompleted,
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	d.cache.EXPECT().Get(ctx, "g1").Return(payload, nil)
	// No wallet lookup, no ledger call, no resubmission.

	record, err := d.engine.Settle(ctx, "g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "old-sig", record.Signature)
}

func TestSettlementEngine_Settle_ConfirmationTimeout(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()
	wallet := d.newFundedWallet(t, "g1")

	d.cache.EXPECT().Get(ctx, "g1").Return(nil, nil)
	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(wallet, nil)
	d.ledger.EXPECT().GetBalance(ctx, wallet.PublicAddress).Return(int64(2_000_000), nil)
	d.ledger.EXPECT().SubmitTransaction(ctx, gomock.Any()).Return("pending-sig", nil)
	d.ledger.EXPECT().WaitForConfirmation(ctx, "pending-sig", int64(6)).
		Return(apperror.ErrConfirmationTimeout(errors.New("deadline exceeded")))

	_, err := d.engine.Settle(ctx, "g1", "alice")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LGR_001", appErr.Code)

	// Unconfirmed means unrecorded: no stats movement, no settled wallet.
	assert.Zero(t, d.engine.Stats().TotalGames)
}

func TestSettlementEngine_Settle_LedgerUnavailable(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()
	wallet := d.newFundedWallet(t, "g1")

	d.cache.EXPECT().Get(ctx, "g1").Return(nil, nil)
	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(wallet, nil)
	d.ledger.EXPECT().GetBalance(ctx, wallet.PublicAddress).
		Return(int64(0), apperror.ErrLedgerUnavailable(errors.New("connection refused")))

	_, err := d.engine.Settle(ctx, "g1", "alice")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LGR_003", appErr.Code)
}

// ==================== Refund ====================

func TestSettlementEngine_Refund_FullStakes(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()
	wallet := d.newFundedWallet(t, "g1")
	tx := &mockTx{}

	require.NoError(t, d.tracker.RecordStake("g1", "alice", 1_000_000))
	require.NoError(t, d.tracker.RecordStake("g1", "bob", 1_000_000))

	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(wallet, nil)
	d.ledger.EXPECT().GetBalance(ctx, wallet.PublicAddress).Return(int64(2_000_000), nil)
	d.ledger.EXPECT().SubmitTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, signedTx []byte) (string, error) {
			instrs, _, err := VerifySignedTransaction(signedTx)
			require.NoError(t, err)
			require.Len(t, instrs, 2)
			assert.Equal(t, "alice", instrs[0].To)
			assert.Equal(t, int64(1_000_000), instrs[0].Amount)
			assert.Equal(t, "bob", instrs[1].To)
			assert.Equal(t, int64(1_000_000), instrs[1].Amount)
			return "refund-sig", nil
		})
	d.ledger.EXPECT().WaitForConfirmation(ctx, "refund-sig", int64(6)).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetActiveByGameIDForUpdate(ctx, tx, "g1").Return(wallet, nil)
	d.settlementRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().MarkSettled(ctx, tx, "g1", gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(ctx, "g1", gomock.Any(), settlementCacheTTL).Return(nil)

	record, err := d.engine.Refund(ctx, "g1")
	require.NoError(t, err)

	assert.Equal(t, domain.SettlementStatusRefunded, record.Status)
	assert.Empty(t, record.WinnerAddress)
	assert.Equal(t, int64(2_000_000), record.WinnerAmount, "everything refunded")
	assert.Zero(t, record.HouseAmount)
	assert.False(t, d.tracker.Get("g1").IsActive)
}

func TestSettlementEngine_Refund_ShortfallProRata(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()
	wallet := d.newFundedWallet(t, "g1")
	tx := &mockTx{}

	require.NoError(t, d.tracker.RecordStake("g1", "alice", 1_000_000))
	require.NoError(t, d.tracker.RecordStake("g1", "bob", 1_000_000))

	// Network fees ate part of the balance: only 1_500_001 left.
	d.walletRepo.EXPECT().GetByGameID(ctx, "g1").Return(wallet, nil)
	d.ledger.EXPECT().GetBalance(ctx, wallet.PublicAddress).Return(int64(1_500_001), nil)
	d.ledger.EXPECT().SubmitTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, signedTx []byte) (string, error) {
			instrs, _, err := VerifySignedTransaction(signedTx)
			require.NoError(t, err)
			// floor(1_000_000 * 1_500_001 / 2_000_000) = 750_000 each,
			// 1 unit shortfall attributed to the house.
			require.Len(t, instrs, 3)
			assert.Equal(t, int64(750_000), instrs[0].Amount)
			assert.Equal(t, int64(750_000), instrs[1].Amount)
			assert.Equal(t, "house-address", instrs[2].To)
			assert.Equal(t, int64(1), instrs[2].Amount)
			return "refund-sig", nil
		})
	d.ledger.EXPECT().WaitForConfirmation(ctx, "refund-sig", int64(6)).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetActiveByGameIDForUpdate(ctx, tx, "g1").Return(wallet, nil)
	d.settlementRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().MarkSettled(ctx, tx, "g1", gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(ctx, "g1", gomock.Any(), settlementCacheTTL).Return(nil)

	record, err := d.engine.Refund(ctx, "g1")
	require.NoError(t, err)

	assert.Equal(t, int64(1_500_000), record.WinnerAmount)
	assert.Equal(t, int64(1), record.HouseAmount)
	assert.LessOrEqual(t, record.WinnerAmount, record.TotalAmount, "refunds never invented")
}

func TestSettlementEngine_Refund_GameNotFound(t *testing.T) {
	d := setupSettlementEngine(t)

	_, err := d.engine.Refund(context.Background(), "unknown")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ESC_003", appErr.Code)
}

func TestSplitRefunds(t *testing.T) {
	tests := []struct {
		name    string
		stakes  []int64
		balance int64
		want    []int64
	}{
		{"covered", []int64{500, 500}, 1000, []int64{500, 500}},
		{"surplus stays unallocated", []int64{500, 500}, 1500, []int64{500, 500}},
		{"pro-rata floor", []int64{1_000_000, 1_000_000}, 1_500_001, []int64{750_000, 750_000}},
		{"uneven stakes", []int64{300, 700}, 500, []int64{150, 350}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitRefunds(tt.stakes, tt.balance)
			assert.Equal(t, tt.want, got)

			var sum int64
			for _, r := range got {
				sum += r
			}
			assert.LessOrEqual(t, sum, tt.balance)
		})
	}
}

// ==================== Stats ====================

func TestSettlementEngine_RefreshBalance(t *testing.T) {
	d := setupSettlementEngine(t)
	ctx := context.Background()

	d.ledger.EXPECT().GetBalance(ctx, "house-address").Return(int64(42_000_000), nil)
	d.engine.RefreshBalance(ctx)
	assert.Equal(t, int64(42_000_000), d.engine.Stats().CurrentBalance)

	// Poll failures leave the last value in place.
	d.ledger.EXPECT().GetBalance(ctx, "house-address").
		Return(int64(0), apperror.ErrLedgerUnavailable(errors.New("down")))
	d.engine.RefreshBalance(ctx)
	assert.Equal(t, int64(42_000_000), d.engine.Stats().CurrentBalance)
}

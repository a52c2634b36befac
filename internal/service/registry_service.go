package service

import (
	"context"
	"errors"
	"time"

	"wager-escrow-service/internal/core/domain"
	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EscrowRegistryImpl implements ports.EscrowRegistry. It exclusively
// owns wallet records and their custodial secrets' lifecycle: creation,
// encryption at rest, decryption at settlement or sweep, and the
// terminal Settled/Expired transitions.
type EscrowRegistryImpl struct {
	walletRepo    ports.WalletRepository
	keypairSvc    ports.KeypairService
	cipher        ports.Cipher
	keyring       ports.Keyring
	limiter       ports.RateLimiter
	walletTimeout time.Duration
	log           zerolog.Logger
}

// NewEscrowRegistry creates a new EscrowRegistryImpl.
func NewEscrowRegistry(
	walletRepo ports.WalletRepository,
	keypairSvc ports.KeypairService,
	cipher ports.Cipher,
	keyring ports.Keyring,
	limiter ports.RateLimiter,
	walletTimeout time.Duration,
	log zerolog.Logger,
) *EscrowRegistryImpl {
	return &EscrowRegistryImpl{
		walletRepo:    walletRepo,
		keypairSvc:    keypairSvc,
		cipher:        cipher,
		keyring:       keyring,
		limiter:       limiter,
		walletTimeout: walletTimeout,
		log:           log,
	}
}

// IssueOrReuse returns the game's current Active wallet address,
// creating a wallet if none exists. When the datastore is unreachable
// it degrades to an ephemeral, never-persisted keypair so the caller
// flow stays unblocked; that wallet cannot hold custody.
func (r *EscrowRegistryImpl) IssueOrReuse(ctx context.Context, gameID string, callerKey string) (*ports.WalletIssue, error) {
	if r.limiter.IsRateLimited(callerKey) {
		return nil, apperror.ErrRateLimitExceeded()
	}

	now := time.Now().UTC()

	existing, err := r.walletRepo.GetActiveByGameID(ctx, gameID, now)
	if err != nil {
		// A dead caller is not a dead datastore; degraded issuance is
		// only for the latter.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return r.issueEphemeral(gameID, err)
	}
	if existing != nil {
		return &ports.WalletIssue{PublicAddress: existing.PublicAddress}, nil
	}

	kp, err := r.keypairSvc.Generate()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	defer zeroBytes(kp.Secret)

	keyHex, err := r.keyring.WalletKey(gameID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	encrypted, err := r.cipher.Encrypt(encodeSecret(kp.Secret), keyHex)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	wallet := &domain.EscrowWallet{
		ID:              uuid.New(),
		GameID:          gameID,
		PublicAddress:   kp.PublicAddress,
		EncryptedSecret: encrypted,
		Status:          domain.WalletStatusActive,
		CreatedAt:       now,
		ExpiresAt:       now.Add(r.walletTimeout),
	}

	if err := r.walletRepo.Create(ctx, wallet); err != nil {
		if errors.Is(err, ports.ErrDuplicateActiveWallet) {
			// A concurrent caller won the race. Their wallet is the
			// wallet; ours is discarded without ever holding funds.
			winner, rerr := r.walletRepo.GetActiveByGameID(ctx, gameID, now)
			if rerr == nil && winner != nil {
				return &ports.WalletIssue{PublicAddress: winner.PublicAddress}, nil
			}
			return nil, apperror.ErrDatastoreUnavailable(rerr)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return r.issueEphemeral(gameID, err)
	}

	r.log.Info().
		Str("game_id", gameID).
		Str("public_address", wallet.PublicAddress).
		Time("expires_at", wallet.ExpiresAt).
		Msg("escrow wallet issued")

	return &ports.WalletIssue{PublicAddress: wallet.PublicAddress}, nil
}

// issueEphemeral is the documented degraded mode: the address keeps
// the caller flow moving, but nothing is persisted and the wallet can
// never be used for custody.
func (r *EscrowRegistryImpl) issueEphemeral(gameID string, cause error) (*ports.WalletIssue, error) {
	kp, err := r.keypairSvc.Generate()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	zeroBytes(kp.Secret)

	r.log.Warn().
		Err(cause).
		Str("game_id", gameID).
		Str("public_address", kp.PublicAddress).
		Msg("datastore unreachable, issuing ephemeral non-custodial wallet")

	return &ports.WalletIssue{PublicAddress: kp.PublicAddress, Ephemeral: true}, nil
}

// Expire transitions a game's Active wallet to Expired. Funds left in
// an expired wallet are reachable only through RevealSecret.
func (r *EscrowRegistryImpl) Expire(ctx context.Context, gameID string) error {
	if err := r.walletRepo.MarkExpired(ctx, gameID); err != nil {
		if errors.Is(err, ports.ErrNoActiveWallet) {
			return apperror.ErrWalletNotFound()
		}
		return apperror.ErrDatastoreUnavailable(err)
	}

	r.log.Info().Str("game_id", gameID).Msg("escrow wallet expired")
	return nil
}

// RevealSecret decrypts an Expired wallet's custodial secret for the
// administrative sweep. Active and Settled wallets are refused: the
// settlement path is the only place an Active secret may be handled.
func (r *EscrowRegistryImpl) RevealSecret(ctx context.Context, gameID string) (string, error) {
	wallet, err := r.walletRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return "", apperror.ErrDatastoreUnavailable(err)
	}
	if wallet == nil {
		return "", apperror.ErrWalletNotFound()
	}
	if wallet.Status != domain.WalletStatusExpired {
		return "", apperror.ErrWalletNotExpired()
	}

	keyHex, err := r.keyring.WalletKey(gameID)
	if err != nil {
		return "", apperror.InternalError(err)
	}

	secret, err := r.cipher.Decrypt(wallet.EncryptedSecret, keyHex)
	if err != nil {
		return "", err
	}

	r.log.Warn().
		Str("game_id", gameID).
		Str("public_address", wallet.PublicAddress).
		Msg("expired wallet secret revealed for administrative sweep")

	return secret, nil
}

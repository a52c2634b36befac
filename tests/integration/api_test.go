package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "wager-escrow-service/internal/adapter/http/handler"
	redisStorage "wager-escrow-service/internal/adapter/storage/redis"
	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/internal/service"
	"wager-escrow-service/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack: real HTTP layer, middleware,
// handlers, and services, backed by in-memory repos, a fake ledger, and
// an in-memory Redis (miniredis) for the settlement cache.

const (
	testMasterKey    = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	testHouseAddress = "House11111111111111111111111111111111111111"
	testAliceAddress = "A1ice11111111111111111111111111111111111111"
	testBobAddress   = "Bob111111111111111111111111111111111111111b"

	testAdminUser     = "operator"
	testAdminPassword = "StrongOperatorPass1!"
)

type testApp struct {
	server         *httptest.Server
	redis          *miniredis.Miniredis
	ledger         *fakeLedger
	walletRepo     *inMemoryWalletRepo
	settlementRepo *inMemorySettlementRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	// Start miniredis
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	settlementCache := redisStorage.NewSettlementCache(rdb)

	// Core services with real implementations
	cipher := service.NewAESCipher()
	keyring, err := service.NewHKDFKeyring(testMasterKey)
	require.NoError(t, err)
	keypairSvc := service.NewEd25519KeypairService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	adminHash, err := hashSvc.Hash(testAdminPassword)
	require.NoError(t, err)
	authSvc := service.NewAuthService(testAdminUser, adminHash, hashSvc, tokenSvc)

	// In-memory collaborators
	walletRepo := newInMemoryWalletRepo()
	settlementRepo := newInMemorySettlementRepo()
	transactor := newInMemoryTransactor()
	fl := newFakeLedger()

	// Generous window so concurrency tests are not throttled.
	limiter := service.NewSlidingWindowLimiter(time.Minute, 1000)
	tracker := service.NewGameStateTracker()

	log := logger.New("debug", false)
	registry := service.NewEscrowRegistry(walletRepo, keypairSvc, cipher, keyring, limiter, 30*time.Minute, log)
	engine := service.NewSettlementEngine(
		walletRepo,
		settlementRepo,
		transactor,
		tracker,
		cipher,
		keyring,
		keypairSvc,
		fl,
		settlementCache,
		service.SettlementConfig{
			HouseAddress:          testHouseAddress,
			FeeRate:               decimal.RequireFromString("0.10"),
			RequiredConfirmations: 1,
			MinStake:              1_000_000,
		},
		log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Registry:       registry,
		Engine:         engine,
		Tracker:        tracker,
		SettlementRepo: settlementRepo,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:         server,
		redis:          mr,
		ledger:         fl,
		walletRepo:     walletRepo,
		settlementRepo: settlementRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_Login(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	loginBody, _ := json.Marshal(map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(loginBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	data := loginResp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestIntegration_LoginWrongCredentials(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	loginBody, _ := json.Marshal(map[string]string{
		"username": testAdminUser,
		"password": "wrong",
	})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(loginBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_WalletIssueAndReuse(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	addr1 := issueWallet(t, app, "game-reuse")
	addr2 := issueWallet(t, app, "game-reuse")

	assert.Equal(t, addr1, addr2)
	assert.Equal(t, 1, app.walletRepo.countByGame("game-reuse"))
}

func TestIntegration_StakeAndSettle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	escrowAddr := issueWallet(t, app, "game-1")

	// Two validated stakes of 1,000,000 each.
	app.ledger.addTransfer("sig-alice", []int64{5_000_000}, []int64{4_000_000})
	app.ledger.addTransfer("sig-bob", []int64{3_000_000}, []int64{2_000_000})
	stake(t, app, "game-1", testAliceAddress, 1_000_000, "sig-alice")
	stake(t, app, "game-1", testBobAddress, 1_000_000, "sig-bob")

	// Game state reflects both players in join order.
	state := getJSON(t, app, "/api/v1/games/game-1", http.StatusOK)
	assert.Equal(t, []interface{}{testAliceAddress, testBobAddress}, state["players"])
	assert.Equal(t, float64(2_000_000), state["total_stake"])
	assert.Equal(t, true, state["is_active"])

	// Funds arrived on the escrow wallet.
	app.ledger.setBalance(escrowAddr, 2_000_000)

	// Settle: 10% fee, winner takes the rest.
	settleBody, _ := json.Marshal(map[string]string{"winner_address": testAliceAddress})
	resp, err := http.Post(app.server.URL+"/api/v1/games/game-1/settle", "application/json", bytes.NewReader(settleBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settleResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&settleResp))
	data := settleResp["data"].(map[string]interface{})
	assert.Equal(t, float64(2_000_000), data["total_amount"])
	assert.Equal(t, float64(1_800_000), data["winner_amount"])
	assert.Equal(t, float64(200_000), data["house_amount"])
	assert.Equal(t, "COMPLETED", data["status"])
	firstSignature := data["signature"].(string)

	// The fake ledger applied the signed transaction: funds moved.
	aliceBal, _ := app.ledger.GetBalance(context.Background(), testAliceAddress)
	houseBal, _ := app.ledger.GetBalance(context.Background(), testHouseAddress)
	escrowBal, _ := app.ledger.GetBalance(context.Background(), escrowAddr)
	assert.Equal(t, int64(1_800_000), aliceBal)
	assert.Equal(t, int64(200_000), houseBal)
	assert.Equal(t, int64(0), escrowBal)

	// Settlement record is queryable.
	rec := getJSON(t, app, "/api/v1/games/game-1/settlement", http.StatusOK)
	assert.Equal(t, firstSignature, rec["signature"])

	// Re-invoking Settle returns the recorded outcome; no second
	// transaction hits the ledger.
	resp2, err := http.Post(app.server.URL+"/api/v1/games/game-1/settle", "application/json", bytes.NewReader(settleBody))
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var settleResp2 map[string]interface{}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&settleResp2))
	data2 := settleResp2["data"].(map[string]interface{})
	assert.Equal(t, firstSignature, data2["signature"])
	assert.Equal(t, 1, app.ledger.submissions())
}

func TestIntegration_StakeUnknownSignature(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	issueWallet(t, app, "game-2")

	body, _ := json.Marshal(map[string]interface{}{
		"player_address": testAliceAddress,
		"amount":         int64(1_000_000),
		"signature":      "never-submitted",
	})
	resp, err := http.Post(app.server.URL+"/api/v1/games/game-2/stakes", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "ESC_006", errResp["error_code"])
}

func TestIntegration_SettleEmptyEscrow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	issueWallet(t, app, "game-3")

	settleBody, _ := json.Marshal(map[string]string{"winner_address": testAliceAddress})
	resp, err := http.Post(app.server.URL+"/api/v1/games/game-3/settle", "application/json", bytes.NewReader(settleBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestIntegration_Refund(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	escrowAddr := issueWallet(t, app, "game-4")

	app.ledger.addTransfer("sig-r-alice", []int64{9_000_000}, []int64{8_000_000})
	app.ledger.addTransfer("sig-r-bob", []int64{9_000_000}, []int64{8_000_000})
	stake(t, app, "game-4", testAliceAddress, 1_000_000, "sig-r-alice")
	stake(t, app, "game-4", testBobAddress, 1_000_000, "sig-r-bob")

	app.ledger.setBalance(escrowAddr, 2_000_000)

	resp, err := http.Post(app.server.URL+"/api/v1/games/game-4/refund", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var refundResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&refundResp))
	data := refundResp["data"].(map[string]interface{})
	assert.Equal(t, "REFUNDED", data["status"])

	// Full stakes returned, nothing left for the house.
	aliceBal, _ := app.ledger.GetBalance(context.Background(), testAliceAddress)
	bobBal, _ := app.ledger.GetBalance(context.Background(), testBobAddress)
	escrowBal, _ := app.ledger.GetBalance(context.Background(), escrowAddr)
	assert.Equal(t, int64(1_000_000), aliceBal)
	assert.Equal(t, int64(1_000_000), bobBal)
	assert.Equal(t, int64(0), escrowBal)
}

func TestIntegration_AdminExpireAndReveal(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	issueWallet(t, app, "game-5")
	token := loginAndGetToken(t, app, testAdminUser, testAdminPassword)

	// Reveal is refused while the wallet is still Active.
	reqEarly, _ := http.NewRequest(http.MethodGet, app.server.URL+"/api/v1/admin/games/game-5/secret", nil)
	reqEarly.Header.Set("Authorization", "Bearer "+token)
	respEarly, err := http.DefaultClient.Do(reqEarly)
	require.NoError(t, err)
	respEarly.Body.Close()
	assert.Equal(t, http.StatusConflict, respEarly.StatusCode)

	// Expire, then reveal.
	reqExp, _ := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/admin/games/game-5/expire", nil)
	reqExp.Header.Set("Authorization", "Bearer "+token)
	respExp, err := http.DefaultClient.Do(reqExp)
	require.NoError(t, err)
	respExp.Body.Close()
	assert.Equal(t, http.StatusOK, respExp.StatusCode)

	reqSec, _ := http.NewRequest(http.MethodGet, app.server.URL+"/api/v1/admin/games/game-5/secret", nil)
	reqSec.Header.Set("Authorization", "Bearer "+token)
	respSec, err := http.DefaultClient.Do(reqSec)
	require.NoError(t, err)
	defer respSec.Body.Close()
	require.Equal(t, http.StatusOK, respSec.StatusCode)

	var secResp map[string]interface{}
	require.NoError(t, json.NewDecoder(respSec.Body).Decode(&secResp))
	data := secResp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["secret"])
}

func TestIntegration_Admin_Unauthorized(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	req, _ := http.NewRequest(http.MethodGet, app.server.URL+"/api/v1/admin/settlements", nil)
	// No Authorization header
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// --- Helpers ---

func issueWallet(t *testing.T, app *testApp, gameID string) string {
	t.Helper()
	resp, err := http.Post(app.server.URL+"/api/v1/games/"+gameID+"/wallet", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	require.NotEmpty(t, data["public_address"])
	return data["public_address"].(string)
}

func stake(t *testing.T, app *testApp, gameID, player string, amount int64, signature string) {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{
		"player_address": player,
		"amount":         amount,
		"signature":      signature,
	})
	resp, err := http.Post(app.server.URL+"/api/v1/games/"+gameID+"/stakes", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "stake response: %s", string(bodyBytes))
}

func getJSON(t *testing.T, app *testApp, path string, wantStatus int) map[string]interface{} {
	t.Helper()
	resp, err := http.Get(app.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "missing data envelope: %v", body)
	return data
}

func loginAndGetToken(t *testing.T, app *testApp, username, password string) string {
	t.Helper()
	loginBody, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(loginBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	var loginResp map[string]interface{}
	require.NoError(t, json.Unmarshal(bodyBytes, &loginResp))
	data := loginResp["data"].(map[string]interface{})
	return data["token"].(string)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/handlers"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
	"github.com/SscSPs/pos_ledger/internal/utils"
)

const testIntegrationKey = "posk_0a1b2c3d_c2VjcmV0LXNlY3JldC1zZWNyZXQ"

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	jwtSecret     string
	accounts      *MockAccountService
	journal       *MockJournalService
	reporting     *MockReportingService
	bridge        *MockBridge
	keys          *MockIntegrationKeyService
	integrationID string
}

// generateTestToken creates a signed operator JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pos-ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.integrationID = uuid.NewString()

	suite.accounts = new(MockAccountService)
	suite.journal = new(MockJournalService)
	suite.reporting = new(MockReportingService)
	suite.bridge = new(MockBridge)
	suite.keys = new(MockIntegrationKeyService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		JWTIssuer:    "pos-ledger-test",
		IsProduction: true,
	}
	services := &portssvc.ServiceContainer{
		Account:        suite.accounts,
		Journal:        suite.journal,
		Reporting:      suite.reporting,
		Bridge:         suite.bridge,
		IntegrationKey: suite.keys,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, &utils.AnalyticsClient{})
}

func (suite *HandlerTestSuite) do(method, url string, body any, auth func(*http.Request)) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != nil {
		auth(req)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) asOperator(userID string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
}

func (suite *HandlerTestSuite) asRegister() func(*http.Request) {
	suite.keys.On("ValidateKey", mock.Anything, testIntegrationKey).
		Return(&domain.IntegrationKey{KeyID: suite.integrationID, Name: "register-1"}, nil)
	return func(r *http.Request) {
		r.Header.Set("x-api-key", testIntegrationKey)
	}
}

// --- Accounts ---

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	userID := uuid.NewString()
	created := &domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: "1015",
		AccountName:   "Petty Cash",
		AccountType:   domain.Asset,
		BalanceType:   domain.DebitBalance,
		IsActive:      true,
	}
	suite.accounts.On("CreateAccount", mock.Anything,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool { return req.AccountNumber == "1015" }),
		userID,
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"accountNumber": "1015",
		"accountName":   "Petty Cash",
		"accountType":   "Asset",
		"balanceType":   "debit",
	}, suite.asOperator(userID))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.accounts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateAccount_UnknownAccountTypeRejectedByBinding() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"accountNumber": "1015",
		"accountName":   "Petty Cash",
		"accountType":   "Gadget",
		"balanceType":   "debit",
	}, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.accounts.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount_DuplicateNumberIsConflict() {
	suite.accounts.On("CreateAccount", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: account number 1010 exists", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"accountNumber": "1010",
		"accountName":   "Cash",
		"accountType":   "Asset",
		"balanceType":   "debit",
	}, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.accounts.On("GetAccountByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/missing", nil, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestRequestWithoutCredentials_Unauthorized() {
	w := suite.do(http.MethodGet, "/api/v1/accounts", nil, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestTokenFromOtherIssuer_Unauthorized() {
	claims := jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signed)
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestSeedChart_RequiresOperator() {
	w := suite.do(http.MethodPost, "/api/v1/accounts/seed", nil, suite.asRegister())

	suite.Equal(http.StatusForbidden, w.Code)
	suite.accounts.AssertNotCalled(suite.T(), "SeedDefaultChart", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAccountBalance() {
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.accounts.On("ComputeBalance", mock.Anything, "acc-1", asOf).
		Return(decimal.RequireFromString("1250.75"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/balance?asOfDate=2026-03-31", nil, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2026-03-31", resp.AsOfDate)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("1250.75")))
}

// --- Journal ---

func (suite *HandlerTestSuite) TestVoidTransaction_RequiresReason() {
	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-1/void", map[string]any{}, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journal.AssertNotCalled(suite.T(), "VoidTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestVoidTransaction_AlreadyVoidIsConflict() {
	userID := uuid.NewString()
	suite.journal.On("VoidTransaction", mock.Anything, "txn-1", "duplicate entry", userID).
		Return(nil, apperrors.ErrAlreadyVoid).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-1/void",
		map[string]any{"reason": "duplicate entry"}, suite.asOperator(userID))

	suite.Equal(http.StatusConflict, w.Code)
	suite.journal.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPostTransaction_UnbalancedIsBadRequest() {
	suite.journal.On("PostTransaction", mock.Anything, "txn-2", mock.Anything).
		Return(nil, apperrors.ErrTransactionUnbalanced).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-2/post", nil, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGeneralLedger_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/general-ledger?startDate=03/01/2026", nil, suite.asOperator(uuid.NewString()))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestInternalErrorsAreNotLeaked() {
	suite.journal.On("GetTransactionByID", mock.Anything, "txn-3").
		Return(nil, errors.New("pq: connection reset by peer")).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/txn-3", nil, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}

// --- POS events ---

func (suite *HandlerTestSuite) TestSaleEvent_Journalized() {
	suite.bridge.On("JournalizeSale", mock.Anything,
		mock.MatchedBy(func(ev domain.SaleEvent) bool {
			return ev.OrderID == "ord-1001" && ev.Total.Equal(decimal.RequireFromString("108.25"))
		}),
		"integration:"+suite.integrationID,
	).Return(&domain.JournalizeResult{TransactionID: "txn-9", TransactionNumber: "JE-000009"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos-events/sales", map[string]any{
		"orderID":       "ord-1001",
		"orderDate":     "2026-03-14T15:04:05Z",
		"paymentMethod": "card",
		"subtotal":      "100.00",
		"tax":           "8.25",
		"total":         "108.25",
		"cogs":          "40.00",
	}, suite.asRegister())

	suite.Equal(http.StatusCreated, w.Code)
	var result domain.JournalizeResult
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal("txn-9", result.TransactionID)
	suite.bridge.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSaleEvent_SkippedWhenAlreadyJournalized() {
	suite.bridge.On("JournalizeSale", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.JournalizeResult{TransactionID: "txn-9", Skipped: true, Message: "already journalized"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos-events/sales", map[string]any{
		"orderID":       "ord-1001",
		"orderDate":     "2026-03-14T15:04:05Z",
		"paymentMethod": "cash",
		"total":         "10.00",
	}, suite.asRegister())

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"skipped":true`)
}

func (suite *HandlerTestSuite) TestVoidSale_OriginalMissingIsNotFound() {
	suite.bridge.On("JournalizeVoidSale", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: no posted entry for sale ord-404", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos-events/sale-voids", map[string]any{
		"orderID":  "ord-404",
		"voidDate": "2026-03-15T09:00:00Z",
	}, suite.asRegister())

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestRevokedIntegrationKey_Unauthorized() {
	suite.keys.On("ValidateKey", mock.Anything, "posk_deadbeef_bogus").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos-events/cash-drops", map[string]any{}, func(r *http.Request) {
		r.Header.Set("x-api-key", "posk_deadbeef_bogus")
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.bridge.AssertNotCalled(suite.T(), "JournalizeCashDrop", mock.Anything, mock.Anything, mock.Anything)
}

// --- Reports ---

func (suite *HandlerTestSuite) TestIncomeStatement_InvertedPeriod() {
	w := suite.do(http.MethodGet, "/api/v1/reports/income-statement?startDate=2026-03-31&endDate=2026-03-01", nil, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reporting.AssertNotCalled(suite.T(), "IncomeStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestIncomeStatement_Success() {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.reporting.On("IncomeStatement", mock.Anything, start, end).
		Return(&domain.IncomeStatement{StartDate: start, EndDate: end, NetIncome: decimal.NewFromInt(420)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/income-statement?startDate=2026-01-01&endDate=2026-03-31", nil, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.IncomeStatementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.NetIncome.Equal(decimal.NewFromInt(420)))
}

func (suite *HandlerTestSuite) TestBalanceSheet_ReportsIdentity() {
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.reporting.On("BalanceSheet", mock.Anything, asOf, "store-1").
		Return(&domain.BalanceSheet{
			AsOfDate:               asOf,
			TotalAssets:            decimal.RequireFromString("5000.00"),
			TotalLiabilitiesEquity: decimal.RequireFromString("5000.00"),
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/balance-sheet?asOfDate=2026-03-31&establishmentID=store-1", nil, suite.asOperator(uuid.NewString()))

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"isBalanced":true`)
}

// --- Integration keys ---

func (suite *HandlerTestSuite) TestCreateIntegrationKey_ReturnsPlaintextOnce() {
	userID := uuid.NewString()
	key := &domain.IntegrationKey{KeyID: uuid.NewString(), Name: "register-2", Prefix: "0a1b2c3d", CreatedBy: userID}
	suite.keys.On("CreateKey", mock.Anything, "register-2", (*time.Duration)(nil), userID).
		Return(testIntegrationKey, key, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/integration-keys", map[string]any{"name": "register-2"}, suite.asOperator(userID))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateIntegrationKeyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(testIntegrationKey, resp.Key)
	suite.Equal(key.KeyID, resp.KeyID)
}

func (suite *HandlerTestSuite) TestIntegrationKeysCannotManageKeys() {
	w := suite.do(http.MethodGet, "/api/v1/integration-keys", nil, suite.asRegister())
	suite.Equal(http.StatusForbidden, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

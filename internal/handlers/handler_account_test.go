package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/banking-whatsapp/accounts-service/internal/apperrors"
	"github.com/banking-whatsapp/accounts-service/internal/core/domain"
	portssvc "github.com/banking-whatsapp/accounts-service/internal/core/ports/services"
	"github.com/banking-whatsapp/accounts-service/internal/dto"
	"github.com/banking-whatsapp/accounts-service/internal/handlers"
	"github.com/banking-whatsapp/accounts-service/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.AccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccountsByUserDNI(ctx context.Context, dni string) ([]domain.Account, error) {
	args := m.Called(ctx, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccountsByUserPhone(ctx context.Context, phoneNumber string) ([]domain.Account, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.AccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
func (m *MockAccountService) GetUserViewByPhone(ctx context.Context, phoneNumber string, limit int) (*dto.UserViewResponse, error) {
	args := m.Called(ctx, phoneNumber, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserViewResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Base suite shared by the account and transaction handler suites ---
type handlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockAccountSvc *MockAccountService
	mockTxnSvc     *MockTransactionService
}

func (suite *handlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountSvc = new(MockAccountService)
	suite.mockTxnSvc = new(MockTransactionService)

	cfg := &config.Config{
		IsProduction:      true, // No swagger routes in tests
		RateLimitRequests: 1000,
		RateLimitPeriod:   time.Minute,
	}
	container := &portssvc.ServiceContainer{
		Account:     suite.mockAccountSvc,
		Transaction: suite.mockTxnSvc,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *handlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	handlerTestSuite
}

func sampleAccount() *domain.Account {
	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	return &domain.Account{
		AccountID:       uuid.NewString(),
		AccountNumber:   "ES9121000418450200051332",
		AccountType:     domain.Savings,
		Balance:         decimal.RequireFromString("1250.5"),
		Currency:        "EUR",
		UserID:          "user-1",
		UserDNI:         "12345678A",
		UserPhoneNumber: "+34600111222",
		Status:          domain.AccountActive,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func sampleAccountRequest() map[string]any {
	return map[string]any{
		"accountNumber":   "ES9121000418450200051332",
		"accountType":     "SAVINGS",
		"balance":         1250.50,
		"currency":        "EUR",
		"userId":          "user-1",
		"userDni":         "12345678A",
		"userPhoneNumber": "+34600111222",
	}
}

// --- Health ---

func (suite *AccountHandlerTestSuite) TestHealthCheck() {
	w := suite.serve(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Create ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	account := sampleAccount()

	suite.mockAccountSvc.On("CreateAccount", mock.Anything, mock.MatchedBy(func(r dto.AccountRequest) bool {
		return r.AccountNumber == account.AccountNumber && r.AccountType == domain.Savings
	})).Return(account, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/accounts", sampleAccountRequest())

	suite.Equal(http.StatusCreated, w.Code)

	var body map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	// Balance is a plain number with two-decimal presentation.
	suite.Equal("1250.50", string(body["balance"]))
	// Timestamps carry no zone offset.
	suite.Equal(`"2024-03-15T10:30:00"`, string(body["createdAt"]))
	suite.Equal(`"`+account.AccountID+`"`, string(body["id"]))
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Duplicate() {
	suite.mockAccountSvc.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.AccountRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.serve(http.MethodPost, "/api/v1/accounts", sampleAccountRequest())

	suite.Equal(http.StatusConflict, w.Code)

	var errBody dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &errBody))
	suite.Equal("409", errBody.Status)
	suite.Equal("/api/v1/accounts", errBody.Path)
	suite.NotEmpty(errBody.Message)
	suite.False(errBody.Timestamp.IsZero())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingFields() {
	req := sampleAccountRequest()
	delete(req, "accountNumber")

	w := suite.serve(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidAccountType() {
	req := sampleAccountRequest()
	req["accountType"] = "PREMIUM"

	w := suite.serve(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

// --- Reads ---

func (suite *AccountHandlerTestSuite) TestGetAccount_Success() {
	account := sampleAccount()

	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/"+account.AccountID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(account.AccountID, resp.ID)
	suite.Equal(account.AccountNumber, resp.AccountNumber)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()

	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, accountID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)

	var errBody dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &errBody))
	suite.Equal("404", errBody.Status)
}

func (suite *AccountHandlerTestSuite) TestGetAccountByNumber_Success() {
	account := sampleAccount()

	suite.mockAccountSvc.On("GetAccountByNumber", mock.Anything, account.AccountNumber).Return(account, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/number/"+account.AccountNumber, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccountsByUser_Empty() {
	suite.mockAccountSvc.On("ListAccountsByUserID", mock.Anything, "nobody").Return([]domain.Account{}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/user/nobody", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("[]", w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestListAccountsByPhone_Success() {
	account := sampleAccount()

	suite.mockAccountSvc.On("ListAccountsByUserPhone", mock.Anything, account.UserPhoneNumber).
		Return([]domain.Account{*account}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/user/phone/"+account.UserPhoneNumber, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

// --- Update / Delete ---

func (suite *AccountHandlerTestSuite) TestUpdateAccount_Success() {
	account := sampleAccount()

	suite.mockAccountSvc.On("UpdateAccount", mock.Anything, account.AccountID, mock.AnythingOfType("dto.AccountRequest")).
		Return(account, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/accounts/"+account.AccountID, sampleAccountRequest())

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_NoContent() {
	accountID := uuid.NewString()

	suite.mockAccountSvc.On("DeleteAccount", mock.Anything, accountID).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

// --- User view ---

func (suite *AccountHandlerTestSuite) TestGetUserView_Success() {
	account := sampleAccount()
	view := &dto.UserViewResponse{
		UserID:          account.UserID,
		UserDNI:         account.UserDNI,
		UserPhoneNumber: account.UserPhoneNumber,
		Accounts: []dto.AccountWithTransactions{
			{
				Account:      dto.ToAccountResponse(account),
				Transactions: []dto.TransactionResponse{},
			},
		},
	}

	suite.mockAccountSvc.On("GetUserViewByPhone", mock.Anything, account.UserPhoneNumber, 10).
		Return(view, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/user/phone/"+account.UserPhoneNumber+"/complete", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UserViewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(account.UserID, resp.UserID)
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal(account.AccountID, resp.Accounts[0].Account.ID)
}

func (suite *AccountHandlerTestSuite) TestGetUserView_CustomLimit() {
	phone := "+34699000111"
	view := &dto.UserViewResponse{UserPhoneNumber: phone, Accounts: []dto.AccountWithTransactions{}}

	suite.mockAccountSvc.On("GetUserViewByPhone", mock.Anything, phone, 25).Return(view, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/user/phone/"+phone+"/complete?limit=25", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetUserView_NotFound() {
	phone := "+34000000000"

	suite.mockAccountSvc.On("GetUserViewByPhone", mock.Anything, phone, 10).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/user/phone/"+phone+"/complete", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/service"
	"github.com/MKhiriev/finance-flow/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; Authenticate accepts
// testToken as user testUserID unless authenticateFn is set.
type mockAuthService struct {
	registerFn       func(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	loginFn          func(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	meFn             func(ctx context.Context, userID int64) (models.User, error)
	changePasswordFn func(ctx context.Context, change models.PasswordChange) error
	authenticateFn   func(ctx context.Context, token string) (int64, error)
}

const (
	testToken  = "header.payload.signature"
	testUserID = int64(7)
)

var errUnexpectedToken = errors.New("unexpected token")

func (m *mockAuthService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	return m.registerFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Me(ctx context.Context, userID int64) (models.User, error) {
	return m.meFn(ctx, userID)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	return m.changePasswordFn(ctx, change)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (int64, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	if token != testToken {
		return 0, errUnexpectedToken
	}
	return testUserID, nil
}

// mockTransactionService implements service.TransactionService.
type mockTransactionService struct {
	createFn  func(ctx context.Context, transaction models.Transaction) (int64, error)
	listFn    func(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	getFn     func(ctx context.Context, id, userID int64) (models.Transaction, error)
	updateFn  func(ctx context.Context, transaction models.Transaction) error
	deleteFn  func(ctx context.Context, id, userID int64) error
	balanceFn func(ctx context.Context, userID int64) (models.Balance, error)
}

func (m *mockTransactionService) Create(ctx context.Context, transaction models.Transaction) (int64, error) {
	return m.createFn(ctx, transaction)
}

func (m *mockTransactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	return m.listFn(ctx, filter)
}

func (m *mockTransactionService) Get(ctx context.Context, id, userID int64) (models.Transaction, error) {
	return m.getFn(ctx, id, userID)
}

func (m *mockTransactionService) Update(ctx context.Context, transaction models.Transaction) error {
	return m.updateFn(ctx, transaction)
}

func (m *mockTransactionService) Delete(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

func (m *mockTransactionService) Balance(ctx context.Context, userID int64) (models.Balance, error) {
	return m.balanceFn(ctx, userID)
}

// mockCategoryService implements service.CategoryService.
type mockCategoryService struct {
	categoriesFn    func(ctx context.Context) ([]models.Category, error)
	subcategoriesFn func(ctx context.Context) ([]models.Subcategory, error)
	byCategoryFn    func(ctx context.Context, categoryID int64) ([]models.Subcategory, error)
}

func (m *mockCategoryService) Categories(ctx context.Context) ([]models.Category, error) {
	return m.categoriesFn(ctx)
}

func (m *mockCategoryService) Subcategories(ctx context.Context) ([]models.Subcategory, error) {
	return m.subcategoriesFn(ctx)
}

func (m *mockCategoryService) SubcategoriesByCategory(ctx context.Context, categoryID int64) ([]models.Subcategory, error) {
	return m.byCategoryFn(ctx, categoryID)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.BuildInfo {
	return models.BuildInfo{Version: m.version, Date: "N/A", Commit: "N/A"}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices fills every service the test did not provide with an
// empty mock, so an unexpected call panics on a nil fn field.
func newTestServices(svcs service.Services) *service.Services {
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.TransactionService == nil {
		svcs.TransactionService = &mockTransactionService{}
	}
	if svcs.CategoryService == nil {
		svcs.CategoryService = &mockCategoryService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return &svcs
}

// newTestRouter returns the full mux over the given services.
func newTestRouter(svcs service.Services, opts ...Option) http.Handler {
	return NewHandler(newTestServices(svcs), logger.Nop(), opts...).Init()
}

// doRequest sends one request through handler. A non-empty body is sent as
// is; authorized requests carry testToken.
func doRequest(t *testing.T, handler http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// envelope is the decoded response body.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

// decodeData unmarshals the data member of the envelope into v.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, v))
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hcorbage/corb3d/internal/config"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/hcorbage/corb3d/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
//
// Each fake implements one service interface through func fields that tests
// override per case. A nil field panics, which flags an unexpected call.
// ─────────────────────────────────────────────

type fakeAuthService struct {
	// sessionBound marks the fake installed by serveAs for one session.
	sessionBound bool

	loginFn               func(ctx context.Context, c models.Credentials) (models.LoginResult, models.Token, error)
	logoutFn              func(ctx context.Context, sessionID string) error
	authenticateFn        func(ctx context.Context, token string) (models.Session, error)
	checkAdminFn          func(ctx context.Context, username string) (bool, error)
	resetPasswordFn       func(ctx context.Context, req models.ResetPasswordRequest) (models.ResetPasswordResult, error)
	forceChangePasswordFn func(ctx context.Context, p policy.Principal, newPassword string) error
	passwordHintFn        func(ctx context.Context, username string) (*string, error)
	adminContactFn        func(ctx context.Context, username string) (*string, error)
}

func (f *fakeAuthService) Login(ctx context.Context, c models.Credentials) (models.LoginResult, models.Token, error) {
	return f.loginFn(ctx, c)
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	return f.logoutFn(ctx, sessionID)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	return f.authenticateFn(ctx, token)
}

func (f *fakeAuthService) CheckAdmin(ctx context.Context, username string) (bool, error) {
	return f.checkAdminFn(ctx, username)
}

func (f *fakeAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.ResetPasswordResult, error) {
	return f.resetPasswordFn(ctx, req)
}

func (f *fakeAuthService) ForceChangePassword(ctx context.Context, p policy.Principal, newPassword string) error {
	return f.forceChangePasswordFn(ctx, p, newPassword)
}

func (f *fakeAuthService) PasswordHint(ctx context.Context, username string) (*string, error) {
	return f.passwordHintFn(ctx, username)
}

func (f *fakeAuthService) AdminContact(ctx context.Context, username string) (*string, error) {
	return f.adminContactFn(ctx, username)
}

func (f *fakeAuthService) EnsureMasterAdmin(context.Context) error {
	return nil
}

type fakeUserService struct {
	listFn           func(ctx context.Context, p policy.Principal) ([]models.User, error)
	createFn         func(ctx context.Context, p policy.Principal, req models.CreateUserRequest) (models.CreatedUser, error)
	changePasswordFn func(ctx context.Context, p policy.Principal, id string, req models.ChangePasswordRequest) error
	deleteFn         func(ctx context.Context, p policy.Principal, id string) error
}

func (f *fakeUserService) ListUsers(ctx context.Context, p policy.Principal) ([]models.User, error) {
	return f.listFn(ctx, p)
}

func (f *fakeUserService) CreateUser(ctx context.Context, p policy.Principal, req models.CreateUserRequest) (models.CreatedUser, error) {
	return f.createFn(ctx, p, req)
}

func (f *fakeUserService) ChangePassword(ctx context.Context, p policy.Principal, id string, req models.ChangePasswordRequest) error {
	return f.changePasswordFn(ctx, p, id, req)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, p policy.Principal, id string) error {
	return f.deleteFn(ctx, p, id)
}

type fakeClientService struct {
	listFn   func(ctx context.Context, p policy.Principal) ([]models.Client, error)
	createFn func(ctx context.Context, p policy.Principal, c models.Client) (models.Client, error)
	updateFn func(ctx context.Context, p policy.Principal, id string, u models.ClientUpdate) (models.Client, error)
	deleteFn func(ctx context.Context, p policy.Principal, id string) error
}

func (f *fakeClientService) ListClients(ctx context.Context, p policy.Principal) ([]models.Client, error) {
	return f.listFn(ctx, p)
}

func (f *fakeClientService) CreateClient(ctx context.Context, p policy.Principal, c models.Client) (models.Client, error) {
	return f.createFn(ctx, p, c)
}

func (f *fakeClientService) UpdateClient(ctx context.Context, p policy.Principal, id string, u models.ClientUpdate) (models.Client, error) {
	return f.updateFn(ctx, p, id, u)
}

func (f *fakeClientService) DeleteClient(ctx context.Context, p policy.Principal, id string) error {
	return f.deleteFn(ctx, p, id)
}

type fakeMaterialService struct {
	listFn   func(ctx context.Context, p policy.Principal) ([]models.Material, error)
	createFn func(ctx context.Context, p policy.Principal, m models.Material) (models.Material, error)
	updateFn func(ctx context.Context, p policy.Principal, id string, u models.MaterialUpdate) (models.Material, error)
	deleteFn func(ctx context.Context, p policy.Principal, id string) error
}

func (f *fakeMaterialService) ListMaterials(ctx context.Context, p policy.Principal) ([]models.Material, error) {
	return f.listFn(ctx, p)
}

func (f *fakeMaterialService) CreateMaterial(ctx context.Context, p policy.Principal, m models.Material) (models.Material, error) {
	return f.createFn(ctx, p, m)
}

func (f *fakeMaterialService) UpdateMaterial(ctx context.Context, p policy.Principal, id string, u models.MaterialUpdate) (models.Material, error) {
	return f.updateFn(ctx, p, id, u)
}

func (f *fakeMaterialService) DeleteMaterial(ctx context.Context, p policy.Principal, id string) error {
	return f.deleteFn(ctx, p, id)
}

type fakeStockItemService struct {
	listFn   func(ctx context.Context, p policy.Principal) ([]models.StockItem, error)
	createFn func(ctx context.Context, p policy.Principal, s models.StockItem) (models.StockItem, error)
	updateFn func(ctx context.Context, p policy.Principal, id string, u models.StockItemUpdate) (models.StockItem, error)
	deleteFn func(ctx context.Context, p policy.Principal, id string) error
}

func (f *fakeStockItemService) ListStockItems(ctx context.Context, p policy.Principal) ([]models.StockItem, error) {
	return f.listFn(ctx, p)
}

func (f *fakeStockItemService) CreateStockItem(ctx context.Context, p policy.Principal, s models.StockItem) (models.StockItem, error) {
	return f.createFn(ctx, p, s)
}

func (f *fakeStockItemService) UpdateStockItem(ctx context.Context, p policy.Principal, id string, u models.StockItemUpdate) (models.StockItem, error) {
	return f.updateFn(ctx, p, id, u)
}

func (f *fakeStockItemService) DeleteStockItem(ctx context.Context, p policy.Principal, id string) error {
	return f.deleteFn(ctx, p, id)
}

type fakeEmployeeService struct {
	listFn   func(ctx context.Context, p policy.Principal) ([]models.Employee, error)
	createFn func(ctx context.Context, p policy.Principal, e models.Employee) (models.CreatedEmployee, error)
	updateFn func(ctx context.Context, p policy.Principal, id string, u models.EmployeeUpdate) (models.Employee, error)
	deleteFn func(ctx context.Context, p policy.Principal, id string) error
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context, p policy.Principal) ([]models.Employee, error) {
	return f.listFn(ctx, p)
}

func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, p policy.Principal, e models.Employee) (models.CreatedEmployee, error) {
	return f.createFn(ctx, p, e)
}

func (f *fakeEmployeeService) UpdateEmployee(ctx context.Context, p policy.Principal, id string, u models.EmployeeUpdate) (models.Employee, error) {
	return f.updateFn(ctx, p, id, u)
}

func (f *fakeEmployeeService) DeleteEmployee(ctx context.Context, p policy.Principal, id string) error {
	return f.deleteFn(ctx, p, id)
}

type fakeQuoteService struct {
	listFn      func(ctx context.Context, p policy.Principal) ([]models.Calculation, error)
	previewFn   func(ctx context.Context, p policy.Principal, req models.QuoteRequest) (models.QuoteBreakdown, error)
	createFn    func(ctx context.Context, p policy.Principal, req models.QuoteRequest) (models.CreatedQuote, error)
	updateFn    func(ctx context.Context, p policy.Principal, id string, req models.QuoteRequest) (models.Calculation, error)
	setStatusFn func(ctx context.Context, p policy.Principal, id string, s models.QuoteStatus) (models.Calculation, error)
	deleteFn    func(ctx context.Context, p policy.Principal, id string) error
}

func (f *fakeQuoteService) ListQuotes(ctx context.Context, p policy.Principal) ([]models.Calculation, error) {
	return f.listFn(ctx, p)
}

func (f *fakeQuoteService) PreviewQuote(ctx context.Context, p policy.Principal, req models.QuoteRequest) (models.QuoteBreakdown, error) {
	return f.previewFn(ctx, p, req)
}

func (f *fakeQuoteService) CreateQuote(ctx context.Context, p policy.Principal, req models.QuoteRequest) (models.CreatedQuote, error) {
	return f.createFn(ctx, p, req)
}

func (f *fakeQuoteService) UpdateQuote(ctx context.Context, p policy.Principal, id string, req models.QuoteRequest) (models.Calculation, error) {
	return f.updateFn(ctx, p, id, req)
}

func (f *fakeQuoteService) SetStatus(ctx context.Context, p policy.Principal, id string, s models.QuoteStatus) (models.Calculation, error) {
	return f.setStatusFn(ctx, p, id, s)
}

func (f *fakeQuoteService) DeleteQuote(ctx context.Context, p policy.Principal, id string) error {
	return f.deleteFn(ctx, p, id)
}

type fakeCommissionService struct {
	reportFn func(ctx context.Context, p policy.Principal, year, month int) (models.CommissionReport, error)
}

func (f *fakeCommissionService) MonthlyReport(ctx context.Context, p policy.Principal, year, month int) (models.CommissionReport, error) {
	return f.reportFn(ctx, p, year, month)
}

type fakeSettingsService struct {
	getFn    func(ctx context.Context, p policy.Principal) (models.Settings, error)
	updateFn func(ctx context.Context, p policy.Principal, u models.SettingsUpdate) (models.Settings, error)
}

func (f *fakeSettingsService) GetSettings(ctx context.Context, p policy.Principal) (models.Settings, error) {
	return f.getFn(ctx, p)
}

func (f *fakeSettingsService) UpdateSettings(ctx context.Context, p policy.Principal, u models.SettingsUpdate) (models.Settings, error) {
	return f.updateFn(ctx, p, u)
}

type fakeBackupService struct {
	exportFn func(ctx context.Context, p policy.Principal) (models.Backup, error)
	importFn func(ctx context.Context, p policy.Principal, b models.Backup) (models.ImportSummary, error)
}

func (f *fakeBackupService) Export(ctx context.Context, p policy.Principal) (models.Backup, error) {
	return f.exportFn(ctx, p)
}

func (f *fakeBackupService) Import(ctx context.Context, p policy.Principal, b models.Backup) (models.ImportSummary, error) {
	return f.importFn(ctx, p, b)
}

type fakePostalCodeService struct {
	lookupFn func(ctx context.Context, cep string) (models.PostalAddress, error)
}

func (f *fakePostalCodeService) Lookup(ctx context.Context, cep string) (models.PostalAddress, error) {
	return f.lookupFn(ctx, cep)
}

type fakeAppInfoService struct {
	info   models.AppBuildInfo
	uptime time.Duration
}

func (f *fakeAppInfoService) BuildInfo(context.Context) models.AppBuildInfo {
	return f.info
}

func (f *fakeAppInfoService) Uptime(context.Context) time.Duration {
	return f.uptime
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	return f.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testCookieName = "corb3d_test_session"

var (
	adminSession = models.Session{
		ID:       "sess-admin",
		UserID:   "u-admin",
		Username: "ana",
		IsAdmin:  true,
	}
	masterSession = models.Session{
		ID:            "sess-master",
		UserID:        "u-master",
		Username:      "hcorbage",
		IsAdmin:       true,
		IsMasterAdmin: true,
	}
	sellerSession = models.Session{
		ID:       "sess-seller",
		UserID:   "u-seller",
		Username: "joao.silva",
	}
)

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			SessionCookieName: testCookieName,
			SessionTTL:        time.Hour,
		},
		Server: config.Server{HTTPAddress: ":0"},
	}
}

func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, testConfig(), logger.Nop())
}

// serveAs routes a request through the full router. A non-nil session is
// accepted by a fake auth service bound to the request's cookie and rebound
// on every call; an auth service supplied by the test is used as is.
func serveAs(t *testing.T, svcs *service.Services, session *models.Session, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	if bound, ok := svcs.AuthService.(*fakeAuthService); svcs.AuthService == nil || ok && bound.sessionBound {
		svcs.AuthService = &fakeAuthService{
			sessionBound: true,
			authenticateFn: func(_ context.Context, token string) (models.Session, error) {
				if session == nil || token != "token-"+session.ID {
					return models.Session{}, service.ErrNotAuthenticated
				}
				return *session, nil
			},
		}
	}

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token-" + session.ID})
	}

	rec := httptest.NewRecorder()
	newTestHandler(t, svcs).Init().ServeHTTP(rec, req)
	return rec
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.MessageResponse](t, rec).Message
}

func strPtr(s string) *string { return &s }

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/service"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/models"
	"github.com/stretchr/testify/require"
)

const testBearer = "Bearer valid-token"

var testIdentity = models.Identity{UserID: 7, Email: "alice@example.com"}

// ---- service mocks ----

type mockAuthService struct {
	registerFn     func(ctx context.Context, c models.Credentials) (models.User, models.Token, error)
	loginFn        func(ctx context.Context, c models.Credentials) (models.User, models.Token, error)
	authenticateFn func(ctx context.Context, header string) (models.Identity, error)
}

func (m *mockAuthService) Register(ctx context.Context, c models.Credentials) (models.User, models.Token, error) {
	return m.registerFn(ctx, c)
}

func (m *mockAuthService) Login(ctx context.Context, c models.Credentials) (models.User, models.Token, error) {
	return m.loginFn(ctx, c)
}

func (m *mockAuthService) CreateToken(context.Context, models.Identity) (models.Token, error) {
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(context.Context, string) (models.Token, error) {
	return models.Token{}, nil
}

// Authenticate accepts testBearer unless authenticateFn is set.
func (m *mockAuthService) Authenticate(ctx context.Context, header string) (models.Identity, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, header)
	}
	if header == testBearer {
		return testIdentity, nil
	}
	return models.Identity{}, service.ErrUnauthenticated
}

type mockPasswordResetService struct {
	requestResetFn func(ctx context.Context, email string) error
	consumeResetFn func(ctx context.Context, token, newPassword string) error
}

func (m *mockPasswordResetService) RequestReset(ctx context.Context, email string) error {
	return m.requestResetFn(ctx, email)
}

func (m *mockPasswordResetService) ConsumeReset(ctx context.Context, token, newPassword string) error {
	return m.consumeResetFn(ctx, token, newPassword)
}

func (m *mockPasswordResetService) SweepExpiredTokens(context.Context) (int64, error) {
	return 0, nil
}

type mockLibraryService struct {
	createFn func(ctx context.Context, userID int64, in models.LibraryInput) (models.Library, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Library, error)
	renameFn func(ctx context.Context, userID, libraryID int64, in models.LibraryInput) (models.Library, error)
	deleteFn func(ctx context.Context, userID, libraryID int64) error
}

func (m *mockLibraryService) CreateLibrary(ctx context.Context, userID int64, in models.LibraryInput) (models.Library, error) {
	return m.createFn(ctx, userID, in)
}

func (m *mockLibraryService) ListLibraries(ctx context.Context, userID int64) ([]models.Library, error) {
	return m.listFn(ctx, userID)
}

func (m *mockLibraryService) RenameLibrary(ctx context.Context, userID, libraryID int64, in models.LibraryInput) (models.Library, error) {
	return m.renameFn(ctx, userID, libraryID, in)
}

func (m *mockLibraryService) DeleteLibrary(ctx context.Context, userID, libraryID int64) error {
	return m.deleteFn(ctx, userID, libraryID)
}

type mockBookService struct {
	createFn func(ctx context.Context, userID, libraryID int64, in models.BookInput) (models.Book, error)
	listFn   func(ctx context.Context, userID, libraryID int64) ([]models.Book, error)
	updateFn func(ctx context.Context, userID, libraryID, bookID int64, upd models.BookUpdate) (models.Book, error)
	deleteFn func(ctx context.Context, userID, libraryID, bookID int64) error
	coverFn  func(ctx context.Context, userID, libraryID, bookID int64, data []byte) (models.Book, error)
}

func (m *mockBookService) CreateBook(ctx context.Context, userID, libraryID int64, in models.BookInput) (models.Book, error) {
	return m.createFn(ctx, userID, libraryID, in)
}

func (m *mockBookService) ListBooks(ctx context.Context, userID, libraryID int64) ([]models.Book, error) {
	return m.listFn(ctx, userID, libraryID)
}

func (m *mockBookService) UpdateBook(ctx context.Context, userID, libraryID, bookID int64, upd models.BookUpdate) (models.Book, error) {
	return m.updateFn(ctx, userID, libraryID, bookID, upd)
}

func (m *mockBookService) DeleteBook(ctx context.Context, userID, libraryID, bookID int64) error {
	return m.deleteFn(ctx, userID, libraryID, bookID)
}

func (m *mockBookService) UploadCover(ctx context.Context, userID, libraryID, bookID int64, data []byte) (models.Book, error) {
	return m.coverFn(ctx, userID, libraryID, bookID, data)
}

type mockBillingService struct {
	checkoutFn func(ctx context.Context, identity models.Identity, req models.CheckoutRequest) (models.CheckoutSession, error)
	webhookFn  func(ctx context.Context, payload []byte, signature string) (models.BillingEvent, error)
}

func (m *mockBillingService) CreateCheckoutSession(ctx context.Context, identity models.Identity, req models.CheckoutRequest) (models.CheckoutSession, error) {
	return m.checkoutFn(ctx, identity, req)
}

func (m *mockBillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) (models.BillingEvent, error) {
	return m.webhookFn(ctx, payload, signature)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.AppBuildInfo{}
}

// ---- helpers ----

// newTestServices fills every service with an empty mock; tests replace the
// ones they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:          &mockAuthService{},
		PasswordResetService: &mockPasswordResetService{},
		LibraryService:       &mockLibraryService{},
		BookService:          &mockBookService{},
		BillingService:       &mockBillingService{},
		AppInfoService:       &mockAppInfoService{version: "1.2.3"},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, nil, nil, nil, config.Server{}, logger.Nop())
}

// serve runs req through the full router of h.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", testBearer)
	return req
}

// withIdentity puts testIdentity into the request context the way the auth
// middleware does.
func withIdentity(req *http.Request) *http.Request {
	return req.WithContext(utils.WithIdentity(req.Context(), testIdentity))
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func serveRouter(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

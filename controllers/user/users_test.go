package userControllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/potteryshop/shop-api/mailer"
	"github.com/potteryshop/shop-api/models"
	"github.com/potteryshop/shop-api/routes"
	"github.com/potteryshop/shop-api/service"
	"github.com/potteryshop/shop-api/token"
)

func newTestRouter(users *memoryUserStore, sender *fakeSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authSvc := service.NewAuthService(
		users,
		token.NewIssuer([]byte("test-secret")),
		token.NewOTPStore(),
		sender,
		"http://localhost:8080",
		"shop@example.com",
	)
	cartSvc := service.NewCartService(&memoryCartStore{})

	r := gin.New()
	routes.SetupRoutes(r, authSvc, cartSvc)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupVerifyLoginOverHTTP(t *testing.T) {
	users := newMemoryUserStore()
	sender := &fakeSender{}
	r := newTestRouter(users, sender)

	w := postJSON(t, r, "/signup", gin.H{
		"name": "Ana", "email": "ana@x.com", "password": "secret1", "dateOfBirth": "2000-01-01",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"SUCCESS"`)

	// Login before verification is refused
	w = postJSON(t, r, "/login", gin.H{"email": "ana@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Email not verified")

	verifyToken := *users.users["ana@x.com"].VerificationToken
	req := httptest.NewRequest(http.MethodGet, "/verifytoken/"+verifyToken, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login.html", w.Header().Get("Location"))

	w = postJSON(t, r, "/login", gin.H{"email": "ana@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"SUCCESS"`)
	require.Contains(t, w.Body.String(), "/e-commerce.html")
}

func TestVerifyTokenInvalidOverHTTP(t *testing.T) {
	r := newTestRouter(newMemoryUserStore(), &fakeSender{})

	req := httptest.NewRequest(http.MethodGet, "/verifytoken/garbage", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Invalid or expired token", w.Body.String())
}

func TestForgotPasswordStatusCodes(t *testing.T) {
	users := newMemoryUserStore()
	sender := &fakeSender{}
	r := newTestRouter(users, sender)

	w := postJSON(t, r, "/forgot-password", gin.H{"email": "ghost@x.com"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "User not found")

	w = postJSON(t, r, "/signup", gin.H{
		"name": "Ana", "email": "ana@x.com", "password": "secret1", "dateOfBirth": "2000-01-01",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/forgot-password", gin.H{"email": "ana@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "OTP sent to email")
}

func TestResetPasswordStatusCodes(t *testing.T) {
	users := newMemoryUserStore()
	r := newTestRouter(users, &fakeSender{})

	w := postJSON(t, r, "/reset-password", gin.H{
		"email": "ana@x.com", "otp": "123456", "newPassword": "secret2",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "OTP not requested")
}

func TestSubscribeRequiresEmail(t *testing.T) {
	sender := &fakeSender{}
	r := newTestRouter(newMemoryUserStore(), sender)

	w := postJSON(t, r, "/subscribe", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/subscribe", gin.H{"email": "ana@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 1)
}

type memoryUserStore struct {
	users map[string]*models.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]*models.User)}
}

func (m *memoryUserStore) FindByEmail(email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memoryUserStore) Create(user *models.User) error {
	if _, ok := m.users[user.Email]; ok {
		return errors.New("duplicate email")
	}
	copied := *user
	m.users[user.Email] = &copied
	return nil
}

func (m *memoryUserStore) UpdateFields(email string, fields map[string]interface{}) error {
	user, ok := m.users[email]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "is_verified":
			user.IsVerified = value.(bool)
		case "verification_token":
			if value == nil {
				user.VerificationToken = nil
			} else {
				tok := value.(string)
				user.VerificationToken = &tok
			}
		case "password":
			user.Password = value.(string)
		}
	}
	return nil
}

type memoryCartStore struct {
	carts map[string]*models.Cart
}

func (m *memoryCartStore) FindByUserEmail(email string) (*models.Cart, error) {
	if m.carts == nil {
		return nil, nil
	}
	return m.carts[email], nil
}

func (m *memoryCartStore) Save(cart *models.Cart) error {
	if m.carts == nil {
		m.carts = make(map[string]*models.Cart)
	}
	m.carts[cart.UserEmail] = cart
	return nil
}

type fakeSender struct {
	sent []mailer.Message
}

func (f *fakeSender) Send(msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/potteryshop/shop-api/mailer"
	"github.com/potteryshop/shop-api/models"
	"github.com/potteryshop/shop-api/store"
	"github.com/potteryshop/shop-api/token"
)

// Post-auth destinations handed back to the HTTP layer.
const (
	LoginRedirect  = "/e-commerce.html"
	VerifyRedirect = "/login.html"
)

// AuthService orchestrates signup, verification, login and password
// reset against the user store, token issuer and mail sender.
type AuthService struct {
	users   store.UserStore
	tokens  *token.Issuer
	otps    *token.OTPStore
	mail    mailer.Sender
	baseURL string
	from    string
}

func NewAuthService(users store.UserStore, tokens *token.Issuer, otps *token.OTPStore, mail mailer.Sender, baseURL, from string) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		otps:    otps,
		mail:    mail,
		baseURL: baseURL,
		from:    from,
	}
}

// Signup registers a new unverified user and emails a verification
// link. The user insert and the mail send are not atomic: a user may be
// persisted even if the mail fails, in which case the error is surfaced
// and logged rather than rolled back.
func (s *AuthService) Signup(name, email, password, dateOfBirth string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	dateOfBirth = strings.TrimSpace(dateOfBirth)
	if name == "" || email == "" || password == "" || dateOfBirth == "" {
		return ErrEmptyFields
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	verifyToken, err := s.tokens.Issue(email)
	if err != nil {
		return fmt.Errorf("issue verification token: %w", err)
	}

	user := models.User{
		ID:                uuid.NewString(),
		Name:              name,
		Email:             email,
		Password:          string(hash),
		DateOfBirth:       dateOfBirth,
		VerificationToken: &verifyToken,
	}
	if err := s.users.Create(&user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	url := s.baseURL + "/verifytoken/" + verifyToken
	err = s.mail.Send(mailer.Message{
		From:     fmt.Sprintf("%q <%s>", "Pottery Shop", s.from),
		To:       email,
		Subject:  "Verify your email",
		HTMLBody: fmt.Sprintf(`<h3>Click <a href="%s">here</a> to verify your email</h3>`, url),
	})
	if err != nil {
		log.Printf("signup: user %s created but verification mail failed: %v", email, err)
		return fmt.Errorf("send verification mail: %w", err)
	}
	return nil
}

// VerifyToken confirms account ownership. The token must validate and
// exactly match the one stored at signup; expired, tampered, unknown and
// already-used tokens all collapse to ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	email, err := s.tokens.Validate(tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil || user.VerificationToken == nil || *user.VerificationToken != tokenString {
		return "", ErrInvalidToken
	}

	err = s.users.UpdateFields(email, map[string]interface{}{
		"is_verified":        true,
		"verification_token": nil,
	})
	if err != nil {
		return "", fmt.Errorf("update user: %w", err)
	}
	return VerifyRedirect, nil
}

// Login checks credentials and returns the post-login destination. No
// session token is issued here.
func (s *AuthService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrEmptyFields
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if !user.IsVerified {
		return "", ErrEmailNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return LoginRedirect, nil
}

// ForgotPassword issues a reset code and mails it in plain text.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	code, err := s.otps.Issue(email)
	if err != nil {
		return fmt.Errorf("issue otp: %w", err)
	}

	err = s.mail.Send(mailer.Message{
		From:     s.from,
		To:       email,
		Subject:  "Password Reset OTP",
		TextBody: fmt.Sprintf("Your OTP is %d. It is valid for 5 minutes.", code),
	})
	if err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}

// ResetPassword validates the supplied code and overwrites the stored
// password hash. The code is consumed only after the update lands, so a
// failed update leaves it usable.
func (s *AuthService) ResetPassword(email, otp, newPassword string) error {
	if err := s.otps.Validate(email, otp); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.users.UpdateFields(email, map[string]interface{}{"password": string(hash)})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.otps.Consume(email)
	return nil
}

// Subscribe sends the newsletter welcome mail.
func (s *AuthService) Subscribe(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyFields
	}

	err := s.mail.Send(mailer.Message{
		From:     fmt.Sprintf("%q <%s>", "Pottery Shop", s.from),
		To:       email,
		Subject:  "Welcome to Pottery Collaboration 🤝",
		TextBody: "Hello, welcome to our pottery community! We're excited to collaborate with you.",
		HTMLBody: `<h2>Welcome!</h2><p>Thanks for collaborating with us. Stay tuned for exciting updates.</p>`,
	})
	if err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}
	return nil
}

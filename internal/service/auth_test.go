package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/invtrack/backend/internal/config"
	"github.com/invtrack/backend/internal/model"
)

type fakeUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserStore) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	f.nextID++
	user := &model.User{ID: f.nextID, Username: username, PasswordHash: passwordHash}
	f.users[username] = user
	return user, nil
}

func (f *fakeUserStore) add(t *testing.T, username, password string) {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if _, err := f.CreateUser(context.Background(), username, hash); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
}

func newTestAuthService(t *testing.T, store UserStore) *AuthService {
	t.Helper()
	svc, err := NewAuthService(store, config.AuthConfig{
		Secret:           "test-secret",
		Algorithm:        "HS256",
		AccessTTLMinutes: "30",
	})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc
}

func TestHashPasswordSaltedAndVerifiable(t *testing.T) {
	h1, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for repeated calls")
	}
	for _, h := range []string{h1, h2} {
		if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("secret123")); err != nil {
			t.Fatalf("hash does not verify: %v", err)
		}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h1), []byte("other-password")); err == nil {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "testuser", "secret123")
	svc := newTestAuthService(t, store)

	token, err := svc.Login(context.Background(), "testuser", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	user, err := svc.Authorize(context.Background(), token)
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if user.Username != "testuser" {
		t.Fatalf("expected testuser, got %q", user.Username)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "testuser", "secret123")
	svc := newTestAuthService(t, store)

	_, wrongPassErr := svc.Login(context.Background(), "testuser", "wrong")
	_, noUserErr := svc.Login(context.Background(), "nouser", "x")

	if wrongPassErr != ErrUnauthorized {
		t.Fatalf("wrong password: expected ErrUnauthorized, got %v", wrongPassErr)
	}
	if noUserErr != ErrUnauthorized {
		t.Fatalf("unknown user: expected ErrUnauthorized, got %v", noUserErr)
	}
	if wrongPassErr != noUserErr {
		t.Fatalf("expected identical errors for wrong password and unknown user")
	}
}

func TestLoginMalformedStoredHash(t *testing.T) {
	store := newFakeUserStore()
	store.users["broken"] = &model.User{ID: 1, Username: "broken", PasswordHash: "not-a-bcrypt-hash"}
	svc := newTestAuthService(t, store)

	if _, err := svc.Login(context.Background(), "broken", "whatever"); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthorizeRejectsTamperedToken(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "testuser", "secret123")
	svc := newTestAuthService(t, store)

	token, err := svc.Login(context.Background(), "testuser", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	parts := strings.SplitN(token, ".", 3)
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	claims := []byte(parts[1])
	if claims[0] == 'A' {
		claims[0] = 'B'
	} else {
		claims[0] = 'A'
	}
	tampered := parts[0] + "." + string(claims) + "." + parts[2]

	if _, err := svc.Authorize(context.Background(), tampered); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestAuthorizeRejectsWrongSecret(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "testuser", "secret123")

	other, err := NewAuthService(store, config.AuthConfig{
		Secret:           "other-secret",
		Algorithm:        "HS256",
		AccessTTLMinutes: "30",
	})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	token, err := other.Login(context.Background(), "testuser", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	svc := newTestAuthService(t, store)
	if _, err := svc.Authorize(context.Background(), token); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for foreign signature, got %v", err)
	}
}

func TestAuthorizeExpiry(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "testuser", "secret123")
	svc := newTestAuthService(t, store)

	base := time.Now()
	svc.now = func() time.Time { return base }

	token, err := svc.Login(context.Background(), "testuser", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	svc.now = func() time.Time { return base.Add(29 * time.Minute) }
	if _, err := svc.Authorize(context.Background(), token); err != nil {
		t.Fatalf("expected token valid at minute 29, got %v", err)
	}

	svc.now = func() time.Time { return base.Add(31 * time.Minute) }
	if _, err := svc.Authorize(context.Background(), token); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized at minute 31, got %v", err)
	}
}

func TestAuthorizeRejectsDeletedUser(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "testuser", "secret123")
	svc := newTestAuthService(t, store)

	token, err := svc.Login(context.Background(), "testuser", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	delete(store.users, "testuser")

	if _, err := svc.Authorize(context.Background(), token); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for deleted user, got %v", err)
	}
}

func TestAuthorizeRejectsGarbage(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(t, store)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Authorize(context.Background(), token); err != ErrUnauthorized {
			t.Fatalf("token %q: expected ErrUnauthorized, got %v", token, err)
		}
	}
}

func TestNewAuthServiceValidation(t *testing.T) {
	store := newFakeUserStore()

	cases := []struct {
		name string
		cfg  config.AuthConfig
	}{
		{"missing secret", config.AuthConfig{Algorithm: "HS256", AccessTTLMinutes: "30"}},
		{"unknown algorithm", config.AuthConfig{Secret: "s", Algorithm: "bogus", AccessTTLMinutes: "30"}},
		{"non-hmac algorithm", config.AuthConfig{Secret: "s", Algorithm: "RS256", AccessTTLMinutes: "30"}},
		{"bad ttl", config.AuthConfig{Secret: "s", Algorithm: "HS256", AccessTTLMinutes: "soon"}},
		{"zero ttl", config.AuthConfig{Secret: "s", Algorithm: "HS256", AccessTTLMinutes: "0"}},
	}

	for _, tc := range cases {
		if _, err := NewAuthService(store, tc.cfg); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestEnsureUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(t, store)

	if err := svc.EnsureUser(context.Background(), "testuser", "secret123"); err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	if _, ok := store.users["testuser"]; !ok {
		t.Fatalf("expected user to be created")
	}

	hash := store.users["testuser"].PasswordHash
	if err := svc.EnsureUser(context.Background(), "testuser", "secret123"); err != nil {
		t.Fatalf("EnsureUser (existing): %v", err)
	}
	if store.users["testuser"].PasswordHash != hash {
		t.Fatalf("existing user must not be modified")
	}

	if err := svc.EnsureUser(context.Background(), "ab", "secret123"); err != ErrInvalidInput {
		t.Fatalf("short username: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.EnsureUser(context.Background(), "newuser", "short"); err != ErrInvalidInput {
		t.Fatalf("short password: expected ErrInvalidInput, got %v", err)
	}
}

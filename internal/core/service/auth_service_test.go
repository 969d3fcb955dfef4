package service

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/financetrack/finance-api/internal/core/domain"
)

// stubUserRepo enforces email uniqueness under a mutex so concurrent
// registrations exercise the same guarantee the unique index provides.
type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[email]
	return ok, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			found := cloneUser(u)
			found.PasswordHash = ""
			return found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubUserCache struct {
	mu    sync.Mutex
	users map[string]*domain.User
	hits  int
}

func newStubUserCache() *stubUserCache {
	return &stubUserCache{users: make(map[string]*domain.User)}
}

func (c *stubUserCache) Get(_ context.Context, id string) (*domain.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok := c.users[id]
	if ok {
		c.hits++
	}
	return cloneUser(u), ok
}

func (c *stubUserCache) Set(_ context.Context, user *domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[user.ID] = cloneUser(user)
}

func newTestAuthService(repo *stubUserRepo, cache *stubUserCache) *AuthService {
	tokens := NewJWTTokenService("test-secret", time.Hour)
	return NewAuthService(repo, NewBcryptHasher(), tokens, cache, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubUserCache())

	user, err := svc.Register(context.Background(), "Ana", "a@x.com", "pw123456", "pw123456")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if !NewBcryptHasher().Verify("pw123456", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubUserCache())
	ctx := context.Background()

	cases := []struct {
		name, userName, email, password, confirm string
		want                                     error
	}{
		{"missing name", "", "a@x.com", "pw", "pw", domain.ErrNameRequired},
		{"missing email", "Ana", "", "pw", "pw", domain.ErrEmailRequired},
		{"missing password", "Ana", "a@x.com", "", "", domain.ErrPasswordRequired},
		{"mismatch", "Ana", "a@x.com", "pw1", "pw2", domain.ErrPasswordMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tc.userName, tc.email, tc.password, tc.confirm); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubUserCache())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456", "pw123456"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "Bea", "a@x.com", "other123", "other123"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_ConcurrentSameEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubUserCache())
	ctx := context.Background()

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, "Ana", "race@x.com", "pw123456", "pw123456")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		switch err {
		case nil:
			successes++
		case domain.ErrEmailTaken:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one success and one conflict, got %d/%d", successes, conflicts)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubUserCache())
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456", "pw123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(ctx, "a@x.com", "pw123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	subject, err := NewJWTTokenService("test-secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}
	if subject != created.ID {
		t.Fatalf("token subject %q, want %q", subject, created.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubUserCache())
	ctx := context.Background()

	_, _ = svc.Register(ctx, "Ana", "a@x.com", "pw123456", "pw123456")
	token, err := svc.Login(ctx, "a@x.com", "wrongpass")
	if err != domain.ErrWrongPassword {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected no token on failed login")
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubUserCache())

	if _, err := svc.Login(context.Background(), "ghost@x.com", "pw"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubUserCache())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "", "pw"); err != domain.ErrEmailRequired {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
	if _, err := svc.Login(ctx, "a@x.com", ""); err != domain.ErrPasswordRequired {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestAuthService_GetUser_CacheMissThenHit(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubUserCache()
	svc := newTestAuthService(repo, cache)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ana", "a@x.com", "pw123456", "pw123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	first, err := svc.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("first lookup failed: %v", err)
	}
	if first.PasswordHash != "" {
		t.Fatalf("profile lookup leaked the password hash")
	}

	second, err := svc.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected one cache hit, got %d", cache.hits)
	}
	if second.Email != first.Email {
		t.Fatalf("cached user diverged: %+v vs %+v", second, first)
	}
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubUserCache())

	if _, err := svc.GetUser(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

package account_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/acmeconsole/modules/account"
	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/pkg/validator"
)

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(ctx context.Context, email, password string) (*auth.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

type mockRegistrar struct {
	mock.Mock
}

func (m *mockRegistrar) Register(ctx context.Context, email, password string) (*auth.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func ptr(s string) *string { return &s }

func TestSubmit_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		creds account.Credentials
		want  account.FormErrors
	}{
		{
			name:  "email without at sign",
			creds: account.Credentials{Email: "nobody", Password: "x"},
			want:  account.FormErrors{Email: ptr(account.MsgEmailInvalid)},
		},
		{
			name:  "email too short",
			creds: account.Credentials{Email: "a@b", Password: "x"},
			want:  account.FormErrors{Email: ptr(account.MsgEmailInvalid)},
		},
		{
			name:  "empty email and password reports email only",
			creds: account.Credentials{},
			want:  account.FormErrors{Email: ptr(account.MsgEmailInvalid)},
		},
		{
			name:  "empty password",
			creds: account.Credentials{Email: "a@b.c"},
			want:  account.FormErrors{Password: ptr(account.MsgPasswordRequired)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := &mockVerifier{}
			res := account.Submit(context.Background(), v, tt.creds)

			assert.Equal(t, http.StatusBadRequest, res.Status)
			assert.Equal(t, tt.want, res.Errors)
			assert.False(t, res.OK())
			v.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmit_WhitespacePasswordReachesVerifier(t *testing.T) {
	t.Parallel()

	v := &mockVerifier{}
	v.On("Verify", mock.Anything, "a@b.com", "   ").Return(nil, auth.ErrInvalidCredentials)

	res := account.Submit(context.Background(), v, account.Credentials{Email: "a@b.com", Password: "   "})
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, account.FormErrors{Email: ptr(account.MsgInvalidCredentials)}, res.Errors)
	v.AssertExpectations(t)
}

func TestSubmit_Verifier(t *testing.T) {
	t.Parallel()

	user := &auth.User{ID: uuid.New(), Email: "sofia@acme.com"}
	creds := account.Credentials{Email: "sofia@acme.com", Password: "secret", RedirectTo: "/reports?range=30d"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		v := &mockVerifier{}
		v.On("Verify", mock.Anything, creds.Email, creds.Password).Return(user, nil)

		res := account.Submit(context.Background(), v, creds)
		require.True(t, res.OK())
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "/reports?range=30d", res.RedirectTo)
		assert.True(t, res.Errors.Empty())
		assert.Same(t, user, res.User)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()
		v := &mockVerifier{}
		v.On("Verify", mock.Anything, creds.Email, creds.Password).Return(nil, auth.ErrInvalidCredentials)

		res := account.Submit(context.Background(), v, creds)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, account.FormErrors{Email: ptr(account.MsgInvalidCredentials)}, res.Errors)
	})

	t.Run("no user and no error", func(t *testing.T) {
		t.Parallel()
		v := &mockVerifier{}
		v.On("Verify", mock.Anything, creds.Email, creds.Password).Return(nil, nil)

		res := account.Submit(context.Background(), v, creds)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, ptr(account.MsgInvalidCredentials), res.Errors.Email)
	})

	for _, upstream := range []error{
		errors.Join(auth.ErrUnavailable, errors.New("connection refused")),
		context.DeadlineExceeded,
		errors.New("unexpected"),
	} {
		t.Run("upstream failure: "+upstream.Error(), func(t *testing.T) {
			t.Parallel()
			v := &mockVerifier{}
			v.On("Verify", mock.Anything, creds.Email, creds.Password).Return(nil, upstream)

			res := account.Submit(context.Background(), v, creds)
			assert.Equal(t, http.StatusServiceUnavailable, res.Status)
			assert.True(t, res.Errors.Empty(), "unavailable must not surface as a field error")
			assert.Equal(t, account.MsgUnavailable, res.Message)
			assert.False(t, res.OK())
		})
	}
}

func TestSubmit_RedirectSanitizing(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                     "/",
		"/dashboard":           "/dashboard",
		"//evil.example":       "/",
		`/\evil.example`:       "/",
		"https://evil.example": "/",
		"dashboard":            "/",
		"/ok\nSet-Cookie: x":   "/",
	}

	for raw, want := range tests {
		// validation failures still carry the sanitized target
		res := account.Submit(context.Background(), &mockVerifier{}, account.Credentials{RedirectTo: raw})
		assert.Equal(t, want, res.RedirectTo, "redirectTo %q", raw)
	}
}

func TestSubmitRegistration(t *testing.T) {
	t.Parallel()

	creds := account.Credentials{Email: "new@acme.com", Password: "Str0ngpass"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		user := &auth.User{ID: uuid.New()}
		r := &mockRegistrar{}
		r.On("Register", mock.Anything, creds.Email, creds.Password).Return(user, nil)

		res := account.SubmitRegistration(context.Background(), r, creds)
		assert.True(t, res.OK())
		assert.Equal(t, "/", res.RedirectTo)
	})

	t.Run("existing email", func(t *testing.T) {
		t.Parallel()
		r := &mockRegistrar{}
		r.On("Register", mock.Anything, creds.Email, creds.Password).Return(nil, auth.ErrEmailAlreadyExists)

		res := account.SubmitRegistration(context.Background(), r, creds)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, account.FormErrors{Email: ptr(account.MsgEmailTaken)}, res.Errors)
	})

	t.Run("weak password", func(t *testing.T) {
		t.Parallel()
		weak := validator.StrongPassword("password", "abc", validator.DefaultPasswordStrength())
		r := &mockRegistrar{}
		r.On("Register", mock.Anything, creds.Email, "abc").Return(nil, validator.ValidationErrors{weak.Error})

		res := account.SubmitRegistration(context.Background(), r, account.Credentials{Email: creds.Email, Password: "abc"})
		assert.Equal(t, http.StatusBadRequest, res.Status)
		require.NotNil(t, res.Errors.Password)
		assert.Contains(t, *res.Errors.Password, "Password must be at least 8 characters")
		assert.Nil(t, res.Errors.Email)
	})

	t.Run("password longer than bcrypt accepts", func(t *testing.T) {
		t.Parallel()
		users := auth.NewPasswordService(auth.NewMemoryStorage(), auth.WithBcryptCost(bcrypt.MinCost))

		long := "Aa1" + strings.Repeat("x", 80)
		res := account.SubmitRegistration(context.Background(), users, account.Credentials{Email: creds.Email, Password: long})
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Empty(t, res.Message)
		assert.Nil(t, res.Errors.Email)
		require.NotNil(t, res.Errors.Password)
		assert.Equal(t, "Password must be at most 72 bytes long", *res.Errors.Password)
	})

	t.Run("upstream failure", func(t *testing.T) {
		t.Parallel()
		r := &mockRegistrar{}
		r.On("Register", mock.Anything, creds.Email, creds.Password).Return(nil, errors.New("db down"))

		res := account.SubmitRegistration(context.Background(), r, creds)
		assert.Equal(t, http.StatusServiceUnavailable, res.Status)
		assert.True(t, res.Errors.Empty())
	})

	t.Run("validation runs first", func(t *testing.T) {
		t.Parallel()
		r := &mockRegistrar{}
		res := account.SubmitRegistration(context.Background(), r, account.Credentials{Email: "x"})
		assert.Equal(t, ptr(account.MsgEmailInvalid), res.Errors.Email)
		r.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})
}

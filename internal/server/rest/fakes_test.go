package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/snsplatform/internal/logging"
	"github.com/dmitrijs2005/snsplatform/internal/server/models"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeUsers struct {
	list   func(ctx context.Context, page, limit int) (*models.UserPage, error)
	get    func(ctx context.Context, id string) (*models.UserWithCount, error)
	create func(ctx context.Context, in *models.NewUser) (*models.User, error)
	update func(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	delete func(ctx context.Context, id string) error
}

func (f *fakeUsers) List(ctx context.Context, page, limit int) (*models.UserPage, error) {
	return f.list(ctx, page, limit)
}
func (f *fakeUsers) Get(ctx context.Context, id string) (*models.UserWithCount, error) {
	return f.get(ctx, id)
}
func (f *fakeUsers) Create(ctx context.Context, in *models.NewUser) (*models.User, error) {
	return f.create(ctx, in)
}
func (f *fakeUsers) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	return f.update(ctx, id, patch)
}
func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	return f.delete(ctx, id)
}

type fakeMedia struct {
	presign func(ctx context.Context, userID, contentType string) (*models.ProfileImageUpload, error)
}

func (f *fakeMedia) PresignProfileImageUpload(ctx context.Context, userID, contentType string) (*models.ProfileImageUpload, error) {
	return f.presign(ctx, userID, contentType)
}

var testOptions = Options{
	FrontendURL:  "http://localhost:3000",
	Environment:  "test",
	MaxBodyBytes: 1 << 20,
}

func newTestHandler(users *fakeUsers, media *fakeMedia) http.Handler {
	if users == nil {
		users = &fakeUsers{}
	}
	if media == nil {
		media = &fakeMedia{}
	}
	return NewHandler(users, media, nopLogger{}, testOptions)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

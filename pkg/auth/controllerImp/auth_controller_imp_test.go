package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"petrolog/entities"
	"petrolog/pkg/auth"
	"petrolog/pkg/auth/controller"
	"petrolog/pkg/auth/repositoryImp"
)

func newTestCtrl(t *testing.T) controller.AuthController {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return New(repositoryImp.New(db), "test-secret")
}

func postJSON(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	ctrl := newTestCtrl(t)

	rec := postJSON(t, ctrl.Register, `{"username":"alice","email":"Alice@Example.com","password":"pw12345"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = postJSON(t, ctrl.Login, `{"username":"alice","password":"pw12345"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "alice@example.com", out.User.Email, "emails are stored lowercased")

	uid, err := auth.ParseToken("test-secret", out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, uid)
}

func TestLoginByEmail(t *testing.T) {
	ctrl := newTestCtrl(t)
	postJSON(t, ctrl.Register, `{"username":"bob","email":"bob@example.com","password":"pw12345"}`)

	rec := postJSON(t, ctrl.Login, `{"username":"bob@example.com","password":"pw12345"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := newTestCtrl(t)
	postJSON(t, ctrl.Register, `{"username":"bob","email":"bob@example.com","password":"pw12345"}`)

	rec := postJSON(t, ctrl.Login, `{"username":"bob","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctrl := newTestCtrl(t)
	postJSON(t, ctrl.Register, `{"username":"bob","email":"bob@example.com","password":"pw12345"}`)

	rec := postJSON(t, ctrl.Register, `{"username":"bob","email":"other@example.com","password":"pw12345"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	ctrl := newTestCtrl(t)
	rec := postJSON(t, ctrl.Register, `{"username":"bob"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

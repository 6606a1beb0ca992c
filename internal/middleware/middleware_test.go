package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedAdmin bool

func (a fixedAdmin) IsAdmin() bool { return bool(a) }

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireAdmin(t *testing.T) {
	logger, _ := test.NewNullLogger()

	for name, tc := range map[string]struct {
		admin fixedAdmin
		code  int
	}{
		"admin passes":       {admin: true, code: http.StatusOK},
		"customer forbidden": {admin: false, code: http.StatusForbidden},
	} {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin", RequireAdmin(tc.admin, logger), func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestID(), RequestLogger(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	t.Run("generated id and info entry", func(t *testing.T) {
		hook.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, http.StatusNoContent, entry.Data["status_code"])
		assert.Equal(t, id, entry.Data["request_id"])
	})

	t.Run("incoming id kept and client error warned", func(t *testing.T) {
		hook.Reset()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
	})
}

package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"
	"teamstack/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUserRouter(svc *mocks.MockUserService, userID string) *gin.Engine {
	h := NewUserHandler(svc)
	r := gin.New()
	r.GET("/users/me", setUserID(userID), h.GetMe)
	r.PUT("/users/me", setUserID(userID), h.UpdateMe)
	r.DELETE("/users/me", setUserID(userID), h.DeleteMe)
	return r
}

func TestUserHandler_GetMe(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns profile", func(t *testing.T) {
		svc := &mocks.MockUserService{
			GetUserFunc: func(ctx context.Context, id string) (*models.User, error) {
				assert.Equal(t, userID.Hex(), id)
				return &models.User{ID: userID, Email: "user@example.com", Name: "Jamie Rivera"}, nil
			},
		}

		r := newUserRouter(svc, userID.Hex())
		req := httptest.NewRequest("GET", "/users/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		data := env.Data.(map[string]interface{})
		assert.Equal(t, "user@example.com", data["email"])
		// Password hash must never serialize
		assert.NotContains(t, data, "password")
	})

	t.Run("missing user id", func(t *testing.T) {
		r := newUserRouter(&mocks.MockUserService{}, "")
		req := httptest.NewRequest("GET", "/users/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mocks.MockUserService{
			GetUserFunc: func(ctx context.Context, id string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}

		r := newUserRouter(svc, userID.Hex())
		req := httptest.NewRequest("GET", "/users/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_UpdateMe(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("updates name", func(t *testing.T) {
		svc := &mocks.MockUserService{
			UpdateUserFunc: func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
				require.NotNil(t, req.Name)
				return &models.User{ID: userID, Name: *req.Name}, nil
			},
		}

		r := newUserRouter(svc, userID.Hex())
		req := httptest.NewRequest("PUT", "/users/me", bytes.NewBufferString(`{"name":"Jamie R."}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		data := env.Data.(map[string]interface{})
		assert.Equal(t, "Jamie R.", data["name"])
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		r := newUserRouter(&mocks.MockUserService{}, userID.Hex())
		req := httptest.NewRequest("PUT", "/users/me", bytes.NewBufferString(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_DeleteMe(t *testing.T) {
	userID := primitive.NewObjectID()

	var deleted bool
	svc := &mocks.MockUserService{
		DeleteUserFunc: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}

	r := newUserRouter(svc, userID.Hex())
	req := httptest.NewRequest("DELETE", "/users/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deleted)
}

package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/annazkh/bookmarket/internal/auth"
	"github.com/annazkh/bookmarket/internal/config"
	"github.com/annazkh/bookmarket/internal/domain/models"
	"github.com/annazkh/bookmarket/internal/server"
	"github.com/annazkh/bookmarket/internal/server/mocks"
	storerrros "github.com/annazkh/bookmarket/internal/storage/errors"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func newTestServer(stor server.Storage) *server.Server {
	cfg := config.Config{
		Addr: ":8080",
	}
	return server.New(cfg, stor, auth.NewTokenManager("test-secret", time.Hour))
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("success", func(t *testing.T) {
		mockStorage.EXPECT().SaveSeller(gomock.Any()).DoAndReturn(func(seller models.Seller) (models.Seller, error) {
			assert.Equal(t, "a@x.com", seller.Email)
			seller.ID = 1
			seller.Pass = "$2a$10$fakehash"
			return seller, nil
		})

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest("POST", "/jwt/signup",
			`{"email":"a@x.com","password":"secret1","first_name":"Ivan","second_name":"Petrov"}`)

		s.SignUp(ctx)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"a@x.com"`)
		assert.NotContains(t, w.Body.String(), "secret1")
		assert.NotContains(t, w.Body.String(), "fakehash")
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockStorage.EXPECT().SaveSeller(gomock.Any()).Return(models.Seller{}, storerrros.ErrSellerExists)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest("POST", "/jwt/signup",
			`{"email":"a@x.com","password":"secret1"}`)

		s.SignUp(ctx)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("password too short", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest("POST", "/jwt/signup",
			`{"email":"a@x.com","password":"abcd"}`)

		s.SignUp(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest("POST", "/jwt/signup", `invalid json`)

		s.SignUp(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("success", func(t *testing.T) {
		mockStorage.EXPECT().ValidSeller("a@x.com", "secret1").
			Return(models.Seller{ID: 1, Email: "a@x.com"}, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest("POST", "/jwt/login", `{"email":"a@x.com","password":"secret1"}`)

		s.LogIn(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access_token")
		assert.Contains(t, w.Body.String(), "Bearer")
		assert.NotEmpty(t, w.Header().Get("Authorization"))
	})

	t.Run("wrong password", func(t *testing.T) {
		mockStorage.EXPECT().ValidSeller("a@x.com", "wrong").
			Return(models.Seller{}, storerrros.ErrAuthFailed)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest("POST", "/jwt/login", `{"email":"a@x.com","password":"wrong"}`)

		s.LogIn(ctx)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, storerrros.ErrAuthFailed.Error(), w.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		mockStorage.EXPECT().ValidSeller("nobody@x.com", "secret1").
			Return(models.Seller{}, storerrros.ErrAuthFailed)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest("POST", "/jwt/login", `{"email":"nobody@x.com","password":"secret1"}`)

		s.LogIn(ctx)

		// same undifferentiated answer as for a wrong password
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, storerrros.ErrAuthFailed.Error(), w.Body.String())
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	router := gin.New()
	router.GET("/protected", s.JWTAuthMiddleware(), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	token, err := s.Tokens.Issue(1, "a@x.com")
	assert.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		mockStorage.EXPECT().GetSeller(int64(1)).Return(models.Seller{ID: 1, Email: "a@x.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("deleted seller", func(t *testing.T) {
		mockStorage.EXPECT().GetSeller(int64(1)).Return(models.Seller{}, storerrros.ErrSellerNotFound)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token+"xx")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSelfInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("success with books", func(t *testing.T) {
		mockStorage.EXPECT().GetSeller(int64(1)).Return(models.Seller{ID: 1, Email: "a@x.com"}, nil)
		mockStorage.EXPECT().GetSellerBooks(int64(1)).Return([]models.Book{{ID: 5, SellerID: 1, Title: "T"}}, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Set("sid", int64(1))

		s.SelfInfo(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@x.com")
		assert.Contains(t, w.Body.String(), `"T"`)
	})

	t.Run("missing sid", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		s.SelfInfo(ctx)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("partial fields", func(t *testing.T) {
		mockStorage.EXPECT().UpdateSeller(int64(1), gomock.Any()).
			DoAndReturn(func(id int64, upd models.SellerUpdate) (models.Seller, error) {
				assert.NotNil(t, upd.FirstName)
				assert.Equal(t, "Anna", *upd.FirstName)
				assert.Nil(t, upd.SecondName)
				assert.Nil(t, upd.Email)
				return models.Seller{ID: 1, FirstName: "Anna", Email: "a@x.com"}, nil
			})

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Set("sid", int64(1))
		ctx.Request = jsonRequest("PUT", "/jwt/sellers/me", `{"first_name":"Anna"}`)

		s.UpdateSelf(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Anna")
	})

	t.Run("email taken", func(t *testing.T) {
		mockStorage.EXPECT().UpdateSeller(int64(1), gomock.Any()).
			Return(models.Seller{}, storerrros.ErrSellerExists)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Set("sid", int64(1))
		ctx.Request = jsonRequest("PUT", "/jwt/sellers/me", `{"email":"b@x.com"}`)

		s.UpdateSelf(ctx)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDeleteSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("success", func(t *testing.T) {
		mockStorage.EXPECT().DeleteSeller(int64(1)).Return(nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Set("sid", int64(1))

		s.DeleteSelf(ctx)
		// flush the deferred status header, as gin's engine does after the
		// handler chain when nothing is written to the body
		ctx.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("already gone", func(t *testing.T) {
		mockStorage.EXPECT().DeleteSeller(int64(1)).Return(storerrros.ErrSellerNotFound)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Set("sid", int64(1))

		s.DeleteSelf(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAllSellers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("success", func(t *testing.T) {
		mockStorage.EXPECT().GetSellers().Return([]models.Seller{
			{ID: 1, Email: "a@x.com"},
			{ID: 2, Email: "b@x.com"},
		}, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		s.AllSellers(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@x.com")
		assert.Contains(t, w.Body.String(), "b@x.com")
	})

	t.Run("empty list", func(t *testing.T) {
		mockStorage.EXPECT().GetSellers().Return(nil, storerrros.ErrEmptySellersList)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		s.AllSellers(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSellerInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("success", func(t *testing.T) {
		mockStorage.EXPECT().GetSeller(int64(7)).Return(models.Seller{ID: 7, Email: "a@x.com"}, nil)
		mockStorage.EXPECT().GetSellerBooks(int64(7)).Return([]models.Book{}, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "7"}}

		s.SellerInfo(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@x.com")
	})

	t.Run("not found", func(t *testing.T) {
		mockStorage.EXPECT().GetSeller(int64(7)).Return(models.Seller{}, storerrros.ErrSellerNotFound)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "7"}}

		s.SellerInfo(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "abc"}}

		s.SellerInfo(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

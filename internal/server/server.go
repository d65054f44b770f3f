package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/annazkh/bookmarket/internal/auth"
	"github.com/annazkh/bookmarket/internal/config"
	"github.com/annazkh/bookmarket/internal/domain/models"
	"github.com/annazkh/bookmarket/internal/logger"
	storerrros "github.com/annazkh/bookmarket/internal/storage/errors"
)

//go:generate mockgen -source=server.go -destination=./mocks/service_mock.go -package=mocks

type Storage interface {
	SaveSeller(models.Seller) (models.Seller, error)
	ValidSeller(email, pass string) (models.Seller, error)
	GetSeller(id int64) (models.Seller, error)
	GetSellers() ([]models.Seller, error)
	UpdateSeller(id int64, upd models.SellerUpdate) (models.Seller, error)
	DeleteSeller(id int64) error
	SaveBook(models.Book) (models.Book, error)
	GetBook(id int64) (models.Book, error)
	GetBooks() ([]models.Book, error)
	GetSellerBooks(sellerID int64) ([]models.Book, error)
	UpdateBook(sellerID, bookID int64, upd models.BookUpdate) (models.Book, error)
	DeleteBook(sellerID, bookID int64) error
}

type Server struct {
	serv    *http.Server
	valid   *validator.Validate
	Storage Storage
	Tokens  *auth.TokenManager
	ErrChan chan error
}

func New(cfg config.Config, stor Storage, tokens *auth.TokenManager) *Server {
	server := http.Server{ //nolint:gosec // not today
		Addr: cfg.Addr,
	}
	valid := validator.New()
	return &Server{
		serv:    &server,
		valid:   valid,
		Storage: stor,
		Tokens:  tokens,
		ErrChan: make(chan error),
	}
}

func (s *Server) ShutdownServer() error {
	return s.serv.Shutdown(context.Background())
}

func (s *Server) Run(ctx context.Context) error {
	log := logger.Get()
	router := gin.Default()
	router.Use(RequestIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))
	router.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, "Hello") })

	jwtGroup := router.Group("/jwt")
	{
		jwtGroup.POST("/signup", s.SignUp)
		jwtGroup.POST("/login", s.LogIn)
		me := jwtGroup.Group("/sellers/me", s.JWTAuthMiddleware())
		{
			me.GET("", s.SelfInfo)
			me.PUT("", s.UpdateSelf)
			me.DELETE("", s.DeleteSelf)
			me.POST("/books", s.AddBook)
			me.PUT("/books/:id", s.UpdateOwnBook)
			me.DELETE("/books/:id", s.DeleteOwnBook)
		}
	}
	sellers := router.Group("/sellers")
	{
		sellers.POST("", s.CreateSeller)
		sellers.GET("", s.AllSellers)
		sellers.GET("/:id", s.SellerInfo)
		sellers.PUT("/:id", s.UpdateSellerByID)
		sellers.DELETE("/:id", s.DeleteSellerByID)
	}
	books := router.Group("/books")
	{
		books.GET("", s.AllBooks)
		books.GET("/:id", s.BookInfo)
	}

	s.serv.Handler = router
	log.Info().Str("host", s.serv.Addr).Msg("server started")
	if err := s.serv.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) Close() error {
	return s.serv.Shutdown(context.TODO())
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		ctx.Set("request_id", rid)
		ctx.Writer.Header().Set("X-Request-ID", rid)
		ctx.Next()
	}
}

// JWTAuthMiddleware verifies the bearer token and resolves its claims to a
// live seller record. A token for a deleted seller is rejected here, claims
// are never trusted beyond the lookup key.
func (s *Server) JWTAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		log := logger.Get()

		tokenHeader := ctx.GetHeader("Authorization")
		if tokenHeader == "" {
			ctx.String(http.StatusUnauthorized, "Authorization header is required")
			ctx.Abort()
			return
		}

		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			ctx.String(http.StatusUnauthorized, "Invalid token format")
			ctx.Abort()
			return
		}

		claims, err := s.Tokens.Verify(tokenParts[1])
		if err != nil {
			log.Error().Err(err).Msg("validate jwt failed")
			ctx.String(http.StatusUnauthorized, "Invalid token")
			ctx.Abort()
			return
		}

		seller, err := s.Storage.GetSeller(claims.SellerID)
		if err != nil {
			if errors.Is(err, storerrros.ErrSellerNotFound) {
				ctx.String(http.StatusUnauthorized, "unknown seller")
				ctx.Abort()
				return
			}
			log.Error().Err(err).Msg("resolve seller failed")
			ctx.String(http.StatusInternalServerError, err.Error())
			ctx.Abort()
			return
		}

		ctx.Set("sid", seller.ID)
		ctx.Next()
	}
}

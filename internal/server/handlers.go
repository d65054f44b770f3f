package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annazkh/bookmarket/internal/domain/models"
	"github.com/annazkh/bookmarket/internal/logger"
	storerrros "github.com/annazkh/bookmarket/internal/storage/errors"
)

type signUpRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=5"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
}

type logInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenInfo struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignUp registers a new seller and returns the stored record, the
// credential is kept only as a bcrypt hash.
func (s *Server) SignUp(ctx *gin.Context) {
	log := logger.Get()
	var req signUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		log.Error().Err(err).Msg("validate signup request failed")
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	seller, err := s.Storage.SaveSeller(models.Seller{
		FirstName:  req.FirstName,
		SecondName: req.SecondName,
		Email:      req.Email,
		Pass:       req.Password,
	})
	if err != nil {
		if errors.Is(err, storerrros.ErrSellerExists) {
			ctx.String(http.StatusConflict, "Seller already exists")
			return
		}
		log.Error().Err(err).Msg("save seller failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, seller)
}

// LogIn checks the credentials and answers with a fresh bearer token. The
// failure is a single undifferentiated 401, it does not reveal whether the
// email or the password was wrong.
func (s *Server) LogIn(ctx *gin.Context) {
	log := logger.Get()
	var req logInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Error().Err(err).Msg("unmarshal body failed")
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	seller, err := s.Storage.ValidSeller(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, storerrros.ErrAuthFailed) {
			log.Error().Err(err).Msg("login rejected")
			ctx.String(http.StatusUnauthorized, storerrros.ErrAuthFailed.Error())
			return
		}
		log.Error().Err(err).Msg("validate seller failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	token, err := s.Tokens.Issue(seller.ID, seller.Email)
	if err != nil {
		log.Error().Err(err).Msg("create jwt failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Header("Authorization", token)
	ctx.JSON(http.StatusOK, tokenInfo{AccessToken: token, TokenType: "Bearer"})
}

// CreateSeller is the plain registration route, same policy as SignUp
// without token issuance.
func (s *Server) CreateSeller(ctx *gin.Context) {
	s.SignUp(ctx)
}

func (s *Server) AllSellers(ctx *gin.Context) {
	sellers, err := s.Storage.GetSellers()
	if err != nil {
		if errors.Is(err, storerrros.ErrEmptySellersList) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"sellers": sellers})
}

func (s *Server) SellerInfo(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid seller ID"})
		return
	}
	s.sellerInfo(ctx, id)
}

// SelfInfo returns the authenticated seller with their books.
func (s *Server) SelfInfo(ctx *gin.Context) {
	sid, ok := sellerID(ctx)
	if !ok {
		return
	}
	s.sellerInfo(ctx, sid)
}

func (s *Server) sellerInfo(ctx *gin.Context, id int64) {
	log := logger.Get()
	seller, err := s.Storage.GetSeller(id)
	if err != nil {
		if errors.Is(err, storerrros.ErrSellerNotFound) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		log.Error().Err(err).Msg("failed get seller from db")
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	books, err := s.Storage.GetSellerBooks(id)
	if err != nil {
		log.Error().Err(err).Msg("failed get seller books from db")
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, models.SellerWithBooks{Seller: seller, Books: books})
}

func (s *Server) UpdateSelf(ctx *gin.Context) {
	sid, ok := sellerID(ctx)
	if !ok {
		return
	}
	s.updateSeller(ctx, sid)
}

func (s *Server) UpdateSellerByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid seller ID"})
		return
	}
	s.updateSeller(ctx, id)
}

// updateSeller applies only the supplied fields; id and password cannot be
// changed through this path.
func (s *Server) updateSeller(ctx *gin.Context, id int64) {
	log := logger.Get()
	var upd models.SellerUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(upd); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	seller, err := s.Storage.UpdateSeller(id, upd)
	if err != nil {
		switch {
		case errors.Is(err, storerrros.ErrSellerNotFound):
			ctx.String(http.StatusNotFound, err.Error())
		case errors.Is(err, storerrros.ErrSellerExists):
			ctx.String(http.StatusConflict, err.Error())
		default:
			log.Error().Err(err).Msg("failed to update seller")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, seller)
}

func (s *Server) DeleteSelf(ctx *gin.Context) {
	sid, ok := sellerID(ctx)
	if !ok {
		return
	}
	s.deleteSeller(ctx, sid)
}

func (s *Server) DeleteSellerByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid seller ID"})
		return
	}
	s.deleteSeller(ctx, id)
}

func (s *Server) deleteSeller(ctx *gin.Context, id int64) {
	log := logger.Get()
	if err := s.Storage.DeleteSeller(id); err != nil {
		if errors.Is(err, storerrros.ErrSellerNotFound) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		log.Error().Err(err).Msg("failed to delete seller")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func sellerID(ctx *gin.Context) (int64, bool) {
	log := logger.Get()
	sid, exist := ctx.Get("sid")
	if !exist {
		log.Error().Msg("seller ID not found")
		ctx.String(http.StatusUnauthorized, "seller ID not found")
		return 0, false
	}
	id, ok := sid.(int64)
	if !ok {
		ctx.String(http.StatusInternalServerError, "invalid seller ID in context")
		return 0, false
	}
	return id, true
}

func pathID(ctx *gin.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

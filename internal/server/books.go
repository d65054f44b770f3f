package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annazkh/bookmarket/internal/domain/models"
	"github.com/annazkh/bookmarket/internal/logger"
	storerrros "github.com/annazkh/bookmarket/internal/storage/errors"
)

type addBookRequest struct {
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author" validate:"required"`
	Year       int    `json:"year"`
	CountPages int    `json:"count_pages"`
}

func (s *Server) AllBooks(ctx *gin.Context) {
	books, err := s.Storage.GetBooks()
	if err != nil {
		if errors.Is(err, storerrros.ErrEmptyBooksList) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"books": books})
}

func (s *Server) BookInfo(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}
	book, err := s.Storage.GetBook(id)
	if err != nil {
		if errors.Is(err, storerrros.ErrBookNotFound) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// AddBook creates a book for the authenticated seller, the owner id is
// always stamped from the resolved identity, never from the request body.
func (s *Server) AddBook(ctx *gin.Context) {
	log := logger.Get()
	sid, ok := sellerID(ctx)
	if !ok {
		return
	}
	var req addBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		log.Error().Err(err).Msg("validate book request failed")
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	book, err := s.Storage.SaveBook(models.Book{
		SellerID:   sid,
		Title:      req.Title,
		Author:     req.Author,
		Year:       req.Year,
		CountPages: req.CountPages,
	})
	if err != nil {
		log.Error().Err(err).Msg("save book failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, book)
}

func (s *Server) UpdateOwnBook(ctx *gin.Context) {
	log := logger.Get()
	sid, ok := sellerID(ctx)
	if !ok {
		return
	}
	id, err := pathID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}
	var upd models.BookUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	book, err := s.Storage.UpdateBook(sid, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, storerrros.ErrBookNotFound):
			ctx.String(http.StatusNotFound, err.Error())
		case errors.Is(err, storerrros.ErrNotOwner):
			ctx.String(http.StatusForbidden, err.Error())
		default:
			log.Error().Err(err).Msg("failed to update book")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, book)
}

func (s *Server) DeleteOwnBook(ctx *gin.Context) {
	log := logger.Get()
	sid, ok := sellerID(ctx)
	if !ok {
		return
	}
	id, err := pathID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}
	if err := s.Storage.DeleteBook(sid, id); err != nil {
		switch {
		case errors.Is(err, storerrros.ErrBookNotFound):
			ctx.String(http.StatusNotFound, err.Error())
		case errors.Is(err, storerrros.ErrNotOwner):
			ctx.String(http.StatusForbidden, err.Error())
		default:
			log.Error().Err(err).Msg("failed to delete book")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}

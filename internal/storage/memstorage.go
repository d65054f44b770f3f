package storage

import (
	"sort"
	"sync"

	"github.com/annazkh/bookmarket/internal/auth"
	"github.com/annazkh/bookmarket/internal/domain/models"
	"github.com/annazkh/bookmarket/internal/logger"
	storerrros "github.com/annazkh/bookmarket/internal/storage/errors"
)

// MemStorage is the fallback in-memory store, used when the database is
// unreachable and in handler tests.
type MemStorage struct {
	mu         sync.RWMutex
	sellerStor map[int64]models.Seller
	bookStor   map[int64]models.Book
	nextSeller int64
	nextBook   int64
}

func New() *MemStorage {
	return &MemStorage{
		sellerStor: make(map[int64]models.Seller),
		bookStor:   make(map[int64]models.Book),
	}
}

func (ms *MemStorage) SaveSeller(seller models.Seller) (models.Seller, error) {
	log := logger.Get()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, err := ms.findSeller(seller.Email); err == nil {
		return models.Seller{}, storerrros.ErrSellerExists
	}
	hash, err := auth.HashPassword(seller.Pass)
	if err != nil {
		log.Error().Err(err).Msg("save seller failed")
		return models.Seller{}, err
	}
	seller.Pass = hash
	ms.nextSeller++
	seller.ID = ms.nextSeller
	ms.sellerStor[seller.ID] = seller
	return seller, nil
}

func (ms *MemStorage) ValidSeller(email, pass string) (models.Seller, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	seller, err := ms.findSeller(email)
	if err != nil {
		return models.Seller{}, storerrros.ErrAuthFailed
	}
	if !auth.CheckPassword(seller.Pass, pass) {
		return models.Seller{}, storerrros.ErrAuthFailed
	}
	return seller, nil
}

func (ms *MemStorage) GetSeller(id int64) (models.Seller, error) {
	log := logger.Get()
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	seller, ok := ms.sellerStor[id]
	if !ok {
		log.Error().Int64("id", id).Msg("seller not found")
		return models.Seller{}, storerrros.ErrSellerNotFound
	}
	return seller, nil
}

func (ms *MemStorage) GetSellers() ([]models.Seller, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var sellers []models.Seller
	for _, seller := range ms.sellerStor {
		sellers = append(sellers, seller)
	}
	if len(sellers) < 1 {
		return nil, storerrros.ErrEmptySellersList
	}
	sort.Slice(sellers, func(i, j int) bool { return sellers[i].ID < sellers[j].ID })
	return sellers, nil
}

func (ms *MemStorage) UpdateSeller(id int64, upd models.SellerUpdate) (models.Seller, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	seller, ok := ms.sellerStor[id]
	if !ok {
		return models.Seller{}, storerrros.ErrSellerNotFound
	}
	if upd.Email != nil {
		if other, err := ms.findSeller(*upd.Email); err == nil && other.ID != id {
			return models.Seller{}, storerrros.ErrSellerExists
		}
		seller.Email = *upd.Email
	}
	if upd.FirstName != nil {
		seller.FirstName = *upd.FirstName
	}
	if upd.SecondName != nil {
		seller.SecondName = *upd.SecondName
	}
	ms.sellerStor[id] = seller
	return seller, nil
}

func (ms *MemStorage) DeleteSeller(id int64) error {
	log := logger.Get()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.sellerStor[id]; !ok {
		log.Warn().Int64("id", id).Msg("seller not found")
		return storerrros.ErrSellerNotFound
	}
	delete(ms.sellerStor, id)
	// books cascade with their owner
	for bid, book := range ms.bookStor {
		if book.SellerID == id {
			delete(ms.bookStor, bid)
		}
	}
	log.Info().Int64("id", id).Msg("seller deleted successfully")
	return nil
}

func (ms *MemStorage) SaveBook(book models.Book) (models.Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.sellerStor[book.SellerID]; !ok {
		return models.Book{}, storerrros.ErrSellerNotFound
	}
	ms.nextBook++
	book.ID = ms.nextBook
	ms.bookStor[book.ID] = book
	return book, nil
}

func (ms *MemStorage) GetBook(id int64) (models.Book, error) {
	log := logger.Get()
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	book, ok := ms.bookStor[id]
	if !ok {
		log.Error().Int64("id", id).Msg("book not found")
		return models.Book{}, storerrros.ErrBookNotFound
	}
	return book, nil
}

func (ms *MemStorage) GetBooks() ([]models.Book, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var books []models.Book
	for _, book := range ms.bookStor {
		books = append(books, book)
	}
	if len(books) < 1 {
		return nil, storerrros.ErrEmptyBooksList
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func (ms *MemStorage) GetSellerBooks(sellerID int64) ([]models.Book, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	books := []models.Book{}
	for _, book := range ms.bookStor {
		if book.SellerID == sellerID {
			books = append(books, book)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func (ms *MemStorage) UpdateBook(sellerID, bookID int64, upd models.BookUpdate) (models.Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	book, ok := ms.bookStor[bookID]
	if !ok {
		return models.Book{}, storerrros.ErrBookNotFound
	}
	if book.SellerID != sellerID {
		return models.Book{}, storerrros.ErrNotOwner
	}
	if upd.Title != nil {
		book.Title = *upd.Title
	}
	if upd.Author != nil {
		book.Author = *upd.Author
	}
	if upd.Year != nil {
		book.Year = *upd.Year
	}
	if upd.CountPages != nil {
		book.CountPages = *upd.CountPages
	}
	ms.bookStor[bookID] = book
	return book, nil
}

func (ms *MemStorage) DeleteBook(sellerID, bookID int64) error {
	log := logger.Get()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	book, ok := ms.bookStor[bookID]
	if !ok {
		log.Warn().Int64("id", bookID).Msg("book not found")
		return storerrros.ErrBookNotFound
	}
	if book.SellerID != sellerID {
		return storerrros.ErrNotOwner
	}
	delete(ms.bookStor, bookID)
	log.Info().Int64("id", bookID).Msg("book deleted successfully")
	return nil
}

func (ms *MemStorage) findSeller(email string) (models.Seller, error) {
	for _, seller := range ms.sellerStor {
		if seller.Email == email {
			return seller, nil
		}
	}
	return models.Seller{}, storerrros.ErrSellerNotFound
}

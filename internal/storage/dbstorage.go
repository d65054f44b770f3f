package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/annazkh/bookmarket/internal/auth"
	"github.com/annazkh/bookmarket/internal/domain/consts"
	"github.com/annazkh/bookmarket/internal/domain/models"
	"github.com/annazkh/bookmarket/internal/logger"
	storerrros "github.com/annazkh/bookmarket/internal/storage/errors"
)

type DBStorage struct {
	pool *pgxpool.Pool
}

func NewDB(ctx context.Context, addr string) (*DBStorage, error) {
	config, err := pgxpool.ParseConfig(addr)
	if err != nil {
		return nil, err
	}
	config.MaxConns = 20
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	return &DBStorage{pool: pool}, nil
}

func (dbs *DBStorage) SaveSeller(seller models.Seller) (models.Seller, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	hash, err := auth.HashPassword(seller.Pass)
	if err != nil {
		log.Error().Err(err).Msg("save seller failed")
		return models.Seller{}, err
	}
	seller.Pass = hash

	err = dbs.pool.QueryRow(ctx,
		`INSERT INTO sellers (first_name, second_name, email, pass) VALUES ($1, $2, $3, $4) RETURNING id`,
		seller.FirstName, seller.SecondName, seller.Email, seller.Pass).Scan(&seller.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Seller{}, storerrros.ErrSellerExists
		}
		log.Error().Err(err).Msg("failed to insert seller")
		return models.Seller{}, err
	}
	return seller, nil
}

func (dbs *DBStorage) ValidSeller(email, pass string) (models.Seller, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var seller models.Seller
	row := dbs.pool.QueryRow(ctx,
		`SELECT id, first_name, second_name, email, pass FROM sellers WHERE email = $1`, email)
	if err := row.Scan(&seller.ID, &seller.FirstName, &seller.SecondName, &seller.Email, &seller.Pass); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Seller{}, storerrros.ErrAuthFailed
		}
		log.Error().Err(err).Msg("failed scan db data")
		return models.Seller{}, err
	}
	if !auth.CheckPassword(seller.Pass, pass) {
		return models.Seller{}, storerrros.ErrAuthFailed
	}
	return seller, nil
}

func (dbs *DBStorage) GetSeller(id int64) (models.Seller, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var seller models.Seller
	row := dbs.pool.QueryRow(ctx,
		`SELECT id, first_name, second_name, email, pass FROM sellers WHERE id = $1`, id)
	if err := row.Scan(&seller.ID, &seller.FirstName, &seller.SecondName, &seller.Email, &seller.Pass); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Seller{}, storerrros.ErrSellerNotFound
		}
		log.Error().Err(err).Msg("failed scan db data")
		return models.Seller{}, err
	}
	return seller, nil
}

func (dbs *DBStorage) GetSellers() ([]models.Seller, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx,
		`SELECT id, first_name, second_name, email, pass FROM sellers ORDER BY id`)
	if err != nil {
		log.Error().Err(err).Msg("failed get all sellers from db")
		return nil, err
	}
	defer rows.Close()

	var sellers []models.Seller
	for rows.Next() {
		var seller models.Seller
		if err := rows.Scan(&seller.ID, &seller.FirstName, &seller.SecondName, &seller.Email, &seller.Pass); err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		sellers = append(sellers, seller)
	}
	if len(sellers) == 0 {
		return nil, storerrros.ErrEmptySellersList
	}
	return sellers, nil
}

func (dbs *DBStorage) UpdateSeller(id int64, upd models.SellerUpdate) (models.Seller, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	tx, err := dbs.pool.Begin(ctx)
	if err != nil {
		return models.Seller{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var seller models.Seller
	row := tx.QueryRow(ctx,
		`SELECT id, first_name, second_name, email, pass FROM sellers WHERE id = $1 FOR UPDATE`, id)
	if err = row.Scan(&seller.ID, &seller.FirstName, &seller.SecondName, &seller.Email, &seller.Pass); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = storerrros.ErrSellerNotFound
			return models.Seller{}, err
		}
		log.Error().Err(err).Msg("failed scan db data")
		return models.Seller{}, err
	}
	if upd.FirstName != nil {
		seller.FirstName = *upd.FirstName
	}
	if upd.SecondName != nil {
		seller.SecondName = *upd.SecondName
	}
	if upd.Email != nil {
		seller.Email = *upd.Email
	}
	_, err = tx.Exec(ctx,
		`UPDATE sellers SET first_name = $1, second_name = $2, email = $3 WHERE id = $4`,
		seller.FirstName, seller.SecondName, seller.Email, id)
	if err != nil {
		if isUniqueViolation(err) {
			err = storerrros.ErrSellerExists
			return models.Seller{}, err
		}
		log.Error().Err(err).Msg("failed to update seller")
		return models.Seller{}, err
	}
	return seller, nil
}

func (dbs *DBStorage) DeleteSeller(id int64) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	// owned books go with the seller via ON DELETE CASCADE
	res, err := dbs.pool.Exec(ctx, `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete seller")
		return err
	}
	if res.RowsAffected() == 0 {
		log.Warn().Int64("id", id).Msg("seller not found")
		return storerrros.ErrSellerNotFound
	}
	log.Info().Int64("id", id).Msg("seller deleted successfully")
	return nil
}

func (dbs *DBStorage) SaveBook(book models.Book) (models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	err := dbs.pool.QueryRow(ctx,
		`INSERT INTO books (seller_id, title, author, year, count_pages) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		book.SellerID, book.Title, book.Author, book.Year, book.CountPages).Scan(&book.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return models.Book{}, storerrros.ErrSellerNotFound
		}
		log.Error().Err(err).Msg("save book failed")
		return models.Book{}, err
	}
	return book, nil
}

func (dbs *DBStorage) GetBook(id int64) (models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var book models.Book
	row := dbs.pool.QueryRow(ctx,
		`SELECT id, seller_id, title, author, year, count_pages FROM books WHERE id = $1`, id)
	if err := row.Scan(&book.ID, &book.SellerID, &book.Title, &book.Author, &book.Year, &book.CountPages); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Book{}, storerrros.ErrBookNotFound
		}
		log.Error().Err(err).Msg("failed to scan data from db")
		return models.Book{}, err
	}
	return book, nil
}

func (dbs *DBStorage) GetBooks() ([]models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx,
		`SELECT id, seller_id, title, author, year, count_pages FROM books ORDER BY id`)
	if err != nil {
		log.Error().Err(err).Msg("failed get all books from db")
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.SellerID, &book.Title, &book.Author, &book.Year, &book.CountPages); err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		books = append(books, book)
	}
	if len(books) == 0 {
		return nil, storerrros.ErrEmptyBooksList
	}
	return books, nil
}

func (dbs *DBStorage) GetSellerBooks(sellerID int64) ([]models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx,
		`SELECT id, seller_id, title, author, year, count_pages FROM books WHERE seller_id = $1 ORDER BY id`, sellerID)
	if err != nil {
		log.Error().Err(err).Msg("failed get seller books from db")
		return nil, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.SellerID, &book.Title, &book.Author, &book.Year, &book.CountPages); err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// UpdateBook applies only the supplied fields after re-checking ownership
// against committed state inside the transaction.
func (dbs *DBStorage) UpdateBook(sellerID, bookID int64, upd models.BookUpdate) (models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	tx, err := dbs.pool.Begin(ctx)
	if err != nil {
		return models.Book{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var book models.Book
	row := tx.QueryRow(ctx,
		`SELECT id, seller_id, title, author, year, count_pages FROM books WHERE id = $1 FOR UPDATE`, bookID)
	if err = row.Scan(&book.ID, &book.SellerID, &book.Title, &book.Author, &book.Year, &book.CountPages); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = storerrros.ErrBookNotFound
			return models.Book{}, err
		}
		log.Error().Err(err).Msg("failed scan db data")
		return models.Book{}, err
	}
	if book.SellerID != sellerID {
		err = storerrros.ErrNotOwner
		return models.Book{}, err
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
	_, err = tx.Exec(ctx,
		`UPDATE books SET title = $1, author = $2, year = $3, count_pages = $4 WHERE id = $5`,
		book.Title, book.Author, book.Year, book.CountPages, bookID)
	if err != nil {
		log.Error().Err(err).Msg("failed to update book")
		return models.Book{}, err
	}
	return book, nil
}

func (dbs *DBStorage) DeleteBook(sellerID, bookID int64) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	tx, err := dbs.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var ownerID int64
	row := tx.QueryRow(ctx, `SELECT seller_id FROM books WHERE id = $1 FOR UPDATE`, bookID)
	if err = row.Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = storerrros.ErrBookNotFound
			return err
		}
		log.Error().Err(err).Msg("failed scan db data")
		return err
	}
	if ownerID != sellerID {
		err = storerrros.ErrNotOwner
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, bookID); err != nil {
		log.Error().Err(err).Msg("failed to delete book")
		return err
	}
	log.Info().Int64("id", bookID).Msg("book deleted successfully")
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func Migrations(dbDsn string, migrationsPath string) error {
	log := logger.Get()
	migratePath := fmt.Sprintf("file://%s", migrationsPath)
	m, err := migrate.New(migratePath, dbDsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no migrations apply")
			return nil
		}
		return err
	}
	log.Info().Msg("all migrations apply")
	return nil
}

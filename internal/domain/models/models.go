package models

// Seller is an identity record. Pass holds the bcrypt hash, never the
// plaintext, and is excluded from every response body.
type Seller struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Email      string `json:"email" validate:"required,email"`
	Pass       string `json:"-"`
}

type Book struct {
	ID         int64  `json:"id"`
	SellerID   int64  `json:"seller_id"`
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author" validate:"required"`
	Year       int    `json:"year"`
	CountPages int    `json:"count_pages"`
}

// SellerWithBooks is the full seller view returned by the info handlers.
type SellerWithBooks struct {
	Seller
	Books []Book `json:"books"`
}

// SellerUpdate carries a partial profile update: nil means "leave unchanged".
// ID and Pass are not part of this type on purpose.
type SellerUpdate struct {
	FirstName  *string `json:"first_name"`
	SecondName *string `json:"second_name"`
	Email      *string `json:"email" validate:"omitempty,email"`
}

// BookUpdate carries a partial book update: nil means "leave unchanged".
type BookUpdate struct {
	Title      *string `json:"title"`
	Author     *string `json:"author"`
	Year       *int    `json:"year"`
	CountPages *int    `json:"count_pages"`
}

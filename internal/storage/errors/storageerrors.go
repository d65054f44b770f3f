package storerrros

import "errors"

var (
	ErrSellerExists     = errors.New("seller already exists")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrAuthFailed       = errors.New("invalid email or password")
	ErrEmptySellersList = errors.New("empty sellers list")

	ErrBookNotFound   = errors.New("book does not exists")
	ErrNotOwner       = errors.New("book does not belong to current seller")
	ErrEmptyBooksList = errors.New("empty books list")
)

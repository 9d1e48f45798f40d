package storage

import "errors"

var (
	ErrNoConnString  = errors.New("mongo connection string is not set")
	ErrEventNotFound = errors.New("event not found")
	ErrEventExists   = errors.New("event with this slug already exists")
	ErrBookingExists = errors.New("booking already exists")
)

package storage

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrNoFields      = errors.New("no fields to update")
	ErrReference     = errors.New("foreign key violation")
)

var ErrFileTooLarge = errors.New("file size exceeds limit")

package domain

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrDownloadFailed  = errors.New("download failed")
	ErrAlreadyExists   = errors.New("already exists")
)

package services

import "errors"

var (
	ErrNewsNotFound = errors.New("news not found")
	ErrTagNotFound  = errors.New("tag not found")
)

package domain

import "errors"

var (
	ErrEmptyQuery = errors.New("empty query")
)

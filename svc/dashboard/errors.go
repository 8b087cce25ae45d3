package dashboard

import "errors"

var (
	ErrInvalidDataset = errors.New("invalid dashboard dataset")
)

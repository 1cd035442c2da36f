package directory

import "errors"

var ErrNotFound = errors.New("psychologist not found")

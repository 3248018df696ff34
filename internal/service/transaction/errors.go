package transaction

import "errors"

var ErrOrderNotFound = errors.New("order not found")

package adjustment

import "errors"

var ErrAdjustmentNotFound = errors.New("hour adjustment not found")

package tracking

import "errors"

var ErrNotTracking = errors.New("no delivery is being tracked")

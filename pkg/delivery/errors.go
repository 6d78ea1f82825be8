package delivery

import "errors"

// ErrSegmentPriceMismatch is returned when proposed segment prices plus the
// coordination fees do not add back to the parent delivery's price.
var ErrSegmentPriceMismatch = errors.New("segment prices do not sum to the delivery price")

// ErrNoSegments is returned when a segment proposal is empty.
var ErrNoSegments = errors.New("at least one segment is required")

package app

import "errors"

// ErrLoadFailed indicates the initial fetch of one or both collections failed.
// The stores keep the details in their error state.
var ErrLoadFailed = errors.New("initial load failed")

package todo

import "errors"

var errDoneAndPending = errors.New("--done and --pending cannot be combined")

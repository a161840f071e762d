package api

import "errors"

// ErrorInvalidRange range endpoints are out of order, or do not both
// belong to the same tree.
var ErrorInvalidRange = errors.New("invalidRange")

// ErrorNotMember cursor or node reference does not belong to the
// receiving tree, either foreign, stale after Clear, or freed.
var ErrorNotMember = errors.New("notMember")

// ErrorEmptyAccess reading or advancing an empty cursor, or shrinking
// an empty range.
var ErrorEmptyAccess = errors.New("emptyAccess")

// ErrorSelfFeed bulk adding a container's own sequence back into
// itself, rejected before any mutation.
var ErrorSelfFeed = errors.New("selfFeed")

// ErrorOutofMemory node arena exhausted its configured capacity.
var ErrorOutofMemory = errors.New("outofmemory")

// ErrorDestroyed operation attempted on a destroyed tree.
var ErrorDestroyed = errors.New("destroyed")

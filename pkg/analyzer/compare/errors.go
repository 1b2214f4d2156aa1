package compare

import "errors"

// ErrNoCommonColumns indicates the two tables share no column names, so no
// cell-level comparison is possible. It is a precondition failure, distinct
// from a comparison that found no differences.
var ErrNoCommonColumns = errors.New("no common columns to compare")

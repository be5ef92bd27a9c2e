package atof

import (
	"github.com/zeebo/errs"
)

// Error is the class of atof errors. Errors of this class indicate a broken
// internal invariant and are raised as panics.
var Error = errs.Class("atof")

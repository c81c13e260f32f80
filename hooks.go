package glm

import (
	"github.com/charmbracelet/log"
)

// OnAssertFailure is invoked when a precondition check in one of the
// projection builders fails. The default aborts the process. Override it
// once during program startup to get different behaviour, the library never
// mutates it.
var OnAssertFailure = func(check string) {
	log.Fatal("assertion failed", "check", check)
}

// OnBadDeterminant is invoked when Inverse meets a determinant too close to
// zero to divide by. It is separate from OnAssertFailure so that callers can
// recover from this one expected condition, for example by substituting an
// identity matrix, without disabling all other checks. The default aborts
// the process.
var OnBadDeterminant = func() {
	log.Fatal("bad determinant in matrix inverse")
}

func assert(cond bool, check string) {
	if !cond {
		OnAssertFailure(check)
	}
}

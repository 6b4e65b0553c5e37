package assert

import "github.com/oomph-ac/ballistics/oerror"

// IsTrue panics with an oerror value built from message and args if ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

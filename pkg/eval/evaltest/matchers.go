package evaltest

import (
	"errors"

	"src.tvk.sh/pkg/eval"
)

// Reports whether got is a fatal error wrapping want.
func matchFatal(want, got error) bool {
	if want == nil {
		return got == nil
	}
	var fatal *eval.FatalError
	return errors.As(got, &fatal) && errors.Is(fatal, want)
}

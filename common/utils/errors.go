package utils

import (
	"github.com/pkg/errors"
)

func Assert(ok bool, msg string) {
	if !ok {
		FailWith("Assertion error", errors.New(msg), nil)
	}
}

package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"
	bettererrorstree "github.com/xtuc/better-errors/printer/tree"
)

var osExit = os.Exit

var exit = osExit

// FailWith prints err as an error tree headed by message, then exits.
func FailWith(message string, err error, context Context) {
	fmt.Println("")
	fmt.Println(chalk.Red.Color("❌  An error occurred."))
	fmt.Println("")

	fmt.Print(FormatFailure(message, err, context))

	fmt.Println("")

	exit(1)
}

func FormatFailure(message string, err error, context Context) string {
	berror := bettererrors.New(message)

	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		berror = berror.SetContext(k, fmt.Sprint(context[k]))
	}

	if err != nil {
		berror = berror.With(toChain(err))
	}

	return bettererrorstree.PrintChain(berror)
}

// toChain turns each message added by errors.Wrap into one link of the tree.
func toChain(err error) error {
	if bettererrors.IsBetterError(err) {
		return err
	}

	for {
		next := errors.Unwrap(err)
		if next == nil {
			return bettererrors.NewFromErr(err)
		}

		// stack-only layers repeat the message of their cause
		if err.Error() == next.Error() {
			err = next
			continue
		}

		msg := strings.TrimSuffix(err.Error(), ": "+next.Error())
		return bettererrors.New(msg).With(toChain(next))
	}
}

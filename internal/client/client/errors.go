package client

import (
	"context"
	"errors"
)

// IsCanceled reports whether err stems from the caller giving up (Ctrl-C),
// as opposed to the network failing.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

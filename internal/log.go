package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DiscardLogger returns a logger that drops every entry. Components fall back to it when the caller does
// not provide one.
func DiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

package io

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	// Source errors
	ErrSourceUnavailable = errors.New(f("source unavailable"))
	ErrSourceMissing     = errors.New(f("source input missing"))
)

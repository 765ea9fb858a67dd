package io

import (
	"errors"

	"github.com/ezrec/borasm/translate"
)

var f = translate.From

var (
	// File system errors
	ErrReadOnly = errors.New(f("read only file system"))
)

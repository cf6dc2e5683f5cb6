package session

import "errors"

var ErrImproperConversion = errors.New("improper message conversion")

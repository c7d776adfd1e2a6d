//go:build !sonic

package middlewares

import "github.com/goccy/go-json"

var jsonValid = json.Valid

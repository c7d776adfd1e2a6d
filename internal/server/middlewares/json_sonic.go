//go:build sonic

package middlewares

import "github.com/bytedance/sonic"

var jsonValid = sonic.Valid

package session

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/esp32remote/receiver/pkg/dispatch"
)

// DecodeCode parses a notification payload: UTF-8 text holding a base-10 signed 32-bit integer,
// optionally surrounded by whitespace.
func DecodeCode(payload []byte) (dispatch.Code, bool) {
	if !utf8.Valid(payload) {
		return 0, false
	}
	value, err := strconv.ParseInt(strings.TrimSpace(string(payload)), 10, 32)
	if err != nil {
		return 0, false
	}
	return dispatch.Code(value), true
}

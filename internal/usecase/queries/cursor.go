package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"
)

func EncodeAfterCursor(id uint64) string {
	cursorData := fmt.Sprintf("%s:%d", CursorVersionV1, id)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (uint64, error) {
	if cursor == "" {
		return 0, fmt.Errorf("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return 0, fmt.Errorf("unsupported cursor version")
	}
	id, err := strconv.ParseUint(payload, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor position: %w", err)
	}
	return id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

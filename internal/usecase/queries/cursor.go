package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Define(errs.KindValidation, "INVALID_CURSOR", "invalid pagination cursor")

// Position is a decoded keyset cursor over (created_at, id).
type Position struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	payload, err := decodeVersioned(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<micros>-<uuid>'")
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return time.UnixMicro(timestamp), id, nil
}

// Ledger pages are keyed by the per-partner sequence number, which is
// strictly increasing and never reused.
func EncodeSeqCursor(seq int64) string {
	return base64.URLEncoding.EncodeToString([]byte(fmt.Sprintf("%s:seq-%d", CursorVersionV1, seq)))
}

func DecodeSeqCursor(cursor string) (int64, error) {
	payload, err := decodeVersioned(cursor)
	if err != nil {
		return 0, err
	}
	raw, ok := strings.CutPrefix(payload, "seq-")
	if !ok {
		return 0, fmt.Errorf("invalid cursor format: expected 'seq-<n>'")
	}
	seq, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("invalid sequence in cursor")
	}
	return seq, nil
}

func decodeVersioned(cursor string) (string, error) {
	if cursor == "" {
		return "", fmt.Errorf("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", fmt.Errorf("cursor is not base64url: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return "", fmt.Errorf("unsupported cursor version")
	}
	return payload, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func (c *Cursor) empty() bool {
	return c == nil || c.After == ""
}

// position decodes a time/id cursor; nil means first page.
func (c *Cursor) position() (*Position, error) {
	if c.empty() {
		return nil, nil
	}
	t, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidCursor, err.Error())
	}
	return &Position{CreatedAt: t, ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// trimPage drops the look-ahead row fetched with limit+1 and returns the
// cursor for the next page, if any.
func trimPage[T any](rows []T, limit int, next func(last T) string) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	return rows, &Cursor{After: next(rows[limit-1])}
}

//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"roadside-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 0, 0, 123456789, time.UTC)
	id := uuid.New()

	gotTime, gotID, err := DecodeAfterCursor(EncodeAfterCursor(ts, id))

	require.NoError(t, err)
	assert.True(t, ts.Truncate(time.Microsecond).Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestSeqCursorRoundTrip(t *testing.T) {
	seq, err := DecodeSeqCursor(EncodeSeqCursor(42))

	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)
}

func TestDecodeRejectsMalformedCursors(t *testing.T) {
	encode := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "unknown version", cursor: encode("v9:1-" + uuid.NewString())},
		{name: "missing separator", cursor: encode("v1:12345")},
		{name: "bad timestamp", cursor: encode("v1:abc-" + uuid.NewString())},
		{name: "bad uuid", cursor: encode("v1:12345-not-a-uuid")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}

	t.Run("seq cursor with time payload", func(t *testing.T) {
		_, err := DecodeSeqCursor(EncodeAfterCursor(time.Now(), uuid.New()))
		assert.Error(t, err)
	})

	t.Run("negative seq", func(t *testing.T) {
		_, err := DecodeSeqCursor(encode("v1:seq--1"))
		assert.Error(t, err)
	})
}

func TestCursorPosition(t *testing.T) {
	var nilCursor *Cursor
	pos, err := nilCursor.position()
	require.NoError(t, err)
	assert.Nil(t, pos)

	_, err = (&Cursor{After: "garbage"}).position()
	require.ErrorIs(t, err, ErrInvalidCursor)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-3))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}

func TestTrimPage(t *testing.T) {
	rows, next := trimPage([]int{1, 2, 3}, 2, func(last int) string { return "after-2" })
	assert.Equal(t, []int{1, 2}, rows)
	require.NotNil(t, next)
	assert.Equal(t, "after-2", next.After)

	rows, next = trimPage([]int{1, 2}, 2, func(int) string { return "unused" })
	assert.Equal(t, []int{1, 2}, rows)
	assert.Nil(t, next)
}

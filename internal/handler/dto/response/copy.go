package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Page is a keyset-paginated list.
type Page[T any] struct {
	Items      []*T   `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// copyAs maps a read model onto a response type field by field. Field
// names are shared, so a failure is a programming error.
func copyAs[T any](src any) *T {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		panic(fmt.Sprintf("response mapping %T: %v", src, err))
	}
	return dst
}

func copyAll[T any, V any](src []*V) []*T {
	out := make([]*T, len(src))
	for i, v := range src {
		out[i] = copyAs[T](v)
	}
	return out
}

func NewPage[T any, V any](items []*V, next string) *Page[T] {
	return &Page[T]{Items: copyAll[T](items), NextCursor: next}
}

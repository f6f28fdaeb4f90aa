package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// DefaultLimit is the default number of quotations per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed quotations per page.
const MaxLimit = 100

// cursorFieldCreatedAt is the sort field of quotation list cursors.
const cursorFieldCreatedAt = "createdAt"

var (
	// ErrInvalidCursor is returned when cursor decoding fails.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor signals a first page request.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest is the query of GET /quotations.
type PaginationRequest struct {
	// Cursor is the NextCursor of a previous page.
	Cursor string `form:"cursor"`

	Limit int `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return min(p.Limit, MaxLimit)
}

// DecodeCursor decodes the cursor string. It returns ErrNoCursor for "".
func (p *PaginationRequest) DecodeCursor() (*CursorData, error) {
	return DecodeCursor(p.Cursor)
}

// PaginatedResponse is one page of results.
type PaginatedResponse[T any] struct {
	Items []T `json:"items"`

	// NextCursor is empty on the last page.
	NextCursor string `json:"nextCursor,omitempty"`

	HasMore bool `json:"hasMore"`
}

// NewPaginatedResponse builds a page from up to limit+1 items; the extra
// item only signals that another page exists.
func NewPaginatedResponse[T any](items []T, limit int, cursorBuilder func(T) *CursorData) *PaginatedResponse[T] {
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	var nextCursor string

	if hasMore && len(items) > 0 && cursorBuilder != nil {
		nextCursor = EncodeCursor(cursorBuilder(items[len(items)-1]))
	}

	return &PaginatedResponse[T]{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}
}

// CursorData is the position after which the next page starts.
type CursorData struct {
	Field string `json:"f"`
	Value string `json:"v"`

	// ID breaks ties between equal sort values.
	ID string `json:"id"`
}

// EncodeCursor encodes cursor data to a base64 string.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a base64 cursor string. It returns ErrNoCursor for "".
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	jsonBytes, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData

	if err := json.Unmarshal(jsonBytes, &data); err != nil {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}

// QuotationCursor marks the position of q in the creation-ordered list.
func QuotationCursor(q domain.Quotation) *CursorData {
	return &CursorData{
		Field: cursorFieldCreatedAt,
		Value: q.CreatedAt.Format(time.RFC3339Nano),
		ID:    q.ID,
	}
}

// PageQuotations returns the quotations after cur, plus one extra entry when
// more than limit remain. qs must be in creation order; a nil cur starts at
// the beginning.
func PageQuotations(qs []domain.Quotation, cur *CursorData, limit int) ([]domain.Quotation, error) {
	start := 0

	if cur != nil {
		if cur.Field != cursorFieldCreatedAt {
			return nil, ErrInvalidCursor
		}

		at, err := time.Parse(time.RFC3339Nano, cur.Value)
		if err != nil {
			return nil, ErrInvalidCursor
		}

		start = len(qs)

		for i, q := range qs {
			c := q.CreatedAt.Compare(at)
			if c > 0 || (c == 0 && q.ID > cur.ID) {
				start = i
				break
			}
		}
	}

	end := min(start+limit+1, len(qs))

	return qs[start:end], nil
}

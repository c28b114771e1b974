package entity

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"showmyshop/internal/errors"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a single user's rating and comment on a shop.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ShopID    uuid.UUID `json:"shopId"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ErrInvalidCursor is returned when a page cursor cannot be decoded.
var ErrInvalidCursor = errors.New("invalid review cursor")

// ReviewCursor points at the last review of a page. Reviews are ordered by
// (CreatedAt desc, ID desc), so the next page starts strictly after it.
type ReviewCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// CursorAfter builds the cursor that continues after r.
func CursorAfter(r *Review) *ReviewCursor {
	return &ReviewCursor{CreatedAt: r.CreatedAt, ID: r.ID}
}

// Encode renders the cursor as an opaque URL-safe token.
func (c *ReviewCursor) Encode() string {
	raw := strconv.FormatInt(c.CreatedAt.UnixNano(), 10) + "|" + c.ID.String()

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeReviewCursor parses a token produced by Encode.
func DecodeReviewCursor(token string) (*ReviewCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	nanos, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil, ErrInvalidCursor
	}

	ts, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	return &ReviewCursor{CreatedAt: time.Unix(0, ts).UTC(), ID: reviewID}, nil
}

// ReviewPage requests a window of a shop's reviews, newest first.
type ReviewPage struct {
	Limit int
	After *ReviewCursor
}

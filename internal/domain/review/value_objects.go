package review

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000

	averagePlaces     = 1
	divisionPrecision = 16
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// RollingAverage folds one more rating into an average over count ratings:
// round((avg*count + rating) / (count+1), 1).
func RollingAverage(avg decimal.Decimal, count int, rating Rating) decimal.Decimal {
	total := avg.Mul(decimal.NewFromInt(int64(count))).Add(decimal.NewFromInt(int64(rating.Value())))
	return total.DivRound(decimal.NewFromInt(int64(count+1)), divisionPrecision).Round(averagePlaces)
}

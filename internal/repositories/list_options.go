package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUnsortableColumn = errors.New("column cannot be used for ordering")

// ListOptions orders a list query. The zero value means store order.
type ListOptions struct {
	OrderBy    string
	Descending bool
}

// apply adds ordering to query. OrderBy must be one of allowed.
func (o ListOptions) apply(query *gorm.DB, allowed map[string]bool) (*gorm.DB, error) {
	if o.OrderBy != "" {
		if !allowed[o.OrderBy] {
			return nil, fmt.Errorf("%w: %s", ErrUnsortableColumn, o.OrderBy)
		}
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.OrderBy},
			Desc:   o.Descending,
		})
	}
	return query, nil
}

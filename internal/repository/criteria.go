package repository

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultPageSize is the canonical page size applied when a caller does not
// ask for one.
const DefaultPageSize = 15

// Criteria is the filter set applied to a list query. Families combine with
// AND; the search term matches any of its fields (OR, case-insensitive
// substring). Absent criteria are simply skipped, never an error.
type Criteria struct {
	equals  []condition
	search  searchCriteria
	ranges  []dateRange
	minimum []threshold
}

type condition struct {
	field string
	value interface{}
}

type searchCriteria struct {
	term   string
	fields []string
}

type dateRange struct {
	field string
	from  *time.Time
	to    *time.Time
}

type threshold struct {
	field string
	min   float64
}

// Equal adds an equality criterion. Criteria keep insertion order so each
// entity's filters resolve in a fixed sequence.
func (c Criteria) Equal(field string, value interface{}) Criteria {
	c.equals = append(c.equals, condition{field: field, value: value})
	return c
}

// Match adds a substring search over one or more text fields.
func (c Criteria) Match(term string, fields ...string) Criteria {
	c.search = searchCriteria{term: term, fields: fields}
	return c
}

// Between adds an inclusive date range on field. Either bound may be nil.
func (c Criteria) Between(field string, from, to *time.Time) Criteria {
	if from == nil && to == nil {
		return c
	}
	c.ranges = append(c.ranges, dateRange{field: field, from: from, to: to})
	return c
}

// AtLeast adds a lower-bound numeric criterion on field.
func (c Criteria) AtLeast(field string, min float64) Criteria {
	c.minimum = append(c.minimum, threshold{field: field, min: min})
	return c
}

// Scope applies the criteria as a gorm scope.
func (c Criteria) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, eq := range c.equals {
			db = db.Where(fmt.Sprintf("%s = ?", eq.field), eq.value)
		}
		if c.search.term != "" && len(c.search.fields) > 0 {
			pattern := "%" + strings.ToLower(c.search.term) + "%"
			clauses := make([]string, len(c.search.fields))
			args := make([]interface{}, len(c.search.fields))
			for i, field := range c.search.fields {
				clauses[i] = fmt.Sprintf("LOWER(%s) LIKE ?", field)
				args[i] = pattern
			}
			db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}
		for _, rng := range c.ranges {
			if rng.from != nil {
				db = db.Where(fmt.Sprintf("%s >= ?", rng.field), *rng.from)
			}
			if rng.to != nil {
				db = db.Where(fmt.Sprintf("%s <= ?", rng.field), *rng.to)
			}
		}
		for _, th := range c.minimum {
			db = db.Where(fmt.Sprintf("%s >= ?", th.field), th.min)
		}
		return db
	}
}

// Page is one page of rows with the unpaged total. Pages are 1-indexed
// throughout the API.
type Page[T any] struct {
	Rows       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// Paginate counts the rows matched by query, then fetches the requested page
// in the given order. The query must already carry its model and criteria.
func Paginate[T any](query *gorm.DB, order string, page, pageSize int) (*Page[T], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []T
	err := query.
		Order(order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &Page[T]{
		Rows:       rows,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

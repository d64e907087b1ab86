package model

import (
	"net/url"
	"strconv"
)

// Default pagination applied when the caller does not ask for a
// specific page.
const (
	DefaultPage = 0
	DefaultSize = 10
)

// Page is the server's pagination envelope around a slice of results.
// Number is the zero-based page index.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// PageRequest selects a page of a list endpoint. The zero value means
// "first page, default size".
type PageRequest struct {
	Page int
	Size int
}

// Normalized returns the request with defaults applied: negative page
// becomes 0, non-positive size becomes DefaultSize.
func (p PageRequest) Normalized() PageRequest {
	if p.Page < 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	return p
}

// Query renders the request as the page/size query parameters every
// list endpoint expects.
func (p PageRequest) Query() url.Values {
	p = p.Normalized()
	return url.Values{
		"page": []string{strconv.Itoa(p.Page)},
		"size": []string{strconv.Itoa(p.Size)},
	}
}

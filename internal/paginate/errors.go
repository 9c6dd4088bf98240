package paginate

import "errors"

var (
	// ErrNoPages is returned when a book is opened without any page.
	ErrNoPages = errors.New("paginate: no pages")

	// ErrOutOfRange is returned by Seek for an index outside the book.
	ErrOutOfRange = errors.New("paginate: page index out of range")
)

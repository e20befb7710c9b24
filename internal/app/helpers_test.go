package app

import "strconv"

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func ptr[T any](v T) *T { return &v }

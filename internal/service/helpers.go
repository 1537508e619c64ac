package service

import "time"

func nowUTC() time.Time {
	return time.Now().UTC()
}

// setIfPresent records a partial-update field only when the caller supplied
// it.
func setIfPresent[T any](fields map[string]interface{}, column string, value *T) {
	if value != nil {
		fields[column] = *value
	}
}

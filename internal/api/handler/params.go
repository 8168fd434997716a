package handler

import "strconv"

// parseID converts the :id path parameter to an integer. A non-numeric id can
// match no record, so callers treat ok=false as not-found rather than as a
// syntax error.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

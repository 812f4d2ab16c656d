package services

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// normalizePagination подставляет значения по умолчанию,
// если клиент не передал skip или limit.
func normalizePagination(skip, limit *int) (offset, size int) {
	offset = defaultSkip
	if skip != nil {
		offset = *skip
	}
	size = defaultLimit
	if limit != nil {
		size = *limit
	}
	return offset, size
}

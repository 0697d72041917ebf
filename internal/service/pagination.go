package service

import "github.com/guttosm/finpulse/internal/domain/dto"

// Paginate derives the pagination block for a listing response.
//
// Pages is computed as ceil(count/limit) with integer arithmetic:
// (count + limit - 1) / limit. A zero count therefore reports zero pages,
// which is the intended "empty result" convention. The validator guarantees
// limit >= 1 before a request reaches this point.
func Paginate(count, page, limit int) dto.Pagination {
	return dto.Pagination{
		Count: count,
		Page:  page,
		Limit: limit,
		Pages: (count + limit - 1) / limit,
	}
}

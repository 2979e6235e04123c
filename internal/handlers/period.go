package handlers

import (
	"fmt"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/gin-gonic/gin"
)

// periodFromQuery reads the optional fromDate and toDate query parameters.
func periodFromQuery(c *gin.Context) (domain.Period, error) {
	var period domain.Period
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"fromDate", &period.From},
		{"toDate", &period.To},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return domain.Period{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format", apperrors.ErrValidation, p.name)
		}
		*p.dst = &t
	}
	return period, nil
}

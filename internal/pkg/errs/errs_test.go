//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"festival-flash-sale/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("success: marked error matches both the cause and the mark", func(t *testing.T) {
		cause := errors.New("redis: connection refused")
		marked := errs.Mark(cause, errs.ErrStoreUnavailable)

		assert.True(t, errs.Is(marked, errs.ErrStoreUnavailable))
		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("success: nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrNegativeStock, errs.Mark(nil, errs.ErrNegativeStock))
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))

	wrapped := errs.Wrapf(errs.ErrSaleNotOpen, "resource %s", "r-1")
	assert.ErrorIs(t, wrapped, errs.ErrSaleNotOpen)
	assert.Contains(t, wrapped.Error(), "resource r-1")
	assert.NotEmpty(t, errs.ExtractStackLines(wrapped, 3))
}

package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
)

func TestParsePageable(t *testing.T) {
	get := func(target string) model.Pageable {
		return parsePageable(httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, model.Pageable{Page: 0, Size: defaultPageSize}, get("/api/v1/user/get-all"))
	assert.Equal(t, model.Pageable{Page: 3, Size: 25}, get("/api/v1/user/get-all?page=3&size=25"))
	assert.Equal(t, model.Pageable{Page: 0, Size: defaultPageSize}, get("/api/v1/user/get-all?page=-1&size=0"))
	assert.Equal(t, model.Pageable{Page: 0, Size: defaultPageSize}, get("/api/v1/user/get-all?size=100000"))
}

func TestParseTimeParam(t *testing.T) {
	t.Run("empty means absent", func(t *testing.T) {
		v, err := parseTimeParam("")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("RFC 3339", func(t *testing.T) {
		v, err := parseTimeParam("2024-03-01T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC), *v)
	})

	t.Run("zoneless ISO-8601", func(t *testing.T) {
		v, err := parseTimeParam("2024-03-01T10:30:00")
		require.NoError(t, err)
		assert.Equal(t, 2024, v.Year())
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := parseTimeParam("yesterday")
		assert.ErrorIs(t, err, model.ErrBadRequest)
	})
}

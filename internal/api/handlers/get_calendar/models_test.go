package get_calendar

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

func TestToUseCaseRequestDefaults(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)

	req, err := ToUseCaseRequest(url.Values{}, now)
	require.NoError(t, err)

	assert.Equal(t, domain.ViewMonth, req.View)
	assert.Equal(t, now, req.Date)
	assert.True(t, req.Selection.All)
	assert.Empty(t, req.Query)
}

func TestToUseCaseRequestParsing(t *testing.T) {
	query := url.Values{}
	query.Set("view", "week")
	query.Set("date", "2024-06-11")
	query.Set("venues", "v1, v2")
	query.Set("q", "ana")

	req, err := ToUseCaseRequest(query, time.Now())
	require.NoError(t, err)

	assert.Equal(t, domain.ViewWeek, req.View)
	assert.Equal(t, "2024-06-11", req.Date.Format(domain.DateFormat))
	assert.False(t, req.Selection.All)
	assert.Equal(t, []string{"v1", "v2"}, req.Selection.IDs)
	assert.Equal(t, "ana", req.Query)
}

func TestToUseCaseRequestInvalid(t *testing.T) {
	query := url.Values{}
	query.Set("view", "bogus")
	_, err := ToUseCaseRequest(query, time.Now())
	assert.Error(t, err)

	query = url.Values{}
	query.Set("date", "11/06/2024")
	_, err = ToUseCaseRequest(query, time.Now())
	assert.Error(t, err)
}

func TestParseVenueSelection(t *testing.T) {
	// Отсутствие параметра - все площадки
	sel := parseVenueSelection(url.Values{})
	assert.True(t, sel.All)

	// Явное "all"
	sel = parseVenueSelection(url.Values{"venues": {"all"}})
	assert.True(t, sel.All)

	// Присутствующий пустой параметр - пустой выбор, а не "все"
	sel = parseVenueSelection(url.Values{"venues": {""}})
	assert.False(t, sel.All)
	assert.Empty(t, sel.IDs)

	sel = parseVenueSelection(url.Values{"venues": {"v1,v2"}})
	assert.False(t, sel.All)
	assert.Equal(t, []string{"v1", "v2"}, sel.IDs)
}

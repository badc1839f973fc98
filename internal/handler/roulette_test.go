package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/mocks"
)

func rouletteRouter(h *RouletteHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/roulettes", h.HandleList)
	r.Get("/roulettes/{slug}", h.HandleGet)
	return r
}

func TestRouletteHandler(t *testing.T) {
	view := domain.RouletteView{
		ID:             1,
		Name:           "Summer",
		Slug:           "summer",
		CooldownHours:  decimal.RequireFromString("0.003"),
		ExtraSpinQuota: 2,
		Awards:         []domain.AwardSummary{{ID: 3, Name: "Mug"}},
	}

	t.Run("list", func(t *testing.T) {
		svc := mocks.NewMockRouletteService(t)
		svc.On("List", mock.Anything).Return([]domain.RouletteView{view}, nil)

		w := httptest.NewRecorder()
		rouletteRouter(NewRouletteHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/roulettes", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"summer"`)
		assert.Contains(t, w.Body.String(), `"spins_space_hours":"0.003"`)
		assert.NotContains(t, w.Body.String(), "spin_counter")
		assert.NotContains(t, w.Body.String(), "min_spins")
	})

	t.Run("get by slug", func(t *testing.T) {
		svc := mocks.NewMockRouletteService(t)
		svc.On("GetBySlug", mock.Anything, "summer").Return(&view, nil)

		w := httptest.NewRecorder()
		rouletteRouter(NewRouletteHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/roulettes/summer", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Mug"`)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		svc := mocks.NewMockRouletteService(t)
		svc.On("GetBySlug", mock.Anything, "nope").Return(nil, nil)

		w := httptest.NewRecorder()
		rouletteRouter(NewRouletteHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/roulettes/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgRouletteNotFoundError)
	})

	t.Run("service error is 500", func(t *testing.T) {
		svc := mocks.NewMockRouletteService(t)
		svc.On("List", mock.Anything).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		rouletteRouter(NewRouletteHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/roulettes", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

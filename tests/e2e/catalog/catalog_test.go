//go:build e2e

package catalog_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"bookit/tests/common/dbtest"
	"bookit/tests/common/httptest"
	"bookit/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	experiencesURL   = "/api/experiences"
	experienceURL    = "/api/experiences/%d"
	slotsURL         = "/api/experiences/%d/slots"
	datesURL         = "/api/experiences/%d/dates"
	categoriesURL    = "/api/experiences/categories"
	searchURL        = "/api/experiences/search?q=%s"
	promoValidateURL = "/api/promo/validate"
	promoActiveURL   = "/api/promo/active"
)

type CatalogSuite struct {
	e2e.SharedSuite
}

func (s *CatalogSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogSuite))
}

type experienceBody struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Price          float64          `json:"price"`
	Category       *string          `json:"category"`
	AvailableSlots []map[string]any `json:"available_slots"`
}

// =============================================================================
// TestExperiences
// =============================================================================

func (s *CatalogSuite) TestExperiences() {
	s.Run("Normal case: list filters by category and price", func() {
		t := s.T()
		dbtest.CreateTestExperience(t, s.DB, "Kayak Mangrove Tour", "Adventure", "45.00")
		dbtest.CreateTestExperience(t, s.DB, "Volcano Hike", "Adventure", "60.00")
		dbtest.CreateTestExperience(t, s.DB, "Food Walk", "Food & Drink", "35.00")

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
			experiencesURL+"?category=Adventure&max_price=50&sort_by=price&sort_order=asc", nil)

		var list []experienceBody
		env := httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		require.Len(t, list, 1)
		s.Equal("Kayak Mangrove Tour", list[0].Title)
		s.Equal(45.0, list[0].Price)
		s.Equal(1, env.Pagination.Count)
		s.Equal(50, env.Pagination.Limit)
	})

	s.Run("Normal case: sort by price descending with paging", func() {
		t := s.T()
		dbtest.CreateTestExperience(t, s.DB, "A", "Adventure", "10.00")
		dbtest.CreateTestExperience(t, s.DB, "B", "Adventure", "30.00")
		dbtest.CreateTestExperience(t, s.DB, "C", "Adventure", "20.00")

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, experiencesURL+"?sort_by=price&limit=2&offset=1", nil)

		var list []experienceBody
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		require.Len(t, list, 2)
		s.Equal("C", list[0].Title)
		s.Equal("A", list[1].Title)
	})

	s.Run("Error case: inverted price range", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, experiencesURL+"?min_price=90&max_price=10", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid price range")
	})

	s.Run("Normal case: detail lists only future slots with room", func() {
		t := s.T()
		expID := dbtest.CreateTestExperience(t, s.DB, "Kayak Mangrove Tour", "Adventure", "45.00")
		dbtest.CreateTestSlot(t, s.DB, expID, 1, 10)
		dbtest.CreateTestSlot(t, s.DB, expID, 2, 0)
		dbtest.CreateTestSlot(t, s.DB, expID, -1, 10)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(experienceURL, expID), nil)

		var got experienceBody
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		s.Equal(expID, got.ID)
		require.Len(t, got.AvailableSlots, 1)
		s.Equal(10.0, got.AvailableSlots[0]["available_spots"])
	})

	s.Run("Error case: unknown experience", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(experienceURL, 999), nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Experience not found")
		s.Equal("No experience found with ID 999", body.Message)
	})

	s.Run("Normal case: slots by date and bookable dates", func() {
		t := s.T()
		expID := dbtest.CreateTestExperience(t, s.DB, "Kayak Mangrove Tour", "Adventure", "45.00")
		dbtest.CreateTestSlot(t, s.DB, expID, 1, 10)
		dbtest.CreateTestSlot(t, s.DB, expID, 2, 10)
		dbtest.CreateTestSlot(t, s.DB, expID, 3, 0)

		day := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, expID)+"?date="+day, nil)
		var slots []map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &slots)
		require.Len(t, slots, 1)
		s.Equal(day, slots[0]["date"])

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(datesURL, expID), nil)
		var dates []string
		env := httptest.AssertSuccessResponse(t, rec, http.StatusOK, &dates)
		s.Equal(2, *env.Count)
	})

	s.Run("Normal case: categories and search", func() {
		t := s.T()
		dbtest.CreateTestExperience(t, s.DB, "Kayak Mangrove Tour", "Adventure", "45.00")
		dbtest.CreateTestExperience(t, s.DB, "Pottery Workshop", "Workshops", "55.00")

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, categoriesURL, nil)
		var cats []string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cats)
		s.Equal([]string{"Adventure", "Workshops"}, cats)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(searchURL, "KAYAK"), nil)
		var found []experienceBody
		env := httptest.AssertSuccessResponse(t, rec, http.StatusOK, &found)
		s.Equal(1, *env.Count)
		s.Equal("Kayak Mangrove Tour", found[0].Title)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(searchURL, "k"), nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Search term too short")
	})
}

// =============================================================================
// TestPromo
// =============================================================================

func (s *CatalogSuite) TestPromo() {
	s.Run("Normal case: valid code quotes the discount", func() {
		t := s.T()
		dbtest.CreateTestPromo(t, s.DB, "SAVE10", "percentage", "10.00", "50.00", 0)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, promoValidateURL, map[string]any{"code": "save10", "amount": 120})

		var got map[string]any
		env := httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		s.Equal("Promo code applied! You saved $12.00", env.Message)
		s.Equal(12.0, got["discount_amount"])
		s.Equal(108.0, got["final_amount"])
	})

	s.Run("Normal case: fixed discount is capped at the amount", func() {
		t := s.T()
		dbtest.CreateTestPromo(t, s.DB, "BIG50", "fixed", "50.00", "0", 0)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, promoValidateURL, map[string]any{"code": "BIG50", "amount": 20})

		var got map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		s.Equal(20.0, got["discount_amount"])
		s.Equal(0.0, got["final_amount"])
	})

	s.Run("Error case: minimum purchase", func() {
		t := s.T()
		dbtest.CreateTestPromo(t, s.DB, "SAVE10", "percentage", "10.00", "50.00", 0)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, promoValidateURL, map[string]any{"code": "SAVE10", "amount": 20})

		body := httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid promo code")
		s.Equal("This promo code requires a minimum purchase of $50.00", body.Message)
	})

	s.Run("Normal case: active list hides usage", func() {
		t := s.T()
		dbtest.CreateTestPromo(t, s.DB, "FLAT5", "fixed", "5.00", "0", 0)
		dbtest.CreateTestPromo(t, s.DB, "SAVE10", "percentage", "10.00", "50.00", 100)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, promoActiveURL, nil)

		var list []map[string]any
		env := httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		s.Equal(2, *env.Count)
		for _, p := range list {
			s.NotContains(p, "used_count")
			s.NotContains(p, "max_uses")
		}
	})
}

// =============================================================================
// TestMeta
// =============================================================================

func (s *CatalogSuite) TestMeta() {
	s.Run("Normal case: health", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"status":"ok"`)
	})

	s.Run("Normal case: api index lists endpoints", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api", nil)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"/api/promo/validate"`)
	})

	s.Run("Error case: unknown route", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/nope", nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Route not found")
		s.Equal("Cannot GET /api/nope", body.Message)
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"bookit/internal/handler/api"
	"bookit/internal/handler/middleware"
	"bookit/internal/pkg/clock"
	"bookit/internal/usecase/queries"
	"bookit/tests/common/builder"
	"bookit/tests/common/httptest"
	queriesmock "bookit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromoHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	store    *queriesmock.MockPromoReadStore
}

// The handler runs against the real evaluator; only the store is mocked.
func (s *PromoHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockPromoReadStore(s.mockCtrl)
	q := queries.NewPromoQueries(s.store, clock.NewFixedClock(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
	h := api.NewPromoHandler(q)

	s.router.POST("/api/promo/validate", h.Validate)
	s.router.GET("/api/promo/active", h.Active)
}

func (s *PromoHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromoHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromoHandlerTestSuite))
}

func (s *PromoHandlerTestSuite) TestValidate() {
	url := "/api/promo/validate"

	s.Run("success: amount as number", func() {
		s.store.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(builder.NewPromoBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "save10", "amount": 100})

		var body map[string]any
		env := httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Promo code applied! You saved $10.00", env.Message)
		s.Equal(true, body["valid"])
		s.Equal("SAVE10", body["code"])
		s.Equal(float64(10), body["discount_amount"])
		s.Equal("percentage", body["discount_type"])
		s.Equal(float64(90), body["final_amount"])
	})

	s.Run("success: amount as numeric string", func() {
		s.store.EXPECT().FindByCode(gomock.Any(), "SAVE10").Return(builder.NewPromoBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"code":"SAVE10","amount":"80.50"}`)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(8.05, body["discount_amount"])
	})

	s.Run("error: invalid code carries validity in data", func() {
		s.store.EXPECT().FindByCode(gomock.Any(), "EXPIRED50").
			Return(builder.NewPromoBuilder().With(func(p *builder.PromoBuilder) {
				p.Code = "EXPIRED50"
				yesterday := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
				p.ValidUntil = &yesterday
				p.MinAmount = decimal.Zero
			}).BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "EXPIRED50", "amount": 100})

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid promo code")
		s.Equal("This promo code has expired", body.Message)
		s.Equal(false, body.Data["valid"])
		s.NotContains(body.Data, "discount_amount")
	})

	s.Run("error: missing code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 100})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Promo code is required")
	})

	s.Run("error: missing or zero amount", func() {
		for _, body := range []map[string]any{{"code": "SAVE10"}, {"code": "SAVE10", "amount": 0}, {"code": "SAVE10", "amount": -5}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Valid amount is required")
		}
	})

	s.Run("error: code of the wrong type is reported as missing", func() {
		for _, raw := range []string{`{"code":5,"amount":10}`, `{"code":["SAVE10"],"amount":10}`} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, raw)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Promo code is required")
		}
	})

	s.Run("error: amount is not a number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"code":"SAVE10","amount":"lots"}`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Valid amount is required")
	})
}

func (s *PromoHandlerTestSuite) TestActive() {
	s.store.EXPECT().FindActive(gomock.Any()).Return([]*queries.ActivePromoView{
		{Code: "FLAT5", DiscountType: "fixed", DiscountValue: decimal.NewFromInt(5), MinAmount: decimal.Zero},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/promo/active", nil)

	var body []map[string]any
	env := httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(1, *env.Count)
	s.Equal("FLAT5", body[0]["code"])
	s.Equal(float64(5), body[0]["discount_value"])
	s.Nil(body[0]["valid_until"])
	s.NotContains(body[0], "used_count")
}

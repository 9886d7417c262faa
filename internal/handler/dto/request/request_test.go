//go:build unit

package request_test

import (
	"encoding/json"
	"testing"
	"time"

	reqdto "bookit/internal/handler/dto/request"
	"bookit/internal/pkg/ptr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_NormalizeAndValidate(t *testing.T) {
	v := reqdto.NewValidator()

	req := reqdto.CreateBookingRequest{
		ExperienceID: 1,
		SlotID:       2,
		UserName:     "  Jane ",
		UserEmail:    " JANE@Example.com ",
		UserPhone:    " +15550001234 ",
		Participants: 2,
		PromoCode:    ptr.Of(" save10 "),
	}
	req.Normalize()

	assert.Equal(t, "Jane", req.UserName)
	assert.Equal(t, "jane@example.com", req.UserEmail)
	assert.Equal(t, "+15550001234", req.UserPhone)
	require.NotNil(t, req.PromoCode)
	assert.Equal(t, "SAVE10", *req.PromoCode)
	assert.Empty(t, req.Validate(v))

	in := req.ToInput()
	assert.Equal(t, int64(2), in.SlotID)
	assert.Equal(t, "SAVE10", *in.PromoCode)
}

func TestCreateBookingRequest_Violations(t *testing.T) {
	v := reqdto.NewValidator()

	req := reqdto.CreateBookingRequest{UserEmail: "a@b"}
	req.Normalize()

	assert.Equal(t, []string{
		"Valid experience_id is required",
		"Valid slot_id is required",
		"Name must be at least 2 characters",
		"Valid email is required",
		"Valid phone number is required (min 10 digits)",
		"At least 1 participant is required",
	}, req.Validate(v))
}

func TestListExperiencesQuery_ToFilter(t *testing.T) {
	t.Run("parses prices and paging", func(t *testing.T) {
		f, err := reqdto.ListExperiencesQuery{
			Category: " Adventure ",
			MinPrice: "10.5",
			Limit:    "abc",
			Offset:   "20",
		}.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, "Adventure", *f.Category)
		assert.True(t, decimal.RequireFromString("10.5").Equal(*f.MinPrice))
		assert.Nil(t, f.MaxPrice)
		assert.Equal(t, 0, f.Limit)
		assert.Equal(t, 20, f.Offset)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := reqdto.ListExperiencesQuery{MaxPrice: "-1"}.ToFilter()
		var perr *reqdto.ParamError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "max_price", perr.Param)
		assert.EqualError(t, err, "Invalid max_price parameter")
	})
}

func TestSlotsQuery_OnDate(t *testing.T) {
	d, err := reqdto.SlotsQuery{Date: "2026-05-10"}.OnDate()
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)))

	d, err = reqdto.SlotsQuery{}.OnDate()
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = reqdto.SlotsQuery{Date: "2026-13-01"}.OnDate()
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		raw    string
		wantID int64
		wantOK bool
	}{
		{raw: "7", wantID: 7, wantOK: true},
		{raw: " 12 ", wantID: 12, wantOK: true},
		{raw: "0"},
		{raw: "-3"},
		{raw: "1.5"},
		{raw: "abc"},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			id, ok := reqdto.ParseID(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestValidatePromoRequest_AmountOrZero(t *testing.T) {
	assert.True(t, reqdto.ValidatePromoRequest{}.AmountOrZero().IsZero())
	amt := decimal.NewFromInt(30)
	assert.True(t, amt.Equal(reqdto.ValidatePromoRequest{Amount: &amt}.AmountOrZero()))
}

func TestPromoBindError(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{name: "code is a number", body: `{"code":5,"amount":10}`, want: reqdto.MsgPromoCodeRequired},
		{name: "code is an object", body: `{"code":{},"amount":10}`, want: reqdto.MsgPromoCodeRequired},
		{name: "amount is not numeric", body: `{"code":"SAVE10","amount":"lots"}`, want: reqdto.MsgAmountRequired},
		{name: "amount is a bool", body: `{"code":"SAVE10","amount":true}`, want: reqdto.MsgAmountRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req reqdto.ValidatePromoRequest
			err := json.Unmarshal([]byte(tc.body), &req)
			require.Error(t, err)
			assert.Equal(t, tc.want, reqdto.PromoBindError(err))
		})
	}
}

func TestNewValidator_AddressRule(t *testing.T) {
	var v *reqdto.Validator
	require.NotPanics(t, func() { v = reqdto.NewValidator() })

	type contact struct {
		Email string `json:"email" validate:"address"`
	}
	msgs := reqdto.Messages{"email": "Valid email is required"}
	assert.Empty(t, v.Violations(contact{Email: "jane@example.com"}, msgs))
	assert.Equal(t, []string{"Valid email is required"}, v.Violations(contact{Email: "jane@example"}, msgs))
}

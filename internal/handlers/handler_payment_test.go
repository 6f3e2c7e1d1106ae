package handlers_test

import (
	"net/http"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestRecordPayment_Created() {
	suite.mockPaymentService.On("RecordPayment", mock.Anything, "p-1",
		mock.MatchedBy(func(req dto.RecordPaymentRequest) bool {
			return req.Amount.Raw == "60,00" && req.Method == ""
		}),
		testUserID,
	).Return(&dto.RecordPaymentResponse{
		Payment: dto.PaymentResponse{PaymentID: "pay-1", ProjectID: "p-1", Amount: decimal.NewFromInt(60), Method: domain.DefaultPaymentMethod},
		Financials: dto.FinancialsResponse{
			ProjectID: "p-1",
			LockState: domain.Locked,
			Display:   dto.DisplaySummary{Open: "82.80"},
		},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects/p-1/payments", `{"amount":"60,00"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RecordPaymentResponse
	suite.decode(w, &resp)
	suite.Equal("pay-1", resp.Payment.PaymentID)
	suite.Equal("82.80", resp.Financials.Display.Open)
}

func (suite *HandlerTestSuite) TestRecordPayment_NonPositiveAmount() {
	suite.mockPaymentService.On("RecordPayment", mock.Anything, "p-1", mock.Anything, testUserID).
		Return(nil, apperrors.NewAppError(http.StatusBadRequest, "payment amount must be greater than zero", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects/p-1/payments", `{"amount":"0"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("payment amount must be greater than zero", suite.errorBody(w)["error"])
}

func (suite *HandlerTestSuite) TestRecordPayment_NotAllowedWithoutInvoice() {
	suite.mockPaymentService.On("RecordPayment", mock.Anything, "p-1", mock.Anything, testUserID).
		Return(nil, finance.ErrPaymentNotAllowed).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects/p-1/payments", `{"amount":"10"}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("payment_not_allowed", suite.errorBody(w)["code"])
}

func (suite *HandlerTestSuite) TestListPayments_PassesPagination() {
	next := "next-page"
	suite.mockPaymentService.On("ListPayments", mock.Anything, "p-1",
		mock.MatchedBy(func(p dto.ListPaymentsParams) bool {
			return p.Limit == 10 && p.NextToken != nil && *p.NextToken == "abc"
		}),
	).Return(&dto.ListPaymentsResponse{
		Payments:  []dto.PaymentResponse{{PaymentID: "pay-2"}, {PaymentID: "pay-1"}},
		NextToken: &next,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects/p-1/payments?limit=10&nextToken=abc", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPaymentsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Payments, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListPayments_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/projects/p-1/payments?limit=500", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "ListPayments")
}

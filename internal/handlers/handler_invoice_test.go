package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testInvoice(status domain.InvoiceStatus) *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:     uuid.NewString(),
		ProjectID:     "p-1",
		InvoiceNumber: "RE-2024-00001",
		AmountNet:     decimal.NewFromInt(120),
		AmountGross:   decimal.RequireFromString("142.80"),
		Status:        status,
		Items: []domain.InvoiceItem{
			{LineNo: 1, Description: "Translation", Quantity: decimal.NewFromInt(1000), Unit: "words", UnitPrice: decimal.RequireFromString("0.12"), Total: decimal.NewFromInt(120)},
		},
	}
}

func (suite *HandlerTestSuite) TestCreateInvoice_Created() {
	inv := testInvoice(domain.InvoiceDraft)
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, "p-1",
		mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
			return req.TaxRate.Raw == "19" && !req.Shipping.Set
		}),
		testUserID,
	).Return(inv, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects/p-1/invoices", `{"taxRate":"19"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.decode(w, &resp)
	suite.Equal("RE-2024-00001", resp.InvoiceNumber)
	suite.Len(resp.Items, 1)
}

func (suite *HandlerTestSuite) TestCreateInvoice_ActiveInvoiceExists() {
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, "p-1", mock.Anything, testUserID).
		Return(nil, fmt.Errorf("create invoice: %w", finance.ErrInvoiceExists)).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects/p-1/invoices", `{}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("invoice_exists", suite.errorBody(w)["code"])
}

func (suite *HandlerTestSuite) TestListInvoices_Success() {
	suite.mockInvoiceService.On("ListInvoices", mock.Anything, "p-1").Return(&dto.ListInvoicesResponse{
		Invoices:  []dto.InvoiceResponse{dto.ToInvoiceResponse(testInvoice(domain.InvoiceIssued))},
		LockState: domain.Locked,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects/p-1/invoices", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListInvoicesResponse
	suite.decode(w, &resp)
	suite.Len(resp.Invoices, 1)
	suite.Equal(domain.Locked, resp.LockState)
}

func (suite *HandlerTestSuite) TestGetInvoice_NotFound() {
	suite.mockInvoiceService.On("GetInvoice", mock.Anything, "inv-404").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices/inv-404", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateInvoiceStatus_UnknownStatus() {
	w := suite.do(http.MethodPatch, "/api/v1/invoices/inv-1/status", `{"status":"archived"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "UpdateInvoiceStatus")
}

func (suite *HandlerTestSuite) TestUpdateInvoiceStatus_InvalidTransition() {
	suite.mockInvoiceService.On("UpdateInvoiceStatus", mock.Anything, "inv-1", domain.InvoicePaid, testUserID).
		Return(nil, finance.ErrInvalidStatusTransition).Once()

	w := suite.do(http.MethodPatch, "/api/v1/invoices/inv-1/status", `{"status":"paid"}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("invalid_status_transition", suite.errorBody(w)["code"])
}

func (suite *HandlerTestSuite) TestUpdateInvoiceStatus_Issued() {
	suite.mockInvoiceService.On("UpdateInvoiceStatus", mock.Anything, "inv-1", domain.InvoiceIssued, testUserID).
		Return(testInvoice(domain.InvoiceIssued), nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/invoices/inv-1/status", `{"status":"issued"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.InvoiceResponse
	suite.decode(w, &resp)
	suite.Equal(string(domain.InvoiceIssued), string(resp.Status))
}

func (suite *HandlerTestSuite) TestCancelInvoice_Success() {
	suite.mockInvoiceService.On("CancelInvoice", mock.Anything, "inv-1", testUserID).
		Return(testInvoice(domain.InvoiceCancelled), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/inv-1/cancel", "")

	suite.Equal(http.StatusOK, w.Code)
}

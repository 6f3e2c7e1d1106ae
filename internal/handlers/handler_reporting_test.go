package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestMarginReport_Success() {
	suite.mockReportingSvc.On("ProjectMarginReport", mock.Anything).Return(&domain.MarginReport{
		Projects: []domain.ProjectMarginRow{
			{ProjectID: "p-1", ProjectNumber: "P-1", LockState: domain.Locked},
		},
		NetTotal:    decimal.NewFromInt(120),
		Receivables: decimal.RequireFromString("82.80"),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/margins", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MarginReportResponse
	suite.decode(w, &resp)
	suite.Len(resp.Projects, 1)
	suite.True(decimal.RequireFromString("82.80").Equal(resp.Totals.Receivables))
}

func (suite *HandlerTestSuite) TestMarginReport_Failure() {
	suite.mockReportingSvc.On("ProjectMarginReport", mock.Anything).Return(nil, errors.New("boom")).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/margins", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to generate report", suite.errorBody(w)["error"])
}

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

func (suite *HandlerTestSuite) TestCreateProject_Success() {
	projectID := uuid.NewString()
	suite.mockProjectService.On("CreateProject", mock.Anything,
		mock.MatchedBy(func(req dto.CreateProjectRequest) bool {
			return req.ProjectNumber == "P-2024-001" && req.Flags.IsCertified && req.Flags.Copies == 2
		}),
		testUserID,
	).Return(&domain.Project{
		ProjectID:     projectID,
		ProjectNumber: "P-2024-001",
		Name:          "Contract",
		CustomerID:    "customer-1",
		Flags:         domain.ProjectFlags{IsCertified: true, Copies: 2},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects",
		`{"projectNumber":"P-2024-001","name":"Contract","customerID":"customer-1","flags":{"isCertified":true,"copies":2}}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProjectResponse
	suite.decode(w, &resp)
	suite.Equal(projectID, resp.ProjectID)
}

func (suite *HandlerTestSuite) TestCreateProject_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/projects", `{"projectNumber":"P-1","customerID":"c"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w)["error"], "Invalid request format")
	suite.mockProjectService.AssertNotCalled(suite.T(), "CreateProject")
}

func (suite *HandlerTestSuite) TestCreateProject_DuplicateNumber() {
	dup := apperrors.NewAppError(http.StatusConflict, "project number already exists", apperrors.ErrDuplicate)
	suite.mockProjectService.On("CreateProject", mock.Anything, mock.Anything, testUserID).Return(nil, dup).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects", `{"projectNumber":"P-1","name":"n","customerID":"c"}`)

	suite.Equal(http.StatusConflict, w.Code)
	body := suite.errorBody(w)
	suite.Equal("duplicate", body["code"])
	suite.Equal("project number already exists", body["error"])
}

func (suite *HandlerTestSuite) TestGetProject_NotFound() {
	suite.mockProjectService.On("GetProject", mock.Anything, "missing").
		Return(nil, fmt.Errorf("load project: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects/missing", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Resource not found", suite.errorBody(w)["error"])
}

func (suite *HandlerTestSuite) TestGetFinancials_Success() {
	invoiceID := uuid.NewString()
	suite.mockProjectService.On("GetFinancials", mock.Anything, "p-1").Return(&dto.FinancialsResponse{
		ProjectID:        "p-1",
		LockState:        domain.Locked,
		ActiveInvoiceID:  &invoiceID,
		CanRecordPayment: true,
		Summary:          domain.FinancialSummary{NetTotal: decimal.NewFromInt(120)},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects/p-1/financials", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FinancialsResponse
	suite.decode(w, &resp)
	suite.Equal(domain.Locked, resp.LockState)
	suite.True(resp.CanRecordPayment)
	suite.False(resp.CanEditPositions)
	suite.Require().NotNil(resp.ActiveInvoiceID)
	suite.Equal(invoiceID, *resp.ActiveInvoiceID)
	suite.True(decimal.NewFromInt(120).Equal(resp.Summary.NetTotal))
}

func (suite *HandlerTestSuite) TestUpdateProjectFlags_SubmissionInProgress() {
	suite.mockProjectService.On("UpdateProjectFlags", mock.Anything, "p-1",
		mock.MatchedBy(func(req dto.UpdateProjectFlagsRequest) bool {
			return req.IsExpress != nil && *req.IsExpress && req.IsCertified == nil
		}),
		testUserID,
	).Return(nil, fmt.Errorf("update flags: %w", finance.ErrSubmissionInProgress)).Once()

	w := suite.do(http.MethodPatch, "/api/v1/projects/p-1/flags", `{"isExpress":true}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("submission_in_progress", suite.errorBody(w)["code"])
}

func (suite *HandlerTestSuite) TestPreviewFinancials_KeepsRawNumbers() {
	suite.mockProjectService.On("PreviewFinancials", mock.Anything, "p-1",
		mock.MatchedBy(func(req dto.PreviewFinancialsRequest) bool {
			return len(req.Positions) == 1 &&
				req.Positions[0].CustomerRate.Raw == "0,12" &&
				req.Positions[0].Amount.Raw == "1000" &&
				req.Flags == nil
		}),
	).Return(&dto.FinancialsResponse{ProjectID: "p-1", LockState: domain.Unlocked, CanEditPositions: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects/p-1/financials/preview",
		`{"positions":[{"unit":"Wörter","amount":1000,"customerRate":"0,12","customerMode":"unit"}]}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestPreviewFinancials_ServiceFailure() {
	suite.mockProjectService.On("PreviewFinancials", mock.Anything, "p-1", mock.Anything).
		Return(nil, fmt.Errorf("db down")).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects/p-1/financials/preview", `{"positions":[]}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to compute financials", suite.errorBody(w)["error"])
}

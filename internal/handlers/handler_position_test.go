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

func (suite *HandlerTestSuite) TestListPositions_Success() {
	suite.mockPositionSvc.On("ListPositions", mock.Anything, "p-1").Return(&dto.ListPositionsResponse{
		Positions: []dto.PositionResponse{{PositionID: "pos-1", ProjectID: "p-1"}},
		LockState: domain.Unlocked,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects/p-1/positions", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPositionsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Positions, 1)
	suite.Equal(domain.Unlocked, resp.LockState)
}

func (suite *HandlerTestSuite) TestSavePositions_Locked() {
	suite.mockPositionSvc.On("SavePositions", mock.Anything, "p-1", mock.Anything, testUserID).
		Return(nil, finance.ErrPositionsLocked).Once()

	w := suite.do(http.MethodPut, "/api/v1/projects/p-1/positions",
		`{"positions":[{"unit":"words","amount":"100","customerRate":"0.1"}]}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("positions_locked", suite.errorBody(w)["code"])
}

func (suite *HandlerTestSuite) TestSavePositions_UnknownUnitRejected() {
	w := suite.do(http.MethodPut, "/api/v1/projects/p-1/positions",
		`{"positions":[{"unit":"furlongs","amount":"100"}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPositionSvc.AssertNotCalled(suite.T(), "SavePositions")
}

func (suite *HandlerTestSuite) TestSavePositions_UnknownModeRejected() {
	w := suite.do(http.MethodPut, "/api/v1/projects/p-1/positions",
		`{"positions":[{"unit":"words","partnerMode":"hourly"}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPositionSvc.AssertNotCalled(suite.T(), "SavePositions")
}

func (suite *HandlerTestSuite) TestAddPosition_Created() {
	positionID := uuid.NewString()
	suite.mockPositionSvc.On("AddPosition", mock.Anything, "p-1",
		mock.MatchedBy(func(req dto.PositionInput) bool {
			return req.PartnerMode == "pauschal" && req.ApplyMargin
		}),
		testUserID,
	).Return(&domain.Position{
		PositionID:    positionID,
		ProjectID:     "p-1",
		Unit:          domain.UnitWords,
		PartnerMode:   domain.ModeFixed,
		PartnerTotal:  decimal.NewFromInt(80),
		CustomerTotal: decimal.NewFromInt(104),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects/p-1/positions",
		`{"unit":"words","amount":"1000","partnerRate":"80","partnerMode":"pauschal","marginType":"markup","marginPercent":"30","applyMargin":true}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PositionResponse
	suite.decode(w, &resp)
	suite.Equal(positionID, resp.PositionID)
	suite.True(decimal.NewFromInt(104).Equal(resp.CustomerTotal))
}

func (suite *HandlerTestSuite) TestUpdatePosition_NotFound() {
	suite.mockPositionSvc.On("UpdatePosition", mock.Anything, "p-1", "pos-9", mock.Anything, testUserID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/v1/projects/p-1/positions/pos-9", `{"amount":"5"}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdatePosition_InvalidMarginType() {
	w := suite.do(http.MethodPut, "/api/v1/projects/p-1/positions/pos-1", `{"marginType":"bonus"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPositionSvc.AssertNotCalled(suite.T(), "UpdatePosition")
}

func (suite *HandlerTestSuite) TestDeletePosition_NoContent() {
	suite.mockPositionSvc.On("DeletePosition", mock.Anything, "p-1", "pos-1", testUserID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/projects/p-1/positions/pos-1", "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestDeletePosition_Locked() {
	suite.mockPositionSvc.On("DeletePosition", mock.Anything, "p-1", "pos-1", testUserID).
		Return(fmt.Errorf("delete position: %w", finance.ErrPositionsLocked)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/projects/p-1/positions/pos-1", "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("positions_locked", suite.errorBody(w)["code"])
}

package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/core/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PositionServiceTestSuite struct {
	suite.Suite
	repos   mockRepos
	guard   *services.SubmissionGuard
	project *domain.Project
	service portssvc.PositionSvcFacade
}

func (suite *PositionServiceTestSuite) SetupTest() {
	suite.repos = newMockRepos()
	suite.guard = services.NewSubmissionGuard()
	suite.project = testProject()
	suite.service = services.NewPositionService(suite.repos.provider(), suite.guard, services.WithClock(fixedClock))
}

func (suite *PositionServiceTestSuite) TestListPositions_ReportsLockState() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, []domain.Invoice{activeInvoice(pid)})
	suite.repos.positions.On("ListPositionsByProjectID", mock.Anything, pid).Return([]domain.Position{wordPosition(pid)}, nil).Once()

	resp, err := suite.service.ListPositions(context.Background(), pid)

	suite.Require().NoError(err)
	suite.Equal(domain.Locked, resp.LockState)
	suite.Len(resp.Positions, 1)
}

func (suite *PositionServiceTestSuite) TestSavePositions_RecomputesAndCoerces() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, nil)
	req := dto.SavePositionsRequest{Positions: []dto.PositionInput{
		{
			Description:  "Übersetzung",
			Unit:         "Wörter",
			Amount:       dto.NewNumberInput("1000"),
			PartnerRate:  dto.NewNumberInput("0.08"),
			CustomerRate: dto.NewNumberInput("0.12"),
		},
		{
			Description:  "Layout",
			Amount:       dto.NewNumberInput("abc"),
			Quantity:     dto.NewNumberInput("2"),
			PartnerRate:  dto.NewNumberInput("20"),
			PartnerMode:  "fixed",
			CustomerRate: dto.NewNumberInput("-5"),
			CustomerMode: "fixed",
		},
	}}

	var saved []domain.Position
	suite.repos.positions.On("ReplacePositions", mock.Anything, pid, mock.AnythingOfType("[]domain.Position")).
		Run(func(args mock.Arguments) { saved = args.Get(2).([]domain.Position) }).
		Return(nil).Once()

	positions, err := suite.service.SavePositions(context.Background(), pid, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(positions, 2)
	suite.Equal(positions, saved)

	first := positions[0]
	suite.Equal(0, first.SortOrder)
	suite.Equal(domain.UnitWords, first.Unit)
	assertDec(suite.T(), "1", first.Quantity)
	assertDec(suite.T(), "120", first.CustomerTotal)
	assertDec(suite.T(), "80", first.PartnerTotal)
	suite.NotEmpty(first.PositionID)
	suite.Equal("user-1", first.CreatedBy)

	second := positions[1]
	suite.Equal(1, second.SortOrder)
	assertDec(suite.T(), "0", second.Amount)
	assertDec(suite.T(), "0", second.CustomerRate)
	assertDec(suite.T(), "40", second.PartnerTotal)
	assertDec(suite.T(), "0", second.CustomerTotal)
	suite.False(suite.guard.Busy(pid))
	suite.repos.assertExpectations(suite.T())
}

func (suite *PositionServiceTestSuite) TestSavePositions_AppliesMargin() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, nil)
	req := dto.SavePositionsRequest{Positions: []dto.PositionInput{{
		Amount:        dto.NewNumberInput("1000"),
		PartnerRate:   dto.NewNumberInput("0.08"),
		MarginType:    "markup",
		MarginPercent: dto.NewNumberInput("50"),
		ApplyMargin:   true,
	}}}
	suite.repos.positions.On("ReplacePositions", mock.Anything, pid, mock.Anything).Return(nil).Once()

	positions, err := suite.service.SavePositions(context.Background(), pid, req, "user-1")

	suite.Require().NoError(err)
	assertDec(suite.T(), "0.12", positions[0].CustomerRate)
	assertDec(suite.T(), "120", positions[0].CustomerTotal)
}

func (suite *PositionServiceTestSuite) TestSavePositions_LockedProjectIsRejected() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, []domain.Invoice{activeInvoice(pid)})

	positions, err := suite.service.SavePositions(context.Background(), pid, dto.SavePositionsRequest{}, "user-1")

	suite.Nil(positions)
	suite.ErrorIs(err, finance.ErrPositionsLocked)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.repos.positions.AssertNotCalled(suite.T(), "ReplacePositions", mock.Anything, mock.Anything, mock.Anything)
	suite.False(suite.guard.Busy(pid))
}

func (suite *PositionServiceTestSuite) TestSavePositions_UnlockedAfterCancellation() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, []domain.Invoice{cancelledInvoice(pid)})
	suite.repos.positions.On("ReplacePositions", mock.Anything, pid, mock.Anything).Return(nil).Once()

	_, err := suite.service.SavePositions(context.Background(), pid, dto.SavePositionsRequest{}, "user-1")

	suite.NoError(err)
}

func (suite *PositionServiceTestSuite) TestSavePositions_RepoFailureReleasesGuard() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, nil)
	suite.repos.positions.On("ReplacePositions", mock.Anything, pid, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.SavePositions(context.Background(), pid, dto.SavePositionsRequest{}, "user-1")

	suite.ErrorIs(err, assert.AnError)
	suite.False(suite.guard.Busy(pid))
}

func (suite *PositionServiceTestSuite) TestSavePositions_RejectsConcurrentSubmission() {
	pid := suite.project.ProjectID
	release, err := suite.guard.Acquire(pid, "invoice creation")
	suite.Require().NoError(err)
	defer release()

	_, err = suite.service.SavePositions(context.Background(), pid, dto.SavePositionsRequest{}, "user-1")

	suite.ErrorIs(err, finance.ErrSubmissionInProgress)
}

func (suite *PositionServiceTestSuite) TestSinglePositionWrites_RejectedWhileInvoiceIsBeingCreated() {
	pid := suite.project.ProjectID
	release, err := suite.guard.Acquire(pid, "invoice creation")
	suite.Require().NoError(err)
	defer release()
	ctx := context.Background()

	_, err = suite.service.AddPosition(ctx, pid, dto.PositionInput{Amount: dto.NewNumberInput("10")}, "user-1")
	suite.ErrorIs(err, finance.ErrSubmissionInProgress)

	_, err = suite.service.UpdatePosition(ctx, pid, "pos-1", dto.UpdatePositionRequest{Amount: dto.NewNumberInput("20")}, "user-1")
	suite.ErrorIs(err, finance.ErrSubmissionInProgress)

	err = suite.service.DeletePosition(ctx, pid, "pos-1", "user-1")
	suite.ErrorIs(err, finance.ErrSubmissionInProgress)

	suite.repos.positions.AssertNotCalled(suite.T(), "SavePosition", mock.Anything, mock.Anything)
	suite.repos.positions.AssertNotCalled(suite.T(), "UpdatePosition", mock.Anything, mock.Anything)
	suite.repos.positions.AssertNotCalled(suite.T(), "DeletePosition", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PositionServiceTestSuite) TestAddPosition_ReleasesGuard() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, nil)
	suite.repos.positions.On("ListPositionsByProjectID", mock.Anything, pid).Return([]domain.Position{}, nil).Once()
	suite.repos.positions.On("SavePosition", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.AddPosition(context.Background(), pid, dto.PositionInput{}, "user-1")

	suite.ErrorIs(err, assert.AnError)
	suite.False(suite.guard.Busy(pid))
}

func (suite *PositionServiceTestSuite) TestAddPosition_AppendsAfterLastSortOrder() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, nil)
	existing := wordPosition(pid)
	existing.SortOrder = 4
	suite.repos.positions.On("ListPositionsByProjectID", mock.Anything, pid).Return([]domain.Position{existing}, nil).Once()
	suite.repos.positions.On("SavePosition", mock.Anything, mock.MatchedBy(func(p domain.Position) bool {
		return p.SortOrder == 5 && p.CustomerTotal.Equal(dec("30"))
	})).Return(nil).Once()

	position, err := suite.service.AddPosition(context.Background(), pid, dto.PositionInput{
		Amount:       dto.NewNumberInput("2"),
		Unit:         "Seiten",
		CustomerRate: dto.NewNumberInput("15"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.UnitPages, position.Unit)
	suite.repos.assertExpectations(suite.T())
}

func (suite *PositionServiceTestSuite) TestUpdatePosition_RecalculatesTotals() {
	pid := suite.project.ProjectID
	current := wordPosition(pid)
	suite.repos.expectGate(suite.project, nil)
	suite.repos.positions.On("FindPositionByID", mock.Anything, pid, current.PositionID).Return(&current, nil).Once()
	suite.repos.positions.On("UpdatePosition", mock.Anything, mock.MatchedBy(func(p domain.Position) bool {
		return p.Amount.Equal(dec("2000")) &&
			p.CustomerTotal.Equal(dec("240")) &&
			p.PartnerTotal.Equal(dec("160")) &&
			p.LastUpdatedBy == "user-2" &&
			p.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePosition(context.Background(), pid, current.PositionID,
		dto.UpdatePositionRequest{Amount: dto.NewNumberInput("2000")}, "user-2")

	suite.Require().NoError(err)
	assertDec(suite.T(), "0.12", updated.CustomerRate)
	suite.repos.assertExpectations(suite.T())
}

func (suite *PositionServiceTestSuite) TestUpdatePosition_SwitchToFixedMode() {
	pid := suite.project.ProjectID
	current := wordPosition(pid)
	suite.repos.expectGate(suite.project, nil)
	suite.repos.positions.On("FindPositionByID", mock.Anything, pid, current.PositionID).Return(&current, nil).Once()
	suite.repos.positions.On("UpdatePosition", mock.Anything, mock.Anything).Return(nil).Once()
	fixed := "fixed"

	updated, err := suite.service.UpdatePosition(context.Background(), pid, current.PositionID,
		dto.UpdatePositionRequest{CustomerMode: &fixed, CustomerRate: dto.NewNumberInput("150")}, "user-2")

	suite.Require().NoError(err)
	assertDec(suite.T(), "150", updated.CustomerTotal)
	assertDec(suite.T(), "80", updated.PartnerTotal)
}

func (suite *PositionServiceTestSuite) TestUpdatePosition_NotFound() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, nil)
	suite.repos.positions.On("FindPositionByID", mock.Anything, pid, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdatePosition(context.Background(), pid, "missing", dto.UpdatePositionRequest{}, "user-2")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PositionServiceTestSuite) TestDeletePosition_LockedProjectIsRejected() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, []domain.Invoice{activeInvoice(pid)})

	err := suite.service.DeletePosition(context.Background(), pid, "pos-1", "user-1")

	suite.ErrorIs(err, finance.ErrPositionsLocked)
	suite.repos.positions.AssertNotCalled(suite.T(), "DeletePosition", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PositionServiceTestSuite) TestDeletePosition_Success() {
	pid := suite.project.ProjectID
	suite.repos.expectGate(suite.project, nil)
	suite.repos.positions.On("DeletePosition", mock.Anything, pid, "pos-1").Return(nil).Once()

	err := suite.service.DeletePosition(context.Background(), pid, "pos-1", "user-1")

	suite.NoError(err)
	suite.repos.assertExpectations(suite.T())
}

func TestPositionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PositionServiceTestSuite))
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/core/services"
	"github.com/newwork/staffhub/internal/dto"
	"github.com/newwork/staffhub/internal/repositories/memory"
)

// stubEnhancer returns a fixed result or a fixed error.
type stubEnhancer struct {
	result string
	err    error
}

func (s *stubEnhancer) Enhance(ctx context.Context, text string, employeeName string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

type FeedbackServiceTestSuite struct {
	suite.Suite
	store    *memory.Store
	enhancer *stubEnhancer
	service  *services.FeedbackService

	manager  domain.User
	employee domain.User
	coworker domain.User
}

func (suite *FeedbackServiceTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.store.Seed()
	suite.enhancer = &stubEnhancer{}
	suite.service = services.NewFeedbackService(
		memory.NewFeedbackRepository(suite.store),
		memory.NewProfileRepository(suite.store),
		suite.enhancer,
	)

	suite.manager = domain.User{ID: "1", Role: domain.RoleManager, FirstName: "Sarah", LastName: "Johnson"}
	suite.employee = domain.User{ID: "2", Role: domain.RoleEmployee, FirstName: "Michael", LastName: "Chen"}
	suite.coworker = domain.User{ID: "3", Role: domain.RoleCoworker, FirstName: "Emily", LastName: "Davis"}
}

func (suite *FeedbackServiceTestSuite) TestCreateFeedback_Success() {
	ctx := context.Background()
	req := dto.CreateFeedbackRequest{Content: "Solid sprint work"}

	created, err := suite.service.CreateFeedback(ctx, suite.coworker, "2", req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.ID)
	suite.Equal("3", created.FromUserID)
	suite.Equal("Emily Davis", created.FromUserName)
	suite.Equal("2", created.ToUserID)
	suite.Equal("Solid sprint work", created.Content)
	// Without an enhancement the stored enhanced text mirrors the original.
	suite.Equal("Solid sprint work", created.EnhancedContent)
	suite.False(created.IsEnhanced)
}

func (suite *FeedbackServiceTestSuite) TestCreateFeedback_UnknownRecipient() {
	ctx := context.Background()

	_, err := suite.service.CreateFeedback(ctx, suite.coworker, "999", dto.CreateFeedbackRequest{Content: "x"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FeedbackServiceTestSuite) TestListForProfile_ManagerSeesAll() {
	entries, err := suite.service.ListForProfile(context.Background(), suite.manager, "2")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("1", entries[0].ID)
}

func (suite *FeedbackServiceTestSuite) TestListForProfile_OwnerSeesReceived() {
	entries, err := suite.service.ListForProfile(context.Background(), suite.employee, "2")

	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *FeedbackServiceTestSuite) TestListForProfile_AuthorSeesOwnEntries() {
	// Emily authored the seeded feedback on Michael's profile.
	entries, err := suite.service.ListForProfile(context.Background(), suite.coworker, "2")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("3", entries[0].FromUserID)
}

func (suite *FeedbackServiceTestSuite) TestListForProfile_StrangerSeesNothing() {
	// Michael is neither manager, owner, nor author of the feedback on
	// Emily's profile.
	entries, err := suite.service.ListForProfile(context.Background(), suite.employee, "3")

	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *FeedbackServiceTestSuite) TestListReceived_ManagerSeesOrganisation() {
	entries, err := suite.service.ListReceived(context.Background(), suite.manager)

	suite.Require().NoError(err)
	suite.Len(entries, 2)
}

func (suite *FeedbackServiceTestSuite) TestListReceived_EmployeeSeesAddressed() {
	entries, err := suite.service.ListReceived(context.Background(), suite.employee)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("2", entries[0].ToUserID)
}

func (suite *FeedbackServiceTestSuite) TestUpdateFeedback_PartialMerge() {
	ctx := context.Background()
	content := "Revised note"

	updated, err := suite.service.UpdateFeedback(ctx, "1", dto.UpdateFeedbackRequest{Content: &content})

	suite.Require().NoError(err)
	suite.Equal("Revised note", updated.Content)
	// Untouched fields survive the merge.
	suite.True(updated.IsEnhanced)
	suite.NotEmpty(updated.EnhancedContent)
}

func (suite *FeedbackServiceTestSuite) TestDeleteFeedback_AuthorAllowed() {
	err := suite.service.DeleteFeedback(context.Background(), suite.coworker, "1")

	suite.Require().NoError(err)
	_, err = suite.service.GetFeedbackByID(context.Background(), "1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FeedbackServiceTestSuite) TestDeleteFeedback_ManagerAllowed() {
	suite.Require().NoError(suite.service.DeleteFeedback(context.Background(), suite.manager, "1"))
}

func (suite *FeedbackServiceTestSuite) TestDeleteFeedback_StrangerForbidden() {
	// Feedback 2 was authored by the manager; the employee may not remove it.
	err := suite.service.DeleteFeedback(context.Background(), suite.employee, "2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *FeedbackServiceTestSuite) TestEnhance_Success() {
	suite.enhancer.result = "A polished rendition"

	out := suite.service.Enhance(context.Background(), "rough note", "Michael Chen")

	suite.Equal("A polished rendition", out)
}

func (suite *FeedbackServiceTestSuite) TestEnhance_UpstreamFailureFallsBack() {
	suite.enhancer.err = errors.New("upstream unavailable")

	out := suite.service.Enhance(context.Background(), "rough note", "Michael Chen")

	suite.Equal("rough note", out)
}

func (suite *FeedbackServiceTestSuite) TestEnhance_BlankResultFallsBack() {
	suite.enhancer.result = "   "

	out := suite.service.Enhance(context.Background(), "rough note", "")

	suite.Equal("rough note", out)
}

func (suite *FeedbackServiceTestSuite) TestEnhance_NilEnhancerPassesThrough() {
	svc := services.NewFeedbackService(
		memory.NewFeedbackRepository(suite.store),
		memory.NewProfileRepository(suite.store),
		nil,
	)

	suite.Equal("as written", svc.Enhance(context.Background(), "as written", ""))
}

func TestFeedbackServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackServiceTestSuite))
}

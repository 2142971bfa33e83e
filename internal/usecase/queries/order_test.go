//go:build unit

package queries_test

import (
	"context"
	"testing"

	"ticketera/internal/infra"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/pkg/identity"
	"ticketera/internal/usecase/queries"
	queriesmock "ticketera/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *queriesmock.MockOrderViewRepo
	queries  queries.OrderQueries
}

func (s *OrderQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = queriesmock.NewMockOrderViewRepo(s.mockCtrl)
	s.queries = queries.NewOrderQueries(s.repo)
}

func (s *OrderQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderQueriesSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", pgx.ErrNoRows)
}

func orderView(userID *uuid.UUID) *queries.OrderView {
	return &queries.OrderView{
		ID:            uuid.New(),
		Status:        "PENDING_APPROVAL",
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		UserID:        userID,
		TotalCents:    115_00,
	}
}

func (s *OrderQueriesTestSuite) TestGetByIDBuyerSeesOwnOrder() {
	buyerID := uuid.New()
	view := orderView(&buyerID)

	s.repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

	got, err := s.queries.GetByID(context.Background(), buyerID, identity.RoleCustomer, view.ID)

	s.Require().NoError(err)
	s.Equal(view.ID, got.ID)
}

func (s *OrderQueriesTestSuite) TestGetByIDAdminSeesAnyOrder() {
	buyerID := uuid.New()
	view := orderView(&buyerID)

	s.repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

	got, err := s.queries.GetByID(context.Background(), uuid.New(), identity.RoleAdmin, view.ID)

	s.Require().NoError(err)
	s.Equal(view.ID, got.ID)
}

func (s *OrderQueriesTestSuite) TestGetByIDProducerWithItemInOrder() {
	producerID := uuid.New()
	view := orderView(nil)

	s.repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
	s.repo.EXPECT().ProducerOwnsAnyOrderItem(gomock.Any(), view.ID, producerID).Return(true, nil)

	got, err := s.queries.GetByID(context.Background(), producerID, identity.RoleProducer, view.ID)

	s.Require().NoError(err)
	s.Equal(view.ID, got.ID)
}

func (s *OrderQueriesTestSuite) TestGetByIDForeignActorGetsNotFound() {
	buyerID := uuid.New()
	view := orderView(&buyerID)

	s.repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

	// A customer who is not the buyer learns nothing about the order id.
	_, err := s.queries.GetByID(context.Background(), uuid.New(), identity.RoleCustomer, view.ID)

	s.True(errs.Is(err, queries.ErrNotFound))
}

func (s *OrderQueriesTestSuite) TestGetByIDProducerWithoutItemsGetsNotFound() {
	producerID := uuid.New()
	view := orderView(nil)

	s.repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
	s.repo.EXPECT().ProducerOwnsAnyOrderItem(gomock.Any(), view.ID, producerID).Return(false, nil)

	_, err := s.queries.GetByID(context.Background(), producerID, identity.RoleProducer, view.ID)

	s.True(errs.Is(err, queries.ErrNotFound))
}

func (s *OrderQueriesTestSuite) TestGetByIDMissingOrder() {
	id := uuid.New()
	s.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

	_, err := s.queries.GetByID(context.Background(), uuid.New(), identity.RoleAdmin, id)

	s.True(errs.Is(err, queries.ErrNotFound))
}

func (s *OrderQueriesTestSuite) TestListPendingForProducer() {
	producerID := uuid.New()
	items := []*queries.PendingOrderListItem{
		{ID: uuid.New(), CustomerName: "Ada Lovelace", TotalCents: 115_00, TicketCount: 2},
	}

	s.repo.EXPECT().FindPendingApprovalByProducer(gomock.Any(), producerID).Return(items, nil)

	got, err := s.queries.ListPendingForProducer(context.Background(), producerID)

	s.Require().NoError(err)
	s.Len(got, 1)
}

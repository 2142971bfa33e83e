//go:build unit

package queries_test

import (
	"context"
	"testing"

	"ticketera/internal/pkg/credential"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/pkg/identity"
	"ticketera/internal/usecase/queries"
	queriesmock "ticketera/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *queriesmock.MockTicketViewRepo
	signer   credential.Signer
	queries  queries.TicketQueries
}

func (s *TicketQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = queriesmock.NewMockTicketViewRepo(s.mockCtrl)
	s.signer = credential.NewSigner("unit-test-signing-secret")
	s.queries = queries.NewTicketQueries(s.repo, s.signer)
}

func (s *TicketQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketQueriesSuite(t *testing.T) {
	suite.Run(t, new(TicketQueriesTestSuite))
}

func ticketView() *queries.TicketView {
	return &queries.TicketView{
		ID:        uuid.New(),
		Code:      uuid.NewString(),
		OrderID:   uuid.New(),
		BatchID:   uuid.New(),
		EventName: "Jazz Night",
		BatchName: "General Admission",
	}
}

// redemptionRow builds the scan-side row matching a freshly signed token.
func redemptionRow(v *queries.TicketView, producerID uuid.UUID, paid bool) *queries.TicketRedemptionRow {
	return &queries.TicketRedemptionRow{
		Scan: queries.TicketScanView{
			TicketID:  v.ID,
			EventName: v.EventName,
			BatchName: v.BatchName,
			Customer:  "Ada Lovelace",
		},
		Code:       v.Code,
		ProducerID: producerID,
		OrderPaid:  paid,
	}
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *TicketQueriesTestSuite) TestListMineSignsMissingCredentials() {
	userID := uuid.New()
	v := ticketView()

	s.repo.EXPECT().FindPaidByUser(gomock.Any(), userID).Return([]*queries.TicketView{v}, nil)
	s.repo.EXPECT().SetSignedToken(gomock.Any(), v.ID, gomock.Any()).Return(nil)

	got, err := s.queries.ListMine(context.Background(), userID)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Require().NotNil(got[0].Token)
	s.Require().NotNil(got[0].QRCode)

	claims, err := s.signer.Verify(*got[0].Token)
	s.Require().NoError(err)
	s.Equal(v.Code, claims.Code)
	s.Equal(v.ID.String(), claims.Subject)
}

func (s *TicketQueriesTestSuite) TestListMineKeepsExistingToken() {
	userID := uuid.New()
	v := ticketView()
	token, err := s.signer.Sign(v.ID, v.Code, v.BatchID, v.OrderID)
	s.Require().NoError(err)
	v.Token = &token

	s.repo.EXPECT().FindPaidByUser(gomock.Any(), userID).Return([]*queries.TicketView{v}, nil)

	got, err := s.queries.ListMine(context.Background(), userID)

	s.Require().NoError(err)
	s.Equal(token, *got[0].Token)
	s.NotNil(got[0].QRCode)
}

// ================================================================================
// TestValidateCredential
// ================================================================================

func (s *TicketQueriesTestSuite) TestValidateCredentialHappyPath() {
	producerID := uuid.New()
	v := ticketView()
	token, err := s.signer.Sign(v.ID, v.Code, v.BatchID, v.OrderID)
	s.Require().NoError(err)

	s.repo.EXPECT().FindRedemptionByID(gomock.Any(), v.ID).Return(redemptionRow(v, producerID, true), nil)

	scan, err := s.queries.ValidateCredential(context.Background(), token, producerID, identity.RoleProducer)

	s.Require().NoError(err)
	s.Equal(v.ID, scan.TicketID)
	s.Equal("Jazz Night", scan.EventName)
}

func (s *TicketQueriesTestSuite) TestValidateCredentialTamperedToken() {
	_, err := s.queries.ValidateCredential(context.Background(), "not-a-jwt", uuid.New(), identity.RoleProducer)
	s.True(errs.Is(err, queries.ErrInvalidCredential))
}

func (s *TicketQueriesTestSuite) TestValidateCredentialWrongKey() {
	v := ticketView()
	foreign := credential.NewSigner("some-other-secret")
	token, err := foreign.Sign(v.ID, v.Code, v.BatchID, v.OrderID)
	s.Require().NoError(err)

	_, err = s.queries.ValidateCredential(context.Background(), token, uuid.New(), identity.RoleProducer)

	s.True(errs.Is(err, queries.ErrInvalidCredential))
}

func (s *TicketQueriesTestSuite) TestValidateCredentialCodeMismatch() {
	producerID := uuid.New()
	v := ticketView()
	token, err := s.signer.Sign(v.ID, v.Code, v.BatchID, v.OrderID)
	s.Require().NoError(err)

	// The ticket was reissued since the token was minted.
	row := redemptionRow(v, producerID, true)
	row.Code = uuid.NewString()
	s.repo.EXPECT().FindRedemptionByID(gomock.Any(), v.ID).Return(row, nil)

	_, err = s.queries.ValidateCredential(context.Background(), token, producerID, identity.RoleProducer)

	s.True(errs.Is(err, queries.ErrInvalidCredential))
}

func (s *TicketQueriesTestSuite) TestValidateCredentialUnpaidOrder() {
	producerID := uuid.New()
	v := ticketView()
	token, err := s.signer.Sign(v.ID, v.Code, v.BatchID, v.OrderID)
	s.Require().NoError(err)

	s.repo.EXPECT().FindRedemptionByID(gomock.Any(), v.ID).Return(redemptionRow(v, producerID, false), nil)

	_, err = s.queries.ValidateCredential(context.Background(), token, producerID, identity.RoleProducer)

	s.True(errs.Is(err, queries.ErrInvalidCredential))
}

func (s *TicketQueriesTestSuite) TestValidateCredentialForeignProducerGetsNotFound() {
	v := ticketView()
	token, err := s.signer.Sign(v.ID, v.Code, v.BatchID, v.OrderID)
	s.Require().NoError(err)

	s.repo.EXPECT().FindRedemptionByID(gomock.Any(), v.ID).Return(redemptionRow(v, uuid.New(), true), nil)

	_, err = s.queries.ValidateCredential(context.Background(), token, uuid.New(), identity.RoleProducer)

	s.True(errs.Is(err, queries.ErrNotFound))
}

func (s *TicketQueriesTestSuite) TestValidateCredentialAdminScansAnyEvent() {
	v := ticketView()
	token, err := s.signer.Sign(v.ID, v.Code, v.BatchID, v.OrderID)
	s.Require().NoError(err)

	s.repo.EXPECT().FindRedemptionByID(gomock.Any(), v.ID).Return(redemptionRow(v, uuid.New(), true), nil)

	scan, err := s.queries.ValidateCredential(context.Background(), token, uuid.New(), identity.RoleAdmin)

	s.Require().NoError(err)
	s.Equal(v.ID, scan.TicketID)
}

func (s *TicketQueriesTestSuite) TestValidateCredentialDeletedTicket() {
	v := ticketView()
	token, err := s.signer.Sign(v.ID, v.Code, v.BatchID, v.OrderID)
	s.Require().NoError(err)

	s.repo.EXPECT().FindRedemptionByID(gomock.Any(), v.ID).Return(nil, notFoundErr())

	_, err = s.queries.ValidateCredential(context.Background(), token, uuid.New(), identity.RoleAdmin)

	s.True(errs.Is(err, queries.ErrNotFound))
}

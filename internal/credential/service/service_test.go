package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	contracts "attesta/contracts/registry"
	"attesta/internal/credential/models"
	"attesta/internal/credential/service/mocks"
	"attesta/internal/credential/sigsuite"
	"attesta/internal/registry"
	dErrors "attesta/pkg/domain-errors"
	"attesta/pkg/platform/middleware/requesttime"
)

//go:generate mockgen -destination=mocks/issuer_store_mock.go -package=mocks -mock_names=Store=MockIssuerStore attesta/internal/registry Store
//go:generate mockgen -destination=mocks/customer_store_mock.go -package=mocks -mock_names=Store=MockCustomerStore attesta/internal/kyc Store

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	issuers   *mocks.MockIssuerStore
	customers *mocks.MockCustomerStore
	service   *Service
	issuer    contracts.IssuerRecord
	customer  contracts.KYCRecord
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.issuers = mocks.NewMockIssuerStore(s.ctrl)
	s.customers = mocks.NewMockCustomerStore(s.ctrl)
	s.service = New(s.issuers, s.customers, Config{
		StatusRegistryURL: "https://registry.attesta.test",
		BatchConcurrency:  4,
	})

	priv, pub, err := registry.GenerateKeyPair(sigsuite.AlgorithmEd25519)
	s.Require().NoError(err)
	s.issuer = contracts.IssuerRecord{
		ID:            "bank-A",
		Name:          "Bank A",
		Jurisdictions: []string{"US"},
		Regulators:    []string{"SEC"},
		TrustTier:     4,
		Algorithm:     string(sigsuite.AlgorithmEd25519),
		PrivateKeyHex: priv,
		PublicKeyHex:  pub,
	}
	s.customer = contracts.KYCRecord{
		CustomerRef:        "KYC-001",
		FullName:           "Alice Example",
		DateOfBirth:        "1990-04-12",
		Citizenship:        "US",
		Address:            "1 Main St",
		KYCLevel:           "enhanced",
		AMLCheck:           contracts.CheckPassed,
		SanctionsCheck:     contracts.CheckPassed,
		PEPCheck:           contracts.CheckPassed,
		SourceOfFunds:      contracts.CheckPassed,
		AccreditedInvestor: true,
		EntityType:         "individual",
		Tier:               3,
	}
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func request(customerRef string) models.IssuanceRequest {
	return models.IssuanceRequest{
		CustomerRef:        customerRef,
		IssuerID:           "bank-A",
		KYCLevel:           "enhanced",
		AccreditedInvestor: true,
		Jurisdictions:      []string{"US"},
	}
}

func (s *ServiceSuite) TestIssueSignsAgainstResolvedRecords() {
	ctx := context.Background()
	s.issuers.EXPECT().Resolve(gomock.Any(), "bank-A").Return(s.issuer, nil)
	s.customers.EXPECT().Resolve(gomock.Any(), "KYC-001").Return(s.customer, nil)

	cred, err := s.service.Issue(ctx, request("KYC-001"))
	s.Require().NoError(err)
	s.Require().NotNil(cred.Proof)
	s.Equal(sigsuite.ProofTypeEd25519, cred.Proof.Type)
	s.Equal("bank-A", cred.Issuer.ID)
}

func (s *ServiceSuite) TestIssuePropagatesStoreFailures() {
	ctx := context.Background()
	s.issuers.EXPECT().Resolve(gomock.Any(), "bank-A").Return(s.issuer, nil)
	s.customers.EXPECT().Resolve(gomock.Any(), "KYC-404").
		Return(contracts.KYCRecord{}, dErrors.New(dErrors.CodeNotFound, "no such record"))

	_, err := s.service.Issue(ctx, request("KYC-404"))
	s.True(dErrors.HasCode(err, dErrors.CodeUnknownCustomer))
}

func (s *ServiceSuite) TestIssueThenVerifyRoundTrip() {
	ctx := requesttime.WithTime(context.Background(), time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	s.issuers.EXPECT().Resolve(gomock.Any(), "bank-A").Return(s.issuer, nil).Times(2)
	s.customers.EXPECT().Resolve(gomock.Any(), "KYC-001").Return(s.customer, nil)

	cred, err := s.service.Issue(ctx, request("KYC-001"))
	s.Require().NoError(err)

	result := s.service.Verify(ctx, cred)
	s.True(result.Valid)
	s.Empty(result.Errors)
}

func (s *ServiceSuite) TestRevokeThenVerify() {
	issueAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	ctx := requesttime.WithTime(context.Background(), issueAt)
	s.issuers.EXPECT().Resolve(gomock.Any(), "bank-A").Return(s.issuer, nil).Times(2)
	s.customers.EXPECT().Resolve(gomock.Any(), "KYC-001").Return(s.customer, nil)

	cred, err := s.service.Issue(ctx, request("KYC-001"))
	s.Require().NoError(err)

	revokedAt := issueAt.Add(time.Hour)
	revoked := s.service.Revoke(requesttime.WithTime(ctx, revokedAt), *cred)
	s.Require().NotNil(revoked.DecommissionedAt)
	s.Equal(revokedAt, *revoked.DecommissionedAt)
	s.Nil(cred.DecommissionedAt)

	result := s.service.Verify(requesttime.WithTime(ctx, revokedAt.Add(time.Minute)), &revoked)
	s.False(result.Valid)
	s.Require().Len(result.Errors, 1)
	s.Equal(string(dErrors.CodeRevoked), result.Errors[0].Code)
}

func (s *ServiceSuite) TestConfiguredDefaultExpiryReachesTheBuilder() {
	svc := New(s.issuers, s.customers, Config{
		StatusRegistryURL: "https://registry.attesta.test",
		DefaultExpiryDays: 90,
		BatchConcurrency:  1,
	})

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	ctx := requesttime.WithTime(context.Background(), now)
	s.issuers.EXPECT().Resolve(gomock.Any(), "bank-A").Return(s.issuer, nil)
	s.customers.EXPECT().Resolve(gomock.Any(), "KYC-001").Return(s.customer, nil)

	cred, err := svc.Issue(ctx, request("KYC-001")) // no explicit expiry
	s.Require().NoError(err)
	s.Equal(now.AddDate(0, 0, 90), cred.ExpirationDate)
}

func (s *ServiceSuite) TestBatchIssueIsolatesFailures() {
	ctx := context.Background()
	s.issuers.EXPECT().Resolve(gomock.Any(), "bank-A").Return(s.issuer, nil).Times(2)
	s.customers.EXPECT().Resolve(gomock.Any(), "KYC-001").Return(s.customer, nil)
	s.customers.EXPECT().Resolve(gomock.Any(), "KYC-404").
		Return(contracts.KYCRecord{}, dErrors.New(dErrors.CodeNotFound, "no such record"))

	result := s.service.BatchIssue(ctx, []models.IssuanceRequest{
		request("KYC-001"),
		request("KYC-404"),
	})

	s.Require().Len(result.Successful, 1)
	s.Require().Len(result.Failed, 1)
	s.NotNil(result.Successful[0].Proof)
	s.Equal("KYC-404", result.Failed[0].Request.CustomerRef)
	s.Equal(string(dErrors.CodeUnknownCustomer), result.Failed[0].Code)
}

func (s *ServiceSuite) TestBatchSiblingsShareIssuanceInstant() {
	pinned := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ctx := requesttime.WithTime(context.Background(), pinned)
	s.issuers.EXPECT().Resolve(gomock.Any(), "bank-A").Return(s.issuer, nil).Times(3)
	s.customers.EXPECT().Resolve(gomock.Any(), "KYC-001").Return(s.customer, nil).Times(3)

	result := s.service.BatchIssue(ctx, []models.IssuanceRequest{
		request("KYC-001"), request("KYC-001"), request("KYC-001"),
	})

	s.Require().Len(result.Successful, 3)
	seen := map[string]bool{}
	for _, cred := range result.Successful {
		s.Equal(pinned, cred.IssuanceDate)
		seen[cred.ID] = true
	}
	s.Len(seen, 3) // same instant, still distinct identities
}

package kyc

import (
	"context"

	contracts "attesta/contracts/registry"
)

// Seed loads a small set of KYC records for local development and demos.
// KYC-001 matches the documented happy-path issuance example.
func Seed(ctx context.Context, store Store) error {
	records := []contracts.KYCRecord{
		{
			CustomerRef:        "KYC-001",
			FullName:           "Alice Example",
			DateOfBirth:        "1990-01-01",
			Citizenship:        "US",
			Address:            "12 Main St, Springfield",
			KYCLevel:           "enhanced",
			AMLCheck:           contracts.CheckPassed,
			SanctionsCheck:     contracts.CheckPassed,
			PEPCheck:           contracts.CheckPassed,
			SourceOfFunds:      contracts.CheckPassed,
			AccreditedInvestor: true,
			EntityType:         "individual",
			VerifiedAmount:     contracts.VerifiedAmount{Amount: 250000, Currency: "USD"},
			Tier:               3,
			Jurisdictions:      []string{"US"},
		},
		{
			CustomerRef:        "KYC-002",
			FullName:           "Bob Sample",
			DateOfBirth:        "1984-06-15",
			Citizenship:        "DE",
			Address:            "Hauptstr. 7, Berlin",
			KYCLevel:           "basic",
			AMLCheck:           contracts.CheckPassed,
			SanctionsCheck:     contracts.CheckFailed,
			PEPCheck:           contracts.CheckPassed,
			SourceOfFunds:      contracts.CheckPending,
			AccreditedInvestor: false,
			EntityType:         "individual",
			VerifiedAmount:     contracts.VerifiedAmount{Amount: 10000, Currency: "EUR"},
			Tier:               1,
			Jurisdictions:      []string{"EU"},
		},
		{
			CustomerRef:        "KYC-003",
			FullName:           "Carol Holdings Ltd",
			DateOfBirth:        "2001-11-30",
			Citizenship:        "GB",
			Address:            "1 Canary Wharf, London",
			KYCLevel:           "enhanced",
			AMLCheck:           contracts.CheckPassed,
			SanctionsCheck:     contracts.CheckPassed,
			PEPCheck:           contracts.CheckPassed,
			SourceOfFunds:      contracts.CheckPassed,
			AccreditedInvestor: true,
			EntityType:         "corporate",
			VerifiedAmount:     contracts.VerifiedAmount{Amount: 5000000, Currency: "GBP"},
			Tier:               5,
			Jurisdictions:      []string{"UK", "EU"},
			SubjectDID:         "did:subject:carol-holdings",
		},
	}

	for _, rec := range records {
		if err := store.Upsert(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

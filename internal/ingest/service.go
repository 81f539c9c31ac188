package ingest

import (
	"context"
	"fmt"

	"github.com/clonelens/clonelens/internal/abi"
	"github.com/clonelens/clonelens/internal/clone"
	"github.com/clonelens/clonelens/internal/loader"
	"github.com/clonelens/clonelens/internal/metrics"
	"github.com/clonelens/clonelens/internal/models"
	"github.com/clonelens/clonelens/internal/repository"
)

type Service struct {
	client       *EtherscanClient
	profilesRepo *repository.ProfilesRepository
}

func NewService(client *EtherscanClient, profilesRepo *repository.ProfilesRepository) *Service {
	return &Service{
		client:       client,
		profilesRepo: profilesRepo,
	}
}

// BuildContractProfile parses one raw ABI document into a storable
// contract profile. The profile identifier is the name, falling back to
// the address.
func BuildContractProfile(collection, name, address string, raw []byte) (*models.ContractProfile, error) {
	members, err := loader.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	ident := name
	if ident == "" {
		ident = address
	}

	p := clone.BuildProfile(abi.Interface{
		Identifier: ident,
		NameHint:   ident,
		Members:    members,
	})

	return &models.ContractProfile{
		Collection: collection,
		Name:       name,
		Address:    address,
		Simhash64:  clone.FormatFingerprint(p.Simhash),
		Selectors:  p.Selectors,
		Functions:  p.Functions,
		Events:     p.Events,
	}, nil
}

// ProcessSubmission turns one stream submission into a stored contract
// profile, fetching the ABI from the explorer when only an address is given.
func (s *Service) ProcessSubmission(ctx context.Context, submission *models.Submission) error {
	raw := []byte(submission.ABI)
	source := submission.Source
	if source == "" {
		source = "stream"
	}

	if submission.ABI == "" {
		if submission.Address == "" {
			return fmt.Errorf("submission carries neither abi nor address")
		}
		fetched, err := s.client.FetchABI(ctx, submission.Address)
		if err != nil {
			return fmt.Errorf("failed to fetch ABI: %w", err)
		}
		raw = fetched
		source = "explorer"
	}

	profile, err := BuildContractProfile(submission.Collection, submission.Name, submission.Address, raw)
	if err != nil {
		return err
	}
	profile.Source = source

	if err := s.profilesRepo.InsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}

	metrics.ProfilesIngested.WithLabelValues(source).Inc()

	return nil
}

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/royalty-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

var ErrProfileNotFound = errors.New("franchise profile not found")

// Registry exposes the franchise profiles file: one INI section per franchise
// with number, department and owner keys.
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.FranchiseProfile, error)
	GetProfile(ctx context.Context, name string) (domain.FranchiseProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load franchise profiles: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

// NewRegistryFromBytes parses profiles already in memory.
func NewRegistryFromBytes(data []byte) (Registry, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse franchise profiles: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.FranchiseProfile, error) {
	var profiles []domain.FranchiseProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, profileFromSection(section))
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.FranchiseProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return domain.FranchiseProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return profileFromSection(section), nil
}

func profileFromSection(section *ini.Section) domain.FranchiseProfile {
	number := section.Key("number").String()
	if number == "" {
		number = section.Name()
	}
	return domain.FranchiseProfile{
		Name:       section.Name(),
		Number:     number,
		Department: section.Key("department").String(),
		Owner:      section.Key("owner").String(),
	}
}

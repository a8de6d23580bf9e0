package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Vinyaaggarwal/Perry/internal/config"
	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// SiteService manages the persistent blocklist. Every domain is stored
// together with its www. variant.
type SiteService struct {
	activityLog ports.ActivityLogger
	repo        ports.SiteRepository
}

// NewSiteService creates a new SiteService
func NewSiteService(repo ports.SiteRepository, activityLog ports.ActivityLogger) *SiteService {
	return &SiteService{
		activityLog: activityLog,
		repo:        repo,
	}
}

// EnsureDefaults seeds the default distraction list when the blocklist is empty
func (s *SiteService) EnsureDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logging.Logger.Info("Seeding default blocklist", "sites", len(domain.DefaultBlockedSites))
	return s.repo.Add(ctx, toSites(domain.ExpandWWWVariants(domain.DefaultBlockedSites), domain.SiteSourceDefault))
}

// List returns the blocklist, seeding defaults on first use
func (s *SiteService) List(ctx context.Context) ([]domain.BlockedSite, error) {
	if err := s.EnsureDefaults(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Domains returns every blocked domain including www. variants
func (s *SiteService) Domains(ctx context.Context) ([]string, error) {
	sites, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	domains := make([]string, len(sites))
	for i, site := range sites {
		domains[i] = site.Domain
	}
	return domains, nil
}

// Add normalizes input and adds it with its www. variant.
// Returns the domains that were not already present.
func (s *SiteService) Add(ctx context.Context, input string) ([]string, error) {
	if err := s.EnsureDefaults(ctx); err != nil {
		return nil, err
	}

	name := domain.NormalizeDomain(input)
	if err := domain.ValidateDomain(name); err != nil {
		return nil, err
	}

	var added []string
	for _, d := range domain.WithWWWVariant(name) {
		exists, err := s.repo.Exists(ctx, d)
		if err != nil {
			return nil, err
		}
		if !exists {
			added = append(added, d)
		}
	}
	if len(added) == 0 {
		return nil, nil
	}

	if err := s.repo.Add(ctx, toSites(added, domain.SiteSourceUser)); err != nil {
		return nil, err
	}

	s.record(domain.ActivityEvent{
		Details:  fmt.Sprintf("Added %s to the blocklist", name),
		Metadata: map[string]any{"domains": added},
		Type:     domain.ActivitySiteAdded,
	})
	return added, nil
}

// Remove deletes a domain and its www. variant
func (s *SiteService) Remove(ctx context.Context, input string) (int64, error) {
	name := domain.NormalizeDomain(input)
	if err := domain.ValidateDomain(name); err != nil {
		return 0, err
	}

	deleted, err := s.repo.Delete(ctx, domain.WithWWWVariant(name))
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrSiteNotFound, name)
	}

	s.record(domain.ActivityEvent{
		Details:  fmt.Sprintf("Removed %s from the blocklist", name),
		Metadata: map[string]any{"domain": name},
		Type:     domain.ActivitySiteRemoved,
	})
	return deleted, nil
}

// Reset replaces the blocklist with the defaults
func (s *SiteService) Reset(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.EnsureDefaults(ctx); err != nil {
		return err
	}

	s.record(domain.ActivityEvent{
		Details: "Blocklist reset to defaults",
		Type:    domain.ActivityDataCleared,
	})
	return nil
}

// Import adds every site of a YAML profile and returns how many domains were new
func (s *SiteService) Import(ctx context.Context, path string) (int, error) {
	profile, err := config.LoadProfile(path)
	if err != nil {
		return 0, err
	}

	normalized, err := domain.NormalizeDomains(profile.Sites)
	if err != nil {
		return 0, fmt.Errorf("profile %s: %w", path, err)
	}

	if err := s.EnsureDefaults(ctx); err != nil {
		return 0, err
	}
	before, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.repo.Add(ctx, toSites(domain.ExpandWWWVariants(normalized), domain.SiteSourceImport)); err != nil {
		return 0, err
	}
	after, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}

	imported := int(after - before)
	s.record(domain.ActivityEvent{
		Details:  fmt.Sprintf("Imported %d domains from profile %q", imported, profile.Name),
		Metadata: map[string]any{"path": path, "profile": profile.Name},
		Type:     domain.ActivitySiteAdded,
	})
	return imported, nil
}

// Export writes the blocklist to a YAML profile, without www. duplicates
func (s *SiteService) Export(ctx context.Context, path, name string) (int, error) {
	domains, err := s.Domains(ctx)
	if err != nil {
		return 0, err
	}

	profile := &config.BlocklistProfile{
		ExportedAt: time.Now().UTC().Truncate(time.Second),
		Name:       name,
		Sites:      domain.BareDomains(domains),
	}
	if err := config.SaveProfile(path, profile); err != nil {
		return 0, err
	}

	s.record(domain.ActivityEvent{
		Details:  fmt.Sprintf("Exported %d sites to %s", len(profile.Sites), path),
		Metadata: map[string]any{"path": path},
		Type:     domain.ActivityDataExported,
	})
	return len(profile.Sites), nil
}

func (s *SiteService) record(event domain.ActivityEvent) {
	event.Success = true
	event.Timestamp = time.Now()
	if err := s.activityLog.Append(event); err != nil {
		logging.Logger.Warn("Failed to write activity log", "type", event.Type, "error", err)
	}
}

func toSites(domains []string, source domain.SiteSource) []domain.BlockedSite {
	sites := make([]domain.BlockedSite, len(domains))
	for i, d := range domains {
		sites[i] = domain.BlockedSite{Domain: d, Source: source}
	}
	return sites
}

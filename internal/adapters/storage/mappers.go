package storage

import (
	"github.com/Vinyaaggarwal/Perry/internal/domain"
)

// blockedSiteModelToDomain converts a BlockedSiteModel (GORM) to domain.BlockedSite
func blockedSiteModelToDomain(m BlockedSiteModel) domain.BlockedSite {
	return domain.BlockedSite{
		CreatedAt: m.CreatedAt,
		Domain:    m.Domain,
		Source:    domain.SiteSource(m.Source),
	}
}

// domainToBlockedSiteModel converts a domain.BlockedSite to BlockedSiteModel (GORM)
func domainToBlockedSiteModel(s domain.BlockedSite) BlockedSiteModel {
	source := s.Source
	if source == "" {
		source = domain.SiteSourceUser
	}
	return BlockedSiteModel{
		CreatedAt: s.CreatedAt,
		Domain:    s.Domain,
		Source:    string(source),
	}
}

package service

import (
	"taskletix.app/intake/internal/queue"
	"taskletix.app/intake/internal/report"
	"taskletix.app/intake/internal/store"
)

type Services struct {
	stores        *store.Stores
	producer      queue.Producer
	renderer      report.Renderer
	adminPassword string
}

type ServicesConfig struct {
	Stores        *store.Stores
	Producer      queue.Producer
	Renderer      report.Renderer
	AdminPassword string
}

func NewServices(cfg ServicesConfig) *Services {
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = report.NewPDFRenderer()
	}
	return &Services{
		stores:        cfg.Stores,
		producer:      cfg.Producer,
		renderer:      renderer,
		adminPassword: cfg.AdminPassword,
	}
}

func (s *Services) Contact() ContactService {
	return NewContactService(s.stores.Submissions(), s.producer)
}

func (s *Services) Submissions() SubmissionService {
	return NewSubmissionService(s.stores.Submissions(), s.renderer)
}

func (s *Services) AdminAuth() AdminAuthService {
	return NewAdminAuthService(s.stores.AdminTokens(), s.adminPassword)
}

package seo

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler regenerates the sitemap on a cron spec so lastmod dates stay
// fresh without a deploy.
type Scheduler struct {
	cron    *cron.Cron
	sitemap *Sitemap
	spec    string
	logger  *zap.Logger
}

// NewScheduler creates a Scheduler. spec uses standard cron syntax, e.g.
// "0 4 * * *".
func NewScheduler(sitemap *Sitemap, spec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		sitemap: sitemap,
		spec:    spec,
		logger:  logger,
	}
}

// Start registers the regeneration job and starts the cron loop
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.sitemap.Regenerate)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("sitemap scheduler started", zap.String("spec", s.spec))
	return nil
}

// Stop halts the cron loop, waiting for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("sitemap scheduler stopped")
}

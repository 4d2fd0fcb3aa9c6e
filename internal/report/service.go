package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// IDGenerator generates unique IDs for arrest reports
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return uuid.NewString()
}

type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Notifier publishes accepted reports. Implementations must not block the
// caller on delivery; failures are theirs to log.
type Notifier interface {
	NotifyCitation(citation *Citation)
	NotifyArrest(arrest *Arrest)
}

// DefaultCourt is the court information used when neither the request nor
// the server configuration supplies one.
var DefaultCourt = Court{
	Date:     "XX/XX/XX",
	Location: "4000 Capitol Drive, Greenville, Wisconsin 54942",
	Phone:    "(262) 785-4700 ext. 7",
}

// Service handles citation and arrest submissions
type Service struct {
	db          DB
	notifier    Notifier
	court       Court
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source.
// A nil notifier disables publishing.
func NewService(db DB, notifier Notifier, court Court) *Service {
	return NewServiceWithDeps(db, notifier, court, &defaultIDGenerator{}, &defaultTimeSource{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, notifier Notifier, court Court, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:          db,
		notifier:    notifier,
		court:       court.withDefaults(DefaultCourt),
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

// Court returns the court information applied to arrests that omit it.
func (s *Service) Court() Court {
	return s.court
}

// SubmitCitation validates, stores and publishes a citation. Validation
// failures are returned as *ValidationError and store nothing.
func (s *Service) SubmitCitation(ctx context.Context, req CitationRequest) (*Citation, error) {
	citation, err := AssembleCitation(req)
	if err != nil {
		return nil, err
	}
	citation.CreatedAt = s.timeSource.Now()

	if err := s.db.SaveCitation(citation); err != nil {
		return nil, fmt.Errorf("saving citation: %w", err)
	}

	slog.InfoContext(ctx, "Citation submitted",
		"id", citation.ID,
		"violator", citation.ViolatorUsername,
		"codes", citation.Codes(),
		"total", citation.TotalAmount,
	)

	if s.notifier != nil {
		s.notifier.NotifyCitation(citation)
	} else {
		slog.InfoContext(ctx, "Discord notifications not configured, skipping", "citation", citation.ID)
	}
	return citation, nil
}

// GetCitation retrieves a citation by ID
func (s *Service) GetCitation(id int64) (*Citation, error) {
	citation, err := s.db.GetCitation(id)
	if err != nil {
		return nil, fmt.Errorf("getting citation: %w", err)
	}
	return citation, nil
}

// ListCitations returns all citations
func (s *Service) ListCitations() ([]*Citation, error) {
	citations, err := s.db.ListCitations()
	if err != nil {
		return nil, fmt.Errorf("listing citations: %w", err)
	}
	return citations, nil
}

// SubmitArrest validates and publishes an arrest report. Arrests are not
// stored.
func (s *Service) SubmitArrest(ctx context.Context, req ArrestRequest) (*Arrest, error) {
	arrest, err := AssembleArrest(req)
	if err != nil {
		return nil, err
	}
	arrest.ID = s.idGenerator.Generate()
	arrest.CreatedAt = s.timeSource.Now()
	arrest.Court = arrest.Court.withDefaults(s.court)

	slog.InfoContext(ctx, "Arrest report submitted",
		"id", arrest.ID,
		"codes", arrest.Codes(),
		"total_jail_seconds", arrest.TotalJailTime,
		"warrant_needed", arrest.WarrantNeeded,
		"mugshot", arrest.HasMugshot,
	)

	if s.notifier != nil {
		s.notifier.NotifyArrest(arrest)
	} else {
		slog.InfoContext(ctx, "Discord notifications not configured, skipping", "arrest", arrest.ID)
	}
	return arrest, nil
}

// ListArrests always returns an empty list; arrest reports live only in Discord.
func (s *Service) ListArrests() []*Arrest {
	return []*Arrest{}
}

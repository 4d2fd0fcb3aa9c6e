package main

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/zombor/patrol-reports/internal/ledger"
	"github.com/zombor/patrol-reports/internal/mugshot"
	"github.com/zombor/patrol-reports/internal/penalcode"
	"github.com/zombor/patrol-reports/internal/report"
)

// fillSession selects each code on its own row, in order.
func fillSession(s *ledger.Session, codes []string) error {
	if len(codes) == 0 {
		return fmt.Errorf("at least one penal code is required")
	}
	for i, code := range codes {
		id := s.Rows()[0].ID
		if i > 0 {
			id = s.AddRow()
		}
		code = strings.TrimSpace(code)
		if !s.SelectCode(id, code) {
			return fmt.Errorf("unknown %s penal code %q (see patrolctl codes %s)", s.Catalog().Name(), code, s.Catalog().Name())
		}
	}
	return nil
}

type officerFields struct {
	badges, usernames, ranks, userIDs, signatures []string
}

func splitOfficers(r *ledger.Roster) officerFields {
	var f officerFields
	for _, o := range r.Officers() {
		f.badges = append(f.badges, o.Badge)
		f.usernames = append(f.usernames, o.Username)
		f.ranks = append(f.ranks, o.Rank)
		f.userIDs = append(f.userIDs, o.DiscordUserID)
		f.signatures = append(f.signatures, o.Signature)
	}
	return f
}

type citationForm struct {
	violator          string
	violatorSignature string
	violationType     string
	notes             string
}

func buildCitationRequest(r *ledger.Roster, s *ledger.Session, form citationForm) (report.CitationRequest, error) {
	if err := r.Validate(false); err != nil {
		return report.CitationRequest{}, err
	}

	officers := splitOfficers(r)
	req := report.CitationRequest{
		OfficerBadges:     officers.badges,
		OfficerUsernames:  officers.usernames,
		OfficerRanks:      officers.ranks,
		OfficerUserIDs:    officers.userIDs,
		ViolatorUsername:  form.violator,
		ViolatorSignature: form.violatorSignature,
		ViolationType:     form.violationType,
		TotalAmount:       s.Totals().FineString(),
		AdditionalNotes:   form.notes,
	}
	if req.ViolatorSignature == "" {
		req.ViolatorSignature = req.ViolatorUsername
	}
	for _, row := range s.Selected() {
		req.PenalCodes = append(req.PenalCodes, row.Code)
		req.AmountsDue = append(req.AmountsDue, row.Line().Fine)
	}
	return req, nil
}

type arrestForm struct {
	suspect          string
	suspectSignature string
	description      string
	mugshot          *mugshot.Image
	court            report.Court
}

func buildArrestRequest(r *ledger.Roster, s *ledger.Session, form arrestForm) (report.ArrestRequest, error) {
	if err := r.Validate(true); err != nil {
		return report.ArrestRequest{}, err
	}

	officers := splitOfficers(r)
	totals := s.Totals()
	req := report.ArrestRequest{
		OfficerBadges:     officers.badges,
		OfficerUsernames:  officers.usernames,
		OfficerRanks:      officers.ranks,
		OfficerUserIDs:    officers.userIDs,
		OfficerSignatures: officers.signatures,
		SuspectUsername:   form.suspect,
		SuspectSignature:  form.suspectSignature,
		Description:       form.description,
		TotalAmount:       totals.FineString(),
		TotalJailTime:     penalcode.FormatSeconds(s.Remaining()),
		TimeServed:        s.TimeServed(),
		CourtDate:         form.court.Date,
		CourtLocation:     form.court.Location,
		CourtPhone:        form.court.Phone,
	}
	if form.mugshot != nil {
		req.MugshotBase64 = form.mugshot.DataURL()
	}
	for _, row := range s.Selected() {
		line := row.Line()
		req.PenalCodes = append(req.PenalCodes, row.Code)
		req.AmountsDue = append(req.AmountsDue, line.Fine)
		req.JailTimes = append(req.JailTimes, line.JailTime)
	}
	return req, nil
}

// readMugshot loads an image file. The content type comes from the extension
// when known and is sniffed otherwise.
func readMugshot(path string) (*mugshot.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mugshot: %w", err)
	}
	if len(data) > mugshot.MaxSize {
		return nil, fmt.Errorf("mugshot exceeds %d bytes", mugshot.MaxSize)
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".heic":
		contentType = "image/heic"
	case ".heif":
		contentType = "image/heif"
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	contentType, _, _ = strings.Cut(contentType, ";")
	return &mugshot.Image{ContentType: contentType, Data: data}, nil
}

package report

import (
	"errors"
	"regexp"
	"strings"

	"github.com/zombor/patrol-reports/internal/ledger"
	"github.com/zombor/patrol-reports/internal/mugshot"
	"github.com/zombor/patrol-reports/internal/penalcode"
)

// DefaultViolationType is used when a citation does not name one.
const DefaultViolationType = "Citation"

var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// CitationRequest is the citation form as submitted. Officers and offenses
// travel as parallel arrays.
type CitationRequest struct {
	OfficerBadges     []string `json:"officerBadges"`
	OfficerUsernames  []string `json:"officerUsernames"`
	OfficerRanks      []string `json:"officerRanks"`
	OfficerUserIDs    []string `json:"officerUserIds"`
	ViolatorUsername  string   `json:"violatorUsername"`
	ViolatorSignature string   `json:"violatorSignature"`
	ViolationType     string   `json:"violationType,omitempty"`
	PenalCodes        []string `json:"penalCodes"`
	AmountsDue        []string `json:"amountsDue"`
	JailTimes         []string `json:"jailTimes,omitempty"`
	TotalAmount       string   `json:"totalAmount"`
	TotalJailTime     string   `json:"totalJailTime,omitempty"`
	AdditionalNotes   string   `json:"additionalNotes,omitempty"`
}

// ArrestRequest is the arrest form as submitted. TotalJailTime carries the
// officer's adjusted remaining sentence, not the computed total.
type ArrestRequest struct {
	OfficerBadges     []string `json:"officerBadges"`
	OfficerUsernames  []string `json:"officerUsernames"`
	OfficerRanks      []string `json:"officerRanks"`
	OfficerUserIDs    []string `json:"officerUserIds"`
	OfficerSignatures []string `json:"officerSignatures"`
	SuspectUsername   string   `json:"suspectUsername,omitempty"`
	SuspectSignature  string   `json:"suspectSignature"`
	Description       string   `json:"description,omitempty"`
	MugshotBase64     string   `json:"mugshotBase64,omitempty"`
	PenalCodes        []string `json:"penalCodes"`
	AmountsDue        []string `json:"amountsDue"`
	JailTimes         []string `json:"jailTimes"`
	TotalAmount       string   `json:"totalAmount,omitempty"`
	TotalJailTime     string   `json:"totalJailTime,omitempty"`
	TimeServed        bool     `json:"timeServed"`
	CourtDate         string   `json:"courtDate,omitempty"`
	CourtLocation     string   `json:"courtLocation,omitempty"`
	CourtPhone        string   `json:"courtPhone,omitempty"`
}

// AssembleCitation validates req against the citation catalog and returns the
// typed record. ID and CreatedAt are left for the caller to assign. On failure
// the error is a *ValidationError listing every problem.
func AssembleCitation(req CitationRequest) (*Citation, error) {
	v := &validator{}

	officers := assembleOfficers(v, req.OfficerBadges, req.OfficerUsernames, req.OfficerRanks, req.OfficerUserIDs, nil, false)
	v.required("violatorUsername", req.ViolatorUsername, "Violator username is required")
	v.required("violatorSignature", req.ViolatorSignature, "Violator signature is required")

	offenses, lines := assembleOffenses(v, penalcode.Citation, req.PenalCodes, req.AmountsDue, req.JailTimes, false)
	totals := ledger.ComputeTotals(lines)
	if lines != nil {
		checkTotalAmount(v, req.TotalAmount, totals, true)
	}

	if err := v.err(); err != nil {
		return nil, err
	}

	violationType := strings.TrimSpace(req.ViolationType)
	if violationType == "" {
		violationType = DefaultViolationType
	}

	return &Citation{
		Officers:          officers,
		ViolatorUsername:  strings.TrimSpace(req.ViolatorUsername),
		ViolatorSignature: strings.TrimSpace(req.ViolatorSignature),
		ViolationType:     violationType,
		Offenses:          offenses,
		TotalAmount:       totals.FineString(),
		TotalJailTime:     totals.JailTime,
		AdditionalNotes:   strings.TrimSpace(req.AdditionalNotes),
	}, nil
}

// AssembleArrest validates req against the arrest catalog and returns the typed
// record with the warrant flag recomputed. ID, CreatedAt and court defaults are
// left for the caller. On failure the error is a *ValidationError.
func AssembleArrest(req ArrestRequest) (*Arrest, error) {
	v := &validator{}

	officers := assembleOfficers(v, req.OfficerBadges, req.OfficerUsernames, req.OfficerRanks, req.OfficerUserIDs, req.OfficerSignatures, true)
	v.required("suspectSignature", req.SuspectSignature, "Suspect signature is required")

	description := strings.TrimSpace(req.Description)
	var img *mugshot.Image
	if strings.TrimSpace(req.MugshotBase64) != "" {
		var err error
		img, err = mugshot.ParseDataURL(req.MugshotBase64)
		switch {
		case errors.Is(err, mugshot.ErrUnsupportedType):
			v.add("mugshotBase64", "Mugshot must be an image or PDF")
		case err != nil:
			v.add("mugshotBase64", "Mugshot must be a base64 encoded image")
		}
	} else if description == "" {
		v.add("description", "Either description or mugshot is required")
	}

	if !penalcode.ValidJailTime(req.TotalJailTime) {
		v.add("totalJailTime", "Total jail time must be a number of seconds")
	}

	offenses, lines := assembleOffenses(v, penalcode.Arrest, req.PenalCodes, req.AmountsDue, req.JailTimes, true)
	totals := ledger.ComputeTotals(lines)
	if lines != nil {
		checkTotalAmount(v, req.TotalAmount, totals, false)
	}

	if err := v.err(); err != nil {
		return nil, err
	}

	remaining := totals.JailTime
	if strings.TrimSpace(req.TotalJailTime) != "" {
		remaining = penalcode.ParseJailTime(req.TotalJailTime).Seconds()
	}
	warrant := ledger.ComputeWarrant(totals.JailTime, remaining, req.TimeServed)

	return &Arrest{
		Officers:          officers,
		SuspectUsername:   strings.TrimSpace(req.SuspectUsername),
		SuspectSignature:  strings.TrimSpace(req.SuspectSignature),
		Description:       description,
		Mugshot:           img,
		HasMugshot:        img != nil,
		Offenses:          offenses,
		TotalAmount:       totals.FineString(),
		TotalJailTime:     totals.JailTime,
		RemainingJailTime: warrant.Remaining,
		TimeServed:        req.TimeServed,
		WarrantNeeded:     warrant.Needed,
		Court: Court{
			Date:     strings.TrimSpace(req.CourtDate),
			Location: strings.TrimSpace(req.CourtLocation),
			Phone:    strings.TrimSpace(req.CourtPhone),
		},
	}, nil
}

func assembleOfficers(v *validator, badges, usernames, ranks, userIDs, signatures []string, withSignatures bool) []ledger.Officer {
	n := len(badges)
	if n == 0 {
		v.add("officerBadges", "At least one officer badge is required")
		return nil
	}
	if n > ledger.MaxOfficers {
		v.add("officerBadges", "Maximum 3 officers allowed")
		return nil
	}
	if len(usernames) != n || len(ranks) != n || len(userIDs) != n {
		v.add("officers", "Every officer needs a badge, username, rank and Discord user ID")
		return nil
	}
	if withSignatures && len(signatures) != n {
		v.add("officerSignatures", "One officer signature is required per officer")
		withSignatures = false
	}

	officers := make([]ledger.Officer, n)
	for i := 0; i < n; i++ {
		o := ledger.Officer{
			Badge:         strings.TrimSpace(badges[i]),
			Username:      strings.TrimSpace(usernames[i]),
			Rank:          strings.TrimSpace(ranks[i]),
			DiscordUserID: strings.TrimSpace(userIDs[i]),
		}
		if o.Badge == "" {
			v.addf("officerBadges", i, "Badge number is required")
		}
		if o.Username == "" {
			v.addf("officerUsernames", i, "Officer username is required")
		}
		if o.Rank == "" {
			v.addf("officerRanks", i, "Officer rank is required")
		}
		if o.DiscordUserID == "" {
			v.addf("officerUserIds", i, "Officer Discord User ID is required")
		}
		if withSignatures {
			o.Signature = strings.TrimSpace(signatures[i])
			if o.Signature == "" {
				v.addf("officerSignatures", i, "Officer signature is required")
			}
		}
		officers[i] = o
	}
	return officers
}

// assembleOffenses checks each code against catalog and each amount and jail
// time against the catalog entry. Rows with no code and no amount are blank
// form rows and are skipped. Lines are nil unless every row was accepted.
func assembleOffenses(v *validator, catalog *penalcode.Catalog, codes, amounts, jailTimes []string, requireJail bool) ([]Offense, []ledger.Line) {
	if len(amounts) != len(codes) {
		v.add("amountsDue", "Every penal code needs an amount due")
		return nil, nil
	}
	checkJail := requireJail || len(jailTimes) > 0
	if checkJail && len(jailTimes) != len(codes) {
		v.add("jailTimes", "Every penal code needs a jail time")
		return nil, nil
	}

	var (
		offenses []Offense
		lines    []ledger.Line
		rows     int
	)
	for i, code := range codes {
		code = strings.TrimSpace(code)
		amount := strings.TrimSpace(amounts[i])
		if code == "" && amount == "" {
			continue
		}
		rows++
		if code == "" {
			v.addf("penalCodes", i, "Penal code is required")
			continue
		}

		c, ok := catalog.Lookup(code)
		if !ok {
			v.addf("penalCodes", i, "Unknown penal code "+code)
			continue
		}
		if !amountPattern.MatchString(amount) {
			v.addf("amountsDue", i, "Invalid amount format")
			continue
		}
		if !ledger.ParseFine(amount).Equal(c.Fine) {
			v.addf("amountsDue", i, "Amount due does not match penal code "+code)
			continue
		}
		if checkJail && (!penalcode.ValidJailTime(jailTimes[i]) || penalcode.ParseJailTime(jailTimes[i]) != c.JailTime) {
			v.addf("jailTimes", i, "Jail time does not match penal code "+code)
			continue
		}

		offenses = append(offenses, Offense{
			Code:        c.Code,
			Description: c.Description,
			AmountDue:   ledger.FormatAmount(c.Fine),
			JailTime:    c.JailTime,
		})
		lines = append(lines, ledger.Line{
			Fine:     ledger.FormatAmount(c.Fine),
			JailTime: c.JailTime.String(),
		})
	}

	if rows == 0 {
		v.add("penalCodes", "At least one penal code is required")
	}
	if len(offenses) != rows {
		return nil, nil
	}
	return offenses, lines
}

// checkTotalAmount verifies the submitted total against the ledger. When
// required is false an empty total is accepted and replaced by the ledger's.
func checkTotalAmount(v *validator, submitted string, totals ledger.Totals, required bool) {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" && !required {
		return
	}
	if !amountPattern.MatchString(submitted) {
		v.add("totalAmount", "Invalid total amount format")
		return
	}
	if !ledger.ParseFine(submitted).Equal(totals.Fine) {
		v.add("totalAmount", "Total amount does not match the sum of amounts due")
	}
}

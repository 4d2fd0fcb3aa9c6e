package report

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zombor/patrol-reports/internal/ledger"
	"github.com/zombor/patrol-reports/internal/penalcode"
)

// pngDataURL is a 1x1 transparent PNG.
const pngDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func validCitationRequest() CitationRequest {
	return CitationRequest{
		OfficerBadges:     []string{"101"},
		OfficerUsernames:  []string{"jones"},
		OfficerRanks:      []string{"Sergeant"},
		OfficerUserIDs:    []string{"111"},
		ViolatorUsername:  "555",
		ViolatorSignature: "555",
		PenalCodes:        []string{"(8)15", "(8)16"},
		AmountsDue:        []string{"250.00", "360.00"},
		TotalAmount:       "610.00",
	}
}

func validArrestRequest() ArrestRequest {
	return ArrestRequest{
		OfficerBadges:     []string{"101", "202"},
		OfficerUsernames:  []string{"jones", "smith"},
		OfficerRanks:      []string{"Sergeant", "Deputy"},
		OfficerUserIDs:    []string{"111", "222"},
		OfficerSignatures: []string{"111", "222"},
		SuspectUsername:   "crook",
		SuspectSignature:  "777",
		Description:       "Tall, red jacket",
		PenalCodes:        []string{"(1)01", "(1)04"},
		AmountsDue:        []string{"3750.00", "1000.00"},
		JailTimes:         []string{"60 Seconds", "60 Seconds"},
		TotalAmount:       "4750.00",
	}
}

func validationErr(err error) *ValidationError {
	var verr *ValidationError
	Expect(errors.As(err, &verr)).To(BeTrue(), "expected a *ValidationError, got %v", err)
	return verr
}

var _ = Describe("AssembleCitation", func() {
	var req CitationRequest

	BeforeEach(func() {
		req = validCitationRequest()
	})

	It("should assemble a valid citation", func() {
		c, err := AssembleCitation(req)
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Officers).To(Equal([]ledger.Officer{{Badge: "101", Username: "jones", Rank: "Sergeant", DiscordUserID: "111"}}))
		Expect(c.ViolationType).To(Equal(DefaultViolationType))
		Expect(c.TotalAmount).To(Equal("610.00"))
		Expect(c.TotalJailTime).To(Equal(0))
		Expect(c.Codes()).To(Equal([]string{"(8)15", "(8)16"}))
		Expect(c.Offenses[1]).To(Equal(Offense{
			Code:        "(8)16",
			Description: "Speeding (16-25 MPH Over)",
			AmountDue:   "360.00",
			JailTime:    penalcode.None,
		}))
	})

	It("should accept whole number amounts", func() {
		req.AmountsDue = []string{"250", "360.0"}
		req.TotalAmount = "610"
		_, err := AssembleCitation(req)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should skip blank rows", func() {
		req.PenalCodes = append(req.PenalCodes, "")
		req.AmountsDue = append(req.AmountsDue, "")
		c, err := AssembleCitation(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Offenses).To(HaveLen(2))
	})

	It("should keep the violation type when given", func() {
		req.ViolationType = "Traffic"
		c, err := AssembleCitation(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.ViolationType).To(Equal("Traffic"))
	})

	It("should require at least one penal code", func() {
		req.PenalCodes = []string{""}
		req.AmountsDue = []string{""}
		req.TotalAmount = "0.00"
		_, err := AssembleCitation(req)
		Expect(validationErr(err).Has("penalCodes")).To(BeTrue())
	})

	It("should reject codes outside the citation table", func() {
		req.PenalCodes = []string{"(1)01", "(8)16"}
		_, err := AssembleCitation(req)
		verr := validationErr(err)
		Expect(verr.Has("penalCodes.0")).To(BeTrue())
		Expect(verr.Has("totalAmount")).To(BeFalse())
	})

	It("should reject amounts that differ from the table", func() {
		req.AmountsDue = []string{"250.00", "300.00"}
		req.TotalAmount = "550.00"
		_, err := AssembleCitation(req)
		Expect(validationErr(err).Has("amountsDue.1")).To(BeTrue())
	})

	It("should reject malformed amounts", func() {
		req.AmountsDue = []string{"250.00", "$360"}
		_, err := AssembleCitation(req)
		Expect(validationErr(err).Has("amountsDue.1")).To(BeTrue())
	})

	It("should reject a total that does not match", func() {
		req.TotalAmount = "600.00"
		_, err := AssembleCitation(req)
		verr := validationErr(err)
		Expect(verr.Errors).To(HaveLen(1))
		Expect(verr.Has("totalAmount")).To(BeTrue())
	})

	It("should require a total", func() {
		req.TotalAmount = ""
		_, err := AssembleCitation(req)
		Expect(validationErr(err).Has("totalAmount")).To(BeTrue())
	})

	It("should reject mismatched arrays", func() {
		req.AmountsDue = []string{"250.00"}
		_, err := AssembleCitation(req)
		Expect(validationErr(err).Has("amountsDue")).To(BeTrue())
	})

	It("should require the violator", func() {
		req.ViolatorUsername = " "
		req.ViolatorSignature = ""
		_, err := AssembleCitation(req)
		verr := validationErr(err)
		Expect(verr.Has("violatorUsername")).To(BeTrue())
		Expect(verr.Has("violatorSignature")).To(BeTrue())
	})

	DescribeTable("officers",
		func(mutate func(*CitationRequest), field string) {
			mutate(&req)
			_, err := AssembleCitation(req)
			Expect(validationErr(err).Has(field)).To(BeTrue())
		},
		Entry("none", func(r *CitationRequest) {
			r.OfficerBadges, r.OfficerUsernames, r.OfficerRanks, r.OfficerUserIDs = nil, nil, nil, nil
		}, "officerBadges"),
		Entry("more than three", func(r *CitationRequest) {
			r.OfficerBadges = []string{"1", "2", "3", "4"}
			r.OfficerUsernames = []string{"a", "b", "c", "d"}
			r.OfficerRanks = []string{"a", "b", "c", "d"}
			r.OfficerUserIDs = []string{"1", "2", "3", "4"}
		}, "officerBadges"),
		Entry("mismatched arrays", func(r *CitationRequest) {
			r.OfficerRanks = nil
		}, "officers"),
		Entry("blank badge", func(r *CitationRequest) {
			r.OfficerBadges = []string{""}
		}, "officerBadges.0"),
		Entry("blank user id", func(r *CitationRequest) {
			r.OfficerUserIDs = []string{" "}
		}, "officerUserIds.0"),
	)

	It("should report every problem at once", func() {
		req.ViolatorSignature = ""
		req.OfficerRanks = []string{""}
		req.TotalAmount = "1.00"
		_, err := AssembleCitation(req)
		verr := validationErr(err)
		Expect(verr.Has("violatorSignature")).To(BeTrue())
		Expect(verr.Has("officerRanks.0")).To(BeTrue())
		Expect(verr.Has("totalAmount")).To(BeTrue())
		Expect(verr.Error()).To(HavePrefix("validation failed: "))
	})
})

var _ = Describe("AssembleArrest", func() {
	var req ArrestRequest

	BeforeEach(func() {
		req = validArrestRequest()
	})

	It("should assemble a valid arrest", func() {
		a, err := AssembleArrest(req)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Officers).To(HaveLen(2))
		Expect(a.Officers[1].Signature).To(Equal("222"))
		Expect(a.TotalAmount).To(Equal("4750.00"))
		Expect(a.TotalJailTime).To(Equal(120))
		Expect(a.RemainingJailTime).To(Equal(120))
		Expect(a.WarrantNeeded).To(BeTrue())
		Expect(a.HasMugshot).To(BeFalse())
		Expect(a.Offenses[0].JailTime).To(Equal(penalcode.Seconds(60)))
	})

	It("should accept a blank total amount", func() {
		req.TotalAmount = ""
		a, err := AssembleArrest(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.TotalAmount).To(Equal("4750.00"))
	})

	It("should sum zero fine and no jail offenses", func() {
		req.PenalCodes = []string{"(1)08", "(2)08"}
		req.AmountsDue = []string{"0.00", "1000.00"}
		req.JailTimes = []string{"600 Seconds", "None"}
		req.TotalAmount = "1000.00"

		a, err := AssembleArrest(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.TotalJailTime).To(Equal(600))
	})

	DescribeTable("warrant",
		func(remaining string, timeServed, needed bool, left int) {
			req.TotalJailTime = remaining
			req.TimeServed = timeServed

			a, err := AssembleArrest(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.WarrantNeeded).To(Equal(needed))
			Expect(a.RemainingJailTime).To(Equal(left))
			Expect(a.TimeServed).To(Equal(timeServed))
		},
		Entry("defaults to the full sentence", "", false, true, 120),
		Entry("partially served", "60 Seconds", false, true, 60),
		Entry("bare number", "30", false, true, 30),
		Entry("fully served", "0 Seconds", false, false, 0),
		Entry("clamped to the total", "999 Seconds", false, true, 120),
		Entry("time served", "60 Seconds", true, false, 0),
	)

	It("should accept a mugshot instead of a description", func() {
		req.Description = ""
		req.MugshotBase64 = pngDataURL

		a, err := AssembleArrest(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.HasMugshot).To(BeTrue())
		Expect(a.Mugshot.ContentType).To(Equal("image/png"))
	})

	It("should require a description or mugshot", func() {
		req.Description = "  "
		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("description")).To(BeTrue())
	})

	It("should reject an invalid mugshot", func() {
		req.MugshotBase64 = "data:image/png;base64,%%%"
		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("mugshotBase64")).To(BeTrue())
	})

	It("should reject a mugshot that is not an image", func() {
		req.Description = ""
		req.MugshotBase64 = "data:text/plain;base64,aGVsbG8gd29ybGQ="

		_, err := AssembleArrest(req)
		verr := validationErr(err)
		Expect(verr.Has("mugshotBase64")).To(BeTrue())
		Expect(verr.Errors).To(ContainElement(FieldError{Field: "mugshotBase64", Message: "Mugshot must be an image or PDF"}))
	})

	It("should reject text labelled as an image", func() {
		req.MugshotBase64 = "data:image/png;base64,aGVsbG8gd29ybGQ="
		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("mugshotBase64")).To(BeTrue())
	})

	It("should reject a malformed remaining jail time", func() {
		req.TotalJailTime = "garbage"
		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("totalJailTime")).To(BeTrue())
	})

	It("should reject a malformed jail time on a fine only code", func() {
		req.PenalCodes = []string{"(2)08"}
		req.AmountsDue = []string{"1000.00"}
		req.JailTimes = []string{"garbage"}
		req.TotalAmount = ""

		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("jailTimes.0")).To(BeTrue())
	})

	It("should reject jail times that differ from the table", func() {
		req.JailTimes = []string{"60 Seconds", "30 Seconds"}
		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("jailTimes.1")).To(BeTrue())
	})

	It("should require jail times for every code", func() {
		req.JailTimes = nil
		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("jailTimes")).To(BeTrue())
	})

	It("should require officer signatures", func() {
		req.OfficerSignatures = []string{"111", ""}
		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("officerSignatures.1")).To(BeTrue())
	})

	It("should require one signature per officer", func() {
		req.OfficerSignatures = nil
		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("officerSignatures")).To(BeTrue())
	})

	It("should require the suspect signature", func() {
		req.SuspectSignature = ""
		_, err := AssembleArrest(req)
		Expect(validationErr(err).Has("suspectSignature")).To(BeTrue())
	})

	It("should carry court overrides", func() {
		req.CourtDate = "02/03/26"
		a, err := AssembleArrest(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Court).To(Equal(Court{Date: "02/03/26"}))
	})
})

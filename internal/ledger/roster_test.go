package ledger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Roster", func() {
	var (
		roster *Roster
		jones  Officer
	)

	BeforeEach(func() {
		roster = NewRoster()
		jones = Officer{Badge: "1234", Username: "jones", Rank: "Sergeant 2", DiscordUserID: "111"}
	})

	It("should start with one blank officer", func() {
		Expect(roster.Len()).To(Equal(1))
		Expect(roster.Primary().Empty()).To(BeTrue())
	})

	Describe("Add", func() {
		It("should allow up to three officers", func() {
			_, err := roster.Add(jones)
			Expect(err).NotTo(HaveOccurred())
			_, err = roster.Add(jones)
			Expect(err).NotTo(HaveOccurred())
			Expect(roster.Len()).To(Equal(MaxOfficers))
		})

		It("should reject a fourth officer", func() {
			roster.Add(jones)
			roster.Add(jones)
			_, err := roster.Add(jones)
			Expect(err).To(MatchError(ErrRosterFull))
			Expect(roster.Len()).To(Equal(3))
		})
	})

	Describe("Remove", func() {
		It("should refuse to remove the only officer", func() {
			Expect(roster.Remove(roster.IDs()[0])).To(MatchError(ErrLastOfficer))
		})

		It("should remove an assisting officer", func() {
			id, _ := roster.Add(jones)
			Expect(roster.Remove(id)).To(Succeed())
			Expect(roster.Len()).To(Equal(1))
		})

		It("should fail for unknown officers", func() {
			roster.Add(jones)
			Expect(roster.Remove("missing")).NotTo(Succeed())
		})
	})

	Describe("Update", func() {
		It("should replace the officer", func() {
			id := roster.IDs()[0]
			Expect(roster.Update(id, jones)).To(Succeed())
			Expect(roster.Primary()).To(Equal(jones))
		})
	})

	Describe("Assisting", func() {
		It("should list every officer after the first", func() {
			roster.Update(roster.IDs()[0], jones)
			smith := Officer{Badge: "2", Username: "smith", Rank: "Deputy", DiscordUserID: "222"}
			roster.Add(smith)
			Expect(roster.Assisting()).To(Equal([]Officer{smith}))
		})
	})

	Describe("RosterOf", func() {
		It("should drop blanks and truncate", func() {
			r := RosterOf([]Officer{{}, jones, jones, jones, jones})
			Expect(r.Len()).To(Equal(3))
			Expect(r.Primary()).To(Equal(jones))
		})

		It("should fall back to one blank officer", func() {
			Expect(RosterOf(nil).Len()).To(Equal(1))
		})
	})

	Describe("Validate", func() {
		It("should flag missing fields", func() {
			err := roster.Validate(false)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("officer 1: badge number is required"))
		})

		It("should pass a complete roster", func() {
			roster.Update(roster.IDs()[0], jones)
			Expect(roster.Validate(false)).To(Succeed())
		})

		It("should require signatures when asked", func() {
			roster.Update(roster.IDs()[0], jones)
			Expect(roster.Validate(true)).To(MatchError(ContainSubstring("signature is required")))
		})
	})
})

package ledger

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zombor/patrol-reports/internal/penalcode"
)

var _ = Describe("Session", func() {
	var session *Session

	BeforeEach(func() {
		session = NewSession(penalcode.Arrest)
		n := 0
		session.newID = func() string {
			n++
			return fmt.Sprintf("row-%d", n)
		}
		session.Reset()
	})

	It("should start with one empty row", func() {
		rows := session.Rows()
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Selected()).To(BeFalse())
		Expect(rows[0].JailTime.IsNone()).To(BeTrue())
	})

	Describe("SelectCode", func() {
		It("should fill the row from the catalog", func() {
			id := session.Rows()[0].ID
			Expect(session.SelectCode(id, "(1)02")).To(BeTrue())

			row := session.Rows()[0]
			Expect(row.Description).To(Equal("Assault"))
			Expect(FormatAmount(row.Fine)).To(Equal("3750.00"))
			Expect(row.JailTime.Seconds()).To(Equal(240))
		})

		It("should reject codes outside the catalog", func() {
			id := session.Rows()[0].ID
			Expect(session.SelectCode(id, "(0)99")).To(BeFalse())
			Expect(session.Rows()[0].Selected()).To(BeFalse())
		})

		It("should reject unknown rows", func() {
			Expect(session.SelectCode("nope", "(1)02")).To(BeFalse())
		})

		It("should reset the remaining sentence to the new total", func() {
			id := session.Rows()[0].ID
			session.SelectCode(id, "(1)02")
			session.SetRemaining(60)

			second := session.AddRow()
			session.SelectCode(second, "(1)01")
			Expect(session.Remaining()).To(Equal(300))
		})
	})

	Describe("RemoveRow", func() {
		It("should refuse to remove the last row", func() {
			id := session.Rows()[0].ID
			Expect(session.RemoveRow(id)).To(BeFalse())
			Expect(session.Rows()).To(HaveLen(1))
		})

		It("should keep the identity of the remaining rows", func() {
			first := session.Rows()[0].ID
			second := session.AddRow()
			third := session.AddRow()
			session.SelectCode(third, "(1)08")

			Expect(session.RemoveRow(second)).To(BeTrue())

			rows := session.Rows()
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].ID).To(Equal(first))
			Expect(rows[1].ID).To(Equal(third))
			Expect(rows[1].Code).To(Equal("(1)08"))
		})

		It("should never reuse a removed row ID", func() {
			second := session.AddRow()
			session.RemoveRow(second)
			Expect(session.AddRow()).NotTo(Equal(second))
		})
	})

	Describe("Totals", func() {
		It("should ignore unselected rows", func() {
			session.SelectCode(session.Rows()[0].ID, "(1)01")
			session.AddRow()

			t := session.Totals()
			Expect(t.FineString()).To(Equal("3750.00"))
			Expect(t.JailTime).To(Equal(60))
			Expect(session.Selected()).To(HaveLen(1))
		})
	})

	Describe("Warrant", func() {
		BeforeEach(func() {
			session.SelectCode(session.Rows()[0].ID, "(1)02")
		})

		It("should need a warrant when time remains", func() {
			session.SetRemaining(120)
			Expect(session.Warrant()).To(Equal(Warrant{Needed: true, Remaining: 120}))
		})

		It("should not need a warrant once time is served", func() {
			session.SetRemaining(120)
			session.SetTimeServed(true)
			Expect(session.Warrant()).To(Equal(Warrant{}))
		})

		It("should clamp the remaining sentence", func() {
			Expect(session.SetRemaining(10000)).To(Equal(240))
			Expect(session.SetRemaining(-5)).To(Equal(0))
			Expect(session.Warrant().Needed).To(BeFalse())
		})
	})

	Describe("Reset", func() {
		It("should clear all state", func() {
			session.SelectCode(session.Rows()[0].ID, "(1)02")
			session.AddRow()
			session.SetTimeServed(true)

			session.Reset()

			Expect(session.Rows()).To(HaveLen(1))
			Expect(session.TimeServed()).To(BeFalse())
			Expect(session.Remaining()).To(BeZero())
		})
	})
})

package report

import (
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zombor/patrol-reports/internal/ledger"
	"github.com/zombor/patrol-reports/internal/penalcode"
)

func sampleCitation() *Citation {
	return &Citation{
		Officers:          []ledger.Officer{{Badge: "101", Username: "jones", Rank: "Sergeant", DiscordUserID: "111"}},
		ViolatorUsername:  "555",
		ViolatorSignature: "555",
		ViolationType:     "Citation",
		Offenses: []Offense{
			{Code: "(8)15", Description: "Speeding (6-15 MPH Over)", AmountDue: "250.00", JailTime: penalcode.None},
		},
		TotalAmount: "250.00",
		CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

// dbContract runs the behavior every DB implementation shares.
func dbContract(open func() DB) {
	var db DB

	BeforeEach(func() {
		db = open()
	})

	AfterEach(func() {
		Expect(db.Close()).To(Succeed())
	})

	It("should assign increasing IDs", func() {
		first, second := sampleCitation(), sampleCitation()
		Expect(db.SaveCitation(first)).To(Succeed())
		Expect(db.SaveCitation(second)).To(Succeed())

		Expect(first.ID).To(Equal(int64(1)))
		Expect(second.ID).To(Equal(int64(2)))
	})

	It("should round trip a citation", func() {
		c := sampleCitation()
		Expect(db.SaveCitation(c)).To(Succeed())

		got, err := db.GetCitation(c.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Offenses).To(Equal(c.Offenses))
		Expect(got.Officers).To(Equal(c.Officers))
		Expect(got.CreatedAt.Equal(c.CreatedAt)).To(BeTrue())
	})

	It("should keep an explicit ID", func() {
		c := sampleCitation()
		c.ID = 42
		Expect(db.SaveCitation(c)).To(Succeed())

		got, err := db.GetCitation(42)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ID).To(Equal(int64(42)))
	})

	It("should return ErrNotFound for unknown IDs", func() {
		_, err := db.GetCitation(7)
		Expect(err).To(MatchError(ErrNotFound))
	})

	It("should list citations in ID order", func() {
		for range 3 {
			Expect(db.SaveCitation(sampleCitation())).To(Succeed())
		}

		citations, err := db.ListCitations()
		Expect(err).NotTo(HaveOccurred())
		Expect(citations).To(HaveLen(3))
		for i, c := range citations {
			Expect(c.ID).To(Equal(int64(i + 1)))
		}
	})

	It("should list nothing when empty", func() {
		citations, err := db.ListCitations()
		Expect(err).NotTo(HaveOccurred())
		Expect(citations).NotTo(BeNil())
		Expect(citations).To(BeEmpty())
	})
}

var _ = Describe("BoltDB", func() {
	var dbPath string

	BeforeEach(func() {
		dbPath = filepath.Join(GinkgoT().TempDir(), "test.db")
	})

	Describe("contract", func() {
		dbContract(func() DB {
			db, err := NewBoltDB(dbPath)
			Expect(err).NotTo(HaveOccurred())
			return db
		})
	})

	It("should keep the sequence across reopen", func() {
		db, err := NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(db.SaveCitation(sampleCitation())).To(Succeed())
		Expect(db.Close()).To(Succeed())

		db, err = NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
		defer db.Close()

		c := sampleCitation()
		Expect(db.SaveCitation(c)).To(Succeed())
		Expect(c.ID).To(Equal(int64(2)))
	})
})

var _ = Describe("MemDB", func() {
	Describe("contract", func() {
		dbContract(func() DB {
			return NewMemDB()
		})
	})

	It("should store copies", func() {
		db := NewMemDB()
		c := sampleCitation()
		Expect(db.SaveCitation(c)).To(Succeed())
		c.ViolatorUsername = "changed"

		got, err := db.GetCitation(c.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ViolatorUsername).To(Equal("555"))
	})
})

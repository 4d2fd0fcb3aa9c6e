package penalcode

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JailTime", func() {
	DescribeTable("ParseJailTime",
		func(input string, none bool, seconds int) {
			j := ParseJailTime(input)
			Expect(j.IsNone()).To(Equal(none))
			Expect(j.Seconds()).To(Equal(seconds))
		},
		Entry("None", "None", true, 0),
		Entry("lowercase none", "none", true, 0),
		Entry("empty", "", true, 0),
		Entry("seconds", "60 Seconds", false, 60),
		Entry("padded seconds", "  240 Seconds ", false, 240),
		Entry("bare integer", "45", false, 45),
		Entry("zero seconds", "0 Seconds", false, 0),
		Entry("garbage", "a while", true, 0),
		Entry("negative", "-5 Seconds", true, 0),
	)

	DescribeTable("ValidJailTime",
		func(input string, valid bool) {
			Expect(ValidJailTime(input)).To(Equal(valid))
		},
		Entry("None", "None", true),
		Entry("empty", " ", true),
		Entry("seconds", "60 Seconds", true),
		Entry("bare integer", "45", true),
		Entry("garbage", "garbage", false),
		Entry("words before seconds", "a few Seconds", false),
		Entry("fraction", "1.5 Seconds", false),
	)

	It("should render None distinctly from zero seconds", func() {
		Expect(None.String()).To(Equal("None"))
		Expect(Seconds(0).String()).To(Equal("0 Seconds"))
	})

	It("should round trip through JSON", func() {
		data, err := json.Marshal(Seconds(90))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"90 Seconds"`))

		var j JailTime
		Expect(json.Unmarshal(data, &j)).To(Succeed())
		Expect(j).To(Equal(Seconds(90)))
	})

	It("should decode a number of seconds", func() {
		var j JailTime
		Expect(json.Unmarshal([]byte(`120`), &j)).To(Succeed())
		Expect(j.Seconds()).To(Equal(120))
	})

	It("should reject non string non numeric values", func() {
		var j JailTime
		Expect(json.Unmarshal([]byte(`{}`), &j)).NotTo(Succeed())
	})
})

package cracktime_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/osec-tools/pass-meter/cracktime"
)

var _ = Describe("Estimate", func() {
	It("reads anything under a second as instantly", func() {
		result := cracktime.Estimate("", nil)
		Expect(result.Seconds).To(BeNumerically("<", 1))
		Expect(result.Description).To(Equal("instantly"))
	})

	It("grows with every extra character", func() {
		shorter := cracktime.Estimate("aaaaaaa", nil)
		longer := cracktime.Estimate("aaaaaaaa", nil)
		Expect(longer.Seconds).To(BeNumerically(">", shorter.Seconds))
	})

	It("honors a custom attack model", func() {
		opts := &cracktime.Options{
			GuessesPerSecond:   1,
			PossibleCharacters: 10,
		}

		result := cracktime.Estimate("aa", opts)
		Expect(result.Seconds).To(Equal(100.0))
		Expect(result.Description).To(Equal("1 minute, 40 seconds"))
	})

	It("falls back to the defaults for zero options", func() {
		Expect(cracktime.Estimate("abc", &cracktime.Options{})).To(Equal(cracktime.Estimate("abc", nil)))
	})

	It("measures length in runes, not bytes", func() {
		Expect(cracktime.Estimate("äö", nil).Seconds).To(Equal(cracktime.Estimate("ab", nil).Seconds))
	})
})

var _ = Describe("Describe", func() {
	It("breaks a duration into largest-unit-first components", func() {
		Expect(cracktime.Describe(90061)).To(Equal("1 day, 1 hour, 1 minute, 1 second"))
	})

	It("skips units with a zero count", func() {
		// one astronomical year plus one minute
		Expect(cracktime.Describe(31557660)).To(Equal("1 year, 1 minute"))
	})

	It("pluralizes counts above one", func() {
		Expect(cracktime.Describe(63115200000)).To(Equal("2 millennia"))
		Expect(cracktime.Describe(120)).To(Equal("2 minutes"))
	})

	It("groups large counts with separators", func() {
		Expect(cracktime.Describe(157788000000000)).To(Equal("5,000 millennia"))
	})

	It("truncates fractional seconds", func() {
		Expect(cracktime.Describe(0.9)).To(Equal("instantly"))
		Expect(cracktime.Describe(1.5)).To(Equal("1 second"))
	})
})

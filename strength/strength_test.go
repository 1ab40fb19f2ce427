package strength_test

import (
	"github.com/hashicorp/go-multierror"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/osec-tools/pass-meter/strength"
)

var _ = Describe("Classify", func() {
	It("maps a score to the first tier whose bound reaches it", func() {
		tier, err := strength.Classify(102, strength.DefaultTable())
		Expect(err).NotTo(HaveOccurred())
		Expect(tier).To(Equal(strength.Medium))
	})

	It("keeps a score on a boundary in the lower tier", func() {
		tier, err := strength.Classify(40, strength.DefaultTable())
		Expect(err).NotTo(HaveOccurred())
		Expect(tier).To(Equal(strength.VeryWeak))

		tier, err = strength.Classify(41, strength.DefaultTable())
		Expect(err).NotTo(HaveOccurred())
		Expect(tier).To(Equal(strength.Weak))
	})

	It("maps every negative score to Invalid", func() {
		tier, err := strength.Classify(-1, strength.DefaultTable())
		Expect(err).NotTo(HaveOccurred())
		Expect(tier).To(Equal(strength.Invalid))

		tier, err = strength.Classify(-500, strength.DefaultTable())
		Expect(err).NotTo(HaveOccurred())
		Expect(tier).To(Equal(strength.Invalid))
	})

	It("maps zero to the lowest scored tier", func() {
		tier, err := strength.Classify(0, strength.DefaultTable())
		Expect(err).NotTo(HaveOccurred())
		Expect(tier).To(Equal(strength.VeryWeak))
	})

	It("maps a score beyond every bound to Perfect", func() {
		tier, err := strength.Classify(241, strength.DefaultTable())
		Expect(err).NotTo(HaveOccurred())
		Expect(tier).To(Equal(strength.Perfect))

		tier, err = strength.Classify(10000, strength.DefaultTable())
		Expect(err).NotTo(HaveOccurred())
		Expect(tier).To(Equal(strength.Perfect))
	})

	It("never weakens the tier as the score grows", func() {
		table := strength.DefaultTable()

		previous := strength.Invalid
		for score := 0; score <= 300; score++ {
			tier, err := strength.Classify(score, table)
			Expect(err).NotTo(HaveOccurred())
			Expect(tier).To(BeNumerically(">=", previous))
			previous = tier
		}
	})

	It("refuses a malformed table instead of guessing", func() {
		table := strength.Table{
			{Tier: strength.VeryWeak, MaxScore: 40},
			{Tier: strength.VeryWeak, MaxScore: 80},
		}

		tier, err := strength.Classify(10, table)
		Expect(err).To(HaveOccurred())
		Expect(tier).To(Equal(strength.Invalid))
	})
})

var _ = Describe("Table", func() {
	Describe("Validate", func() {
		It("accepts the default table", func() {
			Expect(strength.DefaultTable().Validate()).To(Succeed())
		})

		It("reports every defect at once", func() {
			table := strength.Table{
				{Tier: strength.Weak, MaxScore: 80},
				{Tier: strength.VeryWeak, MaxScore: 40},
				{Tier: strength.Tier(42), MaxScore: 90},
			}

			err := table.Validate()
			Expect(err).To(HaveOccurred())

			merr, ok := err.(*multierror.Error)
			Expect(ok).To(BeTrue())
			Expect(len(merr.Errors)).To(BeNumerically(">", 1))
		})

		It("rejects duplicate tiers", func() {
			table := strength.Table{
				{Tier: strength.VeryWeak, MaxScore: 40},
				{Tier: strength.Weak, MaxScore: 80},
				{Tier: strength.Weak, MaxScore: 90},
				{Tier: strength.Medium, MaxScore: 120},
				{Tier: strength.Strong, MaxScore: 160},
				{Tier: strength.VeryStrong, MaxScore: 200},
				{Tier: strength.Perfect, MaxScore: 240},
			}

			Expect(table.Validate()).To(MatchError(ContainSubstring(`lists "weak" more than once`)))
		})

		It("rejects missing tiers", func() {
			table := strength.Table{
				{Tier: strength.VeryWeak, MaxScore: 40},
			}

			Expect(table.Validate()).To(MatchError(ContainSubstring(`missing "weak"`)))
		})

		It("rejects decreasing maximum scores", func() {
			table := strength.DefaultTable()
			table[3].MaxScore = 10

			Expect(table.Validate()).To(MatchError(ContainSubstring(`max score for "strong" decreases`)))
		})
	})
})

var _ = Describe("Tier", func() {
	It("prints its configuration name", func() {
		Expect(strength.VeryStrong.String()).To(Equal("very strong"))
		Expect(strength.Invalid.String()).To(Equal("invalid"))
		Expect(strength.Tier(42).String()).To(Equal("unknown tier (42)"))
	})

	Describe("ParseTier", func() {
		It("round-trips every known name", func() {
			tier, ok := strength.ParseTier("medium")
			Expect(ok).To(BeTrue())
			Expect(tier).To(Equal(strength.Medium))
		})

		It("rejects unknown names", func() {
			_, ok := strength.ParseTier("heroic")
			Expect(ok).To(BeFalse())
		})
	})
})

package service_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskletix.app/intake/internal/service"
)

func validPayload() map[string]any {
	return map[string]any{
		"name":            "Ada Lovelace",
		"email":           "ada@gmail.com",
		"phone":           "5550100",
		"country_code":    "+44",
		"company":         "Analytical Engines",
		"project_type":    "Web App",
		"budget_range":    "$10k-$25k",
		"timeline":        "3 months",
		"project_details": "A calculator for Bernoulli numbers.",
	}
}

var _ = Describe("ValidateSubmission", func() {
	Context("when every required field is present", func() {
		It("should return a trimmed, unsaved submission", func() {
			raw := validPayload()
			raw["name"] = "  Ada Lovelace  "
			raw["company"] = "\tAnalytical Engines\n"

			sub, err := service.ValidateSubmission(raw)

			Expect(err).NotTo(HaveOccurred())
			Expect(sub.IsPersisted()).To(BeFalse())
			Expect(sub.Name).To(Equal("Ada Lovelace"))
			Expect(sub.Email).To(Equal("ada@gmail.com"))
			Expect(sub.Phone).To(Equal("5550100"))
			Expect(sub.CountryCode).To(Equal("+44"))
			Expect(sub.Company).To(Equal("Analytical Engines"))
			Expect(sub.ProjectType).To(Equal("Web App"))
			Expect(sub.BudgetRange).To(Equal("$10k-$25k"))
			Expect(sub.Timeline).To(Equal("3 months"))
			Expect(sub.ProjectDetails).To(Equal("A calculator for Bernoulli numbers."))
		})

		It("should store absent optional fields as empty strings", func() {
			raw := map[string]any{
				"name":            "Ada",
				"email":           "ada@gmail.com",
				"project_type":    "Web App",
				"project_details": "Details",
			}

			sub, err := service.ValidateSubmission(raw)

			Expect(err).NotTo(HaveOccurred())
			Expect(sub.Phone).To(BeEmpty())
			Expect(sub.CountryCode).To(BeEmpty())
			Expect(sub.Company).To(BeEmpty())
			Expect(sub.BudgetRange).To(BeEmpty())
			Expect(sub.Timeline).To(BeEmpty())
		})
	})

	Context("when required fields are missing", func() {
		It("should list every missing field in declaration order", func() {
			sub, err := service.ValidateSubmission(map[string]any{})

			Expect(sub).To(BeNil())
			Expect(errors.Is(err, service.ErrMissingFields)).To(BeTrue())

			var missing *service.MissingFieldsError
			Expect(errors.As(err, &missing)).To(BeTrue())
			Expect(missing.Fields).To(Equal([]string{"name", "email", "project_type", "project_details"}))
			Expect(missing.Fields).To(Equal(service.RequiredFields))
		})

		It("should treat whitespace-only values as missing", func() {
			raw := validPayload()
			raw["project_details"] = "   "
			raw["name"] = "\n"

			_, err := service.ValidateSubmission(raw)

			var missing *service.MissingFieldsError
			Expect(errors.As(err, &missing)).To(BeTrue())
			Expect(missing.Fields).To(Equal([]string{"name", "project_details"}))
			Expect(err.Error()).To(Equal("missing required fields: name, project_details"))
		})

		It("should treat non-string values as missing", func() {
			raw := validPayload()
			raw["project_type"] = 42.0
			raw["email"] = nil

			_, err := service.ValidateSubmission(raw)

			var missing *service.MissingFieldsError
			Expect(errors.As(err, &missing)).To(BeTrue())
			Expect(missing.Fields).To(Equal([]string{"email", "project_type"}))
		})

		It("should report missing fields before checking the email", func() {
			raw := validPayload()
			raw["email"] = "ada@yahoo.com"
			delete(raw, "name")

			_, err := service.ValidateSubmission(raw)

			Expect(errors.Is(err, service.ErrMissingFields)).To(BeTrue())
			Expect(errors.Is(err, service.ErrInvalidEmail)).To(BeFalse())
		})
	})

	Context("when the email is not a gmail address", func() {
		DescribeTable("should reject it",
			func(email string) {
				raw := validPayload()
				raw["email"] = email

				sub, err := service.ValidateSubmission(raw)

				Expect(sub).To(BeNil())
				Expect(err).To(MatchError(service.ErrInvalidEmail))
			},
			Entry("other provider", "ada@yahoo.com"),
			Entry("uppercase domain", "ada@GMAIL.COM"),
			Entry("gmail subdomain lookalike", "ada@gmail.com.evil.io"),
			Entry("no local part", "@gmail.com"),
			Entry("space inside", "ada love@gmail.com"),
			Entry("googlemail", "ada@googlemail.com"),
		)

		DescribeTable("should accept gmail addresses",
			func(email string) {
				raw := validPayload()
				raw["email"] = email

				sub, err := service.ValidateSubmission(raw)

				Expect(err).NotTo(HaveOccurred())
				Expect(sub.Email).To(Equal(email))
			},
			Entry("plain", "ada@gmail.com"),
			Entry("dots and plus", "ada.lovelace+work@gmail.com"),
			Entry("percent and dash", "a%b-c_d@gmail.com"),
			Entry("uppercase local part", "ADA@gmail.com"),
		)

		It("should match after trimming surrounding whitespace", func() {
			raw := validPayload()
			raw["email"] = "  ada@gmail.com  "

			sub, err := service.ValidateSubmission(raw)

			Expect(err).NotTo(HaveOccurred())
			Expect(sub.Email).To(Equal("ada@gmail.com"))
		})
	})
})

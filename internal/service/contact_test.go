package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskletix.app/intake/internal/model"
	"taskletix.app/intake/internal/queue"
	"taskletix.app/intake/internal/service"
)

var _ = Describe("ContactService", func() {
	var (
		svc       service.ContactService
		mockStore *mockSubmissionStore
		producer  *mockProducer
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockStore = &mockSubmissionStore{}
		producer = &mockProducer{}
	})

	Describe("Submit", func() {
		Context("when the payload is valid", func() {
			It("should persist the submission and return it with its id", func() {
				var captured *model.Submission
				mockStore.createFn = func(_ context.Context, sub *model.Submission) error {
					captured = sub
					sub.ID = 7
					sub.CreatedAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
					return nil
				}

				svc = service.NewContactService(mockStore, producer)
				sub, err := svc.Submit(ctx, validPayload())

				Expect(err).NotTo(HaveOccurred())
				Expect(sub.ID).To(Equal(int64(7)))
				Expect(sub.IsPersisted()).To(BeTrue())
				Expect(captured).NotTo(BeNil())
				Expect(captured.Email).To(Equal("ada@gmail.com"))
			})

			It("should announce the saved submission", func() {
				mockStore.createFn = func(_ context.Context, sub *model.Submission) error {
					sub.ID = 11
					return nil
				}
				var sent *queue.SubmissionMessage
				producer.enqueueFn = func(_ context.Context, msg queue.SubmissionMessage) error {
					sent = &msg
					return nil
				}

				svc = service.NewContactService(mockStore, producer)
				_, err := svc.Submit(ctx, validPayload())

				Expect(err).NotTo(HaveOccurred())
				Expect(sent).NotTo(BeNil())
				Expect(sent.SubmissionID).To(Equal(int64(11)))
				Expect(sent.Email).To(Equal("ada@gmail.com"))
				Expect(sent.ProjectType).To(Equal("Web App"))
			})

			It("should succeed even when the notification fails", func() {
				producer.enqueueFn = func(_ context.Context, _ queue.SubmissionMessage) error {
					return errors.New("redis unavailable")
				}

				svc = service.NewContactService(mockStore, producer)
				sub, err := svc.Submit(ctx, validPayload())

				Expect(err).NotTo(HaveOccurred())
				Expect(sub).NotTo(BeNil())
			})

			It("should work without a producer", func() {
				svc = service.NewContactService(mockStore, nil)
				sub, err := svc.Submit(ctx, validPayload())

				Expect(err).NotTo(HaveOccurred())
				Expect(sub).NotTo(BeNil())
			})
		})

		Context("when the payload is invalid", func() {
			It("should not touch the store", func() {
				called := false
				mockStore.createFn = func(_ context.Context, _ *model.Submission) error {
					called = true
					return nil
				}

				svc = service.NewContactService(mockStore, producer)
				raw := validPayload()
				raw["email"] = "ada@outlook.com"
				_, err := svc.Submit(ctx, raw)

				Expect(err).To(MatchError(service.ErrInvalidEmail))
				Expect(called).To(BeFalse())
			})
		})

		Context("when the store fails", func() {
			It("should return a storage error that keeps the cause", func() {
				cause := errors.New("connection refused")
				mockStore.createFn = func(_ context.Context, _ *model.Submission) error {
					return cause
				}
				enqueued := false
				producer.enqueueFn = func(_ context.Context, _ queue.SubmissionMessage) error {
					enqueued = true
					return nil
				}

				svc = service.NewContactService(mockStore, producer)
				sub, err := svc.Submit(ctx, validPayload())

				Expect(sub).To(BeNil())
				Expect(errors.Is(err, service.ErrStorage)).To(BeTrue())
				Expect(errors.Is(err, cause)).To(BeTrue())
				Expect(enqueued).To(BeFalse())
			})

			It("should not announce a row the store never numbered", func() {
				mockStore.createFn = func(_ context.Context, _ *model.Submission) error {
					return nil
				}
				enqueued := false
				producer.enqueueFn = func(_ context.Context, _ queue.SubmissionMessage) error {
					enqueued = true
					return nil
				}

				svc = service.NewContactService(mockStore, producer)
				sub, err := svc.Submit(ctx, validPayload())

				Expect(sub).To(BeNil())
				Expect(errors.Is(err, service.ErrStorage)).To(BeTrue())
				Expect(enqueued).To(BeFalse())
			})
		})
	})
})

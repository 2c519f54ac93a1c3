package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskletix.app/intake/internal/http/handler"
	"taskletix.app/intake/internal/model"
	"taskletix.app/intake/internal/service"
)

var _ = Describe("AdminHandler", func() {
	var (
		router  *gin.Engine
		authSvc *mockAdminAuthService
		subSvc  *mockSubmissionService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		authSvc = &mockAdminAuthService{}
		subSvc = &mockSubmissionService{}
		h := handler.NewAdminHandler(authSvc, subSvc)
		router.POST("/api/admin/login", h.Login)
		protected := router.Group("/api/admin", h.RequireAdmin())
		protected.GET("/submissions", h.ListSubmissions)
		protected.GET("/export/pdf", h.ExportPDF)
	})

	decode := func(w *httptest.ResponseRecorder) map[string]any {
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	Describe("Login", func() {
		login := func(body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("returns the issued token", func() {
			var got string
			authSvc.loginFn = func(_ context.Context, password string) (string, error) {
				got = password
				return "tok-123", nil
			}

			w := login(`{"password":"admin123"}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)).To(Equal(map[string]any{"ok": true, "token": "tok-123"}))
			Expect(got).To(Equal("admin123"))
		})

		DescribeTable("passes an empty password for unusable bodies",
			func(body string) {
				var got *string
				authSvc.loginFn = func(_ context.Context, password string) (string, error) {
					got = &password
					return "", service.ErrEmptyPassword
				}

				w := login(body)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decode(w)).To(Equal(map[string]any{"ok": false, "error": "Password required"}))
				Expect(got).NotTo(BeNil())
				Expect(*got).To(BeEmpty())
			},
			Entry("empty body", ``),
			Entry("malformed JSON", `{"password":`),
			Entry("missing key", `{}`),
			Entry("non-string password", `{"password":123}`),
			Entry("array", `["admin123"]`),
		)

		It("returns 401 for the wrong password", func() {
			authSvc.loginFn = func(context.Context, string) (string, error) {
				return "", service.ErrInvalidCredentials
			}

			w := login(`{"password":"nope"}`)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)["error"]).To(Equal("Invalid credentials"))
		})

		It("returns 500 when a token cannot be issued", func() {
			authSvc.loginFn = func(context.Context, string) (string, error) {
				return "", errors.New("entropy exhausted")
			}

			w := login(`{"password":"admin123"}`)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode(w)["error"]).To(Equal("Login failed"))
		})
	})

	Describe("RequireAdmin", func() {
		It("rejects requests the auth service does not authorize", func() {
			var gotHeader string
			authSvc.authorizeFn = func(_ context.Context, header string) error {
				gotHeader = header
				return service.ErrUnauthorized
			}
			listed := false
			subSvc.listFn = func(context.Context, int32, int32) ([]model.Submission, error) {
				listed = true
				return nil, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
			req.Header.Set("Authorization", "Bearer forged")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)).To(Equal(map[string]any{"ok": false, "error": "Unauthorized"}))
			Expect(gotHeader).To(Equal("Bearer forged"))
			Expect(listed).To(BeFalse())
		})

		It("guards the export route too", func() {
			authSvc.authorizeFn = func(context.Context, string) error {
				return service.ErrUnauthorized
			}

			req := httptest.NewRequest(http.MethodGet, "/api/admin/export/pdf", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("ListSubmissions", func() {
		list := func(query string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions"+query, nil)
			req.Header.Set("Authorization", "Bearer ok")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("returns submissions in the order the service gives them", func() {
			created := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
			subSvc.listFn = func(context.Context, int32, int32) ([]model.Submission, error) {
				return []model.Submission{
					{ID: 9, Name: "Newest", Email: "n@gmail.com", CreatedAt: created},
					{ID: 4, Name: "Older", Email: "o@gmail.com", CreatedAt: created.Add(-time.Hour)},
				}, nil
			}

			w := list("")

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["ok"]).To(BeTrue())
			subs, ok := resp["submissions"].([]any)
			Expect(ok).To(BeTrue())
			Expect(subs).To(HaveLen(2))
			first := subs[0].(map[string]any)
			Expect(first["id"]).To(Equal(9.0))
			Expect(first["name"]).To(Equal("Newest"))
			Expect(first["created_at"]).To(Equal("2024-05-02T08:00:00Z"))
			Expect(first).To(HaveKey("country_code"))
		})

		It("returns an empty array when there are no submissions", func() {
			subSvc.listFn = func(context.Context, int32, int32) ([]model.Submission, error) {
				return nil, nil
			}

			w := list("")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"submissions":[]`))
		})

		DescribeTable("normalizes the paging query",
			func(query string, wantLimit, wantOffset int32) {
				var gotLimit, gotOffset int32
				subSvc.listFn = func(_ context.Context, limit, offset int32) ([]model.Submission, error) {
					gotLimit, gotOffset = limit, offset
					return nil, nil
				}

				w := list(query)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(gotLimit).To(Equal(wantLimit))
				Expect(gotOffset).To(Equal(wantOffset))
			},
			Entry("defaults", "", int32(200), int32(0)),
			Entry("explicit page", "?limit=50&offset=100", int32(50), int32(100)),
			Entry("limit too large", "?limit=5000", int32(200), int32(0)),
			Entry("garbage limit", "?limit=abc&offset=7", int32(200), int32(0)),
			Entry("negative offset", "?limit=10&offset=-1", int32(10), int32(0)),
			Entry("offset alone", "?offset=30", int32(200), int32(30)),
			Entry("empty limit", "?limit=&offset=10", int32(200), int32(0)),
		)

		It("returns 500 when the store fails", func() {
			subSvc.listFn = func(context.Context, int32, int32) ([]model.Submission, error) {
				return nil, fmt.Errorf("%w: timeout", service.ErrStorage)
			}

			w := list("")

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode(w)["error"]).To(Equal("Database error"))
		})
	})

	Describe("ExportPDF", func() {
		export := func() *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/export/pdf", nil)
			req.Header.Set("Authorization", "Bearer ok")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("streams the document as an attachment", func() {
			subSvc.exportPDFFn = func(context.Context) ([]byte, error) {
				return []byte("%PDF-1.3 fake"), nil
			}

			w := export()

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("application/pdf"))
			Expect(w.Header().Get("Content-Disposition")).To(Equal("attachment; filename=taskletix_submissions.pdf"))
			Expect(w.Body.String()).To(Equal("%PDF-1.3 fake"))
		})

		It("returns Database error when loading rows fails", func() {
			subSvc.exportPDFFn = func(context.Context) ([]byte, error) {
				return nil, fmt.Errorf("%w: timeout", service.ErrStorage)
			}

			w := export()

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode(w)["error"]).To(Equal("Database error"))
			Expect(w.Header().Get("Content-Disposition")).To(BeEmpty())
		})

		It("returns a report error when rendering fails", func() {
			subSvc.exportPDFFn = func(context.Context) ([]byte, error) {
				return nil, fmt.Errorf("%w: bad font", service.ErrReportRender)
			}

			w := export()

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode(w)["error"]).To(Equal("Failed to generate report"))
		})
	})
})
